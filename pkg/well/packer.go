package well

import (
	"fmt"

	"github.com/matzehuels/wellsketch/pkg/errors"
)

// PackerKind selects how the packer's inner edge is anchored in the diagram.
type PackerKind string

const (
	// PackerTubing seals between the tubing and a casing string.
	PackerTubing PackerKind = "tubing"
	// PackerCasing seals between two casing strings.
	PackerCasing PackerKind = "casing"
)

// DefaultPackerHeight is the drawn height of a packer in depth units.
const DefaultPackerHeight = 75.0

// ParsePackerKind parses "tubing" or "casing".
func ParsePackerKind(s string) (PackerKind, error) {
	switch k := PackerKind(s); k {
	case PackerTubing, PackerCasing:
		return k, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidInput, "unknown packer kind %q (want tubing or casing)", s)
	}
}

// Packer is a seal set at a point depth across the annulus between an inner
// component and an outer casing.
type Packer struct {
	Depth     float64
	Height    float64
	Kind      PackerKind
	InnerSeal float64 // outer diameter of the inner component
	OuterSeal float64 // inner diameter of the outer casing
	Inner     string
	Outer     string
}

// PackerOption configures optional packer attributes.
type PackerOption func(*Packer)

// WithPackerHeight overrides DefaultPackerHeight.
func WithPackerHeight(h float64) PackerOption { return func(p *Packer) { p.Height = h } }

// NewPacker creates a packer at depth between inner and outer. The outer
// component must be a casing string. A tubing packer seals on the tubing, a
// casing packer on a casing string.
func NewPacker(depth float64, inner, outer Tubular, kind PackerKind, opts ...PackerOption) (Packer, error) {
	p := Packer{
		Depth:     depth,
		Height:    DefaultPackerHeight,
		Kind:      kind,
		InnerSeal: inner.OuterDiameter,
		OuterSeal: outer.InnerDiameter,
		Inner:     inner.Name,
		Outer:     outer.Name,
	}
	for _, opt := range opts {
		opt(&p)
	}
	if outer.Role != RoleCasing {
		return Packer{}, errors.New(errors.ErrCodeInvalidInput, "packer outer component %q must be a casing string", outer.Name)
	}
	switch {
	case kind == PackerTubing && inner.Role != RoleTubing:
		return Packer{}, errors.New(errors.ErrCodeInvalidInput, "tubing packer inner component %q must be the tubing", inner.Name)
	case kind == PackerCasing && inner.Role != RoleCasing:
		return Packer{}, errors.New(errors.ErrCodeInvalidInput, "casing packer inner component %q must be a casing string", inner.Name)
	}
	if err := p.Validate(); err != nil {
		return Packer{}, err
	}
	return p, nil
}

// Validate checks the seal gap and dimensions.
func (p Packer) Validate() error {
	if _, err := ParsePackerKind(string(p.Kind)); err != nil {
		return err
	}
	for _, f := range []struct {
		field string
		v     float64
	}{
		{"packer depth", p.Depth},
		{"packer height", p.Height},
		{"packer inner seal", p.InnerSeal},
		{"packer outer seal", p.OuterSeal},
	} {
		if err := errors.ValidateFinite(f.field, f.v); err != nil {
			return err
		}
	}
	if p.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidGeometry, "packer height must be positive, got %g", p.Height)
	}
	if p.OuterSeal <= p.InnerSeal {
		return errors.New(errors.ErrCodeInvalidGeometry,
			"packer between %q and %q has no annular gap: outer seal %g, inner seal %g",
			p.Inner, p.Outer, p.OuterSeal, p.InnerSeal)
	}
	return nil
}

// Top returns the shallow end of the packer body.
func (p Packer) Top() float64 { return p.Depth - p.Height/2 }

// Bottom returns the deep end of the packer body.
func (p Packer) Bottom() float64 { return p.Depth + p.Height/2 }

func (p Packer) String() string {
	return fmt.Sprintf("%s packer at %g (%s in %s)", p.Kind, p.Depth, p.Inner, p.Outer)
}
