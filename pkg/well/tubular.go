package well

import (
	"fmt"
	"strings"

	"github.com/matzehuels/wellsketch/pkg/errors"
)

// Role distinguishes casing strings from the production tubing.
type Role int

const (
	// RoleCasing is a casing or liner string. Casing strings set the scale of
	// the diagram and bound cement intervals and packers.
	RoleCasing Role = iota
	// RoleTubing is the innermost production conduit. A well holds at most one.
	RoleTubing
)

// String returns the lowercase role name.
func (r Role) String() string {
	switch r {
	case RoleCasing:
		return "casing"
	case RoleTubing:
		return "tubing"
	default:
		return fmt.Sprintf("role(%d)", int(r))
	}
}

// Tubular is a cylindrical pipe string run in the wellbore.
//
// Depths are measured depths with Top shallower than Bottom. Diameters and
// depths share no unit; the diagram only needs them to be consistent within
// a well.
type Tubular struct {
	Name          string
	Role          Role
	InnerDiameter float64
	OuterDiameter float64
	Top           float64
	Bottom        float64
	UnitWeight    float64 // weight per unit length
	ShoeSize      float64 // diameter at the shoe tip; zero when the string has no shoe
	Info          string
}

// TubularOption configures optional tubular attributes.
type TubularOption func(*Tubular)

// WithUnitWeight sets the weight per unit length.
func WithUnitWeight(w float64) TubularOption { return func(t *Tubular) { t.UnitWeight = w } }

// WithShoe sets the diameter at the shoe tip. It must exceed the outer diameter.
func WithShoe(size float64) TubularOption { return func(t *Tubular) { t.ShoeSize = size } }

// WithInfo attaches a free-text note that is appended to the summary label.
func WithInfo(info string) TubularOption { return func(t *Tubular) { t.Info = info } }

// NewTubular creates a casing string spanning top to bottom.
func NewTubular(name string, innerDiameter, outerDiameter, top, bottom float64, opts ...TubularOption) (Tubular, error) {
	return newTubular(RoleCasing, name, innerDiameter, outerDiameter, top, bottom, opts)
}

// NewTubing creates the production tubing string.
func NewTubing(name string, innerDiameter, outerDiameter, top, bottom float64, opts ...TubularOption) (Tubular, error) {
	return newTubular(RoleTubing, name, innerDiameter, outerDiameter, top, bottom, opts)
}

func newTubular(role Role, name string, innerDiameter, outerDiameter, top, bottom float64, opts []TubularOption) (Tubular, error) {
	t := Tubular{
		Name:          name,
		Role:          role,
		InnerDiameter: innerDiameter,
		OuterDiameter: outerDiameter,
		Top:           top,
		Bottom:        bottom,
	}
	for _, opt := range opts {
		opt(&t)
	}
	if err := t.Validate(); err != nil {
		return Tubular{}, err
	}
	return t, nil
}

// Validate checks the tubular's geometry. Constructors call it; the registry
// calls it again so hand-built literals cannot slip through.
func (t Tubular) Validate() error {
	if err := errors.ValidateName(t.Name); err != nil {
		return err
	}
	for _, f := range []struct {
		field string
		v     float64
	}{
		{"inner diameter", t.InnerDiameter},
		{"outer diameter", t.OuterDiameter},
		{"top", t.Top},
		{"bottom", t.Bottom},
		{"unit weight", t.UnitWeight},
		{"shoe size", t.ShoeSize},
	} {
		if err := errors.ValidateFinite(f.field, f.v); err != nil {
			return err
		}
	}
	if t.Role != RoleCasing && t.Role != RoleTubing {
		return errors.New(errors.ErrCodeInvalidInput, "%s: unknown role %v", t.Name, t.Role)
	}
	if t.InnerDiameter <= 0 {
		return errors.New(errors.ErrCodeInvalidGeometry, "%s: inner diameter must be positive, got %g", t.Name, t.InnerDiameter)
	}
	if t.OuterDiameter <= t.InnerDiameter {
		return errors.New(errors.ErrCodeInvalidGeometry, "%s: outer diameter %g must exceed inner diameter %g",
			t.Name, t.OuterDiameter, t.InnerDiameter)
	}
	if t.Bottom <= t.Top {
		return errors.New(errors.ErrCodeInvalidGeometry, "%s: bottom %g must be deeper than top %g", t.Name, t.Bottom, t.Top)
	}
	if t.UnitWeight < 0 {
		return errors.New(errors.ErrCodeInvalidGeometry, "%s: unit weight cannot be negative, got %g", t.Name, t.UnitWeight)
	}
	if t.ShoeSize != 0 && t.ShoeSize <= t.OuterDiameter {
		return errors.New(errors.ErrCodeInvalidGeometry, "%s: shoe size %g must exceed outer diameter %g",
			t.Name, t.ShoeSize, t.OuterDiameter)
	}
	return nil
}

// Thickness returns the wall thickness as outer minus inner diameter.
func (t Tubular) Thickness() float64 { return t.OuterDiameter - t.InnerDiameter }

// Length returns the unsigned length of the string.
func (t Tubular) Length() float64 {
	if t.Bottom > t.Top {
		return t.Bottom - t.Top
	}
	return t.Top - t.Bottom
}

// TotalWeight returns Length times UnitWeight.
func (t Tubular) TotalWeight() float64 { return t.Length() * t.UnitWeight }

// Centerline returns the midpoint between inner and outer diameter.
func (t Tubular) Centerline() float64 { return (t.OuterDiameter + t.InnerDiameter) / 2 }

// HasShoe reports whether a shoe size was supplied.
func (t Tubular) HasShoe() bool { return t.ShoeSize > 0 }

// ShoeWidth returns how far the shoe sticks out past the outer diameter.
// The second result is false when the string has no shoe.
func (t Tubular) ShoeWidth() (float64, bool) {
	if !t.HasShoe() {
		return 0, false
	}
	return t.ShoeSize - t.OuterDiameter, true
}

// StyleKey is the color key the renderer uses for this string's body.
func (t Tubular) StyleKey() string {
	if t.Role == RoleTubing {
		return "tubing"
	}
	return "casing"
}

// Summary returns the multi-line label drawn next to the string.
func (t Tubular) Summary() string {
	lines := []string{
		t.Name,
		fmt.Sprintf("ID = %g in", t.InnerDiameter),
		fmt.Sprintf("OD = %g in", t.OuterDiameter),
		fmt.Sprintf("From %g ft to %g ft", t.Top, t.Bottom),
		fmt.Sprintf("Weight = %g lb/ft", t.UnitWeight),
	}
	if t.HasShoe() {
		lines = append(lines, fmt.Sprintf("Shoe = %g in", t.ShoeSize))
	}
	if t.Info != "" {
		lines = append(lines, t.Info)
	}
	return strings.Join(lines, "\n")
}
