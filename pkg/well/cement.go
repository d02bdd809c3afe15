package well

import (
	"fmt"

	"github.com/matzehuels/wellsketch/pkg/errors"
)

// Cement fills the annulus between two tubulars over a depth interval.
//
// OuterWall is the inner diameter of the larger string and InnerWall is the
// outer diameter of the smaller one. The layout engine resolves both back to
// registered casing strings by diameter.
type Cement struct {
	ID        int // assigned by Well.AddCement
	Top       float64
	Bottom    float64
	OuterWall float64
	InnerWall float64
	Outer     string // name of the string whose bore bounds the cement
	Inner     string // name of the string the cement sits around
}

// NewCement creates a cement interval between a and b. The argument order
// does not matter: the string with the larger outer diameter is the outer
// boundary.
func NewCement(top, bottom float64, a, b Tubular) (Cement, error) {
	outer, inner := a, b
	if b.OuterDiameter > a.OuterDiameter {
		outer, inner = b, a
	}
	c := Cement{
		ID:        -1,
		Top:       top,
		Bottom:    bottom,
		OuterWall: outer.InnerDiameter,
		InnerWall: inner.OuterDiameter,
		Outer:     outer.Name,
		Inner:     inner.Name,
	}
	if err := c.Validate(); err != nil {
		return Cement{}, err
	}
	return c, nil
}

// Validate checks the interval and the annular gap.
func (c Cement) Validate() error {
	for _, f := range []struct {
		field string
		v     float64
	}{
		{"cement top", c.Top},
		{"cement bottom", c.Bottom},
		{"cement outer wall", c.OuterWall},
		{"cement inner wall", c.InnerWall},
	} {
		if err := errors.ValidateFinite(f.field, f.v); err != nil {
			return err
		}
	}
	if c.Bottom <= c.Top {
		return errors.New(errors.ErrCodeInvalidGeometry, "cement bottom %g must be deeper than top %g", c.Bottom, c.Top)
	}
	if c.OuterWall <= c.InnerWall {
		return errors.New(errors.ErrCodeInvalidGeometry,
			"cement between %q and %q has no annular gap: outer wall %g, inner wall %g",
			c.Outer, c.Inner, c.OuterWall, c.InnerWall)
	}
	return nil
}

// Length returns the height of the cemented interval.
func (c Cement) Length() float64 { return c.Bottom - c.Top }

// Summary returns the label drawn beside the cement fill.
func (c Cement) Summary() string {
	return fmt.Sprintf("cement from\n%g ft to %g ft", c.Top, c.Bottom)
}
