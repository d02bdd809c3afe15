package well

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/matzehuels/wellsketch/pkg/errors"
)

// DiameterTolerance is the absolute tolerance used when matching a diameter
// to a registered casing string. The bound is inclusive.
const DiameterTolerance = 0.01

// Match selects which diameter of a casing string Resolve compares against.
type Match int

const (
	// MatchOuterDiameter finds the string whose outer diameter equals the
	// target, i.e. the string a cement interval sits around.
	MatchOuterDiameter Match = iota
	// MatchInnerDiameter finds the string whose bore equals the target.
	MatchInnerDiameter
)

func (m Match) String() string {
	if m == MatchInnerDiameter {
		return "inner diameter"
	}
	return "outer diameter"
}

// Well is the registry of a single wellbore design.
type Well struct {
	Name string

	kop     float64
	hasKOP  bool
	mudline float64
	hasMud  bool

	tubulars map[string]Tubular
	order    []string
	tubing   *Tubular
	cements  []Cement
	packers  []Packer

	largestOD    float64
	deepest      float64
	minThickness float64
	thicknesses  []float64
}

// Option configures a Well.
type Option func(*Well)

// WithKOP sets the kickoff point depth drawn as a reference line.
func WithKOP(depth float64) Option {
	return func(w *Well) { w.kop, w.hasKOP = depth, true }
}

// WithMudline sets the mudline depth drawn as a reference line.
func WithMudline(depth float64) Option {
	return func(w *Well) { w.mudline, w.hasMud = depth, true }
}

// New returns an empty well.
func New(name string, opts ...Option) *Well {
	w := &Well{
		Name:     name,
		tubulars: make(map[string]Tubular),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// KOP returns the kickoff point depth, if one was set.
func (w *Well) KOP() (float64, bool) { return w.kop, w.hasKOP }

// Mudline returns the mudline depth, if one was set.
func (w *Well) Mudline() (float64, bool) { return w.mudline, w.hasMud }

// AddTubular registers a casing string or the tubing. Casing strings update
// the extrema; tubing goes to its own slot, replacing any earlier tubing.
// On error the well is unchanged.
func (w *Well) AddTubular(t Tubular) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if _, ok := w.tubulars[t.Name]; ok {
		return errors.New(errors.ErrCodeDuplicateName, "tubular %q already added", t.Name)
	}

	switch t.Role {
	case RoleTubing:
		w.tubing = &t
	case RoleCasing:
		if w.tubing != nil && w.tubing.Name == t.Name {
			return errors.New(errors.ErrCodeDuplicateName, "tubular %q already used by the tubing", t.Name)
		}
		w.tubulars[t.Name] = t
		w.order = append(w.order, t.Name)
		w.thicknesses = append(w.thicknesses, t.Thickness())
		w.largestOD = math.Max(w.largestOD, t.OuterDiameter)
		w.deepest = math.Max(w.deepest, t.Bottom)
		if len(w.thicknesses) == 1 {
			w.minThickness = t.Thickness()
		} else {
			w.minThickness = math.Min(w.minThickness, t.Thickness())
		}
	}
	return nil
}

// AddCement registers a cement interval and returns its sequential ID.
func (w *Well) AddCement(c Cement) (int, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}
	c.ID = len(w.cements)
	w.cements = append(w.cements, c)
	return c.ID, nil
}

// AddPacker registers a packer.
func (w *Well) AddPacker(p Packer) error {
	if err := p.Validate(); err != nil {
		return err
	}
	w.packers = append(w.packers, p)
	return nil
}

// Resolve returns the single casing string whose outer or inner diameter is
// within DiameterTolerance of target. It fails with UNRESOLVED_BOUNDARY when
// nothing matches and AMBIGUOUS_RESOLUTION when several strings do.
func (w *Well) Resolve(target float64, m Match) (Tubular, error) {
	var found []Tubular
	for _, name := range w.order {
		t := w.tubulars[name]
		d := t.OuterDiameter
		if m == MatchInnerDiameter {
			d = t.InnerDiameter
		}
		if scalar.EqualWithinAbs(d, target, DiameterTolerance) {
			found = append(found, t)
		}
	}
	switch len(found) {
	case 0:
		return Tubular{}, errors.New(errors.ErrCodeUnresolvedBoundary, "no casing string with %s %g", m, target)
	case 1:
		return found[0], nil
	default:
		names := make([]string, len(found))
		for i, t := range found {
			names[i] = t.Name
		}
		return Tubular{}, errors.New(errors.ErrCodeAmbiguousResolution,
			"%s %g matches %d casing strings %v", m, target, len(found), names)
	}
}

// Tubular looks up a casing string or the tubing by name.
func (w *Well) Tubular(name string) (Tubular, bool) {
	if t, ok := w.tubulars[name]; ok {
		return t, true
	}
	if w.tubing != nil && w.tubing.Name == name {
		return *w.tubing, true
	}
	return Tubular{}, false
}

// Tubulars returns the casing strings in insertion order.
func (w *Well) Tubulars() []Tubular {
	out := make([]Tubular, 0, len(w.order))
	for _, name := range w.order {
		out = append(out, w.tubulars[name])
	}
	return out
}

// Tubing returns the tubing string, if any.
func (w *Well) Tubing() (Tubular, bool) {
	if w.tubing == nil {
		return Tubular{}, false
	}
	return *w.tubing, true
}

// Cements returns the cement intervals in insertion order.
func (w *Well) Cements() []Cement { return slices.Clone(w.cements) }

// Packers returns the packers in insertion order.
func (w *Well) Packers() []Packer { return slices.Clone(w.packers) }

// Len returns the number of casing strings.
func (w *Well) Len() int { return len(w.order) }

// LargestOuterDiameter returns the widest casing outer diameter, or 0.
func (w *Well) LargestOuterDiameter() float64 { return w.largestOD }

// DeepestDepth returns the deepest casing bottom, or 0.
func (w *Well) DeepestDepth() float64 { return w.deepest }

// MinimumWallThickness returns the thinnest casing wall, or 0.
func (w *Well) MinimumWallThickness() float64 { return w.minThickness }

// Thicknesses returns the wall thickness of every casing string in insertion order.
func (w *Well) Thicknesses() []float64 { return slices.Clone(w.thicknesses) }
