package layout

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/matzehuels/wellsketch/pkg/errors"
	"github.com/matzehuels/wellsketch/pkg/well"
)

const (
	DefaultHorizontalStretch = 4.0
	DefaultVerticalStretch   = 1.05

	// ShoeHeightRatio is the shoe height as a fraction of the vertical extent.
	ShoeHeightRatio = 0.01

	packerOpacity    = 0.8
	referenceOpacity = 0.75

	tubularLabelGap   = 0.075 // fraction of the half-width right of the OD
	tubularLabelDepth = 0.85  // fraction of the string's bottom depth
	cementLabelGap    = 0.4   // fraction of the half-width left of the fill
	referenceInset    = 1.0
	referenceRise     = 25.0
)

type config struct {
	horizontalStretch float64
	verticalStretch   float64
	topView           float64
	tubularLabels     bool
	cementLabels      bool
	referenceLabels   bool
}

// Option configures Build.
type Option func(*config)

// WithHorizontalStretch sets the half-width of the view as a multiple of the
// largest outer diameter.
func WithHorizontalStretch(f float64) Option {
	return func(c *config) { c.horizontalStretch = f }
}

// WithVerticalStretch sets the depth extent as a multiple of the deepest shoe.
func WithVerticalStretch(f float64) Option {
	return func(c *config) { c.verticalStretch = f }
}

// WithTopView starts the view at depth instead of 0.
func WithTopView(depth float64) Option {
	return func(c *config) { c.topView = depth }
}

// WithoutTubularLabels drops the per-string summary text.
func WithoutTubularLabels() Option {
	return func(c *config) { c.tubularLabels = false }
}

// WithoutCementLabels drops the cement interval text.
func WithoutCementLabels() Option {
	return func(c *config) { c.cementLabels = false }
}

// WithoutLabels drops all text, including the reference line annotations.
func WithoutLabels() Option {
	return func(c *config) {
		c.tubularLabels = false
		c.cementLabels = false
		c.referenceLabels = false
	}
}

// Build computes the drawing plan for w. The well must be fully populated;
// Build does not modify it.
func Build(w *well.Well, opts ...Option) (Plan, error) {
	cfg := config{
		horizontalStretch: DefaultHorizontalStretch,
		verticalStretch:   DefaultVerticalStretch,
		tubularLabels:     true,
		cementLabels:      true,
		referenceLabels:   true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if w == nil || w.Len() == 0 {
		return Plan{}, errors.New(errors.ErrCodeEmptyWell, "well has no casing strings to lay out")
	}
	if err := cfg.validate(); err != nil {
		return Plan{}, err
	}

	b := &builder{
		well:      w,
		cfg:       cfg,
		halfWidth: w.LargestOuterDiameter() * cfg.horizontalStretch,
		extent:    w.DeepestDepth() * cfg.verticalStretch,
		wall:      w.MinimumWallThickness(),
	}
	if cfg.topView >= b.extent {
		return Plan{}, errors.New(errors.ErrCodeInvalidInput,
			"top of view %g must be shallower than the view extent %g", cfg.topView, b.extent)
	}

	b.addWalls()
	if err := b.addCements(); err != nil {
		return Plan{}, err
	}
	b.addTubing()
	if err := b.addPackers(); err != nil {
		return Plan{}, err
	}
	b.addReferences()

	slices.SortStableFunc(b.prims, func(x, y Primitive) int { return cmp.Compare(x.Layer, y.Layer) })

	return Plan{
		Title: w.Name,
		View: View{
			MinX: -b.halfWidth,
			MaxX: b.halfWidth,
			MinY: cfg.topView,
			MaxY: b.extent,
		},
		Primitives: b.prims,
	}, nil
}

func (c config) validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"horizontal stretch", c.horizontalStretch},
		{"vertical stretch", c.verticalStretch},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) || f.v <= 0 {
			return errors.New(errors.ErrCodeInvalidInput, "%s must be a positive number, got %v", f.name, f.v)
		}
	}
	if math.IsNaN(c.topView) || math.IsInf(c.topView, 0) || c.topView < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "top of view must be a non-negative number, got %v", c.topView)
	}
	return nil
}

type builder struct {
	well      *well.Well
	cfg       config
	halfWidth float64
	extent    float64
	wall      float64
	prims     []Primitive
}

// mirrored appends p on the right and its reflection on the left.
func (b *builder) mirrored(p Primitive) {
	p.Side = SideRight
	b.prims = append(b.prims, p, p.Mirror())
}

// outsideEdge is the outer face of a string's drawn wall.
func (b *builder) outsideEdge(t well.Tubular) float64 { return t.Centerline() + b.wall/2 }

// boreEdge is the inner face of a string's drawn wall.
func (b *builder) boreEdge(t well.Tubular) float64 { return t.Centerline() - b.wall/2 }

func (b *builder) addWalls() {
	shoeHeight := b.extent * ShoeHeightRatio
	for _, t := range b.well.Tubulars() {
		b.mirrored(Primitive{
			Kind:    KindRect,
			Role:    RoleWall,
			Layer:   LayerWall,
			Source:  t.Name,
			Left:    b.boreEdge(t),
			Right:   b.outsideEdge(t),
			Top:     t.Top,
			Bottom:  t.Bottom,
			Color:   t.StyleKey(),
			Opacity: 1,
		})

		if w, ok := t.ShoeWidth(); ok {
			base := b.outsideEdge(t)
			b.mirrored(Primitive{
				Kind:   KindPolygon,
				Role:   RoleShoe,
				Layer:  LayerShoe,
				Source: t.Name,
				Points: []Point{
					{X: base, Y: t.Bottom},
					{X: base, Y: t.Bottom - shoeHeight},
					{X: base + w, Y: t.Bottom},
				},
				Color:   "shoe",
				Opacity: 1,
			})
		}

		if b.cfg.tubularLabels {
			b.prims = append(b.prims, Primitive{
				Kind:    KindLabel,
				Role:    RoleLabel,
				Layer:   LayerLabel,
				Side:    SideRight,
				Source:  t.Name,
				Text:    t.Summary(),
				Anchor:  Point{X: t.OuterDiameter + tubularLabelGap*b.halfWidth, Y: t.Bottom * tubularLabelDepth},
				HAlign:  AlignLeft,
				VAlign:  AlignTop,
				Color:   "label",
				Opacity: 1,
			})
		}
	}
}

// span resolves the casing string whose OD is innerSeal and the one whose ID
// is outerSeal, and returns the visual edges between them.
func (b *builder) span(innerSeal, outerSeal float64) (left, right float64, err error) {
	inner, err := b.well.Resolve(innerSeal, well.MatchOuterDiameter)
	if err != nil {
		return 0, 0, err
	}
	right, err = b.outerBore(outerSeal)
	if err != nil {
		return 0, 0, err
	}
	return b.outsideEdge(inner), right, nil
}

// tubingEdge returns the half width of the registered tubing, which must have
// an outer diameter of innerSeal.
func (b *builder) tubingEdge(innerSeal float64) (float64, error) {
	t, ok := b.well.Tubing()
	if !ok {
		return 0, errors.New(errors.ErrCodeUnresolvedBoundary, "no tubing registered")
	}
	if !scalar.EqualWithinAbs(t.OuterDiameter, innerSeal, well.DiameterTolerance) {
		return 0, errors.New(errors.ErrCodeUnresolvedBoundary,
			"tubing %q has outer diameter %g, packer seals on %g", t.Name, t.OuterDiameter, innerSeal)
	}
	return t.OuterDiameter / 2, nil
}

func (b *builder) outerBore(outerSeal float64) (float64, error) {
	outer, err := b.well.Resolve(outerSeal, well.MatchInnerDiameter)
	if err != nil {
		return 0, err
	}
	return b.boreEdge(outer), nil
}

func (b *builder) addCements() error {
	for _, c := range b.well.Cements() {
		left, right, err := b.span(c.InnerWall, c.OuterWall)
		if err != nil {
			return errors.Wrap(errors.GetCode(err), err, "cement %d (%g to %g)", c.ID, c.Top, c.Bottom)
		}
		if right <= left {
			return errors.New(errors.ErrCodeInvalidGeometry, "cement %d has no visible annulus", c.ID)
		}
		b.mirrored(Primitive{
			Kind:    KindFill,
			Role:    RoleCement,
			Layer:   LayerCement,
			Source:  fmt.Sprintf("cement-%d", c.ID),
			Left:    left,
			Right:   right,
			Top:     c.Top,
			Bottom:  c.Bottom,
			Color:   "cement",
			Opacity: 1,
		})

		if b.cfg.cementLabels {
			b.prims = append(b.prims, Primitive{
				Kind:    KindLabel,
				Role:    RoleLabel,
				Layer:   LayerLabel,
				Side:    SideLeft,
				Source:  fmt.Sprintf("cement-%d", c.ID),
				Text:    c.Summary(),
				Anchor:  Point{X: -right - cementLabelGap*b.halfWidth, Y: c.Bottom},
				HAlign:  AlignLeft,
				VAlign:  AlignTop,
				Color:   "cement",
				Opacity: 1,
			})
		}
	}
	return nil
}

func (b *builder) addTubing() {
	t, ok := b.well.Tubing()
	if !ok {
		return
	}
	half := t.OuterDiameter / 2
	b.prims = append(b.prims, Primitive{
		Kind:    KindRect,
		Role:    RoleTubing,
		Layer:   LayerTubing,
		Side:    SideCenter,
		Source:  t.Name,
		Left:    -half,
		Right:   half,
		Top:     t.Top,
		Bottom:  t.Bottom,
		Color:   t.StyleKey(),
		Opacity: 1,
	})
}

func (b *builder) addPackers() error {
	for i, p := range b.well.Packers() {
		var (
			left, right float64
			err         error
		)
		switch p.Kind {
		case well.PackerCasing:
			left, right, err = b.span(p.InnerSeal, p.OuterSeal)
		default:
			left, err = b.tubingEdge(p.InnerSeal)
			if err == nil {
				right, err = b.outerBore(p.OuterSeal)
			}
		}
		if err != nil {
			return errors.Wrap(errors.GetCode(err), err, "packer %d at %g", i, p.Depth)
		}
		if right <= left {
			return errors.New(errors.ErrCodeInvalidGeometry, "packer %d at %g has no visible annulus", i, p.Depth)
		}
		b.mirrored(Primitive{
			Kind:    KindRect,
			Role:    RolePacker,
			Layer:   LayerPacker,
			Source:  fmt.Sprintf("packer-%d", i),
			Left:    left,
			Right:   right,
			Top:     p.Top(),
			Bottom:  p.Bottom(),
			Color:   "packer",
			Opacity: packerOpacity,
		})
	}
	return nil
}

func (b *builder) addReferences() {
	refs := []struct {
		key, title string
		get        func() (float64, bool)
	}{
		{"kop", "KOP", b.well.KOP},
		{"mudline", "Mudline", b.well.Mudline},
	}
	for _, r := range refs {
		depth, ok := r.get()
		if !ok {
			continue
		}
		b.prims = append(b.prims, Primitive{
			Kind:    KindLine,
			Role:    RoleReference,
			Layer:   LayerReference,
			Side:    SideCenter,
			Source:  r.key,
			Left:    -b.halfWidth,
			Right:   b.halfWidth,
			Top:     depth,
			Bottom:  depth,
			Color:   r.key,
			Opacity: referenceOpacity,
			Dashed:  true,
		})
		if b.cfg.referenceLabels {
			b.prims = append(b.prims, Primitive{
				Kind:    KindLabel,
				Role:    RoleLabel,
				Layer:   LayerLabel,
				Side:    SideLeft,
				Source:  r.key,
				Text:    fmt.Sprintf("%s at %g ft", r.title, depth),
				Anchor:  Point{X: -b.halfWidth + referenceInset, Y: depth - referenceRise},
				HAlign:  AlignLeft,
				VAlign:  AlignBaseline,
				Color:   r.key,
				Opacity: referenceOpacity,
			})
		}
	}
}
