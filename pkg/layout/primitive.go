package layout

// Kind is the geometric shape of a primitive.
type Kind string

const (
	KindRect    Kind = "rect"    // axis-aligned rectangle
	KindPolygon Kind = "polygon" // closed polygon from Points
	KindFill    Kind = "fill"    // filled region between two x values over a depth range
	KindLine    Kind = "line"    // horizontal line at Top
	KindLabel   Kind = "label"   // text at Anchor
)

// Role is what the primitive depicts.
type Role string

const (
	RoleWall      Role = "wall"
	RoleShoe      Role = "shoe"
	RoleCement    Role = "cement"
	RoleTubing    Role = "tubing"
	RolePacker    Role = "packer"
	RoleReference Role = "reference"
	RoleLabel     Role = "label"
)

// Layer is the draw order. Lower layers are drawn first.
type Layer int

const (
	LayerReference Layer = iota
	LayerCement
	LayerWall
	LayerShoe
	LayerTubing
	LayerPacker
	LayerLabel
)

// Side is the half of the diagram a primitive belongs to.
type Side int

const (
	SideLeft   Side = -1
	SideCenter Side = 0
	SideRight  Side = 1
)

// Align positions a label relative to its anchor.
type Align string

const (
	AlignLeft     Align = "left"
	AlignCenter   Align = "center"
	AlignRight    Align = "right"
	AlignTop      Align = "top"
	AlignBaseline Align = "baseline"
)

// Point is a position in well coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Primitive is a single positioned shape or label.
//
// Rect, fill and line primitives use Left/Right/Top/Bottom, where Top is the
// shallower depth. A line has Top == Bottom. Polygons use Points; labels use
// Anchor, Text and the two alignments.
type Primitive struct {
	Kind   Kind   `json:"kind"`
	Role   Role   `json:"role"`
	Layer  Layer  `json:"layer"`
	Side   Side   `json:"side"`
	Source string `json:"source,omitempty"`

	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`

	Points []Point `json:"points,omitempty"`

	Text   string `json:"text,omitempty"`
	Anchor Point  `json:"anchor,omitzero"`
	HAlign Align  `json:"halign,omitempty"`
	VAlign Align  `json:"valign,omitempty"`

	Color   string  `json:"color"`
	Opacity float64 `json:"opacity"`
	Dashed  bool    `json:"dashed,omitempty"`
}

// Width returns the horizontal span.
func (p Primitive) Width() float64 { return p.Right - p.Left }

// Height returns the depth span.
func (p Primitive) Height() float64 { return p.Bottom - p.Top }

// CenterX returns the horizontal midpoint.
func (p Primitive) CenterX() float64 { return (p.Left + p.Right) / 2 }

// Mirror returns the primitive reflected about x = 0.
func (p Primitive) Mirror() Primitive {
	m := p
	m.Side = -p.Side
	m.Left, m.Right = -p.Right, -p.Left
	if p.Points != nil {
		m.Points = make([]Point, len(p.Points))
		for i, pt := range p.Points {
			m.Points[i] = Point{X: -pt.X, Y: pt.Y}
		}
	}
	m.Anchor.X = -p.Anchor.X
	switch p.HAlign {
	case AlignLeft:
		m.HAlign = AlignRight
	case AlignRight:
		m.HAlign = AlignLeft
	}
	return m
}

// Bounds returns the bounding box of the primitive's geometry. Labels report
// their anchor as a zero-size box.
func (p Primitive) Bounds() (minX, maxX, minY, maxY float64) {
	switch p.Kind {
	case KindPolygon:
		if len(p.Points) == 0 {
			return 0, 0, 0, 0
		}
		minX, maxX = p.Points[0].X, p.Points[0].X
		minY, maxY = p.Points[0].Y, p.Points[0].Y
		for _, pt := range p.Points[1:] {
			minX, maxX = min(minX, pt.X), max(maxX, pt.X)
			minY, maxY = min(minY, pt.Y), max(maxY, pt.Y)
		}
		return minX, maxX, minY, maxY
	case KindLabel:
		return p.Anchor.X, p.Anchor.X, p.Anchor.Y, p.Anchor.Y
	default:
		return p.Left, p.Right, p.Top, p.Bottom
	}
}
