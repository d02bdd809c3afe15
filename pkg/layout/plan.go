package layout

// View is the region of well coordinates a renderer should frame.
type View struct {
	MinX float64 `json:"min_x"`
	MaxX float64 `json:"max_x"`
	MinY float64 `json:"min_y"` // shallowest depth shown
	MaxY float64 `json:"max_y"` // deepest depth shown
}

// Overlaps reports whether any part of p lies inside the view.
func (v View) Overlaps(p Primitive) bool {
	minX, maxX, minY, maxY := p.Bounds()
	return maxX >= v.MinX && minX <= v.MaxX && maxY >= v.MinY && minY <= v.MaxY
}

// Width returns the horizontal span of the view.
func (v View) Width() float64 { return v.MaxX - v.MinX }

// Height returns the depth span of the view.
func (v View) Height() float64 { return v.MaxY - v.MinY }

// Plan is the output of Build: primitives in draw order and the view box.
type Plan struct {
	Title      string      `json:"title"`
	View       View        `json:"view"`
	Primitives []Primitive `json:"primitives"`
}

// ByRole returns the primitives with the given role, in draw order.
func (p Plan) ByRole(r Role) []Primitive {
	var out []Primitive
	for _, prim := range p.Primitives {
		if prim.Role == r {
			out = append(out, prim)
		}
	}
	return out
}

// Count returns how many primitives have role r.
func (p Plan) Count(r Role) int {
	n := 0
	for _, prim := range p.Primitives {
		if prim.Role == r {
			n++
		}
	}
	return n
}

// Counts tallies primitives per role.
func (p Plan) Counts() map[Role]int {
	out := make(map[Role]int)
	for _, prim := range p.Primitives {
		out[prim.Role]++
	}
	return out
}
