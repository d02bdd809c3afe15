package sink

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/wellsketch/pkg/layout"
	"github.com/matzehuels/wellsketch/pkg/render/styles"
)

// A4 portrait at 100 units per inch.
const (
	DefaultWidth  = 827.0
	DefaultHeight = 1169.0
)

const (
	marginLeft   = 80.0
	marginRight  = 30.0
	marginTop    = 60.0
	marginBottom = 30.0

	tickLength  = 5.0
	targetTicks = 10
	lineSpacing = 1.2 // em
	dashPattern = "6,4"
	axisLabel   = "MD [ft]"
)

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	theme  styles.Theme
	width  float64
	height float64
	axis   bool
	title  bool
}

func WithTheme(t styles.Theme) SVGOption { return func(r *svgRenderer) { r.theme = t } }
func WithSize(w, h float64) SVGOption {
	return func(r *svgRenderer) {
		if w > 0 && h > 0 {
			r.width, r.height = w, h
		}
	}
}
func WithoutAxis() SVGOption  { return func(r *svgRenderer) { r.axis = false } }
func WithoutTitle() SVGOption { return func(r *svgRenderer) { r.title = false } }

// RenderSVG draws the plan. Primitives are written in plan order, which is
// already back to front. Shapes entirely outside the view are left out.
func RenderSVG(p layout.Plan, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)
	f := newFrame(r.width, r.height, p.View)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		r.width, r.height, r.width, r.height)
	fmt.Fprintf(&buf, `  <defs><clipPath id="plot-area"><rect x="%s" y="%s" width="%s" height="%s"/></clipPath></defs>`+"\n",
		num(f.x0), num(f.y0), num(f.w), num(f.h))
	fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", r.theme.Background)

	buf.WriteString(`  <g clip-path="url(#plot-area)">` + "\n")
	for _, prim := range p.Primitives {
		if prim.Kind != layout.KindLabel && p.View.Overlaps(prim) {
			r.renderShape(&buf, f, prim)
		}
	}
	buf.WriteString("  </g>\n")

	fmt.Fprintf(&buf, `  <g font-family="%s" font-size="%s">`+"\n", styles.EscapeXML(r.theme.FontFamily), num(r.theme.FontSize))
	for _, prim := range p.Primitives {
		if prim.Kind == layout.KindLabel {
			r.renderLabel(&buf, f, prim)
		}
	}
	if r.axis {
		r.renderAxis(&buf, f)
	}
	if r.title && p.Title != "" {
		fmt.Fprintf(&buf, `    <text x="%s" y="%s" font-size="%s" fill="%s">%s</text>`+"\n",
			num(f.x0), num(f.y0-20), num(r.theme.TitleSize), r.theme.Foreground, styles.EscapeXML(p.Title))
	}
	buf.WriteString("  </g>\n")

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{
		theme:  styles.Default(),
		width:  DefaultWidth,
		height: DefaultHeight,
		axis:   true,
		title:  true,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// frame maps well coordinates to page coordinates.
type frame struct {
	x0, y0, w, h float64
	sx, sy       float64
	view         layout.View
}

func newFrame(width, height float64, v layout.View) frame {
	f := frame{
		x0:   marginLeft,
		y0:   marginTop,
		w:    width - marginLeft - marginRight,
		h:    height - marginTop - marginBottom,
		view: v,
	}
	if v.Width() > 0 {
		f.sx = f.w / v.Width()
	}
	if v.Height() > 0 {
		f.sy = f.h / v.Height()
	}
	return f
}

func (f frame) X(x float64) float64 { return f.x0 + (x-f.view.MinX)*f.sx }
func (f frame) Y(y float64) float64 { return f.y0 + (y-f.view.MinY)*f.sy }

func (r *svgRenderer) renderShape(buf *bytes.Buffer, f frame, p layout.Primitive) {
	color := r.theme.Color(p.Color)
	switch p.Kind {
	case layout.KindRect, layout.KindFill:
		fmt.Fprintf(buf, `    <rect class="%s" x="%s" y="%s" width="%s" height="%s" fill="%s"%s/>`+"\n",
			p.Role, num(f.X(p.Left)), num(f.Y(p.Top)), num(p.Width()*f.sx), num(p.Height()*f.sy),
			color, opacity("fill-opacity", p.Opacity))
	case layout.KindPolygon:
		pts := make([]string, len(p.Points))
		for i, pt := range p.Points {
			pts[i] = num(f.X(pt.X)) + "," + num(f.Y(pt.Y))
		}
		fmt.Fprintf(buf, `    <polygon class="%s" points="%s" fill="%s"%s/>`+"\n",
			p.Role, strings.Join(pts, " "), color, opacity("fill-opacity", p.Opacity))
	case layout.KindLine:
		dash := ""
		if p.Dashed {
			dash = ` stroke-dasharray="` + dashPattern + `"`
		}
		fmt.Fprintf(buf, `    <line class="%s" x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s"%s%s/>`+"\n",
			p.Role, num(f.X(p.Left)), num(f.Y(p.Top)), num(f.X(p.Right)), num(f.Y(p.Top)),
			color, num(r.theme.LineWidth), dash, opacity("stroke-opacity", p.Opacity))
	}
}

func (r *svgRenderer) renderLabel(buf *bytes.Buffer, f frame, p layout.Primitive) {
	anchor := "start"
	switch p.HAlign {
	case layout.AlignCenter:
		anchor = "middle"
	case layout.AlignRight:
		anchor = "end"
	}
	x, y := f.X(p.Anchor.X), f.Y(p.Anchor.Y)

	fmt.Fprintf(buf, `    <text x="%s" y="%s" text-anchor="%s" fill="%s"%s>`,
		num(x), num(y), anchor, r.theme.Color(p.Color), opacity("fill-opacity", p.Opacity))
	for i, line := range strings.Split(p.Text, "\n") {
		dy := fmt.Sprintf("%gem", lineSpacing)
		if i == 0 {
			dy = "0"
			if p.VAlign == layout.AlignTop {
				dy = "1em"
			}
		}
		fmt.Fprintf(buf, `<tspan x="%s" dy="%s">%s</tspan>`, num(x), dy, styles.EscapeXML(line))
	}
	buf.WriteString("</text>\n")
}

func (r *svgRenderer) renderAxis(buf *bytes.Buffer, f frame) {
	fg := r.theme.Foreground
	fmt.Fprintf(buf, `    <rect x="%s" y="%s" width="%s" height="%s" fill="none" stroke="%s" stroke-width="1"/>`+"\n",
		num(f.x0), num(f.y0), num(f.w), num(f.h), fg)

	for _, v := range depthTicks(f.view.MinY, f.view.MaxY, targetTicks) {
		y := f.Y(v)
		fmt.Fprintf(buf, `    <line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="1"/>`+"\n",
			num(f.x0-tickLength), num(y), num(f.x0), num(y), fg)
		fmt.Fprintf(buf, `    <text x="%s" y="%s" text-anchor="end" dominant-baseline="middle" fill="%s">%s</text>`+"\n",
			num(f.x0-tickLength-3), num(y), fg, strconv.FormatFloat(v, 'f', -1, 64))
	}

	cx, cy := f.x0-60, f.y0+f.h/2
	fmt.Fprintf(buf, `    <text x="%s" y="%s" text-anchor="middle" fill="%s" transform="rotate(-90 %s %s)">%s</text>`+"\n",
		num(cx), num(cy), fg, num(cx), num(cy), styles.EscapeXML(axisLabel))
}

// depthTicks returns round tick values between lo and hi inclusive.
func depthTicks(lo, hi float64, target int) []float64 {
	step := niceStep(hi-lo, target)
	if step <= 0 {
		return nil
	}
	var ticks []float64
	for v := math.Ceil(lo/step) * step; v <= hi+step*1e-9; v += step {
		ticks = append(ticks, math.Round(v/step)*step)
	}
	return ticks
}

// niceStep picks a 1, 2 or 5 times power of ten step giving about target ticks.
func niceStep(span float64, target int) float64 {
	if span <= 0 || target <= 0 {
		return 0
	}
	raw := span / float64(target)
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	switch norm := raw / mag; {
	case norm <= 1:
		return mag
	case norm <= 2:
		return 2 * mag
	case norm <= 5:
		return 5 * mag
	default:
		return 10 * mag
	}
}

func opacity(attr string, v float64) string {
	if v <= 0 || v >= 1 {
		return ""
	}
	return fmt.Sprintf(` %s="%s"`, attr, num(v))
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
