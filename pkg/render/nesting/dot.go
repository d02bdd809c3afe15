package nesting

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/wellsketch/pkg/render"
	"github.com/matzehuels/wellsketch/pkg/well"
)

// Options configures nesting graph generation.
type Options struct {
	// Detailed adds diameters and depths to node labels.
	// When false, only names are shown.
	Detailed bool
}

const wellNode = "__well__"

// ToDOT converts a well to Graphviz DOT source.
func ToDOT(w *well.Well, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=18, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	title := w.Name
	if title == "" {
		title = "well"
	}
	fmt.Fprintf(&buf, "  %q [label=%q, shape=house, fillcolor=\"#eeeeee\"];\n", wellNode, title)

	strs := w.Tubulars()
	tubing, hasTubing := w.Tubing()
	all := strs
	if hasTubing {
		all = append(all[:len(all):len(all)], tubing)
	}

	for _, t := range all {
		fmt.Fprintf(&buf, "  %q [%s];\n", t.Name, strings.Join(tubularAttrs(t, opts.Detailed), ", "))
	}
	for _, c := range w.Cements() {
		id := fmt.Sprintf("cement-%d", c.ID)
		label := "cement"
		if opts.Detailed {
			label = c.Summary()
		}
		fmt.Fprintf(&buf, "  %q [label=%q, shape=box, style=\"filled\", fillcolor=\"#6b705c\", fontcolor=white];\n", id, label)
	}
	for i, p := range w.Packers() {
		label := fmt.Sprintf("%s packer", p.Kind)
		if opts.Detailed {
			label += fmt.Sprintf("\n@ %g ft", p.Depth)
		}
		fmt.Fprintf(&buf, "  %q [label=%q, shape=box, style=\"filled\", fillcolor=red, fontcolor=white];\n",
			fmt.Sprintf("packer-%d", i), label)
	}

	buf.WriteString("\n")
	for _, t := range all {
		parent := wellNode
		if p, ok := Parent(strs, t); ok {
			parent = p.Name
		}
		fmt.Fprintf(&buf, "  %q -> %q;\n", parent, t.Name)
	}
	for _, c := range w.Cements() {
		id := fmt.Sprintf("cement-%d", c.ID)
		fmt.Fprintf(&buf, "  %q -> %q [style=dashed, arrowhead=none];\n", c.Outer, id)
		fmt.Fprintf(&buf, "  %q -> %q [style=dashed, arrowhead=none];\n", id, c.Inner)
	}
	for i, p := range w.Packers() {
		id := fmt.Sprintf("packer-%d", i)
		fmt.Fprintf(&buf, "  %q -> %q [style=dashed, arrowhead=none, color=red];\n", p.Outer, id)
		fmt.Fprintf(&buf, "  %q -> %q [style=dashed, arrowhead=none, color=red];\n", id, p.Inner)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func tubularAttrs(t well.Tubular, detailed bool) []string {
	label := t.Name
	if detailed {
		label = fmt.Sprintf("%s\n%g x %g in\n%g-%g ft", t.Name, t.OuterDiameter, t.InnerDiameter, t.Top, t.Bottom)
	}
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if t.Role == well.RoleTubing {
		attrs = append(attrs, "fillcolor=\"#348ceb\"", "fontcolor=white")
	}
	return attrs
}

// Parent returns the casing string in candidates that directly encloses t:
// the narrowest bore wider than t's outer diameter over an overlapping depth
// range.
func Parent(candidates []well.Tubular, t well.Tubular) (well.Tubular, bool) {
	var (
		best  well.Tubular
		found bool
	)
	for _, c := range candidates {
		if c.Name == t.Name || c.Role != well.RoleCasing {
			continue
		}
		if c.InnerDiameter <= t.OuterDiameter {
			continue
		}
		if c.Top >= t.Bottom || t.Top >= c.Bottom {
			continue
		}
		if !found || c.InnerDiameter < best.InnerDiameter {
			best, found = c, true
		}
	}
	return best, found
}

// RenderSVG renders DOT source to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	return RenderSVGContext(context.Background(), dot)
}

// RenderSVGContext is RenderSVG with a caller-supplied context.
func RenderSVGContext(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-sized root element with a plain
// viewBox so the SVG scales like the cross-section output.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}

// RenderPDF renders DOT source as PDF via SVG conversion.
func RenderPDF(dot string) ([]byte, error) {
	return RenderPDFContext(context.Background(), dot)
}

// RenderPDFContext is RenderPDF with cancellation.
func RenderPDFContext(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVGContext(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDFContext(ctx, svg)
}

// RenderPNG renders DOT source as PNG via SVG conversion.
func RenderPNG(dot string, scale float64) ([]byte, error) {
	return RenderPNGContext(context.Background(), dot, scale)
}

// RenderPNGContext is RenderPNG with cancellation.
func RenderPNGContext(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVGContext(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNGContext(ctx, svg, scale)
}
