package sink

import (
	"context"

	"github.com/matzehuels/wellsketch/pkg/layout"
	"github.com/matzehuels/wellsketch/pkg/render"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	svgOpts []SVGOption
	scale   float64
	ctx     context.Context
}

// WithPNGSVGOptions passes options through to the underlying SVG renderer.
func WithPNGSVGOptions(opts ...SVGOption) PNGOption {
	return func(r *pngRenderer) { r.svgOpts = opts }
}

// WithScale sets the PNG scale factor (default 2.0 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// WithPNGContext bounds the rsvg-convert call.
func WithPNGContext(ctx context.Context) PNGOption {
	return func(r *pngRenderer) { r.ctx = ctx }
}

// RenderPNG renders the plan as PNG via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(p layout.Plan, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 2.0, ctx: context.Background()}
	for _, opt := range opts {
		opt(&r)
	}
	return render.ToPNGContext(r.ctx, RenderSVG(p, r.svgOpts...), r.scale)
}
