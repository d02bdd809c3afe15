package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/wellsketch/pkg/errors"
	"github.com/matzehuels/wellsketch/pkg/layout"
	"github.com/matzehuels/wellsketch/pkg/observability"
	"github.com/matzehuels/wellsketch/pkg/render/nesting"
	"github.com/matzehuels/wellsketch/pkg/render/sink"
	"github.com/matzehuels/wellsketch/pkg/render/styles"
	"github.com/matzehuels/wellsketch/pkg/well"
)

// RenderFormat produces one artifact. The plan is used by section output;
// nesting and xlsx output read the well directly.
func RenderFormat(ctx context.Context, w *well.Well, plan layout.Plan, theme styles.Theme, format string, opts Options) ([]byte, error) {
	hooks := observability.Render()
	hooks.OnRenderStart(ctx, opts.VizType, format)
	start := time.Now()

	var data []byte
	var err error
	switch opts.VizType {
	case VizNesting:
		data, err = renderNesting(ctx, w, format, opts)
	default:
		data, err = renderSection(ctx, w, plan, theme, format, opts)
	}

	hooks.OnRenderComplete(ctx, opts.VizType, format, len(data), time.Since(start), err)
	if err != nil {
		code := errors.GetCode(err)
		if code == "" {
			code = errors.ErrCodeInternal
		}
		return nil, errors.Wrap(code, err, "render %s %s", opts.VizType, format)
	}
	return data, nil
}

func renderSection(ctx context.Context, w *well.Well, plan layout.Plan, theme styles.Theme, format string, opts Options) ([]byte, error) {
	svgOpts := []sink.SVGOption{
		sink.WithTheme(theme),
		sink.WithSize(opts.Width, opts.Height),
	}
	switch format {
	case FormatSVG:
		return sink.RenderSVG(plan, svgOpts...), nil
	case FormatJSON:
		return sink.RenderJSON(plan)
	case FormatPDF:
		return sink.RenderPDF(plan, sink.WithPDFSVGOptions(svgOpts...), sink.WithPDFContext(ctx))
	case FormatPNG:
		return sink.RenderPNG(plan, sink.WithPNGSVGOptions(svgOpts...), sink.WithScale(opts.Scale), sink.WithPNGContext(ctx))
	case FormatXLSX:
		return sink.RenderXLSX(w)
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported section format: %s", format)
}

func renderNesting(ctx context.Context, w *well.Well, format string, opts Options) ([]byte, error) {
	dot := nesting.ToDOT(w, nesting.Options{Detailed: opts.Detailed})
	switch format {
	case FormatDOT:
		return []byte(dot), nil
	case FormatSVG:
		return nesting.RenderSVGContext(ctx, dot)
	case FormatPDF:
		return nesting.RenderPDFContext(ctx, dot)
	case FormatPNG:
		return nesting.RenderPNGContext(ctx, dot, opts.Scale)
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported nesting format: %s", format)
}
