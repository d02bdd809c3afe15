// Package render turns layout plans into files.
//
// # Overview
//
// The layout engine in [layout] knows nothing about pixels. This package tree
// takes a [layout.Plan] (or, for tabular output, the well itself) and
// produces artifacts:
//
//   - Generic format conversion (SVG to PDF/PNG)
//   - Cross-section output (in the [sink] subpackage)
//   - Colors and fonts (in the [styles] subpackage)
//   - Casing nesting graphs (in the [nesting] subpackage)
//
// # Format Conversion
//
// [ToPDF] and [ToPNG] convert any SVG with the external rsvg-convert tool
// (from librsvg). Both the cross-section sink and the nesting renderer use
// them.
//
//	svg := sink.RenderSVG(plan, sink.WithTheme(styles.Default()))
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// [layout]: github.com/matzehuels/wellsketch/pkg/layout
// [layout.Plan]: github.com/matzehuels/wellsketch/pkg/layout#Plan
// [sink]: github.com/matzehuels/wellsketch/pkg/render/sink
// [styles]: github.com/matzehuels/wellsketch/pkg/render/styles
// [nesting]: github.com/matzehuels/wellsketch/pkg/render/nesting
package render
