// Package sink writes cross-section plans to output formats.
//
// # Formats
//
//   - SVG: the diagram itself, framed on an A4 portrait page
//   - JSON: the plan as data, for other renderers
//   - PDF: print-ready output (requires rsvg-convert)
//   - PNG: raster output (requires rsvg-convert)
//   - XLSX: a casing tally built from the well rather than the plan
//
// # SVG
//
// [RenderSVG] maps plan coordinates into the page frame with depth growing
// downward, clips shapes to the plan's view box and draws a measured-depth
// axis on the left. Labels are not clipped so summaries near the edge stay
// readable.
//
//	svg := sink.RenderSVG(plan,
//	    sink.WithTheme(styles.Mono()),
//	    sink.WithSize(1200, 1700),
//	)
//
// # PDF and PNG
//
// These require librsvg to be installed:
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
package sink
