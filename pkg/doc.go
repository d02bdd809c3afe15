// Package pkg holds the wellsketch libraries.
//
// wellsketch draws half-section wellbore schematics: casing strings as
// mirrored walls about the centerline, cement between strings, the tubing,
// packers, and reference lines for the kick-off point and mudline.
//
// # Layout
//
//  1. [well] - the data model: tubulars, cement, packers, diameter resolution
//  2. [layout] - turns a well into a Plan of positioned drawing primitives
//  3. [render] - sinks for a Plan (SVG, JSON, PDF, PNG, XLSX) and the
//     Graphviz nesting view
//  4. [io] - TOML well description files
//  5. [pipeline] - load → layout → render with caching
//
// # Data flow
//
//	well.toml
//	    ↓
//	[io] Document.Build
//	    ↓
//	[well] Well
//	    ↓
//	[layout] Build → Plan
//	    ↓
//	[render/sink] SVG/JSON/PDF/PNG, XLSX from the well
//
// # Quick start
//
//	doc, _ := io.ImportTOML("well.toml")
//	w, _ := doc.Build()
//	plan, err := layout.Build(w)
//	if err != nil {
//	    return err
//	}
//	svg := sink.RenderSVG(plan, sink.WithTheme(styles.Default()))
//
// Errors carry a machine-readable [errors.Code]; see package errors.
package pkg
