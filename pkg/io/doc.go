// Package io reads and writes TOML well descriptions.
//
// # Overview
//
// The layout engine is driven by in-memory calls. This package gives the
// command line a file format to make those calls from: a [Document] is
// decoded from TOML, checked, and turned into a [well.Well] by
// [Document.Build].
//
// # TOML Format
//
//	name = "Test Well 001"
//	kop = 5000
//
//	[view]
//	horizontal_stretch = 4
//	vertical_stretch = 1.05
//
//	[[tubular]]
//	name = "conductor"
//	id = 7.25
//	od = 8
//	top = 0
//	bottom = 250
//	weight = 58
//
//	[[tubular]]
//	name = "surface"
//	id = 6.25
//	od = 6.75
//	top = 0
//	bottom = 2000
//	weight = 47
//	shoe = 7
//
//	[tubing]
//	name = "tubing"
//	id = 2.992
//	od = 3.5
//	top = 0
//	bottom = 1900
//
//	[[cement]]
//	top = 100
//	bottom = 2000
//	between = ["conductor", "surface"]
//
//	[[packer]]
//	depth = 1800
//	inner = "tubing"
//	outer = "surface"
//	kind = "tubing"
//
// Cement and packer entries refer to strings by name. The engine still
// resolves them by diameter when it lays the well out, so two strings with
// the same bore will be reported as ambiguous there.
//
// # Errors
//
// Decoding problems are INVALID_FORMAT errors. Geometry and reference
// problems keep the code of the underlying failure and name the offending
// entry, e.g. "tubular 2 (intermediate): ...".
//
// # Export
//
// [WriteTOML] writes a document back out; [FromWell] builds one from a
// populated well so a programmatic well can be saved and re-read.
//
// [well.Well]: github.com/matzehuels/wellsketch/pkg/well#Well
package io
