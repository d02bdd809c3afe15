// Package well holds the wellbore entity model and the well registry.
//
// # Entities
//
// A [Tubular] is a casing or tubing string described by its inner and outer
// diameter and the measured-depth interval it spans. Tubing is not a separate
// type: it is a Tubular whose [Role] is [RoleTubing]. A [Cement] fills the
// annulus between two tubulars over a depth interval, and a [Packer] seals the
// annulus between an inner component and an outer casing at a point depth.
//
// All entities are plain values. Their constructors ([NewTubular],
// [NewTubing], [NewCement], [NewPacker]) validate geometry up front and return
// an INVALID_GEOMETRY error instead of a degenerate shape:
//
//	surface, err := well.NewTubular("surface", 6.25, 6.75, 0, 2000,
//	    well.WithUnitWeight(47), well.WithShoe(7))
//
// # Registry
//
// A [Well] collects entities and keeps the running extrema the layout engine
// scales against: the largest outer diameter, the deepest casing shoe and the
// thinnest casing wall. Tubular names are unique within a well.
//
// Cement intervals and packers are tied to casing strings by diameter: the
// layout engine calls [Well.Resolve] to find the single casing whose outer or
// inner diameter matches within [DiameterTolerance]. Zero matches and several
// matches are both errors.
//
// A Well is not safe for concurrent modification. Populate it from one
// goroutine, then hand it to the layout engine.
package well
