// Package nesting renders a well as a containment graph.
//
// # Overview
//
// The cross-section shows where things are; the nesting graph shows what
// sits inside what. Each casing string points to the strings it encloses,
// the tubing hangs off the innermost string around it, and cement jobs and
// packers are attached to the two strings they bridge.
//
// # Usage
//
//	dot := nesting.ToDOT(w, nesting.Options{Detailed: true})
//	svg, err := nesting.RenderSVG(dot)
//
// For PDF or PNG output:
//
//	pdf, err := nesting.RenderPDF(dot)
//	png, err := nesting.RenderPNG(dot, 2.0)  // 2x scale
//
// # Containment
//
// String A encloses string B when A's bore is wider than B's outer
// diameter and their depth ranges overlap. Among all enclosing strings the
// one with the narrowest bore is B's parent; strings with no parent hang off
// the well node.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package nesting
