// Package layout turns a populated well into a drawing plan.
//
// [Build] reads a [well.Well] and emits a [Plan]: a flat list of
// [Primitive] values in well coordinates plus the [View] box a renderer
// should frame. X is a diameter-scale offset from the well axis at x = 0;
// Y is measured depth, growing downward. Renderers are expected to invert
// the Y axis.
//
// Casing walls are drawn with a uniform width equal to the thinnest wall in
// the well, centered on each string's centerline. Cement and packers are
// anchored to those visual edges rather than to the true diameters so that
// fills always meet the drawn walls.
//
// Everything except tubing and reference lines is emitted as a mirrored
// pair: a primitive on the right (Side > 0) and its negated twin on the left.
//
// Primitives are sorted back to front by [Layer]:
//
//	LayerReference  KOP and mudline lines
//	LayerCement     cement fills
//	LayerWall       casing walls
//	LayerShoe       casing shoes
//	LayerTubing     tubing body
//	LayerPacker     packers
//	LayerLabel      text
//
// Build aborts on the first cement or packer that cannot be tied to exactly
// one casing string; it never returns a partial plan.
package layout
