// Package svgpaint implements the SVG paint server model: gradient and
// pattern definitions resolved through fallback reference chains and
// mapped to concrete user-space rendering parameters.
//
// # Overview
//
// An SVG paint server (a linearGradient, radialGradient or pattern
// element) may be declared with any subset of its attributes missing.
// Missing attributes are inherited from the element named by its href
// reference, which may itself be incomplete, forming a fallback chain.
// This package resolves such chains into fully specified records and
// turns those records into concrete drawing-space geometry.
//
// # Quick Start
//
//	doc := svgpaint.NewDocument()
//	units := svgpaint.UserSpaceOnUse
//	grad := doc.AddLinearGradient("g", svgpaint.LinearGradientAttrs{
//	    Units: &units,
//	},
//	    svgpaint.Stop{Offset: 0, Color: svgpaint.White},
//	    svgpaint.Stop{Offset: 1, Color: svgpaint.Black},
//	)
//
//	resolved, err := grad.ResolveGradient()
//	if err != nil {
//	    // circular reference, over-long chain, or wrong-kind link
//	}
//	geom, ok := resolved.ToUserSpace(bbox, viewport)
//
// # Resolution
//
// Resolution walks the fallback chain, merging unset fields field by
// field (the referencing element's own values always win), detecting
// reference cycles with a per-call visited stack, and filling whatever
// remains with the SVG per-attribute defaults. The result is memoized on
// the node: a node is resolved at most once per document lifetime.
//
// A dangling href is not a document error; the link is dropped and
// defaults apply. A cycle, an over-long chain, or an href naming an
// element of the wrong kind fails resolution for that node only.
//
// # Geometry
//
// ResolvedGradient.ToUserSpace and ResolvedPattern.ToUserSpace map a
// resolved record plus the referencing element's bounding box and the
// current viewport to drawing-space coordinates: the gradient axis or
// circle (with the radial focal point clamped to the circle), or the
// pattern tile rectangle with its placement and content transforms.
//
// # Compositing
//
// The pixel subpackage provides the numeric primitives raster backends
// need when realizing resolved paint: premultiplied-alpha conversion,
// luminance-to-alpha masking, and ARGB32 packing.
package svgpaint

// Version is the current version of the library.
const Version = "0.1.0"
