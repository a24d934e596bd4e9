package svgpaint

import "math"

// GeometryVariant is the kind-specific half of a gradient mapped to
// user space. Sealed: LinearGeometry and RadialGeometry are the only
// implementations.
type GeometryVariant interface {
	// offsetAt returns the gradient offset for a point in gradient
	// coordinate space, before spread handling. ok is false when the
	// geometry is degenerate at that point.
	offsetAt(p Point) (t float64, ok bool)
}

// LinearGeometry is a gradient axis in gradient coordinate space.
type LinearGeometry struct {
	P0, P1 Point
}

// offsetAt projects the point onto the gradient axis:
// t = dot(P - P0, P1 - P0) / |P1 - P0|².
func (g LinearGeometry) offsetAt(p Point) (float64, bool) {
	d := g.P1.Sub(g.P0)
	lengthSq := d.Dot(d)
	if lengthSq == 0 {
		return 0, true
	}
	return p.Sub(g.P0).Dot(d) / lengthSq, true
}

// RadialGeometry is a gradient circle with its corrected focal point.
type RadialGeometry struct {
	Center Point
	Radius float64
	Focus  Point
}

// offsetAt computes the gradient offset by intersecting the ray from
// the focus through the point with the gradient circle.
func (g RadialGeometry) offsetAt(p Point) (float64, bool) {
	if g.Radius == 0 {
		return 0, true
	}

	// Simple case: focus at center.
	if g.Focus == g.Center {
		return p.Distance(g.Center) / g.Radius, true
	}

	// Ray: P(t) = Focus + t * (p - Focus)
	// Circle: |P - Center|² = Radius²
	d := p.Sub(g.Focus)
	f := g.Center.Sub(g.Focus)

	a := d.Dot(d)
	if a == 0 {
		// Point at the focus.
		return 0, true
	}
	b := -2 * d.Dot(f)
	c := f.Dot(f) - g.Radius*g.Radius

	disc := b*b - 4*a*c
	if disc < 0 {
		return 1, true
	}

	sqrtD := math.Sqrt(disc)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)

	var t float64
	switch {
	case t1 > 0 && t2 > 0:
		t = math.Min(t1, t2)
	case t1 > 0:
		t = t1
	case t2 > 0:
		t = t2
	default:
		return 0, true
	}

	pointDist := math.Sqrt(a)
	intersectDist := t * pointDist
	if intersectDist == 0 {
		return 0, true
	}
	return pointDist / intersectDist, true
}

// GradientGeometry is a resolved gradient mapped to concrete user-space
// rendering parameters: the axis or circle in gradient coordinate
// space, plus the transform from that space into drawing space.
type GradientGeometry struct {
	// Transform maps gradient coordinate space to user space. Raster
	// backends sample through its inverse (the set-matrix convention).
	Transform Matrix
	Spread    SpreadMethod
	Stops     []ColorStop
	Variant   GeometryVariant
}

// ToUserSpace maps the resolved gradient onto concrete coordinates for
// the referencing element's bounding box and the current viewport. ok
// is false when there is nothing to paint: an empty bounding box under
// objectBoundingBox units.
func (g *ResolvedGradient) ToUserSpace(bbox Rect, vp Viewport) (*GradientGeometry, bool) {
	transform := g.Transform
	if g.Units == ObjectBoundingBox {
		if bbox.IsEmpty() {
			return nil, false
		}
		// Coordinates are fractions of the bounding box; compose the
		// box mapping after the gradient's own transform.
		bboxMatrix := Translate(bbox.Min.X, bbox.Min.Y).Multiply(Scale(bbox.Width(), bbox.Height()))
		transform = bboxMatrix.Multiply(g.Transform)
		vp = unitViewport
	}

	var variant GeometryVariant
	switch v := g.Variant.(type) {
	case Linear:
		variant = LinearGeometry{
			P0: Pt(v.X1.Normalize(LengthHorizontal, vp), v.Y1.Normalize(LengthVertical, vp)),
			P1: Pt(v.X2.Normalize(LengthHorizontal, vp), v.Y2.Normalize(LengthVertical, vp)),
		}
	case Radial:
		cx := v.Cx.Normalize(LengthHorizontal, vp)
		cy := v.Cy.Normalize(LengthVertical, vp)
		r := v.R.Normalize(LengthBoth, vp)
		fx, fy := FixFocusPoint(v.Fx.Normalize(LengthHorizontal, vp), v.Fy.Normalize(LengthVertical, vp), cx, cy, r)
		variant = RadialGeometry{Center: Pt(cx, cy), Radius: r, Focus: Pt(fx, fy)}
	default:
		panic("svgpaint: unknown gradient variant")
	}

	return &GradientGeometry{
		Transform: transform,
		Spread:    g.Spread,
		Stops:     g.Stops,
		Variant:   variant,
	}, true
}

// FixFocusPoint clamps a radial gradient focal point to the gradient
// circle. A focus inside the circle is returned unchanged; one outside
// is projected onto the circle's edge along the ray from the center
// through the focus, per the SVG radial gradient rule.
func FixFocusPoint(fx, fy, cx, cy, radius float64) (float64, float64) {
	if (fx-cx)*(fx-cx)+(fy-cy)*(fy-cy) <= radius*radius {
		return fx, fy
	}

	// Translate to the origin, scale the focus vector to magnitude
	// radius, translate back.
	dx := fx - cx
	dy := fy - cy
	mag := math.Sqrt(dx*dx + dy*dy)
	scale := mag / radius

	return dx/scale + cx, dy/scale + cy
}
