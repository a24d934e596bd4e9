package svgpaint

// LinearGradientAttrs are the parsed attributes of a linearGradient
// element. A nil field means the attribute was absent; it will be
// filled from the fallback chain or, failing that, its SVG default.
type LinearGradientAttrs struct {
	Units     *CoordUnits
	Transform *Matrix
	Spread    *SpreadMethod
	Href      *NodeID

	X1, Y1, X2, Y2 *Length
}

// RadialGradientAttrs are the parsed attributes of a radialGradient
// element. A nil field means the attribute was absent.
type RadialGradientAttrs struct {
	Units     *CoordUnits
	Transform *Matrix
	Spread    *SpreadMethod
	Href      *NodeID

	Cx, Cy, R, Fx, Fy *Length
}

// gradientCommon holds the fields shared by both gradient kinds during
// resolution. stops == nil means no stop children have been found yet
// on any node in the chain.
type gradientCommon struct {
	units     *CoordUnits
	transform *Matrix
	spread    *SpreadMethod
	stops     []ColorStop
}

func (c gradientCommon) isResolved() bool {
	return c.units != nil && c.transform != nil && c.spread != nil && c.stops != nil
}

func (c gradientCommon) resolveFromFallback(fb gradientCommon) gradientCommon {
	if c.units == nil {
		c.units = fb.units
	}
	if c.transform == nil {
		c.transform = fb.transform
	}
	if c.spread == nil {
		c.spread = fb.spread
	}
	if c.stops == nil {
		c.stops = fb.stops
	}
	return c
}

func (c gradientCommon) resolveFromDefaults() gradientCommon {
	if c.units == nil {
		c.units = ref(defaultGradientUnits)
	}
	if c.transform == nil {
		c.transform = ref(Identity())
	}
	if c.spread == nil {
		c.spread = ref(SpreadPad)
	}
	if c.stops == nil {
		c.stops = []ColorStop{}
	}
	return c
}

// gradientVariant is the kind-specific half of an unresolved gradient.
// It is a sealed two-member union: linearVariant and radialVariant.
type gradientVariant interface {
	variantResolved() bool
	// variantFromFallback merges unset coordinate fields from fb.
	// Fallbacks of the other gradient kind contribute nothing here;
	// only the common fields cross kinds.
	variantFromFallback(fb gradientVariant) gradientVariant
	variantFromDefaults() gradientVariant
}

type linearVariant struct {
	x1, y1, x2, y2 *Length
}

func (v linearVariant) variantResolved() bool {
	return v.x1 != nil && v.y1 != nil && v.x2 != nil && v.y2 != nil
}

func (v linearVariant) variantFromFallback(fb gradientVariant) gradientVariant {
	lf, ok := fb.(linearVariant)
	if !ok {
		return v
	}
	if v.x1 == nil {
		v.x1 = lf.x1
	}
	if v.y1 == nil {
		v.y1 = lf.y1
	}
	if v.x2 == nil {
		v.x2 = lf.x2
	}
	if v.y2 == nil {
		v.y2 = lf.y2
	}
	return v
}

func (v linearVariant) variantFromDefaults() gradientVariant {
	// SVG defaults: x1="0%" y1="0%" x2="100%" y2="0%".
	if v.x1 == nil {
		v.x1 = ref(Pct(0))
	}
	if v.y1 == nil {
		v.y1 = ref(Pct(0))
	}
	if v.x2 == nil {
		v.x2 = ref(Pct(100))
	}
	if v.y2 == nil {
		v.y2 = ref(Pct(0))
	}
	return v
}

type radialVariant struct {
	cx, cy, r, fx, fy *Length
}

func (v radialVariant) variantResolved() bool {
	return v.cx != nil && v.cy != nil && v.r != nil && v.fx != nil && v.fy != nil
}

func (v radialVariant) variantFromFallback(fb gradientVariant) gradientVariant {
	rf, ok := fb.(radialVariant)
	if !ok {
		return v
	}
	if v.cx == nil {
		v.cx = rf.cx
	}
	if v.cy == nil {
		v.cy = rf.cy
	}
	if v.r == nil {
		v.r = rf.r
	}
	if v.fx == nil {
		v.fx = rf.fx
	}
	if v.fy == nil {
		v.fy = rf.fy
	}
	return v
}

func (v radialVariant) variantFromDefaults() gradientVariant {
	// SVG defaults: cx="50%" cy="50%" r="50%"; fx and fy default to the
	// resolved values of cx and cy, so the centers must be filled first.
	if v.cx == nil {
		v.cx = ref(Pct(50))
	}
	if v.cy == nil {
		v.cy = ref(Pct(50))
	}
	if v.r == nil {
		v.r = ref(Pct(50))
	}
	if v.fx == nil {
		v.fx = v.cx
	}
	if v.fy == nil {
		v.fy = v.cy
	}
	return v
}

// unresolvedGradient is a gradient record with possibly-missing fields,
// as built from a single node's attributes.
type unresolvedGradient struct {
	common  gradientCommon
	variant gradientVariant
}

func (g unresolvedGradient) isResolved() bool {
	return g.common.isResolved() && g.variant.variantResolved()
}

func (g unresolvedGradient) resolveFromFallback(fb unresolvedGradient) unresolvedGradient {
	return unresolvedGradient{
		common:  g.common.resolveFromFallback(fb.common),
		variant: g.variant.variantFromFallback(fb.variant),
	}
}

func (g unresolvedGradient) resolveFromDefaults() unresolvedGradient {
	return unresolvedGradient{
		common:  g.common.resolveFromDefaults(),
		variant: g.variant.variantFromDefaults(),
	}
}

// GradientVariant is the kind-specific geometry of a resolved gradient.
// This is a sealed interface: Linear and Radial are the only
// implementations, so kind dispatch is an exhaustive type switch.
type GradientVariant interface {
	gradientVariantMarker()
}

// Linear is the axis of a resolved linear gradient. Under
// ObjectBoundingBox units the lengths are fractions of the bounding box.
type Linear struct {
	X1, Y1, X2, Y2 Length
}

func (Linear) gradientVariantMarker() {}

// Radial is the circle and focal point of a resolved radial gradient.
type Radial struct {
	Cx, Cy, R, Fx, Fy Length
}

func (Radial) gradientVariantMarker() {}

// ResolvedGradient is a gradient with every field present. Instances
// are produced by Node.ResolveGradient and are immutable.
type ResolvedGradient struct {
	Units     CoordUnits
	Transform Matrix
	Spread    SpreadMethod
	Stops     []ColorStop
	Variant   GradientVariant
}

// intoResolved converts a fully resolved record. Calling it before
// every field is set is a programming error, not a document error.
func (g unresolvedGradient) intoResolved() *ResolvedGradient {
	if !g.isResolved() {
		panic("svgpaint: converting incompletely resolved gradient")
	}

	out := &ResolvedGradient{
		Units:     *g.common.units,
		Transform: *g.common.transform,
		Spread:    *g.common.spread,
		Stops:     g.common.stops,
	}
	switch v := g.variant.(type) {
	case linearVariant:
		out.Variant = Linear{X1: *v.x1, Y1: *v.y1, X2: *v.x2, Y2: *v.y2}
	case radialVariant:
		out.Variant = Radial{Cx: *v.cx, Cy: *v.cy, R: *v.r, Fx: *v.fx, Fy: *v.fy}
	default:
		panic("svgpaint: unknown gradient variant")
	}
	return out
}

// stopSlice collects the already-parsed color stops from the node's
// stop children, in document order, clamping offsets to stay
// monotonically non-decreasing. It returns nil when the node has no
// stop children, which resolution treats as "unset".
func (n *Node) stopSlice() []ColorStop {
	var stops []ColorStop
	for _, child := range n.children {
		if child.kind != KindStop {
			continue
		}
		stops = appendStop(stops, ColorStop{Offset: child.stop.Offset, Color: child.stop.Color})
	}
	return stops
}

// gradientUnresolved builds the unresolved record and fallback link
// from the node's own attributes and stop children.
func (n *Node) gradientUnresolved() (unresolvedGradient, *NodeID) {
	switch n.kind {
	case KindLinearGradient:
		a := n.linearAttrs
		return unresolvedGradient{
			common: gradientCommon{
				units:     a.Units,
				transform: a.Transform,
				spread:    a.Spread,
				stops:     n.stopSlice(),
			},
			variant: linearVariant{x1: a.X1, y1: a.Y1, x2: a.X2, y2: a.Y2},
		}, a.Href
	case KindRadialGradient:
		a := n.radialAttrs
		return unresolvedGradient{
			common: gradientCommon{
				units:     a.Units,
				transform: a.Transform,
				spread:    a.Spread,
				stops:     n.stopSlice(),
			},
			variant: radialVariant{cx: a.Cx, cy: a.Cy, r: a.R, fx: a.Fx, fy: a.Fy},
		}, a.Href
	default:
		panic("svgpaint: gradientUnresolved on non-gradient node")
	}
}

// extractGradient pulls the unresolved record out of a fallback node.
// Either gradient kind is an acceptable target for a gradient href; the
// kind-specific coordinates only merge between matching kinds.
func extractGradient(node *Node) (unresolvedGradient, *NodeID, error) {
	if !node.kind.IsGradient() {
		return unresolvedGradient{}, nil, &InvalidLinkTypeError{ID: node.id, Kind: node.kind}
	}
	rec, link := node.gradientUnresolved()
	return rec, link, nil
}

// ResolveGradient resolves the gradient declared by n, walking its
// fallback chain and filling defaults. The result is computed once and
// cached for the node's lifetime; failed resolutions are not cached.
//
// Calling ResolveGradient on a non-gradient node is a programming error
// and panics.
func (n *Node) ResolveGradient() (*ResolvedGradient, error) {
	if !n.kind.IsGradient() {
		panic("svgpaint: ResolveGradient on " + n.kind.String() + " node")
	}
	return n.resolvedGradient.getOrTryInit(func() (*ResolvedGradient, error) {
		rec, link := n.gradientUnresolved()
		resolved, err := resolveChain(n.doc, rec, link, extractGradient)
		if err != nil {
			return nil, err
		}
		return resolved.intoResolved(), nil
	})
}

// ref returns a pointer to v. Defaulting code uses it to fill optional
// fields.
func ref[T any](v T) *T { return &v }
