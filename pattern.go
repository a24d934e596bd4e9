package svgpaint

// PatternAttrs are the parsed attributes of a pattern element. A nil
// field means the attribute was absent; it will be filled from the
// fallback chain or, failing that, its SVG default.
type PatternAttrs struct {
	Units        *CoordUnits
	ContentUnits *CoordUnits
	ViewBox      *ViewBox
	AspectRatio  *AspectRatio
	Transform    *Matrix
	Href         *NodeID

	X, Y, Width, Height *Length
}

// viewBoxState distinguishes "not resolved yet" (nil pointer to the
// state) from "resolved with no viewBox present" (state with vb == nil).
// The viewBox attribute can legitimately be absent in a fully resolved
// pattern.
type viewBoxState struct {
	vb *ViewBox
}

// childrenState enumerates the resolution states of a pattern's tile
// content.
type childrenState int

const (
	// childrenUnresolved: no usable child content found yet on this node.
	childrenUnresolved childrenState = iota
	// childrenResolvedEmpty: the chain is exhausted and no node in it
	// had child content. Only defaulting produces this state.
	childrenResolvedEmpty
	// childrenWith: a node in the chain has usable child content.
	childrenWith
)

// unresolvedChildren tracks which pattern in a fallback chain supplies
// the tile content. The node reference is non-owning; it is only valid
// while the document is alive.
type unresolvedChildren struct {
	state childrenState
	node  WeakNode
}

// childrenFromNode determines a node's own children state.
func childrenFromNode(n *Node) unresolvedChildren {
	if n.hasElementChildren() {
		return unresolvedChildren{state: childrenWith, node: n.Downgrade()}
	}
	return unresolvedChildren{state: childrenUnresolved}
}

func (c unresolvedChildren) isResolved() bool {
	return c.state != childrenUnresolved
}

func (c unresolvedChildren) resolveFromFallback(fb unresolvedChildren) unresolvedChildren {
	// Whichever side already has concrete children wins, self first.
	// Two merely-unresolved states stay unresolved.
	switch {
	case c.state == childrenWith:
		return c
	case fb.state == childrenWith:
		return fb
	default:
		return c
	}
}

func (c unresolvedChildren) resolveFromDefaults() unresolvedChildren {
	if c.state == childrenUnresolved {
		return unresolvedChildren{state: childrenResolvedEmpty}
	}
	return c
}

// unresolvedPattern is a pattern record with possibly-missing fields,
// as built from a single node's attributes.
type unresolvedPattern struct {
	units        *CoordUnits
	contentUnits *CoordUnits
	vbox         *viewBoxState
	aspect       *AspectRatio
	transform    *Matrix
	x, y         *Length
	width        *Length
	height       *Length
	children     unresolvedChildren
}

func (p unresolvedPattern) isResolved() bool {
	return p.units != nil &&
		p.contentUnits != nil &&
		p.vbox != nil &&
		p.aspect != nil &&
		p.transform != nil &&
		p.x != nil &&
		p.y != nil &&
		p.width != nil &&
		p.height != nil &&
		p.children.isResolved()
}

func (p unresolvedPattern) resolveFromFallback(fb unresolvedPattern) unresolvedPattern {
	if p.units == nil {
		p.units = fb.units
	}
	if p.contentUnits == nil {
		p.contentUnits = fb.contentUnits
	}
	if p.vbox == nil {
		p.vbox = fb.vbox
	}
	if p.aspect == nil {
		p.aspect = fb.aspect
	}
	if p.transform == nil {
		p.transform = fb.transform
	}
	if p.x == nil {
		p.x = fb.x
	}
	if p.y == nil {
		p.y = fb.y
	}
	if p.width == nil {
		p.width = fb.width
	}
	if p.height == nil {
		p.height = fb.height
	}
	p.children = p.children.resolveFromFallback(fb.children)
	return p
}

func (p unresolvedPattern) resolveFromDefaults() unresolvedPattern {
	if p.units == nil {
		p.units = ref(defaultPatternUnits)
	}
	if p.contentUnits == nil {
		p.contentUnits = ref(defaultPatternContentUnits)
	}
	if p.vbox == nil {
		p.vbox = &viewBoxState{} // resolved: viewBox not present
	}
	if p.aspect == nil {
		p.aspect = ref(defaultAspectRatio())
	}
	if p.transform == nil {
		p.transform = ref(Identity())
	}
	if p.x == nil {
		p.x = ref(Num(0))
	}
	if p.y == nil {
		p.y = ref(Num(0))
	}
	if p.width == nil {
		p.width = ref(Num(0))
	}
	if p.height == nil {
		p.height = ref(Num(0))
	}
	p.children = p.children.resolveFromDefaults()
	return p
}

// ResolvedPattern is a pattern with every field present. Instances are
// produced by Node.ResolvePattern and are immutable.
type ResolvedPattern struct {
	Units        CoordUnits
	ContentUnits CoordUnits
	// ViewBox is nil when the resolved pattern has no viewBox.
	ViewBox     *ViewBox
	AspectRatio AspectRatio
	Transform   Matrix
	X, Y        Length
	Width       Length
	Height      Length

	children unresolvedChildren
}

// intoResolved converts a fully resolved record. Calling it before
// every field is set is a programming error, not a document error.
func (p unresolvedPattern) intoResolved() *ResolvedPattern {
	if !p.isResolved() {
		panic("svgpaint: converting incompletely resolved pattern")
	}
	return &ResolvedPattern{
		Units:        *p.units,
		ContentUnits: *p.contentUnits,
		ViewBox:      p.vbox.vb,
		AspectRatio:  *p.aspect,
		Transform:    *p.transform,
		X:            *p.x,
		Y:            *p.y,
		Width:        *p.width,
		Height:       *p.height,
		children:     p.children,
	}
}

// ContentNode returns the node whose child elements are the pattern's
// tile content. ok is false when no node in the fallback chain had any
// content: a legitimate, silently empty paint, not an error.
func (p *ResolvedPattern) ContentNode() (*Node, bool) {
	if p.children.state != childrenWith {
		return nil, false
	}
	return p.children.node.Upgrade()
}

// patternUnresolved builds the unresolved record and fallback link from
// the node's own attributes and child scan.
func (n *Node) patternUnresolved() (unresolvedPattern, *NodeID) {
	a := n.patternAttrs
	rec := unresolvedPattern{
		units:        a.Units,
		contentUnits: a.ContentUnits,
		aspect:       a.AspectRatio,
		transform:    a.Transform,
		x:            a.X,
		y:            a.Y,
		width:        a.Width,
		height:       a.Height,
		children:     childrenFromNode(n),
	}
	if a.ViewBox != nil {
		rec.vbox = &viewBoxState{vb: a.ViewBox}
	}
	return rec, a.Href
}

// extractPattern pulls the unresolved record out of a fallback node.
// Only pattern elements can serve as pattern fallbacks.
func extractPattern(node *Node) (unresolvedPattern, *NodeID, error) {
	if node.kind != KindPattern {
		return unresolvedPattern{}, nil, &InvalidLinkTypeError{ID: node.id, Kind: node.kind}
	}
	rec, link := node.patternUnresolved()
	return rec, link, nil
}

// ResolvePattern resolves the pattern declared by n, walking its
// fallback chain and filling defaults. The result is computed once and
// cached for the node's lifetime; failed resolutions are not cached.
//
// Calling ResolvePattern on a non-pattern node is a programming error
// and panics.
func (n *Node) ResolvePattern() (*ResolvedPattern, error) {
	if n.kind != KindPattern {
		panic("svgpaint: ResolvePattern on " + n.kind.String() + " node")
	}
	return n.resolvedPattern.getOrTryInit(func() (*ResolvedPattern, error) {
		rec, link := n.patternUnresolved()
		resolved, err := resolveChain(n.doc, rec, link, extractPattern)
		if err != nil {
			return nil, err
		}
		return resolved.intoResolved(), nil
	})
}

// UserSpacePattern is a pattern normalized to user-space units: the
// tile size plus the transforms a raster backend needs to place tile
// instances and to draw the tile's content.
type UserSpacePattern struct {
	// Width and Height are the tile size in user space.
	Width, Height float64
	// Transform is the pattern's own declared transform.
	Transform Matrix
	// CoordTransform places the tile rectangle in drawing space: tile
	// origin plus bounding-box offset, composed with Transform.
	CoordTransform Matrix
	// ContentTransform maps the tile's child content into the tile
	// rectangle: the viewBox fit when a viewBox is present, otherwise
	// the content-units scaling.
	ContentTransform Matrix
	// Node supplies the tile's child content.
	Node *Node
}

// ToUserSpace maps the resolved pattern onto concrete user-space
// parameters. ok is false when there is nothing to paint: no content
// anywhere in the chain, an empty bounding box under objectBoundingBox
// units, or a zero-area tile.
func (p *ResolvedPattern) ToUserSpace(bbox Rect, vp Viewport) (*UserSpacePattern, bool) {
	node, ok := p.ContentNode()
	if !ok {
		return nil, false
	}
	if p.Units == ObjectBoundingBox && bbox.IsEmpty() {
		return nil, false
	}

	cvp := vp
	if p.Units == ObjectBoundingBox {
		cvp = unitViewport
	}
	x := p.X.Normalize(LengthHorizontal, cvp)
	y := p.Y.Normalize(LengthVertical, cvp)
	w := p.Width.Normalize(LengthHorizontal, cvp)
	h := p.Height.Normalize(LengthVertical, cvp)

	// Tile rectangle and placement in drawing space.
	var width, height float64
	var coord Matrix
	switch p.Units {
	case ObjectBoundingBox:
		bw, bh := bbox.Width(), bbox.Height()
		width = w * bw
		height = h * bh
		coord = Translate(bbox.Min.X+x*bw, bbox.Min.Y+y*bh)
	default:
		width = w
		height = h
		coord = Translate(x, y)
	}
	if width <= 0 || height <= 0 {
		return nil, false
	}
	coord = p.Transform.Multiply(coord)

	// Tile content coordinate system.
	var content Matrix
	if p.ViewBox != nil {
		if p.ViewBox.W <= 0 || p.ViewBox.H <= 0 {
			// A zero-area viewBox disables rendering of the element.
			return nil, false
		}
		r := p.AspectRatio.Compute(*p.ViewBox, RectXYWH(0, 0, width, height))
		sw := r.Width() / p.ViewBox.W
		sh := r.Height() / p.ViewBox.H
		tx := r.Min.X - p.ViewBox.X*sw
		ty := r.Min.Y - p.ViewBox.Y*sh
		content = Translate(tx, ty).Multiply(Scale(sw, sh))
	} else {
		switch p.ContentUnits {
		case ObjectBoundingBox:
			content = Scale(bbox.Width(), bbox.Height())
		default:
			content = Identity()
		}
	}

	return &UserSpacePattern{
		Width:            width,
		Height:           height,
		Transform:        p.Transform,
		CoordTransform:   coord,
		ContentTransform: content,
		Node:             node,
	}, true
}
