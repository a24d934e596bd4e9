package svgpaint

// NodeID identifies an element within a Document, as named by href
// references.
type NodeID string

// ElementKind discriminates the element types this package cares about.
type ElementKind int

const (
	// KindShape is any drawable element usable as pattern content.
	KindShape ElementKind = iota
	// KindLinearGradient is a linearGradient element.
	KindLinearGradient
	// KindRadialGradient is a radialGradient element.
	KindRadialGradient
	// KindPattern is a pattern element.
	KindPattern
	// KindStop is a gradient stop element.
	KindStop
)

// String returns the SVG element name for the kind.
func (k ElementKind) String() string {
	switch k {
	case KindLinearGradient:
		return "linearGradient"
	case KindRadialGradient:
		return "radialGradient"
	case KindPattern:
		return "pattern"
	case KindStop:
		return "stop"
	default:
		return "shape"
	}
}

// IsGradient reports whether the kind is one of the gradient elements.
func (k ElementKind) IsGradient() bool {
	return k == KindLinearGradient || k == KindRadialGradient
}

// Document is an arena-style store of already-parsed elements. It is
// built once and then treated as read-only for the remainder of a
// render; resolution never mutates the tree. Parsing XML and cascading
// presentation properties happen upstream of this type.
type Document struct {
	nodes []*Node
	byID  map[NodeID]*Node
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{byID: make(map[NodeID]*Node)}
}

// Lookup resolves an element id. Absence is not an error at this layer;
// callers decide whether a missing id matters.
func (d *Document) Lookup(id NodeID) (*Node, bool) {
	n, ok := d.byID[id]
	return n, ok
}

// Stop is an already-parsed gradient stop: an offset along the gradient
// and a straight-alpha color.
type Stop struct {
	Offset float64
	Color  RGBA
}

// Node is a single element in a Document. Nodes are created through the
// Document's Add methods and live as long as the document does.
type Node struct {
	doc      *Document
	index    int
	id       NodeID
	kind     ElementKind
	children []*Node

	linearAttrs  *LinearGradientAttrs
	radialAttrs  *RadialGradientAttrs
	patternAttrs *PatternAttrs
	stop         Stop

	resolvedGradient onceCell[*ResolvedGradient]
	resolvedPattern  onceCell[*ResolvedPattern]
}

// ID returns the element id, which is empty for anonymous nodes.
func (n *Node) ID() NodeID { return n.id }

// Kind returns the element kind.
func (n *Node) Kind() ElementKind { return n.kind }

// Children returns the node's child elements in document order.
func (n *Node) Children() []*Node { return n.children }

// hasElementChildren reports whether the node has any usable child
// content.
func (n *Node) hasElementChildren() bool { return len(n.children) > 0 }

// newNode allocates a node in the arena and indexes it by id when the
// id is non-empty.
func (d *Document) newNode(id NodeID, kind ElementKind) *Node {
	n := &Node{doc: d, index: len(d.nodes), id: id, kind: kind}
	d.nodes = append(d.nodes, n)
	if id != "" {
		d.byID[id] = n
	}
	return n
}

// AddLinearGradient adds a linearGradient element with the given parsed
// attributes and stop children.
func (d *Document) AddLinearGradient(id NodeID, attrs LinearGradientAttrs, stops ...Stop) *Node {
	n := d.newNode(id, KindLinearGradient)
	n.linearAttrs = &attrs
	d.addStops(n, stops)
	return n
}

// AddRadialGradient adds a radialGradient element with the given parsed
// attributes and stop children.
func (d *Document) AddRadialGradient(id NodeID, attrs RadialGradientAttrs, stops ...Stop) *Node {
	n := d.newNode(id, KindRadialGradient)
	n.radialAttrs = &attrs
	d.addStops(n, stops)
	return n
}

// AddPattern adds a pattern element. Tile content is attached with
// AppendChild.
func (d *Document) AddPattern(id NodeID, attrs PatternAttrs) *Node {
	n := d.newNode(id, KindPattern)
	n.patternAttrs = &attrs
	return n
}

// AddShape adds a drawable element, usable as pattern tile content.
func (d *Document) AddShape(id NodeID) *Node {
	return d.newNode(id, KindShape)
}

// AppendChild attaches child as the last child element of n.
func (n *Node) AppendChild(child *Node) {
	n.children = append(n.children, child)
}

func (d *Document) addStops(n *Node, stops []Stop) {
	for _, s := range stops {
		child := d.newNode("", KindStop)
		child.stop = s
		n.children = append(n.children, child)
	}
}

// WeakNode is a non-owning back-reference to a node, resolved through
// the owning document at use time. It never keeps the node alive beyond
// the document's own lifetime.
type WeakNode struct {
	doc   *Document
	index int
}

// Downgrade returns a weak reference to the node.
func (n *Node) Downgrade() WeakNode {
	return WeakNode{doc: n.doc, index: n.index}
}

// Upgrade returns the referenced node if the document still holds it.
func (w WeakNode) Upgrade() (*Node, bool) {
	if w.doc == nil || w.index < 0 || w.index >= len(w.doc.nodes) {
		return nil, false
	}
	return w.doc.nodes[w.index], true
}
