package svgpaint

import "errors"

// MaxReferencedNodes bounds how many fallback nodes a single resolution
// call may acquire. It guards against adversarial or accidentally
// enormous reference chains even when no literal cycle exists.
const MaxReferencedNodes = 256

// acquiredNodes tracks fallback acquisitions for one resolution call
// and enforces the MaxReferencedNodes budget.
type acquiredNodes struct {
	doc *Document
	n   int
}

func (a *acquiredNodes) acquire(id NodeID) (*Node, error) {
	if a.n >= MaxReferencedNodes {
		return nil, ErrMaxReferencesExceeded
	}
	node, ok := a.doc.Lookup(id)
	if !ok {
		return nil, errNodeNotFound
	}
	a.n++
	return node, nil
}

// nodeStack records the nodes visited by the current resolution call.
// Cycle detection is a stack-membership check scoped to this call; a
// later, unrelated resolution starts with a fresh stack.
type nodeStack []*Node

func (s *nodeStack) push(n *Node) { *s = append(*s, n) }

func (s nodeStack) contains(n *Node) bool {
	for _, v := range s {
		if v == n {
			return true
		}
	}
	return false
}

// unresolved is the contract shared by partially specified paint server
// records: a record can report whether every field is set, merge unset
// fields from a fallback record, and fill the remainder with defaults.
type unresolved[T any] interface {
	isResolved() bool
	resolveFromFallback(T) T
	resolveFromDefaults() T
}

// extractFunc pulls the unresolved record and its own fallback link out
// of a chain node, returning an InvalidLinkTypeError when the node's
// kind cannot serve as a fallback.
type extractFunc[T any] func(*Node) (T, *NodeID, error)

// resolveChain walks a fallback chain until rec is fully resolved.
//
// A dangling link is not a document error: the link is dropped and the
// record receives its defaults. A cycle or an over-budget chain fails
// resolution; those errors must reach the caller rather than being
// papered over with a guessed value.
func resolveChain[T unresolved[T]](doc *Document, rec T, fallback *NodeID, extract extractFunc[T]) (T, error) {
	acquired := acquiredNodes{doc: doc}
	var stack nodeStack
	var zero T

	for !rec.isResolved() {
		if fallback == nil {
			return rec.resolveFromDefaults(), nil
		}

		node, err := acquired.acquire(*fallback)
		if err != nil {
			if errors.Is(err, ErrMaxReferencesExceeded) {
				return zero, err
			}
			Logger().Debug("svgpaint: stopping paint server resolution",
				"href", string(*fallback), "reason", err)
			return rec.resolveFromDefaults(), nil
		}

		if stack.contains(node) {
			return zero, &CircularReferenceError{ID: node.ID()}
		}

		fb, next, err := extract(node)
		if err != nil {
			return zero, err
		}

		rec = rec.resolveFromFallback(fb)
		fallback = next
		stack.push(node)
	}

	return rec, nil
}
