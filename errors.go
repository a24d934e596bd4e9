package svgpaint

import (
	"errors"
	"fmt"
)

// Sentinel errors for fallback resolution failures. The concrete errors
// returned by resolution wrap these, so callers can classify failures
// with errors.Is.
var (
	// ErrCircularReference reports a fallback chain that revisits a node
	// already on the current resolution stack.
	ErrCircularReference = errors.New("svgpaint: circular reference in fallback chain")

	// ErrMaxReferencesExceeded reports a fallback chain longer than the
	// MaxReferencedNodes budget.
	ErrMaxReferencesExceeded = errors.New("svgpaint: maximum number of referenced nodes exceeded")

	// ErrInvalidLinkType reports an href that names an element of an
	// incompatible kind.
	ErrInvalidLinkType = errors.New("svgpaint: fallback link to incompatible element kind")
)

// errNodeNotFound marks a dangling href. It never escapes resolution:
// an absent fallback is not a document error and degrades to defaults.
var errNodeNotFound = errors.New("svgpaint: node not found")

// CircularReferenceError identifies the node at which a fallback chain
// closed on itself.
type CircularReferenceError struct {
	ID NodeID
}

func (e *CircularReferenceError) Error() string {
	return fmt.Sprintf("%v: %q", ErrCircularReference, string(e.ID))
}

func (e *CircularReferenceError) Unwrap() error { return ErrCircularReference }

// InvalidLinkTypeError identifies an href whose target element cannot
// serve as a fallback for the referencing paint server.
type InvalidLinkTypeError struct {
	ID   NodeID
	Kind ElementKind
}

func (e *InvalidLinkTypeError) Error() string {
	return fmt.Sprintf("%v: %q is a %v", ErrInvalidLinkType, string(e.ID), e.Kind)
}

func (e *InvalidLinkTypeError) Unwrap() error { return ErrInvalidLinkType }
