package svgpaint

// CoordUnits selects the coordinate system a paint server's geometry is
// expressed in.
type CoordUnits int

const (
	// ObjectBoundingBox interprets coordinates as fractions of the
	// referencing element's bounding box.
	ObjectBoundingBox CoordUnits = iota
	// UserSpaceOnUse interprets coordinates in the user space in effect
	// when the paint server is referenced.
	UserSpaceOnUse
)

// String returns the SVG attribute spelling of the units value.
func (u CoordUnits) String() string {
	if u == UserSpaceOnUse {
		return "userSpaceOnUse"
	}
	return "objectBoundingBox"
}

// Per-attribute defaults. gradientUnits and patternUnits default to
// objectBoundingBox; patternContentUnits defaults to userSpaceOnUse.
const (
	defaultGradientUnits       = ObjectBoundingBox
	defaultPatternUnits        = ObjectBoundingBox
	defaultPatternContentUnits = UserSpaceOnUse
)

// SpreadMethod defines how a gradient extends beyond its bounds.
type SpreadMethod int

const (
	// SpreadPad extends the edge stop colors beyond the bounds (default).
	SpreadPad SpreadMethod = iota
	// SpreadReflect mirrors the gradient beyond the bounds.
	SpreadReflect
	// SpreadRepeat repeats the gradient beyond the bounds.
	SpreadRepeat
)
