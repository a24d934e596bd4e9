package svgpaint

import "math"

// LengthDir selects which viewport axis a percentage length normalizes
// against.
type LengthDir int

const (
	// LengthHorizontal normalizes against the viewport width.
	LengthHorizontal LengthDir = iota
	// LengthVertical normalizes against the viewport height.
	LengthVertical
	// LengthBoth normalizes against the viewport's normalized diagonal,
	// sqrt((w² + h²) / 2), used for radii.
	LengthBoth
)

// Viewport is the reference box percentage lengths resolve against.
type Viewport struct {
	Width, Height float64
}

// unitViewport stands in for the real viewport while resolving
// objectBoundingBox coordinates, so that both percentages and plain
// numbers come out as fractions of the bounding box.
var unitViewport = Viewport{Width: 1, Height: 1}

// Length is an already-parsed SVG length: either an absolute user-space
// number or a percentage of the current viewport. Parsing the attribute
// grammar is the document layer's concern, not this package's.
type Length struct {
	Value   float64
	Percent bool
}

// Num returns an absolute length.
func Num(v float64) Length {
	return Length{Value: v}
}

// Pct returns a percentage length; Pct(50) is 50%.
func Pct(p float64) Length {
	return Length{Value: p / 100, Percent: true}
}

// Normalize resolves the length to a user-space number against one axis
// of the viewport.
func (l Length) Normalize(dir LengthDir, vp Viewport) float64 {
	if !l.Percent {
		return l.Value
	}
	switch dir {
	case LengthHorizontal:
		return l.Value * vp.Width
	case LengthVertical:
		return l.Value * vp.Height
	default:
		return l.Value * math.Sqrt((vp.Width*vp.Width+vp.Height*vp.Height)/2)
	}
}
