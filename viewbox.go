package svgpaint

import "math"

// ViewBox is the rectangle, in content coordinates, that a pattern's
// child content is mapped from.
type ViewBox struct {
	X, Y, W, H float64
}

// Align specifies the preserveAspectRatio alignment of fitted content.
type Align int

const (
	// AlignNone scales content non-uniformly to exactly fill the
	// destination.
	AlignNone Align = iota
	AlignXMinYMin
	AlignXMidYMin
	AlignXMaxYMin
	AlignXMinYMid
	AlignXMidYMid
	AlignXMaxYMid
	AlignXMinYMax
	AlignXMidYMax
	AlignXMaxYMax
)

// AspectRatio describes how content is fitted into a destination
// rectangle. It is the same fitting rule used for top-level document
// sizing.
type AspectRatio struct {
	Align Align
	// Slice scales content to cover the destination, clipping overflow.
	// The default (meet) scales content to fit entirely inside.
	Slice bool
}

// defaultAspectRatio is the SVG default, "xMidYMid meet".
func defaultAspectRatio() AspectRatio {
	return AspectRatio{Align: AlignXMidYMid}
}

// Compute returns the rectangle the viewBox content occupies inside
// dest after uniform (or, for AlignNone, non-uniform) scaling and
// alignment.
func (ar AspectRatio) Compute(vbox ViewBox, dest Rect) Rect {
	if vbox.W <= 0 || vbox.H <= 0 || ar.Align == AlignNone {
		return dest
	}

	sx := dest.Width() / vbox.W
	sy := dest.Height() / vbox.H
	s := math.Min(sx, sy)
	if ar.Slice {
		s = math.Max(sx, sy)
	}

	w := vbox.W * s
	h := vbox.H * s
	fx, fy := ar.Align.factors()
	x := dest.Min.X + (dest.Width()-w)*fx
	y := dest.Min.Y + (dest.Height()-h)*fy

	return RectXYWH(x, y, w, h)
}

// factors returns the alignment offsets as fractions of the leftover
// space on each axis.
func (a Align) factors() (fx, fy float64) {
	switch a {
	case AlignXMidYMin, AlignXMidYMid, AlignXMidYMax:
		fx = 0.5
	case AlignXMaxYMin, AlignXMaxYMid, AlignXMaxYMax:
		fx = 1
	}
	switch a {
	case AlignXMinYMid, AlignXMidYMid, AlignXMaxYMid:
		fy = 0.5
	case AlignXMinYMax, AlignXMidYMax, AlignXMaxYMax:
		fy = 1
	}
	return fx, fy
}
