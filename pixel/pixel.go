// Package pixel provides numeric primitives for 8-bit RGBA pixel
// compositing: premultiplied-alpha conversion, luminance-to-alpha
// masking, and ARGB32 channel packing.
//
// The package is self-contained: it has no dependencies and none of its
// operations can fail. Whether a given buffer holds straight or
// premultiplied alpha is not tracked here; callers must know which
// encoding they are working with.
package pixel

// Pixel is a single color value with four independent 8-bit channels.
type Pixel struct {
	R, G, B, A uint8
}

// Luminance weights for ToMask, assuming linear (not gamma-encoded) RGB.
//
//	Y = 0.2126 R + 0.7152 G + 0.0722 B
//
// The ITU-R coefficients are scaled so that a fully white, fully opaque
// pixel maps to alpha 255:
//
//	0xFFFFFFFF / (255.0 * 255.0) * 0.2126 = 14042.45 ~= 14042
//	0xFFFFFFFF / (255.0 * 255.0) * 0.7152 = 47239.69 ~= 47240
//	0xFFFFFFFF / (255.0 * 255.0) * 0.0722 =  4768.88 ~=  4769
const (
	maskRed   = 14042
	maskGreen = 47240
	maskBlue  = 4769
)

// Premultiply returns the pixel with R, G and B scaled by alpha.
// Each channel is multiplied by a/255 and rounded to nearest.
func (p Pixel) Premultiply() Pixel {
	a := float64(p.A) / 255.0
	return Pixel{
		R: uint8(float64(p.R)*a + 0.5),
		G: uint8(float64(p.G)*a + 0.5),
		B: uint8(float64(p.B)*a + 0.5),
		A: p.A,
	}
}

// Unpremultiply is the inverse of Premultiply. A pixel with zero alpha
// is returned unchanged; there is no color information to recover and
// dividing by zero must be avoided.
func (p Pixel) Unpremultiply() Pixel {
	if p.A == 0 {
		return p
	}
	a := float64(p.A) / 255.0
	return Pixel{
		R: uint8(float64(p.R)/a + 0.5),
		G: uint8(float64(p.G)/a + 0.5),
		B: uint8(float64(p.B)/a + 0.5),
		A: p.A,
	}
}

// ToMask converts the pixel to an alpha mask value: the alpha channel
// approximates the luminance of the linear-light RGB triple, scaled by
// opacity. R, G and B of the result are zero.
func (p Pixel) ToMask(opacity uint8) Pixel {
	r := uint32(p.R)
	g := uint32(p.G)
	b := uint32(p.B)
	o := uint32(opacity)

	return Pixel{
		A: uint8(((r*maskRed + g*maskGreen + b*maskBlue) * o) >> 24),
	}
}

// Diff returns the per-channel absolute difference between two pixels.
// It is used for golden-image comparison, not for rendering.
func (p Pixel) Diff(q Pixel) Pixel {
	return Pixel{
		R: absDiff(p.R, q.R),
		G: absDiff(p.G, q.G),
		B: absDiff(p.B, q.B),
		A: absDiff(p.A, q.A),
	}
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}

// ToU32 packs the pixel into a 32-bit ARGB word: alpha in the most
// significant byte, then red, green, blue. This is the native channel
// order of ARGB32 raster surfaces.
func (p Pixel) ToU32() uint32 {
	return uint32(p.A)<<24 | uint32(p.R)<<16 | uint32(p.G)<<8 | uint32(p.B)
}

// FromU32 unpacks a 32-bit ARGB word produced by ToU32.
func FromU32(x uint32) Pixel {
	return Pixel{
		R: uint8(x >> 16),
		G: uint8(x >> 8),
		B: uint8(x),
		A: uint8(x >> 24),
	}
}
