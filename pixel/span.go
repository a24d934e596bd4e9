package pixel

// Span operations apply a per-pixel primitive across a packed RGBA
// buffer (4 bytes per pixel, R first) in place. Trailing bytes that do
// not form a whole pixel are ignored.

// PremultiplySpan converts a straight-alpha RGBA span to premultiplied
// alpha in place.
func PremultiplySpan(buf []uint8) {
	eachPixel(buf, Pixel.Premultiply)
}

// UnpremultiplySpan converts a premultiplied RGBA span to straight
// alpha in place.
func UnpremultiplySpan(buf []uint8) {
	eachPixel(buf, Pixel.Unpremultiply)
}

// MaskSpan replaces every pixel in the span with its luminance-derived
// alpha mask, scaled by opacity. The span is assumed to hold linear
// (not gamma-encoded) RGB.
func MaskSpan(buf []uint8, opacity uint8) {
	eachPixel(buf, func(p Pixel) Pixel {
		return p.ToMask(opacity)
	})
}

func eachPixel(buf []uint8, op func(Pixel) Pixel) {
	for i := 0; i+3 < len(buf); i += 4 {
		p := op(Pixel{R: buf[i], G: buf[i+1], B: buf[i+2], A: buf[i+3]})
		buf[i], buf[i+1], buf[i+2], buf[i+3] = p.R, p.G, p.B, p.A
	}
}
