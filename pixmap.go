package svgpaint

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/gogpu/svgpaint/pixel"
)

// Pixmap represents a rectangular pixel buffer in straight-alpha RGBA
// format, 4 bytes per pixel. Paint realization draws into a Pixmap;
// the compositing helpers convert it between alpha encodings.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a new pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel sets the color of a single pixel.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = uint8(clamp255(c.R * 255))
	p.data[i+1] = uint8(clamp255(c.G * 255))
	p.data[i+2] = uint8(clamp255(c.B * 255))
	p.data[i+3] = uint8(clamp255(c.A * 255))
}

// GetPixel returns the color of a single pixel.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := (y*p.width + x) * 4
	return RGBA{
		R: float64(p.data[i+0]) / 255,
		G: float64(p.data[i+1]) / 255,
		B: float64(p.data[i+2]) / 255,
		A: float64(p.data[i+3]) / 255,
	}
}

// PixelAt returns the raw 8-bit pixel value at (x, y).
func (p *Pixmap) PixelAt(x, y int) pixel.Pixel {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return pixel.Pixel{}
	}
	i := (y*p.width + x) * 4
	return pixel.Pixel{R: p.data[i], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// Premultiply converts the buffer from straight to premultiplied alpha
// in place.
func (p *Pixmap) Premultiply() {
	pixel.PremultiplySpan(p.data)
}

// Unpremultiply converts the buffer from premultiplied to straight
// alpha in place.
func (p *Pixmap) Unpremultiply() {
	pixel.UnpremultiplySpan(p.data)
}

// ToMask replaces every pixel with its luminance-derived alpha mask,
// scaled by opacity. The buffer is assumed to hold linear (not
// gamma-encoded) RGB.
func (p *Pixmap) ToMask(opacity uint8) {
	pixel.MaskSpan(p.data, opacity)
}

// Diff returns the per-channel absolute difference between two pixmaps
// of equal size, for golden-image comparison. Mismatched sizes are a
// programming error and panic.
func (p *Pixmap) Diff(q *Pixmap) *Pixmap {
	if p.width != q.width || p.height != q.height {
		panic("svgpaint: Diff of differently sized pixmaps")
	}
	out := NewPixmap(p.width, p.height)
	for i := 0; i+3 < len(p.data); i += 4 {
		a := pixel.Pixel{R: p.data[i], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
		b := pixel.Pixel{R: q.data[i], G: q.data[i+1], B: q.data[i+2], A: q.data[i+3]}
		d := a.Diff(b)
		out.data[i], out.data[i+1], out.data[i+2], out.data[i+3] = d.R, d.G, d.B, d.A
	}
	return out
}

// RGBA returns an image.RGBA view sharing the pixmap's memory.
func (p *Pixmap) RGBA() *image.RGBA {
	return &image.RGBA{
		Pix:    p.data,
		Stride: p.width * 4,
		Rect:   image.Rect(0, 0, p.width, p.height),
	}
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, p.RGBA())
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y).Color()
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
