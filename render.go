package svgpaint

import (
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// PaintGradient fills dst with the gradient's colors. The element
// opacity (0-255) multiplies each stop's alpha once, here, per paint
// invocation; it is never cached on the paint server.
func PaintGradient(dst *Pixmap, g *GradientGeometry, opacity uint8) {
	stops := ApplyOpacity(g.Stops, opacity)
	inv := g.Transform.Invert()

	for y := 0; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			// Sample at the pixel center, mapped back into gradient
			// coordinate space.
			p := inv.TransformPoint(Pt(float64(x)+0.5, float64(y)+0.5))
			t, ok := g.Variant.offsetAt(p)
			if !ok {
				continue
			}
			dst.SetPixel(x, y, colorAtOffset(stops, t, g.Spread))
		}
	}
}

// applySpread normalizes t to [0, 1] according to the spread method.
func applySpread(t float64, spread SpreadMethod) float64 {
	switch spread {
	case SpreadRepeat:
		t -= math.Floor(t)
		if t < 0 {
			t++
		}
	case SpreadReflect:
		t = math.Abs(t)
		period := math.Floor(t)
		t -= period
		if int(period)%2 == 1 {
			t = 1 - t
		}
	default: // SpreadPad
		t = clamp01(t)
	}
	return t
}

// clamp01 clamps a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// colorAtOffset returns the interpolated color at a given offset.
// Stops are assumed sorted by offset, which resolution guarantees.
func colorAtOffset(stops []ColorStop, t float64, spread SpreadMethod) RGBA {
	if len(stops) == 0 {
		return Transparent
	}
	if len(stops) == 1 {
		return stops[0].Color
	}

	t = applySpread(t, spread)

	// Find the two stops to interpolate between.
	idx := len(stops)
	for i, s := range stops {
		if s.Offset >= t {
			idx = i
			break
		}
	}
	if idx == 0 {
		return stops[0].Color
	}
	if idx >= len(stops) {
		return stops[len(stops)-1].Color
	}

	s1 := stops[idx-1]
	s2 := stops[idx]
	if s2.Offset == s1.Offset {
		return s1.Color
	}

	localT := (t - s1.Offset) / (s2.Offset - s1.Offset)
	return lerpLinearSRGB(s1.Color, s2.Color, localT)
}

// lerpLinearSRGB interpolates between two colors in linear sRGB space,
// which blends light rather than gamma-encoded values.
func lerpLinearSRGB(c1, c2 RGBA, t float64) RGBA {
	l1 := srgbToLinearColor(c1)
	l2 := srgbToLinearColor(c2)
	return linearToSRGBColor(l1.Lerp(l2, t))
}

// srgbToLinear converts an sRGB component to linear light.
func srgbToLinear(s float64) float64 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// linearToSRGB converts a linear component back to sRGB.
func linearToSRGB(l float64) float64 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1.0/2.4) - 0.055
}

// Alpha is always linear; only RGB is gamma-encoded.
func srgbToLinearColor(c RGBA) RGBA {
	return RGBA{R: srgbToLinear(c.R), G: srgbToLinear(c.G), B: srgbToLinear(c.B), A: c.A}
}

func linearToSRGBColor(c RGBA) RGBA {
	return RGBA{R: linearToSRGB(c.R), G: linearToSRGB(c.G), B: linearToSRGB(c.B), A: c.A}
}

// maxTileInstances bounds how many tile copies a single TilePattern
// call will draw, so a tiny tile over a huge destination cannot stall
// the render.
const maxTileInstances = 4096

// TilePattern replicates a pattern tile across dst. The render callback
// draws the tile's content (the children of pat.Node) into the tile
// pixmap it is given; content coordinates map into the tile through the
// supplied content transform.
func TilePattern(dst *Pixmap, pat *UserSpacePattern, render func(tile *Pixmap, content Matrix)) {
	if pat.Width <= 0 || pat.Height <= 0 {
		return
	}

	tw := int(math.Ceil(pat.Width))
	th := int(math.Ceil(pat.Height))
	tile := NewPixmap(tw, th)
	render(tile, pat.ContentTransform)

	src := tile.RGBA()
	out := dst.RGBA()

	i0, i1, j0, j1 := tileRange(dst, pat)
	if n := (i1 - i0 + 1) * (j1 - j0 + 1); n > maxTileInstances {
		Logger().Warn("svgpaint: clamping tile instance count",
			"requested", n, "max", maxTileInstances)
		i1 = i0 + maxTileInstances - 1
		j1 = j0
	}

	for j := j0; j <= j1; j++ {
		for i := i0; i <= i1; i++ {
			m := pat.CoordTransform.Multiply(Translate(float64(i)*pat.Width, float64(j)*pat.Height))
			aff := f64.Aff3{m.A, m.B, m.C, m.D, m.E, m.F}
			xdraw.ApproxBiLinear.Transform(out, aff, src, src.Bounds(), xdraw.Over, nil)
		}
	}
}

// tileRange returns the inclusive grid of tile indices whose instances
// can intersect dst, found by mapping the destination corners back into
// tile space.
func tileRange(dst *Pixmap, pat *UserSpacePattern) (i0, i1, j0, j1 int) {
	inv := pat.CoordTransform.Invert()
	w := float64(dst.Width())
	h := float64(dst.Height())
	corners := [4]Point{Pt(0, 0), Pt(w, 0), Pt(0, h), Pt(w, h)}

	minX := math.Inf(1)
	minY := math.Inf(1)
	maxX := math.Inf(-1)
	maxY := math.Inf(-1)
	for _, c := range corners {
		p := inv.TransformPoint(c)
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	i0 = int(math.Floor(minX / pat.Width))
	i1 = int(math.Ceil(maxX / pat.Width))
	j0 = int(math.Floor(minY / pat.Height))
	j1 = int(math.Ceil(maxY / pat.Height))
	return i0, i1, j0, j1
}
