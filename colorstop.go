package svgpaint

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  RGBA    // Color at this position
}

// appendStop appends a stop to the sequence, clamping its offset up to
// the previous stop's offset so the sequence stays monotonically
// non-decreasing.
func appendStop(stops []ColorStop, s ColorStop) []ColorStop {
	if n := len(stops); n > 0 && s.Offset < stops[n-1].Offset {
		s.Offset = stops[n-1].Offset
	}
	return append(stops, s)
}

// ApplyOpacity returns a copy of stops with each stop's alpha multiplied
// by the element opacity (0-255). Opacity is per paint invocation, so
// the scaled stops are never cached on the paint server.
func ApplyOpacity(stops []ColorStop, opacity uint8) []ColorStop {
	out := make([]ColorStop, len(stops))
	for i, s := range stops {
		s.Color = s.Color.WithOpacity(opacity)
		out[i] = s
	}
	return out
}
