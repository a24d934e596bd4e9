package pixel

import "testing"

func TestPremultiply(t *testing.T) {
	tests := []struct {
		name string
		in   Pixel
		want Pixel
	}{
		{"opaque unchanged", Pixel{0x22, 0x44, 0xff, 0xff}, Pixel{0x22, 0x44, 0xff, 0xff}},
		{"half alpha", Pixel{0x22, 0x44, 0xff, 0x80}, Pixel{0x11, 0x22, 0x80, 0x80}},
		{"zero alpha", Pixel{0x22, 0x44, 0xff, 0x00}, Pixel{0x00, 0x00, 0x00, 0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Premultiply(); got != tt.want {
				t.Errorf("Premultiply(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestUnpremultiply(t *testing.T) {
	tests := []struct {
		name string
		in   Pixel
		want Pixel
	}{
		{"half alpha", Pixel{0x11, 0x22, 0x80, 0x80}, Pixel{0x22, 0x44, 0xff, 0x80}},
		{"zero alpha is identity", Pixel{0x11, 0x22, 0x80, 0x00}, Pixel{0x11, 0x22, 0x80, 0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Unpremultiply(); got != tt.want {
				t.Errorf("Unpremultiply(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

// Premultiplying an unpremultiplied pixel must reproduce the original
// exactly for every valid premultiplied input (channel <= alpha).
func TestPremultiplyUnpremultiplyRoundTrip(t *testing.T) {
	for a := 1; a <= 255; a++ {
		for r := 0; r <= a; r++ {
			p := Pixel{R: uint8(r), A: uint8(a)}
			if got := p.Unpremultiply().Premultiply(); got != p {
				t.Fatalf("round trip of %v = %v", p, got)
			}
		}
	}
}

func TestToMask(t *testing.T) {
	tests := []struct {
		name    string
		in      Pixel
		opacity uint8
		want    uint8
	}{
		{"white opaque", Pixel{0xff, 0xff, 0xff, 0xff}, 0xff, 0xff},
		{"black", Pixel{0x00, 0x00, 0x00, 0xff}, 0xff, 0x00},
		{"dark gray", Pixel{0x02, 0x02, 0x02, 0xff}, 0xff, 0x02},
		{"white zero opacity", Pixel{0xff, 0xff, 0xff, 0xff}, 0x00, 0x00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.ToMask(tt.opacity)
			if got.A != tt.want {
				t.Errorf("ToMask(%v, %d).A = %d, want %d", tt.in, tt.opacity, got.A, tt.want)
			}
			if got.R != 0 || got.G != 0 || got.B != 0 {
				t.Errorf("ToMask RGB = (%d,%d,%d), want zero", got.R, got.G, got.B)
			}
		})
	}
}

// ToMask must be monotonic non-decreasing in each channel and in
// opacity.
func TestToMaskMonotonic(t *testing.T) {
	prev := uint8(0)
	for v := 0; v <= 255; v++ {
		a := Pixel{R: uint8(v), G: uint8(v), B: uint8(v), A: 0xff}.ToMask(0xff).A
		if a < prev {
			t.Fatalf("mask alpha decreased at gray %d: %d < %d", v, a, prev)
		}
		prev = a
	}

	prev = 0
	for o := 0; o <= 255; o++ {
		a := Pixel{0xff, 0xff, 0xff, 0xff}.ToMask(uint8(o)).A
		if a < prev {
			t.Fatalf("mask alpha decreased at opacity %d: %d < %d", o, a, prev)
		}
		prev = a
	}
}

func TestDiff(t *testing.T) {
	a := Pixel{0x10, 0x20, 0xf0, 0x40}
	if got := a.Diff(Pixel{}); got != a {
		t.Errorf("Diff with zero = %v, want %v", got, a)
	}

	b := Pixel{0x50, 0xff, 0x20, 0x10}
	want := Pixel{0x40, 0xdf, 0xd0, 0x30}
	if got := a.Diff(b); got != want {
		t.Errorf("Diff = %v, want %v", got, want)
	}
	if a.Diff(b) != b.Diff(a) {
		t.Error("Diff is not symmetric")
	}
}

func TestU32RoundTrip(t *testing.T) {
	p := Pixel{R: 0x11, G: 0x22, B: 0x33, A: 0x44}
	want := uint32(0x44112233)
	if got := p.ToU32(); got != want {
		t.Errorf("ToU32 = %#08x, want %#08x", got, want)
	}
	if got := FromU32(p.ToU32()); got != p {
		t.Errorf("FromU32(ToU32) = %v, want %v", got, p)
	}
}

func TestSpans(t *testing.T) {
	buf := []uint8{
		0x22, 0x44, 0xff, 0x80,
		0xff, 0xff, 0xff, 0xff,
	}

	PremultiplySpan(buf)
	want := []uint8{
		0x11, 0x22, 0x80, 0x80,
		0xff, 0xff, 0xff, 0xff,
	}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("PremultiplySpan[%d] = %#02x, want %#02x", i, buf[i], want[i])
		}
	}

	UnpremultiplySpan(buf)
	orig := []uint8{
		0x22, 0x44, 0xff, 0x80,
		0xff, 0xff, 0xff, 0xff,
	}
	for i := range orig {
		if buf[i] != orig[i] {
			t.Fatalf("UnpremultiplySpan[%d] = %#02x, want %#02x", i, buf[i], orig[i])
		}
	}

	MaskSpan(buf, 0xff)
	if buf[7] != 0xff {
		t.Errorf("white pixel mask alpha = %#02x, want 0xff", buf[7])
	}
	if buf[4] != 0 || buf[5] != 0 || buf[6] != 0 {
		t.Error("mask RGB channels should be zero")
	}
}
