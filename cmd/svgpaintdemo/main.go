// Command svgpaintdemo resolves a few paint servers and renders them
// to PNG files.
package main

import (
	"flag"
	"log"

	"github.com/gogpu/svgpaint"
)

func main() {
	var (
		size   = flag.Int("size", 256, "image size in pixels")
		prefix = flag.String("prefix", "demo", "output file prefix")
	)
	flag.Parse()

	doc := buildDocument()
	bbox := svgpaint.RectXYWH(0, 0, float64(*size), float64(*size))
	vp := svgpaint.Viewport{Width: float64(*size), Height: float64(*size)}

	renderGradient(doc, "linear", bbox, vp, *size, *prefix+"-linear.png")
	renderGradient(doc, "spotlight", bbox, vp, *size, *prefix+"-radial.png")
	renderPattern(doc, "checker", bbox, vp, *size, *prefix+"-pattern.png")
}

// buildDocument assembles a document the way a parser would: a linear
// gradient, a radial gradient inheriting its stops through an href, and
// a checkerboard pattern.
func buildDocument() *svgpaint.Document {
	doc := svgpaint.NewDocument()

	doc.AddLinearGradient("linear", svgpaint.LinearGradientAttrs{},
		svgpaint.Stop{Offset: 0, Color: svgpaint.RGB(0.1, 0.2, 0.4)},
		svgpaint.Stop{Offset: 0.5, Color: svgpaint.RGB(0.9, 0.5, 0.1)},
		svgpaint.Stop{Offset: 1, Color: svgpaint.RGB(1, 1, 0.8)},
	)

	// Stops come from the linear gradient via the fallback chain.
	href := svgpaint.NodeID("linear")
	doc.AddRadialGradient("spotlight", svgpaint.RadialGradientAttrs{
		Href: &href,
		Fx:   ptr(svgpaint.Pct(30)),
		Fy:   ptr(svgpaint.Pct(30)),
	})

	pattern := doc.AddPattern("checker", svgpaint.PatternAttrs{
		Units:  ptr(svgpaint.UserSpaceOnUse),
		Width:  ptr(svgpaint.Num(32)),
		Height: ptr(svgpaint.Num(32)),
	})
	pattern.AppendChild(doc.AddShape("sq"))

	return doc
}

func renderGradient(doc *svgpaint.Document, id svgpaint.NodeID, bbox svgpaint.Rect, vp svgpaint.Viewport, size int, out string) {
	node, ok := doc.Lookup(id)
	if !ok {
		log.Fatalf("missing node %q", id)
	}
	resolved, err := node.ResolveGradient()
	if err != nil {
		log.Fatalf("resolve %q: %v", id, err)
	}
	geom, ok := resolved.ToUserSpace(bbox, vp)
	if !ok {
		log.Fatalf("nothing to paint for %q", id)
	}

	pm := svgpaint.NewPixmap(size, size)
	svgpaint.PaintGradient(pm, geom, 255)
	if err := pm.SavePNG(out); err != nil {
		log.Fatalf("save %s: %v", out, err)
	}
	log.Printf("wrote %s", out)
}

func renderPattern(doc *svgpaint.Document, id svgpaint.NodeID, bbox svgpaint.Rect, vp svgpaint.Viewport, size int, out string) {
	node, ok := doc.Lookup(id)
	if !ok {
		log.Fatalf("missing node %q", id)
	}
	resolved, err := node.ResolvePattern()
	if err != nil {
		log.Fatalf("resolve %q: %v", id, err)
	}
	user, ok := resolved.ToUserSpace(bbox, vp)
	if !ok {
		log.Printf("pattern %q paints nothing", id)
		return
	}

	pm := svgpaint.NewPixmap(size, size)
	svgpaint.TilePattern(pm, user, func(tile *svgpaint.Pixmap, _ svgpaint.Matrix) {
		half := tile.Width() / 2
		for y := 0; y < tile.Height(); y++ {
			for x := 0; x < tile.Width(); x++ {
				c := svgpaint.RGB(0.85, 0.85, 0.85)
				if (x < half) != (y < tile.Height()/2) {
					c = svgpaint.RGB(0.2, 0.3, 0.5)
				}
				tile.SetPixel(x, y, c)
			}
		}
	})
	if err := pm.SavePNG(out); err != nil {
		log.Fatalf("save %s: %v", out, err)
	}
	log.Printf("wrote %s", out)
}

func ptr[T any](v T) *T { return &v }
