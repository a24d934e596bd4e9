package svgpaint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePatternDefaults(t *testing.T) {
	doc := NewDocument()
	node := doc.AddPattern("p", PatternAttrs{})

	resolved, err := node.ResolvePattern()
	require.NoError(t, err)

	assert.Equal(t, ObjectBoundingBox, resolved.Units)
	assert.Equal(t, UserSpaceOnUse, resolved.ContentUnits)
	assert.Nil(t, resolved.ViewBox)
	assert.Equal(t, defaultAspectRatio(), resolved.AspectRatio)
	assert.True(t, resolved.Transform.IsIdentity())
	assert.Equal(t, Num(0), resolved.X)
	assert.Equal(t, Num(0), resolved.Y)
	assert.Equal(t, Num(0), resolved.Width)
	assert.Equal(t, Num(0), resolved.Height)

	_, ok := resolved.ContentNode()
	assert.False(t, ok, "a chain with no children resolves to empty content")
}

func TestResolvePatternChainSuppliesContent(t *testing.T) {
	// Geometry comes from A where set, content from the first node in
	// the chain that has child elements.
	doc := NewDocument()
	hrefB := NodeID("b")
	hrefC := NodeID("c")

	a := doc.AddPattern("a", PatternAttrs{
		Href:  &hrefB,
		Width: ref(Num(8)),
	})
	doc.AddPattern("b", PatternAttrs{
		Href:   &hrefC,
		Height: ref(Num(4)),
	})
	c := doc.AddPattern("c", PatternAttrs{})
	c.AppendChild(doc.AddShape("leaf"))

	resolved, err := a.ResolvePattern()
	require.NoError(t, err)

	assert.Equal(t, Num(8), resolved.Width)
	assert.Equal(t, Num(4), resolved.Height)

	content, ok := resolved.ContentNode()
	require.True(t, ok)
	assert.Same(t, c, content)
}

func TestResolvePatternOwnContentWins(t *testing.T) {
	doc := NewDocument()
	href := NodeID("base")

	base := doc.AddPattern("base", PatternAttrs{})
	base.AppendChild(doc.AddShape("baseChild"))

	a := doc.AddPattern("a", PatternAttrs{Href: &href})
	a.AppendChild(doc.AddShape("ownChild"))

	resolved, err := a.ResolvePattern()
	require.NoError(t, err)

	content, ok := resolved.ContentNode()
	require.True(t, ok)
	assert.Same(t, a, content)
}

func TestResolvePatternCycle(t *testing.T) {
	doc := NewDocument()
	hrefA := NodeID("a")
	hrefB := NodeID("b")

	a := doc.AddPattern("a", PatternAttrs{Href: &hrefB})
	doc.AddPattern("b", PatternAttrs{Href: &hrefA})

	_, err := a.ResolvePattern()
	assert.ErrorIs(t, err, ErrCircularReference)
}

func TestResolvePatternInvalidLinkType(t *testing.T) {
	// Gradients cannot serve as pattern fallbacks.
	doc := NewDocument()
	href := NodeID("grad")
	doc.AddLinearGradient("grad", LinearGradientAttrs{})
	a := doc.AddPattern("a", PatternAttrs{Href: &href})

	_, err := a.ResolvePattern()
	assert.ErrorIs(t, err, ErrInvalidLinkType)
}

func TestResolvePatternMemoized(t *testing.T) {
	doc := NewDocument()
	node := doc.AddPattern("p", PatternAttrs{})

	first, err := node.ResolvePattern()
	require.NoError(t, err)
	second, err := node.ResolvePattern()
	require.NoError(t, err)
	assert.Same(t, first, second)
}

// withContent gives a pattern a shape child so ToUserSpace has content
// to place.
func withContent(doc *Document, p *Node, id NodeID) *Node {
	p.AppendChild(doc.AddShape(id))
	return p
}

func TestPatternToUserSpaceBoundingBoxUnits(t *testing.T) {
	doc := NewDocument()
	p := withContent(doc, doc.AddPattern("p", PatternAttrs{
		X:      ref(Num(0.1)),
		Y:      ref(Num(0.2)),
		Width:  ref(Num(0.5)),
		Height: ref(Num(0.5)),
	}), "c")

	resolved, err := p.ResolvePattern()
	require.NoError(t, err)

	bbox := RectXYWH(10, 20, 100, 50)
	user, ok := resolved.ToUserSpace(bbox, Viewport{Width: 400, Height: 300})
	require.True(t, ok)

	assert.InDelta(t, 50, user.Width, 1e-9)
	assert.InDelta(t, 25, user.Height, 1e-9)

	// The tile origin lands at bbox.Min plus the fractional offset.
	origin := user.CoordTransform.TransformPoint(Pt(0, 0))
	assert.InDelta(t, 20, origin.X, 1e-9)
	assert.InDelta(t, 30, origin.Y, 1e-9)
}

func TestPatternToUserSpaceUserUnits(t *testing.T) {
	doc := NewDocument()
	p := withContent(doc, doc.AddPattern("p", PatternAttrs{
		Units:  ref(UserSpaceOnUse),
		X:      ref(Num(5)),
		Y:      ref(Num(7)),
		Width:  ref(Pct(10)),
		Height: ref(Num(16)),
	}), "c")

	resolved, err := p.ResolvePattern()
	require.NoError(t, err)

	user, ok := resolved.ToUserSpace(RectXYWH(0, 0, 1, 1), Viewport{Width: 200, Height: 100})
	require.True(t, ok)

	assert.InDelta(t, 20, user.Width, 1e-9, "percentages resolve against the viewport")
	assert.InDelta(t, 16, user.Height, 1e-9)

	origin := user.CoordTransform.TransformPoint(Pt(0, 0))
	assert.InDelta(t, 5, origin.X, 1e-9)
	assert.InDelta(t, 7, origin.Y, 1e-9)
}

func TestPatternToUserSpaceTransformComposition(t *testing.T) {
	// patternTransform applies after the tile placement.
	doc := NewDocument()
	p := withContent(doc, doc.AddPattern("p", PatternAttrs{
		Units:     ref(UserSpaceOnUse),
		Transform: ref(Scale(2, 2)),
		X:         ref(Num(3)),
		Y:         ref(Num(4)),
		Width:     ref(Num(10)),
		Height:    ref(Num(10)),
	}), "c")

	resolved, err := p.ResolvePattern()
	require.NoError(t, err)

	user, ok := resolved.ToUserSpace(RectXYWH(0, 0, 1, 1), Viewport{Width: 100, Height: 100})
	require.True(t, ok)

	origin := user.CoordTransform.TransformPoint(Pt(0, 0))
	assert.InDelta(t, 6, origin.X, 1e-9)
	assert.InDelta(t, 8, origin.Y, 1e-9)
}

func TestPatternToUserSpaceViewBoxFit(t *testing.T) {
	// A 10x10 viewBox fitted into a 100x50 tile with xMidYMid meet:
	// uniform scale 5, centered horizontally.
	doc := NewDocument()
	p := withContent(doc, doc.AddPattern("p", PatternAttrs{
		Units:   ref(UserSpaceOnUse),
		Width:   ref(Num(100)),
		Height:  ref(Num(50)),
		ViewBox: &ViewBox{X: 0, Y: 0, W: 10, H: 10},
	}), "c")

	resolved, err := p.ResolvePattern()
	require.NoError(t, err)

	user, ok := resolved.ToUserSpace(RectXYWH(0, 0, 1, 1), Viewport{Width: 100, Height: 100})
	require.True(t, ok)

	tl := user.ContentTransform.TransformPoint(Pt(0, 0))
	br := user.ContentTransform.TransformPoint(Pt(10, 10))
	assert.InDelta(t, 25, tl.X, 1e-9)
	assert.InDelta(t, 0, tl.Y, 1e-9)
	assert.InDelta(t, 75, br.X, 1e-9)
	assert.InDelta(t, 50, br.Y, 1e-9)
}

func TestPatternToUserSpaceViewBoxOrigin(t *testing.T) {
	// A viewBox with a nonzero origin maps its own corner to the tile
	// corner.
	doc := NewDocument()
	p := withContent(doc, doc.AddPattern("p", PatternAttrs{
		Units:   ref(UserSpaceOnUse),
		Width:   ref(Num(10)),
		Height:  ref(Num(10)),
		ViewBox: &ViewBox{X: 5, Y: 5, W: 10, H: 10},
	}), "c")

	resolved, err := p.ResolvePattern()
	require.NoError(t, err)

	user, ok := resolved.ToUserSpace(RectXYWH(0, 0, 1, 1), Viewport{Width: 100, Height: 100})
	require.True(t, ok)

	corner := user.ContentTransform.TransformPoint(Pt(5, 5))
	assert.InDelta(t, 0, corner.X, 1e-9)
	assert.InDelta(t, 0, corner.Y, 1e-9)
}

func TestPatternToUserSpaceContentUnitsBoundingBox(t *testing.T) {
	// Without a viewBox, objectBoundingBox content units scale content
	// by the bounding box size.
	doc := NewDocument()
	p := withContent(doc, doc.AddPattern("p", PatternAttrs{
		Units:        ref(UserSpaceOnUse),
		ContentUnits: ref(ObjectBoundingBox),
		Width:        ref(Num(10)),
		Height:       ref(Num(10)),
	}), "c")

	resolved, err := p.ResolvePattern()
	require.NoError(t, err)

	user, ok := resolved.ToUserSpace(RectXYWH(0, 0, 40, 30), Viewport{Width: 100, Height: 100})
	require.True(t, ok)

	mapped := user.ContentTransform.TransformPoint(Pt(1, 1))
	assert.InDelta(t, 40, mapped.X, 1e-9)
	assert.InDelta(t, 30, mapped.Y, 1e-9)
}

func TestPatternToUserSpaceNothingToPaint(t *testing.T) {
	doc := NewDocument()
	vp := Viewport{Width: 100, Height: 100}

	t.Run("no content", func(t *testing.T) {
		p := doc.AddPattern("empty", PatternAttrs{
			Width:  ref(Num(0.5)),
			Height: ref(Num(0.5)),
		})
		resolved, err := p.ResolvePattern()
		require.NoError(t, err)
		_, ok := resolved.ToUserSpace(RectXYWH(0, 0, 10, 10), vp)
		assert.False(t, ok)
	})

	t.Run("zero tile", func(t *testing.T) {
		p := withContent(doc, doc.AddPattern("zero", PatternAttrs{}), "zc")
		resolved, err := p.ResolvePattern()
		require.NoError(t, err)
		_, ok := resolved.ToUserSpace(RectXYWH(0, 0, 10, 10), vp)
		assert.False(t, ok, "default zero width and height paint nothing")
	})

	t.Run("empty bbox under bounding box units", func(t *testing.T) {
		p := withContent(doc, doc.AddPattern("bb", PatternAttrs{
			Width:  ref(Num(0.5)),
			Height: ref(Num(0.5)),
		}), "bbc")
		resolved, err := p.ResolvePattern()
		require.NoError(t, err)
		_, ok := resolved.ToUserSpace(RectXYWH(0, 0, 0, 10), vp)
		assert.False(t, ok)
	})

	t.Run("zero-area viewBox", func(t *testing.T) {
		p := withContent(doc, doc.AddPattern("vb", PatternAttrs{
			Units:   ref(UserSpaceOnUse),
			Width:   ref(Num(10)),
			Height:  ref(Num(10)),
			ViewBox: &ViewBox{W: 0, H: 10},
		}), "vbc")
		resolved, err := p.ResolvePattern()
		require.NoError(t, err)
		_, ok := resolved.ToUserSpace(RectXYWH(0, 0, 10, 10), vp)
		assert.False(t, ok)
	})
}
