package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderOne(p Primitive) string {
	var buf bytes.Buffer
	p.render(&buf)
	return buf.String()
}

func TestStyleAttrs(t *testing.T) {
	assert.Equal(t, ` fill="none"`, style{}.attrs())
	assert.Equal(t, ` fill="#FF0000"`, style{Fill: "#FF0000"}.attrs())
	assert.Equal(t, ` fill="none" stroke="#000000" stroke-width="2.00"`,
		style{Stroke: "#000000", StrokeWidth: 2}.attrs())

	// Stroke width falls back to 1 when a stroke is set without a width.
	assert.Contains(t, style{Stroke: "#000000"}.attrs(), `stroke-width="1.00"`)

	// Opacity is only written for translucent values.
	assert.Contains(t, style{Fill: "#FF0000", Opacity: 0.5}.attrs(), `opacity="0.50"`)
	assert.NotContains(t, style{Fill: "#FF0000", Opacity: 1}.attrs(), "opacity")
	assert.NotContains(t, style{Fill: "#FF0000"}.attrs(), "opacity")
}

func TestPrimitiveRendering(t *testing.T) {
	assert.Equal(t, "<circle cx=\"10.00\" cy=\"20.00\" r=\"5.00\" fill=\"#112233\"/>\n",
		renderOne(&Circle{CX: 10, CY: 20, R: 5, Style: style{Fill: "#112233"}}))
	assert.Equal(t, "<rect x=\"1.00\" y=\"2.00\" width=\"3.00\" height=\"4.00\" fill=\"none\"/>\n",
		renderOne(&Rect{X: 1, Y: 2, W: 3, H: 4}))
	assert.Equal(t, "<polygon points=\"0.00,0.00 10.00,0.00 5.00,8.00\" fill=\"none\"/>\n",
		renderOne(&Polygon{Points: []point{{0, 0}, {10, 0}, {5, 8}}}))
}

func TestEmptyPathRendersNothing(t *testing.T) {
	assert.Empty(t, renderOne(&Path{D: ""}))
}

func TestTextEscapesContent(t *testing.T) {
	out := renderOne(&Text{X: 0, Y: 0, Size: 12, Content: `a<b&"c"`})
	assert.Contains(t, out, "a&lt;b&amp;&quot;c&quot;")
	assert.NotContains(t, out, `a<b`)
}

func TestGroupCloneIsDeep(t *testing.T) {
	g := &Group{}
	inner := &Group{Transform: "rotate(10 0 0)"}
	inner.add(&Circle{CX: 1, CY: 2, R: 3, Style: style{Fill: "#AABBCC"}})
	inner.add(&Polygon{Points: []point{{0, 0}, {1, 1}}})
	g.add(inner)

	cp := g.clone().(*Group)
	require.Equal(t, renderOne(g), renderOne(cp))

	// Mutating the copy must not leak into the original.
	innerCopy := cp.Children[0].(*Group)
	innerCopy.Children[0].(*Circle).Style.Fill = "#000000"
	innerCopy.Children[1].(*Polygon).Points[0] = point{99, 99}
	assert.Equal(t, "#AABBCC", inner.Children[0].(*Circle).Style.Fill)
	assert.Equal(t, point{0, 0}, inner.Children[1].(*Polygon).Points[0])
}

func TestGroupCount(t *testing.T) {
	g := &Group{}
	assert.Equal(t, 0, g.count())
	inner := &Group{}
	inner.add(&Circle{})
	inner.add(&Line{})
	g.add(inner)
	g.add(&Rect{})
	assert.Equal(t, 3, g.count())
}

func TestRenderDocumentStructure(t *testing.T) {
	root := &Group{}
	root.add(&Circle{CX: 50, CY: 50, R: 10, Style: style{Fill: "#112233"}})
	reg := newDefinitionRegistry()
	reg.add(`<linearGradient id="grad-1"></linearGradient>`)

	doc := renderDocument(root, reg, 200, 100, "#FFFFFF")

	assert.Contains(t, doc, `<svg width="200" height="100" viewBox="0 0 200 100"`)
	assert.Contains(t, doc, `<rect width="200" height="100" fill="#FFFFFF"/>`)
	require.True(t, len(doc) > 0)

	// defs precede the drawing tree.
	defsAt := bytes.Index([]byte(doc), []byte("<defs>"))
	groupAt := bytes.Index([]byte(doc), []byte("<g>"))
	require.NotEqual(t, -1, defsAt)
	require.NotEqual(t, -1, groupAt)
	assert.Less(t, defsAt, groupAt)
	assert.Contains(t, doc, "</svg>")
}

func TestRenderDocumentNoBackground(t *testing.T) {
	doc := renderDocument(&Group{}, nil, 100, 100, "")
	assert.NotContains(t, doc, "<rect")
}
