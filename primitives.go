package main

import (
	"bytes"
	"fmt"
	"strings"
)

type point struct {
	x, y float64
}

// style carries the shared presentation fields of every drawing primitive.
// Fill holds either a color or a "url(#id)" handle into the defs registry.
// Opacity 0 means "not set" (opaque); the animator uses values in (0, 1].
type style struct {
	Fill        string
	Stroke      string
	StrokeWidth float64
	Opacity     float64
	Transform   string
}

func (s style) attrs() string {
	var b strings.Builder
	if s.Fill != "" {
		fmt.Fprintf(&b, ` fill="%s"`, s.Fill)
	} else {
		b.WriteString(` fill="none"`)
	}
	if s.Stroke != "" {
		w := s.StrokeWidth
		if w <= 0 {
			w = 1
		}
		fmt.Fprintf(&b, ` stroke="%s" stroke-width="%.2f"`, s.Stroke, w)
	}
	if s.Opacity > 0 && s.Opacity < 1 {
		fmt.Fprintf(&b, ` opacity="%.2f"`, s.Opacity)
	}
	if s.Transform != "" {
		fmt.Fprintf(&b, ` transform="%s"`, s.Transform)
	}
	return b.String()
}

// Primitive is one node of the drawing tree. Each primitive is owned by
// exactly one parent group; groups nest to form a tree rooted at one
// layer-group per layer.
type Primitive interface {
	render(w *bytes.Buffer)
	clone() Primitive
	count() int
	center() (float64, float64)
	styleRef() *style
}

type Circle struct {
	CX, CY, R float64
	Style     style
}

func (c *Circle) render(w *bytes.Buffer) {
	fmt.Fprintf(w, `<circle cx="%.2f" cy="%.2f" r="%.2f"%s/>`, c.CX, c.CY, c.R, c.Style.attrs())
	w.WriteString("\n")
}
func (c *Circle) clone() Primitive           { cp := *c; return &cp }
func (c *Circle) count() int                 { return 1 }
func (c *Circle) styleRef() *style           { return &c.Style }
func (c *Circle) center() (float64, float64) { return c.CX, c.CY }

type Rect struct {
	X, Y, W, H float64
	Style      style
}

func (r *Rect) render(w *bytes.Buffer) {
	fmt.Fprintf(w, `<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f"%s/>`, r.X, r.Y, r.W, r.H, r.Style.attrs())
	w.WriteString("\n")
}
func (r *Rect) clone() Primitive           { cp := *r; return &cp }
func (r *Rect) count() int                 { return 1 }
func (r *Rect) styleRef() *style           { return &r.Style }
func (r *Rect) center() (float64, float64) { return r.X + r.W/2, r.Y + r.H/2 }

type Ellipse struct {
	CX, CY, RX, RY float64
	Style          style
}

func (e *Ellipse) render(w *bytes.Buffer) {
	fmt.Fprintf(w, `<ellipse cx="%.2f" cy="%.2f" rx="%.2f" ry="%.2f"%s/>`, e.CX, e.CY, e.RX, e.RY, e.Style.attrs())
	w.WriteString("\n")
}
func (e *Ellipse) clone() Primitive           { cp := *e; return &cp }
func (e *Ellipse) count() int                 { return 1 }
func (e *Ellipse) styleRef() *style           { return &e.Style }
func (e *Ellipse) center() (float64, float64) { return e.CX, e.CY }

type Line struct {
	X1, Y1, X2, Y2 float64
	Style          style
}

func (l *Line) render(w *bytes.Buffer) {
	fmt.Fprintf(w, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"%s/>`, l.X1, l.Y1, l.X2, l.Y2, l.Style.attrs())
	w.WriteString("\n")
}
func (l *Line) clone() Primitive           { cp := *l; return &cp }
func (l *Line) count() int                 { return 1 }
func (l *Line) styleRef() *style           { return &l.Style }
func (l *Line) center() (float64, float64) { return (l.X1 + l.X2) / 2, (l.Y1 + l.Y2) / 2 }

type Polygon struct {
	Points []point
	Style  style
}

func (p *Polygon) render(w *bytes.Buffer) {
	var pts strings.Builder
	for i, pt := range p.Points {
		if i > 0 {
			pts.WriteByte(' ')
		}
		fmt.Fprintf(&pts, "%.2f,%.2f", pt.x, pt.y)
	}
	fmt.Fprintf(w, `<polygon points="%s"%s/>`, pts.String(), p.Style.attrs())
	w.WriteString("\n")
}
func (p *Polygon) clone() Primitive {
	cp := *p
	cp.Points = append([]point(nil), p.Points...)
	return &cp
}
func (p *Polygon) count() int       { return 1 }
func (p *Polygon) styleRef() *style { return &p.Style }
func (p *Polygon) center() (float64, float64) {
	if len(p.Points) == 0 {
		return 0, 0
	}
	var sx, sy float64
	for _, pt := range p.Points {
		sx += pt.x
		sy += pt.y
	}
	n := float64(len(p.Points))
	return sx / n, sy / n
}

// Path holds a pre-serialized path description. CX/CY record the geometric
// anchor the path was built around; only the animator reads them.
type Path struct {
	D      string
	CX, CY float64
	Style  style
}

func (p *Path) render(w *bytes.Buffer) {
	if p.D == "" {
		return
	}
	fmt.Fprintf(w, `<path d="%s"%s/>`, p.D, p.Style.attrs())
	w.WriteString("\n")
}
func (p *Path) clone() Primitive           { cp := *p; return &cp }
func (p *Path) count() int                 { return 1 }
func (p *Path) styleRef() *style           { return &p.Style }
func (p *Path) center() (float64, float64) { return p.CX, p.CY }

// Text exists for the pass-level diagnostic element.
type Text struct {
	X, Y    float64
	Size    float64
	Content string
	Style   style
}

func (t *Text) render(w *bytes.Buffer) {
	fmt.Fprintf(w, `<text x="%.2f" y="%.2f" font-family="monospace" font-size="%.0f" text-anchor="middle"%s>%s</text>`,
		t.X, t.Y, t.Size, t.Style.attrs(), escapeXML(t.Content))
	w.WriteString("\n")
}
func (t *Text) clone() Primitive           { cp := *t; return &cp }
func (t *Text) count() int                 { return 1 }
func (t *Text) styleRef() *style           { return &t.Style }
func (t *Text) center() (float64, float64) { return t.X, t.Y }

type Group struct {
	Transform string
	Children  []Primitive
}

func (g *Group) add(p Primitive) {
	g.Children = append(g.Children, p)
}

func (g *Group) render(w *bytes.Buffer) {
	if g.Transform != "" {
		fmt.Fprintf(w, `<g transform="%s">`, g.Transform)
	} else {
		w.WriteString("<g>")
	}
	w.WriteString("\n")
	for _, c := range g.Children {
		c.render(w)
	}
	w.WriteString("</g>\n")
}

func (g *Group) clone() Primitive {
	cp := &Group{Transform: g.Transform, Children: make([]Primitive, len(g.Children))}
	for i, c := range g.Children {
		cp.Children[i] = c.clone()
	}
	return cp
}

func (g *Group) count() int {
	n := 0
	for _, c := range g.Children {
		n += c.count()
	}
	return n
}

func (g *Group) styleRef() *style { return nil }

func (g *Group) center() (float64, float64) {
	if len(g.Children) == 0 {
		return 0, 0
	}
	var sx, sy float64
	for _, c := range g.Children {
		x, y := c.center()
		sx += x
		sy += y
	}
	n := float64(len(g.Children))
	return sx / n, sy / n
}

func escapeXML(s string) string {
	var buf strings.Builder
	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		case '\'':
			buf.WriteString("&apos;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}

// renderDocument serializes the finished tree into a standalone SVG document:
// header, background rect, registered defs, then the layer groups.
func renderDocument(root *Group, reg *DefinitionRegistry, width, height float64, background string) string {
	var svg bytes.Buffer
	fmt.Fprintf(&svg, `<svg width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f" xmlns="http://www.w3.org/2000/svg">`,
		width, height, width, height)
	svg.WriteString("\n")
	if background != "" {
		fmt.Fprintf(&svg, `<rect width="%.0f" height="%.0f" fill="%s"/>`, width, height, background)
		svg.WriteString("\n")
	}
	if reg != nil {
		reg.render(&svg)
	}
	root.render(&svg)
	svg.WriteString("</svg>\n")
	return svg.String()
}
