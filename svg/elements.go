package svg

import "strings"

// This file defines the element tree and its serialization.

// Element is a node of the SVG document tree.
type Element interface {
	// writeTo serializes the element at the given nesting depth.
	writeTo(p *printer, depth int)
}

// Number returns a pointer to v, for the optional style fields.
func Number(v float64) *float64 { return &v }

// Style holds the presentation attributes shared by drawable elements.
// Zero-valued fields are omitted from the output; nil opacities mean
// the SVG default of fully opaque.
type Style struct {
	Fill            string
	Stroke          string
	StrokeWidth     float64
	StrokeDasharray string
	Opacity         *float64
	FillOpacity     *float64
	StrokeOpacity   *float64
}

func (s *Style) writeAttrs(p *printer) {
	if s.Fill != "" {
		p.printf(` fill="%s"`, escape(s.Fill))
	}
	if s.Stroke != "" {
		p.printf(` stroke="%s"`, escape(s.Stroke))
	}
	if s.StrokeWidth != 0 {
		p.printf(` stroke-width="%s"`, ftoa(s.StrokeWidth))
	}
	if s.StrokeDasharray != "" {
		p.printf(` stroke-dasharray="%s"`, escape(s.StrokeDasharray))
	}
	if s.Opacity != nil {
		p.printf(` opacity="%s"`, ftoa(*s.Opacity))
	}
	if s.FillOpacity != nil {
		p.printf(` fill-opacity="%s"`, ftoa(*s.FillOpacity))
	}
	if s.StrokeOpacity != nil {
		p.printf(` stroke-opacity="%s"`, ftoa(*s.StrokeOpacity))
	}
}

// Point is a 2D coordinate in user units.
type Point struct {
	X, Y float64
}

// Circle is a circle centered at (CX, CY).
type Circle struct {
	CX, CY, R float64
	Style
}

func (c Circle) writeTo(p *printer, depth int) {
	p.indent(depth)
	p.printf(`<circle cx="%s" cy="%s" r="%s"`, ftoa(c.CX), ftoa(c.CY), ftoa(c.R))
	c.Style.writeAttrs(p)
	p.printf("/>\n")
}

// Ellipse is an axis-aligned ellipse centered at (CX, CY).
type Ellipse struct {
	CX, CY, RX, RY float64
	Style
}

func (e Ellipse) writeTo(p *printer, depth int) {
	p.indent(depth)
	p.printf(`<ellipse cx="%s" cy="%s" rx="%s" ry="%s"`,
		ftoa(e.CX), ftoa(e.CY), ftoa(e.RX), ftoa(e.RY))
	e.Style.writeAttrs(p)
	p.printf("/>\n")
}

// Line is a straight segment between two points.
type Line struct {
	X1, Y1, X2, Y2 float64
	Style
}

func (l Line) writeTo(p *printer, depth int) {
	p.indent(depth)
	p.printf(`<line x1="%s" y1="%s" x2="%s" y2="%s"`,
		ftoa(l.X1), ftoa(l.Y1), ftoa(l.X2), ftoa(l.Y2))
	l.Style.writeAttrs(p)
	p.printf("/>\n")
}

// Polyline is an open sequence of straight segments.
type Polyline struct {
	Points []Point
	Style
}

func (pl Polyline) writeTo(p *printer, depth int) {
	p.indent(depth)
	p.printf(`<polyline points="%s"`, formatPoints(pl.Points))
	pl.Style.writeAttrs(p)
	p.printf("/>\n")
}

// Polygon is a closed sequence of straight segments.
type Polygon struct {
	Points []Point
	Style
}

func (pg Polygon) writeTo(p *printer, depth int) {
	p.indent(depth)
	p.printf(`<polygon points="%s"`, formatPoints(pg.Points))
	pg.Style.writeAttrs(p)
	p.printf("/>\n")
}

func formatPoints(pts []Point) string {
	chunks := make([]string, len(pts))
	for i, pt := range pts {
		chunks[i] = ftoa(pt.X) + "," + ftoa(pt.Y)
	}
	return strings.Join(chunks, " ")
}

// Rect is an axis-aligned rectangle, optionally with rounded corners.
type Rect struct {
	X, Y, W, H float64
	RX, RY     float64
	Style
}

func (r Rect) writeTo(p *printer, depth int) {
	p.indent(depth)
	p.printf(`<rect x="%s" y="%s" width="%s" height="%s"`,
		ftoa(r.X), ftoa(r.Y), ftoa(r.W), ftoa(r.H))
	if r.RX != 0 {
		p.printf(` rx="%s"`, ftoa(r.RX))
	}
	if r.RY != 0 {
		p.printf(` ry="%s"`, ftoa(r.RY))
	}
	r.Style.writeAttrs(p)
	p.printf("/>\n")
}

// Path is an arbitrary outline built from a command list.
type Path struct {
	Commands []Command
	Style
}

func (pa Path) writeTo(p *printer, depth int) {
	p.indent(depth)
	p.printf(`<path d="%s"`, pa.D())
	pa.Style.writeAttrs(p)
	p.printf("/>\n")
}

// Text is a text label anchored at (X, Y).
type Text struct {
	X, Y       float64
	Content    string
	FontSize   float64
	FontFamily string
	TextAnchor string
	Style
}

func (t Text) writeTo(p *printer, depth int) {
	p.indent(depth)
	p.printf(`<text x="%s" y="%s"`, ftoa(t.X), ftoa(t.Y))
	if t.FontSize != 0 {
		p.printf(` font-size="%s"`, ftoa(t.FontSize))
	}
	if t.FontFamily != "" {
		p.printf(` font-family="%s"`, escape(t.FontFamily))
	}
	if t.TextAnchor != "" {
		p.printf(` text-anchor="%s"`, escape(t.TextAnchor))
	}
	t.Style.writeAttrs(p)
	p.printf(">%s</text>\n", escape(t.Content))
}

// Group nests child elements, which inherit its styling.
type Group struct {
	ID       string
	Children []Element
	Style
}

// Add appends child elements to the group.
func (g *Group) Add(els ...Element) {
	g.Children = append(g.Children, els...)
}

func (g Group) writeTo(p *printer, depth int) {
	p.indent(depth)
	p.printf("<g")
	if g.ID != "" {
		p.printf(` id="%s"`, escape(g.ID))
	}
	g.Style.writeAttrs(p)
	p.printf(">\n")
	for _, child := range g.Children {
		child.writeTo(p, depth+1)
	}
	p.indent(depth)
	p.printf("</g>\n")
}
