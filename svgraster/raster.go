// Implements a raster backend that renders svg documents into images,
// by wrapping rasterx.
package svgraster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"github.com/chriswmackey/ladybug-display/display"
	"github.com/chriswmackey/ladybug-display/svg"
)

// Renderer walks an element tree and rasterizes it.
type Renderer struct {
	dasher *rasterx.Dasher // to avoid shared state
	filler *rasterx.Filler // we use separated instances

	scanner rasterx.Scanner

	// mapping from user units to pixels
	scale  float64
	dx, dy float64
}

// NewRenderer returns a renderer drawing through the given scanner.
// In addition to rasterizing lines, it can also rasterize cubic bezier
// curves, so every element of the tree lowers to it.
func NewRenderer(width, height int, scanner rasterx.Scanner) *Renderer {
	return &Renderer{
		dasher:  rasterx.NewDasher(width, height, scanner),
		filler:  rasterx.NewFiller(width, height, scanner),
		scanner: scanner,
		scale:   1,
	}
}

// Render rasterizes the document into an image of the given pixel
// size. The viewBox, when present, is fit into the image preserving
// aspect ratio; otherwise user units scale from the document size.
func Render(doc *svg.SVG, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("raster size must be positive, got %dx%d", width, height)
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	rd := NewRenderer(width, height, scanner)
	if vb := doc.ViewBox; vb != nil {
		if vb.W <= 0 || vb.H <= 0 {
			return nil, fmt.Errorf("viewBox must have a positive size, got %g by %g", vb.W, vb.H)
		}
		rd.scale = math.Min(float64(width)/vb.W, float64(height)/vb.H)
		rd.dx = -vb.X * rd.scale
		rd.dy = -vb.Y * rd.scale
	} else if doc.Width > 0 && doc.Height > 0 {
		rd.scale = math.Min(float64(width)/doc.Width, float64(height)/doc.Height)
	}
	for _, el := range doc.Elements {
		if err := rd.Draw(el, svg.Style{}); err != nil {
			return nil, err
		}
	}
	return img, nil
}

// RenderPNG rasterizes the document and writes it as a PNG stream.
func RenderPNG(w io.Writer, doc *svg.SVG, width, height int) error {
	img, err := Render(doc, width, height)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

func (rd *Renderer) x(v float64) float64 { return v*rd.scale + rd.dx }

func (rd *Renderer) y(v float64) float64 { return v*rd.scale + rd.dy }

// span scales a user-unit length to pixels.
func (rd *Renderer) span(v float64) float64 { return v * rd.scale }

func (rd *Renderer) point(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(rd.x(x) * 64), Y: fixed.Int26_6(rd.y(y) * 64)}
}

// Draw rasterizes one element, resolving its style against the
// inherited group style.
func (rd *Renderer) Draw(el svg.Element, inherited svg.Style) error {
	switch e := el.(type) {
	case svg.Group:
		st := merge(inherited, e.Style)
		for _, child := range e.Children {
			if err := rd.Draw(child, st); err != nil {
				return err
			}
		}
		return nil
	case *svg.Group:
		// Parsed documents hold groups by pointer.
		return rd.Draw(*e, inherited)
	case svg.Circle:
		return rd.paint(merge(inherited, e.Style), func(p rasterx.Adder, _ bool) {
			rasterx.AddCircle(rd.x(e.CX), rd.y(e.CY), rd.span(e.R), p)
		})
	case svg.Ellipse:
		return rd.paint(merge(inherited, e.Style), func(p rasterx.Adder, _ bool) {
			rasterx.AddEllipse(rd.x(e.CX), rd.y(e.CY), rd.span(e.RX), rd.span(e.RY), 0, p)
		})
	case svg.Rect:
		return rd.paint(merge(inherited, e.Style), func(p rasterx.Adder, _ bool) {
			x1, y1 := rd.x(e.X), rd.y(e.Y)
			x2, y2 := rd.x(e.X+e.W), rd.y(e.Y+e.H)
			if e.RX > 0 || e.RY > 0 {
				rasterx.AddRoundRect(x1, y1, x2, y2, rd.span(e.RX), rd.span(e.RY), 0,
					rasterx.RoundGap, p)
			} else {
				rasterx.AddRect(x1, y1, x2, y2, 0, p)
			}
		})
	case svg.Line:
		st := merge(inherited, e.Style)
		st.Fill = "" // lines never fill
		return rd.paint(st, func(p rasterx.Adder, _ bool) {
			p.Start(rd.point(e.X1, e.Y1))
			p.Line(rd.point(e.X2, e.Y2))
			p.Stop(false)
		})
	case svg.Polyline:
		return rd.paint(merge(inherited, e.Style), func(p rasterx.Adder, closeFill bool) {
			rd.addPoints(e.Points, closeFill, p)
		})
	case svg.Polygon:
		return rd.paint(merge(inherited, e.Style), func(p rasterx.Adder, _ bool) {
			rd.addPoints(e.Points, true, p)
		})
	case svg.Path:
		return rd.paint(merge(inherited, e.Style), func(p rasterx.Adder, closeFill bool) {
			rd.addPath(e.Commands, closeFill, p)
		})
	case svg.Text:
		// Text would need font loading and shaping; labels stay
		// vector-only.
		return nil
	}
	return nil
}

// paint runs the fill pass and then the stroke pass over the same
// path. The closure receives whether the subpaths should be closed for
// filling.
func (rd *Renderer) paint(st svg.Style, add func(p rasterx.Adder, closeFill bool)) error {
	fill, ok, err := resolveColor(st.Fill, opacityValue(st.Opacity, st.FillOpacity))
	if err != nil {
		return err
	}
	if ok {
		rd.filler.Clear()
		add(rd.filler, true)
		rd.scanner.SetColor(fill)
		rd.filler.Draw()
	}
	stroke, ok, err := resolveColor(st.Stroke, opacityValue(st.Opacity, st.StrokeOpacity))
	if err != nil {
		return err
	}
	if ok {
		rd.dasher.Clear()
		rd.setStroke(st)
		add(rd.dasher, false)
		rd.scanner.SetColor(stroke)
		rd.dasher.Draw()
	}
	return nil
}

// setStroke configures the dasher before the path is added, since it
// strokes incrementally.
func (rd *Renderer) setStroke(st svg.Style) {
	width := st.StrokeWidth
	if width == 0 {
		width = 1
	}
	rd.dasher.SetStroke(
		fixed.Int26_6(rd.span(width)*64), fixed.Int26_6(4*64),
		rasterx.ButtCap, rasterx.ButtCap, rasterx.FlatGap, rasterx.Miter,
		rd.dashPattern(st.StrokeDasharray), 0,
	)
}

// dashPattern parses a stroke-dasharray value into pixel lengths.
// Malformed patterns disable dashing.
func (rd *Renderer) dashPattern(spec string) []float64 {
	fields := strings.FieldsFunc(spec, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return nil
	}
	dashes := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil || v < 0 {
			return nil
		}
		dashes = append(dashes, rd.span(v))
	}
	return dashes
}

func (rd *Renderer) addPoints(pts []svg.Point, closed bool, p rasterx.Adder) {
	if len(pts) == 0 {
		return
	}
	p.Start(rd.point(pts[0].X, pts[0].Y))
	for _, pt := range pts[1:] {
		p.Line(rd.point(pt.X, pt.Y))
	}
	p.Stop(closed)
}

func (rd *Renderer) addPath(cmds []svg.Command, closeFill bool, p rasterx.Adder) {
	var startX, startY, curX, curY float64
	open := false
	for _, cmd := range cmds {
		if _, isMove := cmd.(svg.MoveTo); !open && !isMove {
			continue // drawing commands before the first MoveTo
		}
		switch c := cmd.(type) {
		case svg.MoveTo:
			if open {
				p.Stop(closeFill)
			}
			p.Start(rd.point(c.X, c.Y))
			startX, startY, curX, curY = c.X, c.Y, c.X, c.Y
			open = true
		case svg.LineTo:
			p.Line(rd.point(c.X, c.Y))
			curX, curY = c.X, c.Y
		case svg.CubicTo:
			p.CubeBezier(rd.point(c.X1, c.Y1), rd.point(c.X2, c.Y2), rd.point(c.X, c.Y))
			curX, curY = c.X, c.Y
		case svg.ArcTo:
			for _, cu := range c.Cubics(curX, curY) {
				p.CubeBezier(rd.point(cu.X1, cu.Y1), rd.point(cu.X2, cu.Y2), rd.point(cu.X, cu.Y))
			}
			curX, curY = c.X, c.Y
		case svg.ClosePath:
			p.Stop(true)
			curX, curY = startX, startY
			open = false
		}
	}
	if open {
		p.Stop(closeFill)
	}
}

// merge resolves a child style against its inherited group style.
func merge(parent, child svg.Style) svg.Style {
	st := parent
	if child.Fill != "" {
		st.Fill = child.Fill
	}
	if child.Stroke != "" {
		st.Stroke = child.Stroke
	}
	if child.StrokeWidth != 0 {
		st.StrokeWidth = child.StrokeWidth
	}
	if child.StrokeDasharray != "" {
		st.StrokeDasharray = child.StrokeDasharray
	}
	if child.Opacity != nil {
		st.Opacity = child.Opacity
	}
	if child.FillOpacity != nil {
		st.FillOpacity = child.FillOpacity
	}
	if child.StrokeOpacity != nil {
		st.StrokeOpacity = child.StrokeOpacity
	}
	return st
}

// opacityValue multiplies the opacities that are set.
func opacityValue(vs ...*float64) float64 {
	o := 1.0
	for _, v := range vs {
		if v != nil {
			o *= *v
		}
	}
	return o
}

// resolveColor parses a paint attribute; empty and "none" values
// disable the pass.
func resolveColor(spec string, opacity float64) (color.Color, bool, error) {
	if spec == "" || spec == "none" {
		return nil, false, nil
	}
	c, err := display.ColorFromString(spec)
	if err != nil {
		return nil, false, err
	}
	base := color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
	return rasterx.ApplyOpacity(base, opacity), true, nil
}
