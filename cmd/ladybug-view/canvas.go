package main

import (
	"math"
	"strings"

	"github.com/chriswmackey/ladybug-display/svg"
)

// flattenSegments is the curve sampling density for terminal drawing.
const flattenSegments = 16

// fitMargin shrinks the initial fit so the drawing clears the frame.
const fitMargin = 0.95

// strips lowers an svg element tree to straight line strips. Text is
// skipped; braille cells have no room for labels.
func strips(el svg.Element) [][]svg.Point {
	switch e := el.(type) {
	case svg.Group:
		var out [][]svg.Point
		for _, child := range e.Children {
			out = append(out, strips(child)...)
		}
		return out
	case *svg.Group:
		return strips(*e)
	case svg.Line:
		return [][]svg.Point{{{X: e.X1, Y: e.Y1}, {X: e.X2, Y: e.Y2}}}
	case svg.Polyline:
		if len(e.Points) < 2 {
			return nil
		}
		return [][]svg.Point{e.Points}
	case svg.Polygon:
		if len(e.Points) < 2 {
			return nil
		}
		closed := append(append([]svg.Point{}, e.Points...), e.Points[0])
		return [][]svg.Point{closed}
	case svg.Rect:
		return [][]svg.Point{{
			{X: e.X, Y: e.Y},
			{X: e.X + e.W, Y: e.Y},
			{X: e.X + e.W, Y: e.Y + e.H},
			{X: e.X, Y: e.Y + e.H},
			{X: e.X, Y: e.Y},
		}}
	case svg.Circle:
		return [][]svg.Point{ellipseStrip(e.CX, e.CY, e.R, e.R)}
	case svg.Ellipse:
		return [][]svg.Point{ellipseStrip(e.CX, e.CY, e.RX, e.RY)}
	case svg.Path:
		return e.Flatten(flattenSegments)
	}
	return nil
}

func ellipseStrip(cx, cy, rx, ry float64) []svg.Point {
	const n = 32
	pts := make([]svg.Point, n+1)
	for i := 0; i <= n; i++ {
		a := 2 * math.Pi * float64(i) / n
		pts[i] = svg.Point{X: cx + rx*math.Cos(a), Y: cy + ry*math.Sin(a)}
	}
	return pts
}

func (m model) renderCanvas(w, h int) string {
	cv := newCanvas(w, h)
	if !m.bounds.IsEmpty() {
		for _, l := range m.layers {
			if !l.visible {
				continue
			}
			for _, strip := range l.strips {
				px, py := m.micro(strip[0], w, h)
				for _, p := range strip[1:] {
					nx, ny := m.micro(p, w, h)
					cv.line(px, py, nx, ny)
					px, py = nx, ny
				}
			}
		}
	}
	return strings.Join(cv.rows(), "\n")
}

// micro maps drawing coordinates onto the braille grid, uniformly
// scaled to fit the bounds and adjusted by zoom and pan. Drawing
// coordinates grow downward already, so no vertical flip is needed.
func (m model) micro(p svg.Point, w, h int) (int, int) {
	wMic, hMic := w*2, h*4
	bw, bh := m.bounds.W(), m.bounds.H()
	if bw <= 0 {
		bw = 1
	}
	if bh <= 0 {
		bh = 1
	}
	scale := math.Min(float64(wMic)/bw, float64(hMic)/bh) * fitMargin * m.zoom
	cx := m.bounds.MinX + bw/2
	cy := m.bounds.MinY + bh/2
	sx := float64(wMic)/2 + (p.X-cx)*scale
	sy := float64(hMic)/2 + (p.Y-cy)*scale
	return int(sx) + m.offsetX*2, int(sy) + m.offsetY*4
}

// canvas is a braille micro-pixel buffer: every terminal cell carries
// a 2x4 dot grid.
type canvas struct {
	w, h  int
	cells [][]uint8
}

// brailleBits is the dot mask per micro pixel, rows top to bottom and
// columns left to right. Unicode braille numbers dots 1-6 down the
// two columns and appends dots 7 and 8 as the bottom row.
var brailleBits = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

func newCanvas(w, h int) *canvas {
	cells := make([][]uint8, h)
	for i := range cells {
		cells[i] = make([]uint8, w)
	}
	return &canvas{w: w, h: h, cells: cells}
}

// set marks one micro pixel; coordinates off the canvas are ignored.
func (c *canvas) set(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, cy := mx/2, my/4
	if cx >= c.w || cy >= c.h {
		return
	}
	c.cells[cy][cx] |= brailleBits[my%4][mx%2]
}

// line draws a micro-pixel segment with Bresenham stepping.
func (c *canvas) line(x0, y0, x1, y1 int) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		c.set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// rows renders the buffer as one string per cell row.
func (c *canvas) rows() []string {
	out := make([]string, c.h)
	row := make([]rune, c.w)
	for y := 0; y < c.h; y++ {
		for x := 0; x < c.w; x++ {
			if mask := c.cells[y][x]; mask != 0 {
				row[x] = rune(0x2800 + int(mask))
			} else {
				row[x] = ' '
			}
		}
		out[y] = string(row)
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
