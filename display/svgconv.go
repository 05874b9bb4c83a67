package display

import (
	"math"

	"github.com/chriswmackey/ladybug-display/geometry"
	"github.com/chriswmackey/ladybug-display/svg"
)

// This file projects geometry onto the SVG drawing plane.
//
// The projection is an orthographic plan view: world (x, y, z) maps to
// SVG (x, -y), dropping z. The Y axis negates because SVG's Y axis
// points down while the world's points up.

const (
	// defaultMarkerRadius is the radius of point markers in pixels.
	defaultMarkerRadius = 5
	// defaultStrokeWidth resolves the viewer-default line width sentinel.
	defaultStrokeWidth = 1
)

func project2(p geometry.Point2D) (x, y float64) { return p.X, -p.Y }

func project3(p geometry.Point3D) (x, y float64) { return p.X, -p.Y }

// Point2DToSVG converts a raw 2D point to an SVG circle marker.
func Point2DToSVG(p geometry.Point2D) svg.Circle {
	x, y := project2(p)
	return svg.Circle{CX: x, CY: y, R: defaultMarkerRadius}
}

// Point3DToSVG converts a raw 3D point to an SVG circle marker.
func Point3DToSVG(p geometry.Point3D) svg.Circle {
	x, y := project3(p)
	return svg.Circle{CX: x, CY: y, R: defaultMarkerRadius}
}

// Vector3DToSVG converts a raw 3D vector to a line from the origin
// with an arrow-head polygon, grouped.
func Vector3DToSVG(v geometry.Vector3D) svg.Group {
	x, y := project3(geometry.Point3D(v))
	g := svg.Group{}
	g.Children = append(g.Children, svg.Line{X2: x, Y2: y})
	length := math.Hypot(x, y)
	if length == 0 {
		// Vectors along the projection axis collapse to a point.
		return g
	}
	ux, uy := x/length, y/length
	head := length / 10
	g.Children = append(g.Children, svg.Polygon{Points: []svg.Point{
		{X: x, Y: y},
		arrowFlank(x, y, ux, uy, head, 25),
		arrowFlank(x, y, ux, uy, head, -25),
	}})
	return g
}

// arrowFlank returns one back corner of an arrow head, swept off the
// shaft direction by the given angle in degrees.
func arrowFlank(x, y, ux, uy, size, angle float64) svg.Point {
	sin, cos := math.Sincos(degToRad(angle))
	rx := ux*cos - uy*sin
	ry := ux*sin + uy*cos
	return svg.Point{X: x - size*rx, Y: y - size*ry}
}

// LineSegment2DToSVG converts a raw 2D segment to an SVG line.
func LineSegment2DToSVG(l geometry.LineSegment2D) svg.Line {
	x1, y1 := project2(l.P1())
	x2, y2 := project2(l.P2())
	return svg.Line{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// LineSegment3DToSVG converts a raw 3D segment to an SVG line.
func LineSegment3DToSVG(l geometry.LineSegment3D) svg.Line {
	x1, y1 := project3(l.P1())
	x2, y2 := project3(l.P2())
	return svg.Line{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// Polyline2DToSVG converts a raw 2D polyline to an SVG polyline, or to
// a smooth cubic path when the polyline is interpolated.
func Polyline2DToSVG(p geometry.Polyline2D) svg.Element {
	pts := make([]svg.Point, len(p.Vertices))
	for i, v := range p.Vertices {
		x, y := project2(v)
		pts[i] = svg.Point{X: x, Y: y}
	}
	return polylineElement(pts, p.Interpolated)
}

// Polyline3DToSVG converts a raw 3D polyline to an SVG polyline, or to
// a smooth cubic path when the polyline is interpolated.
func Polyline3DToSVG(p geometry.Polyline3D) svg.Element {
	pts := make([]svg.Point, len(p.Vertices))
	for i, v := range p.Vertices {
		x, y := project3(v)
		pts[i] = svg.Point{X: x, Y: y}
	}
	return polylineElement(pts, p.Interpolated)
}

func polylineElement(pts []svg.Point, interpolated bool) svg.Element {
	if interpolated && len(pts) >= 3 {
		return svg.Path{Commands: smoothCommands(pts)}
	}
	return svg.Polyline{Points: pts}
}

// smoothCommands fits a smooth cubic path through the points, deriving
// Catmull-Rom tangents from each vertex's neighbors.
func smoothCommands(pts []svg.Point) []svg.Command {
	cmds := make([]svg.Command, 0, len(pts))
	cmds = append(cmds, svg.MoveTo{X: pts[0].X, Y: pts[0].Y})
	n := len(pts)
	at := func(i int) svg.Point {
		if i < 0 {
			return pts[0]
		}
		if i >= n {
			return pts[n-1]
		}
		return pts[i]
	}
	for i := 0; i < n-1; i++ {
		p0, p1, p2, p3 := at(i-1), at(i), at(i+1), at(i+2)
		cmds = append(cmds, svg.CubicTo{
			X1: p1.X + (p2.X-p0.X)/6, Y1: p1.Y + (p2.Y-p0.Y)/6,
			X2: p2.X - (p3.X-p1.X)/6, Y2: p2.Y - (p3.Y-p1.Y)/6,
			X: p2.X, Y: p2.Y,
		})
	}
	return cmds
}

// Arc2DToSVG converts a raw 2D arc to an SVG circle when it closes, or
// to an elliptical-arc path otherwise.
func Arc2DToSVG(a geometry.Arc2D) svg.Element {
	if a.IsCircle() {
		x, y := project2(a.C)
		return svg.Circle{CX: x, CY: y, R: a.R}
	}
	x1, y1 := project2(a.P1())
	x2, y2 := project2(a.P2())
	// The world sweep is counterclockwise; negating Y reverses it, so
	// the SVG sweep flag stays 0.
	return svg.Path{Commands: []svg.Command{
		svg.MoveTo{X: x1, Y: y1},
		svg.ArcTo{RX: a.R, RY: a.R, LargeArc: a.Angle() > math.Pi, X: x2, Y: y2},
	}}
}

// SphereToSVG converts a raw sphere to its SVG plan silhouette.
func SphereToSVG(s geometry.Sphere) svg.Circle {
	x, y := project3(s.Center)
	return svg.Circle{CX: x, CY: y, R: s.Radius}
}

// ConeToSVG converts a raw cone to the SVG circle of its base.
func ConeToSVG(c geometry.Cone) svg.Circle {
	x, y := project3(c.Vertex.Move(c.Axis))
	return svg.Circle{CX: x, CY: y, R: c.Radius()}
}

// CylinderToSVG converts a raw cylinder to its SVG plan silhouette.
func CylinderToSVG(c geometry.Cylinder) svg.Circle {
	x, y := project3(c.Center)
	return svg.Circle{CX: x, CY: y, R: c.Radius}
}

// opacityOf maps a color's alpha to an optional SVG opacity.
func opacityOf(c Color) *float64 {
	if c.A == 255 {
		return nil
	}
	return svg.Number(float64(c.A) / 255)
}

// markerStyle fills point markers with the display color.
func markerStyle(c Color) svg.Style {
	return svg.Style{Fill: c.RGB(), Opacity: opacityOf(c)}
}

// strokeStyle applies the line attributes of line-like wrappers.
func strokeStyle(c Color, w LineWidth, t LineType) svg.Style {
	return svg.Style{
		Fill:            "none",
		Stroke:          c.RGB(),
		StrokeWidth:     w.Or(defaultStrokeWidth),
		StrokeDasharray: dashArray(t),
		Opacity:         opacityOf(c),
	}
}

// dashArray returns the stroke-dasharray for a line type; continuous
// lines have none.
func dashArray(t LineType) string {
	switch t {
	case Dashed:
		return "4, 4"
	case Dotted:
		return "1, 2"
	case DashDot:
		return "4, 2, 1, 2"
	}
	return ""
}

// surfaceStyle applies a solid wrapper's color under its display mode.
func surfaceStyle(c Color, mode DisplayMode) svg.Style {
	st := svg.Style{Opacity: opacityOf(c)}
	switch mode {
	case SurfaceWithEdges:
		st.Fill = c.RGB()
		st.Stroke = "black"
		st.StrokeWidth = defaultStrokeWidth
	case Wireframe:
		st.Fill = "none"
		st.Stroke = c.RGB()
		st.StrokeWidth = defaultStrokeWidth
	default:
		st.Fill = c.RGB()
	}
	return st
}

// restyle sets the style on whichever concrete element a converter
// returned.
func restyle(el svg.Element, st svg.Style) svg.Element {
	switch e := el.(type) {
	case svg.Circle:
		e.Style = st
		return e
	case svg.Line:
		e.Style = st
		return e
	case svg.Polyline:
		e.Style = st
		return e
	case svg.Path:
		e.Style = st
		return e
	case svg.Group:
		e.Style = st
		return e
	}
	return el
}

// markers draws one circle marker per defining point of a solid shown
// in the Points display mode.
func markers(c Color, pts ...geometry.Point3D) svg.Element {
	g := svg.Group{Style: markerStyle(c)}
	for _, p := range pts {
		x, y := project3(p)
		g.Children = append(g.Children, svg.Circle{CX: x, CY: y, R: defaultMarkerRadius})
	}
	return g
}

// ToSVG projects the wrapped point and fills the marker with the
// display color.
func (p *Point2D) ToSVG() svg.Element {
	el := Point2DToSVG(p.geometry)
	el.Style = markerStyle(p.color)
	return el
}

// ToSVG projects the wrapped point and fills the marker with the
// display color.
func (p *Point3D) ToSVG() svg.Element {
	el := Point3DToSVG(p.geometry)
	el.Style = markerStyle(p.color)
	return el
}

// ToSVG projects the wrapped vector and colors its shaft and head.
func (v *Vector3D) ToSVG() svg.Element {
	g := Vector3DToSVG(v.geometry)
	g.Style = svg.Style{
		Fill:    v.color.RGB(),
		Stroke:  v.color.RGB(),
		Opacity: opacityOf(v.color),
	}
	return g
}

// ToSVG projects the wrapped segment and applies the line attributes.
func (l *LineSegment2D) ToSVG() svg.Element {
	el := LineSegment2DToSVG(l.geometry)
	el.Style = strokeStyle(l.color, l.lineWidth, l.lineType)
	return el
}

// ToSVG projects the wrapped segment and applies the line attributes.
func (l *LineSegment3D) ToSVG() svg.Element {
	el := LineSegment3DToSVG(l.geometry)
	el.Style = strokeStyle(l.color, l.lineWidth, l.lineType)
	return el
}

// ToSVG projects the wrapped polyline and applies the line attributes.
func (p *Polyline2D) ToSVG() svg.Element {
	return restyle(Polyline2DToSVG(p.geometry), strokeStyle(p.color, p.lineWidth, p.lineType))
}

// ToSVG projects the wrapped polyline and applies the line attributes.
func (p *Polyline3D) ToSVG() svg.Element {
	return restyle(Polyline3DToSVG(p.geometry), strokeStyle(p.color, p.lineWidth, p.lineType))
}

// ToSVG projects the wrapped arc and applies the line attributes.
func (a *Arc2D) ToSVG() svg.Element {
	return restyle(Arc2DToSVG(a.geometry), strokeStyle(a.color, a.lineWidth, a.lineType))
}

// ToSVG projects the wrapped sphere under its display mode.
func (s *Sphere) ToSVG() svg.Element {
	if s.displayMode == Points {
		return markers(s.color, s.geometry.Center)
	}
	el := SphereToSVG(s.geometry)
	el.Style = surfaceStyle(s.color, s.displayMode)
	return el
}

// ToSVG projects the wrapped cone under its display mode.
func (c *Cone) ToSVG() svg.Element {
	if c.displayMode == Points {
		return markers(c.color, c.geometry.Vertex, c.geometry.Vertex.Move(c.geometry.Axis))
	}
	el := ConeToSVG(c.geometry)
	el.Style = surfaceStyle(c.color, c.displayMode)
	return el
}

// ToSVG projects the wrapped cylinder under its display mode.
func (c *Cylinder) ToSVG() svg.Element {
	if c.displayMode == Points {
		return markers(c.color, c.geometry.Center, c.geometry.Center2())
	}
	el := CylinderToSVG(c.geometry)
	el.Style = surfaceStyle(c.color, c.displayMode)
	return el
}
