package geometry

import (
	"encoding/json"
	"fmt"
)

// Polyline2D is an open sequence of joined line segments in 2D space.
// When Interpolated is set, viewers should draw a smooth curve through
// the vertices instead of straight segments.
type Polyline2D struct {
	Vertices     []Point2D
	Interpolated bool
}

// NewPolyline2D builds a polyline from an ordered list of vertices.
// At least 3 vertices are required; shorter sequences are a line
// segment, not a polyline.
func NewPolyline2D(vertices []Point2D, interpolated bool) (Polyline2D, error) {
	if len(vertices) < 3 {
		return Polyline2D{}, fmt.Errorf("polyline requires at least 3 vertices, got %d", len(vertices))
	}
	return Polyline2D{Vertices: vertices, Interpolated: interpolated}, nil
}

// P1 returns the first vertex.
func (p Polyline2D) P1() Point2D { return p.Vertices[0] }

// P2 returns the last vertex.
func (p Polyline2D) P2() Point2D { return p.Vertices[len(p.Vertices)-1] }

// Segments returns the consecutive line segments between vertices.
func (p Polyline2D) Segments() []LineSegment2D {
	segs := make([]LineSegment2D, len(p.Vertices)-1)
	for i := range segs {
		segs[i] = LineSegment2DFromEndPoints(p.Vertices[i], p.Vertices[i+1])
	}
	return segs
}

// Length returns the total length of all segments.
func (p Polyline2D) Length() float64 {
	var length float64
	for i := 0; i < len(p.Vertices)-1; i++ {
		length += p.Vertices[i].DistanceTo(p.Vertices[i+1])
	}
	return length
}

// Move translates the polyline along a vector.
func (p Polyline2D) Move(v Vector2D) Polyline2D {
	return p.mapVertices(func(pt Point2D) Point2D { return pt.Move(v) })
}

// Rotate rotates the polyline counterclockwise by an angle in radians
// around an origin point.
func (p Polyline2D) Rotate(angle float64, origin Point2D) Polyline2D {
	return p.mapVertices(func(pt Point2D) Point2D { return pt.Rotate(angle, origin) })
}

// Reflect mirrors the polyline across a plane defined by a normalized
// normal vector and an origin point.
func (p Polyline2D) Reflect(normal Vector2D, origin Point2D) Polyline2D {
	return p.mapVertices(func(pt Point2D) Point2D { return pt.Reflect(normal, origin) })
}

// Scale scales the polyline by a factor from an origin point.
func (p Polyline2D) Scale(factor float64, origin Point2D) Polyline2D {
	return p.mapVertices(func(pt Point2D) Point2D { return pt.Scale(factor, origin) })
}

func (p Polyline2D) mapVertices(f func(Point2D) Point2D) Polyline2D {
	verts := make([]Point2D, len(p.Vertices))
	for i, pt := range p.Vertices {
		verts[i] = f(pt)
	}
	return Polyline2D{Vertices: verts, Interpolated: p.Interpolated}
}

type polyline2DDict struct {
	Type         string       `json:"type"`
	Vertices     [][2]float64 `json:"vertices"`
	Interpolated bool         `json:"interpolated"`
}

func (p Polyline2D) MarshalJSON() ([]byte, error) {
	verts := make([][2]float64, len(p.Vertices))
	for i, pt := range p.Vertices {
		verts[i] = [2]float64{pt.X, pt.Y}
	}
	return json.Marshal(polyline2DDict{Type: "Polyline2D", Vertices: verts, Interpolated: p.Interpolated})
}

func (p *Polyline2D) UnmarshalJSON(data []byte) error {
	var d polyline2DDict
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	if err := checkType(d.Type, "Polyline2D"); err != nil {
		return err
	}
	verts := make([]Point2D, len(d.Vertices))
	for i, a := range d.Vertices {
		verts[i] = Point2D{X: a[0], Y: a[1]}
	}
	pl, err := NewPolyline2D(verts, d.Interpolated)
	if err != nil {
		return err
	}
	*p = pl
	return nil
}
