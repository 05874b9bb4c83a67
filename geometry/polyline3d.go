package geometry

import (
	"encoding/json"
	"fmt"
)

// Polyline3D is an open sequence of joined line segments in 3D space.
type Polyline3D struct {
	Vertices     []Point3D
	Interpolated bool
}

// NewPolyline3D builds a polyline from an ordered list of vertices.
// At least 3 vertices are required.
func NewPolyline3D(vertices []Point3D, interpolated bool) (Polyline3D, error) {
	if len(vertices) < 3 {
		return Polyline3D{}, fmt.Errorf("polyline requires at least 3 vertices, got %d", len(vertices))
	}
	return Polyline3D{Vertices: vertices, Interpolated: interpolated}, nil
}

// P1 returns the first vertex.
func (p Polyline3D) P1() Point3D { return p.Vertices[0] }

// P2 returns the last vertex.
func (p Polyline3D) P2() Point3D { return p.Vertices[len(p.Vertices)-1] }

// Segments returns the consecutive line segments between vertices.
func (p Polyline3D) Segments() []LineSegment3D {
	segs := make([]LineSegment3D, len(p.Vertices)-1)
	for i := range segs {
		segs[i] = LineSegment3DFromEndPoints(p.Vertices[i], p.Vertices[i+1])
	}
	return segs
}

// Length returns the total length of all segments.
func (p Polyline3D) Length() float64 {
	var length float64
	for i := 0; i < len(p.Vertices)-1; i++ {
		length += p.Vertices[i].DistanceTo(p.Vertices[i+1])
	}
	return length
}

// Move translates the polyline along a vector.
func (p Polyline3D) Move(v Vector3D) Polyline3D {
	return p.mapVertices(func(pt Point3D) Point3D { return pt.Move(v) })
}

// Rotate rotates the polyline counterclockwise by an angle in radians
// around an axis through an origin point.
func (p Polyline3D) Rotate(axis Vector3D, angle float64, origin Point3D) Polyline3D {
	return p.mapVertices(func(pt Point3D) Point3D { return pt.Rotate(axis, angle, origin) })
}

// RotateXY rotates the polyline counterclockwise in the world XY plane.
func (p Polyline3D) RotateXY(angle float64, origin Point3D) Polyline3D {
	return p.mapVertices(func(pt Point3D) Point3D { return pt.RotateXY(angle, origin) })
}

// Reflect mirrors the polyline across a plane defined by a normalized
// normal vector and an origin point.
func (p Polyline3D) Reflect(normal Vector3D, origin Point3D) Polyline3D {
	return p.mapVertices(func(pt Point3D) Point3D { return pt.Reflect(normal, origin) })
}

// Scale scales the polyline by a factor from an origin point.
func (p Polyline3D) Scale(factor float64, origin Point3D) Polyline3D {
	return p.mapVertices(func(pt Point3D) Point3D { return pt.Scale(factor, origin) })
}

func (p Polyline3D) mapVertices(f func(Point3D) Point3D) Polyline3D {
	verts := make([]Point3D, len(p.Vertices))
	for i, pt := range p.Vertices {
		verts[i] = f(pt)
	}
	return Polyline3D{Vertices: verts, Interpolated: p.Interpolated}
}

type polyline3DDict struct {
	Type         string       `json:"type"`
	Vertices     [][3]float64 `json:"vertices"`
	Interpolated bool         `json:"interpolated"`
}

func (p Polyline3D) MarshalJSON() ([]byte, error) {
	verts := make([][3]float64, len(p.Vertices))
	for i, pt := range p.Vertices {
		verts[i] = pt.toArray()
	}
	return json.Marshal(polyline3DDict{Type: "Polyline3D", Vertices: verts, Interpolated: p.Interpolated})
}

func (p *Polyline3D) UnmarshalJSON(data []byte) error {
	var d polyline3DDict
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	if err := checkType(d.Type, "Polyline3D"); err != nil {
		return err
	}
	verts := make([]Point3D, len(d.Vertices))
	for i, a := range d.Vertices {
		verts[i] = point3DFromArray(a)
	}
	pl, err := NewPolyline3D(verts, d.Interpolated)
	if err != nil {
		return err
	}
	*p = pl
	return nil
}
