package geometry

import "encoding/json"

// LineSegment3D is a finite line in 3D space, stored as a base point
// and a direction vector whose magnitude is the segment length.
type LineSegment3D struct {
	P Point3D
	V Vector3D
}

// LineSegment3DFromEndPoints builds a segment spanning two points.
func LineSegment3DFromEndPoints(p1, p2 Point3D) LineSegment3D {
	return LineSegment3D{P: p1, V: p2.Subtract(p1)}
}

// P1 returns the start point of the segment.
func (l LineSegment3D) P1() Point3D { return l.P }

// P2 returns the end point of the segment.
func (l LineSegment3D) P2() Point3D { return l.P.Move(l.V) }

// Length returns the length of the segment.
func (l LineSegment3D) Length() float64 { return l.V.Magnitude() }

// MidPoint returns the point halfway along the segment.
func (l LineSegment3D) MidPoint() Point3D { return l.P.Move(l.V.Scale(0.5)) }

// Move translates the segment along a vector.
func (l LineSegment3D) Move(v Vector3D) LineSegment3D {
	return LineSegment3D{P: l.P.Move(v), V: l.V}
}

// Rotate rotates the segment counterclockwise by an angle in radians
// around an axis of rotation anchored at an origin point.
func (l LineSegment3D) Rotate(axis Vector3D, angle float64, origin Point3D) LineSegment3D {
	return LineSegment3D{P: l.P.Rotate(axis, angle, origin), V: l.V.Rotate(axis, angle)}
}

// RotateXY rotates the segment counterclockwise in the world XY plane.
func (l LineSegment3D) RotateXY(angle float64, origin Point3D) LineSegment3D {
	return l.Rotate(Vector3D{Z: 1}, angle, origin)
}

// Reflect mirrors the segment across a plane defined by a normalized
// normal vector and an origin point.
func (l LineSegment3D) Reflect(normal Vector3D, origin Point3D) LineSegment3D {
	return LineSegment3DFromEndPoints(
		l.P1().Reflect(normal, origin), l.P2().Reflect(normal, origin))
}

// Scale scales the segment by a factor from an origin point.
func (l LineSegment3D) Scale(factor float64, origin Point3D) LineSegment3D {
	return LineSegment3D{P: l.P.Scale(factor, origin), V: l.V.Scale(factor)}
}

type lineSegment3DDict struct {
	Type string   `json:"type"`
	P    Point3D  `json:"p"`
	V    Vector3D `json:"v"`
}

func (l LineSegment3D) MarshalJSON() ([]byte, error) {
	return json.Marshal(lineSegment3DDict{Type: "LineSegment3D", P: l.P, V: l.V})
}

func (l *LineSegment3D) UnmarshalJSON(data []byte) error {
	var d lineSegment3DDict
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	if err := checkType(d.Type, "LineSegment3D"); err != nil {
		return err
	}
	l.P, l.V = d.P, d.V
	return nil
}
