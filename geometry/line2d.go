package geometry

import "encoding/json"

// LineSegment2D is a finite line in 2D space, stored as a base point
// and a direction vector whose magnitude is the segment length.
type LineSegment2D struct {
	P Point2D
	V Vector2D
}

// LineSegment2DFromEndPoints builds a segment spanning two points.
func LineSegment2DFromEndPoints(p1, p2 Point2D) LineSegment2D {
	return LineSegment2D{P: p1, V: Vector2D{X: p2.X - p1.X, Y: p2.Y - p1.Y}}
}

// P1 returns the start point of the segment.
func (l LineSegment2D) P1() Point2D { return l.P }

// P2 returns the end point of the segment.
func (l LineSegment2D) P2() Point2D { return l.P.Move(l.V) }

// Length returns the length of the segment.
func (l LineSegment2D) Length() float64 { return l.V.Magnitude() }

// MidPoint returns the point halfway along the segment.
func (l LineSegment2D) MidPoint() Point2D { return l.P.Move(l.V.Scale(0.5)) }

// Move translates the segment along a vector.
func (l LineSegment2D) Move(v Vector2D) LineSegment2D {
	return LineSegment2D{P: l.P.Move(v), V: l.V}
}

// Rotate rotates the segment counterclockwise by an angle in radians
// around an origin point.
func (l LineSegment2D) Rotate(angle float64, origin Point2D) LineSegment2D {
	return LineSegment2D{P: l.P.Rotate(angle, origin), V: l.V.Rotate(angle)}
}

// Reflect mirrors the segment across a plane defined by a normalized
// normal vector and an origin point.
func (l LineSegment2D) Reflect(normal Vector2D, origin Point2D) LineSegment2D {
	return LineSegment2DFromEndPoints(
		l.P1().Reflect(normal, origin), l.P2().Reflect(normal, origin))
}

// Scale scales the segment by a factor from an origin point.
func (l LineSegment2D) Scale(factor float64, origin Point2D) LineSegment2D {
	return LineSegment2D{P: l.P.Scale(factor, origin), V: l.V.Scale(factor)}
}

type lineSegment2DDict struct {
	Type string   `json:"type"`
	P    Point2D  `json:"p"`
	V    Vector2D `json:"v"`
}

func (l LineSegment2D) MarshalJSON() ([]byte, error) {
	return json.Marshal(lineSegment2DDict{Type: "LineSegment2D", P: l.P, V: l.V})
}

func (l *LineSegment2D) UnmarshalJSON(data []byte) error {
	var d lineSegment2DDict
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	if err := checkType(d.Type, "LineSegment2D"); err != nil {
		return err
	}
	l.P, l.V = d.P, d.V
	return nil
}
