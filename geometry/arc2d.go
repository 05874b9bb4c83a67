package geometry

import (
	"encoding/json"
	"fmt"
	"math"
)

// Arc2D is an arc of a circle in 2D space, swept counterclockwise from
// angle A1 to angle A2 (radians, measured from the positive X axis).
// An arc with A1 == 0 and A2 == 2π is a full circle.
type Arc2D struct {
	C  Point2D
	R  float64
	A1 float64
	A2 float64
}

// NewArc2D builds an arc from a center, radius and start/end angles.
// The radius must be positive; angles outside [0, 2π) are normalized,
// except that A2 == 2π with A1 == 0 is preserved as a full circle.
func NewArc2D(c Point2D, r, a1, a2 float64) (Arc2D, error) {
	if !(r > 0) {
		return Arc2D{}, fmt.Errorf("arc radius must be positive, got %v", r)
	}
	if !(a1 == 0 && a2 == twoPi) {
		a1 = normalizeAngle(a1)
		a2 = normalizeAngle(a2)
	}
	return Arc2D{C: c, R: r, A1: a1, A2: a2}, nil
}

// NewCircle builds a full-circle arc from a center and radius.
func NewCircle(c Point2D, r float64) (Arc2D, error) {
	return NewArc2D(c, r, 0, twoPi)
}

// IsCircle reports whether the arc closes into a full circle.
func (a Arc2D) IsCircle() bool { return a.A1 == 0 && a.A2 == twoPi }

// Angle returns the counterclockwise sweep from A1 to A2 in radians.
func (a Arc2D) Angle() float64 {
	diff := a.A2 - a.A1
	if a.A1 > a.A2 {
		diff += twoPi
	}
	return diff
}

// Length returns the arc length.
func (a Arc2D) Length() float64 { return a.R * a.Angle() }

// P1 returns the start point of the arc.
func (a Arc2D) P1() Point2D { return a.pointAtAngle(a.A1) }

// P2 returns the end point of the arc.
func (a Arc2D) P2() Point2D { return a.pointAtAngle(a.A2) }

// MidPoint returns the point halfway along the arc.
func (a Arc2D) MidPoint() Point2D {
	return a.pointAtAngle(a.A1 + a.Angle()/2)
}

// PointAt returns the point at a normalized parameter along the arc,
// where 0 is P1 and 1 is P2.
func (a Arc2D) PointAt(t float64) Point2D {
	return a.pointAtAngle(a.A1 + a.Angle()*t)
}

func (a Arc2D) pointAtAngle(angle float64) Point2D {
	return Point2D{X: a.C.X + a.R*math.Cos(angle), Y: a.C.Y + a.R*math.Sin(angle)}
}

// Move translates the arc along a vector.
func (a Arc2D) Move(v Vector2D) Arc2D {
	return Arc2D{C: a.C.Move(v), R: a.R, A1: a.A1, A2: a.A2}
}

// Rotate rotates the arc counterclockwise by an angle in radians
// around an origin point.
func (a Arc2D) Rotate(angle float64, origin Point2D) Arc2D {
	if a.IsCircle() {
		return Arc2D{C: a.C.Rotate(angle, origin), R: a.R, A1: 0, A2: twoPi}
	}
	return Arc2D{
		C:  a.C.Rotate(angle, origin),
		R:  a.R,
		A1: normalizeAngle(a.A1 + angle),
		A2: normalizeAngle(a.A2 + angle),
	}
}

// Reflect mirrors the arc across a plane defined by a normalized
// normal vector and an origin point. Reflection reverses orientation,
// so the start and end angles swap to keep the sweep counterclockwise.
func (a Arc2D) Reflect(normal Vector2D, origin Point2D) Arc2D {
	c := a.C.Reflect(normal, origin)
	if a.IsCircle() {
		return Arc2D{C: c, R: a.R, A1: 0, A2: twoPi}
	}
	// A point at angle θ maps to angle 2φ−θ, where φ is the angle of
	// the mirror line (perpendicular to the normal).
	phi := math.Atan2(normal.Y, normal.X) + math.Pi/2
	return Arc2D{
		C:  c,
		R:  a.R,
		A1: normalizeAngle(2*phi - a.A2),
		A2: normalizeAngle(2*phi - a.A1),
	}
}

// Scale scales the arc by a factor from an origin point.
func (a Arc2D) Scale(factor float64, origin Point2D) Arc2D {
	return Arc2D{C: a.C.Scale(factor, origin), R: a.R * factor, A1: a.A1, A2: a.A2}
}

type arc2DDict struct {
	Type string  `json:"type"`
	C    Point2D `json:"c"`
	R    float64 `json:"r"`
	A1   float64 `json:"a1"`
	A2   float64 `json:"a2"`
}

func (a Arc2D) MarshalJSON() ([]byte, error) {
	return json.Marshal(arc2DDict{Type: "Arc2D", C: a.C, R: a.R, A1: a.A1, A2: a.A2})
}

func (a *Arc2D) UnmarshalJSON(data []byte) error {
	var d arc2DDict
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	if err := checkType(d.Type, "Arc2D"); err != nil {
		return err
	}
	arc, err := NewArc2D(d.C, d.R, d.A1, d.A2)
	if err != nil {
		return err
	}
	*a = arc
	return nil
}
