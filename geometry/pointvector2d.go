package geometry

import (
	"encoding/json"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Point2D is a location in 2D space.
type Point2D struct {
	X, Y float64
}

// Move translates the point along a vector.
func (p Point2D) Move(v Vector2D) Point2D {
	return Point2D(r2.Add(r2.Vec(p), r2.Vec(v)))
}

// Rotate rotates the point counterclockwise by an angle in radians
// around an origin point.
func (p Point2D) Rotate(angle float64, origin Point2D) Point2D {
	return Point2D(r2.Rotate(r2.Vec(p), angle, r2.Vec(origin)))
}

// Reflect mirrors the point across a plane defined by a normalized
// normal vector and an origin point.
func (p Point2D) Reflect(normal Vector2D, origin Point2D) Point2D {
	d := r2.Sub(r2.Vec(p), r2.Vec(origin))
	n := r2.Vec(normal)
	r := r2.Sub(d, r2.Scale(2*r2.Dot(d, n), n))
	return Point2D(r2.Add(r2.Vec(origin), r))
}

// Scale scales the point by a factor from an origin point. The zero
// value of origin scales from the world origin.
func (p Point2D) Scale(factor float64, origin Point2D) Point2D {
	d := r2.Sub(r2.Vec(p), r2.Vec(origin))
	return Point2D(r2.Add(r2.Vec(origin), r2.Scale(factor, d)))
}

// DistanceTo returns the distance to another point.
func (p Point2D) DistanceTo(other Point2D) float64 {
	return r2.Norm(r2.Sub(r2.Vec(other), r2.Vec(p)))
}

type point2DDict struct {
	Type string  `json:"type"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

func (p Point2D) MarshalJSON() ([]byte, error) {
	return json.Marshal(point2DDict{Type: "Point2D", X: p.X, Y: p.Y})
}

func (p *Point2D) UnmarshalJSON(data []byte) error {
	var d point2DDict
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	if err := checkType(d.Type, "Point2D"); err != nil {
		return err
	}
	p.X, p.Y = d.X, d.Y
	return nil
}

// Vector2D is a direction with magnitude in 2D space.
type Vector2D struct {
	X, Y float64
}

// Magnitude returns the length of the vector.
func (v Vector2D) Magnitude() float64 { return r2.Norm(r2.Vec(v)) }

// Normalize returns the vector scaled to unit length.
func (v Vector2D) Normalize() Vector2D { return Vector2D(r2.Unit(r2.Vec(v))) }

// Reverse returns the vector pointing the opposite way.
func (v Vector2D) Reverse() Vector2D { return Vector2D(r2.Scale(-1, r2.Vec(v))) }

// Dot returns the dot product with another vector.
func (v Vector2D) Dot(other Vector2D) float64 { return r2.Dot(r2.Vec(v), r2.Vec(other)) }

// Cross returns the 2D cross product with another vector.
func (v Vector2D) Cross(other Vector2D) float64 { return r2.Cross(r2.Vec(v), r2.Vec(other)) }

// Rotate rotates the vector counterclockwise by an angle in radians.
func (v Vector2D) Rotate(angle float64) Vector2D {
	return Vector2D(r2.Rotate(r2.Vec(v), angle, r2.Vec{}))
}

// Scale returns the vector scaled by a factor.
func (v Vector2D) Scale(factor float64) Vector2D {
	return Vector2D(r2.Scale(factor, r2.Vec(v)))
}

// Angle returns the counterclockwise angle of the vector from the X
// axis, in radians within [0, 2π).
func (v Vector2D) Angle() float64 {
	return normalizeAngle(math.Atan2(v.Y, v.X))
}

type vector2DDict struct {
	Type string  `json:"type"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

func (v Vector2D) MarshalJSON() ([]byte, error) {
	return json.Marshal(vector2DDict{Type: "Vector2D", X: v.X, Y: v.Y})
}

func (v *Vector2D) UnmarshalJSON(data []byte) error {
	var d vector2DDict
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	if err := checkType(d.Type, "Vector2D"); err != nil {
		return err
	}
	v.X, v.Y = d.X, d.Y
	return nil
}
