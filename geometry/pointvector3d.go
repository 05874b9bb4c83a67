package geometry

import (
	"encoding/json"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Point3D is a location in 3D space.
type Point3D struct {
	X, Y, Z float64
}

// Move translates the point along a vector.
func (p Point3D) Move(v Vector3D) Point3D {
	return Point3D(r3.Add(r3.Vec(p), r3.Vec(v)))
}

// Rotate rotates the point counterclockwise by an angle in radians
// around an axis of rotation anchored at an origin point.
func (p Point3D) Rotate(axis Vector3D, angle float64, origin Point3D) Point3D {
	rot := r3.NewRotation(angle, r3.Vec(axis))
	d := r3.Sub(r3.Vec(p), r3.Vec(origin))
	return Point3D(r3.Add(r3.Vec(origin), rot.Rotate(d)))
}

// RotateXY rotates the point counterclockwise in the world XY plane.
func (p Point3D) RotateXY(angle float64, origin Point3D) Point3D {
	return p.Rotate(Vector3D{Z: 1}, angle, origin)
}

// Reflect mirrors the point across a plane defined by a normalized
// normal vector and an origin point.
func (p Point3D) Reflect(normal Vector3D, origin Point3D) Point3D {
	d := r3.Sub(r3.Vec(p), r3.Vec(origin))
	n := r3.Vec(normal)
	r := r3.Sub(d, r3.Scale(2*r3.Dot(d, n), n))
	return Point3D(r3.Add(r3.Vec(origin), r))
}

// Scale scales the point by a factor from an origin point. The zero
// value of origin scales from the world origin.
func (p Point3D) Scale(factor float64, origin Point3D) Point3D {
	d := r3.Sub(r3.Vec(p), r3.Vec(origin))
	return Point3D(r3.Add(r3.Vec(origin), r3.Scale(factor, d)))
}

// DistanceTo returns the distance to another point.
func (p Point3D) DistanceTo(other Point3D) float64 {
	return r3.Norm(r3.Sub(r3.Vec(other), r3.Vec(p)))
}

// Add returns the point translated by a vector. It is an alias of Move
// kept for symmetry with Subtract.
func (p Point3D) Add(v Vector3D) Point3D { return p.Move(v) }

// Subtract returns the vector pointing from another point to this one.
func (p Point3D) Subtract(other Point3D) Vector3D {
	return Vector3D(r3.Sub(r3.Vec(p), r3.Vec(other)))
}

func (p Point3D) toArray() [3]float64 { return [3]float64{p.X, p.Y, p.Z} }

func point3DFromArray(a [3]float64) Point3D { return Point3D{X: a[0], Y: a[1], Z: a[2]} }

type point3DDict struct {
	Type string  `json:"type"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Z    float64 `json:"z"`
}

func (p Point3D) MarshalJSON() ([]byte, error) {
	return json.Marshal(point3DDict{Type: "Point3D", X: p.X, Y: p.Y, Z: p.Z})
}

func (p *Point3D) UnmarshalJSON(data []byte) error {
	var d point3DDict
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	if err := checkType(d.Type, "Point3D"); err != nil {
		return err
	}
	p.X, p.Y, p.Z = d.X, d.Y, d.Z
	return nil
}

// Vector3D is a direction with magnitude in 3D space.
type Vector3D struct {
	X, Y, Z float64
}

// Magnitude returns the length of the vector.
func (v Vector3D) Magnitude() float64 { return r3.Norm(r3.Vec(v)) }

// Normalize returns the vector scaled to unit length.
func (v Vector3D) Normalize() Vector3D { return Vector3D(r3.Unit(r3.Vec(v))) }

// Reverse returns the vector pointing the opposite way.
func (v Vector3D) Reverse() Vector3D { return Vector3D(r3.Scale(-1, r3.Vec(v))) }

// Dot returns the dot product with another vector.
func (v Vector3D) Dot(other Vector3D) float64 { return r3.Dot(r3.Vec(v), r3.Vec(other)) }

// Cross returns the cross product with another vector.
func (v Vector3D) Cross(other Vector3D) Vector3D {
	return Vector3D(r3.Cross(r3.Vec(v), r3.Vec(other)))
}

// Rotate rotates the vector counterclockwise by an angle in radians
// around an axis of rotation.
func (v Vector3D) Rotate(axis Vector3D, angle float64) Vector3D {
	rot := r3.NewRotation(angle, r3.Vec(axis))
	return Vector3D(rot.Rotate(r3.Vec(v)))
}

// Reflect mirrors the vector across a plane defined by a normalized
// normal vector.
func (v Vector3D) Reflect(normal Vector3D) Vector3D {
	d := r3.Vec(v)
	n := r3.Vec(normal)
	return Vector3D(r3.Sub(d, r3.Scale(2*r3.Dot(d, n), n)))
}

// Angle returns the angle to another vector in radians.
func (v Vector3D) Angle(other Vector3D) float64 {
	cos := v.Dot(other) / (v.Magnitude() * other.Magnitude())
	// Clamp against float drift before the inverse cosine.
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return math.Acos(cos)
}

// Scale returns the vector scaled by a factor.
func (v Vector3D) Scale(factor float64) Vector3D {
	return Vector3D(r3.Scale(factor, r3.Vec(v)))
}

func (v Vector3D) toArray() [3]float64 { return [3]float64{v.X, v.Y, v.Z} }

func vector3DFromArray(a [3]float64) Vector3D { return Vector3D{X: a[0], Y: a[1], Z: a[2]} }

type vector3DDict struct {
	Type string  `json:"type"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Z    float64 `json:"z"`
}

func (v Vector3D) MarshalJSON() ([]byte, error) {
	return json.Marshal(vector3DDict{Type: "Vector3D", X: v.X, Y: v.Y, Z: v.Z})
}

func (v *Vector3D) UnmarshalJSON(data []byte) error {
	var d vector3DDict
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	if err := checkType(d.Type, "Vector3D"); err != nil {
		return err
	}
	v.X, v.Y, v.Z = d.X, d.Y, d.Z
	return nil
}
