package geometry

import (
	"encoding/json"
	"fmt"
	"math"
)

// Sphere is a sphere in 3D space defined by a center point and radius.
type Sphere struct {
	Center Point3D
	Radius float64
}

// NewSphere builds a sphere, validating that the radius is positive.
func NewSphere(center Point3D, radius float64) (Sphere, error) {
	if !(radius > 0) {
		return Sphere{}, fmt.Errorf("sphere radius must be positive, got %v", radius)
	}
	return Sphere{Center: center, Radius: radius}, nil
}

// Diameter returns the sphere diameter.
func (s Sphere) Diameter() float64 { return 2 * s.Radius }

// Circumference returns the circumference of a great circle.
func (s Sphere) Circumference() float64 { return twoPi * s.Radius }

// Area returns the surface area of the sphere.
func (s Sphere) Area() float64 { return 4 * math.Pi * s.Radius * s.Radius }

// Volume returns the volume of the sphere.
func (s Sphere) Volume() float64 {
	return 4 * math.Pi * math.Pow(s.Radius, 3) / 3
}

// Move translates the sphere along a vector.
func (s Sphere) Move(v Vector3D) Sphere {
	return Sphere{Center: s.Center.Move(v), Radius: s.Radius}
}

// Rotate rotates the sphere counterclockwise by an angle in radians
// around an axis through an origin point.
func (s Sphere) Rotate(axis Vector3D, angle float64, origin Point3D) Sphere {
	return Sphere{Center: s.Center.Rotate(axis, angle, origin), Radius: s.Radius}
}

// RotateXY rotates the sphere counterclockwise in the world XY plane.
func (s Sphere) RotateXY(angle float64, origin Point3D) Sphere {
	return Sphere{Center: s.Center.RotateXY(angle, origin), Radius: s.Radius}
}

// Reflect mirrors the sphere across a plane defined by a normalized
// normal vector and an origin point.
func (s Sphere) Reflect(normal Vector3D, origin Point3D) Sphere {
	return Sphere{Center: s.Center.Reflect(normal, origin), Radius: s.Radius}
}

// Scale scales the sphere by a factor from an origin point.
func (s Sphere) Scale(factor float64, origin Point3D) Sphere {
	return Sphere{Center: s.Center.Scale(factor, origin), Radius: s.Radius * factor}
}

type sphereDict struct {
	Type   string     `json:"type"`
	Center [3]float64 `json:"center"`
	Radius float64    `json:"radius"`
}

func (s Sphere) MarshalJSON() ([]byte, error) {
	return json.Marshal(sphereDict{Type: "Sphere", Center: s.Center.toArray(), Radius: s.Radius})
}

func (s *Sphere) UnmarshalJSON(data []byte) error {
	var d sphereDict
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	if err := checkType(d.Type, "Sphere"); err != nil {
		return err
	}
	sp, err := NewSphere(point3DFromArray(d.Center), d.Radius)
	if err != nil {
		return err
	}
	*s = sp
	return nil
}

// Cone is a cone in 3D space defined by a vertex point, an axis vector
// pointing from the vertex to the center of the base, and the half-angle
// between the axis and the slanted surface in radians.
type Cone struct {
	Vertex Point3D
	Axis   Vector3D
	Angle  float64
}

// NewCone builds a cone, validating that the half-angle is positive
// and smaller than a right angle.
func NewCone(vertex Point3D, axis Vector3D, angle float64) (Cone, error) {
	if !(angle > 0 && angle < math.Pi/2) {
		return Cone{}, fmt.Errorf("cone angle must be between 0 and π/2, got %v", angle)
	}
	return Cone{Vertex: vertex, Axis: axis, Angle: angle}, nil
}

// Height returns the distance from the vertex to the base.
func (c Cone) Height() float64 { return c.Axis.Magnitude() }

// Radius returns the radius of the cone base.
func (c Cone) Radius() float64 { return c.Height() * math.Tan(c.Angle) }

// SlantHeight returns the distance from the vertex to the base edge.
func (c Cone) SlantHeight() float64 { return math.Hypot(c.Radius(), c.Height()) }

// Area returns the surface area of the cone, base included.
func (c Cone) Area() float64 {
	r := c.Radius()
	return math.Pi*r*r + math.Pi*r*c.SlantHeight()
}

// Volume returns the volume of the cone.
func (c Cone) Volume() float64 {
	r := c.Radius()
	return math.Pi * r * r * c.Height() / 3
}

// Move translates the cone along a vector.
func (c Cone) Move(v Vector3D) Cone {
	return Cone{Vertex: c.Vertex.Move(v), Axis: c.Axis, Angle: c.Angle}
}

// Rotate rotates the cone counterclockwise by an angle in radians
// around an axis through an origin point.
func (c Cone) Rotate(axis Vector3D, angle float64, origin Point3D) Cone {
	return Cone{
		Vertex: c.Vertex.Rotate(axis, angle, origin),
		Axis:   c.Axis.Rotate(axis, angle),
		Angle:  c.Angle,
	}
}

// RotateXY rotates the cone counterclockwise in the world XY plane.
func (c Cone) RotateXY(angle float64, origin Point3D) Cone {
	return c.Rotate(Vector3D{Z: 1}, angle, origin)
}

// Reflect mirrors the cone across a plane defined by a normalized
// normal vector and an origin point.
func (c Cone) Reflect(normal Vector3D, origin Point3D) Cone {
	return Cone{
		Vertex: c.Vertex.Reflect(normal, origin),
		Axis:   c.Axis.Reflect(normal),
		Angle:  c.Angle,
	}
}

// Scale scales the cone by a factor from an origin point.
func (c Cone) Scale(factor float64, origin Point3D) Cone {
	return Cone{
		Vertex: c.Vertex.Scale(factor, origin),
		Axis:   c.Axis.Scale(factor),
		Angle:  c.Angle,
	}
}

type coneDict struct {
	Type   string     `json:"type"`
	Vertex [3]float64 `json:"vertex"`
	Axis   [3]float64 `json:"axis"`
	Angle  float64    `json:"angle"`
}

func (c Cone) MarshalJSON() ([]byte, error) {
	return json.Marshal(coneDict{
		Type: "Cone", Vertex: c.Vertex.toArray(), Axis: c.Axis.toArray(), Angle: c.Angle,
	})
}

func (c *Cone) UnmarshalJSON(data []byte) error {
	var d coneDict
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	if err := checkType(d.Type, "Cone"); err != nil {
		return err
	}
	cn, err := NewCone(point3DFromArray(d.Vertex), vector3DFromArray(d.Axis), d.Angle)
	if err != nil {
		return err
	}
	*c = cn
	return nil
}

// Cylinder is a cylinder in 3D space defined by the center of its
// bottom base, an axis vector pointing from that center to the center
// of the top base, and a radius.
type Cylinder struct {
	Center Point3D
	Axis   Vector3D
	Radius float64
}

// NewCylinder builds a cylinder, validating that the radius is positive.
func NewCylinder(center Point3D, axis Vector3D, radius float64) (Cylinder, error) {
	if !(radius > 0) {
		return Cylinder{}, fmt.Errorf("cylinder radius must be positive, got %v", radius)
	}
	return Cylinder{Center: center, Axis: axis, Radius: radius}, nil
}

// Height returns the distance between the two base centers.
func (c Cylinder) Height() float64 { return c.Axis.Magnitude() }

// Center2 returns the center of the top base.
func (c Cylinder) Center2() Point3D { return c.Center.Move(c.Axis) }

// Diameter returns the cylinder diameter.
func (c Cylinder) Diameter() float64 { return 2 * c.Radius }

// Area returns the surface area of the cylinder, both bases included.
func (c Cylinder) Area() float64 {
	return twoPi*c.Radius*c.Height() + twoPi*c.Radius*c.Radius
}

// Volume returns the volume of the cylinder.
func (c Cylinder) Volume() float64 {
	return math.Pi * c.Radius * c.Radius * c.Height()
}

// Move translates the cylinder along a vector.
func (c Cylinder) Move(v Vector3D) Cylinder {
	return Cylinder{Center: c.Center.Move(v), Axis: c.Axis, Radius: c.Radius}
}

// Rotate rotates the cylinder counterclockwise by an angle in radians
// around an axis through an origin point.
func (c Cylinder) Rotate(axis Vector3D, angle float64, origin Point3D) Cylinder {
	return Cylinder{
		Center: c.Center.Rotate(axis, angle, origin),
		Axis:   c.Axis.Rotate(axis, angle),
		Radius: c.Radius,
	}
}

// RotateXY rotates the cylinder counterclockwise in the world XY plane.
func (c Cylinder) RotateXY(angle float64, origin Point3D) Cylinder {
	return c.Rotate(Vector3D{Z: 1}, angle, origin)
}

// Reflect mirrors the cylinder across a plane defined by a normalized
// normal vector and an origin point.
func (c Cylinder) Reflect(normal Vector3D, origin Point3D) Cylinder {
	return Cylinder{
		Center: c.Center.Reflect(normal, origin),
		Axis:   c.Axis.Reflect(normal),
		Radius: c.Radius,
	}
}

// Scale scales the cylinder by a factor from an origin point.
func (c Cylinder) Scale(factor float64, origin Point3D) Cylinder {
	return Cylinder{
		Center: c.Center.Scale(factor, origin),
		Axis:   c.Axis.Scale(factor),
		Radius: c.Radius * factor,
	}
}

type cylinderDict struct {
	Type   string     `json:"type"`
	Center [3]float64 `json:"center"`
	Axis   [3]float64 `json:"axis"`
	Radius float64    `json:"radius"`
}

func (c Cylinder) MarshalJSON() ([]byte, error) {
	return json.Marshal(cylinderDict{
		Type: "Cylinder", Center: c.Center.toArray(), Axis: c.Axis.toArray(), Radius: c.Radius,
	})
}

func (c *Cylinder) UnmarshalJSON(data []byte) error {
	var d cylinderDict
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	if err := checkType(d.Type, "Cylinder"); err != nil {
		return err
	}
	cy, err := NewCylinder(point3DFromArray(d.Center), vector3DFromArray(d.Axis), d.Radius)
	if err != nil {
		return err
	}
	*c = cy
	return nil
}
