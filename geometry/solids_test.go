package geometry

import (
	"encoding/json"
	"math"
	"testing"
)

func TestSphere(t *testing.T) {
	s, err := NewSphere(Point3D{X: 1, Y: 2, Z: 3}, 2)
	if err != nil {
		t.Fatal(err)
	}
	if got := s.Area(); !almostEqual(got, 16*math.Pi) {
		t.Fatalf("area: expected 16π, got %v", got)
	}
	if got := s.Volume(); !almostEqual(got, 32*math.Pi/3) {
		t.Fatalf("volume: expected 32π/3, got %v", got)
	}
	if got := s.Diameter(); !almostEqual(got, 4) {
		t.Fatalf("diameter: expected 4, got %v", got)
	}

	if _, err := NewSphere(Point3D{}, -1); err == nil {
		t.Fatal("expected an error for negative radius")
	}
}

func TestCone(t *testing.T) {
	c, err := NewCone(Point3D{Z: 2}, Vector3D{Z: -2}, math.Pi/4)
	if err != nil {
		t.Fatal(err)
	}
	if got := c.Height(); !almostEqual(got, 2) {
		t.Fatalf("height: expected 2, got %v", got)
	}
	if got := c.Radius(); !almostEqual(got, 2) {
		t.Fatalf("radius: expected 2, got %v", got)
	}
	if got := c.SlantHeight(); !almostEqual(got, math.Sqrt(8)) {
		t.Fatalf("slant height: expected sqrt(8), got %v", got)
	}
	if got := c.Volume(); !almostEqual(got, math.Pi*4*2/3) {
		t.Fatalf("volume: expected 8π/3, got %v", got)
	}

	if _, err := NewCone(Point3D{}, Vector3D{Z: 1}, 0); err == nil {
		t.Fatal("expected an error for zero angle")
	}
	if _, err := NewCone(Point3D{}, Vector3D{Z: 1}, math.Pi); err == nil {
		t.Fatal("expected an error for an angle past π/2")
	}
}

func TestCylinder(t *testing.T) {
	cyl, err := NewCylinder(Point3D{X: 2, Y: 0, Z: 2}, Vector3D{X: 0, Y: 2, Z: 2}, 0.7)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := cyl.Height(), cyl.Axis.Magnitude(); !almostEqual(got, want) {
		t.Fatalf("height: expected the axis magnitude %v, got %v", want, got)
	}
	if !pointsAlmostEqual3D(cyl.Center2(), Point3D{X: 2, Y: 2, Z: 4}) {
		t.Fatalf("center2: got %+v", cyl.Center2())
	}
	h := cyl.Height()
	if got := cyl.Area(); !almostEqual(got, 2*math.Pi*0.7*h+2*math.Pi*0.49) {
		t.Fatalf("area: got %v", got)
	}
	if got := cyl.Volume(); !almostEqual(got, math.Pi*0.49*h) {
		t.Fatalf("volume: got %v", got)
	}

	if _, err := NewCylinder(Point3D{}, Vector3D{Z: 1}, 0); err == nil {
		t.Fatal("expected an error for zero radius")
	}
}

func TestCylinderTransforms(t *testing.T) {
	cyl, err := NewCylinder(Point3D{}, Vector3D{Z: 2}, 1)
	if err != nil {
		t.Fatal(err)
	}

	moved := cyl.Move(Vector3D{X: 1})
	if !pointsAlmostEqual3D(moved.Center, Point3D{X: 1}) {
		t.Fatalf("move: got %+v", moved.Center)
	}

	rotated := cyl.Rotate(Vector3D{X: 1}, math.Pi/2, Point3D{})
	if !almostEqual(rotated.Axis.X, 0) || !almostEqual(rotated.Axis.Y, -2) || !almostEqual(rotated.Axis.Z, 0) {
		t.Fatalf("rotate: axis got %+v", rotated.Axis)
	}
	if !almostEqual(rotated.Height(), cyl.Height()) {
		t.Fatal("rotation must preserve height")
	}

	scaled := cyl.Scale(2, Point3D{})
	if !almostEqual(scaled.Radius, 2) || !almostEqual(scaled.Height(), 4) {
		t.Fatalf("scale: radius %v height %v", scaled.Radius, scaled.Height())
	}
	if !almostEqual(scaled.Volume(), 8*cyl.Volume()) {
		t.Fatal("uniform scale by 2 must grow volume 8x")
	}

	reflected := cyl.Reflect(Vector3D{Z: 1}, Point3D{})
	if !almostEqual(reflected.Axis.Z, -2) {
		t.Fatalf("reflect: axis got %+v", reflected.Axis)
	}
}

func TestSolidsJSONRoundTrip(t *testing.T) {
	cyl, err := NewCylinder(Point3D{X: 2, Y: 0, Z: 2}, Vector3D{Y: 2, Z: 2}, 0.7)
	if err != nil {
		t.Fatal(err)
	}
	data, err := json.Marshal(cyl)
	if err != nil {
		t.Fatal(err)
	}
	var cylBack Cylinder
	if err := json.Unmarshal(data, &cylBack); err != nil {
		t.Fatal(err)
	}
	if cylBack != cyl {
		t.Fatalf("cylinder round trip: expected %+v, got %+v", cyl, cylBack)
	}

	sph, err := NewSphere(Point3D{X: 1}, 3)
	if err != nil {
		t.Fatal(err)
	}
	data, err = json.Marshal(sph)
	if err != nil {
		t.Fatal(err)
	}
	var sphBack Sphere
	if err := json.Unmarshal(data, &sphBack); err != nil {
		t.Fatal(err)
	}
	if sphBack != sph {
		t.Fatalf("sphere round trip: expected %+v, got %+v", sph, sphBack)
	}

	cone, err := NewCone(Point3D{Z: 1}, Vector3D{Z: -1}, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	data, err = json.Marshal(cone)
	if err != nil {
		t.Fatal(err)
	}
	var coneBack Cone
	if err := json.Unmarshal(data, &coneBack); err != nil {
		t.Fatal(err)
	}
	if coneBack != cone {
		t.Fatalf("cone round trip: expected %+v, got %+v", cone, coneBack)
	}

	// A cylinder dictionary must not deserialize as a sphere.
	cylData, _ := json.Marshal(cyl)
	if err := json.Unmarshal(cylData, &sphBack); err == nil {
		t.Fatal("expected a type mismatch error for Cylinder payload into Sphere")
	}
}
