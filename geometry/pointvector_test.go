package geometry

import (
	"encoding/json"
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool { return math.Abs(a-b) < epsilon }

func pointsAlmostEqual2D(a, b Point2D) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y)
}

func pointsAlmostEqual3D(a, b Point3D) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y) && almostEqual(a.Z, b.Z)
}

func TestVector2DOperations(t *testing.T) {
	v := Vector2D{X: 3, Y: 4}
	if got := v.Magnitude(); !almostEqual(got, 5) {
		t.Fatalf("magnitude: expected 5, got %v", got)
	}
	n := v.Normalize()
	if !almostEqual(n.Magnitude(), 1) {
		t.Fatalf("normalize: expected unit length, got %v", n.Magnitude())
	}
	rot := Vector2D{X: 1, Y: 0}.Rotate(math.Pi / 2)
	if !almostEqual(rot.X, 0) || !almostEqual(rot.Y, 1) {
		t.Fatalf("rotate: expected (0, 1), got (%v, %v)", rot.X, rot.Y)
	}
	if got := (Vector2D{X: 1, Y: 0}).Dot(Vector2D{X: 0, Y: 1}); !almostEqual(got, 0) {
		t.Fatalf("dot of perpendicular vectors: expected 0, got %v", got)
	}
	rev := v.Reverse()
	if !almostEqual(rev.X, -3) || !almostEqual(rev.Y, -4) {
		t.Fatalf("reverse: got (%v, %v)", rev.X, rev.Y)
	}
}

func TestPoint2DTransforms(t *testing.T) {
	p := Point2D{X: 1, Y: 2}

	moved := p.Move(Vector2D{X: 2, Y: -1})
	if !pointsAlmostEqual2D(moved, Point2D{X: 3, Y: 1}) {
		t.Fatalf("move: got %+v", moved)
	}

	rotated := Point2D{X: 1, Y: 0}.Rotate(math.Pi/2, Point2D{})
	if !pointsAlmostEqual2D(rotated, Point2D{X: 0, Y: 1}) {
		t.Fatalf("rotate: got %+v", rotated)
	}

	reflected := p.Reflect(Vector2D{X: 0, Y: 1}, Point2D{})
	if !pointsAlmostEqual2D(reflected, Point2D{X: 1, Y: -2}) {
		t.Fatalf("reflect: got %+v", reflected)
	}

	scaled := p.Scale(2, Point2D{X: 1, Y: 1})
	if !pointsAlmostEqual2D(scaled, Point2D{X: 1, Y: 3}) {
		t.Fatalf("scale: got %+v", scaled)
	}
}

func TestVector3DOperations(t *testing.T) {
	v := Vector3D{X: 0, Y: 2, Z: 2}
	if got := v.Magnitude(); !almostEqual(got, math.Sqrt(8)) {
		t.Fatalf("magnitude: expected sqrt(8), got %v", got)
	}

	cross := Vector3D{X: 1}.Cross(Vector3D{Y: 1})
	if !almostEqual(cross.X, 0) || !almostEqual(cross.Y, 0) || !almostEqual(cross.Z, 1) {
		t.Fatalf("cross: expected (0, 0, 1), got %+v", cross)
	}

	angle := Vector3D{X: 1}.Angle(Vector3D{Y: 1})
	if !almostEqual(angle, math.Pi/2) {
		t.Fatalf("angle: expected π/2, got %v", angle)
	}

	refl := Vector3D{X: 1, Y: 1, Z: 1}.Reflect(Vector3D{Z: 1})
	if !almostEqual(refl.X, 1) || !almostEqual(refl.Y, 1) || !almostEqual(refl.Z, -1) {
		t.Fatalf("reflect: got %+v", refl)
	}
}

func TestPoint3DTransforms(t *testing.T) {
	rotated := Point3D{X: 1, Y: 0, Z: 5}.Rotate(Vector3D{Z: 1}, math.Pi/2, Point3D{})
	if !pointsAlmostEqual3D(rotated, Point3D{X: 0, Y: 1, Z: 5}) {
		t.Fatalf("rotate about z: got %+v", rotated)
	}

	rotatedXY := Point3D{X: 2, Y: 0, Z: 3}.RotateXY(math.Pi, Point3D{})
	if !pointsAlmostEqual3D(rotatedXY, Point3D{X: -2, Y: 0, Z: 3}) {
		t.Fatalf("rotate xy: got %+v", rotatedXY)
	}

	reflected := Point3D{X: 1, Y: 2, Z: 3}.Reflect(Vector3D{Z: 1}, Point3D{})
	if !pointsAlmostEqual3D(reflected, Point3D{X: 1, Y: 2, Z: -3}) {
		t.Fatalf("reflect: got %+v", reflected)
	}

	scaled := Point3D{X: 2, Y: 3, Z: 4}.Scale(2, Point3D{X: 1, Y: 1, Z: 1})
	if !pointsAlmostEqual3D(scaled, Point3D{X: 3, Y: 5, Z: 7}) {
		t.Fatalf("scale: got %+v", scaled)
	}

	if got := (Point3D{}).DistanceTo(Point3D{X: 3, Y: 4, Z: 0}); !almostEqual(got, 5) {
		t.Fatalf("distance: expected 5, got %v", got)
	}
}

func TestPointVectorJSONRoundTrip(t *testing.T) {
	p3 := Point3D{X: 2, Y: 0, Z: 2}
	data, err := json.Marshal(p3)
	if err != nil {
		t.Fatal(err)
	}
	var back Point3D
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back != p3 {
		t.Fatalf("round trip: expected %+v, got %+v", p3, back)
	}

	v3 := Vector3D{X: 0, Y: 2, Z: 2}
	data, err = json.Marshal(v3)
	if err != nil {
		t.Fatal(err)
	}
	var vback Vector3D
	if err := json.Unmarshal(data, &vback); err != nil {
		t.Fatal(err)
	}
	if vback != v3 {
		t.Fatalf("round trip: expected %+v, got %+v", v3, vback)
	}

	// A vector dictionary must not deserialize as a point.
	if err := json.Unmarshal(data, &back); err == nil {
		t.Fatal("expected a type mismatch error for Vector3D payload into Point3D")
	}
}
