package astro

import (
	"math"
	"testing"

	"github.com/chriswmackey/ladybug-display/geometry"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool { return math.Abs(a-b) < epsilon }

// newYork is the fixture location for the sun-path tests.
func newYork() *Sunpath {
	return &Sunpath{Latitude: 40.72, Longitude: -74.0, TimeZone: -5}
}

func TestCompassGeometry(t *testing.T) {
	c, err := NewCompass(100, geometry.Point2D{}, 0)
	if err != nil {
		t.Fatal(err)
	}

	circles := c.BoundaryCircles()
	if len(circles) != 3 {
		t.Fatalf("boundary circle count = %d", len(circles))
	}
	for i, want := range []float64{100, 102, 110} {
		if !almostEqual(circles[i].R, want) {
			t.Fatalf("circle %d radius = %v, want %v", i, circles[i].R, want)
		}
		if !circles[i].IsCircle() {
			t.Fatalf("circle %d is not closed", i)
		}
	}

	major := c.MajorAzimuthTicks()
	if len(major) != 36 {
		t.Fatalf("major tick count = %d", len(major))
	}
	// North is a cardinal tick, so it runs from the base circle to the
	// outermost offset along +Y.
	north := major[0]
	if p := north.P1(); !almostEqual(p.X, 0) || !almostEqual(p.Y, 100) {
		t.Fatalf("north tick starts at %+v", p)
	}
	if p := north.P2(); !almostEqual(p.X, 0) || !almostEqual(p.Y, 110) {
		t.Fatalf("north tick ends at %+v", p)
	}
	// East lands on +X and is also cardinal.
	east := major[9]
	if p := east.P1(); !almostEqual(p.X, 100) || !almostEqual(p.Y, 0) {
		t.Fatalf("east tick starts at %+v", p)
	}
	// A non-cardinal major tick is shorter.
	if l := major[1].Length(); !almostEqual(l, 5) {
		t.Fatalf("major tick length = %v, want 5", l)
	}

	minor := c.MinorAzimuthTicks()
	if len(minor) != 36 {
		t.Fatalf("minor tick count = %d", len(minor))
	}
	if l := minor[0].Length(); !almostEqual(l, 2) {
		t.Fatalf("minor tick length = %v, want 2", l)
	}
}

func TestCompassNorthAngle(t *testing.T) {
	c, err := NewCompass(100, geometry.Point2D{}, 90)
	if err != nil {
		t.Fatal(err)
	}
	// A 90 degree north angle turns the compass counterclockwise, so
	// north points along -X.
	north := c.MajorAzimuthTicks()[0]
	if p := north.P1(); !almostEqual(p.X, -100) || !almostEqual(p.Y, 0) {
		t.Fatalf("rotated north tick starts at %+v", p)
	}

	if _, err := NewCompass(0, geometry.Point2D{}, 0); err == nil {
		t.Fatal("zero radius accepted")
	}
}

func TestSunPositionSeasons(t *testing.T) {
	sp := newYork()

	noonSummer := sp.Position(6, 21, 12)
	if noonSummer.Altitude < 65 || noonSummer.Altitude > 80 {
		t.Fatalf("summer noon altitude = %v", noonSummer.Altitude)
	}
	if noonSummer.Azimuth < 150 || noonSummer.Azimuth > 210 {
		t.Fatalf("summer noon azimuth = %v", noonSummer.Azimuth)
	}

	noonWinter := sp.Position(12, 21, 12)
	if !noonWinter.AboveHorizon() {
		t.Fatalf("winter noon below horizon: %+v", noonWinter)
	}
	if noonWinter.Altitude >= noonSummer.Altitude {
		t.Fatalf("winter noon %v not below summer noon %v",
			noonWinter.Altitude, noonSummer.Altitude)
	}

	midnight := sp.Position(6, 21, 0)
	if midnight.AboveHorizon() {
		t.Fatalf("midnight sun at latitude 40: %+v", midnight)
	}

	morning := sp.Position(6, 21, 8)
	if !morning.AboveHorizon() {
		t.Fatalf("summer morning below horizon: %+v", morning)
	}
	if morning.Azimuth >= 180 || morning.Azimuth <= 45 {
		t.Fatalf("morning azimuth = %v, want east of south", morning.Azimuth)
	}
}

func TestSunPoint3D(t *testing.T) {
	sp := newYork()

	zenith := sp.SunPoint3D(SunPosition{Altitude: 90}, geometry.Point3D{}, 10)
	if !almostEqual(zenith.X, 0) || !almostEqual(zenith.Y, 0) || !almostEqual(zenith.Z, 10) {
		t.Fatalf("zenith maps to %+v", zenith)
	}

	east := sp.SunPoint3D(SunPosition{Azimuth: 90}, geometry.Point3D{}, 10)
	if !almostEqual(east.X, 10) || !almostEqual(east.Y, 0) || !almostEqual(east.Z, 0) {
		t.Fatalf("east horizon maps to %+v", east)
	}
}

func TestDayArcs(t *testing.T) {
	sp := newYork()

	summer, ok := sp.DayArc3D(6, 21, geometry.Point3D{}, 100)
	if !ok {
		t.Fatal("no summer day arc")
	}
	for _, v := range summer.Vertices {
		if v.Z <= 0 {
			t.Fatalf("day arc vertex below horizon: %+v", v)
		}
	}
	winter, ok := sp.DayArc3D(12, 21, geometry.Point3D{}, 100)
	if !ok {
		t.Fatal("no winter day arc")
	}
	if len(winter.Vertices) >= len(summer.Vertices) {
		t.Fatalf("winter day (%d samples) not shorter than summer day (%d)",
			len(winter.Vertices), len(summer.Vertices))
	}

	if arcs := sp.DayArcs3D(geometry.Point3D{}, 100); len(arcs) != 3 {
		t.Fatalf("day arc count = %d", len(arcs))
	}

	// Above the arctic circle the winter sun never rises.
	polar := &Sunpath{Latitude: 80}
	if _, ok := polar.DayArc3D(12, 21, geometry.Point3D{}, 100); ok {
		t.Fatal("polar winter produced a day arc")
	}
}

func TestAnalemmas(t *testing.T) {
	sp := newYork()

	curves := sp.Analemmas3D(geometry.Point3D{}, 100)
	if len(curves) < 10 || len(curves) >= 24 {
		t.Fatalf("analemma count = %d", len(curves))
	}

	noon, ok := sp.Analemma3D(12, geometry.Point3D{}, 100)
	if !ok {
		t.Fatal("no noon analemma")
	}
	if len(noon.Vertices) != 12 {
		t.Fatalf("noon analemma has %d vertices", len(noon.Vertices))
	}
	if !noon.Interpolated {
		t.Fatal("analemma is not smooth")
	}

	if _, ok := sp.Analemma3D(2, geometry.Point3D{}, 100); ok {
		t.Fatal("night hour produced an analemma")
	}
}
