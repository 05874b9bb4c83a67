package display

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/chriswmackey/ladybug-display/geometry"
	"github.com/chriswmackey/ladybug-display/svg"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool { return math.Abs(a-b) < epsilon }

func point3DNear(p geometry.Point3D, x, y, z float64) bool {
	return almostEqual(p.X, x) && almostEqual(p.Y, y) && almostEqual(p.Z, z)
}

// render draws a single element into a small document so its
// serialized attributes can be inspected.
func render(t *testing.T, el svg.Element) string {
	t.Helper()
	doc := svg.New(100, 100)
	doc.Add(el)
	return doc.String()
}

func mustCylinder(t *testing.T) *Cylinder {
	t.Helper()
	geo, err := geometry.NewCylinder(geometry.Point3D{X: 2, Y: 0, Z: 2}, geometry.Vector3D{Y: 2, Z: 2}, 0.7)
	if err != nil {
		t.Fatal(err)
	}
	grey := NewColor(100, 100, 100)
	cyl, err := NewCylinder(geo, &grey, Surface)
	if err != nil {
		t.Fatal(err)
	}
	return cyl
}

func TestDisplayCylinder(t *testing.T) {
	cyl := mustCylinder(t)
	if cyl.Color() != NewColor(100, 100, 100) {
		t.Fatalf("color = %+v", cyl.Color())
	}
	if cyl.DisplayMode() != Surface {
		t.Fatalf("display mode = %q", cyl.DisplayMode())
	}
	if !almostEqual(cyl.Height(), cyl.Axis().Magnitude()) {
		t.Fatalf("height %v does not match axis length %v", cyl.Height(), cyl.Axis().Magnitude())
	}
	if c2 := cyl.Geometry().Center2(); !point3DNear(c2, 2, 2, 4) {
		t.Fatalf("second base center = %+v", c2)
	}

	red := NewColorA(255, 0, 0, 125)
	cyl.SetColor(&red)
	if cyl.Color() != red {
		t.Fatalf("color after SetColor = %+v", cyl.Color())
	}
	mode, err := ParseDisplayMode("surfacewithedges")
	if err != nil {
		t.Fatal(err)
	}
	if err := cyl.SetDisplayMode(mode); err != nil {
		t.Fatal(err)
	}
	if cyl.DisplayMode() != SurfaceWithEdges {
		t.Fatalf("display mode after set = %q", cyl.DisplayMode())
	}
	if err := cyl.SetDisplayMode(DisplayMode("Shaded")); err == nil {
		t.Fatal("invalid display mode accepted")
	}
}

func TestDisplayPolyline3D(t *testing.T) {
	geo, err := geometry.NewPolyline3D([]geometry.Point3D{
		{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2},
	}, false)
	if err != nil {
		t.Fatal(err)
	}
	pl, err := NewPolyline3D(geo, nil, DefaultLineWidth(), "")
	if err != nil {
		t.Fatal(err)
	}
	if pl.Color() != DefaultColor() {
		t.Fatalf("nil color resolved to %+v", pl.Color())
	}
	if !pl.LineWidth().IsDefault() {
		t.Fatal("line width is not the default sentinel")
	}
	if pl.LineType() != Continuous {
		t.Fatalf("line type = %q", pl.LineType())
	}
	if !almostEqual(pl.Length(), 6) {
		t.Fatalf("length = %v, want 6", pl.Length())
	}
	if segs := pl.Segments(); len(segs) != 3 {
		t.Fatalf("segment count = %d, want 3", len(segs))
	}

	if err := pl.SetLineType(Dashed); err != nil {
		t.Fatal(err)
	}
	if pl.LineType() != Dashed {
		t.Fatalf("line type after set = %q", pl.LineType())
	}
	err = pl.SetLineType(LineType("zigzag"))
	if err == nil {
		t.Fatal("invalid line type accepted")
	}
	if !strings.Contains(err.Error(), "choose from") {
		t.Fatalf("error %q does not list the valid set", err)
	}
}

func TestTransformsMutate(t *testing.T) {
	pt := NewPoint2D(geometry.Point2D{X: 1}, nil)
	pt.Rotate(90, geometry.Point2D{})
	if g := pt.Geometry(); !almostEqual(g.X, 0) || !almostEqual(g.Y, 1) {
		t.Fatalf("rotated point = %+v, want (0, 1)", g)
	}
	pt.Move(geometry.Vector2D{X: 3, Y: -1})
	if g := pt.Geometry(); !almostEqual(g.X, 3) || !almostEqual(g.Y, 0) {
		t.Fatalf("moved point = %+v, want (3, 0)", g)
	}

	cyl := mustCylinder(t)
	cyl.Move(geometry.Vector3D{X: 1, Y: 1})
	if c := cyl.Center(); !point3DNear(c, 3, 1, 2) {
		t.Fatalf("moved center = %+v", c)
	}
	cyl.Scale(2, geometry.Point3D{})
	if !almostEqual(cyl.Radius(), 1.4) {
		t.Fatalf("scaled radius = %v", cyl.Radius())
	}
}

func TestSetColorNil(t *testing.T) {
	red := NewColor(255, 0, 0)
	pt := NewPoint3D(geometry.Point3D{X: 1, Y: 2, Z: 3}, &red)
	pt.SetColor(nil)
	if pt.Color() != DefaultColor() {
		t.Fatalf("nil color resolved to %+v", pt.Color())
	}
}

func roundTripObjects(t *testing.T) []Object {
	t.Helper()
	red := NewColor(255, 0, 0)
	blue := NewColorA(0, 0, 255, 125)
	wide, err := NewLineWidth(2)
	if err != nil {
		t.Fatal(err)
	}

	seg2, err := NewLineSegment2D(
		geometry.LineSegment2DFromEndPoints(geometry.Point2D{}, geometry.Point2D{X: 3, Y: 4}),
		&red, wide, Dashed)
	if err != nil {
		t.Fatal(err)
	}
	pl2geo, err := geometry.NewPolyline2D([]geometry.Point2D{{X: 0}, {X: 1, Y: 1}, {X: 2}}, true)
	if err != nil {
		t.Fatal(err)
	}
	pl2, err := NewPolyline2D(pl2geo, &blue, DefaultLineWidth(), Dotted)
	if err != nil {
		t.Fatal(err)
	}
	arcGeo, err := geometry.NewArc2D(geometry.Point2D{X: 1, Y: 1}, 2, 0, math.Pi/2)
	if err != nil {
		t.Fatal(err)
	}
	arc, err := NewArc2D(arcGeo, nil, DefaultLineWidth(), Continuous)
	if err != nil {
		t.Fatal(err)
	}
	seg3, err := NewLineSegment3D(
		geometry.LineSegment3DFromEndPoints(geometry.Point3D{}, geometry.Point3D{X: 1, Y: 2, Z: 2}),
		&red, DefaultLineWidth(), DashDot)
	if err != nil {
		t.Fatal(err)
	}
	pl3geo, err := geometry.NewPolyline3D([]geometry.Point3D{{X: 0}, {X: 2}, {X: 2, Y: 2}}, false)
	if err != nil {
		t.Fatal(err)
	}
	pl3, err := NewPolyline3D(pl3geo, nil, wide, Continuous)
	if err != nil {
		t.Fatal(err)
	}
	sphGeo, err := geometry.NewSphere(geometry.Point3D{X: 1, Y: 2, Z: 3}, 2.5)
	if err != nil {
		t.Fatal(err)
	}
	sph, err := NewSphere(sphGeo, &blue, Wireframe)
	if err != nil {
		t.Fatal(err)
	}
	coneGeo, err := geometry.NewCone(geometry.Point3D{Z: 2}, geometry.Vector3D{Z: -2}, math.Pi/6)
	if err != nil {
		t.Fatal(err)
	}
	cone, err := NewCone(coneGeo, &red, Points)
	if err != nil {
		t.Fatal(err)
	}

	pt2 := NewPoint2D(geometry.Point2D{X: 1.5, Y: -2}, &red)
	pt2.UserData = map[string]interface{}{"id": "pt-1"}

	return []Object{
		pt2,
		seg2,
		pl2,
		arc,
		NewPoint3D(geometry.Point3D{X: 1, Y: 2, Z: 3}, &blue),
		NewVector3D(geometry.Vector3D{X: 0, Y: 0, Z: 1}, nil),
		seg3,
		pl3,
		sph,
		cone,
		mustCylinder(t),
	}
}

func TestSerializationRoundTrip(t *testing.T) {
	for _, obj := range roundTripObjects(t) {
		first, err := json.Marshal(obj)
		if err != nil {
			t.Fatalf("%s: marshal: %v", obj.TypeName(), err)
		}
		back, err := UnmarshalObject(first)
		if err != nil {
			t.Fatalf("%s: unmarshal: %v\n%s", obj.TypeName(), err, first)
		}
		if back.TypeName() != obj.TypeName() {
			t.Fatalf("round trip changed type %s to %s", obj.TypeName(), back.TypeName())
		}
		second, err := json.Marshal(back)
		if err != nil {
			t.Fatalf("%s: re-marshal: %v", obj.TypeName(), err)
		}
		if !bytes.Equal(first, second) {
			t.Fatalf("%s: round trip not stable:\n%s\n%s", obj.TypeName(), first, second)
		}
	}
}

func TestUnmarshalObjectErrors(t *testing.T) {
	if _, err := UnmarshalObject([]byte(`{"type":"DisplayMesh3D"}`)); err == nil {
		t.Fatal("unknown type tag accepted")
	}
	if _, err := UnmarshalObject([]byte(`not json`)); err == nil {
		t.Fatal("invalid JSON accepted")
	}
	missing := `{"type":"DisplayCylinder","color":{"type":"Color","r":0,"g":0,"b":0,"a":255}}`
	_, err := UnmarshalObject([]byte(missing))
	if err == nil {
		t.Fatal("missing geometry accepted")
	}
	if !strings.Contains(err.Error(), "missing geometry") {
		t.Fatalf("unexpected error %q", err)
	}
	bad := `{"type":"DisplaySphere","geometry":{"type":"Sphere","center":[0,0,0],"radius":-1},` +
		`"color":{"type":"Color","r":0,"g":0,"b":0,"a":255},"display_mode":"Surface"}`
	if _, err := UnmarshalObject([]byte(bad)); err == nil {
		t.Fatal("negative radius accepted")
	}
}

func TestDuplicateIsIndependent(t *testing.T) {
	pl, err := NewPolyline3D(mustSquare(t), nil, DefaultLineWidth(), Continuous)
	if err != nil {
		t.Fatal(err)
	}
	pl.UserData = map[string]interface{}{"zone": "north"}

	dup := pl.Duplicate().(*Polyline3D)
	dup.Move(geometry.Vector3D{X: 10})
	dup.UserData["zone"] = "south"
	if err := dup.SetLineType(Dashed); err != nil {
		t.Fatal(err)
	}

	if !point3DNear(pl.P1(), 0, 0, 0) {
		t.Fatalf("duplicate move leaked into original: %+v", pl.P1())
	}
	if pl.UserData["zone"] != "north" {
		t.Fatalf("duplicate user data leaked into original: %v", pl.UserData["zone"])
	}
	if pl.LineType() != Continuous {
		t.Fatalf("duplicate line type leaked into original: %q", pl.LineType())
	}
}

func mustSquare(t *testing.T) geometry.Polyline3D {
	t.Helper()
	geo, err := geometry.NewPolyline3D([]geometry.Point3D{
		{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2},
	}, false)
	if err != nil {
		t.Fatal(err)
	}
	return geo
}

func TestToSVGLineAttributes(t *testing.T) {
	red := NewColor(255, 0, 0)
	wide, err := NewLineWidth(2)
	if err != nil {
		t.Fatal(err)
	}
	seg, err := NewLineSegment2D(
		geometry.LineSegment2DFromEndPoints(geometry.Point2D{}, geometry.Point2D{X: 3, Y: 4}),
		&red, wide, Dashed)
	if err != nil {
		t.Fatal(err)
	}
	out := render(t, seg.ToSVG())
	for _, want := range []string{
		`<line x1="0" y1="0" x2="3" y2="-4"`,
		`fill="none"`,
		`stroke="rgb(255,0,0)"`,
		`stroke-width="2"`,
		`stroke-dasharray="4, 4"`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}

	// The sentinel width resolves to a 1px stroke and continuous lines
	// carry no dash pattern.
	plain, err := NewLineSegment2D(seg.Geometry(), &red, DefaultLineWidth(), Continuous)
	if err != nil {
		t.Fatal(err)
	}
	out = render(t, plain.ToSVG())
	if !strings.Contains(out, `stroke-width="1"`) {
		t.Fatalf("default width did not resolve to 1px:\n%s", out)
	}
	if strings.Contains(out, "stroke-dasharray") {
		t.Fatalf("continuous line has a dash pattern:\n%s", out)
	}
}

func TestToSVGPointAndOpacity(t *testing.T) {
	blue := NewColorA(0, 0, 255, 125)
	pt := NewPoint3D(geometry.Point3D{X: 1, Y: 2, Z: 3}, &blue)
	out := render(t, pt.ToSVG())
	for _, want := range []string{
		`<circle cx="1" cy="-2" r="5"`,
		`fill="rgb(0,0,255)"`,
		`opacity="0.49"`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}

	opaque := NewColor(0, 0, 255)
	pt.SetColor(&opaque)
	if out := render(t, pt.ToSVG()); strings.Contains(out, "opacity") {
		t.Fatalf("opaque color produced an opacity attribute:\n%s", out)
	}
}

func TestToSVGDisplayModes(t *testing.T) {
	cyl := mustCylinder(t)

	out := render(t, cyl.ToSVG())
	if !strings.Contains(out, `fill="rgb(100,100,100)"`) || strings.Contains(out, "stroke=") {
		t.Fatalf("surface mode output:\n%s", out)
	}

	setMode := func(m DisplayMode) {
		t.Helper()
		if err := cyl.SetDisplayMode(m); err != nil {
			t.Fatal(err)
		}
	}

	setMode(SurfaceWithEdges)
	out = render(t, cyl.ToSVG())
	if !strings.Contains(out, `fill="rgb(100,100,100)"`) || !strings.Contains(out, `stroke="black"`) {
		t.Fatalf("surface-with-edges mode output:\n%s", out)
	}

	setMode(Wireframe)
	out = render(t, cyl.ToSVG())
	if !strings.Contains(out, `fill="none"`) || !strings.Contains(out, `stroke="rgb(100,100,100)"`) {
		t.Fatalf("wireframe mode output:\n%s", out)
	}

	setMode(Points)
	out = render(t, cyl.ToSVG())
	if got := strings.Count(out, "<circle"); got != 2 {
		t.Fatalf("points mode drew %d markers, want 2:\n%s", got, out)
	}
	if !strings.Contains(out, "<g") {
		t.Fatalf("points mode did not group its markers:\n%s", out)
	}
}

func TestToSVGPolylineAndArc(t *testing.T) {
	square, err := NewPolyline3D(mustSquare(t), nil, DefaultLineWidth(), Continuous)
	if err != nil {
		t.Fatal(err)
	}
	out := render(t, square.ToSVG())
	if !strings.Contains(out, `<polyline points="0,0 2,0 2,-2 0,-2"`) {
		t.Fatalf("polyline output:\n%s", out)
	}

	smoothGeo, err := geometry.NewPolyline2D([]geometry.Point2D{{X: 0}, {X: 1, Y: 1}, {X: 2}}, true)
	if err != nil {
		t.Fatal(err)
	}
	smooth, err := NewPolyline2D(smoothGeo, nil, DefaultLineWidth(), Continuous)
	if err != nil {
		t.Fatal(err)
	}
	out = render(t, smooth.ToSVG())
	if !strings.Contains(out, "<path") || !strings.Contains(out, "C") {
		t.Fatalf("interpolated polyline did not produce a cubic path:\n%s", out)
	}

	circleGeo, err := geometry.NewCircle(geometry.Point2D{X: 1, Y: 1}, 2)
	if err != nil {
		t.Fatal(err)
	}
	circle, err := NewArc2D(circleGeo, nil, DefaultLineWidth(), Continuous)
	if err != nil {
		t.Fatal(err)
	}
	out = render(t, circle.ToSVG())
	if !strings.Contains(out, `<circle cx="1" cy="-1" r="2"`) {
		t.Fatalf("full circle arc output:\n%s", out)
	}

	arcGeo, err := geometry.NewArc2D(geometry.Point2D{}, 1, 0, math.Pi/2)
	if err != nil {
		t.Fatal(err)
	}
	arc, err := NewArc2D(arcGeo, nil, DefaultLineWidth(), Continuous)
	if err != nil {
		t.Fatal(err)
	}
	out = render(t, arc.ToSVG())
	if !strings.Contains(out, "<path") || !strings.Contains(out, "A1,1 0 0 0 ") {
		t.Fatalf("partial arc output:\n%s", out)
	}
}

func TestToSVGVector(t *testing.T) {
	vec := NewVector3D(geometry.Vector3D{X: 3, Y: 4}, nil)
	out := render(t, vec.ToSVG())
	if !strings.Contains(out, "<g") || !strings.Contains(out, "<line") || !strings.Contains(out, "<polygon") {
		t.Fatalf("vector output:\n%s", out)
	}
	if !strings.Contains(out, `x2="3" y2="-4"`) {
		t.Fatalf("vector shaft endpoint missing:\n%s", out)
	}
}
