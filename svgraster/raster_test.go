package svgraster

import (
	"bytes"
	"image"
	"testing"

	"github.com/chriswmackey/ladybug-display/display"
	"github.com/chriswmackey/ladybug-display/geometry"
	"github.com/chriswmackey/ladybug-display/svg"
)

// paintedPixels counts the pixels with any coverage at all.
func paintedPixels(img *image.RGBA) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a > 0 {
				n++
			}
		}
	}
	return n
}

func alphaAt(img *image.RGBA, x, y int) uint32 {
	_, _, _, a := img.At(x, y).RGBA()
	return a
}

func TestRenderFilledCircle(t *testing.T) {
	doc := svg.New(100, 100)
	doc.Add(svg.Circle{CX: 50, CY: 50, R: 20, Style: svg.Style{Fill: "red"}})

	img, err := Render(doc, 100, 100)
	if err != nil {
		t.Fatal(err)
	}
	r, g, b, a := img.At(50, 50).RGBA()
	if a == 0 || r>>8 != 255 || g>>8 != 0 || b>>8 != 0 {
		t.Fatalf("center pixel = %d,%d,%d,%d", r>>8, g>>8, b>>8, a>>8)
	}
	if alphaAt(img, 5, 5) != 0 {
		t.Fatal("corner pixel is painted")
	}
	// The painted area should match a radius-20 disc, give or take
	// antialiased edges.
	if painted := paintedPixels(img); painted < 1100 || painted > 1500 {
		t.Fatalf("painted %d pixels", painted)
	}
}

func TestRenderStrokeLeavesInteriorEmpty(t *testing.T) {
	doc := svg.New(100, 100)
	doc.Add(svg.Circle{CX: 50, CY: 50, R: 30, Style: svg.Style{Fill: "none", Stroke: "black", StrokeWidth: 4}})

	img, err := Render(doc, 100, 100)
	if err != nil {
		t.Fatal(err)
	}
	if alphaAt(img, 50, 50) != 0 {
		t.Fatal("interior of a stroked circle is painted")
	}
	if alphaAt(img, 50, 20) == 0 {
		t.Fatal("rim of a stroked circle is not painted")
	}
}

func TestRenderDashedStroke(t *testing.T) {
	solidDoc := svg.New(100, 100)
	solidDoc.Add(svg.Line{X1: 0, Y1: 50, X2: 100, Y2: 50, Style: svg.Style{Stroke: "black", StrokeWidth: 2}})
	dashedDoc := svg.New(100, 100)
	dashedDoc.Add(svg.Line{X1: 0, Y1: 50, X2: 100, Y2: 50, Style: svg.Style{
		Stroke: "black", StrokeWidth: 2, StrokeDasharray: "4, 4",
	}})

	solid, err := Render(solidDoc, 100, 100)
	if err != nil {
		t.Fatal(err)
	}
	dashed, err := Render(dashedDoc, 100, 100)
	if err != nil {
		t.Fatal(err)
	}
	ns, nd := paintedPixels(solid), paintedPixels(dashed)
	if nd == 0 || nd*3 > ns*2 {
		t.Fatalf("dashed line painted %d pixels, solid %d", nd, ns)
	}
}

func TestRenderViewBoxMapping(t *testing.T) {
	doc := svg.New(100, 100)
	doc.ViewBox = &svg.ViewBox{X: -5, Y: -5, W: 10, H: 10}
	doc.Add(svg.Circle{CX: 0, CY: 0, R: 2, Style: svg.Style{Fill: "blue"}})

	img, err := Render(doc, 100, 100)
	if err != nil {
		t.Fatal(err)
	}
	// The origin maps to the image center and the radius scales by 10.
	if alphaAt(img, 50, 50) == 0 {
		t.Fatal("center pixel is not painted")
	}
	if alphaAt(img, 50, 35) == 0 || alphaAt(img, 50, 25) != 0 {
		t.Fatal("scaled radius is wrong")
	}
}

func TestRenderArcPath(t *testing.T) {
	doc := svg.New(100, 100)
	doc.Add(svg.Path{
		Commands: []svg.Command{
			svg.MoveTo{X: 20, Y: 50},
			svg.ArcTo{RX: 30, RY: 30, Sweep: true, X: 80, Y: 50},
		},
		Style: svg.Style{Fill: "none", Stroke: "black", StrokeWidth: 4},
	})

	img, err := Render(doc, 100, 100)
	if err != nil {
		t.Fatal(err)
	}
	// A positive sweep from (20,50) to (80,50) bows through (50,20).
	if alphaAt(img, 50, 20) == 0 {
		t.Fatal("arc apex is not painted")
	}
	if alphaAt(img, 50, 80) != 0 {
		t.Fatal("arc painted on the wrong side")
	}
}

func TestRenderGroupStyleInheritance(t *testing.T) {
	doc := svg.New(100, 100)
	g := svg.Group{Style: svg.Style{Fill: "green"}}
	g.Add(svg.Rect{X: 10, Y: 10, W: 30, H: 30})
	doc.Add(g)

	img, err := Render(doc, 100, 100)
	if err != nil {
		t.Fatal(err)
	}
	r, gr, b, _ := img.At(25, 25).RGBA()
	if r>>8 != 0 || gr>>8 != 128 || b>>8 != 0 {
		t.Fatalf("inherited fill pixel = %d,%d,%d", r>>8, gr>>8, b>>8)
	}
}

func TestRenderDisplayObject(t *testing.T) {
	geo, err := geometry.NewCylinder(geometry.Point3D{X: 2, Y: 0, Z: 2}, geometry.Vector3D{Z: 2}, 0.7)
	if err != nil {
		t.Fatal(err)
	}
	grey := display.NewColor(100, 100, 100)
	cyl, err := display.NewCylinder(geo, &grey, display.Surface)
	if err != nil {
		t.Fatal(err)
	}

	doc := svg.New(100, 100)
	doc.ViewBox = &svg.ViewBox{X: 0, Y: -2, W: 4, H: 4}
	doc.Add(cyl.ToSVG())

	img, err := Render(doc, 100, 100)
	if err != nil {
		t.Fatal(err)
	}
	r, g, b, _ := img.At(50, 50).RGBA()
	if r>>8 != 100 || g>>8 != 100 || b>>8 != 100 {
		t.Fatalf("cylinder pixel = %d,%d,%d", r>>8, g>>8, b>>8)
	}
}

func TestRenderErrors(t *testing.T) {
	doc := svg.New(10, 10)
	if _, err := Render(doc, 0, 10); err == nil {
		t.Fatal("zero raster width accepted")
	}
	doc.ViewBox = &svg.ViewBox{W: -1, H: 5}
	if _, err := Render(doc, 10, 10); err == nil {
		t.Fatal("negative viewBox accepted")
	}
	doc.ViewBox = nil
	doc.Add(svg.Circle{CX: 5, CY: 5, R: 2, Style: svg.Style{Fill: "no-such-color"}})
	if _, err := Render(doc, 10, 10); err == nil {
		t.Fatal("unknown fill color accepted")
	}
}

func TestRenderPNG(t *testing.T) {
	doc := svg.New(20, 20)
	doc.Add(svg.Rect{X: 2, Y: 2, W: 16, H: 16, Style: svg.Style{Fill: "black"}})

	var buf bytes.Buffer
	if err := RenderPNG(&buf, doc, 20, 20); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG\r\n\x1a\n")) {
		t.Fatalf("output does not start with a PNG signature: % x", buf.Bytes()[:8])
	}
}
