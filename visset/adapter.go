package visset

import (
	"fmt"

	"github.com/chriswmackey/ladybug-display/astro"
	"github.com/chriswmackey/ladybug-display/display"
	"github.com/chriswmackey/ladybug-display/geometry"
)

// This file adapts the supported value kinds into visualization sets.
// The set is closed and dispatch is explicit; nothing here runs at
// package load time.

// defaultSunpathRadius matches the traditional 100 unit sun path
// drawing radius.
const defaultSunpathRadius = 100

// From builds a visualization set from any supported value: a set
// passes through, a compass or sun path converts through its adapter,
// and a bare display object wraps into a single-layer set.
func From(value interface{}) (*VisualizationSet, error) {
	switch v := value.(type) {
	case *VisualizationSet:
		return v, nil
	case *astro.Compass:
		return FromCompass(v)
	case *astro.Sunpath:
		return FromSunpath(v, geometry.Point3D{}, defaultSunpathRadius)
	case display.Object:
		ctx, err := NewContextGeometry("geometry", []display.Object{v})
		if err != nil {
			return nil, err
		}
		return New("visualization", []*ContextGeometry{ctx})
	default:
		return nil, fmt.Errorf("cannot build a visualization set from %T", value)
	}
}

// FromCompass draws a compass rose as a visualization set with a
// boundary circle layer and an azimuth tick layer.
func FromCompass(c *astro.Compass) (*VisualizationSet, error) {
	circles, err := arcObjects(c.BoundaryCircles(), nil)
	if err != nil {
		return nil, err
	}
	boundary, err := NewContextGeometry("boundary_circles", circles)
	if err != nil {
		return nil, err
	}
	ticks, err := segmentObjects(append(c.MajorAzimuthTicks(), c.MinorAzimuthTicks()...), nil)
	if err != nil {
		return nil, err
	}
	azimuths, err := NewContextGeometry("azimuth_ticks", ticks)
	if err != nil {
		return nil, err
	}
	return New("compass", []*ContextGeometry{boundary, azimuths})
}

// FromSunpath draws a sun path diagram around the given center: the
// hourly analemmas in grey, the day arcs for the solstices and the
// equinox in black, and a compass rose at the drawing radius.
func FromSunpath(s *astro.Sunpath, center geometry.Point3D, radius float64) (*VisualizationSet, error) {
	if _, err := display.FloatPositive(radius, "sun path radius"); err != nil {
		return nil, err
	}
	grey := display.NewColor(125, 125, 125)
	analemmaObjs, err := polylineObjects(s.Analemmas3D(center, radius), &grey)
	if err != nil {
		return nil, err
	}
	analemmas, err := NewContextGeometry("analemmas", analemmaObjs)
	if err != nil {
		return nil, err
	}
	dayArcObjs, err := polylineObjects(s.DayArcs3D(center, radius), nil)
	if err != nil {
		return nil, err
	}
	dayArcs, err := NewContextGeometry("day_arcs", dayArcObjs)
	if err != nil {
		return nil, err
	}

	rose, err := astro.NewCompass(radius, geometry.Point2D{X: center.X, Y: center.Y}, s.NorthAngle)
	if err != nil {
		return nil, err
	}
	roseObjs, err := arcObjects(rose.BoundaryCircles(), nil)
	if err != nil {
		return nil, err
	}
	roseTicks, err := segmentObjects(append(rose.MajorAzimuthTicks(), rose.MinorAzimuthTicks()...), nil)
	if err != nil {
		return nil, err
	}
	compass, err := NewContextGeometry("compass", append(roseObjs, roseTicks...))
	if err != nil {
		return nil, err
	}
	return New("sun_path", []*ContextGeometry{analemmas, dayArcs, compass})
}

func arcObjects(arcs []geometry.Arc2D, color *display.Color) ([]display.Object, error) {
	objs := make([]display.Object, len(arcs))
	for i, a := range arcs {
		da, err := display.NewArc2D(a, color, display.DefaultLineWidth(), display.Continuous)
		if err != nil {
			return nil, err
		}
		objs[i] = da
	}
	return objs, nil
}

func segmentObjects(segs []geometry.LineSegment2D, color *display.Color) ([]display.Object, error) {
	objs := make([]display.Object, len(segs))
	for i, s := range segs {
		ds, err := display.NewLineSegment2D(s, color, display.DefaultLineWidth(), display.Continuous)
		if err != nil {
			return nil, err
		}
		objs[i] = ds
	}
	return objs, nil
}

func polylineObjects(lines []geometry.Polyline3D, color *display.Color) ([]display.Object, error) {
	objs := make([]display.Object, len(lines))
	for i, pl := range lines {
		dp, err := display.NewPolyline3D(pl, color, display.DefaultLineWidth(), display.Continuous)
		if err != nil {
			return nil, err
		}
		objs[i] = dp
	}
	return objs, nil
}
