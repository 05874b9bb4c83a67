// Package astro provides the compass and sun-path geometry that the
// visualization layer decorates. The types here are plain values:
// they know nothing about display attributes or documents.
package astro

import (
	"fmt"
	"math"

	"github.com/chriswmackey/ladybug-display/geometry"
)

// Compass describes a circular direction indicator in plan.
type Compass struct {
	Radius float64
	Center geometry.Point2D
	// NorthAngle is the counterclockwise offset of north from the
	// positive Y axis, in degrees. 90 puts north at west.
	NorthAngle float64
}

// Scales beyond the radius for the boundary circles and tick ends.
const (
	minorTickScale    = 1.02
	majorTickScale    = 1.05
	cardinalTickScale = 1.1
)

// NewCompass returns a compass of the given radius centered on center.
func NewCompass(radius float64, center geometry.Point2D, northAngle float64) (*Compass, error) {
	if !(radius > 0) {
		return nil, fmt.Errorf("compass radius must be a positive number, got %v", radius)
	}
	return &Compass{Radius: radius, Center: center, NorthAngle: northAngle}, nil
}

// azimuthPoint returns the point at the given azimuth in degrees
// clockwise from north, scale times the radius from the center.
func (c *Compass) azimuthPoint(azimuth, scale float64) geometry.Point2D {
	th := (azimuth - c.NorthAngle) * math.Pi / 180
	return geometry.Point2D{
		X: c.Center.X + scale*c.Radius*math.Sin(th),
		Y: c.Center.Y + scale*c.Radius*math.Cos(th),
	}
}

// BoundaryCircles returns the three circles bounding the compass: the
// base circle plus the two tick offsets.
func (c *Compass) BoundaryCircles() []geometry.Arc2D {
	circles := make([]geometry.Arc2D, 0, 3)
	for _, scale := range []float64{1, minorTickScale, cardinalTickScale} {
		circles = append(circles, geometry.Arc2D{
			C:  c.Center,
			R:  scale * c.Radius,
			A2: 2 * math.Pi,
		})
	}
	return circles
}

// MajorAzimuthTicks returns the 36 tick marks at every 10 degrees of
// azimuth. Ticks at the cardinal and intercardinal directions extend
// further than the rest.
func (c *Compass) MajorAzimuthTicks() []geometry.LineSegment2D {
	ticks := make([]geometry.LineSegment2D, 0, 36)
	for az := 0; az < 360; az += 10 {
		scale := majorTickScale
		if az%45 == 0 {
			scale = cardinalTickScale
		}
		ticks = append(ticks, geometry.LineSegment2DFromEndPoints(
			c.azimuthPoint(float64(az), 1),
			c.azimuthPoint(float64(az), scale),
		))
	}
	return ticks
}

// MinorAzimuthTicks returns the 36 tick marks at the 5 degree azimuths
// between the major ticks.
func (c *Compass) MinorAzimuthTicks() []geometry.LineSegment2D {
	ticks := make([]geometry.LineSegment2D, 0, 36)
	for az := 5; az < 360; az += 10 {
		ticks = append(ticks, geometry.LineSegment2DFromEndPoints(
			c.azimuthPoint(float64(az), 1),
			c.azimuthPoint(float64(az), minorTickScale),
		))
	}
	return ticks
}
