package astro

import (
	"math"
	"time"

	"github.com/chriswmackey/ladybug-display/geometry"
)

// Sunpath computes solar positions for a location.
type Sunpath struct {
	Latitude  float64 // degrees, south of the equator negative
	Longitude float64 // degrees, west of Greenwich negative
	TimeZone  float64 // hours offset from UTC
	// NorthAngle is the counterclockwise offset of north from the
	// positive Y axis, in degrees. It only affects the projected
	// geometry, never the solar angles.
	NorthAngle float64
}

// SunPosition is the sky location of the sun at one moment.
type SunPosition struct {
	Altitude float64 // degrees above the horizon, negative below
	Azimuth  float64 // degrees clockwise from north
}

// AboveHorizon reports whether the sun is up.
func (p SunPosition) AboveHorizon() bool { return p.Altitude > 0 }

// dayOfYear maps a date to its ordinal in a non-leap year.
func dayOfYear(month, day int) int {
	return time.Date(2017, time.Month(month), day, 0, 0, 0, 0, time.UTC).YearDay()
}

// Position returns the sun's position on the given date at the given
// local clock hour. Declination and the equation of time follow
// Spencer's Fourier series; the azimuth convention is degrees
// clockwise from north.
func (s *Sunpath) Position(month, day int, hour float64) SunPosition {
	gamma := 2 * math.Pi / 365 * (float64(dayOfYear(month, day)-1) + (hour-12)/24)

	eqTime := 229.18 * (0.000075 +
		0.001868*math.Cos(gamma) - 0.032077*math.Sin(gamma) -
		0.014615*math.Cos(2*gamma) - 0.040849*math.Sin(2*gamma))
	decl := 0.006918 -
		0.399912*math.Cos(gamma) + 0.070257*math.Sin(gamma) -
		0.006758*math.Cos(2*gamma) + 0.000907*math.Sin(2*gamma) -
		0.002697*math.Cos(3*gamma) + 0.00148*math.Sin(3*gamma)

	// Shift clock time to true solar time in minutes.
	offset := eqTime + 4*s.Longitude - 60*s.TimeZone
	trueSolar := hour*60 + offset
	hourAngle := (trueSolar/4 - 180) * math.Pi / 180

	lat := s.Latitude * math.Pi / 180
	sinAlt := math.Sin(lat)*math.Sin(decl) + math.Cos(lat)*math.Cos(decl)*math.Cos(hourAngle)
	if sinAlt > 1 {
		sinAlt = 1
	} else if sinAlt < -1 {
		sinAlt = -1
	}
	alt := math.Asin(sinAlt)

	// Measured from south, then shifted to the from-north convention.
	az := math.Atan2(math.Sin(hourAngle),
		math.Cos(hourAngle)*math.Sin(lat)-math.Tan(decl)*math.Cos(lat)) + math.Pi

	azDeg := az * 180 / math.Pi
	for azDeg < 0 {
		azDeg += 360
	}
	for azDeg >= 360 {
		azDeg -= 360
	}
	return SunPosition{Altitude: alt * 180 / math.Pi, Azimuth: azDeg}
}

// SunPoint3D maps a sun position onto a hemisphere of the given radius
// around center, honoring the north angle.
func (s *Sunpath) SunPoint3D(p SunPosition, center geometry.Point3D, radius float64) geometry.Point3D {
	az := (p.Azimuth - s.NorthAngle) * math.Pi / 180
	alt := p.Altitude * math.Pi / 180
	return geometry.Point3D{
		X: center.X + radius*math.Cos(alt)*math.Sin(az),
		Y: center.Y + radius*math.Cos(alt)*math.Cos(az),
		Z: center.Z + radius*math.Sin(alt),
	}
}

// DayArc3D samples the sun's path across one day at 15 minute steps,
// keeping only the stretch above the horizon. ok is false when the sun
// never rises high enough to form a curve.
func (s *Sunpath) DayArc3D(month, day int, center geometry.Point3D, radius float64) (geometry.Polyline3D, bool) {
	var pts []geometry.Point3D
	for step := 0; step < 96; step++ {
		pos := s.Position(month, day, float64(step)/4)
		if pos.AboveHorizon() {
			pts = append(pts, s.SunPoint3D(pos, center, radius))
		}
	}
	return polylineFrom(pts)
}

// Analemma3D samples the sun's position at one clock hour on the 21st
// of every month, keeping only positions above the horizon. ok is
// false when fewer than three months see the sun at that hour.
func (s *Sunpath) Analemma3D(hour int, center geometry.Point3D, radius float64) (geometry.Polyline3D, bool) {
	var pts []geometry.Point3D
	for month := 1; month <= 12; month++ {
		pos := s.Position(month, 21, float64(hour))
		if pos.AboveHorizon() {
			pts = append(pts, s.SunPoint3D(pos, center, radius))
		}
	}
	return polylineFrom(pts)
}

// DayArcs3D returns the day arcs for the two solstices and the spring
// equinox, skipping days when the sun never rises.
func (s *Sunpath) DayArcs3D(center geometry.Point3D, radius float64) []geometry.Polyline3D {
	arcs := make([]geometry.Polyline3D, 0, 3)
	for _, month := range []int{12, 3, 6} {
		if arc, ok := s.DayArc3D(month, 21, center, radius); ok {
			arcs = append(arcs, arc)
		}
	}
	return arcs
}

// Analemmas3D returns one analemma per clock hour with enough sun.
func (s *Sunpath) Analemmas3D(center geometry.Point3D, radius float64) []geometry.Polyline3D {
	curves := make([]geometry.Polyline3D, 0, 24)
	for hour := 0; hour < 24; hour++ {
		if curve, ok := s.Analemma3D(hour, center, radius); ok {
			curves = append(curves, curve)
		}
	}
	return curves
}

func polylineFrom(pts []geometry.Point3D) (geometry.Polyline3D, bool) {
	pl, err := geometry.NewPolyline3D(pts, true)
	if err != nil {
		return geometry.Polyline3D{}, false
	}
	return pl, true
}
