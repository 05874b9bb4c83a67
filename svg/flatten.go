package svg

import "math"

// This file lowers path commands to simpler forms: elliptical arcs to
// cubic beziers, and whole paths to straight-line strips.

// maxEtaSpan is the maximum radians a single cubic spline is allowed
// to span when approximating an elliptical arc.
const maxEtaSpan = math.Pi / 8

// Cubics lowers the arc from the given start point into cubic bezier
// commands. The approximation follows L. Maisonobe, "Drawing an
// elliptical arc using polylines, quadratic or cubic Bezier curves",
// 2003, https://www.spaceroots.org/documents/elllipse/elliptical-arc.pdf
func (op ArcTo) Cubics(fromX, fromY float64) []CubicTo {
	rx, ry := math.Abs(op.RX), math.Abs(op.RY)
	if rx == 0 || ry == 0 || (fromX == op.X && fromY == op.Y) {
		// Degenerate arcs draw as straight lines.
		return []CubicTo{{X1: fromX, Y1: fromY, X2: op.X, Y2: op.Y, X: op.X, Y: op.Y}}
	}
	rot := op.Rotation * math.Pi / 180
	cx, cy := arcCenter(&rx, &ry, rot, fromX, fromY, op.X, op.Y, op.Sweep, !op.LargeArc)

	startAngle := math.Atan2(fromY-cy, fromX-cx) - rot
	endAngle := math.Atan2(op.Y-cy, op.X-cx) - rot

	// Parameterize by the ellipse angle eta and pick the sweep the
	// flags ask for.
	etaStart := math.Atan2(math.Sin(startAngle)/ry, math.Cos(startAngle)/rx)
	etaEnd := math.Atan2(math.Sin(endAngle)/ry, math.Cos(endAngle)/rx)
	delta := etaEnd - etaStart
	if (math.Abs(endAngle-startAngle) > math.Pi) != op.LargeArc {
		if delta < 0 {
			delta += 2 * math.Pi
		} else {
			delta -= 2 * math.Pi
		}
	}
	if delta < 0 && op.Sweep {
		delta += 2 * math.Pi
	} else if delta >= 0 && !op.Sweep {
		delta -= 2 * math.Pi
	}

	segs := int(math.Abs(delta)/maxEtaSpan) + 1
	dEta := delta / float64(segs)
	tde := math.Tan(dEta / 2)
	// Hermite-to-bezier handle length for one segment.
	alpha := math.Sin(dEta) * (math.Sqrt(4+3*tde*tde) - 1) / 3

	sinRot, cosRot := math.Sincos(rot)
	cubics := make([]CubicTo, 0, segs)
	lx, ly := fromX, fromY
	ldx, ldy := ellipseTangent(rx, ry, sinRot, cosRot, etaStart)
	for i := 1; i <= segs; i++ {
		eta := etaStart + dEta*float64(i)
		px, py := op.X, op.Y // keeps the end point exact
		if i != segs {
			px, py = ellipsePoint(rx, ry, sinRot, cosRot, eta, cx, cy)
		}
		dx, dy := ellipseTangent(rx, ry, sinRot, cosRot, eta)
		cubics = append(cubics, CubicTo{
			X1: lx + alpha*ldx, Y1: ly + alpha*ldy,
			X2: px - alpha*dx, Y2: py - alpha*dy,
			X: px, Y: py,
		})
		lx, ly, ldx, ldy = px, py, dx, dy
	}
	return cubics
}

// ellipseTangent is the derivative of the eta parameterization.
func ellipseTangent(rx, ry, sinRot, cosRot, eta float64) (dx, dy float64) {
	a, b := -rx*math.Sin(eta), ry*math.Cos(eta)
	dx = a*cosRot - b*sinRot
	dy = a*sinRot + b*cosRot
	return
}

func ellipsePoint(rx, ry, sinRot, cosRot, eta, cx, cy float64) (x, y float64) {
	a, b := rx*math.Cos(eta), ry*math.Sin(eta)
	x = cx + a*cosRot - b*sinRot
	y = cy + a*sinRot + b*cosRot
	return
}

// arcCenter locates the center of the arc's ellipse. When no ellipse
// through both endpoints exists, the radii are grown minimally,
// preserving their ratio, for a solution to be possible. The problem
// reduces by coordinate transforms to finding the center of a circle
// through the origin and one other point.
func arcCenter(rx, ry *float64, rot, fromX, fromY, toX, toY float64, sweep, smallArc bool) (cx, cy float64) {
	cos, sin := math.Cos(rot), math.Sin(rot)

	// Move the origin to the start point, rotate the ellipse axes onto
	// the coordinate axes and scale x so the ellipse becomes a circle
	// of radius ry.
	nx, ny := toX-fromX, toY-fromY
	nx, ny = nx*cos+ny*sin, -nx*sin+ny*cos
	nx *= *ry / *rx

	midX, midY := nx/2, ny/2
	midSq := midX*midX + midY*midY

	var hr float64
	if *ry**ry < midSq {
		// The chord is longer than the ellipse is wide; grow the radii.
		nry := math.Sqrt(midSq)
		if *rx == *ry {
			*rx = nry // prevents roundoff
		} else {
			*rx = *rx * nry / *ry
		}
		*ry = nry
	} else {
		hr = math.Sqrt(*ry**ry-midSq) / math.Sqrt(midSq)
	}
	// When hr is zero both candidate centers coincide.
	if sweep == smallArc {
		cx = midX + midY*hr
		cy = midY - midX*hr
	} else {
		cx = midX - midY*hr
		cy = midY + midX*hr
	}

	// Undo the scale, then the rotation and translation.
	cx *= *rx / *ry
	return cx*cos - cy*sin + fromX, cx*sin + cy*cos + fromY
}

// Flatten lowers the path into straight-line strips, one per subpath,
// approximating every curved command with the given number of
// segments. Closed subpaths repeat their first point at the end.
func (pa Path) Flatten(segments int) [][]Point {
	if segments < 1 {
		segments = 1
	}
	var strips [][]Point
	var strip []Point
	var startX, startY, curX, curY float64

	flush := func() {
		if len(strip) > 1 {
			strips = append(strips, strip)
		}
		strip = nil
	}
	for _, cmd := range pa.Commands {
		if _, isMove := cmd.(MoveTo); len(strip) == 0 && !isMove {
			continue // drawing commands before the first MoveTo
		}
		switch c := cmd.(type) {
		case MoveTo:
			flush()
			strip = append(strip, Point{X: c.X, Y: c.Y})
			startX, startY, curX, curY = c.X, c.Y, c.X, c.Y
		case LineTo:
			strip = append(strip, Point{X: c.X, Y: c.Y})
			curX, curY = c.X, c.Y
		case CubicTo:
			strip = appendCubic(strip, curX, curY, c, segments)
			curX, curY = c.X, c.Y
		case ArcTo:
			for _, cu := range c.Cubics(curX, curY) {
				strip = appendCubic(strip, curX, curY, cu, segments)
				curX, curY = cu.X, cu.Y
			}
		case ClosePath:
			strip = append(strip, Point{X: startX, Y: startY})
			flush()
			curX, curY = startX, startY
		}
	}
	flush()
	return strips
}

func appendCubic(strip []Point, fromX, fromY float64, c CubicTo, segments int) []Point {
	for i := 1; i <= segments; i++ {
		t := float64(i) / float64(segments)
		strip = append(strip, Point{
			X: cubicAt(fromX, c.X1, c.X2, c.X, t),
			Y: cubicAt(fromY, c.Y1, c.Y2, c.Y, t),
		})
	}
	return strip
}
