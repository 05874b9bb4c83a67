package svg

import "math"

// Computes the extent of an element tree, needed to fit a view box
// around drawn geometry.

// Bounds is an axis-aligned extent in user units.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// EmptyBounds returns the union identity: any point expands it.
func EmptyBounds() Bounds {
	return Bounds{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
}

// IsEmpty reports whether no point was ever added.
func (b Bounds) IsEmpty() bool { return b.MinX > b.MaxX || b.MinY > b.MaxY }

// W is the width of the bounds, zero when empty.
func (b Bounds) W() float64 {
	if b.IsEmpty() {
		return 0
	}
	return b.MaxX - b.MinX
}

// H is the height of the bounds, zero when empty.
func (b Bounds) H() float64 {
	if b.IsEmpty() {
		return 0
	}
	return b.MaxY - b.MinY
}

// Pad expands the bounds by a margin on every side.
func (b Bounds) Pad(margin float64) Bounds {
	if b.IsEmpty() {
		return b
	}
	return Bounds{b.MinX - margin, b.MinY - margin, b.MaxX + margin, b.MaxY + margin}
}

// ViewBox returns a view box fitting the bounds, or nil when empty.
func (b Bounds) ViewBox() *ViewBox {
	if b.IsEmpty() {
		return nil
	}
	return &ViewBox{X: b.MinX, Y: b.MinY, W: b.W(), H: b.H()}
}

func (b Bounds) add(x, y float64) Bounds {
	return Bounds{
		MinX: math.Min(b.MinX, x), MinY: math.Min(b.MinY, y),
		MaxX: math.Max(b.MaxX, x), MaxY: math.Max(b.MaxY, y),
	}
}

func (b Bounds) union(o Bounds) Bounds {
	if o.IsEmpty() {
		return b
	}
	return b.add(o.MinX, o.MinY).add(o.MaxX, o.MaxY)
}

// BoundsOf returns the extent of the given elements. Stroke widths and
// text glyph sizes are not accounted for.
func BoundsOf(els ...Element) Bounds {
	b := EmptyBounds()
	for _, el := range els {
		b = b.union(elementBounds(el))
	}
	return b
}

func elementBounds(el Element) Bounds {
	b := EmptyBounds()
	switch e := el.(type) {
	case Circle:
		b = b.add(e.CX-e.R, e.CY-e.R).add(e.CX+e.R, e.CY+e.R)
	case Ellipse:
		b = b.add(e.CX-e.RX, e.CY-e.RY).add(e.CX+e.RX, e.CY+e.RY)
	case Line:
		b = b.add(e.X1, e.Y1).add(e.X2, e.Y2)
	case Polyline:
		for _, p := range e.Points {
			b = b.add(p.X, p.Y)
		}
	case Polygon:
		for _, p := range e.Points {
			b = b.add(p.X, p.Y)
		}
	case Rect:
		b = b.add(e.X, e.Y).add(e.X+e.W, e.Y+e.H)
	case Text:
		b = b.add(e.X, e.Y)
	case Path:
		b = b.union(pathBounds(e))
	case Group:
		for _, child := range e.Children {
			b = b.union(elementBounds(child))
		}
	case *Group:
		// Parsed documents hold groups by pointer.
		b = b.union(elementBounds(*e))
	}
	return b
}

// pathBounds includes the curve extrema, not just the anchor points.
func pathBounds(pa Path) Bounds {
	b := EmptyBounds()
	var startX, startY, curX, curY float64
	open := false
	for _, cmd := range pa.Commands {
		if _, isMove := cmd.(MoveTo); !open && !isMove {
			continue
		}
		switch c := cmd.(type) {
		case MoveTo:
			b = b.add(c.X, c.Y)
			startX, startY, curX, curY = c.X, c.Y, c.X, c.Y
			open = true
		case LineTo:
			b = b.add(c.X, c.Y)
			curX, curY = c.X, c.Y
		case CubicTo:
			b = b.union(cubicBounds(curX, curY, c))
			curX, curY = c.X, c.Y
		case ArcTo:
			for _, cu := range c.Cubics(curX, curY) {
				b = b.union(cubicBounds(curX, curY, cu))
				curX, curY = cu.X, cu.Y
			}
		case ClosePath:
			curX, curY = startX, startY
			open = false
		}
	}
	return b
}

// cubicBounds evaluates a cubic at its end points and wherever a
// coordinate's derivative has a root inside (0, 1).
func cubicBounds(fromX, fromY float64, c CubicTo) Bounds {
	b := EmptyBounds().add(fromX, fromY).add(c.X, c.Y)
	ts := quadraticRoots(cubicDerivative(fromX, c.X1, c.X2, c.X))
	ts = append(ts, quadraticRoots(cubicDerivative(fromY, c.Y1, c.Y2, c.Y))...)
	for _, t := range ts {
		if 0 < t && t < 1 {
			b = b.add(cubicAt(fromX, c.X1, c.X2, c.X, t), cubicAt(fromY, c.Y1, c.Y2, c.Y, t))
		}
	}
	return b
}

// cubicAt evaluates the cubic bezier polynomial
// (p3-3*p2+3*p1-p0)t^3 + (3*p2-6*p1+3*p0)t^2 + (3*p1-3*p0)t + p0.
func cubicAt(p0, p1, p2, p3, t float64) float64 {
	return (p3-3*p2+3*p1-p0)*t*t*t + (3*p2-6*p1+3*p0)*t*t + (3*p1-3*p0)*t + p0
}

// cubicDerivative returns the quadratic coefficients of the cubic's
// derivative.
func cubicDerivative(p0, p1, p2, p3 float64) (a, b, c float64) {
	return 3*p3 - 9*p2 + 9*p1 - 3*p0, 6*p2 - 12*p1 + 6*p0, 3*p1 - 3*p0
}

// quadraticRoots returns the real roots of at^2 + bt + c, degrading to
// the linear solution when a is zero.
func quadraticRoots(a, b, c float64) []float64 {
	if a == 0 {
		if b == 0 {
			return nil
		}
		return []float64{-c / b}
	}
	d := b*b - 4*a*c
	if d < 0 {
		return nil
	}
	if d == 0 {
		return []float64{-b / (2 * a)}
	}
	sq := math.Sqrt(d)
	return []float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)}
}
