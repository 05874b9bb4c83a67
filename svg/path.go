package svg

import "strings"

// This file defines the path command list

// Command is a single operation of a path's d attribute.
type Command interface {
	// appendTo writes the command in SVG path syntax.
	appendTo(b *strings.Builder)
}

// MoveTo starts a new subpath at the given point.
type MoveTo struct {
	X, Y float64
}

// LineTo draws a straight segment to the given point.
type LineTo struct {
	X, Y float64
}

// CubicTo draws a cubic bezier through two control points.
type CubicTo struct {
	X1, Y1, X2, Y2, X, Y float64
}

// ArcTo draws an elliptical arc to the given point.
type ArcTo struct {
	RX, RY   float64
	Rotation float64
	LargeArc bool
	Sweep    bool
	X, Y     float64
}

// ClosePath joins the end of the subpath back to its start.
type ClosePath struct{}

func (op MoveTo) appendTo(b *strings.Builder) {
	b.WriteString("M" + ftoa(op.X) + "," + ftoa(op.Y))
}

func (op LineTo) appendTo(b *strings.Builder) {
	b.WriteString("L" + ftoa(op.X) + "," + ftoa(op.Y))
}

func (op CubicTo) appendTo(b *strings.Builder) {
	b.WriteString("C" + ftoa(op.X1) + "," + ftoa(op.Y1) +
		" " + ftoa(op.X2) + "," + ftoa(op.Y2) +
		" " + ftoa(op.X) + "," + ftoa(op.Y))
}

func (op ArcTo) appendTo(b *strings.Builder) {
	b.WriteString("A" + ftoa(op.RX) + "," + ftoa(op.RY) +
		" " + ftoa(op.Rotation) +
		" " + flag(op.LargeArc) + " " + flag(op.Sweep) +
		" " + ftoa(op.X) + "," + ftoa(op.Y))
}

func (op ClosePath) appendTo(b *strings.Builder) {
	b.WriteString("Z")
}

func flag(set bool) string {
	if set {
		return "1"
	}
	return "0"
}

// D returns the path's d attribute string.
func (pa Path) D() string {
	var b strings.Builder
	for i, op := range pa.Commands {
		if i > 0 {
			b.WriteByte(' ')
		}
		op.appendTo(&b)
	}
	return b.String()
}
