package display

import (
	"encoding/json"
	"errors"
	"math"

	"github.com/chriswmackey/ladybug-display/geometry"
)

// This file defines the display wrappers for 2D geometry.

func degToRad(angle float64) float64 { return angle * math.Pi / 180 }

// Point2D decorates a 2D point for display.
type Point2D struct {
	colorStyle
	geometry geometry.Point2D
	// UserData carries open metadata that round-trips untouched.
	UserData map[string]interface{}
}

// NewPoint2D wraps a point with display attributes. A nil color falls
// back to opaque black.
func NewPoint2D(g geometry.Point2D, color *Color) *Point2D {
	return &Point2D{colorStyle: colorStyle{color: colorOrDefault(color)}, geometry: g}
}

// Geometry returns the wrapped point.
func (p *Point2D) Geometry() geometry.Point2D { return p.geometry }

// Move translates the wrapped point along a vector.
func (p *Point2D) Move(v geometry.Vector2D) { p.geometry = p.geometry.Move(v) }

// Rotate rotates the wrapped point counterclockwise by an angle in
// degrees around an origin point.
func (p *Point2D) Rotate(angle float64, origin geometry.Point2D) {
	p.geometry = p.geometry.Rotate(degToRad(angle), origin)
}

// Reflect mirrors the wrapped point across a plane defined by a
// normalized normal vector and an origin point.
func (p *Point2D) Reflect(normal geometry.Vector2D, origin geometry.Point2D) {
	p.geometry = p.geometry.Reflect(normal, origin)
}

// Scale scales the wrapped point by a factor from an origin point.
func (p *Point2D) Scale(factor float64, origin geometry.Point2D) {
	p.geometry = p.geometry.Scale(factor, origin)
}

// TypeName returns the dictionary type tag.
func (p *Point2D) TypeName() string { return "DisplayPoint2D" }

// Duplicate returns an independent copy.
func (p *Point2D) Duplicate() Object {
	dup := *p
	dup.UserData = copyUserData(p.UserData)
	return &dup
}

type displayPoint2DDict struct {
	Type     string                 `json:"type"`
	Geometry geometry.Point2D       `json:"geometry"`
	Color    Color                  `json:"color"`
	UserData map[string]interface{} `json:"user_data,omitempty"`
}

func (p *Point2D) MarshalJSON() ([]byte, error) {
	return json.Marshal(displayPoint2DDict{
		Type: p.TypeName(), Geometry: p.geometry, Color: p.color, UserData: p.UserData,
	})
}

func (p *Point2D) UnmarshalJSON(data []byte) error {
	var d displayPoint2DDict
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	if err := checkType(d.Type, p.TypeName()); err != nil {
		return err
	}
	obj := NewPoint2D(d.Geometry, &d.Color)
	obj.UserData = d.UserData
	*p = *obj
	return nil
}

// LineSegment2D decorates a 2D line segment for display.
type LineSegment2D struct {
	colorStyle
	lineStyle
	geometry geometry.LineSegment2D
	UserData map[string]interface{}
}

// NewLineSegment2D wraps a segment with display attributes. A nil
// color falls back to opaque black; an empty line type means
// Continuous.
func NewLineSegment2D(g geometry.LineSegment2D, color *Color, width LineWidth, ltype LineType) (*LineSegment2D, error) {
	ls, err := newLineStyle(width, ltype)
	if err != nil {
		return nil, err
	}
	return &LineSegment2D{
		colorStyle: colorStyle{color: colorOrDefault(color)},
		lineStyle:  ls,
		geometry:   g,
	}, nil
}

// Geometry returns the wrapped segment.
func (l *LineSegment2D) Geometry() geometry.LineSegment2D { return l.geometry }

// P1 returns the start point of the wrapped segment.
func (l *LineSegment2D) P1() geometry.Point2D { return l.geometry.P1() }

// P2 returns the end point of the wrapped segment.
func (l *LineSegment2D) P2() geometry.Point2D { return l.geometry.P2() }

// Length returns the length of the wrapped segment.
func (l *LineSegment2D) Length() float64 { return l.geometry.Length() }

// MidPoint returns the midpoint of the wrapped segment.
func (l *LineSegment2D) MidPoint() geometry.Point2D { return l.geometry.MidPoint() }

// Move translates the wrapped segment along a vector.
func (l *LineSegment2D) Move(v geometry.Vector2D) { l.geometry = l.geometry.Move(v) }

// Rotate rotates the wrapped segment counterclockwise by an angle in
// degrees around an origin point.
func (l *LineSegment2D) Rotate(angle float64, origin geometry.Point2D) {
	l.geometry = l.geometry.Rotate(degToRad(angle), origin)
}

// Reflect mirrors the wrapped segment across a plane defined by a
// normalized normal vector and an origin point.
func (l *LineSegment2D) Reflect(normal geometry.Vector2D, origin geometry.Point2D) {
	l.geometry = l.geometry.Reflect(normal, origin)
}

// Scale scales the wrapped segment by a factor from an origin point.
func (l *LineSegment2D) Scale(factor float64, origin geometry.Point2D) {
	l.geometry = l.geometry.Scale(factor, origin)
}

// TypeName returns the dictionary type tag.
func (l *LineSegment2D) TypeName() string { return "DisplayLineSegment2D" }

// Duplicate returns an independent copy.
func (l *LineSegment2D) Duplicate() Object {
	dup := *l
	dup.UserData = copyUserData(l.UserData)
	return &dup
}

type displayLineSegment2DDict struct {
	Type      string                 `json:"type"`
	Geometry  geometry.LineSegment2D `json:"geometry"`
	Color     Color                  `json:"color"`
	LineWidth LineWidth              `json:"line_width"`
	LineType  LineType               `json:"line_type"`
	UserData  map[string]interface{} `json:"user_data,omitempty"`
}

func (l *LineSegment2D) MarshalJSON() ([]byte, error) {
	return json.Marshal(displayLineSegment2DDict{
		Type: l.TypeName(), Geometry: l.geometry, Color: l.color,
		LineWidth: l.lineWidth, LineType: l.lineType, UserData: l.UserData,
	})
}

func (l *LineSegment2D) UnmarshalJSON(data []byte) error {
	var d displayLineSegment2DDict
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	if err := checkType(d.Type, l.TypeName()); err != nil {
		return err
	}
	obj, err := NewLineSegment2D(d.Geometry, &d.Color, d.LineWidth, d.LineType)
	if err != nil {
		return err
	}
	obj.UserData = d.UserData
	*l = *obj
	return nil
}

// Polyline2D decorates a 2D polyline for display.
type Polyline2D struct {
	colorStyle
	lineStyle
	geometry geometry.Polyline2D
	UserData map[string]interface{}
}

// NewPolyline2D wraps a polyline with display attributes. A nil color
// falls back to opaque black; an empty line type means Continuous.
func NewPolyline2D(g geometry.Polyline2D, color *Color, width LineWidth, ltype LineType) (*Polyline2D, error) {
	ls, err := newLineStyle(width, ltype)
	if err != nil {
		return nil, err
	}
	return &Polyline2D{
		colorStyle: colorStyle{color: colorOrDefault(color)},
		lineStyle:  ls,
		geometry:   g,
	}, nil
}

// Geometry returns the wrapped polyline.
func (p *Polyline2D) Geometry() geometry.Polyline2D { return p.geometry }

// Vertices returns the vertices of the wrapped polyline.
func (p *Polyline2D) Vertices() []geometry.Point2D { return p.geometry.Vertices }

// Segments returns the consecutive segments of the wrapped polyline.
func (p *Polyline2D) Segments() []geometry.LineSegment2D { return p.geometry.Segments() }

// P1 returns the first vertex of the wrapped polyline.
func (p *Polyline2D) P1() geometry.Point2D { return p.geometry.P1() }

// P2 returns the last vertex of the wrapped polyline.
func (p *Polyline2D) P2() geometry.Point2D { return p.geometry.P2() }

// Length returns the length of the wrapped polyline.
func (p *Polyline2D) Length() float64 { return p.geometry.Length() }

// Interpolated reports whether the polyline displays as a smooth curve.
func (p *Polyline2D) Interpolated() bool { return p.geometry.Interpolated }

// Move translates the wrapped polyline along a vector.
func (p *Polyline2D) Move(v geometry.Vector2D) { p.geometry = p.geometry.Move(v) }

// Rotate rotates the wrapped polyline counterclockwise by an angle in
// degrees around an origin point.
func (p *Polyline2D) Rotate(angle float64, origin geometry.Point2D) {
	p.geometry = p.geometry.Rotate(degToRad(angle), origin)
}

// Reflect mirrors the wrapped polyline across a plane defined by a
// normalized normal vector and an origin point.
func (p *Polyline2D) Reflect(normal geometry.Vector2D, origin geometry.Point2D) {
	p.geometry = p.geometry.Reflect(normal, origin)
}

// Scale scales the wrapped polyline by a factor from an origin point.
func (p *Polyline2D) Scale(factor float64, origin geometry.Point2D) {
	p.geometry = p.geometry.Scale(factor, origin)
}

// TypeName returns the dictionary type tag.
func (p *Polyline2D) TypeName() string { return "DisplayPolyline2D" }

// Duplicate returns an independent copy.
func (p *Polyline2D) Duplicate() Object {
	dup := *p
	dup.geometry.Vertices = append([]geometry.Point2D(nil), p.geometry.Vertices...)
	dup.UserData = copyUserData(p.UserData)
	return &dup
}

type displayPolyline2DDict struct {
	Type      string                 `json:"type"`
	Geometry  geometry.Polyline2D    `json:"geometry"`
	Color     Color                  `json:"color"`
	LineWidth LineWidth              `json:"line_width"`
	LineType  LineType               `json:"line_type"`
	UserData  map[string]interface{} `json:"user_data,omitempty"`
}

func (p *Polyline2D) MarshalJSON() ([]byte, error) {
	return json.Marshal(displayPolyline2DDict{
		Type: p.TypeName(), Geometry: p.geometry, Color: p.color,
		LineWidth: p.lineWidth, LineType: p.lineType, UserData: p.UserData,
	})
}

func (p *Polyline2D) UnmarshalJSON(data []byte) error {
	var d displayPolyline2DDict
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	if err := checkType(d.Type, p.TypeName()); err != nil {
		return err
	}
	if len(d.Geometry.Vertices) == 0 {
		return errors.New("missing geometry in DisplayPolyline2D dictionary")
	}
	obj, err := NewPolyline2D(d.Geometry, &d.Color, d.LineWidth, d.LineType)
	if err != nil {
		return err
	}
	obj.UserData = d.UserData
	*p = *obj
	return nil
}

// Arc2D decorates a 2D arc for display.
type Arc2D struct {
	colorStyle
	lineStyle
	geometry geometry.Arc2D
	UserData map[string]interface{}
}

// NewArc2D wraps an arc with display attributes. A nil color falls
// back to opaque black; an empty line type means Continuous.
func NewArc2D(g geometry.Arc2D, color *Color, width LineWidth, ltype LineType) (*Arc2D, error) {
	ls, err := newLineStyle(width, ltype)
	if err != nil {
		return nil, err
	}
	return &Arc2D{
		colorStyle: colorStyle{color: colorOrDefault(color)},
		lineStyle:  ls,
		geometry:   g,
	}, nil
}

// Geometry returns the wrapped arc.
func (a *Arc2D) Geometry() geometry.Arc2D { return a.geometry }

// Center returns the center of the wrapped arc.
func (a *Arc2D) Center() geometry.Point2D { return a.geometry.C }

// Radius returns the radius of the wrapped arc.
func (a *Arc2D) Radius() float64 { return a.geometry.R }

// IsCircle reports whether the wrapped arc is a full circle.
func (a *Arc2D) IsCircle() bool { return a.geometry.IsCircle() }

// Length returns the length of the wrapped arc.
func (a *Arc2D) Length() float64 { return a.geometry.Length() }

// P1 returns the start point of the wrapped arc.
func (a *Arc2D) P1() geometry.Point2D { return a.geometry.P1() }

// P2 returns the end point of the wrapped arc.
func (a *Arc2D) P2() geometry.Point2D { return a.geometry.P2() }

// MidPoint returns the point halfway along the wrapped arc.
func (a *Arc2D) MidPoint() geometry.Point2D { return a.geometry.MidPoint() }

// Move translates the wrapped arc along a vector.
func (a *Arc2D) Move(v geometry.Vector2D) { a.geometry = a.geometry.Move(v) }

// Rotate rotates the wrapped arc counterclockwise by an angle in
// degrees around an origin point.
func (a *Arc2D) Rotate(angle float64, origin geometry.Point2D) {
	a.geometry = a.geometry.Rotate(degToRad(angle), origin)
}

// Reflect mirrors the wrapped arc across a plane defined by a
// normalized normal vector and an origin point.
func (a *Arc2D) Reflect(normal geometry.Vector2D, origin geometry.Point2D) {
	a.geometry = a.geometry.Reflect(normal, origin)
}

// Scale scales the wrapped arc by a factor from an origin point.
func (a *Arc2D) Scale(factor float64, origin geometry.Point2D) {
	a.geometry = a.geometry.Scale(factor, origin)
}

// TypeName returns the dictionary type tag.
func (a *Arc2D) TypeName() string { return "DisplayArc2D" }

// Duplicate returns an independent copy.
func (a *Arc2D) Duplicate() Object {
	dup := *a
	dup.UserData = copyUserData(a.UserData)
	return &dup
}

type displayArc2DDict struct {
	Type      string                 `json:"type"`
	Geometry  geometry.Arc2D         `json:"geometry"`
	Color     Color                  `json:"color"`
	LineWidth LineWidth              `json:"line_width"`
	LineType  LineType               `json:"line_type"`
	UserData  map[string]interface{} `json:"user_data,omitempty"`
}

func (a *Arc2D) MarshalJSON() ([]byte, error) {
	return json.Marshal(displayArc2DDict{
		Type: a.TypeName(), Geometry: a.geometry, Color: a.color,
		LineWidth: a.lineWidth, LineType: a.lineType, UserData: a.UserData,
	})
}

func (a *Arc2D) UnmarshalJSON(data []byte) error {
	var d displayArc2DDict
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	if err := checkType(d.Type, a.TypeName()); err != nil {
		return err
	}
	if d.Geometry.R == 0 {
		return errors.New("missing geometry in DisplayArc2D dictionary")
	}
	obj, err := NewArc2D(d.Geometry, &d.Color, d.LineWidth, d.LineType)
	if err != nil {
		return err
	}
	obj.UserData = d.UserData
	*a = *obj
	return nil
}
