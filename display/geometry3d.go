package display

import (
	"encoding/json"
	"errors"

	"github.com/chriswmackey/ladybug-display/geometry"
)

// This file defines the display wrappers for 3D geometry.

// Point3D decorates a 3D point for display.
type Point3D struct {
	colorStyle
	geometry geometry.Point3D
	UserData map[string]interface{}
}

// NewPoint3D wraps a point with display attributes. A nil color falls
// back to opaque black.
func NewPoint3D(g geometry.Point3D, color *Color) *Point3D {
	return &Point3D{colorStyle: colorStyle{color: colorOrDefault(color)}, geometry: g}
}

// Geometry returns the wrapped point.
func (p *Point3D) Geometry() geometry.Point3D { return p.geometry }

// Move translates the wrapped point along a vector.
func (p *Point3D) Move(v geometry.Vector3D) { p.geometry = p.geometry.Move(v) }

// Rotate rotates the wrapped point counterclockwise by an angle in
// degrees around an axis through an origin point.
func (p *Point3D) Rotate(axis geometry.Vector3D, angle float64, origin geometry.Point3D) {
	p.geometry = p.geometry.Rotate(axis, degToRad(angle), origin)
}

// RotateXY rotates the wrapped point counterclockwise in the world XY
// plane by an angle in degrees.
func (p *Point3D) RotateXY(angle float64, origin geometry.Point3D) {
	p.geometry = p.geometry.RotateXY(degToRad(angle), origin)
}

// Reflect mirrors the wrapped point across a plane defined by a
// normalized normal vector and an origin point.
func (p *Point3D) Reflect(normal geometry.Vector3D, origin geometry.Point3D) {
	p.geometry = p.geometry.Reflect(normal, origin)
}

// Scale scales the wrapped point by a factor from an origin point.
func (p *Point3D) Scale(factor float64, origin geometry.Point3D) {
	p.geometry = p.geometry.Scale(factor, origin)
}

// TypeName returns the dictionary type tag.
func (p *Point3D) TypeName() string { return "DisplayPoint3D" }

// Duplicate returns an independent copy.
func (p *Point3D) Duplicate() Object {
	dup := *p
	dup.UserData = copyUserData(p.UserData)
	return &dup
}

type displayPoint3DDict struct {
	Type     string                 `json:"type"`
	Geometry geometry.Point3D       `json:"geometry"`
	Color    Color                  `json:"color"`
	UserData map[string]interface{} `json:"user_data,omitempty"`
}

func (p *Point3D) MarshalJSON() ([]byte, error) {
	return json.Marshal(displayPoint3DDict{
		Type: p.TypeName(), Geometry: p.geometry, Color: p.color, UserData: p.UserData,
	})
}

func (p *Point3D) UnmarshalJSON(data []byte) error {
	var d displayPoint3DDict
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	if err := checkType(d.Type, p.TypeName()); err != nil {
		return err
	}
	obj := NewPoint3D(d.Geometry, &d.Color)
	obj.UserData = d.UserData
	*p = *obj
	return nil
}

// Vector3D decorates a 3D vector for display.
type Vector3D struct {
	colorStyle
	geometry geometry.Vector3D
	UserData map[string]interface{}
}

// NewVector3D wraps a vector with display attributes. A nil color
// falls back to opaque black.
func NewVector3D(g geometry.Vector3D, color *Color) *Vector3D {
	return &Vector3D{colorStyle: colorStyle{color: colorOrDefault(color)}, geometry: g}
}

// Geometry returns the wrapped vector.
func (v *Vector3D) Geometry() geometry.Vector3D { return v.geometry }

// Magnitude returns the length of the wrapped vector.
func (v *Vector3D) Magnitude() float64 { return v.geometry.Magnitude() }

// Rotate rotates the wrapped vector counterclockwise by an angle in
// degrees around an axis.
func (v *Vector3D) Rotate(axis geometry.Vector3D, angle float64) {
	v.geometry = v.geometry.Rotate(axis, degToRad(angle))
}

// Reflect mirrors the wrapped vector across a plane defined by a
// normalized normal vector.
func (v *Vector3D) Reflect(normal geometry.Vector3D) {
	v.geometry = v.geometry.Reflect(normal)
}

// Scale scales the wrapped vector by a factor.
func (v *Vector3D) Scale(factor float64) {
	v.geometry = v.geometry.Scale(factor)
}

// TypeName returns the dictionary type tag.
func (v *Vector3D) TypeName() string { return "DisplayVector3D" }

// Duplicate returns an independent copy.
func (v *Vector3D) Duplicate() Object {
	dup := *v
	dup.UserData = copyUserData(v.UserData)
	return &dup
}

type displayVector3DDict struct {
	Type     string                 `json:"type"`
	Geometry geometry.Vector3D      `json:"geometry"`
	Color    Color                  `json:"color"`
	UserData map[string]interface{} `json:"user_data,omitempty"`
}

func (v *Vector3D) MarshalJSON() ([]byte, error) {
	return json.Marshal(displayVector3DDict{
		Type: v.TypeName(), Geometry: v.geometry, Color: v.color, UserData: v.UserData,
	})
}

func (v *Vector3D) UnmarshalJSON(data []byte) error {
	var d displayVector3DDict
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	if err := checkType(d.Type, v.TypeName()); err != nil {
		return err
	}
	obj := NewVector3D(d.Geometry, &d.Color)
	obj.UserData = d.UserData
	*v = *obj
	return nil
}

// LineSegment3D decorates a 3D line segment for display.
type LineSegment3D struct {
	colorStyle
	lineStyle
	geometry geometry.LineSegment3D
	UserData map[string]interface{}
}

// NewLineSegment3D wraps a segment with display attributes. A nil
// color falls back to opaque black; an empty line type means
// Continuous.
func NewLineSegment3D(g geometry.LineSegment3D, color *Color, width LineWidth, ltype LineType) (*LineSegment3D, error) {
	ls, err := newLineStyle(width, ltype)
	if err != nil {
		return nil, err
	}
	return &LineSegment3D{
		colorStyle: colorStyle{color: colorOrDefault(color)},
		lineStyle:  ls,
		geometry:   g,
	}, nil
}

// Geometry returns the wrapped segment.
func (l *LineSegment3D) Geometry() geometry.LineSegment3D { return l.geometry }

// P1 returns the start point of the wrapped segment.
func (l *LineSegment3D) P1() geometry.Point3D { return l.geometry.P1() }

// P2 returns the end point of the wrapped segment.
func (l *LineSegment3D) P2() geometry.Point3D { return l.geometry.P2() }

// Length returns the length of the wrapped segment.
func (l *LineSegment3D) Length() float64 { return l.geometry.Length() }

// MidPoint returns the midpoint of the wrapped segment.
func (l *LineSegment3D) MidPoint() geometry.Point3D { return l.geometry.MidPoint() }

// Move translates the wrapped segment along a vector.
func (l *LineSegment3D) Move(v geometry.Vector3D) { l.geometry = l.geometry.Move(v) }

// Rotate rotates the wrapped segment counterclockwise by an angle in
// degrees around an axis through an origin point.
func (l *LineSegment3D) Rotate(axis geometry.Vector3D, angle float64, origin geometry.Point3D) {
	l.geometry = l.geometry.Rotate(axis, degToRad(angle), origin)
}

// RotateXY rotates the wrapped segment counterclockwise in the world
// XY plane by an angle in degrees.
func (l *LineSegment3D) RotateXY(angle float64, origin geometry.Point3D) {
	l.geometry = l.geometry.RotateXY(degToRad(angle), origin)
}

// Reflect mirrors the wrapped segment across a plane defined by a
// normalized normal vector and an origin point.
func (l *LineSegment3D) Reflect(normal geometry.Vector3D, origin geometry.Point3D) {
	l.geometry = l.geometry.Reflect(normal, origin)
}

// Scale scales the wrapped segment by a factor from an origin point.
func (l *LineSegment3D) Scale(factor float64, origin geometry.Point3D) {
	l.geometry = l.geometry.Scale(factor, origin)
}

// TypeName returns the dictionary type tag.
func (l *LineSegment3D) TypeName() string { return "DisplayLineSegment3D" }

// Duplicate returns an independent copy.
func (l *LineSegment3D) Duplicate() Object {
	dup := *l
	dup.UserData = copyUserData(l.UserData)
	return &dup
}

type displayLineSegment3DDict struct {
	Type      string                 `json:"type"`
	Geometry  geometry.LineSegment3D `json:"geometry"`
	Color     Color                  `json:"color"`
	LineWidth LineWidth              `json:"line_width"`
	LineType  LineType               `json:"line_type"`
	UserData  map[string]interface{} `json:"user_data,omitempty"`
}

func (l *LineSegment3D) MarshalJSON() ([]byte, error) {
	return json.Marshal(displayLineSegment3DDict{
		Type: l.TypeName(), Geometry: l.geometry, Color: l.color,
		LineWidth: l.lineWidth, LineType: l.lineType, UserData: l.UserData,
	})
}

func (l *LineSegment3D) UnmarshalJSON(data []byte) error {
	var d displayLineSegment3DDict
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	if err := checkType(d.Type, l.TypeName()); err != nil {
		return err
	}
	obj, err := NewLineSegment3D(d.Geometry, &d.Color, d.LineWidth, d.LineType)
	if err != nil {
		return err
	}
	obj.UserData = d.UserData
	*l = *obj
	return nil
}

// Polyline3D decorates a 3D polyline for display.
type Polyline3D struct {
	colorStyle
	lineStyle
	geometry geometry.Polyline3D
	UserData map[string]interface{}
}

// NewPolyline3D wraps a polyline with display attributes. A nil color
// falls back to opaque black; an empty line type means Continuous.
func NewPolyline3D(g geometry.Polyline3D, color *Color, width LineWidth, ltype LineType) (*Polyline3D, error) {
	ls, err := newLineStyle(width, ltype)
	if err != nil {
		return nil, err
	}
	return &Polyline3D{
		colorStyle: colorStyle{color: colorOrDefault(color)},
		lineStyle:  ls,
		geometry:   g,
	}, nil
}

// Geometry returns the wrapped polyline.
func (p *Polyline3D) Geometry() geometry.Polyline3D { return p.geometry }

// Vertices returns the vertices of the wrapped polyline.
func (p *Polyline3D) Vertices() []geometry.Point3D { return p.geometry.Vertices }

// Segments returns the consecutive segments of the wrapped polyline.
func (p *Polyline3D) Segments() []geometry.LineSegment3D { return p.geometry.Segments() }

// P1 returns the first vertex of the wrapped polyline.
func (p *Polyline3D) P1() geometry.Point3D { return p.geometry.P1() }

// P2 returns the last vertex of the wrapped polyline.
func (p *Polyline3D) P2() geometry.Point3D { return p.geometry.P2() }

// Length returns the length of the wrapped polyline.
func (p *Polyline3D) Length() float64 { return p.geometry.Length() }

// Interpolated reports whether the polyline displays as a smooth curve.
func (p *Polyline3D) Interpolated() bool { return p.geometry.Interpolated }

// Move translates the wrapped polyline along a vector.
func (p *Polyline3D) Move(v geometry.Vector3D) { p.geometry = p.geometry.Move(v) }

// Rotate rotates the wrapped polyline counterclockwise by an angle in
// degrees around an axis through an origin point.
func (p *Polyline3D) Rotate(axis geometry.Vector3D, angle float64, origin geometry.Point3D) {
	p.geometry = p.geometry.Rotate(axis, degToRad(angle), origin)
}

// RotateXY rotates the wrapped polyline counterclockwise in the world
// XY plane by an angle in degrees.
func (p *Polyline3D) RotateXY(angle float64, origin geometry.Point3D) {
	p.geometry = p.geometry.RotateXY(degToRad(angle), origin)
}

// Reflect mirrors the wrapped polyline across a plane defined by a
// normalized normal vector and an origin point.
func (p *Polyline3D) Reflect(normal geometry.Vector3D, origin geometry.Point3D) {
	p.geometry = p.geometry.Reflect(normal, origin)
}

// Scale scales the wrapped polyline by a factor from an origin point.
func (p *Polyline3D) Scale(factor float64, origin geometry.Point3D) {
	p.geometry = p.geometry.Scale(factor, origin)
}

// TypeName returns the dictionary type tag.
func (p *Polyline3D) TypeName() string { return "DisplayPolyline3D" }

// Duplicate returns an independent copy.
func (p *Polyline3D) Duplicate() Object {
	dup := *p
	dup.geometry.Vertices = append([]geometry.Point3D(nil), p.geometry.Vertices...)
	dup.UserData = copyUserData(p.UserData)
	return &dup
}

type displayPolyline3DDict struct {
	Type      string                 `json:"type"`
	Geometry  geometry.Polyline3D    `json:"geometry"`
	Color     Color                  `json:"color"`
	LineWidth LineWidth              `json:"line_width"`
	LineType  LineType               `json:"line_type"`
	UserData  map[string]interface{} `json:"user_data,omitempty"`
}

func (p *Polyline3D) MarshalJSON() ([]byte, error) {
	return json.Marshal(displayPolyline3DDict{
		Type: p.TypeName(), Geometry: p.geometry, Color: p.color,
		LineWidth: p.lineWidth, LineType: p.lineType, UserData: p.UserData,
	})
}

func (p *Polyline3D) UnmarshalJSON(data []byte) error {
	var d displayPolyline3DDict
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	if err := checkType(d.Type, p.TypeName()); err != nil {
		return err
	}
	if len(d.Geometry.Vertices) == 0 {
		return errors.New("missing geometry in DisplayPolyline3D dictionary")
	}
	obj, err := NewPolyline3D(d.Geometry, &d.Color, d.LineWidth, d.LineType)
	if err != nil {
		return err
	}
	obj.UserData = d.UserData
	*p = *obj
	return nil
}

// Sphere decorates a sphere for display.
type Sphere struct {
	colorStyle
	modeStyle
	geometry geometry.Sphere
	UserData map[string]interface{}
}

// NewSphere wraps a sphere with display attributes. A nil color falls
// back to opaque black; an empty display mode means Surface.
func NewSphere(g geometry.Sphere, color *Color, mode DisplayMode) (*Sphere, error) {
	ms, err := newModeStyle(mode)
	if err != nil {
		return nil, err
	}
	return &Sphere{
		colorStyle: colorStyle{color: colorOrDefault(color)},
		modeStyle:  ms,
		geometry:   g,
	}, nil
}

// Geometry returns the wrapped sphere.
func (s *Sphere) Geometry() geometry.Sphere { return s.geometry }

// Center returns the center of the wrapped sphere.
func (s *Sphere) Center() geometry.Point3D { return s.geometry.Center }

// Radius returns the radius of the wrapped sphere.
func (s *Sphere) Radius() float64 { return s.geometry.Radius }

// Area returns the surface area of the wrapped sphere.
func (s *Sphere) Area() float64 { return s.geometry.Area() }

// Volume returns the volume of the wrapped sphere.
func (s *Sphere) Volume() float64 { return s.geometry.Volume() }

// Move translates the wrapped sphere along a vector.
func (s *Sphere) Move(v geometry.Vector3D) { s.geometry = s.geometry.Move(v) }

// Rotate rotates the wrapped sphere counterclockwise by an angle in
// degrees around an axis through an origin point.
func (s *Sphere) Rotate(axis geometry.Vector3D, angle float64, origin geometry.Point3D) {
	s.geometry = s.geometry.Rotate(axis, degToRad(angle), origin)
}

// RotateXY rotates the wrapped sphere counterclockwise in the world XY
// plane by an angle in degrees.
func (s *Sphere) RotateXY(angle float64, origin geometry.Point3D) {
	s.geometry = s.geometry.RotateXY(degToRad(angle), origin)
}

// Reflect mirrors the wrapped sphere across a plane defined by a
// normalized normal vector and an origin point.
func (s *Sphere) Reflect(normal geometry.Vector3D, origin geometry.Point3D) {
	s.geometry = s.geometry.Reflect(normal, origin)
}

// Scale scales the wrapped sphere by a factor from an origin point.
func (s *Sphere) Scale(factor float64, origin geometry.Point3D) {
	s.geometry = s.geometry.Scale(factor, origin)
}

// TypeName returns the dictionary type tag.
func (s *Sphere) TypeName() string { return "DisplaySphere" }

// Duplicate returns an independent copy.
func (s *Sphere) Duplicate() Object {
	dup := *s
	dup.UserData = copyUserData(s.UserData)
	return &dup
}

type displaySphereDict struct {
	Type        string                 `json:"type"`
	Geometry    geometry.Sphere        `json:"geometry"`
	Color       Color                  `json:"color"`
	DisplayMode DisplayMode            `json:"display_mode"`
	UserData    map[string]interface{} `json:"user_data,omitempty"`
}

func (s *Sphere) MarshalJSON() ([]byte, error) {
	return json.Marshal(displaySphereDict{
		Type: s.TypeName(), Geometry: s.geometry, Color: s.color,
		DisplayMode: s.displayMode, UserData: s.UserData,
	})
}

func (s *Sphere) UnmarshalJSON(data []byte) error {
	var d displaySphereDict
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	if err := checkType(d.Type, s.TypeName()); err != nil {
		return err
	}
	if d.Geometry.Radius == 0 {
		return errors.New("missing geometry in DisplaySphere dictionary")
	}
	obj, err := NewSphere(d.Geometry, &d.Color, d.DisplayMode)
	if err != nil {
		return err
	}
	obj.UserData = d.UserData
	*s = *obj
	return nil
}

// Cone decorates a cone for display.
type Cone struct {
	colorStyle
	modeStyle
	geometry geometry.Cone
	UserData map[string]interface{}
}

// NewCone wraps a cone with display attributes. A nil color falls
// back to opaque black; an empty display mode means Surface.
func NewCone(g geometry.Cone, color *Color, mode DisplayMode) (*Cone, error) {
	ms, err := newModeStyle(mode)
	if err != nil {
		return nil, err
	}
	return &Cone{
		colorStyle: colorStyle{color: colorOrDefault(color)},
		modeStyle:  ms,
		geometry:   g,
	}, nil
}

// Geometry returns the wrapped cone.
func (c *Cone) Geometry() geometry.Cone { return c.geometry }

// Vertex returns the vertex of the wrapped cone.
func (c *Cone) Vertex() geometry.Point3D { return c.geometry.Vertex }

// Axis returns the axis of the wrapped cone.
func (c *Cone) Axis() geometry.Vector3D { return c.geometry.Axis }

// Angle returns the half-angle of the wrapped cone in radians.
func (c *Cone) Angle() float64 { return c.geometry.Angle }

// Height returns the height of the wrapped cone.
func (c *Cone) Height() float64 { return c.geometry.Height() }

// Radius returns the base radius of the wrapped cone.
func (c *Cone) Radius() float64 { return c.geometry.Radius() }

// Area returns the surface area of the wrapped cone.
func (c *Cone) Area() float64 { return c.geometry.Area() }

// Volume returns the volume of the wrapped cone.
func (c *Cone) Volume() float64 { return c.geometry.Volume() }

// Move translates the wrapped cone along a vector.
func (c *Cone) Move(v geometry.Vector3D) { c.geometry = c.geometry.Move(v) }

// Rotate rotates the wrapped cone counterclockwise by an angle in
// degrees around an axis through an origin point.
func (c *Cone) Rotate(axis geometry.Vector3D, angle float64, origin geometry.Point3D) {
	c.geometry = c.geometry.Rotate(axis, degToRad(angle), origin)
}

// RotateXY rotates the wrapped cone counterclockwise in the world XY
// plane by an angle in degrees.
func (c *Cone) RotateXY(angle float64, origin geometry.Point3D) {
	c.geometry = c.geometry.RotateXY(degToRad(angle), origin)
}

// Reflect mirrors the wrapped cone across a plane defined by a
// normalized normal vector and an origin point.
func (c *Cone) Reflect(normal geometry.Vector3D, origin geometry.Point3D) {
	c.geometry = c.geometry.Reflect(normal, origin)
}

// Scale scales the wrapped cone by a factor from an origin point.
func (c *Cone) Scale(factor float64, origin geometry.Point3D) {
	c.geometry = c.geometry.Scale(factor, origin)
}

// TypeName returns the dictionary type tag.
func (c *Cone) TypeName() string { return "DisplayCone" }

// Duplicate returns an independent copy.
func (c *Cone) Duplicate() Object {
	dup := *c
	dup.UserData = copyUserData(c.UserData)
	return &dup
}

type displayConeDict struct {
	Type        string                 `json:"type"`
	Geometry    geometry.Cone          `json:"geometry"`
	Color       Color                  `json:"color"`
	DisplayMode DisplayMode            `json:"display_mode"`
	UserData    map[string]interface{} `json:"user_data,omitempty"`
}

func (c *Cone) MarshalJSON() ([]byte, error) {
	return json.Marshal(displayConeDict{
		Type: c.TypeName(), Geometry: c.geometry, Color: c.color,
		DisplayMode: c.displayMode, UserData: c.UserData,
	})
}

func (c *Cone) UnmarshalJSON(data []byte) error {
	var d displayConeDict
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	if err := checkType(d.Type, c.TypeName()); err != nil {
		return err
	}
	if d.Geometry.Angle == 0 {
		return errors.New("missing geometry in DisplayCone dictionary")
	}
	obj, err := NewCone(d.Geometry, &d.Color, d.DisplayMode)
	if err != nil {
		return err
	}
	obj.UserData = d.UserData
	*c = *obj
	return nil
}

// Cylinder decorates a cylinder for display.
type Cylinder struct {
	colorStyle
	modeStyle
	geometry geometry.Cylinder
	UserData map[string]interface{}
}

// NewCylinder wraps a cylinder with display attributes. A nil color
// falls back to opaque black; an empty display mode means Surface.
func NewCylinder(g geometry.Cylinder, color *Color, mode DisplayMode) (*Cylinder, error) {
	ms, err := newModeStyle(mode)
	if err != nil {
		return nil, err
	}
	return &Cylinder{
		colorStyle: colorStyle{color: colorOrDefault(color)},
		modeStyle:  ms,
		geometry:   g,
	}, nil
}

// Geometry returns the wrapped cylinder.
func (c *Cylinder) Geometry() geometry.Cylinder { return c.geometry }

// Center returns the center of the bottom base of the wrapped cylinder.
func (c *Cylinder) Center() geometry.Point3D { return c.geometry.Center }

// Axis returns the axis of the wrapped cylinder.
func (c *Cylinder) Axis() geometry.Vector3D { return c.geometry.Axis }

// Radius returns the radius of the wrapped cylinder.
func (c *Cylinder) Radius() float64 { return c.geometry.Radius }

// Height returns the height of the wrapped cylinder.
func (c *Cylinder) Height() float64 { return c.geometry.Height() }

// Area returns the surface area of the wrapped cylinder.
func (c *Cylinder) Area() float64 { return c.geometry.Area() }

// Volume returns the volume of the wrapped cylinder.
func (c *Cylinder) Volume() float64 { return c.geometry.Volume() }

// Move translates the wrapped cylinder along a vector.
func (c *Cylinder) Move(v geometry.Vector3D) { c.geometry = c.geometry.Move(v) }

// Rotate rotates the wrapped cylinder counterclockwise by an angle in
// degrees around an axis through an origin point.
func (c *Cylinder) Rotate(axis geometry.Vector3D, angle float64, origin geometry.Point3D) {
	c.geometry = c.geometry.Rotate(axis, degToRad(angle), origin)
}

// RotateXY rotates the wrapped cylinder counterclockwise in the world
// XY plane by an angle in degrees.
func (c *Cylinder) RotateXY(angle float64, origin geometry.Point3D) {
	c.geometry = c.geometry.RotateXY(degToRad(angle), origin)
}

// Reflect mirrors the wrapped cylinder across a plane defined by a
// normalized normal vector and an origin point.
func (c *Cylinder) Reflect(normal geometry.Vector3D, origin geometry.Point3D) {
	c.geometry = c.geometry.Reflect(normal, origin)
}

// Scale scales the wrapped cylinder by a factor from an origin point.
func (c *Cylinder) Scale(factor float64, origin geometry.Point3D) {
	c.geometry = c.geometry.Scale(factor, origin)
}

// TypeName returns the dictionary type tag.
func (c *Cylinder) TypeName() string { return "DisplayCylinder" }

// Duplicate returns an independent copy.
func (c *Cylinder) Duplicate() Object {
	dup := *c
	dup.UserData = copyUserData(c.UserData)
	return &dup
}

type displayCylinderDict struct {
	Type        string                 `json:"type"`
	Geometry    geometry.Cylinder      `json:"geometry"`
	Color       Color                  `json:"color"`
	DisplayMode DisplayMode            `json:"display_mode"`
	UserData    map[string]interface{} `json:"user_data,omitempty"`
}

func (c *Cylinder) MarshalJSON() ([]byte, error) {
	return json.Marshal(displayCylinderDict{
		Type: c.TypeName(), Geometry: c.geometry, Color: c.color,
		DisplayMode: c.displayMode, UserData: c.UserData,
	})
}

func (c *Cylinder) UnmarshalJSON(data []byte) error {
	var d displayCylinderDict
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	if err := checkType(d.Type, c.TypeName()); err != nil {
		return err
	}
	if d.Geometry.Radius == 0 {
		return errors.New("missing geometry in DisplayCylinder dictionary")
	}
	obj, err := NewCylinder(d.Geometry, &d.Color, d.DisplayMode)
	if err != nil {
		return err
	}
	obj.UserData = d.UserData
	*c = *obj
	return nil
}
