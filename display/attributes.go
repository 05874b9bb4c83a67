package display

import (
	"encoding/json"
	"fmt"
	"strings"
)

// LineWidth is a stroke width in pixels, or the sentinel telling the
// viewer to pick its own default. The zero value is the sentinel.
type LineWidth struct {
	value float64
	set   bool
}

// NewLineWidth returns an explicit positive line width.
func NewLineWidth(v float64) (LineWidth, error) {
	v, err := FloatPositive(v, "line width")
	if err != nil {
		return LineWidth{}, err
	}
	return LineWidth{value: v, set: true}, nil
}

// DefaultLineWidth returns the viewer-default sentinel.
func DefaultLineWidth() LineWidth { return LineWidth{} }

// IsDefault reports whether the width is the viewer-default sentinel.
func (w LineWidth) IsDefault() bool { return !w.set }

// Value returns the explicit width and whether one is set.
func (w LineWidth) Value() (float64, bool) { return w.value, w.set }

// Or returns the explicit width, or def for the sentinel.
func (w LineWidth) Or(def float64) float64 {
	if w.set {
		return w.value
	}
	return def
}

type defaultDict struct {
	Type string `json:"type"`
}

func (w LineWidth) MarshalJSON() ([]byte, error) {
	if !w.set {
		return json.Marshal(defaultDict{Type: "Default"})
	}
	return json.Marshal(w.value)
}

func (w *LineWidth) UnmarshalJSON(data []byte) error {
	var v float64
	if err := json.Unmarshal(data, &v); err == nil {
		lw, err := NewLineWidth(v)
		if err != nil {
			return err
		}
		*w = lw
		return nil
	}
	var d defaultDict
	if err := json.Unmarshal(data, &d); err != nil {
		return fmt.Errorf("line width must be a number or the Default sentinel")
	}
	if err := checkType(d.Type, "Default"); err != nil {
		return err
	}
	*w = LineWidth{}
	return nil
}

// LineType describes the stroke pattern of line-like display geometry.
type LineType string

const (
	Continuous LineType = "Continuous"
	Dashed     LineType = "Dashed"
	Dotted     LineType = "Dotted"
	DashDot    LineType = "DashDot"
)

var lineTypes = [...]LineType{Continuous, Dashed, Dotted, DashDot}

// ParseLineType canonicalizes a case-insensitive line type name.
func ParseLineType(s string) (LineType, error) {
	for _, t := range lineTypes {
		if strings.EqualFold(s, string(t)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("line type %q is not recognized, choose from: %s",
		s, nameList(lineTypes[:]))
}

func (t *LineType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseLineType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// DisplayMode describes how a viewer should shade solid display geometry.
type DisplayMode string

const (
	Surface          DisplayMode = "Surface"
	SurfaceWithEdges DisplayMode = "SurfaceWithEdges"
	Wireframe        DisplayMode = "Wireframe"
	Points           DisplayMode = "Points"
)

var displayModes = [...]DisplayMode{Surface, SurfaceWithEdges, Wireframe, Points}

// ParseDisplayMode canonicalizes a case-insensitive display mode name.
func ParseDisplayMode(s string) (DisplayMode, error) {
	for _, m := range displayModes {
		if strings.EqualFold(s, string(m)) {
			return m, nil
		}
	}
	return "", fmt.Errorf("display mode %q is not recognized, choose from: %s",
		s, nameList(displayModes[:]))
}

func (m *DisplayMode) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDisplayMode(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func nameList[T ~string](names []T) string {
	chunks := make([]string, len(names))
	for i, n := range names {
		chunks[i] = string(n)
	}
	return strings.Join(chunks, ", ")
}

// colorStyle carries the display color every wrapper kind shares.
type colorStyle struct {
	color Color
}

// Color returns the display color.
func (s *colorStyle) Color() Color { return s.color }

// SetColor replaces the display color; nil restores the opaque black
// default.
func (s *colorStyle) SetColor(c *Color) { s.color = colorOrDefault(c) }

// lineStyle carries the stroke attributes of line-like wrappers.
type lineStyle struct {
	lineWidth LineWidth
	lineType  LineType
}

// LineWidth returns the stroke width, which may be the default sentinel.
func (s *lineStyle) LineWidth() LineWidth { return s.lineWidth }

// SetLineWidth replaces the stroke width.
func (s *lineStyle) SetLineWidth(w LineWidth) { s.lineWidth = w }

// LineType returns the stroke pattern.
func (s *lineStyle) LineType() LineType { return s.lineType }

// SetLineType replaces the stroke pattern, canonicalizing its casing.
func (s *lineStyle) SetLineType(t LineType) error {
	parsed, err := ParseLineType(string(t))
	if err != nil {
		return err
	}
	s.lineType = parsed
	return nil
}

// modeStyle carries the display mode of solid wrappers.
type modeStyle struct {
	displayMode DisplayMode
}

// DisplayMode returns the shading mode.
func (s *modeStyle) DisplayMode() DisplayMode { return s.displayMode }

// SetDisplayMode replaces the shading mode, canonicalizing its casing.
func (s *modeStyle) SetDisplayMode(m DisplayMode) error {
	parsed, err := ParseDisplayMode(string(m))
	if err != nil {
		return err
	}
	s.displayMode = parsed
	return nil
}

// newLineStyle validates and canonicalizes the construction arguments
// of line-like wrappers.
func newLineStyle(width LineWidth, ltype LineType) (lineStyle, error) {
	if ltype == "" {
		ltype = Continuous
	}
	parsed, err := ParseLineType(string(ltype))
	if err != nil {
		return lineStyle{}, err
	}
	return lineStyle{lineWidth: width, lineType: parsed}, nil
}

// newModeStyle validates and canonicalizes the construction arguments
// of solid wrappers.
func newModeStyle(mode DisplayMode) (modeStyle, error) {
	if mode == "" {
		mode = Surface
	}
	parsed, err := ParseDisplayMode(string(mode))
	if err != nil {
		return modeStyle{}, err
	}
	return modeStyle{displayMode: parsed}, nil
}
