package display

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is an RGBA display color. The zero value is transparent black;
// use NewColor or DefaultColor for the opaque default.
type Color struct {
	R, G, B, A uint8
}

// DefaultColor is the opaque black every attribute falls back to.
func DefaultColor() Color { return Color{A: 255} }

// NewColor returns an opaque color from RGB components.
func NewColor(r, g, b uint8) Color { return Color{R: r, G: g, B: b, A: 255} }

// NewColorA returns a color from RGBA components.
func NewColorA(r, g, b, a uint8) Color { return Color{R: r, G: g, B: b, A: a} }

// colorOrDefault coerces a nil color to the opaque black default.
func colorOrDefault(c *Color) Color {
	if c == nil {
		return DefaultColor()
	}
	return *c
}

// RGB returns the color in the rgb(r,g,b) notation SVG accepts.
func (c Color) RGB() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

// Hex returns the color in #RRGGBB notation.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// ColorFromString resolves an SVG color specification: a named color,
// #RGB or #RRGGBB hex notation, or rgb(r,g,b).
func ColorFromString(s string) (Color, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "#"):
		return colorFromHex(s)
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		return colorFromRGB(s[len("rgb(") : len(s)-1])
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return Color{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}
	return Color{}, fmt.Errorf("unknown color %q", s)
}

func colorFromHex(s string) (Color, error) {
	hex := s[1:]
	var r, g, b uint64
	var err error
	switch len(hex) {
	case 3:
		r, g, b, err = parseHexParts(hex[0:1]+hex[0:1], hex[1:2]+hex[1:2], hex[2:3]+hex[2:3])
	case 6:
		r, g, b, err = parseHexParts(hex[0:2], hex[2:4], hex[4:6])
	default:
		return Color{}, fmt.Errorf("invalid hex color %q", s)
	}
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q", s)
	}
	return NewColor(uint8(r), uint8(g), uint8(b)), nil
}

func parseHexParts(rs, gs, bs string) (r, g, b uint64, err error) {
	if r, err = strconv.ParseUint(rs, 16, 8); err != nil {
		return
	}
	if g, err = strconv.ParseUint(gs, 16, 8); err != nil {
		return
	}
	b, err = strconv.ParseUint(bs, 16, 8)
	return
}

func colorFromRGB(args string) (Color, error) {
	parts := strings.Split(args, ",")
	if len(parts) != 3 {
		return Color{}, fmt.Errorf("invalid rgb() color with %d components", len(parts))
	}
	var vals [3]uint8
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid rgb() component %q", p)
		}
		vals[i] = uint8(v)
	}
	return NewColor(vals[0], vals[1], vals[2]), nil
}

type colorDict struct {
	Type string `json:"type"`
	R    uint8  `json:"r"`
	G    uint8  `json:"g"`
	B    uint8  `json:"b"`
	A    uint8  `json:"a"`
}

func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(colorDict{Type: "Color", R: c.R, G: c.G, B: c.B, A: c.A})
}

func (c *Color) UnmarshalJSON(data []byte) error {
	// Alpha is optional in older documents and defaults to opaque.
	d := colorDict{A: 255}
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	if err := checkType(d.Type, "Color"); err != nil {
		return err
	}
	*c = Color{R: d.R, G: d.G, B: d.B, A: d.A}
	return nil
}
