package svg

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html/charset"
)

// ErrorMode determines if the reader ignores, errors out, or logs a
// warning when it encounters content it does not handle.
type ErrorMode uint8

const (
	// IgnoreErrorMode skips unsupported content.
	IgnoreErrorMode ErrorMode = iota
	// WarnErrorMode logs a warning for unsupported content.
	WarnErrorMode
	// StrictErrorMode fails on unsupported content.
	StrictErrorMode
)

var errParamMismatch = errors.New("param mismatch")

// Read decodes an SVG document from the given io.Reader.
// It supports the element subset this package writes; errMode
// determines the treatment of anything outside that subset.
func Read(stream io.Reader, errMode ErrorMode) (*SVG, error) {
	c := &cursor{doc: &SVG{}, errorMode: errMode}
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	seenTag := false
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				if !seenTag {
					return nil, errors.New("invalid svg document")
				}
				break
			}
			return c.doc, err
		}
		switch se := t.(type) {
		case xml.StartElement:
			seenTag = true
			if err := c.readStartElement(se); err != nil {
				return c.doc, err
			}
		case xml.EndElement:
			c.readEndElement(se)
		case xml.CharData:
			if c.text != nil {
				c.text.Content += string(se)
			}
		}
	}
	return c.doc, nil
}

// ReadFile decodes the SVG document in the named file.
func ReadFile(path string, errMode ErrorMode) (*SVG, error) {
	fin, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fin.Close()
	return Read(fin, errMode)
}

// cursor tracks the open container elements while reading.
type cursor struct {
	doc       *SVG
	groups    []*Group // open groups, innermost last
	text      *Text    // open text element
	errorMode ErrorMode
}

// add appends an element to the innermost open container.
func (c *cursor) add(el Element) {
	if n := len(c.groups); n > 0 {
		c.groups[n-1].Add(el)
		return
	}
	c.doc.Add(el)
}

func (c *cursor) handleError(msg string) error {
	if c.errorMode == StrictErrorMode {
		return errors.New(msg)
	}
	if c.errorMode == WarnErrorMode {
		log.Println(msg)
	}
	return nil
}

func (c *cursor) readStartElement(se xml.StartElement) error {
	rf, ok := readFuncs[se.Name.Local]
	if !ok {
		return c.handleError("cannot process svg element " + se.Name.Local)
	}
	return rf(c, se.Attr)
}

func (c *cursor) readEndElement(se xml.EndElement) {
	switch se.Name.Local {
	case "g":
		if n := len(c.groups); n > 0 {
			c.groups = c.groups[:n-1]
		}
	case "text":
		if c.text != nil {
			c.add(*c.text)
			c.text = nil
		}
	}
}

type readFunc func(c *cursor, attrs []xml.Attr) error

var readFuncs = map[string]readFunc{
	"svg":      svgF,
	"g":        gF,
	"circle":   circleF,
	"ellipse":  ellipseF,
	"line":     lineF,
	"polyline": polylineF,
	"polygon":  polygonF,
	"rect":     rectF,
	"path":     pathF,
	"text":     textF,
}

func svgF(c *cursor, attrs []xml.Attr) error {
	for _, attr := range attrs {
		var err error
		switch attr.Name.Local {
		case "width":
			c.doc.Width, err = parseBasicFloat(attr.Value)
		case "height":
			c.doc.Height, err = parseBasicFloat(attr.Value)
		case "viewBox":
			points, errPts := parsePoints(attr.Value)
			if errPts != nil {
				return errPts
			}
			if len(points) != 4 {
				return errParamMismatch
			}
			c.doc.ViewBox = &ViewBox{X: points[0], Y: points[1], W: points[2], H: points[3]}
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func gF(c *cursor, attrs []xml.Attr) error {
	g := &Group{}
	for _, attr := range attrs {
		if attr.Name.Local == "id" {
			g.ID = attr.Value
		}
	}
	if err := parseStyle(&g.Style, attrs); err != nil {
		return err
	}
	// Groups register before their children arrive, so add the pointer
	// target once and mutate through the stack until the end tag.
	if n := len(c.groups); n > 0 {
		c.groups[n-1].Children = append(c.groups[n-1].Children, g)
	} else {
		c.doc.Elements = append(c.doc.Elements, g)
	}
	c.groups = append(c.groups, g)
	return nil
}

func circleF(c *cursor, attrs []xml.Attr) error {
	var el Circle
	for _, attr := range attrs {
		var err error
		switch attr.Name.Local {
		case "cx":
			el.CX, err = parseBasicFloat(attr.Value)
		case "cy":
			el.CY, err = parseBasicFloat(attr.Value)
		case "r":
			el.R, err = parseBasicFloat(attr.Value)
		}
		if err != nil {
			return err
		}
	}
	if err := parseStyle(&el.Style, attrs); err != nil {
		return err
	}
	c.add(el)
	return nil
}

func ellipseF(c *cursor, attrs []xml.Attr) error {
	var el Ellipse
	for _, attr := range attrs {
		var err error
		switch attr.Name.Local {
		case "cx":
			el.CX, err = parseBasicFloat(attr.Value)
		case "cy":
			el.CY, err = parseBasicFloat(attr.Value)
		case "rx":
			el.RX, err = parseBasicFloat(attr.Value)
		case "ry":
			el.RY, err = parseBasicFloat(attr.Value)
		}
		if err != nil {
			return err
		}
	}
	if err := parseStyle(&el.Style, attrs); err != nil {
		return err
	}
	c.add(el)
	return nil
}

func lineF(c *cursor, attrs []xml.Attr) error {
	var el Line
	for _, attr := range attrs {
		var err error
		switch attr.Name.Local {
		case "x1":
			el.X1, err = parseBasicFloat(attr.Value)
		case "y1":
			el.Y1, err = parseBasicFloat(attr.Value)
		case "x2":
			el.X2, err = parseBasicFloat(attr.Value)
		case "y2":
			el.Y2, err = parseBasicFloat(attr.Value)
		}
		if err != nil {
			return err
		}
	}
	if err := parseStyle(&el.Style, attrs); err != nil {
		return err
	}
	c.add(el)
	return nil
}

func polylineF(c *cursor, attrs []xml.Attr) error {
	pts, style, err := pointListAttrs(attrs)
	if err != nil {
		return err
	}
	c.add(Polyline{Points: pts, Style: style})
	return nil
}

func polygonF(c *cursor, attrs []xml.Attr) error {
	pts, style, err := pointListAttrs(attrs)
	if err != nil {
		return err
	}
	c.add(Polygon{Points: pts, Style: style})
	return nil
}

func pointListAttrs(attrs []xml.Attr) ([]Point, Style, error) {
	var pts []Point
	var style Style
	for _, attr := range attrs {
		if attr.Name.Local != "points" {
			continue
		}
		coords, err := parsePoints(attr.Value)
		if err != nil {
			return nil, style, err
		}
		if len(coords)%2 != 0 {
			return nil, style, errors.New("polygon has odd number of points")
		}
		pts = make([]Point, len(coords)/2)
		for i := range pts {
			pts[i] = Point{X: coords[2*i], Y: coords[2*i+1]}
		}
	}
	err := parseStyle(&style, attrs)
	return pts, style, err
}

func rectF(c *cursor, attrs []xml.Attr) error {
	var el Rect
	for _, attr := range attrs {
		var err error
		switch attr.Name.Local {
		case "x":
			el.X, err = parseBasicFloat(attr.Value)
		case "y":
			el.Y, err = parseBasicFloat(attr.Value)
		case "width":
			el.W, err = parseBasicFloat(attr.Value)
		case "height":
			el.H, err = parseBasicFloat(attr.Value)
		case "rx":
			el.RX, err = parseBasicFloat(attr.Value)
		case "ry":
			el.RY, err = parseBasicFloat(attr.Value)
		}
		if err != nil {
			return err
		}
	}
	if err := parseStyle(&el.Style, attrs); err != nil {
		return err
	}
	c.add(el)
	return nil
}

func pathF(c *cursor, attrs []xml.Attr) error {
	var el Path
	for _, attr := range attrs {
		if attr.Name.Local != "d" {
			continue
		}
		cmds, err := parsePathData(attr.Value)
		if err != nil {
			return c.handleError("cannot process path data: " + err.Error())
		}
		el.Commands = cmds
	}
	if err := parseStyle(&el.Style, attrs); err != nil {
		return err
	}
	c.add(el)
	return nil
}

func textF(c *cursor, attrs []xml.Attr) error {
	el := &Text{}
	for _, attr := range attrs {
		var err error
		switch attr.Name.Local {
		case "x":
			el.X, err = parseBasicFloat(attr.Value)
		case "y":
			el.Y, err = parseBasicFloat(attr.Value)
		case "font-size":
			el.FontSize, err = parseBasicFloat(attr.Value)
		case "font-family":
			el.FontFamily = attr.Value
		case "text-anchor":
			el.TextAnchor = attr.Value
		}
		if err != nil {
			return err
		}
	}
	if err := parseStyle(&el.Style, attrs); err != nil {
		return err
	}
	c.text = el
	return nil
}

// parseStyle reads the recognized presentation attributes.
// Unrecognized attributes are not an error.
func parseStyle(style *Style, attrs []xml.Attr) error {
	for _, attr := range attrs {
		var err error
		switch attr.Name.Local {
		case "fill":
			style.Fill = attr.Value
		case "stroke":
			style.Stroke = attr.Value
		case "stroke-width":
			style.StrokeWidth, err = parseBasicFloat(attr.Value)
		case "stroke-dasharray":
			style.StrokeDasharray = attr.Value
		case "opacity":
			style.Opacity, err = parseOpacity(attr.Value)
		case "fill-opacity":
			style.FillOpacity, err = parseOpacity(attr.Value)
		case "stroke-opacity":
			style.StrokeOpacity, err = parseOpacity(attr.Value)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func parseOpacity(v string) (*float64, error) {
	f, err := parseBasicFloat(v)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func parseBasicFloat(v string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(v), "px"), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", v)
	}
	return f, nil
}

// splitOnCommaOrSpace returns a list of strings after splitting the
// input on comma and whitespace delimiters.
func splitOnCommaOrSpace(s string) []string {
	return strings.FieldsFunc(s,
		func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\n'
		})
}

func parsePoints(s string) ([]float64, error) {
	fields := splitOnCommaOrSpace(s)
	points := make([]float64, len(fields))
	for i, f := range fields {
		v, err := parseBasicFloat(f)
		if err != nil {
			return nil, err
		}
		points[i] = v
	}
	return points, nil
}

// parsePathData compiles a d attribute into a command list. Only the
// absolute commands this package writes (M, L, C, A, Z) are supported.
func parsePathData(d string) ([]Command, error) {
	toks := tokenizePathData(d)
	var cmds []Command
	var cur byte
	i := 0
	next := func() (float64, error) {
		if i >= len(toks) {
			return 0, errors.New("unexpected end of path data")
		}
		v, err := parseBasicFloat(toks[i])
		i++
		return v, err
	}
	take := func(n int) ([]float64, error) {
		vals := make([]float64, n)
		for j := range vals {
			v, err := next()
			if err != nil {
				return nil, err
			}
			vals[j] = v
		}
		return vals, nil
	}
	for i < len(toks) {
		tok := toks[i]
		if len(tok) == 1 && isPathCommand(tok[0]) {
			cur = tok[0]
			i++
			if cur == 'Z' || cur == 'z' {
				cmds = append(cmds, ClosePath{})
				cur = 0
			}
			continue
		}
		switch cur {
		case 'M':
			vals, err := take(2)
			if err != nil {
				return nil, err
			}
			cmds = append(cmds, MoveTo{X: vals[0], Y: vals[1]})
			cur = 'L' // subsequent pairs are implicit line-tos
		case 'L':
			vals, err := take(2)
			if err != nil {
				return nil, err
			}
			cmds = append(cmds, LineTo{X: vals[0], Y: vals[1]})
		case 'C':
			vals, err := take(6)
			if err != nil {
				return nil, err
			}
			cmds = append(cmds, CubicTo{
				X1: vals[0], Y1: vals[1], X2: vals[2], Y2: vals[3], X: vals[4], Y: vals[5],
			})
		case 'A':
			vals, err := take(7)
			if err != nil {
				return nil, err
			}
			cmds = append(cmds, ArcTo{
				RX: vals[0], RY: vals[1], Rotation: vals[2],
				LargeArc: vals[3] != 0, Sweep: vals[4] != 0,
				X: vals[5], Y: vals[6],
			})
		default:
			return nil, fmt.Errorf("unsupported path command %q", string(cur))
		}
	}
	return cmds, nil
}

func isPathCommand(b byte) bool {
	switch b {
	case 'M', 'L', 'C', 'A', 'Z', 'z', 'm', 'l', 'c', 'a', 'Q', 'q', 'S', 's', 'T', 't', 'H', 'h', 'V', 'v':
		return true
	}
	return false
}

func tokenizePathData(d string) []string {
	var b strings.Builder
	for i := 0; i < len(d); i++ {
		ch := d[i]
		if isPathCommand(ch) {
			b.WriteByte(' ')
			b.WriteByte(ch)
			b.WriteByte(' ')
		} else {
			b.WriteByte(ch)
		}
	}
	return splitOnCommaOrSpace(b.String())
}
