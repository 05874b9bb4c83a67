// Provides a minimal SVG document model: an element tree that can be
// built in memory, serialized to standalone SVG markup, and read back
// from a stream. Geometry is expressed in user units with the SVG
// convention of the Y axis pointing down.
package svg

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ViewBox defines the region of user space mapped onto the viewport.
type ViewBox struct {
	X, Y, W, H float64
}

// SVG is the root of a document.
type SVG struct {
	Width, Height float64
	ViewBox       *ViewBox // optional
	Elements      []Element
}

// New returns a document root with the given viewport size.
func New(width, height float64) *SVG {
	return &SVG{Width: width, Height: height}
}

// Add appends elements to the document.
func (s *SVG) Add(els ...Element) {
	s.Elements = append(s.Elements, els...)
}

// WriteTo writes the document as standalone SVG markup.
func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	p := &printer{w: w}
	p.printf(`<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s"`,
		ftoa(s.Width), ftoa(s.Height))
	if vb := s.ViewBox; vb != nil {
		p.printf(` viewBox="%s %s %s %s"`, ftoa(vb.X), ftoa(vb.Y), ftoa(vb.W), ftoa(vb.H))
	}
	p.printf(">\n")
	for _, el := range s.Elements {
		el.writeTo(p, 1)
	}
	p.printf("</svg>\n")
	return p.n, p.err
}

// String returns the document as standalone SVG markup.
func (s *SVG) String() string {
	var b strings.Builder
	s.WriteTo(&b)
	return b.String()
}

// printer tracks the byte count and first error across writes.
type printer struct {
	w   io.Writer
	n   int64
	err error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	n, err := fmt.Fprintf(p.w, format, args...)
	p.n += int64(n)
	p.err = err
}

func (p *printer) indent(depth int) {
	p.printf("%s", strings.Repeat("  ", depth))
}

// ftoa formats a user-unit value with 3 decimals of precision,
// trimming the trailing zeros a fixed format would keep.
func ftoa(f float64) string {
	s := strconv.FormatFloat(f, 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "-0" {
		s = "0"
	}
	return s
}

var attrEscaper = strings.NewReplacer(
	"&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

// escape rewrites a string for use in attribute values and text content.
func escape(s string) string { return attrEscaper.Replace(s) }
