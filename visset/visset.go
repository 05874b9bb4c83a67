// Groups display objects into named visualization sets, the document
// format the command line tools read and write. A set holds context
// geometry layers; each layer carries the objects a viewer draws
// together.
package visset

import (
	"encoding/json"
	"fmt"

	"github.com/chriswmackey/ladybug-display/display"
	"github.com/chriswmackey/ladybug-display/svg"
)

// svgMargin keeps point markers and strokes at the drawing edge inside
// the fitted view box.
const svgMargin = 10

// checkIdentifier validates the machine-readable name of a container.
func checkIdentifier(id, kind string) error {
	if id == "" {
		return fmt.Errorf("%s identifier must not be empty", kind)
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
		default:
			return fmt.Errorf("%s identifier %q contains the illegal character %q", kind, id, r)
		}
	}
	return nil
}

// checkType validates the "type" discriminant of a dictionary.
func checkType(got, want string) error {
	if got != want {
		return fmt.Errorf("expected %s dictionary, got %q", want, got)
	}
	return nil
}

// ContextGeometry is a named layer of display objects drawn together.
type ContextGeometry struct {
	identifier  string
	displayName string
	geometry    []display.Object
	hidden      bool
}

// NewContextGeometry returns a layer with the given identifier and
// display objects.
func NewContextGeometry(identifier string, geometry []display.Object) (*ContextGeometry, error) {
	if err := checkIdentifier(identifier, "context geometry"); err != nil {
		return nil, err
	}
	return &ContextGeometry{identifier: identifier, geometry: geometry}, nil
}

// Identifier returns the machine-readable name of the layer.
func (c *ContextGeometry) Identifier() string { return c.identifier }

// DisplayName returns the human-readable name, falling back to the
// identifier when none is set.
func (c *ContextGeometry) DisplayName() string {
	if c.displayName == "" {
		return c.identifier
	}
	return c.displayName
}

// SetDisplayName replaces the human-readable name. An empty name
// restores the identifier fallback.
func (c *ContextGeometry) SetDisplayName(name string) { c.displayName = name }

// Geometry returns the display objects of the layer.
func (c *ContextGeometry) Geometry() []display.Object { return c.geometry }

// Add appends display objects to the layer.
func (c *ContextGeometry) Add(objs ...display.Object) {
	c.geometry = append(c.geometry, objs...)
}

// Hidden reports whether a viewer should start with the layer off.
func (c *ContextGeometry) Hidden() bool { return c.hidden }

// SetHidden toggles the initial layer visibility.
func (c *ContextGeometry) SetHidden(hidden bool) { c.hidden = hidden }

// Duplicate returns an independent copy with duplicated objects.
func (c *ContextGeometry) Duplicate() *ContextGeometry {
	out := &ContextGeometry{
		identifier:  c.identifier,
		displayName: c.displayName,
		hidden:      c.hidden,
		geometry:    make([]display.Object, len(c.geometry)),
	}
	for i, obj := range c.geometry {
		out.geometry[i] = obj.Duplicate()
	}
	return out
}

// ToSVG projects every object of the layer into one SVG group.
func (c *ContextGeometry) ToSVG() svg.Element {
	g := svg.Group{ID: c.identifier}
	for _, obj := range c.geometry {
		g.Add(obj.ToSVG())
	}
	return g
}

type contextGeometryDict struct {
	Type        string            `json:"type"`
	Identifier  string            `json:"identifier"`
	DisplayName string            `json:"display_name,omitempty"`
	Geometry    []json.RawMessage `json:"geometry"`
	Hidden      bool              `json:"hidden,omitempty"`
}

func (c *ContextGeometry) MarshalJSON() ([]byte, error) {
	raw := make([]json.RawMessage, len(c.geometry))
	for i, obj := range c.geometry {
		b, err := json.Marshal(obj)
		if err != nil {
			return nil, err
		}
		raw[i] = b
	}
	return json.Marshal(contextGeometryDict{
		Type:        "ContextGeometry",
		Identifier:  c.identifier,
		DisplayName: c.displayName,
		Geometry:    raw,
		Hidden:      c.hidden,
	})
}

func (c *ContextGeometry) UnmarshalJSON(data []byte) error {
	var d contextGeometryDict
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	if err := checkType(d.Type, "ContextGeometry"); err != nil {
		return err
	}
	if err := checkIdentifier(d.Identifier, "context geometry"); err != nil {
		return err
	}
	geometry := make([]display.Object, len(d.Geometry))
	for i, raw := range d.Geometry {
		obj, err := display.UnmarshalObject(raw)
		if err != nil {
			return fmt.Errorf("context geometry %q: %w", d.Identifier, err)
		}
		geometry[i] = obj
	}
	*c = ContextGeometry{
		identifier:  d.Identifier,
		displayName: d.DisplayName,
		geometry:    geometry,
		hidden:      d.Hidden,
	}
	return nil
}

// VisualizationSet is a complete visualizable document: an identified
// collection of context geometry layers.
type VisualizationSet struct {
	identifier  string
	displayName string
	contexts    []*ContextGeometry
	userData    map[string]interface{}
}

// New returns a visualization set with the given identifier and layers.
func New(identifier string, contexts []*ContextGeometry) (*VisualizationSet, error) {
	if err := checkIdentifier(identifier, "visualization set"); err != nil {
		return nil, err
	}
	return &VisualizationSet{identifier: identifier, contexts: contexts}, nil
}

// Identifier returns the machine-readable name of the set.
func (vs *VisualizationSet) Identifier() string { return vs.identifier }

// DisplayName returns the human-readable name, falling back to the
// identifier when none is set.
func (vs *VisualizationSet) DisplayName() string {
	if vs.displayName == "" {
		return vs.identifier
	}
	return vs.displayName
}

// SetDisplayName replaces the human-readable name. An empty name
// restores the identifier fallback.
func (vs *VisualizationSet) SetDisplayName(name string) { vs.displayName = name }

// Contexts returns the context geometry layers of the set.
func (vs *VisualizationSet) Contexts() []*ContextGeometry { return vs.contexts }

// Add appends layers to the set.
func (vs *VisualizationSet) Add(contexts ...*ContextGeometry) {
	vs.contexts = append(vs.contexts, contexts...)
}

// UserData returns the free-form annotations attached to the set.
func (vs *VisualizationSet) UserData() map[string]interface{} { return vs.userData }

// SetUserData replaces the free-form annotations.
func (vs *VisualizationSet) SetUserData(m map[string]interface{}) { vs.userData = m }

// Duplicate returns an independent copy with duplicated layers.
func (vs *VisualizationSet) Duplicate() *VisualizationSet {
	out := &VisualizationSet{
		identifier:  vs.identifier,
		displayName: vs.displayName,
		contexts:    make([]*ContextGeometry, len(vs.contexts)),
	}
	for i, c := range vs.contexts {
		out.contexts[i] = c.Duplicate()
	}
	if vs.userData != nil {
		out.userData = make(map[string]interface{}, len(vs.userData))
		for k, v := range vs.userData {
			out.userData[k] = v
		}
	}
	return out
}

// ToSVG assembles the visible layers into one SVG document of the
// given viewport size, fitting the view box to the drawn extents.
func (vs *VisualizationSet) ToSVG(width, height float64) *svg.SVG {
	doc := svg.New(width, height)
	for _, c := range vs.contexts {
		if c.Hidden() {
			continue
		}
		doc.Add(c.ToSVG())
	}
	doc.ViewBox = svg.BoundsOf(doc.Elements...).Pad(svgMargin).ViewBox()
	return doc
}

type visualizationSetDict struct {
	Type        string                 `json:"type"`
	Identifier  string                 `json:"identifier"`
	DisplayName string                 `json:"display_name,omitempty"`
	Geometry    []*ContextGeometry     `json:"geometry"`
	UserData    map[string]interface{} `json:"user_data,omitempty"`
}

func (vs *VisualizationSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(visualizationSetDict{
		Type:        "VisualizationSet",
		Identifier:  vs.identifier,
		DisplayName: vs.displayName,
		Geometry:    vs.contexts,
		UserData:    vs.userData,
	})
}

func (vs *VisualizationSet) UnmarshalJSON(data []byte) error {
	var d visualizationSetDict
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	if err := checkType(d.Type, "VisualizationSet"); err != nil {
		return err
	}
	if err := checkIdentifier(d.Identifier, "visualization set"); err != nil {
		return err
	}
	for i, c := range d.Geometry {
		if c == nil {
			return fmt.Errorf("geometry entry %d of visualization set %q is null", i, d.Identifier)
		}
	}
	*vs = VisualizationSet{
		identifier:  d.Identifier,
		displayName: d.DisplayName,
		contexts:    d.Geometry,
		userData:    d.UserData,
	}
	return nil
}
