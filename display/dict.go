package display

import (
	"encoding/json"
	"fmt"
)

// objectTypes maps every dictionary type tag to its wrapper factory.
// The set is closed: a display document can only contain these types.
var objectTypes = map[string]func() Object{
	"DisplayPoint2D":       func() Object { return new(Point2D) },
	"DisplayLineSegment2D": func() Object { return new(LineSegment2D) },
	"DisplayPolyline2D":    func() Object { return new(Polyline2D) },
	"DisplayArc2D":         func() Object { return new(Arc2D) },
	"DisplayPoint3D":       func() Object { return new(Point3D) },
	"DisplayVector3D":      func() Object { return new(Vector3D) },
	"DisplayLineSegment3D": func() Object { return new(LineSegment3D) },
	"DisplayPolyline3D":    func() Object { return new(Polyline3D) },
	"DisplaySphere":        func() Object { return new(Sphere) },
	"DisplayCone":          func() Object { return new(Cone) },
	"DisplayCylinder":      func() Object { return new(Cylinder) },
}

// UnmarshalObject decodes any display object dictionary, dispatching
// on its type tag. It is the entry point for heterogeneous
// collections whose element types are only known at runtime.
func UnmarshalObject(data []byte) (Object, error) {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, err
	}
	factory, ok := objectTypes[probe.Type]
	if !ok {
		return nil, fmt.Errorf("unknown display object type %q", probe.Type)
	}
	obj := factory()
	if err := json.Unmarshal(data, obj); err != nil {
		return nil, err
	}
	return obj, nil
}
