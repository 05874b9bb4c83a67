// Provides display-attribute decoration of geometry values.
// Each wrapper binds one geometry value to the attributes a viewer
// needs to draw it (color, line styling or display mode), serializes
// to a stable dictionary format, and projects onto SVG.
// Wrappers own their geometry exclusively; transform operations
// replace the wrapped value and leave the attributes untouched.
package display

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/chriswmackey/ladybug-display/svg"
)

// Object is a display-decorated geometry value. The concrete types are
// the display wrappers of this package; the set is closed.
type Object interface {
	json.Marshaler
	// TypeName returns the dictionary type tag, such as "DisplayCylinder".
	TypeName() string
	// ToSVG projects the object onto the drawing plane and applies its
	// display attributes to the resulting element.
	ToSVG() svg.Element
	// Duplicate returns an independent copy.
	Duplicate() Object
}

// FloatPositive validates a physically-meaningful measurement.
// It returns the value when strictly positive, and otherwise an error
// naming the offending field.
func FloatPositive(value float64, name string) (float64, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 {
		return 0, fmt.Errorf("%s must be a positive number, got %v", name, value)
	}
	return value, nil
}

// checkType validates the "type" discriminant of a display dictionary.
func checkType(got, want string) error {
	if got != want {
		return fmt.Errorf("expected %s dictionary, got %q", want, got)
	}
	return nil
}

// copyUserData returns a per-key copy of a user data map.
func copyUserData(m map[string]interface{}) map[string]interface{} {
	if m == nil {
		return nil
	}
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
