// Provides the geometry value types decorated by ladybug-display:
// points, vectors, lines, polylines and arcs in 2D and 3D, plus the
// sphere, cone and cylinder solids.
// Values are immutable by convention: transform operations return a
// new value and never mutate the receiver. Serialization follows the
// ladybug-geometry dictionary format so documents remain exchangeable
// with other tooling.
package geometry

import (
	"fmt"
	"math"
)

const twoPi = 2 * math.Pi

// checkType validates the "type" discriminant of a geometry dictionary.
func checkType(got, want string) error {
	if got != want {
		return fmt.Errorf("expected %s dictionary, got %q", want, got)
	}
	return nil
}

// normalizeAngle maps an angle in radians into [0, 2π).
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, twoPi)
	if a < 0 {
		a += twoPi
	}
	return a
}
