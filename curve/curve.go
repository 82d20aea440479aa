// Package curve evaluates the parametric path the dispenser follows around the cone
//
// A Provider maps a normalized parameter t in [0,1] to a world position and a
// tangent direction. Values outside [0,1] are left to the provider; Spline clamps.
package curve

import (
	"errors"

	"github.com/lixenwraith/dispenser/vmath"
)

// ErrTooFewPoints is returned when a spline is built from fewer than two control points
var ErrTooFewPoints = errors.New("curve: at least two control points required")

// Provider is the curve capability consumed by the dispenser and piece placement
type Provider interface {
	// Position returns the point on the curve at t
	Position(t float64) vmath.Vec3F
	// Tangent returns the direction of travel at t, not necessarily normalized
	Tangent(t float64) vmath.Vec3F
}
