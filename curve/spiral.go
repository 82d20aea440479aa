package curve

import (
	"fmt"
	"math"

	"github.com/lixenwraith/dispenser/vmath"
)

// SpiralConfig describes a rising helix whose radius narrows from bottom to top
// This is the swirl the machine traces when filling a cone
type SpiralConfig struct {
	Center      vmath.Vec3F
	RadiusStart float64
	RadiusEnd   float64
	HeightStart float64
	HeightEnd   float64
	Turns       float64
	Samples     int // Control points per full turn
}

// Spiral builds the helix as an open Catmull-Rom spline
func Spiral(cfg SpiralConfig) (*Spline, error) {
	if cfg.Turns <= 0 {
		return nil, fmt.Errorf("curve: spiral turns must be positive, got %v", cfg.Turns)
	}
	if cfg.Samples < 4 {
		cfg.Samples = 4
	}

	count := int(math.Ceil(cfg.Turns*float64(cfg.Samples))) + 1
	points := make([]vmath.Vec3F, count)
	for i := range points {
		f := float64(i) / float64(count-1)
		angle := f * cfg.Turns * 2 * math.Pi
		radius := vmath.Lerp(cfg.RadiusStart, cfg.RadiusEnd, f)
		points[i] = vmath.Vec3F{
			X: cfg.Center.X + radius*math.Cos(angle),
			Y: cfg.Center.Y + vmath.Lerp(cfg.HeightStart, cfg.HeightEnd, f),
			Z: cfg.Center.Z + radius*math.Sin(angle),
		}
	}
	return NewSpline(points)
}
