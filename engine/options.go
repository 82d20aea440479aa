package engine

import (
	"log/slog"
	"time"

	"github.com/lixenwraith/dispenser/animate"
	"github.com/lixenwraith/dispenser/audio"
	"github.com/lixenwraith/dispenser/curve"
	"github.com/lixenwraith/dispenser/dispense"
	"github.com/lixenwraith/dispenser/flavor"
	"github.com/lixenwraith/dispenser/parameter"
	"github.com/lixenwraith/dispenser/vmath"
)

// pathSamples is how many points of the pour curve are drawn
const pathSamples = 160

// Options assembles a game
type Options struct {
	Dispense   dispense.Config
	Pieces     animate.PieceConfig
	StickAngle float64
	StickTime  time.Duration
	Swirl      curve.SpiralConfig
	Home       vmath.Vec3F

	Registry *flavor.Registry
	Sound    *audio.SoundManager // Optional
	Logger   *slog.Logger
}

// DefaultOptions returns the stock machine, cone and swirl
func DefaultOptions() Options {
	return Options{
		Dispense:   dispense.DefaultConfig(),
		Pieces:     animate.DefaultPieceConfig(),
		StickAngle: parameter.StickAngle,
		StickTime:  parameter.StickActivationTime,
		Swirl:      DefaultSwirl(),
		Home: vmath.Vec3F{
			X: parameter.MachineHomeX,
			Y: parameter.MachineHeight,
			Z: parameter.MachineHomeZ,
		},
		Registry: flavor.DefaultRegistry(),
	}
}

// DefaultSwirl is the spiral that fills the stock cone from rim to tip
func DefaultSwirl() curve.SpiralConfig {
	return curve.SpiralConfig{
		Center:      vmath.Vec3F{Y: parameter.ConeRimHeight},
		RadiusStart: parameter.ConeRadius,
		RadiusEnd:   parameter.ConeTipRadius,
		HeightStart: 0,
		HeightEnd:   parameter.SwirlHeight,
		Turns:       parameter.SwirlTurns,
		Samples:     parameter.SwirlSamples,
	}
}
