package dispense

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/lixenwraith/dispenser/parameter"
	"github.com/lixenwraith/dispenser/vmath"
)

// Config tunes the controller
type Config struct {
	OrbitSpeed       float64     // Progress per second
	PourRate         float64     // Spawns per second
	Smoothing        float64     // Rig follow rate k
	MaxSpawnsPerTick int         // Catch-up bound per tick
	NozzleOffset     vmath.Vec3F // Nozzle position relative to the rig
	Resume           bool        // Start a new session at the progress a cancelled one reached
}

// DefaultConfig returns the stock machine tuning
func DefaultConfig() Config {
	return Config{
		OrbitSpeed:       parameter.OrbitSpeed,
		PourRate:         parameter.PourRate,
		Smoothing:        parameter.Smoothing,
		MaxSpawnsPerTick: parameter.MaxSpawnsPerTick,
		NozzleOffset: vmath.Vec3F{
			X: parameter.NozzleOffsetX,
			Y: parameter.NozzleOffsetY,
			Z: parameter.NozzleOffsetZ,
		},
	}
}

// Validate ensures the configuration is usable
func (c Config) Validate() error {
	if !positiveFinite(c.OrbitSpeed) {
		return fmt.Errorf("orbit speed must be positive and finite, got %v", c.OrbitSpeed)
	}
	if !positiveFinite(c.PourRate) {
		return fmt.Errorf("pour rate must be positive and finite, got %v", c.PourRate)
	}
	if !positiveFinite(c.Smoothing) {
		return fmt.Errorf("smoothing must be positive and finite, got %v", c.Smoothing)
	}
	if c.MaxSpawnsPerTick < 1 {
		return errors.New("max spawns per tick must be at least 1")
	}
	return nil
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// SpawnInterval is the time between consecutive spawns
func (c Config) SpawnInterval() time.Duration {
	return time.Duration(float64(time.Second) / c.PourRate)
}
