package config

import (
	"github.com/lixenwraith/dispenser/parameter"
)

const (
	defaultConfigPath = "~/.config/dispenser/config.toml"
	projectConfigName = "dispenser.toml"
	defaultLogLevel   = "debug"
	defaultLogDir     = parameter.LogDir
)

// Default returns a Config populated with the stock machine tuning
func Default() Config {
	return Config{
		Machine: Machine{
			OrbitSpeed:       parameter.OrbitSpeed,
			PourRate:         parameter.PourRate,
			Smoothing:        parameter.Smoothing,
			MaxSpawnsPerTick: parameter.MaxSpawnsPerTick,
			NozzleOffset:     [3]float64{parameter.NozzleOffsetX, parameter.NozzleOffsetY, parameter.NozzleOffsetZ},
		},
		Piece: Piece{
			FallMillis:   int(parameter.PieceFallDuration.Milliseconds()),
			RotateMillis: int(parameter.PieceRotateDuration.Milliseconds()),
			SpawnPitch:   parameter.PieceSpawnPitch,
			MaxPieces:    parameter.MaxPieces,
		},
		Stick: Stick{
			Angle:            parameter.StickAngle,
			ActivationMillis: int(parameter.StickActivationTime.Milliseconds()),
		},
		Display: Display{
			Color: true,
			Mouse: true,
		},
		Logging: Logging{
			Level: defaultLogLevel,
			Dir:   defaultLogDir,
		},
	}
}
