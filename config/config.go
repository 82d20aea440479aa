package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/dispenser/animate"
	"github.com/lixenwraith/dispenser/dispense"
	"github.com/lixenwraith/dispenser/vmath"
)

//go:embed sample_config.toml
var sampleConfig string

// EnvPrefix prefixes every environment override
const EnvPrefix = "DISPENSER_"

// Machine tunes the pour controller
type Machine struct {
	OrbitSpeed       float64    `toml:"orbit_speed" env:"ORBIT_SPEED"`
	PourRate         float64    `toml:"pour_rate" env:"POUR_RATE"`
	Smoothing        float64    `toml:"smoothing" env:"SMOOTHING"`
	MaxSpawnsPerTick int        `toml:"max_spawns_per_tick" env:"MAX_SPAWNS_PER_TICK"`
	NozzleOffset     [3]float64 `toml:"nozzle_offset"`
	Resume           bool       `toml:"resume" env:"RESUME"`
}

// Piece tunes the falling piece animation
type Piece struct {
	FallMillis   int     `toml:"fall_ms" env:"FALL_MS"`
	RotateMillis int     `toml:"rotate_ms" env:"ROTATE_MS"`
	SpawnPitch   float64 `toml:"spawn_pitch"`
	MaxPieces    int     `toml:"max_pieces" env:"MAX_PIECES"`
}

// Stick tunes the flavor lever animation
type Stick struct {
	Angle            float64 `toml:"angle" env:"ANGLE"`
	ActivationMillis int     `toml:"activation_ms" env:"ACTIVATION_MS"`
}

// Display contains terminal presentation settings
type Display struct {
	Color bool `toml:"color" env:"COLOR"`
	Mouse bool `toml:"mouse" env:"MOUSE"`
	Mute  bool `toml:"mute" env:"MUTE"`
}

// Logging contains configuration for debug log output
type Logging struct {
	Debug bool   `toml:"debug" env:"DEBUG"`
	Level string `toml:"level" env:"LEVEL"`
	Dir   string `toml:"dir" env:"DIR"`
}

// Config encapsulates every dispenser setting
//
// Sections:
//   - Machine: orbit speed, pour rate, rig smoothing, catch-up bound
//   - Piece: fall and rotate timing, retention cap
//   - Stick: lever bend angle and timing
//   - Display: color, mouse, audio mute
//   - Logging: debug file logging
type Config struct {
	Machine Machine `toml:"machine" envPrefix:"MACHINE_"`
	Piece   Piece   `toml:"piece" envPrefix:"PIECE_"`
	Stick   Stick   `toml:"stick" envPrefix:"STICK_"`
	Display Display `toml:"display" envPrefix:"DISPLAY_"`
	Logging Logging `toml:"logging" envPrefix:"LOG_"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, applies environment overrides to, and validates a configuration file
// A missing file is not an error: defaults are used and exists is false
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			var strict *toml.StrictMissingError
			if errors.As(err, &strict) {
				return nil, "", false, fmt.Errorf("parse config: unknown keys:\n%s", strict.String())
			}
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := ParseEnv(&cfg); err != nil {
		return nil, "", false, err
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

// ParseEnv overlays DISPENSER_* environment variables onto cfg
// Unset variables leave the current values untouched
func ParseEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs(projectConfigName)
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

func (c *Config) normalize() error {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if strings.TrimSpace(c.Logging.Dir) == "" {
		c.Logging.Dir = defaultLogDir
	}
	dir, err := expandPath(c.Logging.Dir)
	if err != nil {
		return fmt.Errorf("logging.dir: %w", err)
	}
	c.Logging.Dir = dir
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	absolute, err := filepath.Abs(filepath.Clean(pathValue))
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", pathValue, err)
	}
	return absolute, nil
}

// CreateSample writes a sample configuration file to the specified location
// An existing file is left alone and reported as an error
func CreateSample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config already exists: %s", path)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// Sample returns the annotated sample configuration
func Sample() string {
	return sampleConfig
}

// DispenseConfig converts the machine section for the controller
func (c *Config) DispenseConfig() dispense.Config {
	return dispense.Config{
		OrbitSpeed:       c.Machine.OrbitSpeed,
		PourRate:         c.Machine.PourRate,
		Smoothing:        c.Machine.Smoothing,
		MaxSpawnsPerTick: c.Machine.MaxSpawnsPerTick,
		NozzleOffset: vmath.Vec3F{
			X: c.Machine.NozzleOffset[0],
			Y: c.Machine.NozzleOffset[1],
			Z: c.Machine.NozzleOffset[2],
		},
		Resume: c.Machine.Resume,
	}
}

// PieceConfig converts the piece section for the piece animator
func (c *Config) PieceConfig() animate.PieceConfig {
	return animate.PieceConfig{
		FallDuration:   millis(c.Piece.FallMillis),
		RotateDuration: millis(c.Piece.RotateMillis),
		SpawnPitch:     c.Piece.SpawnPitch,
		MaxPieces:      c.Piece.MaxPieces,
	}
}

// StickTime is the lever bend duration
func (c *Config) StickTime() time.Duration {
	return millis(c.Stick.ActivationMillis)
}

// LogLevel parses the logging level; unknown values fall back to info
func (c *Config) LogLevel() slog.Level {
	switch c.Logging.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func millis(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
