package config_test

import (
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/dispenser/config"
	"github.com/lixenwraith/dispenser/dispense"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dispenser.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.toml")

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent")
	}
	if resolved != path {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, path)
	}

	if got, want := cfg.DispenseConfig(), dispense.DefaultConfig(); got != want {
		t.Fatalf("default machine config mismatch:\n got %+v\nwant %+v", got, want)
	}
	if !cfg.Display.Color || !cfg.Display.Mouse {
		t.Fatal("expected color and mouse enabled by default")
	}
	if !filepath.IsAbs(cfg.Logging.Dir) {
		t.Fatalf("expected log dir to be absolute, got %q", cfg.Logging.Dir)
	}
}

func TestLoadParsesFile(t *testing.T) {
	path := writeConfig(t, `
[machine]
orbit_speed = 0.1
pour_rate = 20.0
nozzle_offset = [0.0, -1.0, 0.5]
resume = true

[piece]
fall_ms = 800

[logging]
level = "WARN"
`)

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to exist")
	}

	dc := cfg.DispenseConfig()
	if dc.OrbitSpeed != 0.1 || dc.PourRate != 20 || !dc.Resume {
		t.Fatalf("machine section not applied: %+v", dc)
	}
	if dc.NozzleOffset.Y != -1 || dc.NozzleOffset.Z != 0.5 {
		t.Fatalf("unexpected nozzle offset: %+v", dc.NozzleOffset)
	}
	// Omitted keys keep defaults
	if dc.Smoothing != dispense.DefaultConfig().Smoothing {
		t.Fatalf("expected default smoothing, got %v", dc.Smoothing)
	}
	if cfg.PieceConfig().FallDuration != 800*time.Millisecond {
		t.Fatalf("unexpected fall duration: %v", cfg.PieceConfig().FallDuration)
	}
	if cfg.LogLevel() != slog.LevelWarn {
		t.Fatalf("expected normalized warn level, got %v", cfg.LogLevel())
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, `
[machine]
pour_speed = 3.0
`)
	_, _, _, err := config.Load(path)
	if err == nil || !strings.Contains(err.Error(), "pour_speed") {
		t.Fatalf("expected unknown key error naming pour_speed, got %v", err)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := writeConfig(t, "[machine\norbit_speed = ")
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
[machine]
pour_rate = 20.0
`)
	t.Setenv("DISPENSER_MACHINE_POUR_RATE", "35")
	t.Setenv("DISPENSER_DISPLAY_MUTE", "true")
	t.Setenv("DISPENSER_LOG_DEBUG", "true")

	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Machine.PourRate != 35 {
		t.Errorf("expected env pour rate 35, got %v", cfg.Machine.PourRate)
	}
	if !cfg.Display.Mute {
		t.Error("expected mute from env")
	}
	if !cfg.Logging.Debug {
		t.Error("expected debug logging from env")
	}
}

func TestEnvParseError(t *testing.T) {
	t.Setenv("DISPENSER_MACHINE_MAX_SPAWNS_PER_TICK", "lots")
	_, _, _, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil || !strings.Contains(err.Error(), "parse env") {
		t.Fatalf("expected env parse error, got %v", err)
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{"orbit speed", func(c *config.Config) { c.Machine.OrbitSpeed = 0 }, "machine"},
		{"pour rate", func(c *config.Config) { c.Machine.PourRate = -1 }, "machine"},
		{"orbit speed nan", func(c *config.Config) { c.Machine.OrbitSpeed = math.NaN() }, "machine"},
		{"orbit speed inf", func(c *config.Config) { c.Machine.OrbitSpeed = math.Inf(1) }, "machine"},
		{"pour rate nan", func(c *config.Config) { c.Machine.PourRate = math.NaN() }, "machine"},
		{"pour rate inf", func(c *config.Config) { c.Machine.PourRate = math.Inf(1) }, "machine"},
		{"smoothing nan", func(c *config.Config) { c.Machine.Smoothing = math.NaN() }, "machine"},
		{"fall", func(c *config.Config) { c.Piece.FallMillis = 0 }, "piece.fall_ms"},
		{"rotate", func(c *config.Config) { c.Piece.RotateMillis = -5 }, "piece.rotate_ms"},
		{"max pieces", func(c *config.Config) { c.Piece.MaxPieces = 0 }, "piece.max_pieces"},
		{"stick angle low", func(c *config.Config) { c.Stick.Angle = 0.5 }, "stick.angle"},
		{"stick angle high", func(c *config.Config) { c.Stick.Angle = 136 }, "stick.angle"},
		{"stick angle nan", func(c *config.Config) { c.Stick.Angle = math.NaN() }, "stick.angle"},
		{"stick time", func(c *config.Config) { c.Stick.ActivationMillis = -1 }, "stick.activation_ms"},
		{"log level", func(c *config.Config) { c.Logging.Level = "loud" }, "logging.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error mentioning %q, got %v", tt.want, err)
			}
		})
	}

	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults failed validation: %v", err)
	}
	for _, angle := range []float64{1, 135} {
		cfg.Stick.Angle = angle
		if err := cfg.Validate(); err != nil {
			t.Errorf("stick angle %v rejected: %v", angle, err)
		}
	}
}

func TestEnvRejectsNonFiniteRates(t *testing.T) {
	for _, v := range []string{"NaN", "+Inf"} {
		t.Run(v, func(t *testing.T) {
			t.Setenv("DISPENSER_MACHINE_ORBIT_SPEED", v)
			t.Setenv("DISPENSER_MACHINE_POUR_RATE", v)
			_, _, _, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
			if err == nil || !strings.Contains(err.Error(), "machine") {
				t.Fatalf("expected machine validation error for %s, got %v", v, err)
			}
		})
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if string(contents) != config.Sample() {
		t.Fatal("written sample differs from Sample()")
	}

	// The sample decodes strictly and matches the defaults
	cfg := config.Default()
	decoder := toml.NewDecoder(strings.NewReader(string(contents)))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		t.Fatalf("decode sample: %v", err)
	}
	if cfg.DispenseConfig() != dispense.DefaultConfig() {
		t.Fatalf("sample machine section drifted from defaults: %+v", cfg.DispenseConfig())
	}

	if err := config.CreateSample(path); err == nil {
		t.Fatal("expected CreateSample to refuse overwriting")
	}
}
