package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/dispenser/config"
)

func newConfigCommand(flags *rootFlags) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigShowCommand(flags))
	configCmd.AddCommand(newConfigInitCommand())

	return configCmd
}

func newConfigShowCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, exists, err := config.Load(flags.config)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			applyFlags(cmd, flags, cfg)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config path: %s\n", path)
			if !exists {
				fmt.Fprintln(out, "Config file did not exist; defaults were used")
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Key", "Value", "Environment"},
				configRows(cfg),
				[]columnAlignment{alignLeft, alignRight, alignLeft},
			))
			return nil
		},
	}
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a sample configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return fmt.Errorf("determine default config path: %w", err)
				}
				target = defaultPath
			}

			if overwrite {
				if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
					return fmt.Errorf("remove existing config: %w", err)
				}
			}

			if err := config.CreateSample(target); err != nil {
				return fmt.Errorf("create sample config: %w (use --overwrite to replace it)", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample configuration to %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing configuration if present")
	return cmd
}

// configRows flattens the effective configuration into key, value, env variable rows
func configRows(cfg *config.Config) [][]string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	i := strconv.Itoa
	b := strconv.FormatBool
	env := func(name string) string {
		if name == "" {
			return ""
		}
		return config.EnvPrefix + name
	}

	m := cfg.Machine
	nozzle := fmt.Sprintf("[%s, %s, %s]", f(m.NozzleOffset[0]), f(m.NozzleOffset[1]), f(m.NozzleOffset[2]))

	return [][]string{
		{"machine.orbit_speed", f(m.OrbitSpeed), env("MACHINE_ORBIT_SPEED")},
		{"machine.pour_rate", f(m.PourRate), env("MACHINE_POUR_RATE")},
		{"machine.smoothing", f(m.Smoothing), env("MACHINE_SMOOTHING")},
		{"machine.max_spawns_per_tick", i(m.MaxSpawnsPerTick), env("MACHINE_MAX_SPAWNS_PER_TICK")},
		{"machine.nozzle_offset", nozzle, env("")},
		{"machine.resume", b(m.Resume), env("MACHINE_RESUME")},
		{"piece.fall_ms", i(cfg.Piece.FallMillis), env("PIECE_FALL_MS")},
		{"piece.rotate_ms", i(cfg.Piece.RotateMillis), env("PIECE_ROTATE_MS")},
		{"piece.spawn_pitch", f(cfg.Piece.SpawnPitch), env("")},
		{"piece.max_pieces", i(cfg.Piece.MaxPieces), env("PIECE_MAX_PIECES")},
		{"stick.angle", f(cfg.Stick.Angle), env("STICK_ANGLE")},
		{"stick.activation_ms", i(cfg.Stick.ActivationMillis), env("STICK_ACTIVATION_MS")},
		{"display.color", b(cfg.Display.Color), env("DISPLAY_COLOR")},
		{"display.mouse", b(cfg.Display.Mouse), env("DISPLAY_MOUSE")},
		{"display.mute", b(cfg.Display.Mute), env("DISPLAY_MUTE")},
		{"logging.debug", b(cfg.Logging.Debug), env("LOG_DEBUG")},
		{"logging.level", cfg.Logging.Level, env("LOG_LEVEL")},
		{"logging.dir", cfg.Logging.Dir, env("LOG_DIR")},
	}
}
