package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/dispenser/audio"
	"github.com/lixenwraith/dispenser/config"
	"github.com/lixenwraith/dispenser/engine"
	"github.com/lixenwraith/dispenser/flavor"
	"github.com/lixenwraith/dispenser/input"
	"github.com/lixenwraith/dispenser/render"
)

// errNotTerminal is returned when the demo is started without an interactive terminal
var errNotTerminal = errors.New("dispenser needs an interactive terminal; use 'dispenser config show' for non-interactive output")

// rootFlags holds persistent flag values
type rootFlags struct {
	config string
	debug  bool
	color  bool
	mute   bool
	flavor string
}

func newRootCommand() *cobra.Command {
	var flags rootFlags

	rootCmd := &cobra.Command{
		Use:           "dispenser",
		Short:         "Terminal ice cream machine",
		Long:          "Hold a flavor button to pour: the machine orbits the cone along its swirl and fills it in twenty seconds.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, &flags)
			if err != nil {
				return err
			}
			start, err := parseStartFlavor(flags.flavor)
			if err != nil {
				return err
			}
			if !isTerminal(cmd.OutOrStdout()) {
				return errNotTerminal
			}
			return runDemo(cmd.Context(), cfg, start)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&flags.config, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "Write a debug log under the log directory")
	rootCmd.PersistentFlags().BoolVar(&flags.color, "color", true, "Use true color output")
	rootCmd.PersistentFlags().BoolVar(&flags.mute, "mute", false, "Start with sound muted")
	rootCmd.Flags().StringVar(&flags.flavor, "flavor", "", "Hold this flavor's button at start (strawberry, chocolate, pistachio)")

	rootCmd.AddCommand(newConfigCommand(&flags))

	return rootCmd
}

// loadConfig reads the configuration and applies explicitly set flags on top
func loadConfig(cmd *cobra.Command, flags *rootFlags) (*config.Config, error) {
	cfg, _, _, err := config.Load(flags.config)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	applyFlags(cmd, flags, cfg)
	return cfg, nil
}

func applyFlags(cmd *cobra.Command, flags *rootFlags, cfg *config.Config) {
	pf := cmd.Flags()
	if pf.Changed("debug") {
		cfg.Logging.Debug = flags.debug
	}
	if pf.Changed("color") {
		cfg.Display.Color = flags.color
	}
	if pf.Changed("mute") {
		cfg.Display.Mute = flags.mute
	}
}

// parseStartFlavor resolves the --flavor value; empty means no autostart
func parseStartFlavor(name string) (flavor.Flavor, error) {
	if strings.TrimSpace(name) == "" {
		return flavor.None, nil
	}
	f, ok := flavor.Parse(name)
	if !ok || !f.Valid() {
		return flavor.None, fmt.Errorf("unknown flavor %q", name)
	}
	return f, nil
}

func isTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

var (
	screenMu     sync.Mutex
	activeScreen tcell.Screen
)

// restoreTerminal finalizes the running screen, if any
func restoreTerminal() {
	screenMu.Lock()
	defer screenMu.Unlock()
	if activeScreen != nil {
		activeScreen.Fini()
		activeScreen = nil
	}
}

func runDemo(parent context.Context, cfg *config.Config, start flavor.Flavor) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if logFile := setupLogging(cfg.Logging.Debug, cfg.Logging.Dir, cfg.LogLevel()); logFile != nil {
		defer logFile.Close()
	}
	logger := slog.Default()

	sound := audio.NewSoundManager()
	if err := sound.Initialize(); err != nil {
		// Non-fatal, the machine runs silently
		logger.Warn("audio initialization failed", "error", err)
	}
	defer sound.Cleanup()
	sound.SetMuted(cfg.Display.Mute)

	opts := engine.DefaultOptions()
	opts.Dispense = cfg.DispenseConfig()
	opts.Pieces = cfg.PieceConfig()
	opts.StickAngle = cfg.Stick.Angle
	opts.StickTime = cfg.StickTime()
	opts.Sound = sound
	opts.Logger = logger

	game, err := engine.NewGame(opts, engine.NewPausableClock(nil))
	if err != nil {
		return err
	}

	if start != flavor.None {
		game.HandleIntent(input.Intent{Type: input.IntentToggleHold, Flavor: start}, 0, 0)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialize terminal: %w", err)
	}
	screenMu.Lock()
	activeScreen = screen
	screenMu.Unlock()
	// Normal exit terminal cleanup
	defer restoreTerminal()

	if cfg.Display.Mouse {
		screen.EnableMouse()
	}
	screen.HideCursor()

	logger.Info("dispenser started",
		"orbit_speed", opts.Dispense.OrbitSpeed,
		"pour_rate", opts.Dispense.PourRate,
		"color", cfg.Display.Color,
	)

	loop := engine.NewLoop(game, screen, render.NewRenderer(screen, cfg.Display.Color), nil)
	return loop.Run(ctx)
}
