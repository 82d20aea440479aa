package engine

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/lixenwraith/dispenser/animate"
	"github.com/lixenwraith/dispenser/audio"
	"github.com/lixenwraith/dispenser/cone"
	"github.com/lixenwraith/dispenser/curve"
	"github.com/lixenwraith/dispenser/dispense"
	"github.com/lixenwraith/dispenser/event"
	"github.com/lixenwraith/dispenser/flavor"
	"github.com/lixenwraith/dispenser/input"
	"github.com/lixenwraith/dispenser/parameter"
	"github.com/lixenwraith/dispenser/render"
	"github.com/lixenwraith/dispenser/vmath"
)

// Game owns the machine and everything that reacts to it
// All mutation happens on the goroutine calling Step and HandleIntent
type Game struct {
	clock      *PausableClock
	router     *event.Router
	cone       *cone.Cone
	controller *dispense.Controller
	pieces     *animate.PieceAnimator
	sticks     *animate.StickAnimator
	surface    *input.Surface
	sound      *audio.SoundManager
	registry   *flavor.Registry
	logger     *slog.Logger

	rim   vmath.Vec3F
	path  []vmath.Vec3F
	frame int64
}

// NewGame builds the cone, the controller and its observers from opts
func NewGame(opts Options, clock *PausableClock) (*Game, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if clock == nil {
		clock = NewPausableClock(nil)
	}
	if opts.Registry == nil {
		opts.Registry = flavor.DefaultRegistry()
	}

	swirl, err := curve.Spiral(opts.Swirl)
	if err != nil {
		return nil, fmt.Errorf("engine: build swirl: %w", err)
	}

	g := &Game{
		clock:    clock,
		router:   event.NewRouter(),
		cone:     cone.New(swirl),
		pieces:   animate.NewPieceAnimator(opts.Pieces, opts.Registry),
		sticks:   animate.NewStickAnimator(opts.StickAngle, opts.StickTime),
		sound:    opts.Sound,
		registry: opts.Registry,
		logger:   logger.With("component", "engine"),
		rim:      opts.Swirl.Center,
		path:     curve.Sample(swirl, pathSamples),
	}

	rig := dispense.NewRig(opts.Home, opts.Dispense.Smoothing, opts.Dispense.NozzleOffset)
	g.controller, err = dispense.NewController(opts.Dispense, rig, clock, g.router, logger)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	g.surface = input.NewSurface(g.controller, g.cone, logger)

	g.router.Register(g.pieces)
	g.router.Register(g.sticks)
	if g.sound != nil {
		g.router.Register(g.sound)
	}
	g.router.Subscribe(g.logSession, event.EventSessionBegin, event.EventSessionEnd, event.EventConeFilled)

	return g, nil
}

func (g *Game) logSession(ev event.GameEvent) {
	p, ok := ev.Payload.(*event.SessionPayload)
	if !ok {
		return
	}
	g.logger.Debug(ev.Type.String(),
		"session", p.ID,
		"flavor", p.Flavor,
		"progress", p.Progress,
		"spawned", p.Spawned,
		"completed", p.Completed,
		"frame", ev.Frame,
	)
}

// Step advances one frame of dt
// Nothing moves while paused; dt is clamped after stalls
func (g *Game) Step(dt time.Duration) {
	g.frame++
	g.router.SetFrame(g.frame)

	dt = min(dt, parameter.MaxFrameDelta)
	if !g.clock.Advance(dt) {
		return
	}

	wasActive := g.controller.Active()
	g.controller.Tick(dt)
	if !wasActive {
		// The controller only drives the rig during a session; settle it home otherwise
		g.controller.Rig().Step(dt.Seconds())
	}

	g.pieces.Update(dt)
	g.sticks.Update(dt)
	g.surface.Update(dt)
}

// HandleIntent applies one resolved input action at cell (x, y)
// Returns false when the game should quit
func (g *Game) HandleIntent(in input.Intent, x, y int) bool {
	switch in.Type {
	case input.IntentQuit:
		return false

	case input.IntentPause:
		paused := g.clock.TogglePause()
		g.logger.Debug("pause toggled", "paused", paused, "paused_total", g.clock.TotalPauseDuration())

	case input.IntentToggleMute:
		if g.sound != nil {
			g.sound.SetMuted(!g.sound.Muted())
		}

	case input.IntentToggleHold:
		if g.clock.IsPaused() {
			return true
		}
		g.surface.Toggle(in.Flavor)

	case input.IntentPointerDown:
		if g.clock.IsPaused() {
			return true
		}
		if f, ok := g.surface.HitTest(x, y); ok {
			g.surface.Press(f)
		}

	case input.IntentPointerUp:
		// Release wherever the pointer ended up, even if paused, so no button sticks
		g.surface.ReleaseHeld()
	}
	return true
}

// Scene snapshots the current state for the renderer
func (g *Game) Scene() render.Scene {
	rig := g.controller.Rig()
	sc := render.Scene{
		Path:       g.path,
		ConeRim:    g.rim,
		ConeRadius: parameter.ConeRadius,
		ConeDepth:  parameter.ConeDepth,
		Home:       rig.Home(),
		Rig:        rig.Position(),
		Nozzle:     rig.Nozzle().Position,
	}
	for _, p := range g.pieces.Pieces() {
		sc.Pieces = append(sc.Pieces, render.PieceView{
			Position: p.Pose().Position,
			Glyph:    p.Material.Glyph,
			Style:    p.Material.Style(),
			Landed:   p.Landed(),
		})
	}

	for _, f := range flavor.All() {
		sc.Sticks = append(sc.Sticks, render.StickView{
			Label:   f.Label(),
			Angle:   g.sticks.Angle(f),
			Engaged: g.sticks.Engaged(f),
			Style:   render.ButtonStyle(g.registry, f),
		})
	}

	held, pressing := g.surface.Pressing()
	for _, b := range g.surface.Buttons() {
		sc.Buttons = append(sc.Buttons, render.ButtonView{
			Label:   b.Label,
			Bounds:  b.Bounds,
			Scale:   b.Scale(),
			Pressed: pressing && held == b.Flavor,
			Style:   render.ButtonStyle(g.registry, b.Flavor),
		})
	}

	sc.Status = render.Status{
		State:    g.controller.State().String(),
		Progress: g.controller.Progress(),
		Spawned:  g.pieces.Spawned(),
		Falling:  g.pieces.Falling(),
		Filled:   g.cone.Filled(),
		Paused:   g.clock.IsPaused(),
	}
	if s := g.controller.Session(); s.Active {
		sc.Status.Flavor = s.Flavor.Label()
	}
	if g.sound != nil {
		sc.Status.Muted = g.sound.Muted()
	}
	return sc
}

// Controller returns the pour state machine
func (g *Game) Controller() *dispense.Controller { return g.controller }

// Cone returns the container being filled
func (g *Game) Cone() *cone.Cone { return g.cone }

// Surface returns the flavor buttons
func (g *Game) Surface() *input.Surface { return g.surface }

// Router returns the event router observers subscribe to
func (g *Game) Router() *event.Router { return g.router }

// Clock returns the game clock
func (g *Game) Clock() *PausableClock { return g.clock }

// Pieces returns the piece animator
func (g *Game) Pieces() *animate.PieceAnimator { return g.pieces }

// Sticks returns the stick animator
func (g *Game) Sticks() *animate.StickAnimator { return g.sticks }

// Frame returns the number of frames stepped
func (g *Game) Frame() int64 { return g.frame }
