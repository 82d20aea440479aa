package dispense

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/dispenser/cone"
	"github.com/lixenwraith/dispenser/event"
	"github.com/lixenwraith/dispenser/flavor"
	"github.com/lixenwraith/dispenser/parameter"
	"github.com/lixenwraith/dispenser/vmath"
)

// ErrRejected is the root of every refused Begin
// Callers treat it as a silent no-op
var ErrRejected = errors.New("dispense: begin rejected")

var (
	ErrConeFilled    = fmt.Errorf("%w: cone already filled", ErrRejected)
	ErrSessionActive = fmt.Errorf("%w: session already active", ErrRejected)
	ErrNoFlavor      = fmt.Errorf("%w: no flavor", ErrRejected)
)

// ErrNoCone is returned when Begin is called without a cone
var ErrNoCone = errors.New("dispense: nil cone")

// Clock reports game time elapsed since start
// The loop advances it; the controller only reads it
type Clock interface {
	Elapsed() time.Duration
}

// Emitter receives controller notifications synchronously
type Emitter interface {
	Emit(t event.EventType, payload any)
}

// Controller is the pour/orbit state machine
type Controller struct {
	cfg     Config
	rig     *Rig
	clock   Clock
	emitter Emitter
	logger  *slog.Logger

	state   State
	session Session
	cone    *cone.Cone

	// Progress reached by the last cancelled session, used when cfg.Resume
	resumeAt float64
}

// NewController wires a controller to its collaborators
// A nil logger falls back to slog.Default
func NewController(cfg Config, rig *Rig, clock Clock, emitter Emitter, logger *slog.Logger) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("dispense config: %w", err)
	}
	if rig == nil || clock == nil || emitter == nil {
		return nil, errors.New("dispense: rig, clock and emitter are required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		cfg:     cfg,
		rig:     rig,
		clock:   clock,
		emitter: emitter,
		logger:  logger.With("component", "dispense"),
	}, nil
}

// Begin starts pouring f into c
// Rejections wrap ErrRejected and change nothing
func (ctl *Controller) Begin(f flavor.Flavor, c *cone.Cone) (Session, error) {
	if c == nil {
		return Session{}, ErrNoCone
	}
	if c.Filled() {
		ctl.logger.Debug("begin rejected", "flavor", f, "reason", "filled")
		return Session{}, ErrConeFilled
	}
	if ctl.state != StateIdle {
		ctl.logger.Debug("begin rejected", "flavor", f, "reason", "active", "current", ctl.session.Flavor)
		return Session{}, ErrSessionActive
	}
	if !f.Valid() {
		ctl.logger.Debug("begin rejected", "flavor", f, "reason", "flavor")
		return Session{}, ErrNoFlavor
	}

	progress := 0.0
	if ctl.cfg.Resume && ctl.cone == c {
		progress = ctl.resumeAt
	}

	ctl.cone = c
	ctl.state = StateActive
	ctl.session = Session{
		ID:        uuid.New(),
		Flavor:    f,
		Progress:  progress,
		NextSpawn: ctl.clock.Elapsed(),
		Active:    true,
	}

	ctl.emitter.Emit(event.EventStickActivate, &event.StickPayload{Flavor: f})
	ctl.emitter.Emit(event.EventSessionBegin, ctl.sessionPayload(false))
	ctl.logger.Info("pour started", "session", ctl.session.ID, "flavor", f, "progress", progress)

	return ctl.session, nil
}

// Tick advances the active session by dt; no-op when idle
func (ctl *Controller) Tick(dt time.Duration) {
	if ctl.state != StateActive {
		return
	}
	secs := dt.Seconds()
	s := &ctl.session

	s.Progress += ctl.cfg.OrbitSpeed * secs

	if s.Progress >= 1-parameter.CompletionEpsilon {
		s.Progress = 1
		ctl.state = StateCompleting
		ctl.rig.ReturnHome()
		ctl.rig.Step(secs)
		ctl.cone.MarkFilled()
		ctl.emitter.Emit(event.EventConeFilled, ctl.sessionPayload(true))
	}

	// Spawning runs on the completing tick too
	ctl.emitSpawns()

	if ctl.state == StateCompleting {
		ctl.End(s.Flavor)
		return
	}

	target := ctl.cone.Curve().Position(min(s.Progress, 1))
	target.Y = ctl.rig.Position().Y
	ctl.rig.SetTarget(target)
	ctl.rig.Step(secs)
}

// emitSpawns fires one spawn per elapsed interval, bounded per tick
// The schedule is anchored so the long-run rate matches PourRate at any frame rate
func (ctl *Controller) emitSpawns() {
	s := &ctl.session
	now := ctl.clock.Elapsed()
	interval := ctl.cfg.SpawnInterval()

	for i := 0; now >= s.NextSpawn; i++ {
		if i == ctl.cfg.MaxSpawnsPerTick {
			// Too far behind, drop the backlog
			s.NextSpawn = now + interval
			return
		}
		ctl.spawn()
		s.NextSpawn += interval
	}
}

func (ctl *Controller) spawn() {
	s := &ctl.session
	path := ctl.cone.Curve()
	t := min(s.Progress, 1)

	ctl.emitter.Emit(event.EventSpawnPiece, &event.SpawnPayload{
		SessionID: s.ID,
		Flavor:    s.Flavor,
		Origin:    ctl.rig.Nozzle(),
		Target: vmath.Pose{
			Position: path.Position(t),
			Rotation: vmath.QuatLookRotation(path.Tangent(t), vmath.V3FUp),
		},
		Index: s.Spawned,
	})
	s.Spawned++
}

// End stops the current session for any reason; idempotent
func (ctl *Controller) End(f flavor.Flavor) {
	if ctl.state == StateIdle {
		return
	}
	s := &ctl.session
	if f != s.Flavor {
		ctl.logger.Debug("end flavor differs from session", "requested", f, "session", s.Flavor)
	}

	completed := ctl.state == StateCompleting
	if completed {
		ctl.resumeAt = 0
	} else {
		ctl.resumeAt = s.Progress
	}

	ctl.state = StateIdle
	s.Active = false

	ctl.emitter.Emit(event.EventStickDeactivate, &event.StickPayload{Flavor: s.Flavor})
	ctl.emitter.Emit(event.EventSessionEnd, ctl.sessionPayload(completed))
	ctl.logger.Info("pour stopped",
		"session", s.ID,
		"flavor", s.Flavor,
		"progress", s.Progress,
		"spawned", s.Spawned,
		"completed", completed,
	)
}

func (ctl *Controller) sessionPayload(completed bool) *event.SessionPayload {
	return &event.SessionPayload{
		ID:        ctl.session.ID,
		Flavor:    ctl.session.Flavor,
		Progress:  ctl.session.Progress,
		Spawned:   ctl.session.Spawned,
		Completed: completed,
	}
}

// State returns the lifecycle state
func (ctl *Controller) State() State { return ctl.state }

// Active reports whether a session is pouring
func (ctl *Controller) Active() bool { return ctl.state != StateIdle }

// Session returns a snapshot of the current or last session
func (ctl *Controller) Session() Session { return ctl.session }

// Progress returns the current or last session's progress
func (ctl *Controller) Progress() float64 { return ctl.session.Progress }

// Rig returns the dispenser base the controller moves
func (ctl *Controller) Rig() *Rig { return ctl.rig }

// Config returns the controller tuning
func (ctl *Controller) Config() Config { return ctl.cfg }
