package animate

import (
	"time"

	"github.com/lixenwraith/dispenser/event"
	"github.com/lixenwraith/dispenser/flavor"
	"github.com/lixenwraith/dispenser/parameter"
	"github.com/lixenwraith/dispenser/tween"
	"github.com/lixenwraith/dispenser/vmath"
)

// fallbackMaterial tints pieces whose flavor has no registered material
var fallbackMaterial = flavor.Material{Name: "plain", Glyph: '•'}

// Piece is one dropped bit of ice cream
// It falls to its placement on the cone curve and stays there
type Piece struct {
	Flavor   flavor.Flavor
	Material flavor.Material
	position *tween.Tween[vmath.Vec3F]
	rotation *tween.Tween[vmath.Quat]
}

// Pose returns the current transform
func (p *Piece) Pose() vmath.Pose {
	return vmath.Pose{Position: p.position.Value(), Rotation: p.rotation.Value()}
}

// Landed reports whether the piece reached its placement
func (p *Piece) Landed() bool {
	return p.position.Done()
}

// Settled reports whether both position and rotation finished
func (p *Piece) Settled() bool {
	return p.position.Done() && p.rotation.Done()
}

// PieceConfig holds the cosmetic durations of a piece
type PieceConfig struct {
	FallDuration   time.Duration
	RotateDuration time.Duration
	SpawnPitch     float64
	MaxPieces      int
}

// DefaultPieceConfig returns stock piece timing
func DefaultPieceConfig() PieceConfig {
	return PieceConfig{
		FallDuration:   parameter.PieceFallDuration,
		RotateDuration: parameter.PieceRotateDuration,
		SpawnPitch:     parameter.PieceSpawnPitch,
		MaxPieces:      parameter.MaxPieces,
	}
}

// PieceAnimator turns spawn events into animated pieces
// Purely cosmetic: nothing flows back to the controller
type PieceAnimator struct {
	cfg      PieceConfig
	registry *flavor.Registry
	pieces   []*Piece
	spawned  int
}

// NewPieceAnimator creates an animator tinting pieces from registry
func NewPieceAnimator(cfg PieceConfig, registry *flavor.Registry) *PieceAnimator {
	if cfg.MaxPieces <= 0 {
		cfg.MaxPieces = parameter.MaxPieces
	}
	return &PieceAnimator{cfg: cfg, registry: registry}
}

func (a *PieceAnimator) EventTypes() []event.EventType {
	return []event.EventType{event.EventSpawnPiece}
}

func (a *PieceAnimator) HandleEvent(ev event.GameEvent) {
	p, ok := ev.Payload.(*event.SpawnPayload)
	if !ok {
		return
	}
	a.Spawn(p)
}

// Spawn creates a piece at the spawn origin heading for its target
func (a *PieceAnimator) Spawn(p *event.SpawnPayload) *Piece {
	mat, ok := a.registry.Lookup(p.Flavor)
	if !ok {
		mat = fallbackMaterial
	}

	start := vmath.QuatFromEuler(a.cfg.SpawnPitch, 0, 0)
	piece := &Piece{
		Flavor:   p.Flavor,
		Material: mat,
		position: tween.NewVec3(p.Origin.Position, p.Target.Position, a.cfg.FallDuration, tween.OutQuad),
		rotation: tween.NewQuat(start, p.Target.Rotation, a.cfg.RotateDuration, tween.OutQuad),
	}
	a.pieces = append(a.pieces, piece)
	a.spawned++
	a.trim()
	return piece
}

// Update advances every piece by dt
func (a *PieceAnimator) Update(dt time.Duration) {
	for _, p := range a.pieces {
		if p.Settled() {
			continue
		}
		p.position.Step(dt)
		p.rotation.Step(dt)
	}
}

// trim drops the oldest landed pieces beyond the cap; falling pieces are kept
func (a *PieceAnimator) trim() {
	excess := len(a.pieces) - a.cfg.MaxPieces
	if excess <= 0 {
		return
	}
	kept := a.pieces[:0]
	for _, p := range a.pieces {
		if excess > 0 && p.Landed() {
			excess--
			continue
		}
		kept = append(kept, p)
	}
	for i := len(kept); i < len(a.pieces); i++ {
		a.pieces[i] = nil
	}
	a.pieces = kept
}

// Pieces returns live pieces, oldest first
func (a *PieceAnimator) Pieces() []*Piece {
	return a.pieces
}

// Spawned returns the number of pieces ever created
func (a *PieceAnimator) Spawned() int {
	return a.spawned
}

// Falling returns the number of pieces still in the air
func (a *PieceAnimator) Falling() int {
	n := 0
	for _, p := range a.pieces {
		if !p.Landed() {
			n++
		}
	}
	return n
}
