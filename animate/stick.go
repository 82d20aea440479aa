package animate

import (
	"time"

	"github.com/lixenwraith/dispenser/event"
	"github.com/lixenwraith/dispenser/flavor"
	"github.com/lixenwraith/dispenser/tween"
)

// StickAnimator bends the flavor sticks above the machine
// A pressed flavor's stick tilts to -angle, a released one returns to 0
type StickAnimator struct {
	angle    float64
	duration time.Duration
	sticks   map[flavor.Flavor]*tween.Tween[float64]
}

// NewStickAnimator creates resting sticks for every flavor
func NewStickAnimator(angle float64, duration time.Duration) *StickAnimator {
	s := &StickAnimator{
		angle:    angle,
		duration: duration,
		sticks:   make(map[flavor.Flavor]*tween.Tween[float64]),
	}
	for _, f := range flavor.All() {
		s.sticks[f] = tween.NewFloat(0, 0, 0, tween.OutQuad)
	}
	return s
}

func (s *StickAnimator) EventTypes() []event.EventType {
	return []event.EventType{event.EventStickActivate, event.EventStickDeactivate}
}

func (s *StickAnimator) HandleEvent(ev event.GameEvent) {
	p, ok := ev.Payload.(*event.StickPayload)
	if !ok {
		return
	}
	stick, ok := s.sticks[p.Flavor]
	if !ok {
		return
	}
	switch ev.Type {
	case event.EventStickActivate:
		stick.Retarget(-s.angle, s.duration)
	case event.EventStickDeactivate:
		stick.Retarget(0, s.duration)
	}
}

// Update advances every stick by dt
func (s *StickAnimator) Update(dt time.Duration) {
	for _, stick := range s.sticks {
		stick.Step(dt)
	}
}

// Angle returns the current bend of f's stick in degrees
func (s *StickAnimator) Angle(f flavor.Flavor) float64 {
	if stick, ok := s.sticks[f]; ok {
		return stick.Value()
	}
	return 0
}

// Engaged reports whether f's stick is bent or bending down
func (s *StickAnimator) Engaged(f flavor.Flavor) bool {
	stick, ok := s.sticks[f]
	return ok && stick.Target() != 0
}
