package input

import (
	"errors"
	"log/slog"
	"time"

	"github.com/lixenwraith/dispenser/cone"
	"github.com/lixenwraith/dispenser/dispense"
	"github.com/lixenwraith/dispenser/flavor"
	"github.com/lixenwraith/dispenser/parameter"
	"github.com/lixenwraith/dispenser/tween"
)

// Dispenser is the controller surface the buttons drive
type Dispenser interface {
	Begin(f flavor.Flavor, c *cone.Cone) (dispense.Session, error)
	End(f flavor.Flavor)
}

// Rect is a screen cell rectangle
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether cell (x,y) lies inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Button is one flavor's on-screen press target
type Button struct {
	Flavor flavor.Flavor
	Label  string
	Bounds Rect
	scale  *tween.Tween[float64]
}

// Scale returns the current press animation scale, 1 at rest
func (b *Button) Scale() float64 {
	return b.scale.Value()
}

// Surface translates button press and release into Begin and End
// Presses are debounced globally: while any button is held, others are ignored
type Surface struct {
	dispenser Dispenser
	cone      *cone.Cone
	buttons   []*Button
	logger    *slog.Logger

	pressing bool
	held     flavor.Flavor
}

// NewSurface creates one button per dispensable flavor
func NewSurface(d Dispenser, c *cone.Cone, logger *slog.Logger) *Surface {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Surface{
		dispenser: d,
		cone:      c,
		logger:    logger.With("component", "input"),
	}
	for _, f := range flavor.All() {
		s.buttons = append(s.buttons, &Button{
			Flavor: f,
			Label:  f.Label(),
			scale:  tween.NewFloat(1, 1, 0, tween.OutQuad),
		})
	}
	return s
}

// Press handles pointer-down on f's button
// Returns false when the press was debounced
func (s *Surface) Press(f flavor.Flavor) bool {
	if s.pressing {
		return false
	}
	b := s.Button(f)
	if b == nil {
		return false
	}

	if _, err := s.dispenser.Begin(f, s.cone); err != nil {
		if !errors.Is(err, dispense.ErrRejected) {
			s.logger.Warn("begin failed", "flavor", f, "error", err)
		}
	}

	// The button stays held even when the pour was rejected
	s.pressing = true
	s.held = f
	b.scale.Retarget(parameter.ButtonPressScale, parameter.ButtonTweenTime)
	return true
}

// Release handles pointer-up; ignored unless f is the held button
func (s *Surface) Release(f flavor.Flavor) {
	if !s.pressing || f != s.held {
		return
	}
	s.dispenser.End(f)
	s.pressing = false
	s.held = flavor.None
	if b := s.Button(f); b != nil {
		b.scale.Retarget(1, parameter.ButtonTweenTime)
	}
}

// ReleaseHeld releases whichever button is held
// Pointer-up events arrive without a target when the pointer left the button
func (s *Surface) ReleaseHeld() {
	if s.pressing {
		s.Release(s.held)
	}
}

// Toggle presses f if nothing is held, or releases f if it is the held button
// Terminals report no key-up, so keyboard holds are emulated this way
func (s *Surface) Toggle(f flavor.Flavor) {
	if s.pressing {
		s.Release(f)
		return
	}
	s.Press(f)
}

// Pressing reports whether a button is held, and which
func (s *Surface) Pressing() (flavor.Flavor, bool) {
	return s.held, s.pressing
}

// Buttons returns the buttons in display order
func (s *Surface) Buttons() []*Button {
	return s.buttons
}

// Button returns the button for f, nil if none
func (s *Surface) Button(f flavor.Flavor) *Button {
	for _, b := range s.buttons {
		if b.Flavor == f {
			return b
		}
	}
	return nil
}

// SetBounds places f's button on screen
func (s *Surface) SetBounds(f flavor.Flavor, r Rect) {
	if b := s.Button(f); b != nil {
		b.Bounds = r
	}
}

// HitTest returns the flavor whose button covers cell (x,y)
func (s *Surface) HitTest(x, y int) (flavor.Flavor, bool) {
	for _, b := range s.buttons {
		if b.Bounds.Contains(x, y) {
			return b.Flavor, true
		}
	}
	return flavor.None, false
}

// Update advances button animations
func (s *Surface) Update(dt time.Duration) {
	for _, b := range s.buttons {
		b.scale.Step(dt)
	}
}
