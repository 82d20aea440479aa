package input

import (
	"github.com/gdamore/tcell/v2"
)

// MouseTracker turns tcell's level-based button masks into press and release edges
// tcell reports the buttons currently held on every mouse event; release is a
// transition back to ButtonNone
type MouseTracker struct {
	held bool
}

// Resolve returns IntentPointerDown on the press edge and IntentPointerUp on release
// The flavor is filled in from the button under the pointer by the caller
func (m *MouseTracker) Resolve(ev *tcell.EventMouse) (Intent, int, int) {
	x, y := ev.Position()
	down := ev.Buttons()&tcell.Button1 != 0

	switch {
	case down && !m.held:
		m.held = true
		return Intent{Type: IntentPointerDown}, x, y
	case !down && m.held:
		m.held = false
		return Intent{Type: IntentPointerUp}, x, y
	}
	return Intent{}, x, y
}
