package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/dispenser/input"
	"github.com/lixenwraith/dispenser/vmath"
)

// Scene is a read-only snapshot of everything drawn in one frame
// The loop builds it after updating so the renderer never touches live state
type Scene struct {
	Path       []vmath.Vec3F // Sampled pour curve
	ConeRim    vmath.Vec3F   // Center of the cone rim
	ConeRadius float64
	ConeDepth  float64

	Home   vmath.Vec3F
	Rig    vmath.Vec3F
	Nozzle vmath.Vec3F

	Pieces  []PieceView
	Sticks  []StickView
	Buttons []ButtonView
	Status  Status
}

// PieceView is one dropped piece
type PieceView struct {
	Position vmath.Vec3F
	Glyph    rune
	Style    tcell.Style
	Landed   bool
}

// StickView is one flavor lever on top of the machine
type StickView struct {
	Label   string
	Angle   float64 // Degrees, negative when pulled
	Engaged bool
	Style   tcell.Style
}

// ButtonView is one on-screen press target
type ButtonView struct {
	Label   string
	Bounds  input.Rect
	Scale   float64
	Pressed bool
	Style   tcell.Style
}

// Status feeds the top status line
type Status struct {
	State    string
	Flavor   string
	Progress float64
	Spawned  int
	Falling  int
	Filled   bool
	Paused   bool
	Muted    bool
}
