package render

import (
	"math"

	"github.com/lixenwraith/dispenser/input"
	"github.com/lixenwraith/dispenser/parameter"
	"github.com/lixenwraith/dispenser/vmath"
)

// Plane selects which two world axes a projector maps to the screen
type Plane uint8

const (
	// PlaneSide looks along +Z: X right, Y up
	PlaneSide Plane = iota
	// PlaneTop looks down -Y: X right, Z toward the viewer at the bottom
	PlaneTop
)

// axes returns the horizontal and vertical world coordinates of v on the plane
// Vertical grows upward on screen
func (p Plane) axes(v vmath.Vec3F) (float64, float64) {
	if p == PlaneTop {
		return v.X, -v.Z
	}
	return v.X, v.Y
}

// Projector is an orthographic world-to-cell mapping into one view rectangle
// A uniform scale keeps circles round given the cell aspect ratio
type Projector struct {
	View  input.Rect
	Plane Plane

	centerU, centerV float64
	scale            float64 // Cells per world unit, vertical
}

// NewProjector fits the world box [lo, hi] into view
func NewProjector(view input.Rect, plane Plane, lo, hi vmath.Vec3F) Projector {
	u0, v0 := plane.axes(lo)
	u1, v1 := plane.axes(hi)
	spanU := math.Max(math.Abs(u1-u0), 1e-6)
	spanV := math.Max(math.Abs(v1-v0), 1e-6)

	sx := float64(view.W) / (spanU * parameter.CellAspect)
	sy := float64(view.H) / spanV

	return Projector{
		View:    view,
		Plane:   plane,
		centerU: (u0 + u1) / 2,
		centerV: (v0 + v1) / 2,
		scale:   math.Min(sx, sy),
	}
}

// Project maps a world point to a cell; ok is false when it falls outside the view
func (p Projector) Project(v vmath.Vec3F) (x, y int, ok bool) {
	u, w := p.Plane.axes(v)
	fx := float64(p.View.X) + float64(p.View.W)/2 + (u-p.centerU)*p.scale*parameter.CellAspect
	fy := float64(p.View.Y) + float64(p.View.H)/2 - (w-p.centerV)*p.scale
	x, y = int(math.Floor(fx)), int(math.Floor(fy))
	return x, y, p.View.Contains(x, y)
}

// Scale returns cells per world unit vertically
func (p Projector) Scale() float64 {
	return p.scale
}
