package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/dispenser/flavor"
	"github.com/lixenwraith/dispenser/input"
	"github.com/lixenwraith/dispenser/parameter"
	"github.com/lixenwraith/dispenser/vmath"
)

const (
	statusRows     = 1
	buttonRows     = 3
	buttonMaxWidth = 18
	buttonGap      = 2
	progressWidth  = 20
	rimSegments    = 48
	helpText       = "1/2/3 pour  click hold  p pause  m mute  q quit"
)

// Renderer draws scene snapshots to a tcell screen
// The left half is a side view, the right half a top-down view
type Renderer struct {
	screen tcell.Screen
	colors palette

	width, height int
	side, top     Projector
	tooSmall      bool
}

// NewRenderer creates a renderer sized to the screen
func NewRenderer(screen tcell.Screen, color bool) *Renderer {
	r := &Renderer{
		screen: screen,
		colors: palette{color: color},
	}
	w, h := screen.Size()
	r.Resize(w, h)
	return r
}

// Resize recomputes the view layout
func (r *Renderer) Resize(width, height int) {
	r.width, r.height = width, height

	viewH := height - statusRows - buttonRows
	sideW := width / 2
	topW := width - sideW - 1
	r.tooSmall = viewH < 4 || sideW < 8 || topW < 8
	if r.tooSmall {
		return
	}

	lo := vmath.Vec3F{X: parameter.ViewMinX, Y: parameter.ViewMinY, Z: parameter.ViewMinZ}
	hi := vmath.Vec3F{X: parameter.ViewMaxX, Y: parameter.ViewMaxY, Z: parameter.ViewMaxZ}
	r.side = NewProjector(input.Rect{X: 0, Y: statusRows, W: sideW, H: viewH}, PlaneSide, lo, hi)
	r.top = NewProjector(input.Rect{X: sideW + 1, Y: statusRows, W: topW, H: viewH}, PlaneTop, lo, hi)
}

// Size returns the dimensions the layout was computed for
func (r *Renderer) Size() (int, int) {
	return r.width, r.height
}

// Layout places the surface's buttons along the bottom rows
func (r *Renderer) Layout(s *input.Surface) {
	buttons := s.Buttons()
	n := len(buttons)
	if n == 0 {
		return
	}

	bw := min(buttonMaxWidth, (r.width-buttonGap*(n-1))/n)
	bw = max(bw, 3)
	total := n*bw + (n-1)*buttonGap
	x := max((r.width-total)/2, 0)
	y := max(r.height-buttonRows, 0)

	for i, b := range buttons {
		s.SetBounds(b.Flavor, input.Rect{X: x + i*(bw+buttonGap), Y: y, W: bw, H: buttonRows})
	}
}

// Draw renders one frame and flushes it to the terminal
func (r *Renderer) Draw(sc Scene) {
	r.screen.Fill(' ', r.colors.base())

	r.drawStatus(sc.Status)
	if !r.tooSmall {
		r.drawDivider()
		for _, p := range []Projector{r.side, r.top} {
			r.drawPath(p, sc.Path)
			r.drawCone(p, sc)
			r.drawPieces(p, sc.Pieces)
			r.drawRig(p, sc)
		}
		r.drawSticks(sc)
	}
	for _, b := range sc.Buttons {
		r.drawButton(b)
	}

	r.screen.Show()
}

func (r *Renderer) drawDivider() {
	style := r.colors.fg(RgbDivider)
	x := r.side.View.X + r.side.View.W
	for y := r.side.View.Y; y < r.side.View.Y+r.side.View.H; y++ {
		r.setCell(x, y, '│', style)
	}
}

func (r *Renderer) drawStatus(st Status) {
	dim := r.colors.fg(RgbStatusDim)
	text := r.colors.fg(RgbStatusBar)

	x := r.drawText(0, 0, " DISPENSER ", text.Bold(true))
	x = r.drawText(x, 0, "│ ", dim)
	x = r.drawText(x, 0, st.State, text)
	if st.Flavor != "" {
		x = r.drawText(x, 0, " ", dim)
		x = r.drawText(x, 0, st.Flavor, text)
	}
	x = r.drawText(x, 0, " │ ", dim)
	x = r.drawText(x, 0, progressBar(st.Progress, progressWidth), r.colors.fg(RgbProgress))
	x = r.drawText(x, 0, fmt.Sprintf(" %3.0f%%", vmath.Clamp01(st.Progress)*100), text)
	x = r.drawText(x, 0, fmt.Sprintf(" │ pieces %d", st.Spawned), dim)
	if st.Falling > 0 {
		x = r.drawText(x, 0, fmt.Sprintf(" (%d falling)", st.Falling), dim)
	}
	if st.Filled {
		x = r.drawText(x, 0, " FILLED", r.colors.fg(RgbFilled).Bold(true))
	}
	if st.Paused {
		x = r.drawText(x, 0, " PAUSED", r.colors.fg(RgbPaused).Bold(true))
	}
	if st.Muted {
		x = r.drawText(x, 0, " muted", dim)
	}

	if hx := r.width - textWidth(helpText) - 1; hx > x+1 {
		r.drawText(hx, 0, helpText, dim)
	}
}

// progressBar renders p in [0,1] as a fixed-width bar
func progressBar(p float64, width int) string {
	filled := int(math.Round(vmath.Clamp01(p) * float64(width)))
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

func (r *Renderer) drawPath(p Projector, path []vmath.Vec3F) {
	style := r.colors.fg(RgbPath)
	for _, v := range path {
		if x, y, ok := p.Project(v); ok {
			r.setCell(x, y, '·', style)
		}
	}
}

func (r *Renderer) drawCone(p Projector, sc Scene) {
	style := r.colors.fg(RgbCone)
	c := sc.ConeRim

	if p.Plane == PlaneTop {
		for i := 0; i < rimSegments; i++ {
			a := float64(i) / rimSegments * 2 * math.Pi
			v := vmath.Vec3F{X: c.X + sc.ConeRadius*math.Cos(a), Y: c.Y, Z: c.Z + sc.ConeRadius*math.Sin(a)}
			if x, y, ok := p.Project(v); ok {
				r.setCell(x, y, '○', style)
			}
		}
		return
	}

	left := vmath.V3FAdd(c, vmath.Vec3F{X: -sc.ConeRadius})
	right := vmath.V3FAdd(c, vmath.Vec3F{X: sc.ConeRadius})
	tip := vmath.V3FAdd(c, vmath.Vec3F{Y: -sc.ConeDepth})

	lx, ly, _ := p.Project(left)
	rx, ry, _ := p.Project(right)
	tx, ty, _ := p.Project(tip)
	r.drawLine(lx, ly, tx, ty, '\\', style)
	r.drawLine(rx, ry, tx, ty, '/', style)
	r.drawLine(lx, ly, rx, ry, '═', style)
}

func (r *Renderer) drawPieces(p Projector, pieces []PieceView) {
	for _, pc := range pieces {
		if x, y, ok := p.Project(pc.Position); ok {
			glyph := pc.Glyph
			if !pc.Landed {
				glyph = '•'
			}
			r.setCell(x, y, glyph, r.colors.tint(pc.Style))
		}
	}
}

func (r *Renderer) drawRig(p Projector, sc Scene) {
	if x, y, ok := p.Project(sc.Home); ok {
		r.setCell(x, y, '+', r.colors.fg(RgbHome))
	}

	x, y, ok := p.Project(sc.Rig)
	if !ok {
		return
	}
	body := r.colors.fg(RgbMachine)
	if p.Plane == PlaneTop {
		r.drawText(x-1, y, "[■]", body)
		return
	}
	r.drawText(x-2, y, "▐███▌", body)
	if nx, ny, ok := p.Project(sc.Nozzle); ok {
		r.setCell(nx, ny, '▼', r.colors.fg(RgbNozzle))
	}
}

// drawSticks draws the flavor levers in a row on top of the side view's rig
func (r *Renderer) drawSticks(sc Scene) {
	x, y, ok := r.side.Project(sc.Rig)
	if !ok || len(sc.Sticks) == 0 {
		return
	}
	start := x - (len(sc.Sticks)-1)
	for i, st := range sc.Sticks {
		style := r.colors.fg(RgbStickIdle)
		if st.Engaged {
			style = r.colors.tint(st.Style).Bold(true)
		}
		r.setCell(start+i*2, y-1, stickGlyph(st.Angle), style)
	}
}

// stickGlyph picks a lever glyph for a bend angle in degrees
func stickGlyph(angle float64) rune {
	switch {
	case math.Abs(angle) < parameter.StickAngle/3:
		return '│'
	case angle < 0:
		return '╲'
	default:
		return '╱'
	}
}

func (r *Renderer) drawButton(b ButtonView) {
	bounds := b.Bounds
	if bounds.W < 3 || bounds.H < 1 {
		return
	}

	w := int(math.Round(float64(bounds.W) * b.Scale))
	w = min(max(w, 3), bounds.W)
	x := bounds.X + (bounds.W-w)/2

	frame := r.colors.fg(RgbButton)
	label := r.colors.tint(b.Style).Bold(true)
	if b.Pressed {
		frame = frame.Reverse(true)
		label = label.Reverse(true)
	}

	inner := w - 2
	r.drawText(x, bounds.Y, "┌"+strings.Repeat("─", inner)+"┐", frame)
	mid := bounds.Y + bounds.H/2
	r.setCell(x, mid, '│', frame)
	r.drawText(x+1, mid, strings.Repeat(" ", inner), label)
	text := b.Label
	if textWidth(text) > inner {
		text = string([]rune(text)[:inner])
	}
	r.drawText(x+1+(inner-textWidth(text))/2, mid, text, label)
	r.setCell(x+w-1, mid, '│', frame)
	r.drawText(x, bounds.Y+bounds.H-1, "└"+strings.Repeat("─", inner)+"┘", frame)
}

// ButtonStyle returns the label style of a flavor's button
func ButtonStyle(reg *flavor.Registry, f flavor.Flavor) tcell.Style {
	if m, ok := reg.Lookup(f); ok {
		return m.Style()
	}
	return tcell.StyleDefault
}
