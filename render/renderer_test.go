package render

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/dispenser/cone"
	"github.com/lixenwraith/dispenser/dispense"
	"github.com/lixenwraith/dispenser/flavor"
	"github.com/lixenwraith/dispenser/input"
	"github.com/lixenwraith/dispenser/vmath"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)
	return screen
}

func rowText(screen tcell.SimulationScreen, y int) string {
	cells, w, _ := screen.GetContents()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		c := cells[y*w+x]
		if len(c.Runes) == 0 {
			sb.WriteRune(' ')
			continue
		}
		sb.WriteRune(c.Runes[0])
	}
	return sb.String()
}

func TestProjectorCentersViewVolume(t *testing.T) {
	view := input.Rect{X: 0, Y: 0, W: 40, H: 20}
	lo := vmath.Vec3F{X: -1, Y: -1, Z: -1}
	hi := vmath.Vec3F{X: 1, Y: 1, Z: 1}
	p := NewProjector(view, PlaneSide, lo, hi)

	x, y, ok := p.Project(vmath.V3FZero)
	if !ok || x != 20 || y != 10 {
		t.Errorf("origin projected to (%d,%d,%v), want (20,10,true)", x, y, ok)
	}

	// Up is toward row 0
	_, yUp, _ := p.Project(vmath.Vec3F{Y: 0.5})
	if yUp >= y {
		t.Errorf("point above origin at row %d, origin at row %d", yUp, y)
	}

	if _, _, ok := p.Project(vmath.Vec3F{X: 50}); ok {
		t.Error("far point reported inside view")
	}
}

func TestProjectorKeepsAspect(t *testing.T) {
	view := input.Rect{W: 80, H: 20}
	p := NewProjector(view, PlaneSide, vmath.Vec3F{X: -2, Y: -2}, vmath.Vec3F{X: 2, Y: 2})

	cx, cy, _ := p.Project(vmath.V3FZero)
	rx, _, _ := p.Project(vmath.Vec3F{X: 1})
	_, uy, _ := p.Project(vmath.Vec3F{Y: 1})

	horizontal := rx - cx
	vertical := cy - uy
	if horizontal != 2*vertical {
		t.Errorf("one world unit spans %d columns and %d rows, want 2:1", horizontal, vertical)
	}
}

func TestProjectorTopPlaneMapsZ(t *testing.T) {
	view := input.Rect{W: 40, H: 20}
	p := NewProjector(view, PlaneTop, vmath.Vec3F{X: -1, Z: -1}, vmath.Vec3F{X: 1, Z: 1})

	_, yBack, _ := p.Project(vmath.Vec3F{Z: -0.8})
	_, yFront, _ := p.Project(vmath.Vec3F{Z: 0.8})
	if yBack >= yFront {
		t.Errorf("back of scene at row %d, front at row %d; back should be higher", yBack, yFront)
	}

	// Height is irrelevant from above
	x1, y1, _ := p.Project(vmath.Vec3F{X: 0.3, Y: 5})
	x2, y2, _ := p.Project(vmath.Vec3F{X: 0.3, Y: -5})
	if x1 != x2 || y1 != y2 {
		t.Errorf("Y changed top projection: (%d,%d) vs (%d,%d)", x1, y1, x2, y2)
	}
}

func TestStickGlyph(t *testing.T) {
	tests := []struct {
		angle float64
		want  rune
	}{
		{0, '│'},
		{-2, '│'},
		{-30, '╲'},
		{30, '╱'},
	}
	for _, tt := range tests {
		if got := stickGlyph(tt.angle); got != tt.want {
			t.Errorf("stickGlyph(%v) = %q, want %q", tt.angle, got, tt.want)
		}
	}
}

func TestProgressBar(t *testing.T) {
	if got := progressBar(0, 4); got != "[░░░░]" {
		t.Errorf("empty bar = %q", got)
	}
	if got := progressBar(0.5, 4); got != "[██░░]" {
		t.Errorf("half bar = %q", got)
	}
	if got := progressBar(3, 4); got != "[████]" {
		t.Errorf("overfull bar = %q", got)
	}
}

type nopDispenser struct{}

func (nopDispenser) Begin(f flavor.Flavor, c *cone.Cone) (dispense.Session, error) {
	return dispense.Session{Flavor: f, Active: true}, nil
}
func (nopDispenser) End(flavor.Flavor) {}

func TestLayoutPlacesButtonsOnBottomRows(t *testing.T) {
	screen := newSimScreen(t, 80, 24)
	r := NewRenderer(screen, false)
	s := input.NewSurface(nopDispenser{}, cone.New(nil), slog.Default())
	r.Layout(s)

	prevRight := -1
	for _, b := range s.Buttons() {
		if b.Bounds.Y != 24-buttonRows || b.Bounds.H != buttonRows {
			t.Errorf("%s button at row %d height %d", b.Label, b.Bounds.Y, b.Bounds.H)
		}
		if b.Bounds.X <= prevRight {
			t.Errorf("%s button overlaps previous", b.Label)
		}
		prevRight = b.Bounds.X + b.Bounds.W - 1
	}
	if prevRight >= 80 {
		t.Errorf("buttons overflow screen: right edge %d", prevRight)
	}

	// Every button can be hit through its center
	for _, b := range s.Buttons() {
		f, ok := s.HitTest(b.Bounds.X+b.Bounds.W/2, b.Bounds.Y+1)
		if !ok || f != b.Flavor {
			t.Errorf("hit test at %s center = %v,%v", b.Label, f, ok)
		}
	}
}

func TestDrawRendersStatusAndButtons(t *testing.T) {
	screen := newSimScreen(t, 100, 30)
	r := NewRenderer(screen, true)

	sc := Scene{
		Path:       []vmath.Vec3F{{X: 1}, {X: 0, Y: 1}},
		ConeRadius: 1.6,
		ConeDepth:  2.2,
		Home:       vmath.Vec3F{Y: 3.4, Z: -2.5},
		Rig:        vmath.Vec3F{X: 1, Y: 3.4},
		Nozzle:     vmath.Vec3F{X: 1, Y: 2.8},
		Pieces: []PieceView{
			{Position: vmath.Vec3F{X: 0.5}, Glyph: '●', Landed: true},
		},
		Sticks: []StickView{{Label: "Strawberry", Angle: -30, Engaged: true}},
		Buttons: []ButtonView{
			{Label: "Strawberry", Bounds: input.Rect{X: 10, Y: 27, W: 16, H: 3}, Scale: 1},
		},
		Status: Status{State: "active", Flavor: "Strawberry", Progress: 0.5, Spawned: 25},
	}
	r.Draw(sc)

	status := rowText(screen, 0)
	for _, want := range []string{"DISPENSER", "active", "Strawberry", "50%", "pieces 25"} {
		if !strings.Contains(status, want) {
			t.Errorf("status line %q missing %q", status, want)
		}
	}
	if !strings.Contains(rowText(screen, 28), "Strawberry") {
		t.Errorf("button label missing from row 28: %q", rowText(screen, 28))
	}

	found := false
	for y := 1; y < 27; y++ {
		if strings.ContainsRune(rowText(screen, y), '▼') {
			found = true
			break
		}
	}
	if !found {
		t.Error("nozzle not drawn")
	}
}

func TestDrawFilledAndPausedBadges(t *testing.T) {
	screen := newSimScreen(t, 120, 30)
	r := NewRenderer(screen, false)
	r.Draw(Scene{Status: Status{State: "idle", Progress: 1, Filled: true, Paused: true}})

	status := rowText(screen, 0)
	if !strings.Contains(status, "FILLED") || !strings.Contains(status, "PAUSED") {
		t.Errorf("status line %q missing badges", status)
	}
}

func TestDrawSurvivesTinyScreen(t *testing.T) {
	screen := newSimScreen(t, 10, 3)
	r := NewRenderer(screen, true)
	r.Draw(Scene{Rig: vmath.Vec3F{Y: 3}, Status: Status{State: "idle"}})
	if !strings.Contains(rowText(screen, 0), "DISP") {
		t.Errorf("status line not drawn on tiny screen: %q", rowText(screen, 0))
	}
}
