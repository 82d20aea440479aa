package render

import (
	"github.com/gdamore/tcell/v2"
)

// RGB color definitions for the machine scene
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbStatusBar  = tcell.NewRGBColor(255, 255, 255) // White
	RgbStatusDim  = tcell.NewRGBColor(140, 140, 150) // Muted gray for labels
	RgbProgress   = tcell.NewRGBColor(255, 200, 80)  // Warm yellow progress fill
	RgbFilled     = tcell.NewRGBColor(80, 220, 120)  // Green "filled" badge
	RgbPaused     = tcell.NewRGBColor(255, 165, 0)   // Orange pause badge

	RgbCone      = tcell.NewRGBColor(210, 160, 90)  // Waffle tan
	RgbPath      = tcell.NewRGBColor(70, 75, 100)   // Faint swirl guide
	RgbMachine   = tcell.NewRGBColor(180, 190, 200) // Brushed steel
	RgbNozzle    = tcell.NewRGBColor(230, 230, 240) // Bright steel
	RgbHome      = tcell.NewRGBColor(60, 60, 80)    // Home marker
	RgbDivider   = tcell.NewRGBColor(50, 50, 70)    // View separator
	RgbButton    = tcell.NewRGBColor(200, 200, 210) // Idle button frame
	RgbStickIdle = tcell.NewRGBColor(120, 120, 130) // Stick at rest
)

// palette resolves styles, collapsing to the terminal default when color is off
type palette struct {
	color bool
}

func (p palette) fg(c tcell.Color) tcell.Style {
	if !p.color {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(c).Background(RgbBackground)
}

func (p palette) base() tcell.Style {
	if !p.color {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Background(RgbBackground)
}

// tint keeps a material style's foreground on the scene background
func (p palette) tint(s tcell.Style) tcell.Style {
	if !p.color {
		return tcell.StyleDefault
	}
	return s.Background(RgbBackground)
}
