package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// setCell writes one rune, silently clipping to the screen
func (r *Renderer) setCell(x, y int, ch rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}

// drawText writes s starting at (x, y) and returns the column after the last rune
func (r *Renderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		r.setCell(x, y, ch, style)
		x += max(runewidth.RuneWidth(ch), 1)
	}
	return x
}

// textWidth is the cell width of s
func textWidth(s string) int {
	return runewidth.StringWidth(s)
}

// drawLine rasterizes a segment with Bresenham's algorithm
func (r *Renderer) drawLine(x0, y0, x1, y1 int, ch rune, style tcell.Style) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy

	for {
		r.setCell(x0, y0, ch, style)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
