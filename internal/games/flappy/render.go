package flappy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Visual characters for rendering
const (
	BirdChar      = '●'
	BirdBeakChar  = '▶'
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	GroundChar    = '═'
)

// Render draws a snapshot into a character screen. Row 0 holds the score,
// the last row is the ground and the rows between show the world scaled to
// fit.
func Render(dst *core.Screen, snap Snapshot) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	if w == 0 || h < 3 || snap.Width <= 0 || snap.Height <= 0 {
		return
	}

	vp := viewport{
		sx:     float64(w) / snap.Width,
		sy:     float64(h-2) / snap.Height,
		top:    1,
		bottom: h - 2,
	}

	dst.DrawHLine(0, h-1, w, GroundChar, core.ColorGreen)

	for _, p := range snap.Pipes {
		drawPipe(dst, vp, p)
	}
	drawBird(dst, vp, snap.Bird)

	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", snap.Score), core.ColorBrightYellow)

	if snap.Over {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Final Score: %d  |  Press Space to Restart", snap.Score))
	}
}

// viewport maps world coordinates to screen cells.
type viewport struct {
	sx, sy      float64
	top, bottom int // Inclusive playfield rows
}

// cells converts a world rectangle to a clipped cell rectangle. Any
// non-empty world rectangle covers at least one cell.
func (vp viewport) cells(r core.Rect) (x, y, w, h int) {
	s := r.Scale(vp.sx, vp.sy)
	x0 := int(math.Floor(s.X))
	x1 := int(math.Ceil(s.Right()))
	y0 := int(math.Floor(s.Y)) + vp.top
	y1 := int(math.Ceil(s.Bottom())) + vp.top

	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	y0 = core.Clamp(y0, vp.top, vp.bottom+1)
	y1 = core.Clamp(y1, vp.top, vp.bottom+1)
	return x0, y0, x1 - x0, y1 - y0
}

func drawPipe(dst *core.Screen, vp viewport, p PipeView) {
	if !p.Top.Empty() {
		x, y, w, h := vp.cells(p.Top)
		dst.FillRect(x, y, w, h, PipeChar, core.ColorGreen)
		if h > 0 {
			dst.FillRect(x, y+h-1, w, 1, PipeCapTop, core.ColorBrightGreen)
		}
	}

	if !p.Bottom.Empty() {
		x, y, w, h := vp.cells(p.Bottom)
		dst.FillRect(x, y, w, h, PipeChar, core.ColorGreen)
		if h > 0 {
			dst.FillRect(x, y, w, 1, PipeCapBottom, core.ColorBrightGreen)
		}
	}
}

func drawBird(dst *core.Screen, vp viewport, b BirdView) {
	x, y, w, h := vp.cells(b.Bounds)
	if h == 0 {
		// Below the visible playfield: keep it on the last row
		y, h = vp.bottom, 1
	}
	dst.FillRect(x, y, w, h, BirdChar, core.ColorYellow)
	dst.SetColored(x+w-1, y, BirdBeakChar, core.ColorBrightYellow)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorWhite)

	dst.DrawText(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, core.ColorRed)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle, core.ColorWhite)
}
