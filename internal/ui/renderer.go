package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/amaze/internal/maze"
	"github.com/samdwyer/amaze/internal/render"
)

// Frame is everything needed to draw one screen of the viewer.
type Frame struct {
	Grid    *maze.Wall4Grid
	Style   render.Style
	OffsetX int // first maze column shown
	OffsetY int // first maze row shown
	Status  string
	Wall    tcell.Color
	Path    tcell.Color
	Accent  tcell.Color
}

// Renderer handles drawing a maze to a canvas.
type Renderer struct {
	canvas Canvas
}

// NewRenderer creates a new renderer for the given canvas.
func NewRenderer(canvas Canvas) *Renderer {
	return &Renderer{canvas: canvas}
}

// MazeViewport returns how many maze cells fit on the canvas, leaving the
// bottom row for the status line.
func (r *Renderer) MazeViewport() (width, height int) {
	w, h := r.canvas.Size()
	return w, max(h-1, 0)
}

// Render draws the visible part of the maze and the status line. Cells
// outside the maze are cleared to the wall colour.
func (r *Renderer) Render(f Frame) {
	viewW, viewH := r.MazeViewport()
	mazeStyle := tcell.StyleDefault.Background(f.Wall).Foreground(f.Path)
	blank := tcell.StyleDefault.Background(tcell.ColorBlack)

	for sy := 0; sy < viewH; sy++ {
		for sx := 0; sx < viewW; sx++ {
			c := maze.NewCoord(sx+f.OffsetX, sy+f.OffsetY)
			if f.Grid == nil || !maze.InBounds(f.Grid, c) {
				r.canvas.SetContent(sx, sy, ' ', blank)
				continue
			}
			r.canvas.SetContent(sx, sy, render.Glyph(f.Style, f.Grid.DoorsAt(c)), mazeStyle)
		}
	}

	r.RenderMessage(f.Status, viewH, tcell.StyleDefault.Foreground(f.Accent))
}

// RenderMessage writes msg on row y, truncated to the canvas width and padded
// with spaces to clear what was there before.
func (r *Renderer) RenderMessage(msg string, y int, style tcell.Style) {
	w, h := r.canvas.Size()
	if y < 0 || y >= h {
		return
	}
	runes := []rune(msg)
	for x := 0; x < w; x++ {
		ch := ' '
		if x < len(runes) {
			ch = runes[x]
		}
		r.canvas.SetContent(x, y, ch, style)
	}
}
