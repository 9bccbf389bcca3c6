package render

import (
	"github.com/gdamore/tcell/v2"
)

// RenderBuffer is a cell compositor with touched tracking
// Untouched cells get the default background on flush
type RenderBuffer struct {
	cells   []Cell
	touched []bool
	width   int
	height  int
}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
		b.touched = make([]bool, size)
	} else {
		b.cells = b.cells[:size]
		b.touched = b.touched[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to empty using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: ' ', Fg: RgbBackground, Bg: RgbBackground}
	b.touched[0] = false
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
	for filled := 1; filled < len(b.touched); filled *= 2 {
		copy(b.touched[filled:], b.touched[:filled])
	}
}

// Bounds returns the buffer dimensions
func (b *RenderBuffer) Bounds() (int, int) {
	return b.width, b.height
}

func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at x,y; out of bounds returns the zero cell
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// SetFgOnly writes rune and foreground, preserving the background
func (b *RenderBuffer) SetFgOnly(x, y int, r rune, fg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Rune = r
	dst.Fg = fg
}

// SetBgOnly replaces the background, preserving rune and foreground
func (b *RenderBuffer) SetBgOnly(x, y int, bg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx].Bg = bg
	b.touched[idx] = true
}

// SetWithBg writes a cell with explicit fg and bg colors
func (b *RenderBuffer) SetWithBg(x, y int, r rune, fg, bg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx] = Cell{Rune: r, Fg: fg, Bg: bg}
	b.touched[idx] = true
}

// Overlay blends src over every cell, foreground and background
func (b *RenderBuffer) Overlay(src RGB, alpha float64) {
	if alpha <= 0 {
		return
	}
	b.finalize()
	for i := range b.cells {
		b.cells[i].Fg = b.cells[i].Fg.Blend(src, alpha)
		b.cells[i].Bg = b.cells[i].Bg.Blend(src, alpha)
		b.touched[i] = true
	}
}

// finalize sets default background to untouched cells
func (b *RenderBuffer) finalize() {
	for i := range b.cells {
		if !b.touched[i] {
			b.cells[i].Bg = RgbBackground
		}
	}
}

// FlushToScreen writes every cell to the screen; caller calls Show
func (b *RenderBuffer) FlushToScreen(screen tcell.Screen) {
	b.finalize()
	for y := 0; y < b.height; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x, c := range row {
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			style := tcell.StyleDefault.Foreground(c.Fg.TCell()).Background(c.Bg.TCell())
			screen.SetContent(x, y, r, nil, style)
		}
	}
}
