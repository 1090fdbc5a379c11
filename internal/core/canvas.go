package core

import (
	"strings"
)

// Canvas is a 2D color buffer made of cells, each covering CellW x CellH
// logical pixels. Backends without real pixels (terminal, headless)
// rasterize draw calls into it and flush or inspect the result.
type Canvas struct {
	width  int // Width in cells
	height int // Height in cells
	cellW  int
	cellH  int
	bg     Color
	cells  [][]Color
}

// NewCanvas creates a canvas large enough to hold a pxW x pxH pixel area.
// Cell sizes below 1 are treated as 1.
func NewCanvas(pxW, pxH, cellW, cellH int) *Canvas {
	cellW = Max(cellW, 1)
	cellH = Max(cellH, 1)
	c := &Canvas{
		width:  (pxW + cellW - 1) / cellW,
		height: (pxH + cellH - 1) / cellH,
		cellW:  cellW,
		cellH:  cellH,
		bg:     ColorBlack,
	}
	c.cells = make([][]Color, c.height)
	for y := range c.cells {
		c.cells[y] = make([]Color, c.width)
	}
	c.Clear(ColorBlack)
	return c
}

// Width returns the canvas width in cells.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in cells.
func (c *Canvas) Height() int {
	return c.height
}

// Background returns the color of the last Clear.
func (c *Canvas) Background() Color {
	return c.bg
}

// Clear fills every cell with the given color and makes it the background.
func (c *Canvas) Clear(col Color) {
	c.bg = col
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = col
		}
	}
}

// FillRect paints every cell whose center lies inside r (in pixels).
// Parts of r outside the canvas are clipped.
func (c *Canvas) FillRect(r Rect, col Color) {
	bounds := NewRect(0, 0, c.width*c.cellW, c.height*c.cellH)
	clipped, ok := r.Intersect(bounds)
	if !ok {
		return
	}
	for y := clipped.Y / c.cellH; y*c.cellH < clipped.Bottom() && y < c.height; y++ {
		cy := y*c.cellH + c.cellH/2
		for x := clipped.X / c.cellW; x*c.cellW < clipped.Right() && x < c.width; x++ {
			cx := x*c.cellW + c.cellW/2
			if r.Contains(cx, cy) {
				c.cells[y][x] = col
			}
		}
	}
}

// At returns the color of a cell. Out-of-bounds cells read as background.
func (c *Canvas) At(x, y int) Color {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return c.bg
	}
	return c.cells[y][x]
}

// String renders the canvas as text: background cells are spaces and any
// other cell is '#'. Rows are joined with newlines.
func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow(c.width*c.height + c.height)

	for y := 0; y < c.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < c.width; x++ {
			if c.cells[y][x] == c.bg {
				sb.WriteRune(' ')
			} else {
				sb.WriteRune('#')
			}
		}
	}
	return sb.String()
}
