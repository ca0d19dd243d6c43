package viz

import (
	"strings"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a braille-cell terminal canvas. Each character cell packs
// 2x4 sub-pixels, so the drawable area is (Width*2) x (Height*4).
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800 // Empty braille char
		}
	}
	return c
}

// Set lights the sub-pixel at (x, y).
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// Clear resets the canvas.
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Viewport maps world coordinates onto canvas sub-pixels.
type Viewport struct {
	MinX, MaxX float64
	MinY, MaxY float64
	canvas     *Canvas
}

func NewViewport(c *Canvas, minX, maxX, minY, maxY float64) *Viewport {
	return &Viewport{MinX: minX, MaxX: maxX, MinY: minY, MaxY: maxY, canvas: c}
}

func (v *Viewport) toPixel(x, y float64) (int, int) {
	px := (x - v.MinX) / (v.MaxX - v.MinX) * float64(v.canvas.Width*2-1)
	// Screen y grows downward.
	py := (v.MaxY - y) / (v.MaxY - v.MinY) * float64(v.canvas.Height*4-1)
	return int(px + 0.5), int(py + 0.5)
}

// DrawClosedCurve draws the polyline through the points, closing it
// back to the first point. Open curves (plates) look right too: the
// closing segment retraces the surface.
func (v *Viewport) DrawClosedCurve(xs, ys []float64) {
	n := len(xs)
	if n < 2 {
		return
	}
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		x0, y0 := v.toPixel(xs[i], ys[i])
		x1, y1 := v.toPixel(xs[j], ys[j])
		v.canvas.DrawLine(x0, y0, x1, y1)
	}
}

// Mark lights a single world point.
func (v *Viewport) Mark(x, y float64) {
	px, py := v.toPixel(x, y)
	v.canvas.Set(px, py)
}
