// Package core provides the platform primitives shared by the memory engine
// and its front-ends. It has no external dependencies (especially no Bubble
// Tea) so engine rendering stays pure and testable.
package core

// Rect is an axis-aligned box in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Grid lays out Count equally sized cells in Cols columns.
type Grid struct {
	Cols  int
	Count int
	CellW int
	CellH int
	GapX  int
	GapY  int
}

// Rows returns the number of rows needed to hold every cell.
func (g Grid) Rows() int {
	if g.Cols <= 0 {
		return 0
	}
	return (g.Count + g.Cols - 1) / g.Cols
}

// Size returns the total width and height of the laid out grid.
func (g Grid) Size() (int, int) {
	rows := g.Rows()
	if rows == 0 {
		return 0, 0
	}
	cols := Min(g.Cols, g.Count)
	w := cols*g.CellW + (cols-1)*g.GapX
	h := rows*g.CellH + (rows-1)*g.GapY
	return w, h
}

// Cell returns the rectangle of cell i relative to the grid origin (ox, oy).
func (g Grid) Cell(i, ox, oy int) Rect {
	col := i % g.Cols
	row := i / g.Cols
	return Rect{
		X: ox + col*(g.CellW+g.GapX),
		Y: oy + row*(g.CellH+g.GapY),
		W: g.CellW,
		H: g.CellH,
	}
}

// Move returns the index reached by stepping (dx, dy) cells from i.
// Movement is clamped to the grid; a step into the ragged last row
// lands on its last cell.
func (g Grid) Move(i, dx, dy int) int {
	if g.Count == 0 || g.Cols <= 0 {
		return 0
	}
	col := Clamp(i%g.Cols+dx, 0, g.Cols-1)
	row := Clamp(i/g.Cols+dy, 0, g.Rows()-1)
	return Min(row*g.Cols+col, g.Count-1)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
