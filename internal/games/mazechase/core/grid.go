package core

import "strings"

// Grid is the maze occupancy map. Cells are stored in row-major order:
// index = row*Cols + col. The map wraps horizontally: column lookups outside
// [0, Cols) resolve to the opposite side, row lookups outside [0, Rows) are
// always walls.
type Grid struct {
	Rows  int
	Cols  int
	Cells []Cell
}

// NewGrid creates a grid with every cell open.
func NewGrid(rows, cols int) *Grid {
	return &Grid{
		Rows:  rows,
		Cols:  cols,
		Cells: make([]Cell, rows*cols),
	}
}

// TunnelRow returns the row whose two border cells stay open for wrap-around.
func (g *Grid) TunnelRow() int {
	return g.Rows / 2
}

// wrapCol folds a column index into [0, Cols).
func (g *Grid) wrapCol(col int) int {
	col %= g.Cols
	if col < 0 {
		col += g.Cols
	}
	return col
}

// InBounds reports whether the position is inside the grid without wrapping.
func (g *Grid) InBounds(p CellPos) bool {
	return p.Row >= 0 && p.Row < g.Rows && p.Col >= 0 && p.Col < g.Cols
}

// IsBorder reports whether the position lies on the outer ring.
func (g *Grid) IsBorder(p CellPos) bool {
	return p.Row <= 0 || p.Row >= g.Rows-1 || p.Col <= 0 || p.Col >= g.Cols-1
}

// IsWall reports whether (row, col) blocks movement.
func (g *Grid) IsWall(row, col int) bool {
	if row < 0 || row >= g.Rows {
		return true
	}
	return g.Cells[row*g.Cols+g.wrapCol(col)] == Wall
}

// At returns the cell at p, or Wall when p is outside the grid.
func (g *Grid) At(p CellPos) Cell {
	if !g.InBounds(p) {
		return Wall
	}
	return g.Cells[p.Row*g.Cols+p.Col]
}

// Set changes the cell at p. Out-of-range positions are ignored.
func (g *Grid) Set(p CellPos, c Cell) {
	if g.InBounds(p) {
		g.Cells[p.Row*g.Cols+p.Col] = c
	}
}

// Fill marks every cell in the inclusive rectangle with c.
func (g *Grid) Fill(r CellRect, c Cell) {
	for row := r.R0; row <= r.R1; row++ {
		for col := r.C0; col <= r.C1; col++ {
			g.Set(At(row, col), c)
		}
	}
}

// AddBorders walls the outer ring and reopens the two tunnel cells.
func (g *Grid) AddBorders() {
	for row := 0; row < g.Rows; row++ {
		g.Set(At(row, 0), Wall)
		g.Set(At(row, g.Cols-1), Wall)
	}
	for col := 0; col < g.Cols; col++ {
		g.Set(At(0, col), Wall)
		g.Set(At(g.Rows-1, col), Wall)
	}
	tr := g.TunnelRow()
	g.Set(At(tr, 0), Open)
	g.Set(At(tr, g.Cols-1), Open)
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{Rows: g.Rows, Cols: g.Cols, Cells: cells}
}

// CopyInto overwrites dst with the contents of g. Both must share dimensions.
func (g *Grid) CopyInto(dst *Grid) {
	copy(dst.Cells, g.Cells)
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.Rows != other.Rows || g.Cols != other.Cols {
		return false
	}
	for i, c := range g.Cells {
		if c != other.Cells[i] {
			return false
		}
	}
	return true
}

// OpenCount returns the number of open cells.
func (g *Grid) OpenCount() int {
	n := 0
	for _, c := range g.Cells {
		if c == Open {
			n++
		}
	}
	return n
}

// String renders the grid with '#' for walls and '.' for open cells.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.Cols + 1) * g.Rows)
	for row := 0; row < g.Rows; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < g.Cols; col++ {
			if g.Cells[row*g.Cols+col] == Wall {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
