package core

import "fmt"

// CellPos addresses one grid cell by row and column.
type CellPos struct {
	Row int
	Col int
}

// At is a convenience constructor for CellPos.
func At(row, col int) CellPos {
	return CellPos{Row: row, Col: col}
}

// String returns a string representation of the position.
func (p CellPos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Step returns the neighbor one cell away in the given direction (no wrap).
func (p CellPos) Step(d Dir) CellPos {
	dx, dy := d.Delta()
	return CellPos{Row: p.Row + dy, Col: p.Col + dx}
}

// CellRect is an inclusive, axis-aligned range of cells.
type CellRect struct {
	R0, C0 int // Top-left cell
	R1, C1 int // Bottom-right cell (inclusive)
}

// Contains reports whether the cell lies inside the rectangle.
func (r CellRect) Contains(p CellPos) bool {
	return p.Row >= r.R0 && p.Row <= r.R1 && p.Col >= r.C0 && p.Col <= r.C1
}

// Cells returns every cell in the rectangle, row by row.
func (r CellRect) Cells() []CellPos {
	cells := make([]CellPos, 0, (r.R1-r.R0+1)*(r.C1-r.C0+1))
	for row := r.R0; row <= r.R1; row++ {
		for col := r.C0; col <= r.C1; col++ {
			cells = append(cells, At(row, col))
		}
	}
	return cells
}
