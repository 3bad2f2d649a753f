package core

// Layer is a boolean overlay with the same shape as the Grid. The engine
// keeps two of them: common and special collectibles.
type Layer struct {
	Rows int
	Cols int
	Bits []bool
}

// NewLayer creates an empty layer.
func NewLayer(rows, cols int) *Layer {
	return &Layer{Rows: rows, Cols: cols, Bits: make([]bool, rows*cols)}
}

func (l *Layer) inBounds(p CellPos) bool {
	return p.Row >= 0 && p.Row < l.Rows && p.Col >= 0 && p.Col < l.Cols
}

// Get reports whether p is marked. Out-of-range positions are unmarked.
func (l *Layer) Get(p CellPos) bool {
	if !l.inBounds(p) {
		return false
	}
	return l.Bits[p.Row*l.Cols+p.Col]
}

// Set marks or clears p. Out-of-range positions are ignored.
func (l *Layer) Set(p CellPos, v bool) {
	if l.inBounds(p) {
		l.Bits[p.Row*l.Cols+p.Col] = v
	}
}

// Count returns the number of marked cells.
func (l *Layer) Count() int {
	n := 0
	for _, b := range l.Bits {
		if b {
			n++
		}
	}
	return n
}

// Clear unmarks every cell.
func (l *Layer) Clear() {
	for i := range l.Bits {
		l.Bits[i] = false
	}
}

// ClearRect unmarks every cell inside r.
func (l *Layer) ClearRect(r CellRect) {
	for _, p := range r.Cells() {
		l.Set(p, false)
	}
}

// Clone returns a deep copy of the layer.
func (l *Layer) Clone() *Layer {
	bits := make([]bool, len(l.Bits))
	copy(bits, l.Bits)
	return &Layer{Rows: l.Rows, Cols: l.Cols, Bits: bits}
}

// CopyInto overwrites dst with the contents of l.
func (l *Layer) CopyInto(dst *Layer) {
	copy(dst.Bits, l.Bits)
}

// Equal returns true if both layers mark the same cells.
func (l *Layer) Equal(other *Layer) bool {
	if l.Rows != other.Rows || l.Cols != other.Cols {
		return false
	}
	for i, b := range l.Bits {
		if b != other.Bits[i] {
			return false
		}
	}
	return true
}

// CountOutside counts cells holding a common or special item that lie
// outside r.
func CountOutside(common, special *Layer, r CellRect) int {
	n := 0
	for row := 0; row < common.Rows; row++ {
		for col := 0; col < common.Cols; col++ {
			p := At(row, col)
			if r.Contains(p) {
				continue
			}
			if common.Get(p) || special.Get(p) {
				n++
			}
		}
	}
	return n
}
