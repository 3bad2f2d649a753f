package core

// TrailPoint is one recorded past position.
type TrailPoint struct {
	X, Y float64
	T    float64 // simulation time of the sample
}

// Entity is the seeker or one of the pursuers. Position is continuous, in
// sub-tile units, and always names the entity's center.
type Entity struct {
	Kind  Kind
	Label string
	Color string // hex color for renderers

	X, Y float64
	Dir  Dir // current heading, DirNone when stopped
	Next Dir // buffered request, applied at the next junction

	Speed   float64 // base speed; pursuers slow down while vulnerable
	Score   int
	Blocked bool // made no progress on the last advance

	Spawn CellPos
	Trail []TrailPoint
}

// Cell returns the cell the entity's center maps to, given the tile size and
// board dimensions.
func (e *Entity) Cell(tile float64, rows, cols int) CellPos {
	return cellFromPoint(e.X, e.Y, tile, rows, cols)
}

// record appends the current position to the trail and drops samples older
// than keep seconds.
func (e *Entity) record(now, keep float64) {
	e.Trail = append(e.Trail, TrailPoint{X: e.X, Y: e.Y, T: now})
	drop := 0
	for drop < len(e.Trail) && now-e.Trail[drop].T >= keep {
		drop++
	}
	if drop > 0 {
		e.Trail = append(e.Trail[:0], e.Trail[drop:]...)
	}
}
