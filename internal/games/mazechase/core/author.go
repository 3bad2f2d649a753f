package core

// Maze is an authored map: walls, collectible layers, the sanctuary and the
// spawn cells of every entity. It is the unit the simulation resets from.
type Maze struct {
	Grid          *Grid
	Common        *Layer
	Special       *Layer
	Sanctuary     CellRect
	SeekerSpawn   CellPos
	PursuerSpawns []CellPos
}

// Clone returns a deep copy of the maze.
func (m *Maze) Clone() *Maze {
	spawns := make([]CellPos, len(m.PursuerSpawns))
	copy(spawns, m.PursuerSpawns)
	return &Maze{
		Grid:          m.Grid.Clone(),
		Common:        m.Common.Clone(),
		Special:       m.Special.Clone(),
		Sanctuary:     m.Sanctuary,
		SeekerSpawn:   m.SeekerSpawn,
		PursuerSpawns: spawns,
	}
}

// Remaining returns count(Common) + count(Special).
func (m *Maze) Remaining() int {
	return m.Common.Count() + m.Special.Count()
}

// ItemAt reports which collectible p holds. Special wins if both are set.
func (m *Maze) ItemAt(p CellPos) Item {
	switch {
	case m.Special.Get(p):
		return ItemSpecial
	case m.Common.Get(p):
		return ItemCommon
	default:
		return ItemNone
	}
}

// Spawns returns the seeker spawn followed by the pursuer spawns.
func (m *Maze) Spawns() []CellPos {
	out := make([]CellPos, 0, 1+len(m.PursuerSpawns))
	out = append(out, m.SeekerSpawn)
	return append(out, m.PursuerSpawns...)
}

// DefaultSanctuary returns the pursuers' home region for a board size.
func DefaultSanctuary(rows, cols int) CellRect {
	cr, cc := rows/2, cols/2
	return CellRect{R0: cr - 1, C0: cc - 2, R1: cr + 1, C1: cc + 2}
}

// DefaultSeekerSpawn returns the seeker's spawn cell for a board size.
func DefaultSeekerSpawn(rows, cols int) CellPos {
	return At(rows-3, cols/2)
}

// DefaultPursuerSpawns returns the three pursuer spawn cells on the center row.
func DefaultPursuerSpawns(rows, cols int) []CellPos {
	cr, cc := rows/2, cols/2
	return []CellPos{At(cr, cc-1), At(cr, cc), At(cr, cc+1)}
}

// DefaultLandmarks returns the cells that receive special collectibles: the
// four inner corners and two cells on the center lane.
func DefaultLandmarks(rows, cols int) []CellPos {
	return []CellPos{
		At(3, 3), At(3, cols-4), At(rows-4, 3), At(rows-4, cols-4),
		At(rows/2, 5), At(rows/2, cols-6),
	}
}

// SeedCollectibles places a common item on every open cell reachable from
// seed, strips the sanctuary, then converts reachable open landmarks into
// special items.
func SeedCollectibles(g *Grid, seed CellPos, sanctuary CellRect, landmarks []CellPos) (common, special *Layer) {
	common = NewLayer(g.Rows, g.Cols)
	special = NewLayer(g.Rows, g.Cols)
	reach := Reachable(g, seed)

	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			p := At(row, col)
			if g.At(p) == Open && reach.Get(p) {
				common.Set(p, true)
			}
		}
	}

	common.ClearRect(sanctuary)
	special.ClearRect(sanctuary)

	for _, p := range landmarks {
		if !g.InBounds(p) || g.At(p) != Open || !reach.Get(p) {
			continue
		}
		special.Set(p, true)
		common.Set(p, false)
	}

	return common, special
}

// BuildDefaultMaze authors the built-in map for the given board size and
// seeds its collectibles.
func BuildDefaultMaze(rows, cols int) *Maze {
	g := NewGrid(rows, cols)
	addDefaultGeometry(g)

	m := &Maze{
		Grid:          g,
		Sanctuary:     DefaultSanctuary(rows, cols),
		SeekerSpawn:   DefaultSeekerSpawn(rows, cols),
		PursuerSpawns: DefaultPursuerSpawns(rows, cols),
	}
	for _, p := range m.Spawns() {
		g.Set(p, Open)
	}
	m.Common, m.Special = SeedCollectibles(g, m.SeekerSpawn, m.Sanctuary, DefaultLandmarks(rows, cols))
	return m
}

func addDefaultGeometry(g *Grid) {
	rows, cols := g.Rows, g.Cols
	cr, cc := rows/2, cols/2

	hWall := func(r, c0, c1 int) { g.Fill(CellRect{R0: r, C0: c0, R1: r, C1: c1}, Wall) }
	vWall := func(c, r0, r1 int) { g.Fill(CellRect{R0: r0, C0: c, R1: r1, C1: c}, Wall) }
	block := func(r0, c0, r1, c1 int) { g.Fill(CellRect{R0: r0, C0: c0, R1: r1, C1: c1}, Wall) }
	open := func(r, c int) { g.Set(At(r, c), Open) }

	// Outer ring
	hWall(0, 0, cols-1)
	hWall(rows-1, 0, cols-1)
	vWall(0, 0, rows-1)
	vWall(cols-1, 0, rows-1)

	// Inner ring, two cells in from the border
	hWall(2, 2, cols-3)
	hWall(rows-3, 2, cols-3)
	vWall(2, 2, rows-3)
	vWall(cols-3, 2, rows-3)

	// Central cross
	hWall(cr, 3, cols-4)
	vWall(cc, 3, rows-4)

	// Sanctuary block, then a continuous corridor along the center row
	// that also opens both tunnel cells.
	block(cr-2, cc-3, cr+2, cc+3)
	for c := 0; c < cols; c++ {
		open(cr, c)
	}

	// Corner rooms, one opening each
	block(3, 3, 5, 6)
	open(4, 6)
	block(3, cols-7, 5, cols-4)
	open(4, cols-7)
	block(rows-6, 3, rows-4, 6)
	open(rows-5, 6)
	block(rows-6, cols-7, rows-4, cols-4)
	open(rows-5, cols-7)

	// Extra vertical walls for loops
	vWall(6, 6, rows-7)
	open(cr, 6)
	vWall(cols-7, 6, rows-7)
	open(cr, cols-7)

	// Small blocks in the lower half
	block(cr+3, cc-9, cr+4, cc-7)
	block(cr+3, cc-2, cr+4, cc)
	block(cr+3, cc+7, cr+4, cc+9)

	// Vertical passes
	open(cr-4, cc)
	open(cr+4, cc)
}
