package core

import "math"

// eps absorbs float noise when comparing travelled distances.
const eps = 1e-9

// settleRange is how many cells around an entity the position validator
// searches for a safe cell center.
const settleRange = 3

// maxSegments bounds how many junctions one advance may pass through.
const maxSegments = 3

// Engine moves entities through a grid. It reads walls only through
// continuous point sampling: a position is valid when its center and the four
// points at ±radius along each axis all fall on open cells.
type Engine struct {
	grid *Grid
	tun  Tuning
	memo *canGoMemo
}

// NewEngine creates a movement engine over g.
func NewEngine(g *Grid, t Tuning) *Engine {
	return &Engine{grid: g, tun: t, memo: newCanGoMemo()}
}

// Grid returns the grid the engine reads.
func (e *Engine) Grid() *Grid {
	return e.grid
}

// SetGrid swaps the grid and drops every memoized answer.
func (e *Engine) SetGrid(g *Grid) {
	e.grid = g
	e.memo.advance()
}

// SetCacheEnabled turns traversability memoization on or off.
func (e *Engine) SetCacheEnabled(on bool) {
	e.tun.CacheEnabled = on
	e.memo.advance()
}

// BeginTick invalidates memoized traversability answers.
func (e *Engine) BeginTick() {
	e.memo.advance()
}

// Width returns the playfield width in sub-tile units.
func (e *Engine) Width() float64 {
	return float64(e.grid.Cols) * e.tun.TileSize
}

// CellAt maps a continuous point to its cell, clamping into the grid. The
// result is for indexing only; collisions use ValidAt.
func (e *Engine) CellAt(x, y float64) CellPos {
	return cellFromPoint(x, y, e.tun.TileSize, e.grid.Rows, e.grid.Cols)
}

func cellFromPoint(x, y, tile float64, rows, cols int) CellPos {
	row := int(math.Floor(y / tile))
	col := int(math.Floor(x / tile))
	return At(clampInt(row, 0, rows-1), clampInt(col, 0, cols-1))
}

// Center returns the continuous coordinates of a cell's center.
func (e *Engine) Center(p CellPos) (x, y float64) {
	t := e.tun.TileSize
	return (float64(p.Col) + 0.5) * t, (float64(p.Row) + 0.5) * t
}

func (e *Engine) pointOpen(x, y float64) bool {
	t := e.tun.TileSize
	return !e.grid.IsWall(int(math.Floor(y/t)), int(math.Floor(x/t)))
}

// ValidAt reports whether an entity of radius r centered at (x, y) touches
// no wall.
func (e *Engine) ValidAt(x, y, r float64) bool {
	return e.pointOpen(x, y) &&
		e.pointOpen(x-r, y) &&
		e.pointOpen(x+r, y) &&
		e.pointOpen(x, y-r) &&
		e.pointOpen(x, y+r)
}

// CanGo reports whether an entity of radius r standing at the center of p
// can travel one cell in direction d. Columns wrap; rows do not.
func (e *Engine) CanGo(p CellPos, d Dir, r float64) bool {
	if d == DirNone {
		return false
	}
	if !e.tun.CacheEnabled {
		return e.canGo(p, d, r)
	}
	k := canGoKey{cell: p, dir: d, radius: r}
	if ok, hit := e.memo.lookup(k); hit {
		return ok
	}
	ok := e.canGo(p, d, r)
	e.memo.store(k, ok)
	return ok
}

func (e *Engine) canGo(p CellPos, d Dir, r float64) bool {
	n := p.Step(d)
	if n.Row < 0 || n.Row >= e.grid.Rows {
		return false
	}
	n.Col = e.grid.wrapCol(n.Col)
	if e.grid.At(n) == Wall {
		return false
	}
	cx, cy := e.Center(n)
	return e.ValidAt(cx, cy, r)
}

// Place puts the entity at the center of p, stopped.
func (e *Engine) Place(ent *Entity, p CellPos) {
	ent.X, ent.Y = e.Center(p)
	ent.Dir = DirNone
	ent.Next = DirNone
	ent.Blocked = false
}

// Advance moves the entity for dt seconds at the given speed.
//
// The distance is split into sub-steps no longer than maxStep, so no
// speed can carry the collision cross over a wall cell in one jump.
// Direction changes happen only at junctions: when the entity is within the
// snap tolerance of its cell center, or when a step would carry it across
// a center where it has to turn or stop. In the second case the entity is
// clamped onto the center and spends the rest of the distance on the new
// heading. Blocked motion slides along whichever axis keeps it closest to
// the intended target.
func (e *Engine) Advance(ent *Entity, speed, dt float64) {
	dist := speed * dt
	limit := e.maxStep()
	moved := false

	for {
		step := math.Min(dist, limit)
		px, py := ent.X, ent.Y
		e.advance(ent, step)
		if math.Hypot(ent.X-px, ent.Y-py) > eps {
			moved = true
		}
		e.wrap(ent)
		dist -= step
		if dist <= eps || ent.Dir == DirNone {
			break
		}
	}

	if speed*dt > eps {
		ent.Blocked = ent.Dir == DirNone || !moved
	}
}

// maxStep is the longest sub-step Advance takes: the gap between the
// collision cross and the cell edge of an entity sitting on a center.
func (e *Engine) maxStep() float64 {
	return math.Max(e.tun.TileSize/2-e.tun.WallRadius, 1)
}

// advance moves the entity up to dist units in one sub-step.
func (e *Engine) advance(ent *Entity, dist float64) {
	tol := e.tun.SnapTolerance
	r := e.tun.WallRadius

	cell := e.CellAt(ent.X, ent.Y)
	cx, cy := e.Center(cell)
	if math.Abs(ent.X-cx) <= tol && math.Abs(ent.Y-cy) <= tol {
		ent.X, ent.Y = cx, cy
		e.junction(ent, cell)
	}

	for seg := 0; seg < maxSegments && dist > eps && ent.Dir != DirNone; seg++ {
		cell = e.CellAt(ent.X, ent.Y)
		cx, cy = e.Center(cell)

		var ahead, lateral float64
		if ent.Dir.Horizontal() {
			vx, _ := ent.Dir.Vector()
			ahead, lateral = (cx-ent.X)*vx, ent.Y-cy
		} else {
			_, vy := ent.Dir.Vector()
			ahead, lateral = (cy-ent.Y)*vy, ent.X-cx
		}

		if math.Abs(lateral) <= tol && ahead > eps && ahead <= dist &&
			e.wantsJunction(ent, cell) && e.ValidAt(cx, cy, r) {
			ent.X, ent.Y = cx, cy
			dist -= ahead
			e.junction(ent, cell)
			continue
		}

		e.displace(ent, dist)
		dist = 0
	}
}

// wantsJunction reports whether stopping at the center of cell would change
// the entity's heading.
func (e *Engine) wantsJunction(ent *Entity, cell CellPos) bool {
	r := e.tun.WallRadius
	if ent.Next != DirNone && ent.Next != ent.Dir && e.CanGo(cell, ent.Next, r) {
		return true
	}
	return !e.CanGo(cell, ent.Dir, r)
}

// junction applies the buffered direction and stops the entity if its
// heading is no longer traversable. The entity must sit on cell's center.
func (e *Engine) junction(ent *Entity, cell CellPos) {
	r := e.tun.WallRadius
	if ent.Next != DirNone && ent.Next != ent.Dir && e.CanGo(cell, ent.Next, r) {
		ent.Dir = ent.Next
	}
	if ent.Dir != DirNone && !e.CanGo(cell, ent.Dir, r) {
		ent.Dir = DirNone
	}
}

// displace moves the entity dist units along its heading, first pulling it
// back toward the lane center on the perpendicular axis.
func (e *Engine) displace(ent *Entity, dist float64) {
	r := e.tun.WallRadius
	cx, cy := e.Center(e.CellAt(ent.X, ent.Y))
	vx, vy := ent.Dir.Vector()

	if ent.Dir.Horizontal() {
		if step := clampAbs(cy-ent.Y, dist); step != 0 && e.ValidAt(ent.X, ent.Y+step, r) {
			ent.Y += step
		}
	} else {
		if step := clampAbs(cx-ent.X, dist); step != 0 && e.ValidAt(ent.X+step, ent.Y, r) {
			ent.X += step
		}
	}

	tx, ty := ent.X+vx*dist, ent.Y+vy*dist
	if e.ValidAt(tx, ty, r) {
		ent.X, ent.Y = tx, ty
		return
	}

	// Slide: try each axis independently and keep the candidate that ends
	// closest to the intended target.
	sx := e.stepAxis(ent.X, ent.Y, vx*dist, true)
	sy := e.stepAxis(ent.X, ent.Y, vy*dist, false)
	ax, ay := ent.X+sx, ent.Y
	bx, by := ent.X, ent.Y+sy
	if math.Hypot(tx-ax, ty-ay) <= math.Hypot(tx-bx, ty-by) {
		ent.X, ent.Y = ax, ay
	} else {
		ent.X, ent.Y = bx, by
	}
}

// stepAxis walks from (x, y) along one axis in unit steps, up to delta, and
// returns the furthest offset that stays valid.
func (e *Engine) stepAxis(x, y, delta float64, horizontal bool) float64 {
	r := e.tun.WallRadius
	sign := 1.0
	if delta < 0 {
		sign = -1
	}
	limit := math.Abs(delta)
	travelled := 0.0
	for travelled < limit {
		step := math.Min(1, limit-travelled)
		next := (travelled + step) * sign
		px, py := x, y
		if horizontal {
			px += next
		} else {
			py += next
		}
		if !e.ValidAt(px, py, r) {
			break
		}
		travelled += step
	}
	return travelled * sign
}

// wrap teleports an entity that left the playfield horizontally by more than
// half a tile to the mirrored offset on the other side.
func (e *Engine) wrap(ent *Entity) {
	w := e.Width()
	half := e.tun.TileSize / 2
	if ent.X < -half {
		ent.X += w
	} else if ent.X > w+half {
		ent.X -= w
	}
}

// Settle is the position validator. An entity whose position touches a wall
// is recentered on its cell, or failing that snapped, stopped, onto the
// nearest valid cell center within a few cells. Returns true if the entity
// was moved.
func (e *Engine) Settle(ent *Entity) bool {
	r := e.tun.WallRadius
	if e.ValidAt(ent.X, ent.Y, r) {
		return false
	}

	cell := e.CellAt(ent.X, ent.Y)
	if e.grid.At(cell) == Open {
		if cx, cy := e.Center(cell); e.ValidAt(cx, cy, r) {
			ent.X, ent.Y = cx, cy
			return true
		}
	}

	found := false
	var bestX, bestY float64
	bestD := math.Inf(1)
	for dr := -settleRange; dr <= settleRange; dr++ {
		for dc := -settleRange; dc <= settleRange; dc++ {
			p := At(cell.Row+dr, cell.Col+dc)
			if !e.grid.InBounds(p) || e.grid.At(p) == Wall {
				continue
			}
			cx, cy := e.Center(p)
			if !e.ValidAt(cx, cy, r) {
				continue
			}
			if d := math.Hypot(cx-ent.X, cy-ent.Y); d < bestD {
				bestD, bestX, bestY, found = d, cx, cy, true
			}
		}
	}
	if !found {
		return false
	}
	ent.X, ent.Y = bestX, bestY
	ent.Dir = DirNone
	ent.Blocked = false
	return true
}

// RequestTurn buffers d as the entity's next direction and grants it
// immediately when possible: a turn that is traversable from the current cell
// and survives a short trial step, an unstick for a stopped or blocked
// entity, or a reversal whose trial step backward is valid. Returns true if
// the heading changed.
func (e *Engine) RequestTurn(ent *Entity, d Dir) bool {
	ent.Next = d
	if d == DirNone || d == ent.Dir {
		return false
	}

	r := e.tun.WallRadius
	cell := e.CellAt(ent.X, ent.Y)
	vx, vy := d.Vector()
	stepOK := e.ValidAt(ent.X+vx*e.tun.TurnStep, ent.Y+vy*e.tun.TurnStep, r)
	traversable := e.CanGo(cell, d, r)

	switch {
	case traversable && stepOK:
	case traversable && (ent.Dir == DirNone || ent.Blocked):
	case ent.Dir != DirNone && d == ent.Dir.Opposite() && stepOK:
	default:
		return false
	}
	ent.Dir = d
	ent.Blocked = false
	return true
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clampAbs returns v limited to [-limit, limit].
func clampAbs(v, limit float64) float64 {
	return math.Max(-limit, math.Min(limit, v))
}
