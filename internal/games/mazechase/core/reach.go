package core

// Reachable flood-fills the grid from seed through open cells using
// 4-directional adjacency. The traversal does not wrap horizontally, so a
// pocket only connected through the tunnel edges stays unmarked.
// A seed outside the grid or on a wall yields an empty layer.
func Reachable(g *Grid, seed CellPos) *Layer {
	vis := NewLayer(g.Rows, g.Cols)
	if !g.InBounds(seed) || g.At(seed) == Wall {
		return vis
	}

	dirs := [...]Dir{DirDown, DirUp, DirRight, DirLeft}
	queue := []CellPos{seed}
	vis.Set(seed, true)

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range dirs {
			n := p.Step(d)
			if !g.InBounds(n) || vis.Get(n) || g.At(n) == Wall {
				continue
			}
			vis.Set(n, true)
			queue = append(queue, n)
		}
	}

	return vis
}
