package core

// EntityView is a read-only copy of an entity for renderers.
type EntityView struct {
	Kind    Kind
	Label   string
	Color   string
	X, Y    float64
	Dir     Dir
	Score   int
	Trail   []TrailPoint
	Spawn   CellPos
	Blocked bool
}

// View is a snapshot of everything a renderer needs. It shares nothing with
// the simulation, so callers may keep it across ticks.
type View struct {
	Grid      *Grid
	Common    *Layer
	Special   *Layer
	Sanctuary CellRect
	TileSize  float64

	Entities []EntityView

	Remaining      int
	Score          int
	Phase          Phase
	Winner         Winner
	Vulnerable     bool
	VulnerableLeft float64
	Clock          float64

	// Editor fields, set while editing.
	Editing bool
	Tool    Tool
	CanSave bool
	Hint    string
}

// View copies the state a renderer reads. While editing, the maze shown is
// the draft.
func (s *Sim) View() View {
	st := &s.state
	m := st.Live
	if st.Draft != nil {
		m = st.Draft
	}

	v := View{
		Grid:           m.Grid.Clone(),
		Common:         m.Common.Clone(),
		Special:        m.Special.Clone(),
		Sanctuary:      m.Sanctuary,
		TileSize:       s.tun.TileSize,
		Entities:       make([]EntityView, len(st.Entities)),
		Remaining:      s.editor.Remaining(),
		Score:          st.Seeker().Score,
		Phase:          st.Phase,
		Winner:         st.Winner,
		Vulnerable:     st.Vulnerable(),
		VulnerableLeft: st.VulnerableLeft(),
		Clock:          st.Clock,
		Editing:        st.Draft != nil,
		Tool:           s.editor.Tool(),
	}
	if v.Editing {
		v.CanSave = s.editor.CanSave()
		v.Hint = s.editor.SaveHint()
	}

	for i, ent := range st.Entities {
		trail := make([]TrailPoint, len(ent.Trail))
		copy(trail, ent.Trail)
		v.Entities[i] = EntityView{
			Kind:    ent.Kind,
			Label:   ent.Label,
			Color:   ent.Color,
			X:       ent.X,
			Y:       ent.Y,
			Dir:     ent.Dir,
			Score:   ent.Score,
			Trail:   trail,
			Spawn:   ent.Spawn,
			Blocked: ent.Blocked,
		}
	}
	return v
}

// CellOf maps an entity position in the view to a cell.
func (v *View) CellOf(e EntityView) CellPos {
	return v.CellAt(e.X, e.Y)
}

// CellAt maps a point to the cell containing it, clamped to the grid.
func (v *View) CellAt(x, y float64) CellPos {
	return cellFromPoint(x, y, v.TileSize, v.Grid.Rows, v.Grid.Cols)
}

// ItemAt reports the collectible shown at p.
func (v *View) ItemAt(p CellPos) Item {
	switch {
	case v.Special.Get(p):
		return ItemSpecial
	case v.Common.Get(p):
		return ItemCommon
	default:
		return ItemNone
	}
}
