package core

import "math"

// Editor is the map editor transaction manager. Opening it freezes the round
// and takes a draft copy of the live maze; paints touch only the draft. Save
// promotes the draft to the baseline and restarts the round, Cancel throws
// the draft away.
type Editor struct {
	sim  *Sim
	tool Tool
}

// Open enters edit mode. Only allowed while running.
func (ed *Editor) Open() error {
	st := &ed.sim.state
	if st.Phase != PhaseRunning {
		return ErrInvalidPhase
	}
	st.Draft = st.Live.Clone()
	st.Phase = PhaseEditing
	return nil
}

// Active reports whether a draft is open.
func (ed *Editor) Active() bool {
	return ed.sim.state.Draft != nil
}

// Tool returns the selected paint tool.
func (ed *Editor) Tool() Tool {
	return ed.tool
}

// SetTool selects the paint tool used by Paint.
func (ed *Editor) SetTool(t Tool) {
	ed.tool = t
}

// Paint applies the selected tool at a point in sub-tile units.
func (ed *Editor) Paint(x, y float64) bool {
	t := ed.sim.tun.TileSize
	p := At(int(math.Floor(y/t)), int(math.Floor(x/t)))
	return ed.PaintCell(ed.tool, p)
}

// PaintCell applies tool to cell p of the draft. Cells on or outside the
// border ring are ignored. Returns true if the draft changed.
func (ed *Editor) PaintCell(tool Tool, p CellPos) bool {
	d := ed.sim.state.Draft
	if d == nil || !d.Grid.InBounds(p) || d.Grid.IsBorder(p) {
		return false
	}

	switch tool {
	case ToolWall:
		if d.Grid.At(p) == Wall {
			return false
		}
		d.Grid.Set(p, Wall)
		d.Common.Set(p, false)
		d.Special.Set(p, false)
	case ToolEmpty:
		if d.Grid.At(p) == Open {
			return false
		}
		d.Grid.Set(p, Open)
	case ToolCommon:
		if d.Grid.At(p) != Open || d.Common.Get(p) {
			return false
		}
		d.Common.Set(p, true)
		d.Special.Set(p, false)
	case ToolSpecial:
		if d.Grid.At(p) != Open || d.Special.Get(p) {
			return false
		}
		d.Special.Set(p, true)
		d.Common.Set(p, false)
	default:
		return false
	}
	return true
}

// ClearWalls opens every interior cell of the draft.
func (ed *Editor) ClearWalls() error {
	d := ed.sim.state.Draft
	if d == nil {
		return ErrNotEditing
	}
	d.Grid.Fill(CellRect{R0: 1, C0: 1, R1: d.Grid.Rows - 2, C1: d.Grid.Cols - 2}, Open)
	return nil
}

// ClearCollectibles removes every collectible from the draft.
func (ed *Editor) ClearCollectibles() error {
	d := ed.sim.state.Draft
	if d == nil {
		return ErrNotEditing
	}
	d.Common.Clear()
	d.Special.Clear()
	return nil
}

// Remaining returns the draft's collectible count, or the live count when
// the editor is closed.
func (ed *Editor) Remaining() int {
	st := &ed.sim.state
	if st.Draft == nil {
		return st.Remaining
	}
	return st.Draft.Remaining()
}

// CanSave reports whether the draft holds a collectible outside the
// sanctuary.
func (ed *Editor) CanSave() bool {
	d := ed.sim.state.Draft
	if d == nil {
		return false
	}
	return CountOutside(d.Common, d.Special, d.Sanctuary) > 0
}

// SaveHint is the message shown next to the save control.
func (ed *Editor) SaveHint() string {
	if ed.CanSave() {
		return "save changes"
	}
	return ErrSaveRejected.Error()
}

// Save commits the draft. A draft with no collectible outside the sanctuary
// is refused with ErrSaveRejected and the editor stays open. On success the
// borders are restored, the sanctuary is emptied, spawn cells are reopened,
// the draft becomes the baseline and the round restarts from it.
func (ed *Editor) Save() error {
	st := &ed.sim.state
	d := st.Draft
	if d == nil {
		return ErrNotEditing
	}
	if !ed.CanSave() {
		return ErrSaveRejected
	}

	d.Grid.AddBorders()
	d.Common.ClearRect(d.Sanctuary)
	d.Special.ClearRect(d.Sanctuary)
	for _, p := range d.Spawns() {
		if d.Grid.At(p) != Wall {
			continue
		}
		d.Grid.Set(p, Open)
		if !d.Sanctuary.Contains(p) && d.ItemAt(p) == ItemNone {
			d.Common.Set(p, true)
		}
	}

	st.Baseline = d
	st.Draft = nil
	ed.sim.reset()
	return nil
}

// Cancel discards the draft and resumes the round where it was frozen.
func (ed *Editor) Cancel() error {
	st := &ed.sim.state
	if st.Draft == nil {
		return ErrNotEditing
	}
	st.Draft = nil
	st.Remaining = st.Live.Remaining()
	st.Phase = PhaseRunning
	return nil
}
