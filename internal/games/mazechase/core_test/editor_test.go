package core_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/mazechase/internal/games/mazechase/core"
)

func openEditor(t *testing.T) (*core.Sim, *core.Editor) {
	t.Helper()
	sim := newSim(core.BuildDefaultMaze(21, 28))
	ed := sim.Editor()
	if err := ed.Open(); err != nil {
		t.Fatalf("open editor: %v", err)
	}
	if sim.Phase() != core.PhaseEditing {
		t.Fatalf("expected editing, got %v", sim.Phase())
	}
	return sim, ed
}

func TestEditCancelRollsBack(t *testing.T) {
	sim, ed := openEditor(t)
	st := sim.State()
	before := st.Live.Grid.Clone()
	remaining := st.Remaining

	for _, p := range []core.CellPos{core.At(1, 1), core.At(1, 2), core.At(19, 5)} {
		if !ed.PaintCell(core.ToolWall, p) {
			t.Fatalf("painting %v should change the draft", p)
		}
	}
	if ed.Remaining() != remaining-3 {
		t.Errorf("draft count should drop by 3, got %d", ed.Remaining())
	}

	if err := ed.Cancel(); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if !st.Live.Grid.Equal(before) {
		t.Error("grid changed after cancel")
	}
	if st.Remaining != remaining {
		t.Errorf("expected %d remaining after cancel, got %d", remaining, st.Remaining)
	}
	if st.Phase != core.PhaseRunning || st.Draft != nil {
		t.Error("cancel should drop the draft and resume")
	}
}

func TestCancelKeepsRoundProgress(t *testing.T) {
	sim := newSim(core.BuildDefaultMaze(21, 28))
	st := sim.State()
	for i := 0; i < 3; i++ {
		sim.Tick(0.033)
	}
	score, clock := st.Seeker().Score, st.Clock

	if err := sim.ToggleEditor(); err != nil {
		t.Fatal(err)
	}
	if err := sim.ToggleEditor(); err != nil {
		t.Fatal(err)
	}
	if st.Seeker().Score != score || st.Clock != clock {
		t.Error("cancel must not reset scores or timers")
	}
}

func TestPaintIgnoresBorder(t *testing.T) {
	_, ed := openEditor(t)

	for _, p := range []core.CellPos{core.At(0, 5), core.At(20, 5), core.At(5, 0), core.At(10, 27), core.At(-1, 3), core.At(3, 99)} {
		if ed.PaintCell(core.ToolEmpty, p) {
			t.Errorf("paint at %v should be ignored", p)
		}
	}
	ed.SetTool(core.ToolWall)
	if ed.Paint(5, 5) {
		t.Error("pixel on the border ring should be ignored")
	}
	if !ed.Paint(24*1+1, 24*1+1) {
		t.Error("pixel inside (1,1) should paint")
	}
}

func TestPaintTools(t *testing.T) {
	sim, ed := openEditor(t)
	d := sim.State().Draft
	open := core.At(1, 1)
	wall := core.At(2, 2)

	if ed.PaintCell(core.ToolCommon, wall) {
		t.Error("common on a wall must be refused")
	}
	if ed.PaintCell(core.ToolCommon, open) {
		t.Error("common on a common cell is a no-op")
	}

	if !ed.PaintCell(core.ToolSpecial, open) {
		t.Fatal("special should replace common")
	}
	if d.ItemAt(open) != core.ItemSpecial || d.Common.Get(open) {
		t.Error("special and common are exclusive")
	}

	if !ed.PaintCell(core.ToolCommon, open) || d.Special.Get(open) {
		t.Error("common should replace special")
	}

	if !ed.PaintCell(core.ToolWall, open) {
		t.Fatal("wall should paint")
	}
	if d.ItemAt(open) != core.ItemNone {
		t.Error("wall clears collectibles")
	}

	if !ed.PaintCell(core.ToolEmpty, wall) || d.Grid.At(wall) != core.Open {
		t.Error("empty should open a wall")
	}
	if d.ItemAt(wall) != core.ItemNone {
		t.Error("empty does not add collectibles")
	}

	if sim.State().Live.Grid.At(open) != core.Open {
		t.Error("painting must not touch the live grid")
	}
}

func TestSaveRejectedWithoutOutsideCollectible(t *testing.T) {
	sim, ed := openEditor(t)
	st := sim.State()
	baseline := st.Baseline
	before := baseline.Grid.Clone()

	if err := ed.ClearCollectibles(); err != nil {
		t.Fatal(err)
	}
	if !ed.PaintCell(core.ToolCommon, core.At(10, 13)) {
		t.Fatal("sanctuary cell should accept paint")
	}
	if ed.CanSave() {
		t.Error("a collectible inside the sanctuary does not make the draft saveable")
	}

	err := ed.Save()
	if !errors.Is(err, core.ErrSaveRejected) {
		t.Fatalf("expected ErrSaveRejected, got %v", err)
	}
	if st.Phase != core.PhaseEditing || st.Draft == nil {
		t.Error("editor must stay open after a rejected save")
	}
	if st.Baseline != baseline || !st.Baseline.Grid.Equal(before) || st.Baseline.Remaining() != 308 {
		t.Error("baseline changed after a rejected save")
	}
}

func TestSaveWithSingleCollectible(t *testing.T) {
	sim, ed := openEditor(t)
	st := sim.State()

	if err := ed.ClearCollectibles(); err != nil {
		t.Fatal(err)
	}
	ed.PaintCell(core.ToolCommon, core.At(10, 13)) // inside the sanctuary, stripped on save
	ed.PaintCell(core.ToolSpecial, core.At(1, 1))
	if !ed.CanSave() {
		t.Fatal("one collectible outside the sanctuary should be enough")
	}

	if err := ed.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}
	if st.Phase != core.PhaseRunning || st.Draft != nil {
		t.Error("save should close the editor")
	}
	if st.Baseline.Remaining() != 1 || st.Remaining != 1 {
		t.Errorf("expected 1 collectible, baseline=%d live=%d", st.Baseline.Remaining(), st.Remaining)
	}
	if !st.Baseline.Special.Get(core.At(1, 1)) {
		t.Error("saved special missing from the baseline")
	}
	if !consistent(st) {
		t.Error("remaining out of sync after save")
	}
}

func TestSaveRestoresBordersAndSpawns(t *testing.T) {
	sim, ed := openEditor(t)
	st := sim.State()
	spawn := st.Baseline.SeekerSpawn

	ed.PaintCell(core.ToolWall, spawn)
	// Reach the border through the draft directly; the paint API refuses it.
	st.Draft.Grid.Set(core.At(0, 5), core.Open)
	st.Draft.Grid.Set(core.At(10, 0), core.Wall)

	if err := ed.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}
	b := st.Baseline
	if b.Grid.At(core.At(0, 5)) != core.Wall || b.Grid.At(core.At(10, 0)) != core.Open {
		t.Error("borders and tunnels not restored")
	}
	if b.Grid.At(spawn) != core.Open || !b.Common.Get(spawn) {
		t.Error("walled spawn should be reopened and seeded")
	}
	if st.Remaining != 308 {
		t.Errorf("expected 308 remaining, got %d", st.Remaining)
	}
	x, y := sim.Engine().Center(spawn)
	if s := st.Seeker(); s.X != x || s.Y != y {
		t.Error("save resets entities to their spawns")
	}
}

func TestClearWallsKeepsBorder(t *testing.T) {
	sim, ed := openEditor(t)
	if err := ed.ClearWalls(); err != nil {
		t.Fatal(err)
	}
	g := sim.State().Draft.Grid
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			p := core.At(row, col)
			if !g.IsBorder(p) && g.At(p) != core.Open {
				t.Fatalf("interior cell %v still walled", p)
			}
		}
	}
	if g.At(core.At(0, 3)) != core.Wall {
		t.Error("border must survive clear walls")
	}
}

func TestEditorCommandsRequireOpenDraft(t *testing.T) {
	sim := newSim(core.BuildDefaultMaze(21, 28))
	ed := sim.Editor()

	if ed.PaintCell(core.ToolWall, core.At(1, 1)) {
		t.Error("paint outside edit mode must be ignored")
	}
	for name, fn := range map[string]func() error{
		"save":               ed.Save,
		"cancel":             ed.Cancel,
		"clear walls":        ed.ClearWalls,
		"clear collectibles": ed.ClearCollectibles,
	} {
		if err := fn(); !errors.Is(err, core.ErrNotEditing) {
			t.Errorf("%s: expected ErrNotEditing, got %v", name, err)
		}
	}
}

func TestViewShowsDraftWhileEditing(t *testing.T) {
	sim, ed := openEditor(t)
	ed.PaintCell(core.ToolWall, core.At(1, 1))

	v := sim.View()
	if !v.Editing || v.Grid.At(core.At(1, 1)) != core.Wall {
		t.Error("view should render the draft")
	}
	if !v.CanSave || v.Remaining != 307 {
		t.Errorf("unexpected editor fields: canSave=%v remaining=%d", v.CanSave, v.Remaining)
	}

	v.Grid.Set(core.At(1, 2), core.Wall)
	if sim.State().Draft.Grid.At(core.At(1, 2)) != core.Open {
		t.Error("view must not alias engine state")
	}
}
