package mazechase

import (
	"errors"

	platformcore "github.com/vovakirdan/mazechase/internal/core"
	"github.com/vovakirdan/mazechase/internal/games/mazechase/core"
)

// dirActions maps per-player movement actions to engine directions.
var dirActions = []struct {
	action platformcore.Action
	dir    core.Dir
}{
	{platformcore.ActionUp, core.DirUp},
	{platformcore.ActionDown, core.DirDown},
	{platformcore.ActionLeft, core.DirLeft},
	{platformcore.ActionRight, core.DirRight},
}

// toolActions maps tool selection actions to editor tools.
var toolActions = []struct {
	action platformcore.Action
	tool   core.Tool
}{
	{platformcore.ActionToolWall, core.ToolWall},
	{platformcore.ActionToolEmpty, core.ToolEmpty},
	{platformcore.ActionToolCommon, core.ToolCommon},
	{platformcore.ActionToolSpecial, core.ToolSpecial},
}

// applyCommands handles the shared control frame: editor, restart, pause.
func (g *Game) applyCommands(ctl platformcore.InputFrame) {
	ed := g.sim.Editor()

	if ctl.Has(platformcore.ActionToggleEditor) {
		if err := g.sim.ToggleEditor(); err != nil {
			g.flash("editor is unavailable once the round is over; press R")
		} else {
			g.paused = false
			g.popups = nil
		}
	}

	if ed.Active() {
		g.applyEditorCommands(ctl)
		return
	}

	if ctl.Has(platformcore.ActionRestart) {
		if err := g.sim.Reset(); err == nil {
			g.caught = 0
			g.paused = false
			g.popups = nil
			g.clearMessage()
		}
	}
	if ctl.Has(platformcore.ActionPause) && g.sim.Phase() == core.PhaseRunning {
		g.paused = !g.paused
	}
}

// applyEditorCommands runs editor actions. Only one of save and cancel
// applies per tick, save first.
func (g *Game) applyEditorCommands(ctl platformcore.InputFrame) {
	ed := g.sim.Editor()

	for _, ta := range toolActions {
		if ctl.Has(ta.action) {
			ed.SetTool(ta.tool)
		}
	}
	if ctl.Has(platformcore.ActionClearWalls) {
		_ = ed.ClearWalls()
	}
	if ctl.Has(platformcore.ActionClearCollectibles) {
		_ = ed.ClearCollectibles()
	}

	switch {
	case ctl.Has(platformcore.ActionSave):
		err := ed.Save()
		switch {
		case errors.Is(err, core.ErrSaveRejected):
			g.flash(err.Error())
		case err == nil:
			g.edited = true
			g.caught = 0
			g.flash("maze saved")
		}
	case ctl.Has(platformcore.ActionCancel):
		_ = ed.Cancel()
	}
}

// applyMovement forwards each player's direction keys to its entity.
// When a player pressed several directions in one tick the last in
// up, down, left, right order wins.
func (g *Game) applyMovement(in platformcore.MultiInputFrame) {
	for _, id := range platformcore.Players() {
		frame := in.Player(id)
		for _, da := range dirActions {
			if frame.Has(da.action) {
				g.sim.Request(id.Index(), da.dir)
			}
		}
	}
}
