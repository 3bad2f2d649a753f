package core_test

import (
	"math"

	"github.com/vovakirdan/mazechase/internal/games/mazechase/core"
)

// rawTuning is the default tuning with the traversability memo off, so
// assertions see raw physics.
func rawTuning() core.Tuning {
	t := core.DefaultTuning()
	t.CacheEnabled = false
	return t
}

func newSim(m *core.Maze) *core.Sim {
	return core.NewSim(m, rawTuning())
}

func placed(eng *core.Engine, p core.CellPos) *core.Entity {
	ent := &core.Entity{Kind: core.KindSeeker}
	eng.Place(ent, p)
	return ent
}

func consistent(st *core.SimulationState) bool {
	return st.Remaining == st.Live.Common.Count()+st.Live.Special.Count()
}

// near compares positions that went through several sub-steps.
func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
