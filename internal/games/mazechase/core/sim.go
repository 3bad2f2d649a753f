package core

import "math"

// Sim is the round controller. It owns the SimulationState, drives the
// movement engine once per tick and applies consumption, collision and
// win rules. All methods must be called from one goroutine.
type Sim struct {
	state  SimulationState
	tun    Tuning
	engine *Engine
	editor *Editor
}

// NewSim starts a round on a copy of m. m becomes the baseline.
func NewSim(m *Maze, t Tuning) *Sim {
	base := m.Clone()
	live := base.Clone()
	s := &Sim{
		state: SimulationState{
			Baseline: base,
			Live:     live,
			Entities: newEntities(base, t),
		},
		tun:    t,
		engine: NewEngine(live.Grid, t),
	}
	s.editor = &Editor{sim: s, tool: ToolWall}
	s.reset()
	return s
}

// State returns the simulation state for reading.
func (s *Sim) State() *SimulationState {
	return &s.state
}

// Tuning returns the tuning the sim was built with.
func (s *Sim) Tuning() Tuning {
	return s.tun
}

// Engine returns the movement engine.
func (s *Sim) Engine() *Engine {
	return s.engine
}

// Editor returns the map editor bound to this sim.
func (s *Sim) Editor() *Editor {
	return s.editor
}

// Phase returns the current phase.
func (s *Sim) Phase() Phase {
	return s.state.Phase
}

// SetPursuerSpeed changes the base speed of every pursuer.
func (s *Sim) SetPursuerSpeed(speed float64) {
	for _, p := range s.state.Pursuers() {
		p.Speed = speed
	}
}

// Reset restores the baseline maze, puts every entity back on its spawn and
// zeroes scores and timers. It is the only way out of Over and is refused
// while editing.
func (s *Sim) Reset() error {
	if s.state.Phase == PhaseEditing {
		return ErrInvalidPhase
	}
	s.reset()
	return nil
}

func (s *Sim) reset() {
	st := &s.state
	st.Baseline.Grid.CopyInto(st.Live.Grid)
	st.Baseline.Common.CopyInto(st.Live.Common)
	st.Baseline.Special.CopyInto(st.Live.Special)
	s.engine.SetGrid(st.Live.Grid)

	for _, ent := range st.Entities {
		s.engine.Place(ent, ent.Spawn)
		ent.Score = 0
		ent.Trail = nil
	}

	st.Remaining = st.Live.Remaining()
	st.Clock = 0
	st.VulnerableUntil = 0
	st.Phase = PhaseRunning
	st.Winner = WinnerNone
	st.Tick = 0
}

// Request buffers a direction for entity idx. While running, the turn may be
// granted immediately. Unknown indices are ignored.
func (s *Sim) Request(idx int, d Dir) {
	if idx < 0 || idx >= len(s.state.Entities) {
		return
	}
	ent := s.state.Entities[idx]
	if s.state.Phase != PhaseRunning {
		ent.Next = d
		return
	}
	s.engine.RequestTurn(ent, d)
}

// ToggleEditor opens the editor while running, and cancels it while editing.
func (s *Sim) ToggleEditor() error {
	switch s.state.Phase {
	case PhaseRunning:
		return s.editor.Open()
	case PhaseEditing:
		return s.editor.Cancel()
	default:
		return ErrInvalidPhase
	}
}

// Tick advances the round by dt seconds, clamped to the configured maximum.
// Nothing changes unless the phase is Running.
func (s *Sim) Tick(dt float64) StepResult {
	st := &s.state
	res := StepResult{Tick: st.Tick, Phase: st.Phase}
	if st.Phase != PhaseRunning {
		return res
	}

	dt = math.Max(0, math.Min(dt, s.tun.MaxDelta))
	st.Clock += dt
	st.Tick++
	res.Tick = st.Tick
	s.engine.BeginTick()

	vulnerable := st.Vulnerable()
	for _, ent := range st.Entities {
		speed := ent.Speed
		if ent.Kind == KindPursuer && vulnerable {
			speed = s.tun.VulnerableSpeed
		}
		s.engine.Advance(ent, speed, dt)
		s.engine.Settle(ent)
		ent.record(st.Clock, s.tun.TrailSeconds)
	}

	s.consume(&res)
	if st.Remaining <= 0 {
		s.finish(&res, WinnerSeeker)
		return res
	}

	s.collide(&res)
	res.Phase = st.Phase
	return res
}

// consume applies the collectible under the seeker's cell.
func (s *Sim) consume(res *StepResult) {
	st := &s.state
	seeker := st.Seeker()
	cell := s.engine.CellAt(seeker.X, seeker.Y)

	var item Item
	var points int
	switch {
	case st.Live.Special.Get(cell):
		st.Live.Special.Set(cell, false)
		item, points = ItemSpecial, s.tun.SpecialReward
		st.VulnerableUntil = st.Clock + s.tun.VulnerableSeconds
	case st.Live.Common.Get(cell):
		st.Live.Common.Set(cell, false)
		item, points = ItemCommon, s.tun.CommonReward
	default:
		return
	}

	st.Remaining--
	seeker.Score += points
	res.Events = append(res.Events, Event{
		Kind:   EventCollected,
		Item:   item,
		Cell:   cell,
		X:      seeker.X,
		Y:      seeker.Y,
		Points: points,
	})
}

// collide resolves seeker-pursuer contacts.
func (s *Sim) collide(res *StepResult) {
	st := &s.state
	seeker := st.Seeker()
	for i, p := range st.Entities {
		if p.Kind != KindPursuer {
			continue
		}
		if math.Hypot(seeker.X-p.X, seeker.Y-p.Y) >= s.tun.CatchDistance {
			continue
		}
		if !st.Vulnerable() {
			s.finish(res, WinnerPursuers)
			return
		}
		seeker.Score += s.tun.PursuerBonus
		res.Events = append(res.Events, Event{
			Kind:   EventPursuerCaught,
			Cell:   s.engine.CellAt(p.X, p.Y),
			X:      p.X,
			Y:      p.Y,
			Points: s.tun.PursuerBonus,
			Entity: i,
		})
		s.engine.Place(p, p.Spawn)
		p.Trail = nil
	}
}

func (s *Sim) finish(res *StepResult, w Winner) {
	st := &s.state
	st.Phase = PhaseOver
	st.Winner = w
	seeker := st.Seeker()
	res.Phase = PhaseOver
	res.Events = append(res.Events, Event{
		Kind:   EventRoundOver,
		X:      seeker.X,
		Y:      seeker.Y,
		Points: seeker.Score,
		Winner: w,
	})
}
