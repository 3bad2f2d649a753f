package core

// Entity colors and labels for the stock roster.
var (
	SeekerColor   = "#FFEB3B"
	PursuerColors = []string{"#F44336", "#E91E63", "#00BCD4"}
)

// SimulationState is the aggregate owned by a Sim. Renderers may read it but
// must not mutate it; use Sim and Editor methods instead.
type SimulationState struct {
	Baseline *Maze // last committed maze, source of truth for resets
	Live     *Maze // maze the round is played on
	Draft    *Maze // editor working copy, nil unless editing

	Entities []*Entity // index 0 is the seeker

	Remaining       int
	Clock           float64 // simulation seconds since the last reset
	VulnerableUntil float64 // pursuers are vulnerable while Clock < VulnerableUntil
	Phase           Phase
	Winner          Winner
	Tick            uint64
}

// Seeker returns the seeker entity.
func (s *SimulationState) Seeker() *Entity {
	return s.Entities[0]
}

// Pursuers returns the pursuer entities.
func (s *SimulationState) Pursuers() []*Entity {
	return s.Entities[1:]
}

// Vulnerable reports whether the vulnerability timer is running.
func (s *SimulationState) Vulnerable() bool {
	return s.Clock < s.VulnerableUntil
}

// VulnerableLeft returns the seconds left on the vulnerability timer.
func (s *SimulationState) VulnerableLeft() float64 {
	if !s.Vulnerable() {
		return 0
	}
	return s.VulnerableUntil - s.Clock
}

func newEntities(m *Maze, t Tuning) []*Entity {
	ents := make([]*Entity, 0, 1+len(m.PursuerSpawns))
	ents = append(ents, &Entity{
		Kind:  KindSeeker,
		Label: "S",
		Color: SeekerColor,
		Speed: t.SeekerSpeed,
		Spawn: m.SeekerSpawn,
	})
	for i, p := range m.PursuerSpawns {
		ents = append(ents, &Entity{
			Kind:  KindPursuer,
			Label: string(rune('1' + i)),
			Color: PursuerColors[i%len(PursuerColors)],
			Speed: t.PursuerSpeed,
			Spawn: p,
		})
	}
	return ents
}
