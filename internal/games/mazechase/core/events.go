package core

// EventKind identifies what happened during a tick.
type EventKind uint8

const (
	EventCollected     EventKind = iota // seeker consumed a collectible
	EventPursuerCaught                  // vulnerable pursuer eliminated
	EventRoundOver                      // phase moved to Over
)

// Event records one gameplay occurrence. X and Y locate it in sub-tile
// units for effects such as score popups.
type Event struct {
	Kind   EventKind
	Item   Item    // for EventCollected
	Cell   CellPos // consumed cell, or the pursuer's cell when caught
	X, Y   float64
	Points int
	Entity int    // entity index for EventPursuerCaught
	Winner Winner // for EventRoundOver
}

// StepResult contains information about what happened during a tick.
type StepResult struct {
	Tick   uint64
	Events []Event
	Phase  Phase
}

// Over reports whether the tick ended the round.
func (r StepResult) Over() bool {
	for _, ev := range r.Events {
		if ev.Kind == EventRoundOver {
			return true
		}
	}
	return false
}
