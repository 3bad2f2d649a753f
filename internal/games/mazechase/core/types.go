// Package core provides the maze simulation engine for Maze Chase: the wall
// grid, collectible layers, continuous movement with wall avoidance, the round
// state machine and the map editor.
// This package is UI-agnostic and deterministic.
package core

// Dir represents a movement direction. DirNone means standing still.
type Dir uint8

const (
	DirNone Dir = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirNone:
		return "None"
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Delta returns the unit vector for this direction.
// Up decreases Y, Down increases Y (screen coordinates).
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Vector returns the direction as a float unit vector.
func (d Dir) Vector() (float64, float64) {
	dx, dy := d.Delta()
	return float64(dx), float64(dy)
}

// Opposite returns the reverse direction. DirNone has no opposite.
func (d Dir) Opposite() Dir {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

// Horizontal reports whether the direction moves along the X axis.
func (d Dir) Horizontal() bool {
	return d == DirLeft || d == DirRight
}

// Cell is the classification of one grid tile.
type Cell uint8

const (
	Open Cell = iota
	Wall
)

// Kind selects an entity's role in the round.
type Kind uint8

const (
	KindSeeker Kind = iota
	KindPursuer
)

// String returns the role name.
func (k Kind) String() string {
	if k == KindSeeker {
		return "Seeker"
	}
	return "Pursuer"
}

// Phase is the state of the round state machine.
type Phase uint8

const (
	PhaseRunning Phase = iota
	PhaseEditing
	PhaseOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseEditing:
		return "editing"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// Winner identifies who won a finished round.
type Winner uint8

const (
	WinnerNone Winner = iota
	WinnerSeeker
	WinnerPursuers
)

// String returns the winner label used in the HUD and round history.
func (w Winner) String() string {
	switch w {
	case WinnerSeeker:
		return "seeker"
	case WinnerPursuers:
		return "pursuers"
	default:
		return ""
	}
}

// Item is the content of a collectible cell.
type Item uint8

const (
	ItemNone Item = iota
	ItemCommon
	ItemSpecial
)

// Tool is an editor paint tool.
type Tool uint8

const (
	ToolWall Tool = iota
	ToolEmpty
	ToolCommon
	ToolSpecial
)

// Tools lists every paint tool in display order.
var Tools = []Tool{ToolWall, ToolEmpty, ToolCommon, ToolSpecial}

// String returns the tool name.
func (t Tool) String() string {
	switch t {
	case ToolWall:
		return "wall"
	case ToolEmpty:
		return "empty"
	case ToolCommon:
		return "common"
	case ToolSpecial:
		return "special"
	default:
		return "unknown"
	}
}
