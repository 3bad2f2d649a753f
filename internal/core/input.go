package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone Action = iota
	// Per-player direction keys.
	ActionUp
	ActionDown
	ActionLeft
	ActionRight

	ActionRestart // R key - start a fresh round from the baseline
	ActionQuit    // Q, Ctrl+C - exit
	ActionPause   // P - pause/unpause the simulation

	ActionToggleEditor      // E - open the editor, or cancel it when open
	ActionSave              // Enter - commit the draft
	ActionCancel            // Esc - discard the draft
	ActionToolWall          // Z
	ActionToolEmpty         // X
	ActionToolCommon        // C
	ActionToolSpecial       // V
	ActionClearWalls        // N
	ActionClearCollectibles // M
)

var actionNames = map[Action]string{
	ActionNone:              "None",
	ActionUp:                "Up",
	ActionDown:              "Down",
	ActionLeft:              "Left",
	ActionRight:             "Right",
	ActionRestart:           "Restart",
	ActionQuit:              "Quit",
	ActionPause:             "Pause",
	ActionToggleEditor:      "ToggleEditor",
	ActionSave:              "Save",
	ActionCancel:            "Cancel",
	ActionToolWall:          "ToolWall",
	ActionToolEmpty:         "ToolEmpty",
	ActionToolCommon:        "ToolCommon",
	ActionToolSpecial:       "ToolSpecial",
	ActionClearWalls:        "ClearWalls",
	ActionClearCollectibles: "ClearCollectibles",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputFrame represents the input state for a single player during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// MultiInputFrame contains input from all players for a single tick.
// Platform builds this from one shared keyboard; games consume it
// without knowing which keys produced it.
type MultiInputFrame struct {
	// ByPlayer maps player IDs to their input frames.
	ByPlayer map[PlayerID]InputFrame
}

// NewMultiInputFrame creates an empty multi-input frame.
func NewMultiInputFrame() MultiInputFrame {
	return MultiInputFrame{
		ByPlayer: make(map[PlayerID]InputFrame),
	}
}

// Player returns the input frame for a specific player.
// Returns an empty frame if player has no input.
func (m MultiInputFrame) Player(id PlayerID) InputFrame {
	if m.ByPlayer == nil {
		return NewInputFrame()
	}
	if frame, ok := m.ByPlayer[id]; ok {
		return frame
	}
	return NewInputFrame()
}

// SetPlayer sets the input frame for a specific player.
func (m *MultiInputFrame) SetPlayer(id PlayerID, frame InputFrame) {
	if m.ByPlayer == nil {
		m.ByPlayer = make(map[PlayerID]InputFrame)
	}
	m.ByPlayer[id] = frame
}

// Control returns the shared command frame.
func (m MultiInputFrame) Control() InputFrame {
	return m.Player(PlayerControl)
}

// Add marks an action for a player, creating its frame on demand.
func (m *MultiInputFrame) Add(id PlayerID, a Action) {
	frame := m.Player(id)
	frame.Set(a)
	m.SetPlayer(id, frame)
}

// Clear resets all player inputs for the next frame.
func (m *MultiInputFrame) Clear() {
	for id := range m.ByPlayer {
		frame := m.ByPlayer[id]
		frame.Clear()
		m.ByPlayer[id] = frame
	}
}

// Clone creates a deep copy of this multi-input frame.
func (m MultiInputFrame) Clone() MultiInputFrame {
	clone := NewMultiInputFrame()
	for id, frame := range m.ByPlayer {
		clone.ByPlayer[id] = frame.Clone()
	}
	return clone
}

// PointerAction describes a mouse event in screen cells.
type PointerAction int

const (
	PointerPress   PointerAction = iota // button went down
	PointerDrag                         // moved with the button held
	PointerRelease                      // button released or plain motion
)
