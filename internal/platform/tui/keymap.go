package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mazechase/internal/core"
)

// PlayerKeys holds the four movement bindings of one player.
type PlayerKeys struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
}

func playerKeys(up, left, down, right string, labels [4]string) PlayerKeys {
	return PlayerKeys{
		Up:    key.NewBinding(key.WithKeys(up), key.WithHelp(labels[0], "up")),
		Left:  key.NewBinding(key.WithKeys(left), key.WithHelp(labels[1], "left")),
		Down:  key.NewBinding(key.WithKeys(down), key.WithHelp(labels[2], "down")),
		Right: key.NewBinding(key.WithKeys(right), key.WithHelp(labels[3], "right")),
	}
}

// KeyMap defines every binding of the shared keyboard.
// It implements help.KeyMap for the footer and the keys command.
type KeyMap struct {
	Players map[core.PlayerID]PlayerKeys

	Editor     key.Binding
	Save       key.Binding
	Cancel     key.Binding
	Restart    key.Binding
	Pause      key.Binding
	Quit       key.Binding
	Screenshot key.Binding

	ToolWall          key.Binding
	ToolEmpty         key.Binding
	ToolCommon        key.Binding
	ToolSpecial       key.Binding
	ClearWalls        key.Binding
	ClearCollectibles key.Binding
}

// DefaultKeyMap returns the standard layout: the seeker on the numeric
// keypad, pursuers on WASD, IJKL and the arrow keys.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Players: map[core.PlayerID]PlayerKeys{
			core.Player1: playerKeys("8", "4", "5", "6", [4]string{"8", "4", "5", "6"}),
			core.Player2: playerKeys("w", "a", "s", "d", [4]string{"w", "a", "s", "d"}),
			core.Player3: playerKeys("i", "j", "k", "l", [4]string{"i", "j", "k", "l"}),
			core.Player4: playerKeys("up", "left", "down", "right", [4]string{"↑", "←", "↓", "→"}),
		},
		Editor:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "editor")),
		Save:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Restart:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Pause:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Screenshot: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "screenshot")),

		ToolWall:          key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "wall")),
		ToolEmpty:         key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "empty")),
		ToolCommon:        key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "common")),
		ToolSpecial:       key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "special")),
		ClearWalls:        key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "clear walls")),
		ClearCollectibles: key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "clear items")),
	}
}

// ShortHelp returns the shared commands shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Editor, k.Save, k.Cancel, k.Restart, k.Pause, k.Screenshot, k.Quit}
}

// FullHelp returns every binding grouped by player and editor.
func (k KeyMap) FullHelp() [][]key.Binding {
	groups := make([][]key.Binding, 0, core.MaxPlayers+2)
	for _, id := range core.Players() {
		p := k.Players[id]
		groups = append(groups, []key.Binding{p.Up, p.Left, p.Down, p.Right})
	}
	groups = append(groups,
		[]key.Binding{k.ToolWall, k.ToolEmpty, k.ToolCommon, k.ToolSpecial, k.ClearWalls, k.ClearCollectibles},
		k.ShortHelp(),
	)
	return groups
}

// keyAction ties a binding to the player and action it produces.
type keyAction struct {
	binding key.Binding
	player  core.PlayerID
	action  core.Action
}

// KeyMapper translates Bubble Tea key messages to per-player actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys    KeyMap
	actions []keyAction
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return NewKeyMapperWith(DefaultKeyMap())
}

// NewKeyMapperWith creates a key mapper for the given bindings.
func NewKeyMapperWith(keys KeyMap) *KeyMapper {
	km := &KeyMapper{keys: keys}
	for _, id := range core.Players() {
		p := keys.Players[id]
		km.actions = append(km.actions,
			keyAction{p.Up, id, core.ActionUp},
			keyAction{p.Down, id, core.ActionDown},
			keyAction{p.Left, id, core.ActionLeft},
			keyAction{p.Right, id, core.ActionRight},
		)
	}
	ctl := core.PlayerControl
	km.actions = append(km.actions,
		keyAction{keys.Editor, ctl, core.ActionToggleEditor},
		keyAction{keys.Save, ctl, core.ActionSave},
		keyAction{keys.Cancel, ctl, core.ActionCancel},
		keyAction{keys.Restart, ctl, core.ActionRestart},
		keyAction{keys.Pause, ctl, core.ActionPause},
		keyAction{keys.ToolWall, ctl, core.ActionToolWall},
		keyAction{keys.ToolEmpty, ctl, core.ActionToolEmpty},
		keyAction{keys.ToolCommon, ctl, core.ActionToolCommon},
		keyAction{keys.ToolSpecial, ctl, core.ActionToolSpecial},
		keyAction{keys.ClearWalls, ctl, core.ActionClearWalls},
		keyAction{keys.ClearCollectibles, ctl, core.ActionClearCollectibles},
	)
	return km
}

// Keys returns the bindings this mapper uses.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to a player action.
// Returns ActionNone for unbound keys and ActionQuit for quit requests.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (core.PlayerID, core.Action) {
	if key.Matches(msg, km.keys.Quit) {
		return core.PlayerControl, core.ActionQuit
	}
	for _, ka := range km.actions {
		if key.Matches(msg, ka.binding) {
			return ka.player, ka.action
		}
	}
	return core.PlayerControl, core.ActionNone
}

// MapKeyToMultiFrame adds the action for a key message to the frame.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToMultiFrame(msg tea.KeyMsg, frame *core.MultiInputFrame) bool {
	id, action := km.MapKey(msg)
	switch action {
	case core.ActionQuit:
		return true
	case core.ActionNone:
		return false
	}
	frame.Add(id, action)
	return false
}
