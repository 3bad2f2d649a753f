package core

// PlayerID identifies an input source in a MultiInputFrame.
// PlayerControl carries shared commands (editor, restart, quit); the
// numbered players each drive one entity.
type PlayerID int

const (
	PlayerControl PlayerID = iota
	Player1
	Player2
	Player3
	Player4
)

// MaxPlayers is the number of entity-driving players.
const MaxPlayers = 4

// Players lists the entity-driving players in order.
func Players() []PlayerID {
	return []PlayerID{Player1, Player2, Player3, Player4}
}

// Index returns the zero-based entity index for a numbered player, or -1.
func (p PlayerID) Index() int {
	if p < Player1 || p > Player4 {
		return -1
	}
	return int(p - Player1)
}
