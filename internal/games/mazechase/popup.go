package mazechase

import (
	"fmt"

	"github.com/vovakirdan/mazechase/internal/games/mazechase/core"
)

const (
	popupSeconds = 2.0 // simulation seconds a popup stays visible
	popupRise    = 2   // rows climbed over a popup's life
)

// Popup is a floating score label anchored to the cell where points were
// earned. Common collectibles do not spawn popups; at terminal resolution
// they would bury the maze under labels.
type Popup struct {
	Text string
	Cell core.CellPos
	Born float64 // simulation clock at creation
}

// Row returns the screen row offset of the popup relative to its cell.
func (p Popup) Row(now float64) int {
	age := now - p.Born
	return p.Cell.Row - int(age/popupSeconds*popupRise)
}

func (g *Game) addPopup(ev core.Event, now float64) {
	if ev.Kind == core.EventCollected && ev.Item != core.ItemSpecial {
		return
	}
	g.popups = append(g.popups, Popup{
		Text: fmt.Sprintf("+%d", ev.Points),
		Cell: ev.Cell,
		Born: now,
	})
}

// expirePopups drops popups that outlived their time or predate a reset.
func (g *Game) expirePopups() {
	now := g.sim.State().Clock
	kept := g.popups[:0]
	for _, p := range g.popups {
		if p.Born <= now && now-p.Born < popupSeconds {
			kept = append(kept, p)
		}
	}
	g.popups = kept
}

// Popups returns the visible popups.
func (g *Game) Popups() []Popup {
	return g.popups
}
