package mazechase

import (
	"fmt"
	"strings"

	platformcore "github.com/vovakirdan/mazechase/internal/core"
	"github.com/vovakirdan/mazechase/internal/games/mazechase/core"
)

// Layout constants, in terminal cells.
const (
	cellW      = 2 // each maze cell is two columns wide
	hudRows    = 1
	statusRows = 1
	panelGap   = 2
	panelW     = 22
)

// Visual characters for rendering
const (
	WallChar    = '█'
	CommonChar  = '·'
	SpecialChar = '●'
	ShadeChar   = '░'
	SeekerChar  = '@'
	PursuerChar = 'Ω'
)

var dirArrows = map[core.Dir]rune{
	core.DirNone:  ' ',
	core.DirUp:    '↑',
	core.DirDown:  '↓',
	core.DirLeft:  '←',
	core.DirRight: '→',
}

// entityColors maps the engine's entity colors to terminal colors.
var entityColors = map[string]platformcore.Color{
	core.SeekerColor: platformcore.ColorBrightYellow,
	"#F44336":        platformcore.ColorBrightRed,
	"#E91E63":        platformcore.ColorBrightMagenta,
	"#00BCD4":        platformcore.ColorBrightCyan,
}

func entityColor(hex string) platformcore.Color {
	if c, ok := entityColors[hex]; ok {
		return c
	}
	return platformcore.ColorWhite
}

// layout places the maze and the side panel on screen.
type layout struct {
	mazeX, mazeY int
	panelX       int
	panel        bool // side panel fits next to the maze
	fits         bool // maze, HUD and status line fit
}

func computeLayout(w, h, rows, cols int) layout {
	mazeW := cols * cellW
	l := layout{mazeY: hudRows}
	l.fits = w >= mazeW && h >= hudRows+rows+statusRows

	if total := mazeW + panelGap + panelW; w >= total {
		l.panel = true
		l.mazeX = (w - total) / 2
		l.panelX = l.mazeX + mazeW + panelGap
	} else {
		l.mazeX = (w - mazeW) / 2
	}
	return l
}

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.sim == nil {
		return
	}
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	v := g.sim.View()
	g.renderHUD(dst, &v)
	g.renderMaze(dst, &v)
	g.renderTrails(dst, &v)
	g.renderEntities(dst, &v)
	g.renderPopups(dst, &v)
	g.renderStatus(dst, &v)
	if g.layout.panel {
		panel := g.panelRect()
		dst.DrawVLine(panel.X-panelGap/2, panel.Y, panel.H, '│')
		if v.Editing {
			g.renderEditorPanel(dst, &v)
		} else {
			g.renderPlayersPanel(dst, &v)
		}
	}

	switch {
	case v.Phase == core.PhaseOver:
		title := "PURSUERS WIN!"
		if v.Winner == core.WinnerSeeker {
			title = "SEEKER WINS!"
		}
		g.renderOverlay(dst, title, fmt.Sprintf("Score %d - press R to restart", v.Score))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	grid := g.sim.State().Live.Grid
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", grid.Cols*cellW, hudRows+grid.Rows+statusRows))
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *platformcore.Screen, v *core.View) {
	x := g.layout.mazeX
	dst.DrawTextWithColor(x, 0, "MAZE CHASE", platformcore.ColorCyan)

	info := fmt.Sprintf("Score %d  Left %d", v.Score, v.Remaining)
	if v.Vulnerable {
		info += fmt.Sprintf("  Power %.1fs", v.VulnerableLeft)
	}
	dst.DrawText(x+12, 0, info)

	tag := strings.ToUpper(v.Phase.String())
	if g.paused {
		tag = "PAUSED"
	}
	right := g.layout.mazeX + v.Grid.Cols*cellW - len(tag)
	dst.DrawTextWithColor(right, 0, tag, platformcore.ColorGray)
}

// cellX returns the screen column of maze column col.
func (g *Game) cellX(col int) int {
	return g.layout.mazeX + col*cellW
}

// cellY returns the screen row of maze row row.
func (g *Game) cellY(row int) int {
	return g.layout.mazeY + row
}

func (g *Game) drawCell(dst *platformcore.Screen, p core.CellPos, a, b rune, c platformcore.Color) {
	x, y := g.cellX(p.Col), g.cellY(p.Row)
	dst.SetWithColor(x, y, a, c)
	dst.SetWithColor(x+1, y, b, c)
}

// renderMaze draws walls, collectibles and, while editing, the sanctuary.
func (g *Game) renderMaze(dst *platformcore.Screen, v *core.View) {
	for row := 0; row < v.Grid.Rows; row++ {
		for col := 0; col < v.Grid.Cols; col++ {
			p := core.At(row, col)
			switch {
			case v.Grid.At(p) == core.Wall:
				g.drawCell(dst, p, WallChar, WallChar, platformcore.ColorBlue)
			case v.ItemAt(p) == core.ItemSpecial:
				g.drawCell(dst, p, SpecialChar, ' ', platformcore.ColorBrightWhite)
			case v.ItemAt(p) == core.ItemCommon:
				g.drawCell(dst, p, CommonChar, ' ', platformcore.ColorWhite)
			case v.Editing && v.Sanctuary.Contains(p):
				g.drawCell(dst, p, ShadeChar, ShadeChar, platformcore.ColorGray)
			}
		}
	}
}

// renderTrails shades the cells each entity crossed recently.
func (g *Game) renderTrails(dst *platformcore.Screen, v *core.View) {
	for _, e := range v.Entities {
		here := v.CellOf(e)
		color := g.pursuerColor(v, e)
		for _, pt := range e.Trail {
			p := v.CellAt(pt.X, pt.Y)
			if p == here || v.Grid.At(p) == core.Wall || v.ItemAt(p) != core.ItemNone {
				continue
			}
			g.drawCell(dst, p, ShadeChar, ' ', color)
		}
	}
}

// pursuerColor returns the entity's color, switching pursuers to green
// while vulnerable and flashing during the last two seconds.
func (g *Game) pursuerColor(v *core.View, e core.EntityView) platformcore.Color {
	if e.Kind != core.KindPursuer || !v.Vulnerable {
		return entityColor(e.Color)
	}
	if v.VulnerableLeft < 2 && int(v.VulnerableLeft*4)%2 == 0 {
		return platformcore.ColorBrightWhite
	}
	return platformcore.ColorBrightGreen
}

// renderEntities draws pursuers first so the seeker stays on top.
func (g *Game) renderEntities(dst *platformcore.Screen, v *core.View) {
	for _, e := range v.Entities {
		if e.Kind != core.KindPursuer {
			continue
		}
		label := []rune(e.Label)
		g.drawCell(dst, v.CellOf(e), PursuerChar, label[len(label)-1], g.pursuerColor(v, e))
	}
	for _, e := range v.Entities {
		if e.Kind == core.KindSeeker {
			g.drawCell(dst, v.CellOf(e), SeekerChar, dirArrows[e.Dir], entityColor(e.Color))
		}
	}
}

// renderPopups draws the floating score labels.
func (g *Game) renderPopups(dst *platformcore.Screen, v *core.View) {
	for _, p := range g.popups {
		row := p.Row(v.Clock)
		if row < 0 {
			continue
		}
		dst.DrawTextWithColor(g.cellX(p.Cell.Col), g.cellY(row), p.Text, platformcore.ColorBrightYellow)
	}
}

// renderStatus draws the line under the maze.
func (g *Game) renderStatus(dst *platformcore.Screen, v *core.View) {
	y := g.cellY(v.Grid.Rows)
	x := g.layout.mazeX

	switch {
	case g.message != "":
		dst.DrawTextWithColor(x, y, g.message, platformcore.ColorBrightYellow)
	case v.Editing:
		color := platformcore.ColorGreen
		if !v.CanSave {
			color = platformcore.ColorBrightRed
		}
		dst.DrawTextWithColor(x, y, fmt.Sprintf("EDIT [%s] %s", v.Tool, v.Hint), color)
	case v.Vulnerable:
		dst.DrawTextWithColor(x, y, fmt.Sprintf("Pursuers vulnerable for %.1fs", v.VulnerableLeft), platformcore.ColorBrightGreen)
	case !g.layout.panel:
		dst.DrawTextWithColor(x, y, "Seeker 8456  P1 WASD  P2 IJKL  P3 arrows  E edit", platformcore.ColorGray)
	}
}

// playerRows describes the keys of each entity in panel order.
var playerRows = []string{"8 4 5 6", "W A S D", "I J K L", "arrows"}

// renderPlayersPanel lists entities, their keys and the shared commands.
func (g *Game) renderPlayersPanel(dst *platformcore.Screen, v *core.View) {
	x, y := g.layout.panelX, g.layout.mazeY
	dst.DrawTextWithColor(x, y, "PLAYERS", platformcore.ColorCyan)
	dst.DrawHLine(x, y+1, panelW, '─')
	y += 2

	for i, e := range v.Entities {
		keys := ""
		if i < len(playerRows) {
			keys = playerRows[i]
		}
		glyph := string([]rune{SeekerChar, ' '})
		name := "Seeker"
		if e.Kind == core.KindPursuer {
			glyph = string(PursuerChar) + e.Label
			name = "Pursuer"
		}
		dst.DrawTextWithColor(x, y, glyph, g.pursuerColor(v, e))
		dst.DrawText(x+3, y, fmt.Sprintf("%-8s %s", name, keys))
		y++
	}

	y++
	for _, line := range []string{"E  editor", "R  restart", "P  pause", "Q  quit"} {
		dst.DrawTextWithColor(x, y, line, platformcore.ColorGray)
		y++
	}

	if g.difficulty.IsEnabled() {
		y++
		dst.DrawText(x, y, fmt.Sprintf("Pursuer pace %d%%", int(g.pace*100+0.5)))
	}
}

// renderEditorPanel lists tools and commands with the save status.
func (g *Game) renderEditorPanel(dst *platformcore.Screen, v *core.View) {
	x, y := g.layout.panelX, g.layout.mazeY
	dst.DrawTextWithColor(x, y, "EDITOR", platformcore.ColorCyan)
	dst.DrawHLine(x, y+1, panelW, '─')
	y += 2

	keys := []string{"Z", "X", "C", "V"}
	for i, t := range core.Tools {
		marker, color := "  ", platformcore.ColorDefault
		if t == v.Tool {
			marker, color = "> ", platformcore.ColorBrightYellow
		}
		dst.DrawTextWithColor(x, y, fmt.Sprintf("%s%s  %s", marker, keys[i], t), color)
		y++
	}

	y++
	for _, line := range []string{"N  clear walls", "M  clear items", "Enter  save", "Esc/E  cancel"} {
		dst.DrawTextWithColor(x, y, line, platformcore.ColorGray)
		y++
	}

	y++
	dst.DrawText(x, y, fmt.Sprintf("Collectibles: %d", v.Remaining))
	y += 2

	color := platformcore.ColorGreen
	if !v.CanSave {
		color = platformcore.ColorBrightRed
	}
	for _, line := range wrap(v.Hint, panelW) {
		dst.DrawTextWithColor(x, y, line, color)
		y++
	}
}

// renderOverlay draws a centered box over the maze.
func (g *Game) renderOverlay(dst *platformcore.Screen, title, subtitle string) {
	maze := g.mazeRect()
	w := platformcore.Clamp(max(len(title), len(subtitle))+4, 0, maze.W)
	r := maze.Centered(w, 5)

	dst.DrawRect(r, ' ')
	dst.DrawBox(r)
	dst.DrawTextWithColor(r.X+(w-len(title))/2, r.Y+1, title, platformcore.ColorBrightYellow)
	dst.DrawText(r.X+(w-len(subtitle))/2, r.Y+3, subtitle)
}

// panelRect returns the screen area of the side panel, empty when hidden.
func (g *Game) panelRect() platformcore.Rect {
	if !g.layout.panel {
		return platformcore.Rect{}
	}
	grid := g.sim.State().Live.Grid
	return platformcore.NewRect(g.layout.panelX, g.layout.mazeY, panelW, grid.Rows)
}

// mazeRect returns the screen area covered by the maze.
func (g *Game) mazeRect() platformcore.Rect {
	grid := g.sim.State().Live.Grid
	return platformcore.NewRect(g.layout.mazeX, g.layout.mazeY, grid.Cols*cellW, grid.Rows)
}

// wrap splits text into lines no longer than width.
func wrap(text string, width int) []string {
	var lines []string
	var line string
	for _, word := range strings.Fields(text) {
		switch {
		case line == "":
			line = word
		case len(line)+1+len(word) <= width:
			line += " " + word
		default:
			lines = append(lines, line)
			line = word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
