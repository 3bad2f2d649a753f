// Package mazechase provides the four-player maze chase game: one seeker
// clearing collectibles against three pursuers, plus an in-game maze editor.
package mazechase

import (
	"fmt"

	"github.com/vovakirdan/mazechase/internal/config"
	platformcore "github.com/vovakirdan/mazechase/internal/core"
	"github.com/vovakirdan/mazechase/internal/games/mazechase/core"
	"github.com/vovakirdan/mazechase/internal/registry"
)

// GameID is the registry and storage identifier.
const GameID = "mazechase"

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// LoadConfig resolves the effective configuration from the CLI settings.
func LoadConfig() (config.MazeConfig, error) {
	cfg, err := config.LoadMaze(configPath)
	if err != nil {
		return config.DefaultMazeConfig(), err
	}
	if difficultyPreset != "" {
		config.ApplyMazePreset(&cfg, difficultyPreset)
	}
	return cfg, nil
}

// messageSeconds is how long a status message stays on screen.
const messageSeconds = 3

// Game adapts the simulation engine to the platform Game interface.
type Game struct {
	cfg        config.MazeConfig
	fixed      bool // cfg was supplied by the caller
	sim        *core.Sim
	difficulty *config.DifficultyManager

	// Screen
	screenW  int
	screenH  int
	tickRate int
	layout   layout
	tooSmall bool

	// Status
	tick         uint64
	paused       bool
	popups       []Popup
	message      string
	messageUntil uint64
	events       []string

	// Round stats
	pace   float64 // pursuer speed relative to the configured base
	caught int
	edited bool
}

// New creates a game that loads its configuration on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game with a fixed configuration.
func NewWithConfig(cfg config.MazeConfig) *Game {
	return &Game{cfg: cfg, fixed: true}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Maze Chase"
}

// TuningFrom converts a configuration into engine tuning.
func TuningFrom(cfg config.MazeConfig) core.Tuning {
	m, r := cfg.Movement, cfg.Rules
	return core.Tuning{
		TileSize:          cfg.Board.TileSize,
		SeekerSpeed:       m.SeekerSpeed,
		PursuerSpeed:      m.PursuerSpeed,
		VulnerableSpeed:   m.VulnerableSpeed,
		WallRadius:        m.WallRadius,
		SnapTolerance:     m.SnapTolerance,
		TurnStep:          m.TurnStep,
		MaxDelta:          m.MaxDelta,
		CacheEnabled:      m.CacheEnabled,
		CommonReward:      r.CommonReward,
		SpecialReward:     r.SpecialReward,
		PursuerBonus:      r.PursuerBonus,
		VulnerableSeconds: r.VulnerableSeconds,
		CatchDistance:     r.CatchDistance,
		TrailSeconds:      r.TrailSeconds,
	}
}

// Reset builds a fresh default maze and starts a round on it. Edits made
// in a previous session are discarded; ActionRestart keeps them.
func (g *Game) Reset(rc platformcore.RuntimeConfig) {
	var loadErr error
	if !g.fixed {
		g.cfg, loadErr = LoadConfig()
	}

	g.tickRate = rc.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	b := g.cfg.Board
	g.sim = core.NewSim(core.BuildDefaultMaze(b.Rows, b.Cols), TuningFrom(g.cfg))
	g.tick = 0
	g.paused = false
	g.popups = nil
	g.events = nil
	g.pace = 1
	g.caught = 0
	g.edited = false
	g.clearMessage()
	if loadErr != nil {
		g.flash(fmt.Sprintf("%v (using defaults)", loadErr))
	}

	g.Resize(rc.ScreenW, rc.ScreenH)
}

// Resize recomputes the layout without touching the round.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	if g.sim == nil {
		return
	}
	grid := g.sim.State().Live.Grid
	g.layout = computeLayout(w, h, grid.Rows, grid.Cols)
	g.tooSmall = !g.layout.fits
}

// Sim exposes the engine, mainly for tests and tooling.
func (g *Game) Sim() *core.Sim {
	return g.sim
}

// Config returns the configuration the current round was built from.
func (g *Game) Config() config.MazeConfig {
	return g.cfg
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.MultiInputFrame) platformcore.StepResult {
	g.tick++
	g.events = g.events[:0]
	if g.message != "" && g.tick >= g.messageUntil {
		g.clearMessage()
	}

	// A frame that opens, closes or restarts out of the editor or a finished
	// round only changes phase; the next frame simulates.
	wasRunning := g.sim.Phase() == core.PhaseRunning
	g.applyCommands(in.Control())
	running := wasRunning && g.sim.Phase() == core.PhaseRunning

	if g.sim.Phase() == core.PhaseRunning {
		g.applyMovement(in)
	}

	if !g.paused && running {
		st := g.sim.State()
		base := g.cfg.Movement.PursuerSpeed
		speed := g.difficulty.Speed(base, st.Seeker().Score, int(st.Tick))
		g.sim.SetPursuerSpeed(speed)
		g.pace = speed / base

		res := g.sim.Tick(1 / float64(g.tickRate))
		g.handleEvents(res.Events)
	}
	g.expirePopups()

	return platformcore.StepResult{State: g.State(), Events: g.events}
}

// handleEvents turns engine events into popups and log lines.
func (g *Game) handleEvents(events []core.Event) {
	st := g.sim.State()
	for _, ev := range events {
		switch ev.Kind {
		case core.EventCollected:
			g.addPopup(ev, st.Clock)
			g.events = append(g.events, fmt.Sprintf("collected %s at %v (+%d)", itemName(ev.Item), ev.Cell, ev.Points))
		case core.EventPursuerCaught:
			g.caught++
			g.addPopup(ev, st.Clock)
			g.events = append(g.events, fmt.Sprintf("pursuer %s caught at %v (+%d)", st.Entities[ev.Entity].Label, ev.Cell, ev.Points))
		case core.EventRoundOver:
			g.events = append(g.events, fmt.Sprintf("round over: winner %s, score %d", ev.Winner, st.Seeker().Score))
		}
	}
}

func itemName(it core.Item) string {
	if it == core.ItemSpecial {
		return "special"
	}
	return "common"
}

// flash shows a status message for a few seconds.
func (g *Game) flash(msg string) {
	g.message = msg
	g.messageUntil = g.tick + uint64(messageSeconds*g.tickRate)
}

func (g *Game) clearMessage() {
	g.message = ""
	g.messageUntil = 0
}

// Pointer paints with the current tool while the editor is open.
// Coordinates are screen cells; each maze cell is two columns wide.
// A press outside both the maze and the side panel cancels the edit.
func (g *Game) Pointer(x, y int, action platformcore.PointerAction) {
	if action == platformcore.PointerRelease || g.sim == nil || g.tooSmall {
		return
	}
	ed := g.sim.Editor()
	if !ed.Active() {
		return
	}

	if !g.mazeRect().Contains(x, y) {
		if action == platformcore.PointerPress && !g.panelRect().Contains(x, y) {
			if err := ed.Cancel(); err == nil {
				g.flash("edit cancelled")
			}
		}
		return
	}

	tile := g.cfg.Board.TileSize
	px := float64(x-g.layout.mazeX) / cellW * tile
	py := (float64(y-g.layout.mazeY) + 0.5) * tile
	ed.Paint(px, py)
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	if g.sim == nil {
		return platformcore.GameState{}
	}
	st := g.sim.State()
	return platformcore.GameState{
		Score:    st.Seeker().Score,
		GameOver: st.Phase == core.PhaseOver,
		Paused:   g.paused,
		Editing:  st.Phase == core.PhaseEditing,
		Winner:   st.Winner.String(),
		Message:  g.message,
	}
}

// RoundSummary reports the current round for persistence.
func (g *Game) RoundSummary() platformcore.RoundSummary {
	if g.sim == nil {
		return platformcore.RoundSummary{}
	}
	st := g.sim.State()
	return platformcore.RoundSummary{
		Winner:         st.Winner.String(),
		Score:          st.Seeker().Score,
		Remaining:      st.Remaining,
		PursuersCaught: g.caught,
		Duration:       st.Clock,
		CustomMaze:     g.edited,
	}
}
