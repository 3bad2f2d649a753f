package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mazechase/internal/core"
	"github.com/vovakirdan/mazechase/internal/registry"
	"github.com/vovakirdan/mazechase/internal/storage"
)

// helpRows is the height of the key help footer.
const helpRows = 1

// Model is the Bubble Tea model for running a game.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	store    *storage.Store
	logger   *log.Logger
	keys     *KeyMapper
	help     help.Model
	config   core.RuntimeConfig
	input    core.MultiInputFrame
	state    core.GameState
	quitting bool
	saved    bool // Whether the current game over has been persisted
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger discards log output.
func NewModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, gameHeight(cfg.ScreenH)),
		store:  store,
		logger: logger,
		keys:   NewKeyMapper(),
		help:   h,
		config: cfg,
		input:  core.NewMultiInputFrame(),
	}
}

// gameHeight is the screen height left to the game under the footer.
func gameHeight(h int) int {
	return max(h-helpRows, 0)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	cfg := m.config
	cfg.ScreenH = gameHeight(cfg.ScreenH)
	m.game.Reset(cfg)
	m.logger.Info("round started", "game", m.game.ID(), "width", cfg.ScreenW, "height", cfg.ScreenH)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Keys from all players accumulate
// in the frame until the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Keys().Screenshot) {
		m.saveScreenshot()
		return m, nil
	}
	if m.keys.MapKeyToMultiFrame(msg, &m.input) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleMouse forwards left button events to games that take pointer input.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	ph, ok := m.game.(registry.PointerHandler)
	if !ok {
		return m, nil
	}
	ph.Pointer(msg.X, msg.Y, pointerAction(msg))
	return m, nil
}

// pointerAction classifies a mouse message. Only the left button paints.
func pointerAction(msg tea.MouseMsg) core.PointerAction {
	if msg.Button != tea.MouseButtonLeft {
		return core.PointerRelease
	}
	switch msg.Action {
	case tea.MouseActionPress:
		return core.PointerPress
	case tea.MouseActionMotion:
		return core.PointerDrag
	default:
		return core.PointerRelease
	}
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	h := gameHeight(msg.Height)
	m.screen.Resize(msg.Width, h)
	m.help.Width = msg.Width

	// Games that can relayout keep their round; others restart
	if r, ok := m.game.(registry.Resizable); ok {
		r.Resize(msg.Width, h)
	} else {
		cfg := m.config
		cfg.ScreenH = h
		m.game.Reset(cfg)
	}
	m.logger.Debug("resized", "width", msg.Width, "height", msg.Height)

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	prev := m.state
	result := m.game.Step(m.input)
	m.state = result.State

	for _, ev := range result.Events {
		m.logger.Debug(ev)
	}
	m.logTransitions(prev)

	switch {
	case m.state.GameOver && !m.saved:
		m.saveResult()
		m.saved = true
	case !m.state.GameOver:
		m.saved = false
	}

	// Clear input for next frame
	m.input.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// logTransitions records editor, pause and round changes.
func (m Model) logTransitions(prev core.GameState) {
	cur := m.state
	if cur.Editing != prev.Editing {
		m.logger.Info("editor", "open", cur.Editing)
	}
	if cur.Paused != prev.Paused {
		m.logger.Info("pause", "paused", cur.Paused)
	}
	if cur.Message != "" && cur.Message != prev.Message {
		m.logger.Info("status", "message", cur.Message)
	}
	if prev.GameOver && !cur.GameOver {
		m.logger.Info("round restarted")
	}
}

// saveResult stores the final score and, for games that report them,
// the round summary. Storage failures are logged and never stop play.
func (m Model) saveResult() {
	m.logger.Info("round over", "winner", m.state.Winner, "score", m.state.Score)
	if m.store == nil {
		return
	}

	if m.state.Score > 0 {
		if _, err := m.store.SaveScore(m.game.ID(), m.state.Score); err != nil {
			m.logger.Warn("could not save score", "error", err)
		}
	}

	rr, ok := m.game.(registry.RoundReporter)
	if !ok {
		return
	}
	sum := rr.RoundSummary()
	_, err := m.store.SaveRound(storage.RoundResult{
		GameID:         m.game.ID(),
		Winner:         sum.Winner,
		Score:          sum.Score,
		Remaining:      sum.Remaining,
		PursuersCaught: sum.PursuersCaught,
		Duration:       sum.Duration,
		CustomMaze:     sum.CustomMaze,
	})
	if err != nil {
		m.logger.Warn("could not save round", "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".mazechase", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + footerStyle.Render(m.help.View(m.keys.Keys()))
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Drag to paint in the editor
	)

	_, err := p.Run()
	return err
}

// NewLogger returns a logger writing to w, or a discarding logger if w is nil.
// The alternate screen owns the terminal, so log output goes to a file.
func NewLogger(w io.Writer, level log.Level) *log.Logger {
	if w == nil {
		w = io.Discard
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "mazechase",
		Level:           level,
	})
}
