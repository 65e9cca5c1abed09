package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Model is the Bubble Tea model driving a single game.
// Key presses are applied to the game as they arrive; ticks advance it at a
// fixed interval. The game is owned by this model's loop only.
type Model struct {
	game      *snake.Game
	screen    *core.Screen
	keys      KeyMap
	help      help.Model
	interval  time.Duration
	logger    *log.Logger
	lastPhase snake.Phase
	width     int
	height    int
	quitting  bool
}

// NewModel creates a Bubble Tea model for the given game.
func NewModel(game *snake.Game, interval time.Duration, logger *log.Logger) Model {
	w, h := BoardSize(game.GridSize())
	return Model{
		game:      game,
		screen:    core.NewScreen(w, h),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		interval:  interval,
		logger:    logger,
		lastPhase: game.Phase(),
		width:     w,
		height:    h + 1,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey routes a key press to the game.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionNone {
		return m, nil
	}

	m.game.Apply(action)
	if m.game.ShouldQuit() {
		m.quitting = true
		m.logger.Debug("quit requested", "phase", m.game.Phase(), "score", m.game.Score())
		return m, tea.Quit
	}
	m.observe()
	return m, nil
}

// handleTick advances the game and schedules the next tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.game.Tick()
	m.observe()
	return m, tickCmd(m.interval)
}

// observe logs phase transitions.
func (m *Model) observe() {
	phase := m.game.Phase()
	if phase == m.lastPhase {
		return
	}
	snap := m.game.Snapshot()
	m.logger.Debug("phase change",
		"from", m.lastPhase,
		"to", phase,
		"score", snap.Score,
		"length", snap.Length,
		"heading", core.DirectionName(snap.Direction),
		"tick", snap.Tick,
	)
	m.lastPhase = phase
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	helpView := m.help.View(m.keys)
	m.screen.Resize(m.width, max(m.height-lipgloss.Height(helpView), 0))
	DrawBoard(m.screen, m.game.Snapshot())

	return RenderScreen(m.screen) + "\n" + helpView
}

// Run starts the Bubble Tea program for the game and blocks until it quits.
func Run(game *snake.Game, interval time.Duration, logger *log.Logger) error {
	model := NewModel(game, interval, logger)

	logger.Info("game started", "grid", game.GridSize(), "interval", interval)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()

	logger.Info("game ended", "phase", game.Phase(), "score", game.Score())
	return err
}
