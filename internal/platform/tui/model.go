package tui

import (
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// ConfigReloadMsg carries a re-read config file into the update loop.
type ConfigReloadMsg struct {
	Config config.SnakeConfig
	Err    error
}

// Options configures a Model.
type Options struct {
	FPS    int
	Logger *log.Logger

	// WatchPath, if set, is watched for changes and hot-reloaded.
	WatchPath string
}

// Model is the Bubble Tea model that owns the snake session.
type Model struct {
	session    *snake.Session
	screen     *core.Screen
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	fps        int
	inputFrame core.InputFrame
	lastMode   snake.Mode
	width      int
	height     int
	quitting   bool
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// NewModel wraps session in a Bubble Tea model.
func NewModel(session *snake.Session, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	grid := session.Grid()
	w, h := snake.RequiredSize(grid.W, grid.H)

	return Model{
		session:    session,
		screen:     core.NewScreen(w, h),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		logger:     logger,
		fps:        opts.FPS,
		inputFrame: core.NewInputFrame(),
		lastMode:   session.Mode(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.fps)
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

	case ConfigReloadMsg:
		return m.handleReload(msg)
	}

	return m, nil
}

// handleKey buffers the key's intent for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.logger.Info("quit", "score", m.session.Score(), "mode", m.session.Mode())
		return m, tea.Quit
	}
	return m, nil
}

// handleTick feeds the buffered intents to the session and advances it once.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.session.Step(m.inputFrame)
	m.inputFrame.Clear()

	if result.Ate {
		m.logger.Debug("food eaten", "score", result.State.Score, "length", m.session.Snapshot().Length)
	}
	m.noteTransition()

	return m, tickCmd(m.fps)
}

// noteTransition logs a mode change since the last tick.
func (m *Model) noteTransition() {
	mode := m.session.Mode()
	if mode == m.lastMode {
		return
	}

	switch mode {
	case snake.ModeGameOver:
		snap := m.session.Snapshot()
		m.logger.Info("game over", "score", snap.Score, "length", snap.Length, "difficulty", snap.Difficulty)
	case snake.ModePlaying:
		m.logger.Info("playing", "from", m.lastMode, "difficulty", m.session.Difficulty())
	default:
		m.logger.Info("mode changed", "from", m.lastMode, "to", mode)
	}
	m.lastMode = mode
}

// handleReload applies a hot-reloaded config. Board size is fixed for the
// life of the session; speeds, scoring and frame rate change in place.
func (m Model) handleReload(msg ConfigReloadMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.logger.Warn("config reload failed, keeping previous settings", "error", msg.Err)
		return m, nil
	}

	cfg := msg.Config
	m.session.SetDifficultyTable(cfg.Difficulty.TicksPerMove)
	m.session.SetFoodPoints(cfg.Scoring.FoodPoints)
	m.fps = cfg.Timing.FPS

	if w, h := cfg.GridSize(); w != m.session.Grid().W || h != m.session.Grid().H {
		m.logger.Warn("board size changes apply on next launch", "width", w, "height", h)
	}
	m.logger.Info("config reloaded",
		"fps", cfg.Timing.FPS,
		"ticks_per_move", cfg.Difficulty.TicksPerMove,
		"food_points", cfg.Scoring.FoodPoints,
	)
	return m, nil
}

// View renders the board with the controls panel underneath.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	controls := helpStyle.Render(m.help.View(m.keys))

	// Before the first WindowSizeMsg, draw at the board's natural size.
	if m.width > 0 && m.height > 0 {
		m.screen.Resize(m.width, core.Max(0, m.height-lipgloss.Height(controls)))
	}
	snake.Render(m.session.Snapshot(), m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(controls)
	return b.String()
}

// NewProgram creates the Bubble Tea program for model on the alternate screen.
func NewProgram(model Model, opts ...tea.ProgramOption) *tea.Program {
	return tea.NewProgram(model, append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)...)
}

// Run plays session until the user quits or ctx is cancelled.
func Run(ctx context.Context, session *snake.Session, opts Options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := NewModel(session, opts)
	p := NewProgram(model, tea.WithContext(ctx))

	if opts.WatchPath != "" {
		err := config.Watch(ctx, opts.WatchPath, func(cfg config.SnakeConfig, err error) {
			p.Send(ConfigReloadMsg{Config: cfg, Err: err})
		})
		if err != nil {
			model.logger.Warn("config watch disabled", "path", opts.WatchPath, "error", err)
		} else {
			model.logger.Info("watching config", "path", opts.WatchPath)
		}
	}

	_, err := p.Run()
	return err
}
