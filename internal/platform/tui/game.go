package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/memory-match/internal/config"
	"github.com/vovakirdan/memory-match/internal/core"
	"github.com/vovakirdan/memory-match/internal/feedback"
	"github.com/vovakirdan/memory-match/internal/memory"
)

// GameOptions configures one board.
type GameOptions struct {
	Mode       memory.Mode
	Difficulty memory.Difficulty
	Config     config.MemoryConfig
	Runtime    core.RuntimeConfig
	Keeper     memory.Scorekeeper     // Optional
	Settings   func() config.Settings // Optional, defaults apply
	Bell       io.Writer              // Where the terminal bell goes
	Logger     *log.Logger            // Optional
	ExitOnBack bool                   // Quit the program instead of returning to a menu
}

// GameModel is the Bubble Tea model for one memory board.
type GameModel struct {
	engine     *memory.Engine
	board      uint64
	difficulty memory.Difficulty
	screen     *core.Screen
	config     core.RuntimeConfig
	labels     map[string]string
	cursor     int
	sink       *feedback.ChannelSink
	player     feedback.Sink
	keyMapper  *KeyMapper
	lastTick   time.Time
	exitOnBack bool
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a board model. The game starts in Init.
func NewGameModel(opts GameOptions) GameModel {
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = opts.Config.Timing.TickRate
	}

	sink := feedback.NewChannelSink(32)
	engine := memory.New(opts.Config, memory.Options{
		Mode:       opts.Mode,
		Difficulty: opts.Difficulty,
		Seed:       opts.Runtime.Seed,
		Keeper:     opts.Keeper,
		Sink:       sink,
		Logger:     opts.Logger,
	})

	return GameModel{
		engine:     engine,
		board:      boards.Add(1),
		difficulty: opts.Difficulty,
		screen:     core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		config:     opts.Runtime,
		labels:     opts.Config.Labels(),
		sink:       sink,
		player:     feedback.NewPlayer(opts.Bell, opts.Logger, opts.Settings),
		keyMapper:  NewKeyMapper(),
		exitOnBack: opts.ExitOnBack,
	}
}

// Init deals the board and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	if err := m.engine.StartGame(m.difficulty); err != nil {
		return tea.Quit
	}
	return tickCmd(m.config.TickRate, m.board)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Board != m.board {
			return m, nil
		}
		return m.handleTick(msg.Time)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKey(msg)

	switch action {
	case core.ActionQuit:
		m.engine.Abandon()
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		m.engine.Abandon()
		m.backToMenu = true
		if m.exitOnBack {
			return m, tea.Quit
		}
		return m, nil

	case core.ActionFlip:
		cards := m.engine.Snapshot().Cards
		if m.cursor < len(cards) {
			m.engine.FlipCard(cards[m.cursor].ID)
		}

	case core.ActionPause:
		m.engine.TogglePause()

	case core.ActionRestart:
		m.engine.ResetGame()
		m.cursor = 0

	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		dx, dy := action.Delta()
		grid := memory.BoardGrid(m.engine.Difficulty(), len(m.engine.Snapshot().Cards))
		m.cursor = grid.Move(m.cursor, dx, dy)
	}

	m.playFeedback()
	return m, nil
}

// handleTick advances the engine by the wall time since the last tick.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	dt := tickInterval(m.config.TickRate)
	if !m.lastTick.IsZero() && now.After(m.lastTick) {
		dt = now.Sub(m.lastTick)
	}
	m.lastTick = now

	m.engine.Advance(dt)
	m.playFeedback()
	return m, tickCmd(m.config.TickRate, m.board)
}

func (m GameModel) playFeedback() {
	for _, evt := range m.sink.Drain() {
		m.player.Emit(evt)
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	memory.Render(m.screen, m.engine.Snapshot(), memory.View{
		Cursor: m.cursor,
		Labels: m.labels,
	})
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Snapshot exposes the engine state.
func (m GameModel) Snapshot() memory.Snapshot {
	return m.engine.Snapshot()
}

// RunGame plays a single board until the user leaves it.
func RunGame(opts GameOptions) error {
	model := NewGameModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
