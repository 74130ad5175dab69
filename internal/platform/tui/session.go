package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/memory-match/internal/config"
	"github.com/vovakirdan/memory-match/internal/core"
	"github.com/vovakirdan/memory-match/internal/memory"
	"github.com/vovakirdan/memory-match/internal/storage"
)

// SessionOptions configures a full interactive session.
type SessionOptions struct {
	Store    Store // Optional; nil plays without saving
	Config   config.MemoryConfig
	Runtime  core.RuntimeConfig
	Username string
	Bell     io.Writer
	Logger   *log.Logger
}

// page is which model the session is showing.
type page int

const (
	pageMenu page = iota
	pageGame
	pageScores
	pageSettings
)

// SessionModel manages the full session flow: menu -> game/scores/settings -> menu.
// It is the top-level model for local menus and SSH sessions alike.
type SessionModel struct {
	opts      SessionOptions
	sessionID string
	prefs     *preferences
	page      page
	menu      MenuModel
	game      GameModel
	scores    ScoreboardModel
	settings  SettingsModel
	quitting  bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(opts SessionOptions) SessionModel {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	sessionID := uuid.NewString()
	opts.Logger = opts.Logger.With("session", sessionID[:8])

	var settingsStore SettingsStore
	if opts.Store != nil {
		settingsStore = opts.Store
	}
	prefs := loadPreferences(settingsStore)

	m := SessionModel{
		opts:      opts,
		sessionID: sessionID,
		prefs:     prefs,
	}
	m.menu = m.newMenu()
	return m
}

func (m SessionModel) newMenu() MenuModel {
	d, err := memory.ParseDifficulty(m.prefs.get().Difficulty)
	if err != nil {
		d = memory.DifficultyMedium
	}
	return NewMenuModel(d, m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH)
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Runtime.ScreenW = wsm.Width
		m.opts.Runtime.ScreenH = wsm.Height
	}

	switch m.page {
	case pageGame:
		return m.updateGame(msg)
	case pageScores:
		return m.updateScores(msg)
	case pageSettings:
		return m.updateSettings(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch m.menu.Choice() {
	case MenuChoiceQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuChoicePlay:
		mode, difficulty := m.menu.Selection()
		m.opts.Logger.Info("board selected", "user", m.opts.Username, "mode", mode, "difficulty", difficulty)

		var keeper memory.Scorekeeper
		if m.opts.Store != nil {
			keeper = storage.NewKeeper(m.opts.Store, m.opts.Logger)
		}
		m.game = NewGameModel(GameOptions{
			Mode:       mode,
			Difficulty: difficulty,
			Config:     m.opts.Config,
			Runtime:    m.opts.Runtime,
			Keeper:     keeper,
			Settings:   m.prefs.get,
			Bell:       m.opts.Bell,
			Logger:     m.opts.Logger,
		})
		m.page = pageGame
		return m, m.game.Init()

	case MenuChoiceScores:
		var scores ScoreStore
		if m.opts.Store != nil {
			scores = m.opts.Store
		}
		m.scores = NewScoreboardModel(scores, m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH)
		m.page = pageScores
		return m, m.scores.Init()

	case MenuChoiceSettings:
		var settingsStore SettingsStore
		if m.opts.Store != nil {
			settingsStore = m.opts.Store
		}
		m.settings = NewSettingsModel(m.prefs, settingsStore, m.opts.Runtime.ScreenW)
		m.page = pageSettings
		return m, m.settings.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		return m.backToMenu()
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scores.Update(msg)
	if scores, ok := newModel.(ScoreboardModel); ok {
		m.scores = scores
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		return m.backToMenu()
	}
	return m, cmd
}

func (m SessionModel) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.settings.Update(msg)
	if settings, ok := newModel.(SettingsModel); ok {
		m.settings = settings
	}

	if m.settings.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.settings.Done() {
		return m.backToMenu()
	}
	return m, cmd
}

func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.page = pageMenu
	m.menu = m.newMenu()
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.page {
	case pageGame:
		return m.game.View()
	case pageScores:
		return m.scores.View()
	case pageSettings:
		return m.settings.View()
	default:
		return m.menu.View()
	}
}

// SessionID returns the unique id of this session.
func (m SessionModel) SessionID() string {
	return m.sessionID
}

// RunSession runs the interactive menu loop until the user quits.
func RunSession(opts SessionOptions) error {
	p := tea.NewProgram(
		NewSessionModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
