package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/memory-match/internal/memory"
)

// Scoreboard layout constants
const (
	maxHistory = 50 // Max history entries to load
)

// scoreTab is one page of the scoreboard.
type scoreTab struct {
	title string
	mode  memory.Mode // Empty for the best times page
}

var scoreTabs = []scoreTab{
	{title: "Best Times"},
	{title: memory.ModeSolo.Title(), mode: memory.ModeSolo},
	{title: memory.ModeVsComputer.Title(), mode: memory.ModeVsComputer},
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.PrevTab, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTab, k.PrevTab},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next page"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev page"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
type ScoreboardModel struct {
	store     ScoreStore
	tab       int
	rows      []table.Row
	loadErr   error
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store ScoreStore, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.load()
	return m
}

// columns returns the table layout for the current page.
func (m *ScoreboardModel) columns() []table.Column {
	if scoreTabs[m.tab].mode == "" {
		return []table.Column{
			{Title: "Difficulty", Width: 12},
			{Title: "Best Time", Width: 16},
			{Title: "Moves", Width: 8},
		}
	}
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "Level", Width: 8},
		{Title: "Time", Width: 7},
		{Title: "Moves", Width: 6},
		{Title: "Score", Width: 7},
		{Title: "Date", Width: 14},
	}
}

// createTable creates a new table with appropriate columns.
func (m *ScoreboardModel) createTable() table.Model {
	height := m.height - 10 // Leave room for header, tabs, help and margins
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(m.columns()),
		table.WithRows(m.rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads the current page from the store.
func (m *ScoreboardModel) load() {
	m.rows = nil
	m.loadErr = nil

	if m.store != nil {
		if mode := scoreTabs[m.tab].mode; mode == "" {
			m.rows, m.loadErr = m.bestRows()
		} else {
			m.rows, m.loadErr = m.historyRows(mode)
		}
	}
	m.table = m.createTable()
}

func (m *ScoreboardModel) bestRows() ([]table.Row, error) {
	best, err := m.store.BestScores()
	if err != nil {
		return nil, err
	}

	rows := make([]table.Row, 0, len(memory.Difficulties()))
	for _, d := range memory.Difficulties() {
		b, ok := best[d]
		moves := "-"
		if ok {
			moves = fmt.Sprintf("%d", b.Moves)
		}
		bestTime := "No record yet"
		if ok {
			bestTime = memory.FormatTime(b.Seconds)
		}
		rows = append(rows, table.Row{d.Title(), bestTime, moves})
	}
	return rows, nil
}

func (m *ScoreboardModel) historyRows(mode memory.Mode) ([]table.Row, error) {
	entries, err := m.store.ScoreHistory(mode, maxHistory)
	if err != nil {
		return nil, err
	}

	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			e.Difficulty.Title(),
			memory.FormatTime(e.Seconds),
			fmt.Sprintf("%d", e.Moves),
			fmt.Sprintf("%d-%d", e.Player1Score, e.Player2Score),
			e.Date.Local().Format("Jan 02 15:04"),
		}
	}
	return rows, nil
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, nil

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.NextTab):
			m.tab = (m.tab + 1) % len(scoreTabs)
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.PrevTab):
			m.tab = (m.tab + len(scoreTabs) - 1) % len(scoreTabs)
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("SCOREBOARD"), m.width))
	b.WriteString("\n\n")

	tabStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(scoreTabs))
	for i, t := range scoreTabs {
		if i == m.tab {
			tabs[i] = activeTabStyle.Render(t.title)
		} else {
			tabs[i] = tabStyle.Render(" " + t.title + " ")
		}
	}
	b.WriteString(centerText(strings.Join(tabs, " "), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))
	b.WriteString("\n")

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(1, 4)

	switch {
	case m.store == nil:
		return emptyStyle.Render("Scores are not being saved.")
	case m.loadErr != nil:
		return emptyStyle.Render("Could not load scores:\n" + m.loadErr.Error())
	case len(m.rows) == 0:
		return emptyStyle.Render("No games recorded yet.\nFinish a game to get on the board!")
	}
	return m.table.View()
}

// Rows returns the rows of the current page.
func (m ScoreboardModel) Rows() []table.Row {
	return m.rows
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}
