package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/memory-match/internal/memory"
)

// MenuChoice is what the user picked in the main menu.
type MenuChoice int

const (
	MenuChoiceNone MenuChoice = iota
	MenuChoicePlay
	MenuChoiceScores
	MenuChoiceSettings
	MenuChoiceQuit
)

// MenuItem is one line of the main menu.
type MenuItem struct {
	Title  string
	Choice MenuChoice
	Mode   memory.Mode // Set for play items
}

// menuStep is which list the menu is showing.
type menuStep int

const (
	stepMain menuStep = iota
	stepDifficulty
)

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	menuHintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for picking a mode and difficulty.
type MenuModel struct {
	items      []MenuItem
	cursor     int
	step       menuStep
	difficulty memory.Difficulty
	diffCursor int
	width      int
	height     int
	keyMapper  *KeyMapper
	choice     MenuChoice
	mode       memory.Mode
}

// NewMenuModel creates a menu. The difficulty step starts on difficulty.
func NewMenuModel(difficulty memory.Difficulty, width, height int) MenuModel {
	items := make([]MenuItem, 0, len(memory.Modes())+3)
	for _, mode := range memory.Modes() {
		items = append(items, MenuItem{Title: mode.Title(), Choice: MenuChoicePlay, Mode: mode})
	}
	items = append(items,
		MenuItem{Title: "Scoreboard", Choice: MenuChoiceScores},
		MenuItem{Title: "Settings", Choice: MenuChoiceSettings},
		MenuItem{Title: "Quit", Choice: MenuChoiceQuit},
	)

	diffCursor := 0
	for i, d := range memory.Difficulties() {
		if d == difficulty {
			diffCursor = i
		}
	}

	return MenuModel{
		items:      items,
		difficulty: difficulty,
		diffCursor: diffCursor,
		width:      width,
		height:     height,
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)
	if action == MenuActionQuit {
		m.choice = MenuChoiceQuit
		return m, nil
	}

	if m.step == stepDifficulty {
		levels := memory.Difficulties()
		switch action {
		case MenuActionUp, MenuActionLeft:
			m.diffCursor = (m.diffCursor + len(levels) - 1) % len(levels)
		case MenuActionDown, MenuActionRight:
			m.diffCursor = (m.diffCursor + 1) % len(levels)
		case MenuActionSelect:
			m.difficulty = levels[m.diffCursor]
			m.choice = MenuChoicePlay
		case MenuActionBack:
			m.step = stepMain
		}
		return m, nil
	}

	switch action {
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		item := m.items[m.cursor]
		if item.Choice == MenuChoicePlay {
			m.mode = item.Mode
			m.step = stepDifficulty
			return m, nil
		}
		m.choice = item.Choice
	case MenuActionBack:
		m.choice = MenuChoiceQuit
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("M E M O R Y   M A T C H"), m.width))
	b.WriteString("\n\n")

	if m.step == stepDifficulty {
		b.WriteString(centerText(fmt.Sprintf("%s - choose a difficulty", m.mode.Title()), m.width))
		b.WriteString("\n\n")
		for i, d := range memory.Difficulties() {
			line := fmt.Sprintf("  %-8s %2d pairs", d.Title(), d.PairCount())
			if i == m.diffCursor {
				line = menuSelectedStyle.Render("> " + line[2:])
			}
			b.WriteString(centerText(line, m.width))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(centerText(menuHintStyle.Render("Up/Down: Choose  |  Enter: Play  |  B: Back"), m.width))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(centerText("Find every pair of matching cards", m.width))
	b.WriteString("\n\n")
	for i, item := range m.items {
		line := "  " + item.Title
		if i == m.cursor {
			line = menuSelectedStyle.Render("> " + item.Title)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuHintStyle.Render("Up/Down: Navigate  |  Enter: Select  |  Q: Quit"), m.width))
	b.WriteString("\n")
	return b.String()
}

// Choice returns what the user picked, MenuChoiceNone while still choosing.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Selection returns the mode and difficulty picked for play.
func (m MenuModel) Selection() (memory.Mode, memory.Difficulty) {
	return m.mode, m.difficulty
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
