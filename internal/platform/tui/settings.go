package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/memory-match/internal/config"
	"github.com/vovakirdan/memory-match/internal/memory"
)

const (
	settingSound = iota
	settingVibration
	settingDifficulty
	settingCount
)

var settingsErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

// SettingsModel edits the player settings. Every change is saved at once.
type SettingsModel struct {
	prefs     *preferences
	store     SettingsStore
	cursor    int
	width     int
	keyMapper *KeyMapper
	err       error
	done      bool
	quitting  bool
}

// NewSettingsModel creates the settings screen.
func NewSettingsModel(prefs *preferences, store SettingsStore, width int) SettingsModel {
	return SettingsModel{
		prefs:     prefs,
		store:     store,
		width:     width,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the settings model.
func (m SettingsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the settings screen.
func (m SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.keyMapper.MapKeyToMenuAction(msg) {
		case MenuActionQuit:
			m.quitting = true
		case MenuActionBack:
			m.done = true
		case MenuActionUp:
			m.cursor = (m.cursor + settingCount - 1) % settingCount
		case MenuActionDown:
			m.cursor = (m.cursor + 1) % settingCount
		case MenuActionSelect, MenuActionLeft, MenuActionRight:
			m.toggle()
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

// toggle changes the setting under the cursor and saves.
func (m *SettingsModel) toggle() {
	s := m.prefs.get()
	switch m.cursor {
	case settingSound:
		s.SoundEnabled = !s.SoundEnabled
	case settingVibration:
		s.VibrationEnabled = !s.VibrationEnabled
	case settingDifficulty:
		d, err := memory.ParseDifficulty(s.Difficulty)
		if err != nil {
			d = memory.DifficultyMedium
		}
		s.Difficulty = string(d.Next())
	}

	m.prefs.current = s
	m.err = nil
	if m.store != nil {
		m.err = m.store.SetSettings(s)
	}
}

// View renders the settings.
func (m SettingsModel) View() string {
	s := m.prefs.get()
	difficulty, err := memory.ParseDifficulty(s.Difficulty)
	if err != nil {
		difficulty = memory.DifficultyMedium
	}

	lines := []string{
		fmt.Sprintf("Sound        %s", onOff(s.SoundEnabled)),
		fmt.Sprintf("Vibration    %s", onOff(s.VibrationEnabled)),
		fmt.Sprintf("Difficulty   %s", difficulty.Title()),
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("SETTINGS"), m.width))
	b.WriteString("\n\n")
	for i, line := range lines {
		if i == m.cursor {
			line = menuSelectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(centerText(settingsErrorStyle.Render("Could not save: "+m.err.Error()), m.width))
		b.WriteString("\n")
	}
	b.WriteString(centerText(menuHintStyle.Render("Up/Down: Navigate  |  Enter: Change  |  B: Back"), m.width))
	b.WriteString("\n")
	return b.String()
}

// Settings returns the current settings.
func (m SettingsModel) Settings() config.Settings {
	return m.prefs.get()
}

// Done returns true once the user leaves the screen.
func (m SettingsModel) Done() bool {
	return m.done
}

// IsQuitting returns true if user wants to quit entirely.
func (m SettingsModel) IsQuitting() bool {
	return m.quitting
}

func onOff(v bool) string {
	if v {
		return "On"
	}
	return "Off"
}
