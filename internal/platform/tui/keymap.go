package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/memory-match/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a board action.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit
	case "w", "k", "up":
		return core.ActionUp
	case "s", "j", "down":
		return core.ActionDown
	case "a", "h", "left":
		return core.ActionLeft
	case "d", "l", "right":
		return core.ActionRight
	case " ", "enter":
		return core.ActionFlip
	case "p":
		return core.ActionPause
	case "r":
		return core.ActionRestart
	case "b", "esc":
		return core.ActionBack
	}
	return core.ActionNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}
