package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// KeyMap holds the game's key bindings. It doubles as the help.KeyMap for
// the controls panel.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Slow     key.Binding
	Fast     key.Binding
	VeryFast key.Binding
	Start    key.Binding
	Restart  key.Binding
	Menu     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp returns the one-line controls summary.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Restart, k.Menu, k.Help, k.Quit}
}

// FullHelp returns the expanded controls panel.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Slow, k.Fast, k.VeryFast},
		{k.Start, k.Restart, k.Menu},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns arrows/WASD steering, 1-3 for difficulty and the usual extras.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Slow: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "slow"),
		),
		Fast: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "fast"),
		),
		VeryFast: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "very fast"),
		),
		Start: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "start"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Menu: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "menu"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "controls"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to a game action.
// Keys the game does not use, including the help toggle, map to ActionNone.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Slow):
		return core.ActionSelectSlow
	case key.Matches(msg, k.Fast):
		return core.ActionSelectFast
	case key.Matches(msg, k.VeryFast):
		return core.ActionSelectVeryFast
	case key.Matches(msg, k.Start):
		return core.ActionStart
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Menu):
		return core.ActionToMenu
	}
	return core.ActionNone
}

// MapKeyToFrame queues the key's action on frame.
// Returns true if the key was a quit request.
func (k KeyMap) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action := k.MapKey(msg)
	if action == core.ActionQuit {
		return true
	}
	frame.Set(action)
	return false
}
