// Package tui runs the snake session inside Bubble Tea: it turns key presses
// into intents, drives the fixed-rate tick loop and paints each frame.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives one session tick.
type TickMsg time.Time

// tickCmd schedules the next tick at fps frames per second.
func tickCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
