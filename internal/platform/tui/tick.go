// Package tui provides the Bubble Tea integration for snowpush.
// It handles the replay viewer, the level picker and SSH sessions.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to advance an auto-playing replay by one frame.
type TickMsg struct {
	Time time.Time
	Gen  int // Drops ticks scheduled before the last pause or speed change
}

// tickCmd returns a Bubble Tea command that sends one tick after delay.
func tickCmd(delay time.Duration, gen int) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}
