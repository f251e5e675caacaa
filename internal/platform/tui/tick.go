// Package tui runs Monster Hunt in the terminal with Bubble Tea: the game
// loop, key and mouse mapping, the menu and scoreboard, and the SSH server
// that hosts one session per connection.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickInterval is the wall-clock time between ticks. Non-positive rates
// fall back to 60 ticks per second, matching core.RuntimeConfig.TickSeconds.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd schedules the next simulation tick.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
