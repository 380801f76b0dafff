// Package tui runs games in a terminal with Bubble Tea, locally or over SSH.
// It maps keys to actions, scales the logical canvas onto half-block cells
// and owns the title menu and scoreboard.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// FreezeDoneMsg ends a damage flash.
type FreezeDoneMsg struct{}

// tickCmd sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	return pollCmd(time.Second / time.Duration(tickRate))
}

// pollCmd sends a single tick after d.
func pollCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// freezeCmd blocks for d, then reports the end of the freeze.
// Nothing else ticks the game in the meantime.
func freezeCmd(d time.Duration) tea.Cmd {
	return func() tea.Msg {
		time.Sleep(d)
		return FreezeDoneMsg{}
	}
}
