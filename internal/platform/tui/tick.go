// Package tui hosts the battle screen and the deck editor in Bubble Tea.
// It maps keys to app intents and renders read-only snapshots of the core.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per frame. Its timestamp advances the simulated
// scheduler by the time elapsed since the previous frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(fps int) tea.Cmd {
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameClock turns frame timestamps into deltas.
type frameClock struct {
	last time.Time
}

// delta returns the time since the previous frame. The first frame and
// frames that arrive out of order yield zero.
func (c *frameClock) delta(now time.Time) time.Duration {
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	d := now.Sub(c.last)
	if d < 0 {
		return 0
	}
	c.last = now
	return d
}
