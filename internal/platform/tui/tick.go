// Package tui runs platformer levels in the terminal with Bubble Tea:
// the game model, the level picker and the times board.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// TickMsg advances the simulation by one fixed step.
type TickMsg time.Time

// tickCmd schedules the next simulation step.
func tickCmd(cfg core.RuntimeConfig) tea.Cmd {
	return tea.Tick(cfg.TickInterval(), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
