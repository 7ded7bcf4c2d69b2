package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type frameMsg time.Time

// frameCmd schedules the next frame. Exactly one frame command is in
// flight at a time: each frameMsg handler returns the next one, so steps
// never overlap and dropping the command (on quit) cancels the loop.
func frameCmd(fps int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}
