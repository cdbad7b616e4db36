package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type frameMsg time.Time
type typeMsg struct{}

// revealSkillsMsg fills the bars of a freshly selected panel. seq ties it to
// the selection that scheduled it so stale reveals are dropped.
type revealSkillsMsg struct{ seq int }

func frameCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func typeCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return typeMsg{}
	})
}
