package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type frameMsg time.Time

func frameCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// BrowserSelectedMsg is sent by an embedded browser when an image is
// chosen. An empty Path selects the built-in sample.
type BrowserSelectedMsg struct {
	Path string
}

// BrowserCancelledMsg is sent by an embedded browser when the user quits.
type BrowserCancelledMsg struct{}
