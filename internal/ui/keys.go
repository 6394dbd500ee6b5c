package ui

import tea "github.com/charmbracelet/bubbletea"

func isQuit(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return true
	}
	return false
}

func helpText(debug bool) string {
	s := "drag image  t effect  v variant  d debug"
	if debug {
		s += "  [/] blur  ,/. angle  0 reset"
	}
	s += "  q quit"
	return s
}
