package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"fitick/internal/theme"
)

// TimerKeyMap holds the key bindings active during a countdown session
type TimerKeyMap struct {
	PauseResume key.Binding
	Skip        key.Binding
	Reset       key.Binding
	Quit        key.Binding
	ForceQuit   key.Binding
}

// HistoryKeyMap holds the key bindings for the history list
type HistoryKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Delete    key.Binding
	Clear     key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func NewTimerKeyMap() TimerKeyMap {
	return TimerKeyMap{
		PauseResume: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "pause/resume"),
		),
		Skip: key.NewBinding(
			key.WithKeys("s", "n"),
			key.WithHelp("s", "skip phase"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
	}
}

func NewHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous record"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next record"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "x"),
			key.WithHelp("d", "delete record"),
		),
		Clear: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "clear all"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
	}
}

// renderHelp builds the one-line help footer from bindings
func renderHelp(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		parts = append(parts, help.Key+" "+theme.SubtleStyle.Render(help.Desc))
	}
	return theme.HelpStyle.Render(strings.Join(parts, "  •  "))
}
