// Package confirm is a minimal bubbletea y/N prompt that resolves on a
// single key press.
package confirm

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jimschubert/answer/colors"
)

// Decision is the state of the confirmation.
type Decision int

const (
	Undecided Decision = iota
	Accepted
	Denied
)

// IsAccepted is a helper to indicate the positive confirmation state was selected
func (d Decision) IsAccepted() bool {
	return d == Accepted
}

// Model is the bubble tea model for the prompt.
type Model struct {
	// Prompt is the text to display to the user.
	Prompt string

	// DefaultValue is chosen when the user hits enter or interrupts.
	DefaultValue Decision

	selected Decision
	done     bool

	promptPrefixStyle lipgloss.Style
	placeholderStyle  lipgloss.Style
}

func New() Model {
	return Model{
		DefaultValue:      Denied,
		promptPrefixStyle: lipgloss.NewStyle().Foreground(lipgloss.Color(colors.PromptPrefix)),
		placeholderStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Placeholder)),
	}
}

// Selected retrieves the default or user-selected Decision value
func (m *Model) Selected() Decision {
	return m.selected
}

func (m *Model) Init() tea.Cmd {
	m.selected = m.DefaultValue
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "y", "Y":
		m.selected = Accepted
		m.done = true
		return m, tea.Quit
	case "n", "N", "q", "esc":
		m.selected = Denied
		m.done = true
		return m, tea.Quit
	case "enter":
		m.selected = m.DefaultValue
		m.done = true
		return m, tea.Quit
	case "ctrl+c":
		m.selected = Denied
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) View() string {
	if m.done {
		return ""
	}
	return m.promptPrefixStyle.Render("? ") +
		m.Prompt + " " +
		m.placeholderStyle.Render("[y/N]") + " "
}
