package ui

import (
	"log/slog"
	"os"

	"github.com/babarot/stripname/internal/ui/confirm"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

// Confirm asks the user a y/N question and returns their decision. Without
// a terminal there is nobody to ask, so the answer is no; callers pass
// --yes to script the tool.
func Confirm(prompt string) bool {
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		slog.Debug("stdin is not a terminal, denying confirmation")
		return false
	}

	m := confirm.New()
	m.Prompt = prompt
	m.DefaultValue = confirm.Denied

	p := tea.NewProgram(&m)
	if _, err := p.Run(); err != nil {
		slog.Error("confirm failed", "error", err)
		return false
	}

	return m.Selected().IsAccepted()
}
