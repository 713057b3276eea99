package styles

import (
	"github.com/babarot/stripname/internal/config"
	"github.com/charmbracelet/lipgloss"
)

// Color chart: https://github.com/muesli/termenv

var Removed = func(cfg config.UI) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(cfg.Style.Removed)).
		Strikethrough(true)
}

var DirHeader = func(cfg config.UI) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(cfg.Style.DirHeader)).
		Bold(true)
}

var Arrow = func(cfg config.UI) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(cfg.Style.Arrow))
}

var NewName = func(cfg config.UI) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true)
}
