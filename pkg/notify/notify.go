package notify

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

type Severity int

const (
	SeverityInfo Severity = iota
	SeveritySuccess
	SeverityWarning
)

// Notifier reports an outcome to the user.
type Notifier interface {
	Notify(title, message string, severity Severity)
}

type Console struct{}

func NewConsole() *Console {
	return &Console{}
}

func (c *Console) Notify(title, message string, severity Severity) {
	var border string
	switch severity {
	case SeveritySuccess:
		border = "#00FF7F"
	case SeverityWarning:
		border = "#FF5555"
	default:
		border = "#FFA500"
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Padding(0, 1).
		Foreground(lipgloss.Color("#FFFFFF"))

	fmt.Fprintln(os.Stdout, style.Render(fmt.Sprintf("%s\n%s", title, message)))
}
