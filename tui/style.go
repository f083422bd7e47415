package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles used throughout the TUI.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("220"))

	styleTabActive = lipgloss.NewStyle().
			Background(lipgloss.Color("220")).
			Foreground(lipgloss.Color("16")).
			Bold(true).
			Padding(0, 1)

	styleTabInactive = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245")).
				Padding(0, 1)

	stylePlain = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleLabel = lipgloss.NewStyle().
			Bold(true)

	styleHeading = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Bold(true)

	styleEntry = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	styleSystem = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	stylePlayerInput = lipgloss.NewStyle().
				Foreground(lipgloss.Color("220"))

	styleTrace = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// lineKind identifies the type of an output line for styling.
type lineKind int

const (
	kindPlain lineKind = iota
	kindField
	kindHeading
	kindEntry
	kindSystem
	kindTrace
)

// classifyLine determines what kind of output line this is.
func classifyLine(line string) lineKind {
	switch {
	case strings.HasPrefix(line, "[trace]"):
		return kindTrace
	case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
		return kindSystem
	case strings.HasPrefix(line, "  "):
		return kindEntry
	case strings.HasSuffix(line, ":"):
		return kindHeading
	case strings.Contains(line, ": ") && !strings.HasPrefix(line, "{") && !strings.HasPrefix(line, "\""):
		return kindField
	default:
		return kindPlain
	}
}

// styledField renders "Label: value" with the label bold.
func styledField(line string) string {
	i := strings.Index(line, ": ")
	if i < 0 {
		return stylePlain.Render(line)
	}
	return styleLabel.Render(line[:i+1]) + stylePlain.Render(line[i+1:])
}

// styledPlayerInput renders the echoed command with a "> " prefix.
func styledPlayerInput(input string) string {
	return stylePlayerInput.Render("> " + input)
}

// styledSystemMsg renders a meta-command message in gray with brackets.
func styledSystemMsg(text string) string {
	return styleSystem.Render("[" + text + "]")
}
