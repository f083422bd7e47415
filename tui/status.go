package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nathoo/pokesave/engine"
	"github.com/nathoo/pokesave/engine/rules"
	"github.com/nathoo/pokesave/engine/schema"
)

// tabTitle derives the tab label from a section name.
// "player" -> "Player", "json" -> "JSON".
func tabTitle(section string) string {
	if section == "json" {
		return "JSON"
	}
	if section == "" {
		return ""
	}
	return strings.ToUpper(section[:1]) + section[1:]
}

// statusSummary describes the loaded save in one line.
func statusSummary(eng *engine.Engine) string {
	if !eng.HasDocument() {
		return "No save loaded"
	}
	p := schema.PlayerOf(eng.Doc)
	stars := rules.Stars(p.Records)
	name := p.Name
	if name == "" {
		name = "(no name)"
	}
	return fmt.Sprintf("%s | %s | Stars %d/%d | Team %d | Box %d",
		name, rules.FormatPrice(p.Gold), stars.Total, stars.Max,
		len(schema.TeamOf(eng.Doc)), len(schema.BoxOf(eng.Doc)))
}

// renderStatusBar produces a full-width inverted status line with the
// save summary on the left and the active tab on the right.
func (m Model) renderStatusBar() string {
	left := " " + statusSummary(m.engine)
	right := tabTitle(engine.Sections[m.tab]) + " "
	if m.meta.Trace {
		right = "trace | " + right
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(m.width).Render(bar)
}

// renderTabs draws the section tab bar.
func (m Model) renderTabs() string {
	tabs := make([]string, len(engine.Sections))
	for i, s := range engine.Sections {
		if i == m.tab {
			tabs[i] = styleTabActive.Render(tabTitle(s))
		} else {
			tabs[i] = styleTabInactive.Render(tabTitle(s))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}
