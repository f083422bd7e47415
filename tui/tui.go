package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nathoo/pokesave/cli"
	"github.com/nathoo/pokesave/engine"
)

// rawLine stores an unstyled output line with its classification,
// so we can re-wrap and re-style when the terminal is resized.
type rawLine struct {
	text     string
	kind     lineKind
	isInput  bool // true for the echoed command
	isSystem bool // true for meta-command output
	isError  bool // true when the command failed
}

// Model is the Bubble Tea model for the save editor TUI.
type Model struct {
	engine *engine.Engine
	meta   *cli.Meta

	viewport viewport.Model
	input    textinput.Model
	history  *History

	tab      int       // index into engine.Sections
	rawLines []rawLine // output of the last command (unstyled, for re-wrapping)

	width    int
	height   int
	ready    bool
	quitting bool
}

// New creates a TUI model wired to the given engine and meta commands.
func New(eng *engine.Engine, meta *cli.Meta, historySize int) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "command, or /help"
	ti.Focus()
	ti.CharLimit = 1 << 20
	ti.PromptStyle = styleInputPrompt

	return Model{
		engine:  eng,
		meta:    meta,
		input:   ti,
		history: NewHistory(historySize),
	}
}

// Run starts the Bubble Tea program.
func Run(eng *engine.Engine, meta *cli.Meta, historySize int) error {
	m := New(eng, meta, historySize)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

// Init starts the cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages (key presses, window resize).
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		vpHeight := m.height - 3 // tab bar + status bar + input line
		if vpHeight < 1 {
			vpHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(m.width, vpHeight)
			m.viewport.KeyMap = viewportKeyMap()
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = vpHeight
		}

		m.refreshViewport()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			return m.handleEnter()

		case "tab":
			m.tab = (m.tab + 1) % len(engine.Sections)
			m.refreshViewport()
			return m, nil

		case "shift+tab":
			m.tab = (m.tab + len(engine.Sections) - 1) % len(engine.Sections)
			m.refreshViewport()
			return m, nil

		case "esc":
			m.rawLines = nil
			m.refreshViewport()
			return m, nil

		case "ctrl+y":
			lines, _ := m.meta.Handle("/copy")
			m = m.setOutput("/copy", lines, true, false)
			return m, nil

		case "up":
			if prev, ok := m.history.Prev(); ok {
				m.input.SetValue(prev)
				m.input.CursorEnd()
			}
			return m, nil

		case "down":
			if next, ok := m.history.Next(); ok {
				m.input.SetValue(next)
				m.input.CursorEnd()
			} else {
				m.input.SetValue("")
				m.history.ResetCursor()
			}
			return m, nil

		case "pgup", "pgdown":
			var vpCmd tea.Cmd
			m.viewport, vpCmd = m.viewport.Update(msg)
			return m, vpCmd
		}
	}

	var inputCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	return m, inputCmd
}

// handleEnter processes the submitted input line.
func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")

	if input == "" {
		return m, nil
	}

	m.history.Push(input)
	m.history.ResetCursor()

	// Meta-commands.
	if strings.HasPrefix(input, "/") {
		output, quit := m.meta.Handle(input)
		m = m.setOutput(input, output, true, false)
		if quit {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	// Editor command.
	result := m.engine.Step(input)
	output := result.Output
	if m.meta.Trace {
		output = append(output, cli.FormatTrace(result)...)
	}
	m = m.setOutput(input, output, false, result.Err != nil)
	return m, nil
}

// setOutput replaces the command output shown above the section view.
func (m Model) setOutput(input string, lines []string, system, failed bool) Model {
	m.rawLines = []rawLine{{text: input, isInput: true}}
	for _, line := range lines {
		rl := rawLine{text: line, isSystem: system, isError: failed}
		if !system {
			rl.kind = classifyLine(line)
		}
		m.rawLines = append(m.rawLines, rl)
	}
	m.refreshViewport()
	return m
}

// sectionLines renders the active tab.
func (m Model) sectionLines() []string {
	lines, err := m.engine.Show(engine.Sections[m.tab])
	if err != nil {
		return []string{"No save loaded.", "Use /open <file> or /decode <text>. Tab switches sections, /help lists commands."}
	}
	return lines
}

// refreshViewport re-wraps and re-styles the command output and the
// active section at the current width and updates the viewport content.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}

	width := m.width
	if width < 10 {
		width = 10
	}

	var styled []string
	for _, rl := range m.rawLines {
		if rl.text == "" {
			styled = append(styled, "")
			continue
		}

		wrapped := wordWrap(rl.text, width)

		switch {
		case rl.isInput:
			styled = append(styled, styledPlayerInput(wrapped))
		case rl.isError:
			styled = append(styled, styleError.Render(wrapped))
		case rl.isSystem:
			styled = append(styled, styledSystemMsg(wrapped))
		default:
			styled = append(styled, renderLineKind(wrapped, rl.kind))
		}
	}
	if len(styled) > 0 {
		styled = append(styled, styleSystem.Render(strings.Repeat("─", width)))
	}

	isJSON := engine.Sections[m.tab] == "json"
	for _, line := range m.sectionLines() {
		if isJSON {
			// Indentation is significant in the JSON view; never re-wrap it.
			styled = append(styled, stylePlain.Render(line))
			continue
		}
		styled = append(styled, renderLineKind(wordWrap(line, width), classifyLine(line)))
	}

	m.viewport.SetContent(strings.Join(styled, "\n"))
	m.viewport.GotoTop()
}

// renderLineKind applies the style for a given lineKind.
func renderLineKind(line string, kind lineKind) string {
	switch kind {
	case kindField:
		return styledField(line)
	case kindHeading:
		return styleHeading.Render(line)
	case kindEntry:
		return styleEntry.Render(line)
	case kindSystem:
		return styleSystem.Render(line)
	case kindTrace:
		return styleTrace.Render(line)
	default:
		return stylePlain.Render(line)
	}
}

// wordWrap wraps text to fit within the given width, breaking at word
// boundaries. Leading indentation is kept on the first line.
func wordWrap(text string, width int) string {
	if width <= 0 || len(text) <= width {
		return text
	}

	indent := text[:len(text)-len(strings.TrimLeft(text, " "))]

	var result strings.Builder
	words := strings.Fields(text)
	lineLen := 0

	for i, word := range words {
		wLen := len(word)

		if i == 0 {
			result.WriteString(indent)
			result.WriteString(word)
			lineLen = len(indent) + wLen
			continue
		}

		if lineLen+1+wLen > width {
			result.WriteString("\n")
			result.WriteString(word)
			lineLen = wLen
		} else {
			result.WriteString(" ")
			result.WriteString(word)
			lineLen += 1 + wLen
		}
	}

	return result.String()
}

// View renders the full TUI layout: tabs + viewport + status bar + input.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	return m.renderTabs() + "\n" + m.viewport.View() + "\n" + m.renderStatusBar() + "\n" + m.input.View()
}

// viewportKeyMap returns a viewport keymap with Up/Down disabled
// (we use those for input history).
func viewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		Up:           key.NewBinding(key.WithDisabled()),
		Down:         key.NewBinding(key.WithDisabled()),
	}
}
