package cli

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/nathoo/pokesave/engine"
	"github.com/nathoo/pokesave/loader"
	"github.com/nathoo/pokesave/types"
)

// DefaultOutputFile is where /write saves when no file is given.
const DefaultOutputFile = "modified-save.txt"

// Meta dispatches the slash commands shared by the line REPL and the TUI.
type Meta struct {
	Engine     *engine.Engine
	OutputFile string
	Trace      bool

	// Clipboard writes text to the system clipboard.
	Clipboard func(string) error
}

// NewMeta creates a dispatcher writing to the system clipboard.
func NewMeta(eng *engine.Engine) *Meta {
	return &Meta{
		Engine:     eng,
		OutputFile: DefaultOutputFile,
		Clipboard:  clipboard.WriteAll,
	}
}

// Handle runs one slash command. It returns the output lines and whether
// the session should end.
func (m *Meta) Handle(input string) ([]string, bool) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return nil, false
	}
	cmd := strings.ToLower(parts[0])
	arg := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(input), parts[0]))

	switch cmd {
	case "/quit", "/exit":
		return []string{"Goodbye."}, true

	case "/open":
		return m.cmdOpen(arg), false

	case "/decode":
		return m.cmdDecode(arg, "input"), false

	case "/encode":
		return m.cmdEncode(), false

	case "/write":
		return m.cmdWrite(arg), false

	case "/copy":
		return m.cmdCopy(), false

	case "/json":
		return m.cmdJSON(), false

	case "/applyjson":
		return m.cmdApplyJSON(arg), false

	case "/script":
		return m.cmdScript(arg), false

	case "/state":
		return m.cmdState(), false

	case "/help":
		return m.cmdHelp(), false

	case "/trace":
		m.Trace = !m.Trace
		if m.Trace {
			return []string{"Trace output enabled."}, false
		}
		return []string{"Trace output disabled."}, false

	default:
		return []string{fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd)}, false
	}
}

func (m *Meta) cmdOpen(path string) []string {
	if path == "" {
		return []string{"Usage: /open <file>"}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return []string{fmt.Sprintf("Open failed: %v", err)}
	}
	return m.cmdDecode(string(data), path)
}

func (m *Meta) cmdDecode(text, source string) []string {
	if err := m.Engine.Decode(text); err != nil {
		return []string{m.Engine.Err}
	}
	return []string{fmt.Sprintf("Decoded %s: %d top-level keys.", source, len(m.Engine.Doc))}
}

func (m *Meta) cmdEncode() []string {
	out, err := m.Engine.Encode()
	if err != nil {
		return []string{m.Engine.Err}
	}
	return []string{out}
}

func (m *Meta) cmdWrite(path string) []string {
	if path == "" {
		path = m.OutputFile
	}
	if path == "" {
		path = DefaultOutputFile
	}
	out, err := m.Engine.Encode()
	if err != nil {
		return []string{m.Engine.Err}
	}
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return []string{fmt.Sprintf("Write failed: %v", err)}
	}
	return []string{fmt.Sprintf("Wrote %d bytes to %s.", len(out), path)}
}

func (m *Meta) cmdCopy() []string {
	out, err := m.Engine.Encode()
	if err != nil {
		return []string{m.Engine.Err}
	}
	if m.Clipboard == nil {
		return []string{"Clipboard unavailable."}
	}
	if err := m.Clipboard(out); err != nil {
		return []string{fmt.Sprintf("Copy failed: %v", err)}
	}
	return []string{fmt.Sprintf("Copied %d characters to the clipboard.", len(out))}
}

func (m *Meta) cmdJSON() []string {
	text, err := m.Engine.FormatJSON()
	if errors.Is(err, engine.ErrNoDocument) {
		return []string{"Decode a save first."}
	}
	if err != nil {
		return []string{err.Error()}
	}
	return strings.Split(text, "\n")
}

func (m *Meta) cmdApplyJSON(path string) []string {
	if path == "" {
		return []string{"Usage: /applyjson <file>"}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return []string{fmt.Sprintf("Read failed: %v", err)}
	}
	if err := m.Engine.ApplyJSON(string(data)); err != nil {
		return []string{m.Engine.Err}
	}
	return []string{fmt.Sprintf("Applied JSON from %s.", path)}
}

func (m *Meta) cmdScript(path string) []string {
	if path == "" {
		return []string{"Usage: /script <file|dir>"}
	}
	if !m.Engine.HasDocument() {
		return []string{"Decode a save first."}
	}

	s, err := loader.Run(path, m.Engine.Doc)
	if err != nil {
		var ve *loader.ValidationError
		if errors.As(err, &ve) {
			lines := []string{fmt.Sprintf("Script rejected: %d error(s).", len(ve.Errors))}
			for _, e := range ve.Errors {
				lines = append(lines, "  "+e)
			}
			return lines
		}
		return []string{fmt.Sprintf("Script failed: %v", err)}
	}

	lines := append([]string{}, s.Output...)
	for _, w := range s.Warnings {
		lines = append(lines, "warning: "+w)
	}

	result := m.Engine.Apply(s.Effects)
	if result.Err != nil {
		return append(lines, fmt.Sprintf("Script failed: %v", result.Err))
	}
	lines = append(lines, fmt.Sprintf("Applied %d edit(s) from %s.", len(result.Effects), path))
	if m.Trace {
		lines = append(lines, FormatTrace(result)...)
	}
	return lines
}

func (m *Meta) cmdState() []string {
	e := m.Engine
	if !e.HasDocument() {
		return []string{"Document: none", fmt.Sprintf("Commands: %d", len(e.CommandLog))}
	}
	keys := make([]string, 0, len(e.Doc))
	for k := range e.Doc {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	output := []string{
		fmt.Sprintf("Document: %d top-level keys", len(keys)),
		fmt.Sprintf("Keys: %s", strings.Join(keys, ", ")),
		fmt.Sprintf("Commands: %d", len(e.CommandLog)),
	}
	if e.Output != "" {
		output = append(output, fmt.Sprintf("Last output: %d characters", len(e.Output)))
	}
	if e.Err != "" {
		output = append(output, fmt.Sprintf("Last error: %s", e.Err))
	}
	return output
}

func (m *Meta) cmdHelp() []string {
	help := []string{
		"System:",
		"  /open <file>       Decode a save file",
		"  /decode <text>     Decode a pasted save string",
		"  /encode            Print the encoded save",
		"  /write [file]      Encode and write (default: " + m.OutputFile + ")",
		"  /copy              Encode and copy to the clipboard",
		"  /json              Print the document as indented JSON",
		"  /applyjson <file>  Replace the document with a JSON file",
		"  /script <file>     Run a Lua edit script",
		"  /state             Show session state",
		"  /trace             Toggle effect trace output",
		"  /quit              Exit",
		"",
		"Editor commands:",
	}
	return append(help, engine.HelpText()...)
}

// FormatTrace renders the effects and events of one step.
func FormatTrace(result types.Result) []string {
	var lines []string
	if len(result.Effects) > 0 {
		lines = append(lines, fmt.Sprintf("[trace] Effects: %d", len(result.Effects)))
		for _, e := range result.Effects {
			lines = append(lines, fmt.Sprintf("[trace]   %s %v", e.Type, e.Params))
		}
	}
	if len(result.Events) > 0 {
		lines = append(lines, fmt.Sprintf("[trace] Events: %d", len(result.Events)))
		for _, e := range result.Events {
			lines = append(lines, fmt.Sprintf("[trace]   %s", e.Type))
		}
	}
	return lines
}
