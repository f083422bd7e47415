package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nathoo/pokesave/cli"
	"github.com/nathoo/pokesave/engine"
	"github.com/nathoo/pokesave/engine/codec"
)

const testJSON = `{
  "gold": 1234,
  "player": {"name": "Ash", "gold": 1234, "records": [10, 20, 0, 100]},
  "team": [{"specieKey": "pikachu", "lvl": 50}],
  "box": [{"specieKey": "eevee", "lvl": 5}, {"specieKey": "onix", "lvl": 9}]
}`

func TestTabTitle(t *testing.T) {
	tests := []struct {
		section string
		want    string
	}{
		{"player", "Player"},
		{"team", "Team"},
		{"box", "Box"},
		{"shop", "Shop"},
		{"json", "JSON"},
		{"", ""},
	}
	for _, tt := range tests {
		got := tabTitle(tt.section)
		if got != tt.want {
			t.Errorf("tabTitle(%q) = %q, want %q", tt.section, got, tt.want)
		}
	}
}

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		line string
		want lineKind
	}{
		{"Name: Ash", kindField},
		{"Stats:", kindHeading},
		{"Stock:", kindHeading},
		{"  #1 pikachu Lv.50 target=first", kindEntry},
		{"  Route 1:   10", kindEntry},
		{"[Copied 12 characters to the clipboard.]", kindSystem},
		{"[trace] Effects: 2", kindTrace},
		{`"gold": 1234,`, kindPlain},
		{"{", kindPlain},
		{"Done.", kindPlain},
		{"", kindPlain},
	}
	for _, tt := range tests {
		got := classifyLine(tt.line)
		if got != tt.want {
			t.Errorf("classifyLine(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestWordWrap(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"short", 80, "short"},
		{"hello world", 5, "hello\nworld"},
		{"Egg price: $500 Eggs: 1.togepi 2.magikarp", 20,
			"Egg price: $500\nEggs: 1.togepi\n2.magikarp"},
		{"", 80, ""},
		{"  #1 pikachu Lv.50", 10, "  #1\npikachu\nLv.50"},
		{"a b c d e", 3, "a b\nc d\ne"},
	}
	for _, tt := range tests {
		got := wordWrap(tt.text, tt.width)
		if got != tt.want {
			t.Errorf("wordWrap(%q, %d) =\n  %q\nwant:\n  %q", tt.text, tt.width, got, tt.want)
		}
	}
}

func TestHistory_PushAndPrev(t *testing.T) {
	h := NewHistory(5)
	h.Push("gold 5")
	h.Push("team rm 1")
	h.Push("show box")

	for _, want := range []string{"show box", "team rm 1", "gold 5", "gold 5"} {
		prev, ok := h.Prev()
		if !ok || prev != want {
			t.Errorf("expected %q, got %q (ok=%v)", want, prev, ok)
		}
	}
}

func TestHistory_Next(t *testing.T) {
	h := NewHistory(5)
	h.Push("gold 5")
	h.Push("show box")

	h.Prev() // "show box"
	h.Prev() // "gold 5"

	next, ok := h.Next()
	if !ok || next != "show box" {
		t.Errorf("expected 'show box', got %q (ok=%v)", next, ok)
	}

	_, ok = h.Next()
	if ok {
		t.Error("expected false when past newest entry")
	}
}

func TestHistory_Empty(t *testing.T) {
	h := NewHistory(5)
	if _, ok := h.Prev(); ok {
		t.Error("expected false on empty history")
	}
	if _, ok := h.Next(); ok {
		t.Error("expected false on empty history")
	}
}

func TestHistory_MaxSize(t *testing.T) {
	h := NewHistory(2)
	h.Push("a")
	h.Push("b")
	h.Push("c") // "a" evicted

	if h.Len() != 2 {
		t.Errorf("expected 2 entries, got %d", h.Len())
	}
	prev, _ := h.Prev()
	if prev != "c" {
		t.Errorf("expected 'c', got %q", prev)
	}
	prev, _ = h.Prev()
	if prev != "b" {
		t.Errorf("expected 'b', got %q", prev)
	}
	prev, _ = h.Prev()
	if prev != "b" {
		t.Errorf("expected 'b' at boundary, got %q", prev)
	}
}

func TestHistory_SkipsDuplicatesAndBlanks(t *testing.T) {
	h := NewHistory(5)
	h.Push("show")
	h.Push("show") // skipped
	h.Push("   ")  // skipped

	if h.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", h.Len())
	}
}

func TestHistory_DefaultSize(t *testing.T) {
	h := NewHistory(0)
	if h.max != DefaultHistorySize {
		t.Errorf("max = %d, want %d", h.max, DefaultHistorySize)
	}
}

func TestHistory_ResetCursor(t *testing.T) {
	h := NewHistory(5)
	h.Push("gold 5")
	h.Push("show box")

	h.Prev()
	h.ResetCursor()

	prev, ok := h.Prev()
	if !ok || prev != "show box" {
		t.Errorf("expected 'show box' after reset, got %q", prev)
	}
}

// newTestModel returns a sized model with testJSON decoded.
func newTestModel(t *testing.T) (Model, *cli.Meta) {
	t.Helper()
	eng := engine.New()
	doc, err := codec.ParseJSON(testJSON)
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	save, err := codec.Encode(doc)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if err := eng.Decode(save); err != nil {
		t.Fatalf("Decode: %v", err)
	}

	meta := cli.NewMeta(eng)
	meta.Clipboard = func(string) error { return nil }

	m := New(eng, meta, 10)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return updated.(Model), meta
}

// submit types input and presses enter.
func submit(m Model, input string) (Model, tea.Cmd) {
	m.input.SetValue(input)
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return updated.(Model), cmd
}

func rawTexts(m Model) string {
	var lines []string
	for _, rl := range m.rawLines {
		lines = append(lines, rl.text)
	}
	return strings.Join(lines, "\n")
}

func TestView_LoadingBeforeResize(t *testing.T) {
	m := New(engine.New(), cli.NewMeta(engine.New()), 10)
	if m.View() != "Loading..." {
		t.Errorf("View() = %q, want Loading...", m.View())
	}
}

func TestStatusSummary(t *testing.T) {
	m, _ := newTestModel(t)
	got := statusSummary(m.engine)
	want := "Ash | $1,234 | Stars 130/400 | Team 1 | Box 2"
	if got != want {
		t.Errorf("statusSummary = %q, want %q", got, want)
	}

	if got := statusSummary(engine.New()); got != "No save loaded" {
		t.Errorf("statusSummary without save = %q", got)
	}
}

func TestTabs_Cycle(t *testing.T) {
	m, _ := newTestModel(t)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)
	if engine.Sections[m.tab] != "team" {
		t.Errorf("after tab, section = %q, want team", engine.Sections[m.tab])
	}
	if !strings.Contains(strings.Join(m.sectionLines(), "\n"), "#1 pikachu Lv.50") {
		t.Errorf("team tab lines = %v", m.sectionLines())
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = updated.(Model)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = updated.(Model)
	if engine.Sections[m.tab] != "json" {
		t.Errorf("shift+tab should wrap to json, got %q", engine.Sections[m.tab])
	}
}

func TestEnter_EditorCommand(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = submit(m, "gold 99")

	if !strings.Contains(rawTexts(m), "Gold: $99") {
		t.Errorf("output = %q", rawTexts(m))
	}
	if !m.rawLines[0].isInput || m.rawLines[0].text != "gold 99" {
		t.Errorf("first line should echo input, got %+v", m.rawLines[0])
	}
	if m.input.Value() != "" {
		t.Error("input should be cleared after enter")
	}
	if m.history.Len() != 1 {
		t.Errorf("history len = %d, want 1", m.history.Len())
	}
}

func TestEnter_FailedCommandMarkedError(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = submit(m, "team rm 9")

	if len(m.rawLines) < 2 || !m.rawLines[1].isError {
		t.Errorf("expected error line, got %+v", m.rawLines)
	}
}

func TestEnter_MetaCommands(t *testing.T) {
	m, meta := newTestModel(t)

	m, _ = submit(m, "/trace")
	if !meta.Trace {
		t.Error("expected trace to be enabled")
	}
	m, _ = submit(m, "ribbons 3")
	if !strings.Contains(rawTexts(m), "[trace]   set_ribbons") {
		t.Errorf("expected trace lines, got %q", rawTexts(m))
	}

	m, _ = submit(m, "/bogus")
	if !m.rawLines[1].isSystem || !strings.Contains(m.rawLines[1].text, "Unknown command") {
		t.Errorf("expected unknown command system line, got %+v", m.rawLines)
	}

	m, cmd := submit(m, "/quit")
	if !m.quitting || cmd == nil {
		t.Error("expected /quit to end the program")
	}
	if m.View() != "" {
		t.Error("quitting view should be empty")
	}
}

func TestCtrlY_Copies(t *testing.T) {
	m, meta := newTestModel(t)
	var copied string
	meta.Clipboard = func(s string) error {
		copied = s
		return nil
	}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	m = updated.(Model)
	if copied == "" {
		t.Fatal("expected clipboard write")
	}
	if _, err := codec.Decode(copied); err != nil {
		t.Errorf("copied text does not decode: %v", err)
	}
	if !strings.Contains(rawTexts(m), "Copied ") {
		t.Errorf("output = %q", rawTexts(m))
	}
}

func TestEsc_ClearsOutput(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = submit(m, "show")
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)
	if len(m.rawLines) != 0 {
		t.Errorf("expected output cleared, got %d lines", len(m.rawLines))
	}
}

func TestHistoryKeys(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = submit(m, "show team")
	m, _ = submit(m, "show box")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = updated.(Model)
	if m.input.Value() != "show box" {
		t.Errorf("up: input = %q", m.input.Value())
	}
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = updated.(Model)
	if m.input.Value() != "show team" {
		t.Errorf("up again: input = %q", m.input.Value())
	}
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(Model)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(Model)
	if m.input.Value() != "" {
		t.Errorf("down past newest: input = %q", m.input.Value())
	}
}

func TestSectionLines_NoSave(t *testing.T) {
	eng := engine.New()
	m := New(eng, cli.NewMeta(eng), 10)
	lines := m.sectionLines()
	if len(lines) == 0 || lines[0] != "No save loaded." {
		t.Errorf("sectionLines = %v", lines)
	}
}
