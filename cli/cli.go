// Package cli provides terminal I/O, output formatting, and meta-command
// dispatch for the save editor.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nathoo/pokesave/engine"
	"github.com/nathoo/pokesave/types"
)

// CLI is the line-oriented editor loop.
type CLI struct {
	*Meta
	In        io.Reader
	Out       io.Writer
	EchoInput bool // echo each input line after the prompt (for script playback)
	Prompt    string
}

// New creates a CLI wired to the given engine.
func New(eng *engine.Engine) *CLI {
	return &CLI{
		Meta:   NewMeta(eng),
		In:     os.Stdin,
		Out:    os.Stdout,
		Prompt: "> ",
	}
}

// Run starts the editor loop: prompt, input, dispatch, output. It
// returns at end of input or on /quit.
func (c *CLI) Run() {
	if !c.Engine.HasDocument() {
		c.printSystem("No save loaded. Use /open <file> or /decode <text>, /help for commands.")
	}

	scanner := bufio.NewScanner(c.In)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for {
		c.print(c.Prompt)
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		// Skip comment lines (for command files).
		if strings.HasPrefix(input, "#") {
			continue
		}
		if c.EchoInput {
			c.printLine(input)
		}

		if c.Exec(input) {
			return
		}
	}
}

// Exec runs one input line and prints its output. It returns true when
// the line ended the session.
func (c *CLI) Exec(input string) bool {
	if strings.HasPrefix(input, "/") {
		lines, quit := c.Handle(input)
		for _, line := range lines {
			c.printLine(line)
		}
		return quit
	}

	result := c.Engine.Step(input)
	c.printResult(result)
	if c.Trace {
		for _, line := range FormatTrace(result) {
			c.printLine(line)
		}
	}
	return false
}

func (c *CLI) printResult(result types.Result) {
	for _, line := range result.Output {
		c.printLine(line)
	}
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}

func (c *CLI) printSystem(text string) {
	fmt.Fprintf(c.Out, "[%s]\n", text)
}
