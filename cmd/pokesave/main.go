// Pokesave is a terminal save editor for Poké Path TD.
// Usage: pokesave [--version] [--plain] [--trace] [--config <file>]
// [--script <commands>] [--lua <file|dir>] [--out <file>] [save_file]
package main

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/nathoo/pokesave/cli"
	"github.com/nathoo/pokesave/config"
	"github.com/nathoo/pokesave/engine"
	"github.com/nathoo/pokesave/engine/sprite"
	"github.com/nathoo/pokesave/loader"
	"github.com/nathoo/pokesave/tui"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const usage = "Usage: pokesave [--version] [--plain] [--trace] [--config <file>] [--script <commands>] [--lua <file|dir>] [--out <file>] [save_file]"

func main() {
	plain := false
	trace := false
	var saveFile, scriptFile, luaPath, outFile, configPath string

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version":
			fmt.Printf("pokesave %s (commit %s, built %s)\n", version, commit, date)
			return
		case "--help", "-h":
			fmt.Println(usage)
			return
		case "--plain":
			plain = true
		case "--trace":
			trace = true
		case "--script", "--lua", "--out", "--config":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "%s requires a path\n", args[i])
				os.Exit(1)
			}
			opt := args[i]
			i++
			switch opt {
			case "--script":
				scriptFile = args[i]
			case "--lua":
				luaPath = args[i]
			case "--out":
				outFile = args[i]
			case "--config":
				configPath = args[i]
			}
		default:
			if saveFile == "" {
				saveFile = args[i]
			}
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	eng := engine.New()
	eng.Sprites = sprite.Resolver{Base: cfg.AssetsURL}
	if trace || cfg.Trace {
		eng.Logger = log.New(os.Stderr, "pokesave: ", 0)
	}

	c := cli.New(eng)
	c.Trace = trace
	c.OutputFile = cfg.OutputFile
	if outFile != "" {
		c.OutputFile = outFile
	}

	if saveFile != "" {
		data, err := os.ReadFile(saveFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading save: %v\n", err)
			os.Exit(1)
		}
		if err := eng.Decode(string(data)); err != nil {
			fmt.Fprintf(os.Stderr, "Error decoding %s: %s\n", saveFile, eng.Err)
			os.Exit(1)
		}
	}

	// Batch mode: apply a Lua edit script and write the result.
	if luaPath != "" {
		if err := runLua(c, luaPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Command file mode: force plain, echo commands.
	if scriptFile != "" {
		f, err := os.Open(scriptFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening script: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		c.In = f
		c.EchoInput = true
		c.Run()
		if outFile != "" {
			c.Exec("/write " + outFile)
		}
		return
	}

	// Use plain CLI if --plain or stdout is not a terminal.
	if plain || cfg.Plain || !term.IsTerminal(int(os.Stdout.Fd())) {
		c.Run()
		return
	}

	if err := tui.Run(eng, c.Meta, cfg.HistorySize); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runLua applies the edit script at path to the decoded save and writes
// the encoded result to the configured output file.
func runLua(c *cli.CLI, path string) error {
	if !c.Engine.HasDocument() {
		return fmt.Errorf("--lua needs a save file")
	}

	s, err := loader.Run(path, c.Engine.Doc)
	if err != nil {
		return err
	}
	for _, line := range s.Output {
		fmt.Println(line)
	}
	for _, w := range s.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	result := c.Engine.Apply(s.Effects)
	if result.Err != nil {
		return result.Err
	}
	if c.Trace {
		for _, line := range cli.FormatTrace(result) {
			fmt.Fprintln(os.Stderr, line)
		}
	}

	out, err := c.Engine.Encode()
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.OutputFile, []byte(out), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", c.OutputFile, err)
	}
	fmt.Printf("Applied %d edit(s); wrote %s.\n", len(result.Effects), c.OutputFile)
	return nil
}
