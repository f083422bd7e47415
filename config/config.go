// Package config loads editor settings from an ini file and the
// environment. Environment variables win over the file, which wins over
// the built-in defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/ini.v1"
)

// DefaultPath is the config file looked up when no path is given.
const DefaultPath = "pokesave.ini"

// EnvPrefix prefixes every environment override.
const EnvPrefix = "POKESAVE_"

var defaultConfig = []byte(`
[editor]
output_file  = modified-save.txt
history_size = 100
plain        = false
trace        = false

[assets]
base_url = https://pokepath-game.pages.dev
`)

// Config holds the resolved settings.
type Config struct {
	OutputFile  string `env:"OUTPUT"`
	HistorySize int    `env:"HISTORY"`
	Plain       bool   `env:"PLAIN"`
	Trace       bool   `env:"LOG"`
	AssetsURL   string `env:"ASSETS_URL"`

	// Source is the ini file that was read, empty when only defaults and
	// the environment applied.
	Source string
}

// Load reads path (DefaultPath when empty) over the built-in defaults and
// applies environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}

	options := ini.LoadOptions{
		SkipUnrecognizableLines: true,
		AllowBooleanKeys:        true,
	}

	sources := []any{defaultConfig}
	source := ""
	if _, err := os.Stat(path); err == nil {
		sources = append(sources, path)
		source = path
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	iniFile, err := ini.LoadSources(options, sources[0], sources[1:]...)
	if err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	editor := iniFile.Section("editor")
	assets := iniFile.Section("assets")
	c := &Config{
		OutputFile:  editor.Key("output_file").MustString("modified-save.txt"),
		HistorySize: editor.Key("history_size").MustInt(100),
		Plain:       editor.Key("plain").MustBool(false),
		Trace:       editor.Key("trace").MustBool(false),
		AssetsURL:   assets.Key("base_url").String(),
		Source:      source,
	}

	if err := env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) validate() error {
	if c.OutputFile == "" {
		return fmt.Errorf("config: output_file must not be empty")
	}
	if c.HistorySize < 1 {
		return fmt.Errorf("config: history_size must be at least 1, got %d", c.HistorySize)
	}
	return nil
}
