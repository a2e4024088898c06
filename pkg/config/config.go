// Package config holds the startup settings of the explorer.
package config

import (
	"fmt"

	"github.com/glassexplorer/glassexplorer/pkg/asciiart"
	"github.com/glassexplorer/glassexplorer/pkg/fsutils"
	"github.com/glassexplorer/glassexplorer/pkg/viewers"
)

// Config is read from an optional YAML file; command line flags override it.
type Config struct {
	StartDir     string `yaml:"start_dir"`
	AsciiWidth   int    `yaml:"ascii_width"`
	PreviewChars int    `yaml:"preview_chars"`
	Theme        string `yaml:"theme"`
	LogLevel     string `yaml:"log_level"`
	LogFormat    string `yaml:"log_format"`
	LogFile      string `yaml:"log_file"`
}

func Default() Config {
	return Config{
		StartDir:     "~",
		AsciiWidth:   asciiart.DefaultWidth,
		PreviewChars: viewers.MaxPreviewChars,
		Theme:        "dracula",
		LogLevel:     "info",
		LogFormat:    "json",
	}
}

// Load returns Default overlaid with the file at path. An empty path skips the file;
// a named file that does not exist is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if err := fsutils.ReadYAMLFile(fsutils.ExpandHome(path), true, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.AsciiWidth <= 0 {
		return fmt.Errorf("ascii_width must be positive, got %d", c.AsciiWidth)
	}
	if c.PreviewChars <= 0 {
		return fmt.Errorf("preview_chars must be positive, got %d", c.PreviewChars)
	}
	switch c.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("log_format must be json or console, got %q", c.LogFormat)
	}
	return nil
}
