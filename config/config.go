/*
File    : mix/config/config.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package config loads REPL-only cosmetic preferences: prompt string, banner
// on/off, color on/off, and a history file path. None of this reaches the
// scanner, parser, or evaluator — run's observable behavior is the same
// regardless of what this package returns.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// REPLConfig holds the REPL's cosmetic preferences.
type REPLConfig struct {
	Prompt      string `yaml:"prompt"`
	ShowBanner  bool   `yaml:"show_banner"`
	Color       bool   `yaml:"color"`
	HistoryFile string `yaml:"history_file"`
}

// Default returns the REPL's built-in preferences, used when no config file
// is present.
func Default() *REPLConfig {
	home, err := os.UserHomeDir()
	historyFile := ".mix_history"
	if err == nil {
		historyFile = filepath.Join(home, ".mix_history")
	}
	return &REPLConfig{
		Prompt:      "mix >>> ",
		ShowBanner:  true,
		Color:       true,
		HistoryFile: historyFile,
	}
}

// Load reads a YAML config file at path and overlays it on top of Default.
// A missing file is not an error — Default() is returned unchanged.
func Load(path string) (*REPLConfig, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDefaultPath loads "~/.mixrc.yaml", falling back to Default() if the
// home directory can't be resolved or the file doesn't exist.
func LoadDefaultPath() (*REPLConfig, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Default(), nil
	}
	return Load(filepath.Join(home, ".mixrc.yaml"))
}
