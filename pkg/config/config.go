// Package config defines core configuration types for mdedit.
// These types are pure data structures with no dependency on the
// parser or editor packages beyond extension tag names.
package config

import (
	"fmt"
	"time"

	"github.com/yaklabco/mdedit/pkg/parser"
)

// HistoryConfig controls the undo/redo manager.
type HistoryConfig struct {
	// Capacity bounds the undo stack; oldest entries are evicted.
	Capacity int `mapstructure:"capacity" yaml:"capacity"`

	// CoalesceMs is the quiet period in milliseconds after which a
	// pending edit group commits.
	CoalesceMs int `mapstructure:"coalesce_ms" yaml:"coalesce_ms"`
}

// CoalesceDelay returns the coalescing window as a duration.
func (h HistoryConfig) CoalesceDelay() time.Duration {
	return time.Duration(h.CoalesceMs) * time.Millisecond
}

// Config is the root configuration structure for the editing engine.
type Config struct {
	// Extensions lists the enabled syntax extensions by tag
	// ("highlight", "subscript", "math", ...).
	Extensions []string `mapstructure:"extensions" yaml:"extensions"`

	// IndentWidth is the number of spaces one indent step adds.
	IndentWidth int `mapstructure:"indent_width" yaml:"indent_width"`

	// History configures undo/redo behavior.
	History HistoryConfig `mapstructure:"history" yaml:"history"`

	// CLI-level options (not persisted to config files).

	// Collapsed selects the collapsed render mode for previews.
	Collapsed bool `mapstructure:"-" yaml:"-"`

	// Color forces colored output on or off; empty means auto.
	Color string `mapstructure:"-" yaml:"-"`
}

// NewConfig returns a Config with sensible defaults: all extensions
// enabled, two-space indents, a 100-entry undo stack and a 500ms
// coalescing window.
func NewConfig() *Config {
	tags := parser.AllExtensions().Tags()
	exts := make([]string, len(tags))
	for i, t := range tags {
		exts[i] = string(t)
	}
	return &Config{
		Extensions:  exts,
		IndentWidth: 2,
		History: HistoryConfig{
			Capacity:   100,
			CoalesceMs: 500,
		},
	}
}

// ExtensionSet resolves the configured extension tags.
func (c *Config) ExtensionSet() (parser.ExtensionSet, error) {
	exts := make([]parser.Extension, 0, len(c.Extensions))
	for _, tag := range c.Extensions {
		ext, err := parser.ParseExtension(tag)
		if err != nil {
			return parser.ExtensionSet{}, err
		}
		exts = append(exts, ext)
	}
	return parser.NewExtensionSet(exts...), nil
}

// Validate checks the configuration for out-of-range values.
func (c *Config) Validate() error {
	if c.IndentWidth <= 0 {
		return fmt.Errorf("indent_width must be positive, got %d", c.IndentWidth)
	}
	if c.History.Capacity <= 0 {
		return fmt.Errorf("history.capacity must be positive, got %d", c.History.Capacity)
	}
	if c.History.CoalesceMs < 0 {
		return fmt.Errorf("history.coalesce_ms must not be negative, got %d", c.History.CoalesceMs)
	}
	if _, err := c.ExtensionSet(); err != nil {
		return err
	}
	return nil
}
