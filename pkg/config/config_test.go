package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdedit/pkg/config"
	"github.com/yaklabco/mdedit/pkg/parser"
)

func TestNewConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	assert.Equal(t, 2, cfg.IndentWidth)
	assert.Equal(t, 100, cfg.History.Capacity)
	assert.Equal(t, 500, cfg.History.CoalesceMs)
	assert.False(t, cfg.Collapsed)
	assert.Empty(t, cfg.Color)

	set, err := cfg.ExtensionSet()
	require.NoError(t, err)
	for _, ext := range parser.AllExtensions().Tags() {
		assert.True(t, set.Enabled(ext), "extension %s should default on", ext)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *config.Config) {},
		},
		{
			name:    "zero indent width",
			mutate:  func(c *config.Config) { c.IndentWidth = 0 },
			wantErr: "indent_width",
		},
		{
			name:    "negative indent width",
			mutate:  func(c *config.Config) { c.IndentWidth = -1 },
			wantErr: "indent_width",
		},
		{
			name:    "zero history capacity",
			mutate:  func(c *config.Config) { c.History.Capacity = 0 },
			wantErr: "history.capacity",
		},
		{
			name:    "negative coalesce window",
			mutate:  func(c *config.Config) { c.History.CoalesceMs = -10 },
			wantErr: "history.coalesce_ms",
		},
		{
			name:    "unknown extension",
			mutate:  func(c *config.Config) { c.Extensions = []string{"math", "bogus"} },
			wantErr: `unknown extension "bogus"`,
		},
		{
			name:   "empty extensions",
			mutate: func(c *config.Config) { c.Extensions = nil },
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := config.NewConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
