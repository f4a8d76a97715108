package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected *StructuredConfig
	}{
		{
			name:     "no flags",
			args:     nil,
			expected: &StructuredConfig{},
		},
		{
			name: "interval and level",
			args: []string{"-interval", "10ms", "-log-level", "warn"},
			expected: &StructuredConfig{
				Workers: Workers{Interval: 10 * time.Millisecond},
				Log:     Log{Level: "warn"},
			},
		},
		{
			name:     "short config flag",
			args:     []string{"-c", "cfg.json"},
			expected: &StructuredConfig{JSONFilePath: "cfg.json"},
		},
		{
			name:     "long config flag",
			args:     []string{"-config", "other.json"},
			expected: &StructuredConfig{JSONFilePath: "other.json"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseFlags(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg)
		})
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown flag", args: []string{"-workers", "3"}},
		{name: "bad duration", args: []string{"-interval", "soon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseFlags(tt.args)
			require.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}
