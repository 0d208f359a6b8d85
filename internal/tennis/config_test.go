package tennis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"chance above one", func(c *Config) { c.QuestionChance = 1.5 }},
		{"chance negative", func(c *Config) { c.QuestionChance = -0.1 }},
		{"chance NaN", func(c *Config) { c.QuestionChance = math.NaN() }},
		{"zero speed", func(c *Config) { c.BaseSpeed = 0 }},
		{"negative speed", func(c *Config) { c.BaseSpeed = -1 }},
		{"slow motion one", func(c *Config) { c.SlowMotion = 1 }},
		{"slow motion zero", func(c *Config) { c.SlowMotion = 0 }},
		{"skill above one", func(c *Config) { c.OpponentSkill = 2 }},
		{"zero time limit", func(c *Config) { c.QuestionTimeLimit = 0 }},
		{"wide strike window", func(c *Config) { c.StrikeWindow = 0.6 }},
		{"speed scale below one", func(c *Config) { c.MaxSpeedScale = 0.5 }},
		{"zero max frame", func(c *Config) { c.MaxFrame = 0 }},
		{"unknown server", func(c *Config) { c.FirstServer = Side(7) }},
		{"bad rules", func(c *Config) { c.Rules.SetsToWin = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)

			_, err = NewMatch(cfg, NewRNG(1), nil)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestConfigValidateReportsEveryProblem(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BaseSpeed = 0
	cfg.QuestionChance = 3

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base speed")
	assert.Contains(t, err.Error(), "question chance")
}

func TestNewMatchRequiresRandomSource(t *testing.T) {
	_, err := NewMatch(DefaultConfig(), nil, nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
