package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, 20, c.Width)
	assert.Equal(t, 20, c.Height)
	assert.Equal(t, 2, c.Difficulty)
	assert.Equal(t, "dark", c.Palette().Name)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -4 }},
		{"huge board", func(c *Config) { c.Width = MaxSide + 1 }},
		{"zero cell width", func(c *Config) { c.CellWidth = 0 }},
		{"difficulty too low", func(c *Config) { c.Difficulty = 0 }},
		{"difficulty too high", func(c *Config) { c.Difficulty = 11 }},
		{"unknown theme", func(c *Config) { c.Theme = "neon" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			require.ErrorIs(t, c.Validate(), ErrInvalidConfig)
		})
	}
}

func TestFields(t *testing.T) {
	c := Default()
	c.Theme = "light"
	f := c.Fields()
	assert.Equal(t, "light", f["theme"])
	assert.Equal(t, 20, f["width"])
}
