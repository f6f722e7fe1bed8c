package world

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	require.NoError(t, c.Validate())
	assert.Equal(t, 10, c.Width)
	assert.Equal(t, 20, c.Height)
	assert.Equal(t, int64(1000), c.InitialDropIntervalMs())
}

func TestConfig_DifficultyPresets(t *testing.T) {
	c := DefaultConfig()
	c.Difficulty = Easy
	assert.Equal(t, int64(3000), c.InitialDropIntervalMs())
	c.Difficulty = Hard
	assert.Equal(t, int64(500), c.InitialDropIntervalMs())

	// An explicit interval wins over the preset.
	c.DropIntervalMs = 750
	assert.Equal(t, int64(750), c.InitialDropIntervalMs())
}

func TestParseConfig_OverridesDefaults(t *testing.T) {
	c, err := ParseConfig([]byte(`
Width: 12
Difficulty: Hard
LineClearBase: 40
`))
	require.NoError(t, err)
	assert.Equal(t, 12, c.Width)
	assert.Equal(t, 20, c.Height)
	assert.Equal(t, Hard, c.Difficulty)
	assert.Equal(t, 40, c.LineClearBase)
	assert.Equal(t, int64(500), c.InitialDropIntervalMs())
}

func TestParseConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"narrow field", "Width: 2"},
		{"flat field", "Height: 3"},
		{"unknown difficulty", "Difficulty: Insane"},
		{"negative interval", "DropIntervalMs: -5"},
		{"zero floor", "MinDropIntervalMs: 0"},
		{"zero lines per level", "LinesPerLevel: 0"},
		{"negative bonus", "HardDropBonus: -1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.yaml))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}

	_, err := ParseConfig([]byte("Width: [1, 2"))
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	fsys := fstest.MapFS{
		"data/config.yaml": {Data: []byte("Height: 24\nDifficulty: Easy\n")},
	}
	c, err := LoadConfig(fsys, "data/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, 24, c.Height)
	assert.Equal(t, int64(3000), c.InitialDropIntervalMs())

	_, err = LoadConfig(fsys, "data/missing.yaml")
	assert.Error(t, err)
}

func TestNewWorld_RejectsInvalidConfig(t *testing.T) {
	c := DefaultConfig()
	c.Width = 3
	_, err := NewWorld(c, 0)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
