package world

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/goccy/go-yaml"
)

// Difficulty selects the initial drop interval.
type Difficulty string

const (
	Easy   Difficulty = "Easy"
	Normal Difficulty = "Normal"
	Hard   Difficulty = "Hard"
)

var difficultyIntervalsMs = map[Difficulty]int64{
	Easy:   3000,
	Normal: 1000,
	Hard:   500,
}

var ErrInvalidConfig = errors.New("invalid config")

// Config holds every rule parameter of a game. It is fixed for the lifetime
// of a World and recorded in playthroughs, so that a replay runs with the
// exact same rules.
type Config struct {
	Width  int `yaml:"Width"`
	Height int `yaml:"Height"`
	// Difficulty picks the starting drop interval, unless DropIntervalMs is
	// set explicitly.
	Difficulty        Difficulty `yaml:"Difficulty"`
	DropIntervalMs    int64      `yaml:"DropIntervalMs"`
	IntervalStepMs    int64      `yaml:"IntervalStepMs"`
	MinDropIntervalMs int64      `yaml:"MinDropIntervalMs"`
	LinesPerLevel     int        `yaml:"LinesPerLevel"`
	MaxLevel          int        `yaml:"MaxLevel"`
	LineClearBase     int        `yaml:"LineClearBase"`
	HardDropBonus     int        `yaml:"HardDropBonus"`
}

func DefaultConfig() Config {
	return Config{
		Width:             10,
		Height:            20,
		Difficulty:        Normal,
		IntervalStepMs:    300,
		MinDropIntervalMs: 100,
		LinesPerLevel:     10,
		MaxLevel:          9,
		LineClearBase:     100,
		HardDropBonus:     10,
	}
}

// InitialDropIntervalMs is the interval a new game starts with.
func (c *Config) InitialDropIntervalMs() int64 {
	if c.DropIntervalMs > 0 {
		return c.DropIntervalMs
	}
	return difficultyIntervalsMs[c.Difficulty]
}

func (c *Config) Validate() error {
	// The widest shape is 4 cells, anything smaller cannot spawn an I piece.
	if c.Width < 4 || c.Height < 4 {
		return fmt.Errorf("%w: field must be at least 4x4, got %dx%d",
			ErrInvalidConfig, c.Width, c.Height)
	}
	if c.DropIntervalMs < 0 {
		return fmt.Errorf("%w: negative DropIntervalMs %d", ErrInvalidConfig,
			c.DropIntervalMs)
	}
	if c.DropIntervalMs == 0 {
		if _, ok := difficultyIntervalsMs[c.Difficulty]; !ok {
			return fmt.Errorf("%w: unknown difficulty %q", ErrInvalidConfig,
				c.Difficulty)
		}
	}
	if c.IntervalStepMs < 0 {
		return fmt.Errorf("%w: negative IntervalStepMs %d", ErrInvalidConfig,
			c.IntervalStepMs)
	}
	if c.MinDropIntervalMs <= 0 {
		return fmt.Errorf("%w: MinDropIntervalMs must be positive, got %d",
			ErrInvalidConfig, c.MinDropIntervalMs)
	}
	if c.LinesPerLevel <= 0 {
		return fmt.Errorf("%w: LinesPerLevel must be positive, got %d",
			ErrInvalidConfig, c.LinesPerLevel)
	}
	if c.MaxLevel < 0 {
		return fmt.Errorf("%w: negative MaxLevel %d", ErrInvalidConfig,
			c.MaxLevel)
	}
	if c.LineClearBase < 0 || c.HardDropBonus < 0 {
		return fmt.Errorf("%w: negative score parameters", ErrInvalidConfig)
	}
	return nil
}

// ParseConfig reads YAML on top of DefaultConfig, so a file only needs to
// list the values it changes.
func ParseConfig(data []byte) (Config, error) {
	c := DefaultConfig()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parsing config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

func LoadConfig(fsys fs.FS, name string) (Config, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("reading config %s: %w", name, err)
	}
	return ParseConfig(data)
}
