package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgress_LevelUpEveryTenLines(t *testing.T) {
	c := DefaultConfig()
	p := NewProgress(&c)
	assert.Equal(t, int64(1000), p.DropIntervalMs)

	for i := 1; i <= 9; i++ {
		p.AddLines(1, &c)
		assert.Equal(t, 0, p.Level, "after %d lines", i)
	}
	p.AddLines(1, &c)
	assert.Equal(t, 1, p.Level)
	assert.Equal(t, 10, p.Lines)
	assert.Equal(t, 1000, p.Score)
	assert.Equal(t, int64(700), p.DropIntervalMs)
}

func TestProgress_MultiLinePassCrossesOneThreshold(t *testing.T) {
	c := DefaultConfig()
	p := NewProgress(&c)
	p.Lines = 8

	delta := p.AddLines(4, &c)
	assert.Equal(t, 1500, delta)
	assert.Equal(t, 1500, p.Score)
	assert.Equal(t, 12, p.Lines)
	assert.Equal(t, 1, p.Level)
	assert.Equal(t, int64(700), p.DropIntervalMs)
}

func TestProgress_LevelCheckedPerRow(t *testing.T) {
	c := DefaultConfig()
	c.LinesPerLevel = 2
	p := NewProgress(&c)

	p.AddLines(4, &c)
	assert.Equal(t, 2, p.Level)
	assert.Equal(t, int64(400), p.DropIntervalMs)
}

func TestProgress_LevelCapAndIntervalFloor(t *testing.T) {
	c := DefaultConfig()
	p := NewProgress(&c)
	for range 200 {
		p.AddLines(1, &c)
	}
	assert.Equal(t, c.MaxLevel, p.Level)
	assert.Equal(t, c.MinDropIntervalMs, p.DropIntervalMs)
	assert.Equal(t, 200, p.Lines)
}

func TestProgress_HardDropBonus(t *testing.T) {
	c := DefaultConfig()
	p := NewProgress(&c)

	assert.Equal(t, 0, p.AddHardDrop(0, &c))
	assert.Equal(t, 0, p.AddHardDrop(1, &c))
	assert.Equal(t, 0, p.Score)

	assert.Equal(t, 12, p.AddHardDrop(2, &c))
	assert.Equal(t, 28, p.AddHardDrop(18, &c))
	assert.Equal(t, 40, p.Score)
}

func TestProgress_Reset(t *testing.T) {
	c := DefaultConfig()
	c.Difficulty = Hard
	p := NewProgress(&c)
	for range 25 {
		p.AddLines(1, &c)
	}
	p.Reset(&c)
	assert.Equal(t, Progress{DropIntervalMs: 500}, p)
}
