package main

import (
	"image"
	"testing"

	"github.com/marisvali/blockfall/world"
	"github.com/stretchr/testify/assert"
)

func TestRectangle_ContainsPt(t *testing.T) {
	r := NewRectangle(10, 20, 30, 40)
	assert.Equal(t, 30, r.Width())
	assert.Equal(t, 40, r.Height())

	assert.True(t, r.ContainsPt(world.Pt{X: 10, Y: 20}))
	assert.True(t, r.ContainsPt(world.Pt{X: 39, Y: 59}))
	assert.False(t, r.ContainsPt(world.Pt{X: 40, Y: 59}))
	assert.False(t, r.ContainsPt(world.Pt{X: 39, Y: 60}))
	assert.False(t, r.ContainsPt(world.Pt{X: 9, Y: 20}))
}

func TestRectangle_Translate(t *testing.T) {
	r := NewRectangle(0, 0, 5, 5).Translate(world.Pt{X: 3, Y: -2})
	assert.Equal(t, NewRectangle(3, -2, 5, 5), r)
	assert.Equal(t, image.Rect(3, -2, 8, 3), r.ImageRect())
}

func TestGameSizeInCells(t *testing.T) {
	c := world.DefaultConfig()
	assert.Equal(t, 19, GameWidthCells(&c))
	assert.Equal(t, 22, GameHeightCells(&c))
	assert.Equal(t, NewRectangle(40, 40, 400, 800), FieldArea(&c, 40))
	assert.Equal(t, NewRectangle(480, 40, 240, 800), PanelArea(&c, 40))
}

func TestCellRect(t *testing.T) {
	assert.Equal(t, NewRectangle(80, 120, 40, 40),
		CellRect(world.Pt{X: 2, Y: 3}, 40))
}
