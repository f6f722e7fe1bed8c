package main

import (
	"testing"

	"github.com/marisvali/blockfall/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisWorld_FlashOnLineClear(t *testing.T) {
	w, err := world.NewWorld(world.DefaultConfig(), 0)
	require.NoError(t, err)
	for x := 1; x < w.Field.Width(); x++ {
		w.Field.Set(world.Pt{X: x, Y: w.Field.Height() - 1}, 3)
	}
	w.Active = world.NewPiece(world.PieceI)
	w.Active.Pos = world.Pt{X: -1, Y: w.Field.Height() - 4}

	var v VisWorld
	w.Step(world.PlayerInput{SoftDrop: true})
	v.Step(w)
	require.NotNil(t, v.Current())
	assert.Equal(t, "SINGLE +100", v.Current().Caption)
	assert.Equal(t, 1.0, v.Current().Alpha())

	// The flash fades and then goes away.
	for range FlashFrames - 1 {
		w.Step(world.PlayerInput{})
		v.Step(w)
	}
	require.NotNil(t, v.Current())
	assert.InDelta(t, 1.0/FlashFrames, v.Current().Alpha(), 1e-9)

	w.Step(world.PlayerInput{})
	v.Step(w)
	assert.Nil(t, v.Current())
}

func TestTimeMs(t *testing.T) {
	assert.Equal(t, int64(0), TimeMs(0))
	assert.Equal(t, int64(1000), TimeMs(TPS))
	assert.Equal(t, int64(16), TimeMs(1))
}
