package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlayerInput_With(t *testing.T) {
	var input PlayerInput
	assert.False(t, input.EventOccurred())

	for e := MoveLeft; e <= Restart; e++ {
		i := PlayerInput{TimeMs: 7}.With(e)
		assert.True(t, i.EventOccurred(), e.String())
		assert.Equal(t, int64(7), i.TimeMs)
	}
	assert.Equal(t, PlayerInput{MoveLeft: true, HardDrop: true},
		input.With(MoveLeft).With(HardDrop))
	assert.Panics(t, func() { input.With(Event(99)) })
	assert.Equal(t, "Event(99)", Event(99).String())
}
