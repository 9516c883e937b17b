package durationaccumulator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAverageDuration(t *testing.T) {
	t.Run("empty accumulator has no average", func(t *testing.T) {
		da := NewDurationAccumulator()
		average, ok := da.GetAverageDuration()
		assert.False(t, ok)
		assert.Zero(t, average)
		assert.Zero(t, da.TotalDuration)
	})

	t.Run("average is total over counter", func(t *testing.T) {
		da := NewDurationAccumulator()
		da.UpdateAccumulator(100)
		da.UpdateAccumulator(250.5)
		da.UpdateAccumulator(49.5)

		average, ok := da.GetAverageDuration()
		require.True(t, ok)
		assert.Equal(t, 3, da.Counter)
		assert.InDelta(t, 400.0, da.TotalDuration, 1e-9)
		assert.InDelta(t, 400.0/3, average, 1e-9)
	})
}
