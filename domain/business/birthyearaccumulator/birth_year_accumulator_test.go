package birthyearaccumulator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBirthYearAccumulator(t *testing.T) {
	t.Run("nothing collected", func(t *testing.T) {
		ba := NewBirthYearAccumulator()
		ba.UpdateAccumulator(0)

		_, ok := ba.GetMostCommon()
		assert.False(t, ok)
		assert.Zero(t, ba.Earliest)
	})

	t.Run("most common is the mode, not the position of the max", func(t *testing.T) {
		ba := NewBirthYearAccumulator()
		for _, year := range []int{1992, 1985, 0, 1985, 2001, 1985, 1992, 0} {
			ba.UpdateAccumulator(year)
		}

		mostCommon, ok := ba.GetMostCommon()
		require.True(t, ok)
		assert.Equal(t, 1985, mostCommon)
		assert.Equal(t, 1985, ba.Earliest)
		assert.Equal(t, 2001, ba.MostRecent)
	})

	t.Run("single year", func(t *testing.T) {
		ba := NewBirthYearAccumulator()
		ba.UpdateAccumulator(1970)

		mostCommon, ok := ba.GetMostCommon()
		require.True(t, ok)
		assert.Equal(t, 1970, mostCommon)
		assert.Equal(t, 1970, ba.Earliest)
		assert.Equal(t, 1970, ba.MostRecent)
	})
}
