package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecentPivots(t *testing.T) {
	t.Run("four point strict pivot", func(t *testing.T) {
		highs := []float64{100, 101, 105, 101, 100, 100, 100, 100}
		lows := []float64{95, 94, 94.5, 93, 90, 93, 94.5, 95}
		s := seriesFromHighLow(highs, lows)

		support, resistance := RecentPivots(s, 20)

		require.Len(t, resistance, 1)
		assert.Equal(t, 105.0, resistance[0].Price)
		assert.Equal(t, "Recent price action", resistance[0].Source)

		require.Len(t, support, 1)
		assert.Equal(t, 90.0, support[0].Price)
	})

	t.Run("edge bars are excluded", func(t *testing.T) {
		// The extreme high sits on the second bar, inside the excluded edge.
		highs := []float64{100, 110, 101, 100, 100, 100}
		s := seriesFromHighLow(highs, constant(6, 95))
		_, resistance := RecentPivots(s, 20)
		assert.Empty(t, resistance)
	})

	t.Run("equal neighbors fail the strict test", func(t *testing.T) {
		highs := []float64{100, 100, 105, 105, 100, 100, 100}
		s := seriesFromHighLow(highs, constant(7, 95))
		_, resistance := RecentPivots(s, 20)
		assert.Empty(t, resistance)
	})

	t.Run("only the last window bars are scanned", func(t *testing.T) {
		highs := constant(30, 100)
		highs[5] = 120 // outside a window of 10
		highs[25] = 110
		s := seriesFromHighLow(highs, constant(30, 95))

		_, resistance := RecentPivots(s, 10)
		require.Len(t, resistance, 1)
		assert.Equal(t, 110.0, resistance[0].Price)
	})

	t.Run("too few bars yields nothing", func(t *testing.T) {
		s := seriesFromHighLow(constant(4, 100), constant(4, 95))
		support, resistance := RecentPivots(s, 20)
		assert.Empty(t, support)
		assert.Empty(t, resistance)
	})
}
