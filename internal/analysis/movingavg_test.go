package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovingAverageLevels(t *testing.T) {
	t.Run("latest value per window", func(t *testing.T) {
		closes := make([]float64, 10)
		for i := range closes {
			closes[i] = float64(i + 1) // 1..10
		}
		s := seriesFromHighLow(closes, closes)
		for i := range s.Bars {
			s.Bars[i].Close = closes[i]
		}

		levels := MovingAverageLevels(s, []int{5})
		require.Len(t, levels, 1)
		assert.InDelta(t, 8.0, levels[0].Price, 1e-9) // mean of 6..10
		assert.Equal(t, "MA_5 support/resistance", levels[0].Source)
	})

	t.Run("windows longer than the series are skipped", func(t *testing.T) {
		s := seriesFromHighLow(constant(30, 100), constant(30, 99))
		levels := MovingAverageLevels(s, []int{50, 200})
		assert.Empty(t, levels)
	})
}
