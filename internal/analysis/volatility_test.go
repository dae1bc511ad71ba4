package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quangvo55/spx-levels/internal/model"
)

func vixSeries(closes []float64) *model.PriceSeries {
	highs := make([]float64, len(closes))
	lows := make([]float64, len(closes))
	copy(highs, closes)
	copy(lows, closes)
	s := seriesFromHighLow(highs, lows)
	for i := range s.Bars {
		s.Bars[i].Close = closes[i]
	}
	s.Symbol = "VIX"
	return s
}

func TestVolatilityNote(t *testing.T) {
	t.Run("absent when series is missing or short", func(t *testing.T) {
		assert.Empty(t, VolatilityNote(nil, 20))
		assert.Empty(t, VolatilityNote(vixSeries(constant(19, 15)), 20))
	})

	t.Run("below its moving average", func(t *testing.T) {
		closes := constant(30, 20)
		closes[29] = 12 // latest well below the 20-day average
		note := VolatilityNote(vixSeries(closes), 20)
		assert.Contains(t, note, "below 20-day average")
	})

	t.Run("above its moving average", func(t *testing.T) {
		closes := constant(30, 20)
		closes[29] = 35
		note := VolatilityNote(vixSeries(closes), 20)
		assert.Contains(t, note, "above 20-day average")
	})

	t.Run("equal to the average counts as above", func(t *testing.T) {
		note := VolatilityNote(vixSeries(constant(30, 20)), 20)
		assert.Contains(t, note, "above 20-day average")
	})
}
