package analysis

import (
	"github.com/quangvo55/spx-levels/internal/model"
)

// DefaultPivotWindow is the lookback for recent support/resistance pivots.
const DefaultPivotWindow = 20

// RecentPivots scans the most recent window bars for short-term pivots. A bar
// whose Low is strictly below the Lows of the two bars on each side is a
// support candidate; the symmetric test on High yields resistance. The two
// bars at each end of the window are excluded.
func RecentPivots(series *model.PriceSeries, window int) (support, resistance []model.Level) {
	bars := series.Bars
	if len(bars) > window {
		bars = bars[len(bars)-window:]
	}

	for i := 2; i < len(bars)-2; i++ {
		low := bars[i].Low
		if low < bars[i-1].Low && low < bars[i-2].Low && low < bars[i+1].Low && low < bars[i+2].Low {
			support = append(support, model.Level{Price: low, Source: "Recent price action"})
		}
		high := bars[i].High
		if high > bars[i-1].High && high > bars[i-2].High && high > bars[i+1].High && high > bars[i+2].High {
			resistance = append(resistance, model.Level{Price: high, Source: "Recent price action"})
		}
	}
	return support, resistance
}
