package analysis

import (
	"fmt"
	"sort"

	"github.com/quangvo55/spx-levels/internal/model"
)

// DefaultFibPairs is the number of recent swing high/low pairs to retrace.
const DefaultFibPairs = 3

// fibRatios are the standard retracement ratios.
var fibRatios = []float64{0, 0.236, 0.382, 0.5, 0.618, 0.786, 1}

func fibRatioLabel(ratio float64) string {
	switch ratio {
	case 0:
		return "0"
	case 1:
		return "100"
	}
	return fmt.Sprintf("%d%%", int(ratio*100))
}

// FibonacciLevels computes retracement levels for up to pairs recent swing
// high/low combinations. Highs and lows are ranked by recency independently
// and paired by rank, not by temporal adjacency; consumers depend on the
// numeric output of this pairing, so it is kept as-is. Trend direction comes
// from whichever single swing is most recent overall: a high means the run is
// labeled as a downtrend, a low as an uptrend. Returns nil when either swing
// set is empty.
func FibonacciLevels(swingHighs, swingLows []model.SwingPoint, pairs int) []model.Level {
	if len(swingHighs) == 0 || len(swingLows) == 0 {
		return nil
	}

	recentHighs := make([]model.SwingPoint, len(swingHighs))
	copy(recentHighs, swingHighs)
	sort.SliceStable(recentHighs, func(i, j int) bool { return recentHighs[i].Time.After(recentHighs[j].Time) })

	recentLows := make([]model.SwingPoint, len(swingLows))
	copy(recentLows, swingLows)
	sort.SliceStable(recentLows, func(i, j int) bool { return recentLows[i].Time.After(recentLows[j].Time) })

	downtrend := recentHighs[0].Time.After(recentLows[0].Time)

	n := pairs
	if len(recentHighs) < n {
		n = len(recentHighs)
	}
	if len(recentLows) < n {
		n = len(recentLows)
	}

	var levels []model.Level
	for i := 0; i < n; i++ {
		high := recentHighs[i].Price
		low := recentLows[i].Price
		diff := high - low

		key := fmt.Sprintf("Fib_Up_%d", i+1)
		if downtrend {
			key = fmt.Sprintf("Fib_Down_%d", i+1)
		}

		for _, ratio := range fibRatios {
			levels = append(levels, model.Level{
				Price:  low + ratio*diff,
				Source: fmt.Sprintf("Fibonacci %s (%s)", fibRatioLabel(ratio), key),
			})
		}
	}
	return levels
}
