package analysis

import (
	"github.com/quangvo55/spx-levels/internal/model"
)

// DefaultSwingOrder is the symmetric comparison window for swing detection.
const DefaultSwingOrder = 20

// DefaultSmoothWindow is the rolling-mean window applied before detection.
const DefaultSmoothWindow = 3

// LocalMaxima returns indices i where values[i] is strictly greater than every
// value within order positions on both sides. Indices within order of either
// boundary are never flagged; flat plateaus produce no extremum.
func LocalMaxima(values []float64, order int) []int {
	var idx []int
	for i := order; i < len(values)-order; i++ {
		v := values[i]
		isMax := true
		for j := i - order; j <= i+order; j++ {
			if j == i {
				continue
			}
			if values[j] >= v {
				isMax = false
				break
			}
		}
		if isMax {
			idx = append(idx, i)
		}
	}
	return idx
}

// LocalMinima is symmetric to LocalMaxima.
func LocalMinima(values []float64, order int) []int {
	var idx []int
	for i := order; i < len(values)-order; i++ {
		v := values[i]
		isMin := true
		for j := i - order; j <= i+order; j++ {
			if j == i {
				continue
			}
			if values[j] <= v {
				isMin = false
				break
			}
		}
		if isMin {
			idx = append(idx, i)
		}
	}
	return idx
}

// DetectSwings identifies significant swing highs and lows. Detection runs on
// rolling-mean smoothed high/low series so single-bar noise does not register,
// but the emitted price is the raw High or Low of the flagged bar. A series
// whose smoothed length does not exceed 2*order+1 yields empty results for
// both sides; that is an expected outcome for short series, not an error.
func DetectSwings(series *model.PriceSeries, order, smoothWindow int) (highs, lows []model.SwingPoint) {
	smoothHighs := RollingMean(series.Highs(), smoothWindow)
	smoothLows := RollingMean(series.Lows(), smoothWindow)

	if len(smoothHighs) <= 2*order+1 {
		return nil, nil
	}

	// Smoothed index i corresponds to raw bar i+smoothWindow-1, the last bar
	// of its window.
	offset := smoothWindow - 1

	for _, i := range LocalMaxima(smoothHighs, order) {
		bar := series.Bars[i+offset]
		highs = append(highs, model.SwingPoint{Time: bar.Time, Price: bar.High, Kind: model.SwingHigh})
	}
	for _, i := range LocalMinima(smoothLows, order) {
		bar := series.Bars[i+offset]
		lows = append(lows, model.SwingPoint{Time: bar.Time, Price: bar.Low, Kind: model.SwingLow})
	}
	return highs, lows
}
