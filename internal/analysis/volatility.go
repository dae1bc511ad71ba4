package analysis

import (
	"github.com/markcheno/go-talib"

	"github.com/quangvo55/spx-levels/internal/model"
)

// DefaultVolatilityMAWindow is the moving-average period the volatility index
// is compared against.
const DefaultVolatilityMAWindow = 20

const (
	vixBelowAverage = "VIX below 20-day average - favorable for upside targets."
	vixAboveAverage = "VIX above 20-day average - may need to decrease for upside targets."
)

// VolatilityNote compares the latest value of a volatility index against its
// own moving average and returns a fixed advisory string. The note is purely
// informational and never participates in level aggregation. Returns "" when
// the series is missing or too short for the average to be defined.
func VolatilityNote(vix *model.PriceSeries, maWindow int) string {
	if vix == nil || maWindow <= 0 || vix.Len() < maWindow {
		return ""
	}
	closes := vix.Closes()
	sma := talib.Sma(closes, maWindow)
	if closes[len(closes)-1] < sma[len(sma)-1] {
		return vixBelowAverage
	}
	return vixAboveAverage
}
