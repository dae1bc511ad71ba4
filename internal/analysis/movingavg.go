package analysis

import (
	"fmt"

	"github.com/markcheno/go-talib"

	"github.com/quangvo55/spx-levels/internal/model"
)

// DefaultMAWindows are the moving-average periods exposed as levels.
var DefaultMAWindows = []int{50, 200}

// MovingAverageLevels returns the latest value of each configured simple
// moving average as a level. Windows longer than the series are skipped.
func MovingAverageLevels(series *model.PriceSeries, windows []int) []model.Level {
	closes := series.Closes()

	var levels []model.Level
	for _, w := range windows {
		if w <= 0 || len(closes) < w {
			continue
		}
		sma := talib.Sma(closes, w)
		levels = append(levels, model.Level{
			Price:  sma[len(sma)-1],
			Source: fmt.Sprintf("MA_%d support/resistance", w),
		})
	}
	return levels
}
