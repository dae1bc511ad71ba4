package collector

import "github.com/quangvo55/spx-levels/internal/model"

// Fetcher defines the interface for fetching market data. The analysis core
// never reaches out to a data source itself; it receives already-fetched
// series from a Collector built on one of these.
type Fetcher interface {
	FetchDailyBars(symbol string, days int) ([]model.OHLCV, error)
	Name() string
}
