package collector

import (
	"context"
	"fmt"
	"time"

	polygon "github.com/polygon-io/client-go/rest"
	polygonmodels "github.com/polygon-io/client-go/rest/models"

	"github.com/quangvo55/spx-levels/internal/model"
)

// PolygonFetcher implements Fetcher using the Polygon.io aggregates API. Used
// when an API key is configured; index symbols must use Polygon's naming
// (e.g. I:SPX).
type PolygonFetcher struct {
	Client *polygon.Client
}

// NewPolygonFetcher creates a new Polygon fetcher.
func NewPolygonFetcher(apiKey string) *PolygonFetcher {
	return &PolygonFetcher{Client: polygon.New(apiKey)}
}

func (f *PolygonFetcher) Name() string { return "polygon" }

// FetchDailyBars returns up to days of adjusted daily bars, oldest first.
// The calendar window is twice the requested count so weekends and holidays
// do not starve the result.
func (f *PolygonFetcher) FetchDailyBars(symbol string, days int) ([]model.OHLCV, error) {
	now := time.Now()
	from := now.AddDate(0, 0, -days*2)

	params := polygonmodels.ListAggsParams{
		Ticker:     symbol,
		Multiplier: 1,
		Timespan:   polygonmodels.Day,
		From:       polygonmodels.Millis(from),
		To:         polygonmodels.Millis(now),
	}.WithOrder(polygonmodels.Asc).WithAdjusted(true)

	iter := f.Client.ListAggs(context.Background(), params)

	var bars []model.OHLCV
	for iter.Next() {
		item := iter.Item()
		bars = append(bars, model.OHLCV{
			Time:   time.Time(item.Timestamp),
			Open:   item.Open,
			High:   item.High,
			Low:    item.Low,
			Close:  item.Close,
			Volume: item.Volume,
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("polygon aggs for %s: %w", symbol, err)
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("polygon: no data returned for %s", symbol)
	}

	if len(bars) > days {
		bars = bars[len(bars)-days:]
	}
	return bars, nil
}
