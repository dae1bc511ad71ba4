package collector

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/quangvo55/spx-levels/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Price float64
	Data  map[string][]model.OHLCV // per symbol; generated when absent
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyBars(symbol string, days int) ([]model.OHLCV, error) {
	if bars, ok := m.Data[symbol]; ok {
		return bars, nil
	}
	return generateMockBars(m.Price, days), nil
}

func generateMockBars(basePrice float64, count int) []model.OHLCV {
	bars := make([]model.OHLCV, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.OHLCV{
			Time:   time.Now().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}

// Collector fetches the primary price series and the optional volatility
// series for one analysis run.
type Collector struct {
	Fetcher          Fetcher
	Symbol           string
	VolatilitySymbol string
	Days             int
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, symbol, volatilitySymbol string, days int) *Collector {
	return &Collector{Fetcher: fetcher, Symbol: symbol, VolatilitySymbol: volatilitySymbol, Days: days}
}

// Collect fetches the primary series plus, when a volatility symbol is
// configured, the volatility series. A failed or empty volatility fetch is
// absorbed with a warning so the main analysis still runs; a failed primary
// fetch is an error.
func (c *Collector) Collect() (series, volatility *model.PriceSeries, err error) {
	bars, err := c.Fetcher.FetchDailyBars(c.Symbol, c.Days)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch daily bars for %s: %w", c.Symbol, err)
	}
	series = &model.PriceSeries{Symbol: c.Symbol, Bars: bars, FetchedAt: time.Now()}
	if err := series.Validate(); err != nil {
		return nil, nil, fmt.Errorf("validate series: %w", err)
	}

	if c.VolatilitySymbol != "" {
		volBars, err := c.Fetcher.FetchDailyBars(c.VolatilitySymbol, c.Days)
		if err != nil {
			log.Warnf("fetch volatility bars for %s failed, continuing without: %v", c.VolatilitySymbol, err)
		} else {
			volatility = &model.PriceSeries{Symbol: c.VolatilitySymbol, Bars: volBars, FetchedAt: time.Now()}
			if err := volatility.Validate(); err != nil {
				log.Warnf("volatility series invalid, continuing without: %v", err)
				volatility = nil
			}
		}
	}

	return series, volatility, nil
}
