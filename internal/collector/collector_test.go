package collector

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quangvo55/spx-levels/internal/model"
)

// flakyFetcher fails for the symbols listed in fail and otherwise delegates
// to a MockFetcher.
type flakyFetcher struct {
	mock MockFetcher
	fail map[string]bool
}

func (f *flakyFetcher) Name() string { return "flaky" }

func (f *flakyFetcher) FetchDailyBars(symbol string, days int) ([]model.OHLCV, error) {
	if f.fail[symbol] {
		return nil, fmt.Errorf("upstream unavailable")
	}
	return f.mock.FetchDailyBars(symbol, days)
}

func TestCollect(t *testing.T) {
	c := NewCollector(&MockFetcher{Price: 5000}, "SPX500", "VIX", 100)

	series, volatility, err := c.Collect()
	require.NoError(t, err)

	require.NotNil(t, series)
	assert.Equal(t, "SPX500", series.Symbol)
	assert.Equal(t, 100, series.Len())
	assert.False(t, series.FetchedAt.IsZero())

	require.NotNil(t, volatility)
	assert.Equal(t, "VIX", volatility.Symbol)
	assert.Equal(t, 100, volatility.Len())
}

func TestCollect_NoVolatilitySymbol(t *testing.T) {
	c := NewCollector(&MockFetcher{Price: 5000}, "SPX500", "", 50)

	series, volatility, err := c.Collect()
	require.NoError(t, err)
	assert.NotNil(t, series)
	assert.Nil(t, volatility)
}

func TestCollect_PrimaryFetchFails(t *testing.T) {
	fetcher := &flakyFetcher{
		mock: MockFetcher{Price: 5000},
		fail: map[string]bool{"SPX500": true},
	}
	c := NewCollector(fetcher, "SPX500", "VIX", 100)

	_, _, err := c.Collect()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SPX500")
}

func TestCollect_VolatilityFetchFailureAbsorbed(t *testing.T) {
	fetcher := &flakyFetcher{
		mock: MockFetcher{Price: 5000},
		fail: map[string]bool{"VIX": true},
	}
	c := NewCollector(fetcher, "SPX500", "VIX", 100)

	series, volatility, err := c.Collect()
	require.NoError(t, err)
	assert.NotNil(t, series)
	assert.Nil(t, volatility)
}

func TestCollect_InvalidVolatilitySeriesAbsorbed(t *testing.T) {
	now := time.Now()
	dup := []model.OHLCV{
		{Time: now, Open: 20, High: 21, Low: 19, Close: 20, Volume: 0},
		{Time: now, Open: 20, High: 21, Low: 19, Close: 20, Volume: 0},
	}
	fetcher := &MockFetcher{Price: 5000, Data: map[string][]model.OHLCV{"VIX": dup}}
	c := NewCollector(fetcher, "SPX500", "VIX", 100)

	series, volatility, err := c.Collect()
	require.NoError(t, err)
	assert.NotNil(t, series)
	assert.Nil(t, volatility)
}

func TestCollect_InvalidPrimarySeriesFails(t *testing.T) {
	now := time.Now()
	dup := []model.OHLCV{
		{Time: now, Open: 1, High: 2, Low: 0.5, Close: 1, Volume: 0},
		{Time: now, Open: 1, High: 2, Low: 0.5, Close: 1, Volume: 0},
	}
	fetcher := &MockFetcher{Price: 5000, Data: map[string][]model.OHLCV{"SPX500": dup}}
	c := NewCollector(fetcher, "SPX500", "", 100)

	_, _, err := c.Collect()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validate series")
}

func TestMockFetcher(t *testing.T) {
	m := &MockFetcher{Price: 5000}
	bars, err := m.FetchDailyBars("ANY", 30)
	require.NoError(t, err)
	require.Len(t, bars, 30)
	for _, b := range bars {
		assert.Greater(t, b.High, b.Low)
		assert.Positive(t, b.Close)
	}
}
