package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quangvo55/spx-levels/internal/model"
)

func bar(n int, high, low, volume float64) model.OHLCV {
	return model.OHLCV{
		Time:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n),
		Open:   (high + low) / 2,
		High:   high,
		Low:    low,
		Close:  (high + low) / 2,
		Volume: volume,
	}
}

func TestBuildVolumeProfile(t *testing.T) {
	t.Run("empty series yields empty profile", func(t *testing.T) {
		s := &model.PriceSeries{Symbol: "TEST"}
		p := BuildVolumeProfile(s, 100)
		assert.Empty(t, p.BinCenters)
		assert.Empty(t, p.Volumes)
	})

	t.Run("volume lands in the bin of the bar midpoint", func(t *testing.T) {
		s := &model.PriceSeries{Bars: []model.OHLCV{
			bar(0, 110, 90, 500),  // midpoint 100
			bar(1, 200, 180, 800), // midpoint 190
		}}
		p := BuildVolumeProfile(s, 10)

		require.Len(t, p.Volumes, 10)
		assert.Equal(t, 90.0, p.MinPrice)
		assert.Equal(t, 200.0, p.MaxPrice)
		assert.InDelta(t, 11.0, p.BinSize, 1e-9)
		assert.Equal(t, 500.0, p.Volumes[0])
		assert.Equal(t, 800.0, p.Volumes[9])
		assert.InDelta(t, 95.5, p.BinCenters[0], 1e-9)
	})

	t.Run("degenerate price range collapses to one bin", func(t *testing.T) {
		s := &model.PriceSeries{Bars: []model.OHLCV{
			bar(0, 100, 100, 300),
			bar(1, 100, 100, 700),
		}}
		p := BuildVolumeProfile(s, 100)
		require.Len(t, p.Volumes, 1)
		assert.Equal(t, 1000.0, p.Volumes[0])
		assert.Equal(t, 100.0, p.BinCenters[0])
		assert.Equal(t, 0.0, p.BinSize)
	})

	t.Run("midpoint at the top of the range stays in the last bin", func(t *testing.T) {
		s := &model.PriceSeries{Bars: []model.OHLCV{
			bar(0, 110, 90, 100),
			bar(1, 200, 200, 900), // midpoint exactly at max
		}}
		p := BuildVolumeProfile(s, 10)
		assert.Equal(t, 900.0, p.Volumes[9])
	})
}

func TestVolumeClusters(t *testing.T) {
	t.Run("empty profile yields no clusters", func(t *testing.T) {
		assert.Nil(t, VolumeClusters(model.VolumeProfile{}, 10))
	})

	t.Run("top bins by volume, priced at the lower edge", func(t *testing.T) {
		s := &model.PriceSeries{Bars: []model.OHLCV{
			bar(0, 110, 90, 500),
			bar(1, 200, 180, 800),
		}}
		p := BuildVolumeProfile(s, 10)

		clusters := VolumeClusters(p, 2)
		require.Len(t, clusters, 2)
		assert.InDelta(t, 189.0, clusters[0].Price, 1e-9) // 800 first
		assert.InDelta(t, 90.0, clusters[1].Price, 1e-9)
		for _, c := range clusters {
			assert.Equal(t, "Volume cluster", c.Source)
		}
	})

	t.Run("volume ties resolve in ascending price order", func(t *testing.T) {
		p := model.VolumeProfile{
			BinCenters: []float64{105, 115, 125},
			Volumes:    []float64{500, 500, 100},
			MinPrice:   100,
			MaxPrice:   130,
			BinSize:    10,
		}
		clusters := VolumeClusters(p, 2)
		require.Len(t, clusters, 2)
		assert.Equal(t, 100.0, clusters[0].Price)
		assert.Equal(t, 110.0, clusters[1].Price)
	})

	t.Run("cluster count capped at bin count", func(t *testing.T) {
		p := model.VolumeProfile{
			BinCenters: []float64{105},
			Volumes:    []float64{500},
			BinSize:    10,
		}
		assert.Len(t, VolumeClusters(p, 10), 1)
	})
}
