package analysis

import (
	"sort"

	"github.com/quangvo55/spx-levels/internal/model"
)

// DefaultVolumeBins is the number of price bins in the volume profile.
const DefaultVolumeBins = 100

// DefaultVolumeClusters is the number of top bins reported as levels.
const DefaultVolumeClusters = 10

// BuildVolumeProfile bins traded volume by price across [min Low, max High].
// Each bar contributes its full volume to the bin containing its midpoint
// (High+Low)/2. An empty series yields the zero profile. A degenerate range
// (min == max) collapses to a single bin holding all volume instead of
// dividing by zero.
func BuildVolumeProfile(series *model.PriceSeries, bins int) model.VolumeProfile {
	if series.Len() == 0 || bins <= 0 {
		return model.VolumeProfile{}
	}

	minPrice := series.Bars[0].Low
	maxPrice := series.Bars[0].High
	for _, b := range series.Bars {
		if b.Low < minPrice {
			minPrice = b.Low
		}
		if b.High > maxPrice {
			maxPrice = b.High
		}
	}

	if maxPrice == minPrice {
		total := 0.0
		for _, b := range series.Bars {
			total += b.Volume
		}
		return model.VolumeProfile{
			BinCenters: []float64{minPrice},
			Volumes:    []float64{total},
			MinPrice:   minPrice,
			MaxPrice:   maxPrice,
			BinSize:    0,
		}
	}

	binSize := (maxPrice - minPrice) / float64(bins)
	volumes := make([]float64, bins)
	for _, b := range series.Bars {
		mid := (b.High + b.Low) / 2
		idx := int((mid - minPrice) / binSize)
		if idx < 0 {
			idx = 0
		}
		if idx >= bins {
			idx = bins - 1 // midpoint exactly at the top of the range
		}
		volumes[idx] += b.Volume
	}

	centers := make([]float64, bins)
	for i := range centers {
		centers[i] = minPrice + (float64(i)+0.5)*binSize
	}

	return model.VolumeProfile{
		BinCenters: centers,
		Volumes:    volumes,
		MinPrice:   minPrice,
		MaxPrice:   maxPrice,
		BinSize:    binSize,
	}
}

// VolumeClusters returns the clusters highest-volume bins of the profile as
// levels priced at each bin's lower edge. Volume ties resolve stably in
// ascending price order.
func VolumeClusters(profile model.VolumeProfile, clusters int) []model.Level {
	n := len(profile.Volumes)
	if n == 0 || clusters <= 0 {
		return nil
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return profile.Volumes[idx[a]] > profile.Volumes[idx[b]] })

	if clusters > n {
		clusters = n
	}
	levels := make([]model.Level, 0, clusters)
	for _, i := range idx[:clusters] {
		levels = append(levels, model.Level{
			Price:  profile.BinCenters[i] - profile.BinSize/2,
			Source: "Volume cluster",
		})
	}
	return levels
}
