package analysis

import (
	"math"

	"github.com/quangvo55/spx-levels/internal/model"
)

// DefaultNearbyPct is the percentage window around current price that counts
// as "nearby" for round-number levels.
const DefaultNearbyPct = 2.0

// PsychologicalLevels emits round-number levels within nearbyPct of the
// current price. Multiples of 100 take priority over multiples of 50, which
// take priority over multiples of 25, so no numeric level is labeled twice.
func PsychologicalLevels(currentPrice, nearbyPct float64) []model.Level {
	span := currentPrice * nearbyPct / 100
	minPrice := currentPrice - span
	maxPrice := currentPrice + span

	var levels []model.Level
	for _, m := range roundMultiples(minPrice, maxPrice, 100) {
		levels = append(levels, model.Level{Price: float64(m), Source: "Round number (100s)"})
	}
	for _, m := range roundMultiples(minPrice, maxPrice, 50) {
		if m%100 != 0 {
			levels = append(levels, model.Level{Price: float64(m), Source: "Round number (50s)"})
		}
	}
	for _, m := range roundMultiples(minPrice, maxPrice, 25) {
		if m%50 != 0 {
			levels = append(levels, model.Level{Price: float64(m), Source: "Round number (25s)"})
		}
	}
	return levels
}

// roundMultiples lists the multiples of step inside [min, max], inclusive.
func roundMultiples(min, max float64, step int64) []int64 {
	first := int64(math.Ceil(min/float64(step))) * step
	last := int64(math.Floor(max/float64(step))) * step
	var out []int64
	for m := first; m <= last; m += step {
		out = append(out, m)
	}
	return out
}
