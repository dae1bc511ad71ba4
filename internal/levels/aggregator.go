package levels

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"

	"github.com/quangvo55/spx-levels/internal/model"
)

// DefaultGroupThreshold is the relative price distance under which adjacent
// levels merge into one group.
const DefaultGroupThreshold = 0.002

// Collect concatenates the output of every generator and sorts it ascending
// by price. The sort is stable, so levels at identical prices keep the order
// in which their generators were listed.
func Collect(sets ...[]model.Level) []model.Level {
	var all []model.Level
	for _, set := range sets {
		all = append(all, set...)
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].Price < all[j].Price })
	return all
}

// Group merges price-sorted levels in a single sequential pass: a level joins
// the currently open group only when it lies within threshold (relative) of
// the last level added to that group, not of the group's running mean. This
// makes membership order-and-threshold dependent rather than a global
// clustering; substituting a pairwise clustering would change output and must
// not be done. Each group's price is the arithmetic mean of its members and
// its strength is computed from the member sources. An empty input yields no
// groups.
func Group(all []model.Level, threshold float64) []model.LevelGroup {
	if len(all) == 0 {
		return nil
	}

	var groups []model.LevelGroup
	current := []model.Level{all[0]}

	flush := func() {
		prices := make([]float64, len(current))
		sources := make([]string, len(current))
		for i, lvl := range current {
			prices[i] = lvl.Price
			sources[i] = lvl.Source
		}
		mean, _ := stats.Mean(prices)
		groups = append(groups, model.LevelGroup{
			Price:    mean,
			Sources:  sources,
			Strength: Strength(sources),
		})
	}

	for _, lvl := range all[1:] {
		prev := current[len(current)-1].Price
		if math.Abs(lvl.Price-prev)/prev < threshold {
			current = append(current, lvl)
		} else {
			flush()
			current = []model.Level{lvl}
		}
	}
	flush()

	return groups
}

// Classify splits groups around the current price. Support lies strictly
// below; a group at exactly the current price counts as resistance.
func Classify(groups []model.LevelGroup, currentPrice float64) (support, resistance []model.LevelGroup) {
	for _, g := range groups {
		if g.Price < currentPrice {
			support = append(support, g)
		} else {
			resistance = append(resistance, g)
		}
	}
	return support, resistance
}

// RankByStrength sorts groups by descending strength. The sort is stable so
// ties keep their price order from the grouping pass.
func RankByStrength(groups []model.LevelGroup) {
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].Strength > groups[j].Strength })
}
