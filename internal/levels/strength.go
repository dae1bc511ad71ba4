package levels

import "strings"

// MaxStars caps the visual strength indicator.
const MaxStars = 5

// Strength scores a group by confluence. Every member source counts once,
// sources are not deduplicated. Volume-cluster and price-action members add an
// extra point each, and a group holding more than one Fibonacci member gains
// one extra point per Fibonacci member beyond the first.
func Strength(sources []string) int {
	strength := len(sources)

	fibCount := 0
	for _, src := range sources {
		if strings.Contains(src, "Volume") || strings.Contains(src, "price action") {
			strength++
		}
		if strings.Contains(src, "Fibonacci") {
			fibCount++
		}
	}
	if fibCount > 1 {
		strength += fibCount - 1
	}
	return strength
}

// StrengthStars renders a strength value as a row of stars, capped at MaxStars.
func StrengthStars(strength int) string {
	if strength < 0 {
		strength = 0
	}
	if strength > MaxStars {
		strength = MaxStars
	}
	return strings.Repeat("*", strength)
}
