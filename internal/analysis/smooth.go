package analysis

import "github.com/montanaflynn/stats"

// RollingMean computes a simple moving average of window w over values.
// Positions where the window is incomplete are dropped, so the result holds
// len(values)-w+1 entries and result[i] covers values[i..i+w-1]. Returns nil
// when the input is shorter than the window.
func RollingMean(values []float64, w int) []float64 {
	if w <= 0 || len(values) < w {
		return nil
	}
	out := make([]float64, 0, len(values)-w+1)
	for i := 0; i+w <= len(values); i++ {
		m, _ := stats.Mean(values[i : i+w])
		out = append(out, m)
	}
	return out
}
