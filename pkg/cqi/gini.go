// Package cqi computes the Collaboration Quality Index: component scores
// over per-author effort aggregates, penalty multipliers, and the
// pair-programming attendance score.
package cqi

// Gini computes the Gini coefficient of a non-negative vector:
// Σᵢⱼ|vᵢ−vⱼ| / (2n·Σv). Zero for perfect equality, approaching one for
// total concentration. A zero-sum vector counts as maximal inequality.
func Gini(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}
	if sum == 0 {
		return 1
	}

	var diffs float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			d := values[i] - values[j]
			if d < 0 {
				d = -d
			}
			diffs += d
		}
	}
	return diffs / (2 * float64(n) * sum)
}
