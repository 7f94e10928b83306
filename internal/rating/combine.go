package rating

import (
	"math"
	"sort"
)

// Combine folds individual disability ratings into a single combined
// percentage using VA math: each rating, taken in descending order, consumes
// a share of the capacity the previous ratings left behind. The running total
// is rounded half-up to a whole percent after every step, and the final total
// is rounded to the nearest ten with a remainder of five rounding up.
//
// Values outside (0, 100] are dropped before combining. Combine never fails;
// an input with no usable ratings yields (0, nil). The caller's slice is not
// modified.
func Combine(ratings []float64) (int, []Step) {
	clean, _ := Filter(ratings)
	if len(clean) == 0 {
		return 0, nil
	}
	sort.Slice(clean, func(i, j int) bool {
		return clean[i] > clean[j]
	})

	combined := 0
	steps := make([]Step, 0, len(clean))
	for _, r := range clean {
		remaining := 100.0 - float64(combined)
		added := remaining * (r / 100.0)
		beforeRound := float64(combined) + added
		combined = roundHalfUp(beforeRound)
		steps = append(steps, Step{
			Rating:              r,
			RemainingBefore:     remaining,
			Added:               added,
			CombinedBeforeRound: beforeRound,
			CombinedAfterRound:  combined,
		})
	}

	return roundToTen(clampPercent(combined)), steps
}

// Filter returns the ratings that fall in (0, 100] along with the count of
// values that were dropped. The returned slice is a fresh allocation.
func Filter(ratings []float64) ([]float64, int) {
	clean := make([]float64, 0, len(ratings))
	for _, r := range ratings {
		if r > 0 && r <= 100 {
			clean = append(clean, r)
		}
	}
	return clean, len(ratings) - len(clean)
}

// Formula describes the per-step arithmetic for explain output.
func Formula() string {
	return "remaining = 100 - combined; added = remaining * (rating / 100); combined = roundHalfUp(combined + added)"
}

// math.Round rounds half away from zero, which for the non-negative totals
// produced here is exactly round-half-up.
func roundHalfUp(value float64) int {
	return int(math.Round(value))
}

func clampPercent(value int) int {
	if value < 0 {
		return 0
	}
	if value > 100 {
		return 100
	}
	return value
}

func roundToTen(value int) int {
	remainder := value % 10
	if remainder >= 5 {
		return value + (10 - remainder)
	}
	return value - remainder
}
