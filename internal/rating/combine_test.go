package rating

import (
	"math"
	"testing"
)

func TestCombineEmpty(t *testing.T) {
	final, steps := Combine(nil)
	if final != 0 {
		t.Fatalf("expected 0, got %d", final)
	}
	if len(steps) != 0 {
		t.Fatalf("expected no steps, got %d", len(steps))
	}
}

func TestCombineAllFiltered(t *testing.T) {
	final, steps := Combine([]float64{150, -5, 0})
	if final != 0 {
		t.Fatalf("expected 0, got %d", final)
	}
	if len(steps) != 0 {
		t.Fatalf("expected no steps, got %d", len(steps))
	}
}

func TestCombineSingle(t *testing.T) {
	final, steps := Combine([]float64{50})
	if final != 50 {
		t.Fatalf("expected 50, got %d", final)
	}
	if len(steps) != 1 {
		t.Fatalf("expected 1 step, got %d", len(steps))
	}
	step := steps[0]
	if step.Rating != 50 || step.RemainingBefore != 100 || step.Added != 50 {
		t.Fatalf("unexpected step %+v", step)
	}
	if step.CombinedBeforeRound != 50 || step.CombinedAfterRound != 50 {
		t.Fatalf("unexpected step totals %+v", step)
	}
}

func TestCombineTwoRatings(t *testing.T) {
	final, steps := Combine([]float64{50, 30})
	if final != 70 {
		t.Fatalf("expected 70, got %d", final)
	}
	if len(steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(steps))
	}
	second := steps[1]
	if second.RemainingBefore != 50 {
		t.Fatalf("expected remaining 50, got %v", second.RemainingBefore)
	}
	if second.Added != 15 {
		t.Fatalf("expected added 15, got %v", second.Added)
	}
	if second.CombinedBeforeRound != 65 || second.CombinedAfterRound != 65 {
		t.Fatalf("unexpected totals %+v", second)
	}
}

func TestCombineFinalRounding(t *testing.T) {
	cases := []struct {
		name    string
		ratings []float64
		want    int
	}{
		{"half-rounds-up", []float64{50, 30}, 70},
		{"intermediate-half-up", []float64{50, 30, 10}, 70},
		{"rounds-down", []float64{60, 10}, 60},
		{"rounds-up", []float64{20, 20}, 40},
		{"full", []float64{100}, 100},
		{"already-ten", []float64{40}, 40},
		{"fractional", []float64{12.5}, 10},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			final, _ := Combine(tc.ratings)
			if final != tc.want {
				t.Fatalf("Combine(%v)=%d, want %d", tc.ratings, final, tc.want)
			}
		})
	}
}

func TestCombineMultipleOfTen(t *testing.T) {
	for _, ratings := range [][]float64{{10}, {30, 30}, {70, 50, 20}, {95, 95, 95}, {1, 1, 1}} {
		final, _ := Combine(ratings)
		if final < 0 || final > 100 {
			t.Fatalf("Combine(%v)=%d out of range", ratings, final)
		}
		if final%10 != 0 {
			t.Fatalf("Combine(%v)=%d not a multiple of ten", ratings, final)
		}
	}
}

func TestCombineStepTotalsInRange(t *testing.T) {
	_, steps := Combine([]float64{95, 80, 60, 40, 20, 10})
	for i, step := range steps {
		if step.CombinedAfterRound < 0 || step.CombinedAfterRound > 100 {
			t.Fatalf("step %d total %d out of range", i, step.CombinedAfterRound)
		}
		if i > 0 && step.RemainingBefore != float64(100-steps[i-1].CombinedAfterRound) {
			t.Fatalf("step %d remaining %v does not follow previous total %d", i, step.RemainingBefore, steps[i-1].CombinedAfterRound)
		}
	}
}

func TestCombineOrderIndependent(t *testing.T) {
	finalA, stepsA := Combine([]float64{10, 50, 30})
	finalB, stepsB := Combine([]float64{50, 30, 10})
	if finalA != finalB {
		t.Fatalf("finals differ: %d vs %d", finalA, finalB)
	}
	if len(stepsA) != len(stepsB) {
		t.Fatalf("step counts differ: %d vs %d", len(stepsA), len(stepsB))
	}
	for i := range stepsA {
		if stepsA[i] != stepsB[i] {
			t.Fatalf("step %d differs: %+v vs %+v", i, stepsA[i], stepsB[i])
		}
	}
}

func TestCombineRepeatable(t *testing.T) {
	input := []float64{30, 90, 20}
	finalA, stepsA := Combine(input)
	finalB, stepsB := Combine(input)
	if finalA != finalB || len(stepsA) != len(stepsB) {
		t.Fatalf("repeat call differs: (%d,%d) vs (%d,%d)", finalA, len(stepsA), finalB, len(stepsB))
	}
	for i := range stepsA {
		if stepsA[i] != stepsB[i] {
			t.Fatalf("step %d differs between calls", i)
		}
	}
}

func TestCombineDoesNotMutateInput(t *testing.T) {
	input := []float64{10, 50, 30, -4}
	Combine(input)
	want := []float64{10, 50, 30, -4}
	for i := range input {
		if input[i] != want[i] {
			t.Fatalf("input mutated at %d: %v", i, input)
		}
	}
}

func TestFilter(t *testing.T) {
	cases := []struct {
		name    string
		ratings []float64
		want    int
		dropped int
	}{
		{"all-valid", []float64{10, 100, 0.5}, 3, 0},
		{"zero", []float64{0}, 0, 1},
		{"negative", []float64{-1, 20}, 1, 1},
		{"over-hundred", []float64{100.01, 20}, 1, 1},
		{"nan", []float64{math.NaN(), 20}, 1, 1},
		{"inf", []float64{math.Inf(1), math.Inf(-1)}, 0, 2},
		{"empty", nil, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clean, dropped := Filter(tc.ratings)
			if len(clean) != tc.want {
				t.Fatalf("expected %d kept, got %v", tc.want, clean)
			}
			if dropped != tc.dropped {
				t.Fatalf("expected %d dropped, got %d", tc.dropped, dropped)
			}
		})
	}
}
