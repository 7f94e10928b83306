package report

import (
	"fmt"
	"io"
	"strconv"
)

// Render writes the human-readable walk-through: sorted conditions, the
// per-step arithmetic, and the final combined rating.
func Render(w io.Writer, doc Document) {
	fmt.Fprintln(w, "Conditions (sorted by rating):")
	for _, condition := range doc.Conditions {
		fmt.Fprintf(w, "  - %s: %s%%\n", condition.Name, formatPercent(condition.Percent))
	}
	if doc.Dropped > 0 {
		fmt.Fprintf(w, "  (%d value(s) outside (0, 100] dropped)\n", doc.Dropped)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Calculation steps:")
	for i, step := range doc.Steps {
		fmt.Fprintf(w, "Step %d: %s%% condition\n", i+1, formatPercent(step.Rating))
		fmt.Fprintf(w, "  Remaining before: %.2f%%\n", step.RemainingBefore)
		fmt.Fprintf(w, "  Added: %.2f%%\n", step.Added)
		fmt.Fprintf(w, "  Combined before round: %.2f%%\n", step.CombinedBeforeRound)
		fmt.Fprintf(w, "  Combined after round: %d%%\n", step.CombinedAfterRound)
		fmt.Fprintln(w, "")
	}

	fmt.Fprintf(w, "Final combined rating (rounded to nearest 10): %d%%\n", doc.FinalRating)

	if doc.Explain != nil {
		fmt.Fprintln(w, "")
		fmt.Fprintf(w, "Formula: %s\n", doc.Explain.Formula)
		for _, note := range doc.Explain.Notes {
			fmt.Fprintf(w, "- %s\n", note)
		}
	}
}

func formatPercent(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
