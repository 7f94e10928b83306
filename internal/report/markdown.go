package report

import (
	"fmt"
	"io"
	"strings"
)

// WriteMarkdown renders the calculation as a markdown summary with a step
// table.
func WriteMarkdown(w io.Writer, doc Document) {
	var b strings.Builder
	fmt.Fprintf(&b, "# Combined rating\n\n")
	fmt.Fprintf(&b, "- Final rating: %d%%\n", doc.FinalRating)
	fmt.Fprintf(&b, "- Conditions: %d\n", len(doc.Conditions))
	if doc.Dropped > 0 {
		fmt.Fprintf(&b, "- Dropped values: %d\n", doc.Dropped)
	}
	fmt.Fprintf(&b, "\n")

	fmt.Fprintf(&b, "| Condition | Rating |\n")
	fmt.Fprintf(&b, "| --- | --- |\n")
	for _, condition := range doc.Conditions {
		fmt.Fprintf(&b, "| %s | %s%% |\n", condition.Name, formatPercent(condition.Percent))
	}
	fmt.Fprintf(&b, "\n")

	fmt.Fprintf(&b, "| Step | Rating | Remaining before | Added | Before round | After round |\n")
	fmt.Fprintf(&b, "| --- | --- | --- | --- | --- | --- |\n")
	for i, step := range doc.Steps {
		fmt.Fprintf(&b, "| %d | %s%% | %.2f%% | %.2f%% | %.2f%% | %d%% |\n",
			i+1, formatPercent(step.Rating), step.RemainingBefore, step.Added, step.CombinedBeforeRound, step.CombinedAfterRound)
	}

	if doc.Explain != nil {
		fmt.Fprintf(&b, "\n## How computed\n\n")
		fmt.Fprintf(&b, "Formula: %s\n", doc.Explain.Formula)
		for _, note := range doc.Explain.Notes {
			fmt.Fprintf(&b, "- %s\n", note)
		}
	}

	io.WriteString(w, b.String())
}
