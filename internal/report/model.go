package report

import (
	"fmt"

	"github.com/jtallent/varate/internal/entry"
	"github.com/jtallent/varate/internal/rating"
)

// Document is the full output of one calculation: the conditions that went
// in, the step trace, and the final combined rating.
type Document struct {
	SchemaVersion string        `json:"schemaVersion" yaml:"schemaVersion"`
	Conditions    []entry.Entry `json:"conditions" yaml:"conditions"`
	Dropped       int           `json:"dropped" yaml:"dropped"`
	Steps         []rating.Step `json:"steps" yaml:"steps"`
	FinalRating   int           `json:"finalRating" yaml:"finalRating"`
	Explain       *Explain      `json:"explain,omitempty" yaml:"explain,omitempty"`
}

type Explain struct {
	Formula string   `json:"formula" yaml:"formula"`
	Notes   []string `json:"notes" yaml:"notes"`
}

type Options struct {
	Explain bool
}

// Build assembles the output document. Conditions are re-sorted descending so
// the display order matches the engine's processing order.
func Build(entries []entry.Entry, finalRating int, steps []rating.Step, dropped int, opts Options) Document {
	sorted := make([]entry.Entry, len(entries))
	copy(sorted, entries)
	entry.SortByPercentDesc(sorted)

	doc := Document{
		SchemaVersion: rating.SchemaVersion,
		Conditions:    sorted,
		Dropped:       dropped,
		Steps:         steps,
		FinalRating:   finalRating,
	}
	if opts.Explain {
		notes := []string{"final rating rounds to the nearest ten; a remainder of five or more rounds up"}
		if dropped > 0 {
			notes = append(notes, fmt.Sprintf("%d value(s) outside (0, 100] were dropped before combining", dropped))
		}
		doc.Explain = &Explain{
			Formula: rating.Formula(),
			Notes:   notes,
		}
	}
	return doc
}
