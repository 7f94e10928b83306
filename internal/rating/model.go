package rating

const SchemaVersion = "1.0"

// Step records the arithmetic for one individual rating folded into the
// running combined total. The sequence of steps is the full audit trail of a
// calculation and is reproducible bit-for-bit for the same input.
type Step struct {
	Rating              float64 `json:"rating" yaml:"rating"`
	RemainingBefore     float64 `json:"remainingBefore" yaml:"remainingBefore"`
	Added               float64 `json:"added" yaml:"added"`
	CombinedBeforeRound float64 `json:"combinedBeforeRound" yaml:"combinedBeforeRound"`
	CombinedAfterRound  int     `json:"combinedAfterRound" yaml:"combinedAfterRound"`
}
