package domain

// RebuildDecision is the outcome of comparing dependency timestamps against a ledger.
type RebuildDecision string

const (
	// RebuildIncremental reuses the existing compiler handle and only appends new utilities.
	RebuildIncremental RebuildDecision = "incremental"
	// RebuildFull recreates the compiler handle from the current source text.
	RebuildFull RebuildDecision = "full"
)

// String returns the decision label.
func (d RebuildDecision) String() string {
	return string(d)
}
