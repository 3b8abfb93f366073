package domain

import "time"

// BuildInfo records the last output written for an input stylesheet.
type BuildInfo struct {
	Input      string          `json:"input,omitzero"`
	Output     string          `json:"output,omitzero"`
	OutputHash string          `json:"output_hash,omitzero"`
	Decision   RebuildDecision `json:"decision,omitzero"`
	Timestamp  time.Time       `json:"timestamp,omitzero"`
}
