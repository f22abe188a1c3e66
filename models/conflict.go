package models

import "strings"

// ConflictReport is the tagged result of a conflict check. It is recomputed
// wholesale from the trip plan on every invocation; the loose Conflict /
// ConflictReason fields on SessionState are derived from it.
type ConflictReport struct {
	Conflict bool     `json:"conflict"`
	Reasons  []string `json:"reasons,omitempty"`
}

// Reason joins all triggered reasons into the single compatibility string
// stored on the session state.
func (r ConflictReport) Reason() string {
	return strings.Join(r.Reasons, "; ")
}
