package model

import "fmt"

// Warning reasons emitted by record validation.
const (
	ReasonDefaulted = "missing/invalid, defaulted to 0"
	ReasonClipped   = "negative, clipped to 0"
	ReasonNoName    = "missing name"
)

// Warning records a per-field sanitization applied during validation.
// Warnings are data, not errors: the row still produces a record.
type Warning struct {
	Row    int    `json:"row"`
	Player string `json:"player,omitempty"`
	Field  string `json:"field"`
	Value  string `json:"value,omitempty"`
	Reason string `json:"reason"`
}

// String renders the warning the way the CLI logs it.
func (w Warning) String() string {
	who := w.Player
	if who == "" {
		who = fmt.Sprintf("row %d", w.Row)
	}
	return fmt.Sprintf("%s: %s %s", who, w.Field, w.Reason)
}

// SkippedRow records a data row dropped during validation.
type SkippedRow struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}
