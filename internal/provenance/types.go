package provenance

import "time"

// #region types

// Entry records one routing decision for later audit: which path handled a
// question, at what confidence, and why.
type Entry struct {
	SessionID  string
	UserID     string
	Question   string
	Decision   string
	Confidence float64
	Reasoning  string
	CreatedAt  time.Time
}

// #endregion types
