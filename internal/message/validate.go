package message

import "time"

// Reason classifies why the validity filter rejected a message. The empty
// string means the message is acceptable.
type Reason string

const (
	ReasonOK        Reason = ""
	ReasonNoDate    Reason = "no date"
	ReasonNoContent Reason = "no content"
	ReasonPreLaunch Reason = "date precedes group launch"
)

// Validator rejects corrupt, undated or content-less messages before they
// enter a thread.
type Validator struct {
	// Cutoff is the group registration epoch. Its calendar date is
	// compared against the message's wall clock in the message's own zone
	// offset; garbage timestamps from malformed headers land far before
	// any group existed and are caught here.
	Cutoff time.Time
}

// NewValidator returns a Validator with the Yahoo Groups registration epoch
// as cutoff.
func NewValidator() Validator {
	return Validator{Cutoff: time.Date(1998, time.January, 1, 0, 0, 0, 0, time.UTC)}
}

// Check classifies m. Rejection is a per-message outcome; callers tally
// reasons and continue the run.
func (v Validator) Check(m Message) Reason {
	d := m.Date()
	if d.IsZero() {
		return ReasonNoDate
	}
	if m.HTMLContent() == "" {
		return ReasonNoContent
	}
	cutoff := time.Date(v.Cutoff.Year(), v.Cutoff.Month(), v.Cutoff.Day(), 0, 0, 0, 0, d.Location())
	if d.Before(cutoff) {
		return ReasonPreLaunch
	}
	return ReasonOK
}

// Valid reports whether m passes Check.
func (v Validator) Valid(m Message) bool { return v.Check(m) == ReasonOK }
