// Package window computes the accounting window usage is counted over: the
// server-local calendar day containing a given instant.
package window

import "time"

// Window is the half-open interval [Start, End) of one accounting period.
type Window struct {
	Start time.Time
	End   time.Time
}

// Current returns the window containing now. Boundaries align to midnight in
// now's location, so the window rolls over at the server-local date change.
func Current(now time.Time) Window {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return Window{
		Start: start,
		End:   start.AddDate(0, 0, 1),
	}
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}
