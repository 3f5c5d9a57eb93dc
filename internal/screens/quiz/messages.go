package quiz

import "time"

// DefaultFeedbackDelay is how long correctness stays on screen before the
// next question is shown.
const DefaultFeedbackDelay = 900 * time.Millisecond

// advanceMsg fires when the feedback display period ends. Token identifies
// the schedule that produced it; a mismatch means it was cancelled.
type advanceMsg struct {
	Token uint64
}
