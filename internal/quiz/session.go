package quiz

import "fmt"

// State is the progression state of a Session.
type State int

const (
	StateAwaitingSelection State = iota // No answer locked in for the current question
	StateAnswered                       // Answer scored, waiting for Advance
	StateFinished                       // Every question has been answered
)

func (s State) String() string {
	switch s {
	case StateAwaitingSelection:
		return "awaiting-selection"
	case StateAnswered:
		return "answered"
	case StateFinished:
		return "finished"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// ChoiceStatus describes how a choice should be presented.
type ChoiceStatus int

const (
	ChoiceNeutral ChoiceStatus = iota
	ChoiceSelected
	ChoiceCorrect
	ChoiceWrong
)

// Result is the final score of a finished session.
type Result struct {
	Score int
	Total int
}

// Percent returns the score as a fraction in [0,1].
func (r Result) Percent() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Score) / float64(r.Total)
}

func (r Result) String() string {
	return fmt.Sprintf("%d / %d correct", r.Score, r.Total)
}

const noSelection = -1

// Session is one run through an ordered, fixed set of questions.
// It is not safe for concurrent use; the UI drives it from a single loop.
type Session struct {
	questions []Question
	current   int
	selected  int
	score     int
	answered  bool
}

// NewSession creates a session positioned at the first question.
// The questions are copied and must already be valid.
func NewSession(questions []Question) *Session {
	qs := make([]Question, len(questions))
	for i, q := range questions {
		qs[i] = q.clone()
	}
	s := &Session{questions: qs}
	s.Restart()
	return s
}

// Restart resets progress to the first question with a zero score.
func (s *Session) Restart() {
	s.current = 0
	s.selected = noSelection
	s.score = 0
	s.answered = false
}

// State returns the current progression state.
func (s *Session) State() State {
	switch {
	case s.current >= len(s.questions):
		return StateFinished
	case s.answered:
		return StateAnswered
	default:
		return StateAwaitingSelection
	}
}

// Select records choice i for the current question. Selecting the same
// choice twice is a no-op; a different choice replaces the previous one.
func (s *Session) Select(i int) error {
	if s.State() != StateAwaitingSelection {
		return fmt.Errorf("%w: question already answered", ErrInvalidSelection)
	}
	q := s.questions[s.current]
	if i < 0 || i >= len(q.Choices) {
		return fmt.Errorf("%w: index %d out of range [0,%d)", ErrInvalidSelection, i, len(q.Choices))
	}
	s.selected = i
	return nil
}

// Submit scores the current selection. A correct answer adds exactly one
// point. Submitting again before Advance returns the same outcome without
// scoring twice.
func (s *Session) Submit() (bool, error) {
	switch s.State() {
	case StateFinished:
		return false, ErrFinished
	case StateAnswered:
		return s.questions[s.current].IsCorrect(s.selected), nil
	}
	if s.selected == noSelection {
		return false, ErrNoSelection
	}

	correct := s.questions[s.current].IsCorrect(s.selected)
	if correct {
		s.score++
	}
	s.answered = true
	return correct, nil
}

// Advance moves past an answered question and reports whether it moved.
// It is a no-op unless the current question has been submitted.
func (s *Session) Advance() bool {
	if s.State() != StateAnswered {
		return false
	}
	s.current++
	s.selected = noSelection
	s.answered = false
	return true
}

// Result returns the final score. It fails with ErrPrematureResult until
// the session is finished.
func (s *Session) Result() (Result, error) {
	if s.State() != StateFinished {
		return Result{}, ErrPrematureResult
	}
	return Result{Score: s.score, Total: len(s.questions)}, nil
}

// MustResult is like Result but panics before the session is finished.
func (s *Session) MustResult() Result {
	r, err := s.Result()
	if err != nil {
		panic(fmt.Sprintf("quiz: %v (state %s)", err, s.State()))
	}
	return r
}

// Current returns the question being asked, or false once finished.
func (s *Session) Current() (Question, bool) {
	if s.current >= len(s.questions) {
		return Question{}, false
	}
	return s.questions[s.current], true
}

// Selected returns the selected choice for the current question, if any.
func (s *Session) Selected() (int, bool) {
	if s.selected == noSelection {
		return 0, false
	}
	return s.selected, true
}

// Index returns the zero-based index of the current question.
func (s *Session) Index() int { return s.current }

// Total returns the number of questions in the session.
func (s *Session) Total() int { return len(s.questions) }

// Score returns the number of correct answers so far.
func (s *Session) Score() int { return s.score }

// Answered returns how many questions have been scored, counting the
// current one once it is submitted.
func (s *Session) Answered() int {
	if s.answered {
		return s.current + 1
	}
	return s.current
}

// ChoiceStatus reports how choice i of the current question should be shown.
// Correct and Wrong are only reported after the question is answered.
func (s *Session) ChoiceStatus(i int) ChoiceStatus {
	q, ok := s.Current()
	if !ok || i < 0 || i >= len(q.Choices) {
		return ChoiceNeutral
	}
	if s.answered {
		switch {
		case q.IsCorrect(i):
			return ChoiceCorrect
		case i == s.selected:
			return ChoiceWrong
		}
		return ChoiceNeutral
	}
	if i == s.selected {
		return ChoiceSelected
	}
	return ChoiceNeutral
}
