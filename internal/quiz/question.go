package quiz

import "fmt"

// Question is one quiz item. It is treated as immutable once loaded.
type Question struct {
	Prompt       string   `yaml:"prompt" json:"prompt"`
	Choices      []string `yaml:"choices" json:"choices"`
	CorrectIndex int      `yaml:"correct" json:"correct"`
}

// IsCorrect reports whether choice i is the correct answer.
func (q Question) IsCorrect(i int) bool {
	return i == q.CorrectIndex
}

// Validate checks the structural invariants of a question.
func (q Question) Validate() error {
	if q.Prompt == "" {
		return fmt.Errorf("%w: empty prompt", ErrInvalidQuestion)
	}
	if len(q.Choices) < 2 {
		return fmt.Errorf("%w: %q has %d choices, need at least 2", ErrInvalidQuestion, q.Prompt, len(q.Choices))
	}
	for i, c := range q.Choices {
		if c == "" {
			return fmt.Errorf("%w: %q choice %d is empty", ErrInvalidQuestion, q.Prompt, i+1)
		}
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Choices) {
		return fmt.Errorf("%w: %q correct index %d out of range [0,%d)",
			ErrInvalidQuestion, q.Prompt, q.CorrectIndex, len(q.Choices))
	}
	return nil
}

// clone returns a deep copy so callers cannot mutate loaded questions.
func (q Question) clone() Question {
	choices := make([]string, len(q.Choices))
	copy(choices, q.Choices)
	q.Choices = choices
	return q
}
