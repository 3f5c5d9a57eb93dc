package components

import (
	"fmt"
	"strings"

	"github.com/abhisek/quizbox/internal/quiz"
	"github.com/abhisek/quizbox/internal/ui/theme"
)

// MultiChoice renders a question with numbered choices. Statuses carries
// the per-choice presentation state; Cursor is the keyboard highlight.
type MultiChoice struct {
	Question string
	Options  []string
	Statuses []quiz.ChoiceStatus
	Cursor   int
}

// NewMultiChoice builds the component from the session's current question.
func NewMultiChoice(s *quiz.Session, cursor int) MultiChoice {
	q, ok := s.Current()
	if !ok {
		return MultiChoice{Cursor: -1}
	}
	statuses := make([]quiz.ChoiceStatus, len(q.Choices))
	for i := range q.Choices {
		statuses[i] = s.ChoiceStatus(i)
	}
	return MultiChoice{
		Question: q.Prompt,
		Options:  q.Choices,
		Statuses: statuses,
		Cursor:   cursor,
	}
}

// Revealed reports whether correctness is being shown.
func (m MultiChoice) Revealed() bool {
	for _, s := range m.Statuses {
		if s == quiz.ChoiceCorrect {
			return true
		}
	}
	return false
}

// View renders the question and its choices.
func (m MultiChoice) View(st *theme.Styles) string {
	var b strings.Builder
	b.WriteString(st.Body.Bold(true).Render(m.Question))
	b.WriteString("\n\n")

	revealed := m.Revealed()
	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Cursor && !revealed {
			prefix = "▸ "
		}
		status := quiz.ChoiceNeutral
		if i < len(m.Statuses) {
			status = m.Statuses[i]
		}

		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)
		switch status {
		case quiz.ChoiceCorrect:
			line = st.Correct.Render(line + "  ✓")
		case quiz.ChoiceWrong:
			line = st.Incorrect.Render(line + "  ✗")
		case quiz.ChoiceSelected:
			line = st.Selected.Render(line)
		default:
			if revealed {
				line = st.Dimmed.Render(line)
			} else {
				line = st.Unselected.Render(line)
			}
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}
