package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	qz "github.com/abhisek/quizbox/internal/quiz"
	"github.com/abhisek/quizbox/internal/ui/components"
	"github.com/abhisek/quizbox/internal/ui/layout"
)

func (q *QuizScreen) View(width, height int) string {
	if q.session.State() == qz.StateFinished {
		return ""
	}
	st := q.styles
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(components.NewMultiChoice(q.session, q.cursor).View(st))

	if q.session.State() == qz.StateAnswered {
		b.WriteString("\n")
		b.WriteString(q.renderFeedback())
		b.WriteString("\n")
	}

	card := components.Card(st, strings.TrimRight(b.String(), "\n"), cw)

	next := components.NewButton("Next", q.keys.Next.Enabled()).View(st)
	score := st.Dimmed.Render(fmt.Sprintf("Score: %d", q.session.Score()))
	pad := cw - lipgloss.Width(score) - lipgloss.Width(next)
	if pad < 1 {
		pad = 1
	}
	controls := lipgloss.JoinHorizontal(lipgloss.Center, score, strings.Repeat(" ", pad), next)

	parts := []string{card, "", controls}
	if !layout.IsCompactHeight(height) {
		pct := float64(q.session.Answered()) / float64(q.session.Total())
		parts = append(parts, "", components.NewProgressBar("", pct, true, cw).View(st))
	}

	return components.Center(lipgloss.JoinVertical(lipgloss.Left, parts...), width, height)
}

// renderFeedback reports the outcome of the answered question.
func (q *QuizScreen) renderFeedback() string {
	cur, ok := q.session.Current()
	if !ok {
		return ""
	}
	sel, _ := q.session.Selected()
	if cur.IsCorrect(sel) {
		return q.styles.Correct.Render("Correct!")
	}
	return q.styles.Incorrect.Render("Not quite.") + " " +
		q.styles.Dimmed.Render("Answer: "+cur.Choices[cur.CorrectIndex])
}
