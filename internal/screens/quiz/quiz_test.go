package quiz

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	qz "github.com/abhisek/quizbox/internal/quiz"
	"github.com/abhisek/quizbox/internal/router"
	"github.com/abhisek/quizbox/internal/screens/result"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testScreen() *QuizScreen {
	s := qz.NewSession([]qz.Question{
		{Prompt: "Pick a", Choices: []string{"a", "b"}, CorrectIndex: 0},
		{Prompt: "Pick c", Choices: []string{"a", "b", "c"}, CorrectIndex: 2},
	})
	return New(s, Options{})
}

// press sends msg and returns the command it produced.
func press(t *testing.T, q *QuizScreen, msg tea.Msg) tea.Cmd {
	t.Helper()
	next, cmd := q.Update(msg)
	require.Same(t, q, next)
	return cmd
}

func TestQuizScreen_Title(t *testing.T) {
	q := testScreen()
	assert.Equal(t, "Question 1 / 2", q.Title())
}

func TestQuizScreen_NextDisabledUntilSelection(t *testing.T) {
	q := testScreen()
	assert.False(t, q.keys.Next.Enabled())

	cmd := press(t, q, specialKey(tea.KeyEnter))
	assert.Nil(t, cmd)
	assert.Equal(t, qz.StateAwaitingSelection, q.Session().State())

	press(t, q, keyPress('2'))
	assert.True(t, q.keys.Next.Enabled())
	sel, ok := q.Session().Selected()
	require.True(t, ok)
	assert.Equal(t, 1, sel)
}

func TestQuizScreen_DigitOutOfRangeIgnored(t *testing.T) {
	q := testScreen()
	press(t, q, keyPress('9'))

	_, ok := q.Session().Selected()
	assert.False(t, ok)
	assert.False(t, q.keys.Next.Enabled())
}

func TestQuizScreen_ArrowsMoveSelection(t *testing.T) {
	q := testScreen()

	press(t, q, specialKey(tea.KeyDown))
	sel, _ := q.Session().Selected()
	assert.Equal(t, 0, sel, "first move selects the highlighted choice")

	press(t, q, specialKey(tea.KeyDown))
	sel, _ = q.Session().Selected()
	assert.Equal(t, 1, sel)

	press(t, q, specialKey(tea.KeyDown))
	sel, _ = q.Session().Selected()
	assert.Equal(t, 1, sel, "stays on the last choice")

	press(t, q, keyPress('k'))
	sel, _ = q.Session().Selected()
	assert.Equal(t, 0, sel)
}

func TestQuizScreen_SubmitSchedulesAdvance(t *testing.T) {
	q := testScreen()
	press(t, q, keyPress('1'))

	cmd := press(t, q, specialKey(tea.KeyEnter))
	require.NotNil(t, cmd)
	assert.True(t, q.Pending())
	assert.Equal(t, qz.StateAnswered, q.Session().State())
	assert.Equal(t, 1, q.Session().Score())
	assert.Contains(t, q.View(80, 24), "Correct!")

	press(t, q, advanceMsg{Token: q.pending})
	assert.False(t, q.Pending())
	assert.Equal(t, 1, q.Session().Index())
	assert.Equal(t, "Question 2 / 2", q.Title())
}

func TestQuizScreen_DoubleEnterSchedulesOnce(t *testing.T) {
	q := testScreen()
	press(t, q, keyPress('1'))

	require.NotNil(t, press(t, q, specialKey(tea.KeyEnter)))
	token := q.pending

	assert.Nil(t, press(t, q, specialKey(tea.KeyEnter)))
	assert.Equal(t, token, q.pending)
	assert.Equal(t, 1, q.Session().Score(), "score counted once")

	press(t, q, advanceMsg{Token: token})
	press(t, q, advanceMsg{Token: token})
	assert.Equal(t, 1, q.Session().Index(), "advanced exactly once")
}

func TestQuizScreen_SelectionLockedWhileAnswered(t *testing.T) {
	q := testScreen()
	press(t, q, keyPress('2'))
	press(t, q, specialKey(tea.KeyEnter))

	press(t, q, keyPress('1'))
	sel, _ := q.Session().Selected()
	assert.Equal(t, 1, sel)
	assert.Equal(t, 0, q.Session().Score())
	assert.Contains(t, q.View(80, 24), "Not quite.")
}

func TestQuizScreen_RestartCancelsPendingAdvance(t *testing.T) {
	q := testScreen()
	press(t, q, keyPress('1'))
	press(t, q, specialKey(tea.KeyEnter))
	stale := q.pending

	press(t, q, keyPress('r'))
	assert.False(t, q.Pending())
	assert.Equal(t, 0, q.Session().Score())

	press(t, q, advanceMsg{Token: stale})
	assert.Equal(t, 0, q.Session().Index(), "stale tick ignored")
	assert.Equal(t, qz.StateAwaitingSelection, q.Session().State())

	// A new schedule after restart is not confused with the stale one.
	press(t, q, keyPress('1'))
	press(t, q, specialKey(tea.KeyEnter))
	assert.NotEqual(t, stale, q.pending)
	press(t, q, advanceMsg{Token: stale})
	assert.Equal(t, 0, q.Session().Index())
	press(t, q, advanceMsg{Token: q.pending})
	assert.Equal(t, 1, q.Session().Index())
}

func TestQuizScreen_FinishReplacesWithResult(t *testing.T) {
	q := testScreen()

	press(t, q, keyPress('1'))
	press(t, q, specialKey(tea.KeyEnter))
	press(t, q, advanceMsg{Token: q.pending})

	press(t, q, keyPress('1'))
	press(t, q, specialKey(tea.KeyEnter))
	cmd := press(t, q, advanceMsg{Token: q.pending})
	require.NotNil(t, cmd)

	msg, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok)
	rs, ok := msg.Screen.(*result.ResultScreen)
	require.True(t, ok)
	assert.Equal(t, qz.Result{Score: 1, Total: 2}, rs.Result())
	assert.Contains(t, rs.View(80, 24), "1 / 2 correct")

	// Try again restarts and returns to this screen.
	_, cmd = rs.Update(keyPress('r'))
	require.NotNil(t, cmd)
	back, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok)
	assert.Same(t, q, back.Screen)
	assert.Equal(t, 0, q.Session().Index())
	assert.Equal(t, 0, q.Session().Score())
}

func TestQuizScreen_KeyHints(t *testing.T) {
	q := testScreen()
	hints := q.KeyHints()
	for _, h := range hints {
		assert.NotEqual(t, "Enter", h.Key, "Next hidden without a selection")
	}

	press(t, q, keyPress('1'))
	var keys []string
	for _, h := range q.KeyHints() {
		keys = append(keys, h.Key)
	}
	assert.Contains(t, keys, "Enter")
}

func TestQuizScreen_View(t *testing.T) {
	q := testScreen()
	view := q.View(80, 30)

	assert.Contains(t, view, "Pick a")
	assert.Contains(t, view, "1)  a")
	assert.Contains(t, view, "2)  b")
	assert.Contains(t, view, "Next")
	assert.Contains(t, view, "0%")
}
