// Package quiz implements the question screen: it draws the current
// question, turns key presses into session operations, and owns the
// delayed advance after an answer is revealed.
package quiz

import (
	"fmt"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/abhisek/quizbox/internal/logging"
	qz "github.com/abhisek/quizbox/internal/quiz"
	"github.com/abhisek/quizbox/internal/router"
	"github.com/abhisek/quizbox/internal/screen"
	"github.com/abhisek/quizbox/internal/screens/result"
	"github.com/abhisek/quizbox/internal/ui/layout"
	"github.com/abhisek/quizbox/internal/ui/theme"
)

// Options configures a QuizScreen. Zero values get defaults.
type Options struct {
	Styles *theme.Styles
	Logger *logging.Logger
	Delay  time.Duration
}

// QuizScreen implements screen.Screen for an active quiz session.
type QuizScreen struct {
	session *qz.Session
	styles  *theme.Styles
	log     *logging.Logger
	delay   time.Duration
	keys    keyMap
	cursor  int
	runID   string

	// token is the last schedule issued; pending is the one still
	// expected to fire, or 0 when no advance is scheduled.
	token   uint64
	pending uint64
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen driving s.
func New(s *qz.Session, opts Options) *QuizScreen {
	if opts.Styles == nil {
		opts.Styles = theme.New(true)
	}
	if opts.Logger == nil {
		opts.Logger = logging.Nop()
	}
	if opts.Delay <= 0 {
		opts.Delay = DefaultFeedbackDelay
	}
	q := &QuizScreen{
		session: s,
		styles:  opts.Styles,
		log:     opts.Logger,
		delay:   opts.Delay,
		keys:    newKeyMap(),
		runID:   uuid.NewString(),
	}
	q.syncKeys()
	return q
}

func (q *QuizScreen) Init() tea.Cmd {
	q.log.Info("quiz started", "run_id", q.runID, "questions", q.session.Total())
	return nil
}

func (q *QuizScreen) Title() string {
	total := q.session.Total()
	n := q.session.Index() + 1
	if n > total {
		n = total
	}
	return fmt.Sprintf("Question %d / %d", n, total)
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	return q.keys.hints()
}

// Session returns the session driven by this screen.
func (q *QuizScreen) Session() *qz.Session {
	return q.session
}

// Pending reports whether an advance is scheduled.
func (q *QuizScreen) Pending() bool {
	return q.pending != 0
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case advanceMsg:
		return q.handleAdvance(msg)
	case tea.KeyPressMsg:
		return q.handleKey(msg)
	}
	return q, nil
}

// handleKey dispatches a key press. Disabled bindings never match.
func (q *QuizScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch {
	case key.Matches(msg, q.keys.Restart):
		q.restart()
		return q, nil

	case key.Matches(msg, q.keys.Next):
		return q, q.submit()

	case key.Matches(msg, q.keys.Choose):
		q.choose(int(msg.String()[0] - '1'))

	case key.Matches(msg, q.keys.Up):
		q.move(-1)

	case key.Matches(msg, q.keys.Down):
		q.move(1)
	}
	return q, nil
}

// choose moves the highlight to i and selects it. Out of range indexes
// are rejected by the session and leave everything unchanged.
func (q *QuizScreen) choose(i int) {
	if err := q.session.Select(i); err != nil {
		q.log.Debug("selection rejected", "run_id", q.runID, "index", i, "error", err)
		return
	}
	q.cursor = i
	q.syncKeys()
}

// move shifts the highlight by delta. The first move on a fresh question
// selects the highlighted choice without shifting.
func (q *QuizScreen) move(delta int) {
	if _, ok := q.session.Selected(); !ok {
		delta = 0
	}
	q.choose(q.cursor + delta)
}

// submit scores the selection and schedules the advance. A second call
// while an advance is pending schedules nothing.
func (q *QuizScreen) submit() tea.Cmd {
	correct, err := q.session.Submit()
	if err != nil {
		q.log.Debug("submit rejected", "run_id", q.runID, "error", err)
		return nil
	}
	q.syncKeys()
	if q.pending != 0 {
		return nil
	}

	q.log.Info("answer submitted",
		"run_id", q.runID,
		"question", q.session.Index()+1,
		"correct", correct,
		"score", q.session.Score())

	q.token++
	q.pending = q.token
	return advanceCmd(q.delay, q.pending)
}

func (q *QuizScreen) handleAdvance(msg advanceMsg) (screen.Screen, tea.Cmd) {
	if q.pending == 0 || msg.Token != q.pending {
		q.log.Debug("stale advance ignored", "run_id", q.runID, "token", msg.Token)
		return q, nil
	}
	q.pending = 0
	q.session.Advance()
	q.cursor = 0
	q.syncKeys()

	if q.session.State() != qz.StateFinished {
		return q, nil
	}

	res := q.session.MustResult()
	q.log.Info("quiz finished", "run_id", q.runID, "score", res.Score, "total", res.Total)
	next := result.New(res, result.Options{
		Styles: q.styles,
		Retry:  q.retry,
	})
	return q, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

// retry restarts the session and brings this screen back.
func (q *QuizScreen) retry() tea.Cmd {
	q.restart()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: q}
	}
}

// restart resets the session and cancels any pending advance.
func (q *QuizScreen) restart() {
	q.session.Restart()
	q.pending = 0
	q.cursor = 0
	q.runID = uuid.NewString()
	q.syncKeys()
	q.log.Info("quiz restarted", "run_id", q.runID)
}

// syncKeys enables bindings according to the session state. Next is only
// available once a choice is selected and not yet submitted.
func (q *QuizScreen) syncKeys() {
	awaiting := q.session.State() == qz.StateAwaitingSelection
	_, selected := q.session.Selected()

	q.keys.Choose.SetEnabled(awaiting)
	q.keys.Up.SetEnabled(awaiting)
	q.keys.Down.SetEnabled(awaiting)
	q.keys.Next.SetEnabled(awaiting && selected)
}

func advanceCmd(d time.Duration, token uint64) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return advanceMsg{Token: token}
	})
}
