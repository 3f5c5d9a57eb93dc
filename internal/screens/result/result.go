// Package result shows the final score of a finished quiz.
package result

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizbox/internal/quiz"
	"github.com/abhisek/quizbox/internal/screen"
	"github.com/abhisek/quizbox/internal/ui/components"
	"github.com/abhisek/quizbox/internal/ui/layout"
	"github.com/abhisek/quizbox/internal/ui/theme"
)

// Options configures a ResultScreen.
type Options struct {
	Styles *theme.Styles
	// Retry is invoked by "Try again". A nil Retry hides the option.
	Retry func() tea.Cmd
}

// ResultScreen displays the final score with a retry menu.
type ResultScreen struct {
	result quiz.Result
	styles *theme.Styles
	retry  func() tea.Cmd
	menu   components.Menu
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates a ResultScreen for r.
func New(r quiz.Result, opts Options) *ResultScreen {
	if opts.Styles == nil {
		opts.Styles = theme.New(true)
	}
	s := &ResultScreen{
		result: r,
		styles: opts.Styles,
		retry:  opts.Retry,
	}
	s.menu = components.NewMenu([]components.MenuItem{
		{Label: "Try again", Action: s.tryAgain, Disabled: s.retry == nil},
		{Label: "Quit", Action: func() tea.Cmd { return tea.Quit }},
	})
	return s
}

func (s *ResultScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultScreen) Title() string {
	return "Results"
}

// Result returns the score being shown.
func (s *ResultScreen) Result() quiz.Result {
	return s.result
}

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
	}
	if s.retry != nil {
		hints = append(hints, layout.KeyHint{Key: "R", Description: "Try again"})
	}
	return hints
}

func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	if kmsg.String() == "r" {
		return s, s.tryAgain()
	}
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(kmsg)
	return s, cmd
}

func (s *ResultScreen) tryAgain() tea.Cmd {
	if s.retry == nil {
		return nil
	}
	return s.retry()
}

func (s *ResultScreen) View(width, height int) string {
	st := s.styles
	cw := components.ContentWidth(width)

	title := st.Title.Width(cw).Render("Quiz complete!")
	score := st.Body.Bold(true).Width(cw).Align(lipgloss.Center).Render(s.result.String())
	bar := components.NewProgressBar("", s.result.Percent(), true, cw).View(st)

	card := components.Card(st, lipgloss.JoinVertical(lipgloss.Left,
		title, "", score, "", bar), cw)

	return components.Center(lipgloss.JoinVertical(lipgloss.Left,
		card, "", s.menu.View(st)), width, height)
}
