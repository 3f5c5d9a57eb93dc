package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizbox/internal/logging"
	"github.com/abhisek/quizbox/internal/preference"
	"github.com/abhisek/quizbox/internal/quiz"
	"github.com/abhisek/quizbox/internal/router"
	"github.com/abhisek/quizbox/internal/screen"
	quizscreen "github.com/abhisek/quizbox/internal/screens/quiz"
	"github.com/abhisek/quizbox/internal/ui/layout"
	"github.com/abhisek/quizbox/internal/ui/theme"
)

// Options holds the dependencies of the app model.
type Options struct {
	Session *quiz.Session
	Store   preference.Store
	Logger  *logging.Logger
	Delay   time.Duration
}

// themeResolvedMsg carries the outcome of preference.Resolve. Seq orders
// resolutions so an earlier guess never overwrites a later one.
type themeResolvedMsg struct {
	Theme preference.Theme
	Seq   int
}

// themeSavedMsg reports that a toggled theme was handed to the store.
type themeSavedMsg struct {
	Theme preference.Theme
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	store  preference.Store
	log    *logging.Logger

	// styles is shared with every screen and updated in place.
	styles *theme.Styles
	theme  preference.Theme

	resolveSeq int
	appliedSeq int
	toggled    bool

	width  int
	height int
}

// newAppModel creates a new AppModel showing the quiz screen.
func newAppModel(opts Options) AppModel {
	if opts.Logger == nil {
		opts.Logger = logging.Nop()
	}
	styles := theme.New(true)
	qs := quizscreen.New(opts.Session, quizscreen.Options{
		Styles: styles,
		Logger: opts.Logger,
		Delay:  opts.Delay,
	})
	return AppModel{
		router: router.New(qs),
		store:  opts.Store,
		log:    opts.Logger,
		styles: styles,
		theme:  preference.Dark,
	}
}

// Init resolves the theme against a dark default while the terminal is
// asked for its background; the answer triggers a second resolution.
func (m AppModel) Init() tea.Cmd {
	return tea.Batch(
		m.router.Active().Init(),
		tea.RequestBackgroundColor,
		resolveThemeCmd(m.store, true, 0, m.log),
	)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.BackgroundColorMsg:
		m.resolveSeq++
		m.log.Debug("terminal background reported", "dark", msg.IsDark())
		return m, resolveThemeCmd(m.store, msg.IsDark(), m.resolveSeq, m.log)

	case themeResolvedMsg:
		if m.toggled || msg.Seq < m.appliedSeq {
			return m, nil
		}
		m.appliedSeq = msg.Seq
		m.setTheme(msg.Theme)
		return m, nil

	case themeSavedMsg:
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "t":
			prev := m.theme
			m.toggled = true
			m.setTheme(prev.Toggled())
			return m, toggleThemeCmd(m.store, prev, m.log)
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// setTheme swaps the shared styles to the given variant.
func (m *AppModel) setTheme(t preference.Theme) {
	m.theme = t
	*m.styles = *theme.New(t.IsDark())
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	v.BackgroundColor = m.styles.Bg

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.styles, m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	var footerHints []layout.KeyHint
	if active != nil {
		title = active.Title()
		if hp, ok := active.(screen.KeyHintProvider); ok {
			footerHints = append(footerHints, hp.KeyHints()...)
		}
	}
	footerHints = append(footerHints,
		layout.KeyHint{Key: "T", Description: "Theme"},
		layout.KeyHint{Key: "Q", Description: "Quit"},
	)

	header := layout.RenderHeader(m.styles, title, m.width)
	footer := layout.RenderFooter(m.styles, footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func resolveThemeCmd(s preference.Store, ambientDark bool, seq int, log *logging.Logger) tea.Cmd {
	return func() tea.Msg {
		return themeResolvedMsg{
			Theme: preference.Resolve(context.Background(), s, ambientDark, log),
			Seq:   seq,
		}
	}
}

func toggleThemeCmd(s preference.Store, current preference.Theme, log *logging.Logger) tea.Cmd {
	return func() tea.Msg {
		return themeSavedMsg{Theme: preference.Toggle(context.Background(), s, current, log)}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
