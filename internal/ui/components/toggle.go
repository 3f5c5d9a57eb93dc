package components

import (
	"github.com/abhisek/quizbox/internal/ui/theme"
)

// ThemeToggle renders the light/dark switch shown in the header.
func ThemeToggle(st *theme.Styles) string {
	light, dark := "☀ light", "☾ dark"
	if st.Dark {
		return st.Dimmed.Render(light) + " " + st.Selected.Render("["+dark+"]")
	}
	return st.Selected.Render("["+light+"]") + " " + st.Dimmed.Render(dark)
}
