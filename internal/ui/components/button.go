package components

import (
	"github.com/abhisek/quizbox/internal/ui/theme"
)

// Button is a styled button. An inactive button is drawn greyed out.
type Button struct {
	Label  string
	Active bool
}

// NewButton creates a new button.
func NewButton(label string, active bool) Button {
	return Button{
		Label:  label,
		Active: active,
	}
}

// View renders the button.
func (b Button) View(st *theme.Styles) string {
	if b.Active {
		return st.ButtonActive.Render("▸ " + b.Label)
	}
	return st.ButtonInactive.Render(b.Label)
}
