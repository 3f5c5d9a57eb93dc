package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizbox/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for quiz cards.
func ContentWidth(frameWidth int) int {
	// Leave room for the card border (2) + inner padding (4)
	w := frameWidth - 6
	if w > 72 {
		w = 72
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Card wraps content in a rounded-border card at the given content width.
func Card(st *theme.Styles, content string, cw int) string {
	return st.Card.
		Width(cw - 2).
		Render(content)
}

// Center places block in the middle of a width x height area.
func Center(block string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, block)
}
