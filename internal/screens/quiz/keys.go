package quiz

import (
	"charm.land/bubbles/v2/key"

	"github.com/abhisek/quizbox/internal/ui/layout"
)

type keyMap struct {
	Choose  key.Binding
	Up      key.Binding
	Down    key.Binding
	Next    key.Binding
	Restart key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Choose: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "Choose"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑↓", "Move"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↑↓", "Move"),
		),
		Next: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "Next"),
			key.WithDisabled(),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("R", "Restart"),
		),
	}
}

// hints converts the enabled bindings into footer hints.
func (k keyMap) hints() []layout.KeyHint {
	var out []layout.KeyHint
	for _, b := range []key.Binding{k.Choose, k.Up, k.Next, k.Restart} {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		out = append(out, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return out
}
