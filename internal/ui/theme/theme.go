package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette holds the colors of one theme variant.
type Palette struct {
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	Bg        color.Color
	BgCard    color.Color
	Border    color.Color
}

// NewPalette picks the light or dark variant of every color.
func NewPalette(dark bool) Palette {
	ld := lipgloss.LightDark(dark)
	return Palette{
		Primary:   ld(lipgloss.Color("#6D28D9"), lipgloss.Color("#8B5CF6")), // Purple
		Secondary: ld(lipgloss.Color("#0F766E"), lipgloss.Color("#14B8A6")), // Teal
		Accent:    ld(lipgloss.Color("#C2410C"), lipgloss.Color("#F97316")), // Orange
		Success:   ld(lipgloss.Color("#15803D"), lipgloss.Color("#22C55E")), // Green
		Error:     ld(lipgloss.Color("#BE123C"), lipgloss.Color("#F43F5E")), // Rose
		Text:      ld(lipgloss.Color("#0F172A"), lipgloss.Color("#F8FAFC")),
		TextDim:   ld(lipgloss.Color("#475569"), lipgloss.Color("#94A3B8")),
		Bg:        ld(lipgloss.Color("#F8FAFC"), lipgloss.Color("#0F172A")),
		BgCard:    ld(lipgloss.Color("#E2E8F0"), lipgloss.Color("#1E293B")),
		Border:    ld(lipgloss.Color("#CBD5E1"), lipgloss.Color("#334155")),
	}
}

// Styles is the full set of styles derived from a Palette.
type Styles struct {
	Palette
	Dark bool

	// Typography
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Hint     lipgloss.Style

	// Layout
	Header lipgloss.Style
	Footer lipgloss.Style
	Card   lipgloss.Style

	// Choice states
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Correct    lipgloss.Style
	Incorrect  lipgloss.Style
	Dimmed     lipgloss.Style

	// Components
	ProgressFilled lipgloss.Style
	ProgressEmpty  lipgloss.Style
	ButtonActive   lipgloss.Style
	ButtonInactive lipgloss.Style
}

// New builds the styles for the dark or light variant.
func New(dark bool) *Styles {
	p := NewPalette(dark)
	return &Styles{
		Palette: p,
		Dark:    dark,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary).
			Align(lipgloss.Center),
		Subtitle: lipgloss.NewStyle().
			Foreground(p.TextDim).
			Align(lipgloss.Center),
		Body: lipgloss.NewStyle().
			Foreground(p.Text),
		Hint: lipgloss.NewStyle().
			Foreground(p.TextDim).
			Italic(true),

		Header: lipgloss.NewStyle().
			Background(p.BgCard).
			Padding(0, 2),
		Footer: lipgloss.NewStyle().
			Background(p.BgCard).
			Padding(0, 2),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(1, 2),

		Selected: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true),
		Unselected: lipgloss.NewStyle().
			Foreground(p.Text),
		Correct: lipgloss.NewStyle().
			Foreground(p.Success).
			Bold(true),
		Incorrect: lipgloss.NewStyle().
			Foreground(p.Error).
			Bold(true),
		Dimmed: lipgloss.NewStyle().
			Foreground(p.TextDim),

		ProgressFilled: lipgloss.NewStyle().
			Background(p.Secondary),
		ProgressEmpty: lipgloss.NewStyle().
			Background(p.Border),
		ButtonActive: lipgloss.NewStyle().
			Background(p.Primary).
			Foreground(p.Bg).
			Bold(true).
			Padding(0, 2),
		ButtonInactive: lipgloss.NewStyle().
			Foreground(p.TextDim).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 2),
	}
}
