package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	Primary   lipgloss.Color // Purple - title, focused field
	Secondary lipgloss.Color // Gold - accents, prefix sums

	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	BgCell lipgloss.Color // Array cell background

	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	// Step highlights
	Compare   lipgloss.Color // Elements being compared
	Select    lipgloss.Color // Element just taken or added
	Remaining lipgloss.Color // Leftover elements appended after exhaustion
	Done      lipgloss.Color // Finished output

	Success lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base     lipgloss.Style
	Muted    lipgloss.Style
	Subtle   lipgloss.Style
	Title    lipgloss.Style
	Label    lipgloss.Style // Row labels in step views
	Cell     lipgloss.Style
	Pointer  lipgloss.Style // Pointer markers under arrays
	Accent   lipgloss.Style
	Key      lipgloss.Style // Key names in hints
	Disabled lipgloss.Style // Unavailable transport buttons

	Compare   lipgloss.Style
	Select    lipgloss.Style
	Remaining lipgloss.Style
	Done      lipgloss.Style

	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	BgCell: lipgloss.Color("#262626"),

	Border:      lipgloss.Color("#585858"),
	BorderFocus: lipgloss.Color("#a78bfa"),

	Compare:   lipgloss.Color("#f1a208"),
	Select:    lipgloss.Color("#42b883"),
	Remaining: lipgloss.Color("#5fafd7"),
	Done:      lipgloss.Color("#a78bfa"),

	Success: lipgloss.Color("#42b883"),
	Error:   lipgloss.Color("#ff5555"),
	Warning: lipgloss.Color("#f1a208"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)
	cell := lipgloss.NewStyle().Background(t.BgCell)

	return &Styles{
		Base:     base,
		Muted:    lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle:   lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:    base.Bold(true),
		Label:    lipgloss.NewStyle().Foreground(t.FgMuted).Bold(true),
		Cell:     cell.Foreground(t.FgBase),
		Pointer:  lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		Accent:   lipgloss.NewStyle().Foreground(t.Secondary),
		Key:      lipgloss.NewStyle().Foreground(t.Primary),
		Disabled: lipgloss.NewStyle().Foreground(t.FgSubtle).Strikethrough(true),

		Compare:   cell.Foreground(t.Compare).Bold(true),
		Select:    cell.Foreground(t.Select).Bold(true),
		Remaining: cell.Foreground(t.Remaining),
		Done:      cell.Foreground(t.Done),

		Success: lipgloss.NewStyle().Foreground(t.Success),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
	}
}

// Panel returns the bordered style used for the step view and input form.
func (t *Theme) Panel(focused bool) lipgloss.Style {
	border := t.Border
	if focused {
		border = t.BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
}
