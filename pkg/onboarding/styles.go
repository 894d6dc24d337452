package onboarding

import (
	"github.com/charmbracelet/lipgloss"
)

// StyleOverride is a partial text style merged over the documented defaults.
// Nil fields keep the default.
type StyleOverride struct {
	Foreground lipgloss.TerminalColor
	Bold       *bool
	Faint      *bool
	Underline  *bool
}

// apply merges the override over base, field by field.
func (o StyleOverride) apply(base lipgloss.Style) lipgloss.Style {
	if o.Foreground != nil {
		base = base.Foreground(o.Foreground)
	}
	if o.Bold != nil {
		base = base.Bold(*o.Bold)
	}
	if o.Faint != nil {
		base = base.Faint(*o.Faint)
	}
	if o.Underline != nil {
		base = base.Underline(*o.Underline)
	}
	return base
}

// Bool is a convenience for building StyleOverride pointer fields.
func Bool(v bool) *bool { return &v }

// styles holds every resolved style the screen renders with.
type styles struct {
	title        lipgloss.Style
	appName      lipgloss.Style
	featureTitle lipgloss.Style
	featureDesc  lipgloss.Style
	link         lipgloss.Style
	linkFocused  lipgloss.Style
	panel        lipgloss.Style
	notice       lipgloss.Style
	help         lipgloss.Style
}

// defaultStyles builds the stock style table for a tint color, then merges
// the caller's partial overrides over it.
func defaultStyles(tint lipgloss.Color, opts Options) styles {
	s := styles{
		title: lipgloss.NewStyle().
			Bold(true),

		appName: lipgloss.NewStyle().
			Bold(true).
			Foreground(tint),

		featureTitle: lipgloss.NewStyle().
			Bold(true),

		featureDesc: lipgloss.NewStyle().
			Faint(true),

		link: lipgloss.NewStyle().
			Foreground(tint).
			Underline(true),

		linkFocused: lipgloss.NewStyle().
			Foreground(tint).
			Underline(true).
			Reverse(true),

		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(tint).
			Padding(0, 2),

		notice: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#FF6B6B")).
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true).
			Padding(0, 2),

		help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			MarginTop(1),
	}

	s.title = opts.TitleStyle.apply(s.title)
	s.featureTitle = opts.FeatureTitleStyle.apply(s.featureTitle)
	s.featureDesc = opts.FeatureDescriptionStyle.apply(s.featureDesc)
	return s
}
