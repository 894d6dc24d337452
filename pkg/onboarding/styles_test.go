package onboarding

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestStyleOverrideMerge(t *testing.T) {
	base := lipgloss.NewStyle().Bold(true).Underline(false).Foreground(lipgloss.Color("#FFFFFF"))

	tests := []struct {
		name     string
		override StyleOverride
		check    func(lipgloss.Style) bool
	}{
		{
			name:     "empty override keeps everything",
			override: StyleOverride{},
			check: func(s lipgloss.Style) bool {
				return s.GetBold() && s.GetForeground() == lipgloss.Color("#FFFFFF")
			},
		},
		{
			name:     "foreground replaced, bold kept",
			override: StyleOverride{Foreground: lipgloss.Color("#FF0000")},
			check: func(s lipgloss.Style) bool {
				return s.GetBold() && s.GetForeground() == lipgloss.Color("#FF0000")
			},
		},
		{
			name:     "bold disabled, foreground kept",
			override: StyleOverride{Bold: Bool(false)},
			check: func(s lipgloss.Style) bool {
				return !s.GetBold() && s.GetForeground() == lipgloss.Color("#FFFFFF")
			},
		},
		{
			name:     "underline and faint set together",
			override: StyleOverride{Underline: Bool(true), Faint: Bool(true)},
			check: func(s lipgloss.Style) bool {
				return s.GetUnderline() && s.GetFaint() && s.GetBold()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if merged := tt.override.apply(base); !tt.check(merged) {
				t.Errorf("unexpected merged style: %+v", merged)
			}
		})
	}
}

func TestDefaultStylesUseOverrides(t *testing.T) {
	opts := Options{
		TitleStyle:              StyleOverride{Bold: Bool(false)},
		FeatureTitleStyle:       StyleOverride{Foreground: lipgloss.Color("#123456")},
		FeatureDescriptionStyle: StyleOverride{Faint: Bool(false)},
	}
	s := defaultStyles(lipgloss.Color("#00D4AA"), opts)

	if s.title.GetBold() {
		t.Error("title bold override not applied")
	}
	if s.featureTitle.GetForeground() != lipgloss.Color("#123456") {
		t.Error("feature title foreground override not applied")
	}
	if s.featureDesc.GetFaint() {
		t.Error("feature description faint override not applied")
	}
	// Untouched styles keep their defaults.
	if !s.link.GetUnderline() {
		t.Error("link default underline lost")
	}
}
