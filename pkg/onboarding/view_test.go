package onboarding

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestBlendHex(t *testing.T) {
	tests := []struct {
		name     string
		opacity  float64
		expected lipgloss.Color
	}{
		{"zero opacity is the background", 0, lipgloss.Color("#000000")},
		{"full opacity is the foreground", 1, lipgloss.Color("#ffffff")},
		{"clamped below", -0.5, lipgloss.Color("#000000")},
		{"clamped above", 1.5, lipgloss.Color("#ffffff")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := blendHex("#000000", "#FFFFFF", tt.opacity); got != tt.expected {
				t.Errorf("blendHex = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestBlendHexInvalidColorPassesThrough(t *testing.T) {
	if got := blendHex("#000000", "plum", 0.5); got != lipgloss.Color("plum") {
		t.Errorf("invalid foreground must pass through, got %v", got)
	}
}

func TestHexOf(t *testing.T) {
	if got := hexOf(lipgloss.Color("#123456"), "#FFFFFF"); got != "#123456" {
		t.Errorf("hexOf hex color = %q", got)
	}
	if got := hexOf(nil, "#FFFFFF"); got != "#FFFFFF" {
		t.Errorf("hexOf nil = %q, want fallback", got)
	}
	if got := hexOf(lipgloss.Color("21"), "#FFFFFF"); got != "#FFFFFF" {
		t.Errorf("hexOf ANSI color = %q, want fallback", got)
	}
}

func TestHeaderSlotHeightIsConstant(t *testing.T) {
	m := testModel()

	countLines := func(s string) int {
		n := 1
		for _, r := range s {
			if r == '\n' {
				n++
			}
		}
		return n
	}

	first := m.viewHeader()
	m.frame = m.tl.At(m.tl.Config().Duration(len(m.opts.Features)))
	last := m.viewHeader()

	if countLines(first) != countLines(last) {
		t.Errorf("header slot height changed during the rise: %d vs %d lines",
			countLines(first), countLines(last))
	}
}

func TestFeatureSlotHeightIsConstant(t *testing.T) {
	m := testModel()

	countLines := func(s string) int {
		n := 1
		for _, r := range s {
			if r == '\n' {
				n++
			}
		}
		return n
	}

	before := m.viewFeature(0)
	m.frame = m.tl.At(m.tl.Config().Duration(len(m.opts.Features)))
	after := m.viewFeature(0)

	if countLines(before) != countLines(after) {
		t.Errorf("feature slot height changed during the rise: %d vs %d lines",
			countLines(before), countLines(after))
	}
}
