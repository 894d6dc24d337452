// Package onboarding renders an animated onboarding screen: an app banner,
// staggered feature rows with linkable descriptions, and an optional trailing
// action panel, choreographed by pkg/timeline.
package onboarding

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/cascadekit/onboard/pkg/segment"
)

// Feature is one onboarding card. Immutable; supplied wholesale by the caller.
// Slice order determines both on-screen order and animation stagger order.
type Feature struct {
	Title       string
	Description string
	Icon        Icon
	Links       []segment.Link
}

// Renderer is an externally supplied renderable, used for the trailing
// action button and for custom feature icons.
type Renderer func() string

// Icon selects how a feature's icon is drawn. Resolution happens once per
// feature at render time, trying in order:
//  1. Custom renderer, used verbatim;
//  2. Symbol, resolved by name from the glyph registry;
//  3. neither: a tinted filled-circle placeholder.
type Icon struct {
	// Symbol is a symbolic icon name resolved from the glyph registry.
	Symbol string
	// Custom, when set, renders the icon itself and wins over Symbol.
	Custom func(tint lipgloss.TerminalColor) string
}

// glyphs is the built-in symbolic icon registry, the terminal stand-in for a
// platform icon font.
var glyphs = map[string]string{
	"bolt":      "⚡",
	"star":      "★",
	"heart":     "♥",
	"gear":      "⚙",
	"check":     "✓",
	"sparkle":   "✦",
	"diamond":   "◆",
	"arrow":     "➜",
	"lock":      "⛉",
	"globe":     "🌐",
	"cloud":     "☁",
	"bell":      "🔔",
	"pencil":    "✎",
	"search":    "🔍",
	"lightning": "↯",
}

// placeholderGlyph is drawn when no custom renderer was given and the
// symbolic name is empty or unknown.
const placeholderGlyph = "●"

// render resolves the three-variant icon choice into a styled string.
func (ic Icon) render(tint lipgloss.Color) string {
	if ic.Custom != nil {
		return ic.Custom(tint)
	}
	glyph := placeholderGlyph
	if g, ok := glyphs[ic.Symbol]; ok {
		glyph = g
	}
	return lipgloss.NewStyle().Foreground(tint).Render(glyph)
}
