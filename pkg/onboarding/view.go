package onboarding

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/cascadekit/onboard/pkg/segment"
)

const (
	// headerRiseRows is the header's vertical travel in terminal rows.
	headerRiseRows = 3
	// offsetUnitsPerRow converts timeline offset units into terminal rows;
	// the stock 42-unit feature offset maps to three rows.
	offsetUnitsPerRow = 14.0
	// maxContentWidth keeps the screen readable on wide terminals.
	maxContentWidth = 72
)

// blendHex fades fg toward bg: opacity 0 renders as the background (and so
// invisibly), 1 as the full foreground color.
func blendHex(bg, fg string, opacity float64) lipgloss.Color {
	b, errB := colorful.Hex(bg)
	f, errF := colorful.Hex(fg)
	if errB != nil || errF != nil {
		return lipgloss.Color(fg)
	}
	if opacity < 0 {
		opacity = 0
	} else if opacity > 1 {
		opacity = 1
	}
	return lipgloss.Color(b.BlendLuv(f, opacity).Hex())
}

// hexOf extracts a hex color from a caller-supplied style override color,
// falling back when the override is unset or not hex-addressable.
func hexOf(c lipgloss.TerminalColor, fallback string) string {
	if cc, ok := c.(lipgloss.Color); ok && strings.HasPrefix(string(cc), "#") {
		return string(cc)
	}
	return fallback
}

func (m Model) contentWidth() int {
	w := m.width - 2
	if w > maxContentWidth {
		w = maxContentWidth
	}
	if w < 20 {
		w = 20
	}
	return w
}

// textColor is the assumed default foreground, by terminal background mode.
func (m Model) textColor() string {
	if string(m.opts.Background) == "#FFFFFF" {
		return "#111111"
	}
	return "#EEEEEE"
}

// View renders the whole screen for the current animation frame.
func (m Model) View() string {
	var s strings.Builder

	s.WriteString(m.viewHeader())
	s.WriteString("\n")

	for i := range m.opts.Features {
		s.WriteString(m.viewFeature(i))
		s.WriteString("\n")
	}

	if m.opts.Button != nil {
		s.WriteString(m.viewPanel())
		s.WriteString("\n")
	}

	if m.notice != "" {
		s.WriteString(m.viewNotice())
	} else {
		s.WriteString(m.viewHelp())
	}
	return s.String()
}

// viewHeader draws the app icon and title line. Opacity maps to a color
// blend, scale to the width of the centered block, rise to shrinking blank
// rows above it. The slot height is constant so the rows below never jump.
func (m Model) viewHeader() string {
	width := m.contentWidth()
	fr := m.frame

	riseRows := int(math.Round(fr.HeaderRise * headerRiseRows))

	scale := fr.HeaderScale
	if scale > 1 {
		scale = 1 // the zoom overshoot has no wider box to grow into
	}
	boxWidth := int(scale * float64(width))
	if boxWidth < 10 {
		boxWidth = 10
	}

	iconColor := blendHex(string(m.opts.Background), hexOf(m.opts.Tint, string(m.opts.Tint)), fr.HeaderOpacity)
	titleColor := blendHex(string(m.opts.Background), hexOf(m.opts.TitleStyle.Foreground, m.textColor()), fr.HeaderOpacity)

	icon := lipgloss.NewStyle().Foreground(iconColor).Render(m.opts.Icon)
	title := m.styles.title.Foreground(titleColor).Render("Welcome to ") +
		m.styles.appName.Foreground(iconColor).Render(m.opts.AppName)

	block := lipgloss.PlaceHorizontal(boxWidth, lipgloss.Center, icon+"\n"+title)
	block = lipgloss.PlaceHorizontal(width, lipgloss.Center, block)

	return strings.Repeat("\n", riseRows) + block + strings.Repeat("\n", headerRiseRows-riseRows+1)
}

// viewFeature draws one feature row inside a fixed-height slot; the row
// rises into place as its offset ramps to zero.
func (m Model) viewFeature(i int) string {
	width := m.contentWidth()
	opacity := m.frame.FeatureOpacity[i]
	offset := m.frame.FeatureOffset[i]
	f := m.opts.Features[i]

	maxRows := int(math.Round(m.tl.Config().FeatureOffset / offsetUnitsPerRow))
	rows := int(math.Round(offset / offsetUnitsPerRow))
	if rows > maxRows {
		rows = maxRows
	}

	bg := string(m.opts.Background)
	titleColor := blendHex(bg, hexOf(m.opts.FeatureTitleStyle.Foreground, m.textColor()), opacity)
	descColor := blendHex(bg, hexOf(m.opts.FeatureDescriptionStyle.Foreground, "#888888"), opacity)
	linkColor := blendHex(bg, hexOf(m.opts.Tint, string(m.opts.Tint)), opacity)

	icon := f.Icon.render(linkColor)
	title := m.styles.featureTitle.Foreground(titleColor).Render(f.Title)

	var desc strings.Builder
	for j, seg := range m.segments[i] {
		switch seg.Kind {
		case segment.KindLink:
			style := m.styles.link
			if m.isFocused(i, j) {
				style = m.styles.linkFocused
			}
			rendered := style.Foreground(linkColor).Render(seg.Content)
			if m.hyperlinks {
				rendered = hyperlink(seg.URL, rendered)
			}
			desc.WriteString(rendered)
		default:
			desc.WriteString(m.styles.featureDesc.Foreground(descColor).Render(seg.Content))
		}
	}

	row := icon + " " + title + "\n" + "  " + desc.String()
	row = lipgloss.NewStyle().Width(width).Render(row)

	slot := strings.Repeat("\n", rows) + row + strings.Repeat("\n", maxRows-rows)
	return slot
}

// viewPanel draws the trailing action panel around the injected button.
// The panel exists only when a button was provided; it fades in last.
func (m Model) viewPanel() string {
	width := m.contentWidth()
	opacity := m.frame.PanelOpacity

	bg := string(m.opts.Background)
	borderColor := blendHex(bg, hexOf(m.opts.Tint, string(m.opts.Tint)), opacity)

	panel := m.styles.panel.BorderForeground(borderColor).Render(m.opts.Button())
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, panel)
}

// viewNotice draws the blocking link-failure notice.
func (m Model) viewNotice() string {
	width := m.contentWidth()
	box := m.styles.notice.Render(m.notice)
	hint := m.styles.help.Render("Press any key to continue")
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, box+"\n"+hint)
}

func (m Model) viewHelp() string {
	if len(m.links) == 0 {
		return m.styles.help.Render("q quit")
	}
	return m.styles.help.Render("tab next link • enter open • c copy • q quit")
}

func (m Model) isFocused(feature, seg int) bool {
	if m.focus < 0 || m.focus >= len(m.links) {
		return false
	}
	ref := m.links[m.focus]
	return ref.feature == feature && ref.seg == seg
}
