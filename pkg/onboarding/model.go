package onboarding

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.uber.org/zap"

	"github.com/cascadekit/onboard/pkg/errors"
	"github.com/cascadekit/onboard/pkg/logging"
	"github.com/cascadekit/onboard/pkg/segment"
	"github.com/cascadekit/onboard/pkg/timeline"
)

// frameInterval is how often the entrance animation samples its timeline.
const frameInterval = time.Second / 30

// Options is the input contract for an onboarding screen.
type Options struct {
	// AppName is inserted into the title line, rendered in the tint color.
	AppName string
	// Icon is the banner art for the top of the screen (may be multi-line).
	Icon string
	// Features are the onboarding cards; order determines stagger order and
	// on-screen order.
	Features []Feature
	// Tint is the accent color applied to icons, links and the placeholder
	// icon fill.
	Tint lipgloss.Color
	// Background approximates the terminal background for fade blending.
	// When empty it is picked from the terminal's light/dark mode.
	Background lipgloss.Color
	// TitleStyle, FeatureTitleStyle and FeatureDescriptionStyle merge over
	// the documented defaults; unset fields keep the default.
	TitleStyle              StyleOverride
	FeatureTitleStyle       StyleOverride
	FeatureDescriptionStyle StyleOverride
	// Button is the injected trailing renderable. When nil, no trailing
	// panel is shown at all.
	Button Renderer
	// Timing is the entrance-animation timing table; zero value means
	// timeline.DefaultConfig().
	Timing timeline.Config
	// Logger receives screen lifecycle events; nil discards them.
	Logger *logging.ColoredLogger
}

// keyMap holds the screen's key bindings.
type keyMap struct {
	Next key.Binding
	Prev key.Binding
	Open key.Binding
	Copy key.Binding
	Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(key.WithKeys("tab", "right"), key.WithHelp("tab", "next link")),
		Prev: key.NewBinding(key.WithKeys("shift+tab", "left"), key.WithHelp("shift+tab", "previous link")),
		Open: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open link")),
		Copy: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy link")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// linkRef addresses one rendered link occurrence: feature index plus the
// index of the link segment inside that feature's segment sequence.
type linkRef struct {
	feature int
	seg     int
	url     string
}

// frameMsg carries the tick time for one animation frame.
type frameMsg time.Time

// Model is the bubbletea model for the onboarding screen. The entrance
// sequence is one-shot: it starts on mount, cannot be paused, replayed or
// skipped, and its pending frame work is dropped on teardown.
type Model struct {
	opts   Options
	keys   keyMap
	styles styles
	log    *logging.ColoredLogger

	tl      timeline.Timeline
	start   time.Time
	frame   timeline.Frame
	gate    bool // one-shot: flips false→true once, never resets
	settled bool // sequence finished, ticker stopped
	stopped bool // torn down; late frames must not mutate anything

	segments [][]segment.Segment // per feature, computed once
	links    []linkRef           // flattened focus order
	focus    int                 // index into links, -1 when there are none

	notice     string // blocking notice text; non-empty blocks all other keys
	hyperlinks bool

	width  int
	height int
}

// New builds the screen model. The animation clock starts at mount (Init).
func New(opts Options) Model {
	if opts.Timing == (timeline.Config{}) {
		opts.Timing = timeline.DefaultConfig()
	}
	if opts.Tint == "" {
		opts.Tint = lipgloss.Color("#00D4AA")
	}
	if opts.Background == "" {
		if termenv.HasDarkBackground() {
			opts.Background = lipgloss.Color("#000000")
		} else {
			opts.Background = lipgloss.Color("#FFFFFF")
		}
	}
	log := opts.Logger
	if log == nil {
		log = logging.NewNopLogger()
	}

	tl := timeline.New(opts.Timing, len(opts.Features))

	m := Model{
		opts:       opts,
		keys:       defaultKeyMap(),
		styles:     defaultStyles(opts.Tint, opts),
		log:        log,
		tl:         tl,
		start:      time.Now(),
		frame:      tl.At(0),
		focus:      -1,
		hyperlinks: supportsHyperlinks(),
		width:      80,
		height:     24,
	}

	// Segmentation is pure and the features are immutable, so split each
	// description once and reuse the result every frame.
	m.segments = make([][]segment.Segment, len(opts.Features))
	for i, f := range opts.Features {
		m.segments[i] = segment.Split(f.Description, f.Links)
		for j, s := range m.segments[i] {
			if s.Kind == segment.KindLink {
				m.links = append(m.links, linkRef{feature: i, seg: j, url: s.URL})
			}
		}
	}
	if len(m.links) > 0 {
		m.focus = 0
	}
	return m
}

// Init starts the one-shot frame ticker.
func (m Model) Init() tea.Cmd {
	m.log.ComponentInfo(logging.ComponentScreen, "onboarding mounted",
		zap.Int("features", len(m.opts.Features)),
		zap.Int("links", len(m.links)))
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case frameMsg:
		return m.handleFrame(time.Time(msg))

	case tea.KeyMsg:
		// The notice is blocking: any key dismisses it, nothing else runs.
		if m.notice != "" {
			m.notice = ""
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.stopped = true
			m.log.ComponentDebug(logging.ComponentScreen, "onboarding dismissed")
			return m, tea.Quit

		case key.Matches(msg, m.keys.Next):
			if len(m.links) > 0 {
				m.focus = (m.focus + 1) % len(m.links)
			}
			return m, nil

		case key.Matches(msg, m.keys.Prev):
			if len(m.links) > 0 {
				m.focus = (m.focus - 1 + len(m.links)) % len(m.links)
			}
			return m, nil

		case key.Matches(msg, m.keys.Open):
			return m.openFocused()

		case key.Matches(msg, m.keys.Copy):
			return m.copyFocused()
		}
	}

	return m, nil
}

// handleFrame samples the timeline for one frame. After teardown frames are
// dropped outright so nothing belonging to a dismissed screen is mutated.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	if m.stopped || m.settled {
		return m, nil
	}

	elapsed := now.Sub(m.start)
	m.frame = m.tl.At(elapsed)

	if !m.gate && m.frame.Gate {
		m.gate = true
		m.log.ComponentDebug(logging.ComponentTimeline, "feature animations released",
			zap.Duration("elapsed", elapsed))
	}

	if m.tl.Done(elapsed) {
		m.settled = true
		m.log.ComponentDebug(logging.ComponentTimeline, "entrance sequence settled",
			zap.Duration("elapsed", elapsed))
		return m, nil
	}
	return m, m.tick()
}

func (m Model) openFocused() (tea.Model, tea.Cmd) {
	if m.focus < 0 || m.focus >= len(m.links) {
		return m, nil
	}
	url := m.links[m.focus].url
	if err := openURL(url); err != nil {
		// Reported locally via a blocking notice; never propagated, never
		// retried.
		linkErr := errors.NewLinkOpenError(url, err)
		m.log.ComponentError(logging.ComponentLinks, "link open failed",
			zap.Error(linkErr),
			zap.String("category", string(errors.GetCategory(linkErr.Code()))))
		m.notice = noticeText
		return m, nil
	}
	m.log.ComponentInfo(logging.ComponentLinks, "link opened", zap.String("url", url))
	return m, nil
}

func (m Model) copyFocused() (tea.Model, tea.Cmd) {
	if m.focus < 0 || m.focus >= len(m.links) {
		return m, nil
	}
	url := m.links[m.focus].url
	if err := copyURL(url); err != nil {
		m.log.ComponentWarn(logging.ComponentLinks, "clipboard copy failed", zap.Error(err))
		return m, nil
	}
	m.log.ComponentDebug(logging.ComponentLinks, "link copied", zap.String("url", url))
	return m, nil
}

// Run mounts the onboarding screen and blocks until it is dismissed.
func Run(opts Options) error {
	model := New(opts)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.NewInternalError("onboarding screen failed", err).WithOperation("run")
	}
	return nil
}
