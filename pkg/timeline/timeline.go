// Package timeline computes the entrance-animation schedule for the
// onboarding screen: when each element starts moving and what its animated
// values are at a given moment. Sampling is pure, so the render loop can be
// driven by frame ticks and torn down by simply not sampling anymore.
package timeline

import (
	"time"

	"github.com/fogleman/ease"
)

// Config holds the named timing constants for the entrance sequence.
// It is an immutable value handed to New; there is no mutable global table.
type Config struct {
	// FadeIn is the header opacity/scale ramp duration.
	FadeIn time.Duration
	// MoveUp is the header rise duration.
	MoveUp time.Duration
	// Feature is each feature's fade+rise duration, and the trailing
	// panel's fade duration.
	Feature time.Duration
	// Stagger is the gap between successive feature animation starts.
	Stagger time.Duration
	// Buffer is the pause inserted between animation phases.
	Buffer time.Duration
	// InitialScale is the header's starting scale for the zoom-in.
	InitialScale float64
	// FeatureOffset is each feature's starting vertical offset, in display
	// units, before it rises into place.
	FeatureOffset float64
}

// DefaultConfig returns the stock timing table.
func DefaultConfig() Config {
	return Config{
		FadeIn:        600 * time.Millisecond,
		MoveUp:        800 * time.Millisecond,
		Feature:       750 * time.Millisecond,
		Stagger:       420 * time.Millisecond,
		Buffer:        200 * time.Millisecond,
		InitialScale:  0.7,
		FeatureOffset: 42,
	}
}

// RiseStart is the moment the header starts rising to its final position.
func (c Config) RiseStart() time.Duration {
	return c.FadeIn
}

// GateTime is the moment the one-shot "features may animate" flag flips.
func (c Config) GateTime() time.Duration {
	return c.FadeIn + c.MoveUp + c.Buffer
}

// FeatureStart is the moment feature i (0-based, caller order) starts its
// fade+rise.
func (c Config) FeatureStart(i int) time.Duration {
	return c.GateTime() + time.Duration(i)*c.Stagger
}

// PanelStart is the moment the trailing action panel starts fading in, given
// n features.
func (c Config) PanelStart(n int) time.Duration {
	return c.GateTime() + time.Duration(n)*c.Stagger + c.Buffer
}

// Duration is the total wall time until the last animation finishes.
func (c Config) Duration(n int) time.Duration {
	end := c.PanelStart(n) + c.Feature
	if n > 0 {
		if fe := c.FeatureStart(n-1) + c.Feature; fe > end {
			end = fe
		}
	}
	return end
}

// Frame is a snapshot of every animated value at one moment. Each element owns
// its values exclusively; nothing here is shared between elements.
type Frame struct {
	// HeaderOpacity ramps 0→1 over FadeIn.
	HeaderOpacity float64
	// HeaderScale ramps InitialScale→1 over FadeIn with a slight overshoot.
	HeaderScale float64
	// HeaderRise is the remaining displacement fraction, 1 at mount, 0 once
	// the header has risen into place.
	HeaderRise float64
	// Gate reports whether features may animate yet.
	Gate bool
	// FeatureOpacity and FeatureOffset hold one value per feature, in
	// caller order. Offsets ramp FeatureOffset→0.
	FeatureOpacity []float64
	FeatureOffset  []float64
	// PanelOpacity ramps 0→1 over Feature once the panel phase starts.
	PanelOpacity float64
}

// Timeline samples the animated values of a screen with a fixed feature count.
type Timeline struct {
	cfg      Config
	features int
}

// New builds a timeline for n features using cfg.
func New(cfg Config, n int) Timeline {
	return Timeline{cfg: cfg, features: n}
}

// Config returns the timing table the timeline was built with.
func (t Timeline) Config() Config { return t.cfg }

// At samples every animated value at the given elapsed time since mount.
func (t Timeline) At(elapsed time.Duration) Frame {
	c := t.cfg

	f := Frame{
		HeaderOpacity:  ease.OutCubic(progress(elapsed, 0, c.FadeIn)),
		HeaderScale:    c.scaleAt(elapsed),
		HeaderRise:     1 - ease.OutCubic(progress(elapsed, c.RiseStart(), c.MoveUp)),
		Gate:           elapsed >= c.GateTime(),
		FeatureOpacity: make([]float64, t.features),
		FeatureOffset:  make([]float64, t.features),
		PanelOpacity:   ease.OutCubic(progress(elapsed, c.PanelStart(t.features), c.Feature)),
	}

	for i := 0; i < t.features; i++ {
		p := ease.OutCubic(progress(elapsed, c.FeatureStart(i), c.Feature))
		f.FeatureOpacity[i] = p
		f.FeatureOffset[i] = c.FeatureOffset * (1 - p)
	}
	return f
}

// scaleAt ramps the header scale InitialScale→1 over FadeIn with an
// overshooting easing. The endpoints are pinned so the resting values are
// exact: the back easing carries a tiny float residue at its boundaries.
func (c Config) scaleAt(elapsed time.Duration) float64 {
	p := progress(elapsed, 0, c.FadeIn)
	switch p {
	case 0:
		return c.InitialScale
	case 1:
		return 1
	}
	return c.InitialScale + (1-c.InitialScale)*ease.OutBack(p)
}

// Done reports whether the whole sequence has finished at the given elapsed
// time, so the frame ticker can stop.
func (t Timeline) Done(elapsed time.Duration) bool {
	return elapsed >= t.cfg.Duration(t.features)
}

// progress maps elapsed time onto [0,1] for an animation starting at start
// and running for dur. Clamped outside the window.
func progress(elapsed, start, dur time.Duration) float64 {
	if elapsed <= start {
		return 0
	}
	if dur <= 0 || elapsed >= start+dur {
		return 1
	}
	return float64(elapsed-start) / float64(dur)
}
