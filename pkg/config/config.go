// Package config loads and validates YAML screen configuration for the
// onboarding screen.
package config

import (
	"time"

	"github.com/cascadekit/onboard/pkg/timeline"
)

// Config represents the full configuration for an onboarding screen
type Config struct {
	App      AppConfig       `yaml:"app"`
	Timing   TimingConfig    `yaml:"timing"`
	Styles   StylesConfig    `yaml:"styles"`
	Logging  LoggingConfig   `yaml:"logging"`
	Features []FeatureConfig `yaml:"features"`
}

// AppConfig contains the banner and accent settings
type AppConfig struct {
	Name        string `yaml:"name"`         // App name rendered in the accent color
	Icon        string `yaml:"icon"`         // Banner art (multi-line string)
	Tint        string `yaml:"tint"`         // Accent color, hex (e.g. "#00D4AA")
	ButtonLabel string `yaml:"button_label"` // Call-to-action label; empty means no trailing panel
}

// TimingConfig overrides the entrance-animation timing table
type TimingConfig struct {
	FadeIn        time.Duration `yaml:"fade_in"`        // Header opacity/scale ramp
	MoveUp        time.Duration `yaml:"move_up"`        // Header rise
	Feature       time.Duration `yaml:"feature"`        // Per-feature fade+rise, and panel fade
	Stagger       time.Duration `yaml:"stagger"`        // Gap between successive feature starts
	Buffer        time.Duration `yaml:"buffer"`         // Pause between phases
	InitialScale  float64       `yaml:"initial_scale"`  // Header zoom start, in (0,1]
	FeatureOffset float64       `yaml:"feature_offset"` // Feature starting vertical offset
}

// StylesConfig contains partial style overrides merged over defaults
type StylesConfig struct {
	Title              StyleConfig `yaml:"title"`
	FeatureTitle       StyleConfig `yaml:"feature_title"`
	FeatureDescription StyleConfig `yaml:"feature_description"`
}

// StyleConfig is one partial text style; unset fields keep the default
type StyleConfig struct {
	Foreground string `yaml:"foreground"` // Hex color
	Bold       *bool  `yaml:"bold"`
	Faint      *bool  `yaml:"faint"`
	Underline  *bool  `yaml:"underline"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	File   string `yaml:"file"`   // Log file path; empty disables logging
	Colors bool   `yaml:"colors"` // ANSI colors in log output
}

// FeatureConfig describes one onboarding card
type FeatureConfig struct {
	Title       string       `yaml:"title"`
	Description string       `yaml:"description"`
	Icon        string       `yaml:"icon"` // Symbolic icon name; empty renders the placeholder
	Links       []LinkConfig `yaml:"links"`
}

// LinkConfig names a description substring and its destination
type LinkConfig struct {
	Text string `yaml:"text"`
	URL  string `yaml:"url"`
}

// Default returns a config with the stock timing table and logging disabled
func Default() *Config {
	t := timeline.DefaultConfig()
	return &Config{
		App: AppConfig{
			Tint: "#00D4AA",
		},
		Timing: TimingConfig{
			FadeIn:        t.FadeIn,
			MoveUp:        t.MoveUp,
			Feature:       t.Feature,
			Stagger:       t.Stagger,
			Buffer:        t.Buffer,
			InitialScale:  t.InitialScale,
			FeatureOffset: t.FeatureOffset,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Colors: true,
		},
	}
}

// Timeline converts the timing section into the immutable timing table the
// animation scheduler consumes.
func (c *Config) Timeline() timeline.Config {
	return timeline.Config{
		FadeIn:        c.Timing.FadeIn,
		MoveUp:        c.Timing.MoveUp,
		Feature:       c.Timing.Feature,
		Stagger:       c.Timing.Stagger,
		Buffer:        c.Timing.Buffer,
		InitialScale:  c.Timing.InitialScale,
		FeatureOffset: c.Timing.FeatureOffset,
	}
}
