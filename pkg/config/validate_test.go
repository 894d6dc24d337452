package config

import (
	"testing"
	"time"

	"github.com/cascadekit/onboard/pkg/errors"
)

// validScreenConfig returns a valid config
func validScreenConfig() *Config {
	cfg := Default()
	cfg.App.Name = "Cascade"
	cfg.App.Icon = "◆"
	cfg.Features = []FeatureConfig{
		{
			Title:       "Fast setup",
			Description: "Get running in seconds. Read the docs for details.",
			Icon:        "bolt",
			Links: []LinkConfig{
				{Text: "the docs", URL: "https://example.com/docs"},
			},
		},
		{
			Title:       "Private by default",
			Description: "Nothing leaves your machine.",
		},
	}
	return cfg
}

func TestValidateAcceptsDefaults(t *testing.T) {
	if err := validScreenConfig().Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
}

func TestValidateTiming(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		shouldError bool
	}{
		{"zero fade_in", func(c *Config) { c.Timing.FadeIn = 0 }, true},
		{"negative move_up", func(c *Config) { c.Timing.MoveUp = -time.Second }, true},
		{"zero feature", func(c *Config) { c.Timing.Feature = 0 }, true},
		{"zero stagger", func(c *Config) { c.Timing.Stagger = 0 }, true},
		{"negative buffer", func(c *Config) { c.Timing.Buffer = -1 }, true},
		{"zero buffer is fine", func(c *Config) { c.Timing.Buffer = 0 }, false},
		{"scale above one", func(c *Config) { c.Timing.InitialScale = 1.2 }, true},
		{"scale of one is fine", func(c *Config) { c.Timing.InitialScale = 1 }, false},
		{"zero scale", func(c *Config) { c.Timing.InitialScale = 0 }, true},
		{"negative offset", func(c *Config) { c.Timing.FeatureOffset = -4 }, true},
		{"zero offset is fine", func(c *Config) { c.Timing.FeatureOffset = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validScreenConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.shouldError && err == nil {
				t.Error("expected validation error, got nil")
			}
			if !tt.shouldError && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
			if tt.shouldError && !errors.IsValidation(err) {
				t.Errorf("expected a validation error, got %T", err)
			}
		})
	}
}

func TestValidateColorsAndFeatures(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		shouldError bool
	}{
		{"bad tint", func(c *Config) { c.App.Tint = "teal" }, true},
		{"short hex tint", func(c *Config) { c.App.Tint = "#0fa" }, false},
		{"empty tint falls back to default", func(c *Config) { c.App.Tint = "" }, false},
		{"bad title foreground", func(c *Config) { c.Styles.Title.Foreground = "#12345" }, true},
		{"empty feature title", func(c *Config) { c.Features[0].Title = "  " }, true},
		{"empty link text", func(c *Config) { c.Features[0].Links[0].Text = "" }, true},
		{"empty link url", func(c *Config) { c.Features[0].Links[0].URL = "" }, true},
		{"no features at all is fine", func(c *Config) { c.Features = nil }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validScreenConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.shouldError && err == nil {
				t.Error("expected validation error, got nil")
			}
			if !tt.shouldError && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestTimelineConversion(t *testing.T) {
	cfg := validScreenConfig()
	cfg.Timing.Stagger = 300 * time.Millisecond

	tl := cfg.Timeline()
	if tl.Stagger != 300*time.Millisecond {
		t.Errorf("Stagger = %v, want 300ms", tl.Stagger)
	}
	if tl.FadeIn != 600*time.Millisecond {
		t.Errorf("FadeIn = %v, want default 600ms", tl.FadeIn)
	}
}
