package config

import (
	"fmt"
	"strings"

	"github.com/cascadekit/onboard/pkg/errors"
)

// Validate checks the configuration for values the screen cannot render.
func (c *Config) Validate() error {
	if err := c.Timing.validate(); err != nil {
		return err
	}
	if c.App.Tint != "" && !isHexColor(c.App.Tint) {
		return errors.NewValidationError("app.tint", "must be a hex color like #00D4AA", c.App.Tint)
	}
	for _, s := range []struct {
		name  string
		style StyleConfig
	}{
		{"styles.title", c.Styles.Title},
		{"styles.feature_title", c.Styles.FeatureTitle},
		{"styles.feature_description", c.Styles.FeatureDescription},
	} {
		if s.style.Foreground != "" && !isHexColor(s.style.Foreground) {
			return errors.NewValidationError(s.name+".foreground", "must be a hex color", s.style.Foreground)
		}
	}
	for i, f := range c.Features {
		if strings.TrimSpace(f.Title) == "" {
			return errors.NewValidationError(fmt.Sprintf("features[%d].title", i), "must not be empty", f.Title)
		}
		for j, l := range f.Links {
			if l.Text == "" {
				return errors.NewValidationError(fmt.Sprintf("features[%d].links[%d].text", i, j), "must not be empty", l.Text)
			}
			if l.URL == "" {
				return errors.NewValidationError(fmt.Sprintf("features[%d].links[%d].url", i, j), "must not be empty", l.URL)
			}
		}
	}
	return nil
}

func (t TimingConfig) validate() error {
	switch {
	case t.FadeIn <= 0:
		return errors.NewValidationError("timing.fade_in", "must be positive", t.FadeIn)
	case t.MoveUp <= 0:
		return errors.NewValidationError("timing.move_up", "must be positive", t.MoveUp)
	case t.Feature <= 0:
		return errors.NewValidationError("timing.feature", "must be positive", t.Feature)
	case t.Stagger <= 0:
		return errors.NewValidationError("timing.stagger", "must be positive", t.Stagger)
	case t.Buffer < 0:
		return errors.NewValidationError("timing.buffer", "must not be negative", t.Buffer)
	case t.InitialScale <= 0 || t.InitialScale > 1:
		return errors.NewValidationError("timing.initial_scale", "must be in (0, 1]", t.InitialScale)
	case t.FeatureOffset < 0:
		return errors.NewValidationError("timing.feature_offset", "must not be negative", t.FeatureOffset)
	}
	return nil
}

// isHexColor accepts #RGB and #RRGGBB forms.
func isHexColor(s string) bool {
	if !strings.HasPrefix(s, "#") {
		return false
	}
	hex := s[1:]
	if len(hex) != 3 && len(hex) != 6 {
		return false
	}
	for _, r := range hex {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
