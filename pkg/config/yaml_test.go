package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/cascadekit/onboard/pkg/errors"
)

const sampleYAML = `
app:
  name: Cascade
  icon: "◆"
  tint: "#7C5CFF"
  button_label: Get started
timing:
  stagger: 300ms
features:
  - title: Fast setup
    description: Read the docs to get started.
    icon: bolt
    links:
      - text: the docs
        url: https://example.com/docs
`

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "screen.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFromFile(t *testing.T) {
	cfg, err := LoadFromFile(writeTempConfig(t, sampleYAML))
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	if cfg.App.Name != "Cascade" {
		t.Errorf("App.Name = %q, want Cascade", cfg.App.Name)
	}
	if cfg.App.Tint != "#7C5CFF" {
		t.Errorf("App.Tint = %q", cfg.App.Tint)
	}
	// Overridden field takes effect, the rest keeps defaults.
	if cfg.Timing.Stagger != 300*time.Millisecond {
		t.Errorf("Timing.Stagger = %v, want 300ms", cfg.Timing.Stagger)
	}
	if cfg.Timing.FadeIn != 600*time.Millisecond {
		t.Errorf("Timing.FadeIn = %v, want default 600ms", cfg.Timing.FadeIn)
	}
	if len(cfg.Features) != 1 || len(cfg.Features[0].Links) != 1 {
		t.Fatalf("unexpected features: %+v", cfg.Features)
	}
}

func TestLoadFromFileRejectsUnknownFields(t *testing.T) {
	_, err := LoadFromFile(writeTempConfig(t, "app:\n  nmae: typo\n"))
	if err == nil {
		t.Fatal("expected an error for unknown field")
	}
	if !errors.IsConfig(err) {
		t.Errorf("expected a config error, got %T", err)
	}
	if !strings.Contains(err.Error(), "cannot parse config file") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected an error for missing file")
	}
	if !errors.IsConfig(err) {
		t.Errorf("expected a config error, got %T", err)
	}
}

func TestLoadFromFileValidates(t *testing.T) {
	bad := "timing:\n  fade_in: -1s\n"
	_, err := LoadFromFile(writeTempConfig(t, bad))
	if !errors.IsValidation(err) {
		t.Errorf("expected a validation error, got %v", err)
	}
}
