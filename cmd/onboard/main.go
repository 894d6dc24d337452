package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/cascadekit/onboard/pkg/config"
	"github.com/cascadekit/onboard/pkg/logging"
	"github.com/cascadekit/onboard/pkg/onboarding"
	"github.com/cascadekit/onboard/pkg/segment"
)

// version metadata populated via -ldflags at build time
var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	if len(os.Args) < 2 {
		runScreen("")
		return
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "version":
		fmt.Printf("onboard %s", version)
		if commit != "" {
			fmt.Printf(" (commit %s)", commit)
		}
		if date != "" {
			fmt.Printf(" built %s", date)
		}
		fmt.Println()

	case "run":
		configPath := ""
		for i := 0; i < len(args); i++ {
			if args[i] == "--config" && i+1 < len(args) {
				configPath = args[i+1]
				i++
			}
		}
		runScreen(configPath)

	case "help", "--help", "-h":
		showHelp()

	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		showHelp()
		os.Exit(1)
	}
}

func showHelp() {
	fmt.Println(`onboard - animated terminal onboarding screen

Usage:
  onboard                    Play the built-in sample screen
  onboard run [--config f]   Play a screen described by a YAML config
  onboard version            Print version information`)
}

func runScreen(configPath string) {
	cfg := sampleConfig()
	if configPath != "" {
		loaded, err := config.LoadFromFile(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "❌ Failed to load config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	if err := onboarding.Run(buildOptions(cfg)); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Onboarding screen failed: %v\n", err)
		os.Exit(1)
	}
}

// buildOptions maps a validated screen config onto the component's input
// contract.
func buildOptions(cfg *config.Config) onboarding.Options {
	tint := lipgloss.Color(cfg.App.Tint)

	features := make([]onboarding.Feature, len(cfg.Features))
	for i, f := range cfg.Features {
		links := make([]segment.Link, len(f.Links))
		for j, l := range f.Links {
			links[j] = segment.Link{Text: l.Text, URL: l.URL}
		}
		features[i] = onboarding.Feature{
			Title:       f.Title,
			Description: f.Description,
			Icon:        onboarding.Icon{Symbol: f.Icon},
			Links:       links,
		}
	}

	opts := onboarding.Options{
		AppName:                 cfg.App.Name,
		Icon:                    cfg.App.Icon,
		Features:                features,
		Tint:                    tint,
		Timing:                  cfg.Timeline(),
		TitleStyle:              styleOverride(cfg.Styles.Title),
		FeatureTitleStyle:       styleOverride(cfg.Styles.FeatureTitle),
		FeatureDescriptionStyle: styleOverride(cfg.Styles.FeatureDescription),
	}

	if cfg.App.ButtonLabel != "" {
		label := cfg.App.ButtonLabel
		buttonStyle := lipgloss.NewStyle().Bold(true).Foreground(tint)
		opts.Button = func() string { return buttonStyle.Render(label) }
	}

	if cfg.Logging.File != "" {
		logger, err := logging.NewFileLogger(logging.ComponentScreen, cfg.Logging.File, cfg.Logging.Colors)
		if err != nil {
			fmt.Fprintf(os.Stderr, "❌ Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		opts.Logger = logger
	}

	return opts
}

func styleOverride(s config.StyleConfig) onboarding.StyleOverride {
	o := onboarding.StyleOverride{
		Bold:      s.Bold,
		Faint:     s.Faint,
		Underline: s.Underline,
	}
	if s.Foreground != "" {
		o.Foreground = lipgloss.Color(s.Foreground)
	}
	return o
}

// sampleConfig is the built-in demo screen.
func sampleConfig() *config.Config {
	cfg := config.Default()
	cfg.App.Name = "Cascade"
	cfg.App.Icon = "   ◢◣\n  ◢◆◆◣\n ◢◆◆◆◆◣"
	cfg.App.ButtonLabel = "Get started →"
	cfg.Features = []config.FeatureConfig{
		{
			Title:       "Fast setup",
			Description: "Running in seconds, no account needed. Read the docs for details.",
			Icon:        "bolt",
			Links: []config.LinkConfig{
				{Text: "the docs", URL: "https://example.com/docs"},
			},
		},
		{
			Title:       "Private by default",
			Description: "Nothing leaves your machine unless you say so. See the privacy policy.",
			Icon:        "lock",
			Links: []config.LinkConfig{
				{Text: "privacy policy", URL: "https://example.com/privacy"},
			},
		},
		{
			Title:       "Extensible",
			Description: "Plugins, themes and scripting out of the box.",
			Icon:        "gear",
		},
	}
	return cfg
}
