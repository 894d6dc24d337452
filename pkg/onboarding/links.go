package onboarding

import (
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/muesli/termenv"
	"github.com/pkg/browser"
)

// noticeText is the blocking user-facing message shown when a link
// destination cannot be opened. The failure is never retried or propagated.
const noticeText = "Could not open link"

// openURL hands the link to the platform browser. Swapped out in tests.
var openURL = func(url string) error {
	return browser.OpenURL(url)
}

// copyURL puts the link target on the system clipboard. Swapped out in tests.
var copyURL = func(url string) error {
	return clipboard.WriteAll(url)
}

// supportsHyperlinks reports whether the terminal understands OSC 8
// hyperlinks. There is no capability query for this; the usual heuristic is
// checking the emulators known to support it.
func supportsHyperlinks() bool {
	if os.Getenv("VTE_VERSION") != "" {
		return true
	}
	switch os.Getenv("TERM_PROGRAM") {
	case "iTerm.app", "WezTerm", "ghostty", "vscode":
		return true
	}
	return strings.Contains(os.Getenv("TERM"), "kitty")
}

// hyperlink wraps rendered text in an OSC 8 escape so the emulator makes it
// clickable, leaving the styled text untouched otherwise.
func hyperlink(url, rendered string) string {
	return termenv.Hyperlink(url, rendered)
}
