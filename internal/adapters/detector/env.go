// Package detector selects the output mode for watch sessions.
package detector

import (
	"os"

	"golang.org/x/term"
)

// OutputMode represents the rendering mode for watch output.
type OutputMode int

const (
	// ModeAuto automatically detects the appropriate mode.
	ModeAuto OutputMode = iota
	// ModeTUI uses the interactive terminal renderer.
	ModeTUI
	// ModePlain emits line-oriented output suitable for CI logs.
	ModePlain
)

// DetectEnvironment returns the recommended output mode. Non-TTY stdout and
// CI environments both demote to plain output.
func DetectEnvironment() OutputMode {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))

	ci := os.Getenv("CI")
	isCI := ci == "true" || ci == "1"

	if !isTTY || isCI {
		return ModePlain
	}
	return ModeTUI
}

// ResolveMode applies the user's --output flag to the auto-detected mode.
// Recognized values are "auto", "tui", "plain" and "ci"; anything else
// falls back to auto-detection.
func ResolveMode(autoDetected OutputMode, userFlag string) OutputMode {
	switch userFlag {
	case "tui":
		return ModeTUI
	case "plain", "ci":
		return ModePlain
	default:
		return autoDetected
	}
}
