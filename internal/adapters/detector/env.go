// Package detector picks the output mode from the terminal environment.
package detector

import (
	"os"

	"golang.org/x/term"
)

// OutputMode selects how build progress is rendered.
type OutputMode int

const (
	// ModeAuto detects the mode from the environment.
	ModeAuto OutputMode = iota
	// ModePretty renders colored output.
	ModePretty
	// ModePlain renders uncolored output for CI logs and pipes.
	ModePlain
	// ModeTUI renders a live dashboard. It is never detected, only requested.
	ModeTUI
)

// DetectEnvironment returns ModePlain when stderr is not a terminal, CI is set
// or NO_COLOR is set, and ModePretty otherwise.
func DetectEnvironment() OutputMode {
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return ModePlain
	}
	if ci := os.Getenv("CI"); ci == "true" || ci == "1" {
		return ModePlain
	}
	if os.Getenv("NO_COLOR") != "" {
		return ModePlain
	}
	return ModePretty
}

// ResolveMode applies the --progress flag ("auto", "pretty", "plain", "tui") to the detected mode.
func ResolveMode(detected OutputMode, flag string) OutputMode {
	switch flag {
	case "pretty":
		return ModePretty
	case "plain", "ci":
		return ModePlain
	case "tui":
		return ModeTUI
	default:
		return detected
	}
}
