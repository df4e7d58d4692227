// Package state defines the display modes shared between the watch host and
// the header: which pane has focus, how successive outputs are compared,
// which output stream is shown, and whether filter text is being entered.
package state

import (
	"fmt"
	"strings"

	"github.com/rileyhilliard/rrwatch/internal/errors"
	"github.com/rileyhilliard/rrwatch/internal/util"
)

// Accepted names for the diff and output flags.
var (
	diffModeNames   = []string{"none", "watch", "line", "word"}
	outputModeNames = []string{"output", "stdout", "stderr"}
)

// suggestMode lists the valid names, leading with the closest one to s.
func suggestMode(s string, names []string) string {
	valid := "Use one of: " + strings.Join(names, ", ") + "."
	if similar := util.SuggestSimilar(strings.TrimSpace(s), names, 3); len(similar) > 0 {
		return fmt.Sprintf("Did you mean '%s'? %s", similar[0], valid)
	}
	return valid
}

// ActiveArea is the pane that currently receives navigation keys.
type ActiveArea int

const (
	AreaHistory ActiveArea = iota
	AreaWatch
)

// String returns the header label for the area.
func (a ActiveArea) String() string {
	switch a {
	case AreaWatch:
		return "watch"
	default:
		return "history"
	}
}

// Toggle switches focus to the other pane.
func (a ActiveArea) Toggle() ActiveArea {
	if a == AreaHistory {
		return AreaWatch
	}
	return AreaHistory
}

// DiffMode controls how successive outputs are compared.
type DiffMode int

const (
	DiffDisable DiffMode = iota
	DiffWatch
	DiffLine
	DiffWord
)

// diffModeCount is used by Next to wrap around.
const diffModeCount = 4

// String returns the header label for the diff mode.
func (d DiffMode) String() string {
	switch d {
	case DiffWatch:
		return "Watch"
	case DiffLine:
		return "Line"
	case DiffWord:
		return "Word"
	default:
		return "None"
	}
}

// Next cycles None -> Watch -> Line -> Word -> None.
func (d DiffMode) Next() DiffMode {
	return DiffMode((int(d) + 1) % diffModeCount)
}

// ParseDiffMode converts a flag or config value into a DiffMode.
// Accepts the names case-insensitively ("none", "watch", "line", "word")
// and the digit shortcuts 0-3 used by the keyboard.
func ParseDiffMode(s string) (DiffMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "disable", "0":
		return DiffDisable, nil
	case "watch", "1":
		return DiffWatch, nil
	case "line", "2":
		return DiffLine, nil
	case "word", "3":
		return DiffWord, nil
	}
	return DiffDisable, errors.New(errors.ErrConfig,
		fmt.Sprintf("'%s' isn't a diff mode", s),
		suggestMode(s, diffModeNames))
}

// OutputMode selects which stream of a result is displayed.
type OutputMode int

const (
	OutputCombined OutputMode = iota
	OutputStdout
	OutputStderr
)

// String returns the header label for the output mode.
func (o OutputMode) String() string {
	switch o {
	case OutputStdout:
		return "Stdout"
	case OutputStderr:
		return "Stderr"
	default:
		return "Output"
	}
}

// ParseOutputMode converts a flag or config value into an OutputMode.
func ParseOutputMode(s string) (OutputMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "output":
		return OutputCombined, nil
	case "stdout":
		return OutputStdout, nil
	case "stderr":
		return OutputStderr, nil
	}
	return OutputCombined, errors.New(errors.ErrConfig,
		fmt.Sprintf("'%s' isn't an output mode", s),
		suggestMode(s, outputModeNames))
}

// InputMode tracks filter entry in the history pane.
type InputMode int

const (
	InputNone InputMode = iota
	InputFilter
	InputRegexFilter
)

// String returns a debug label for the input mode.
func (i InputMode) String() string {
	switch i {
	case InputFilter:
		return "filter"
	case InputRegexFilter:
		return "regex"
	default:
		return "none"
	}
}

// Editing reports whether keystrokes should go to the filter input.
func (i InputMode) Editing() bool {
	return i == InputFilter || i == InputRegexFilter
}
