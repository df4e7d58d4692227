package exec

import (
	"strings"

	"github.com/rileyhilliard/rrwatch/internal/state"
)

// TimestampFormat is how run times are shown in the header and history pane.
const TimestampFormat = "2006-01-02 15:04:05.000"

// CommandResult is the outcome of one run of the watched command.
type CommandResult struct {
	Command   string
	Timestamp string
	Status    bool // true when the command exited 0
	ExitCode  int

	Output string // stdout and stderr interleaved in arrival order
	Stdout string
	Stderr string
}

// OutputFor returns the stream selected by mode.
func (r CommandResult) OutputFor(mode state.OutputMode) string {
	switch mode {
	case state.OutputStdout:
		return r.Stdout
	case state.OutputStderr:
		return r.Stderr
	default:
		return r.Output
	}
}

// SameOutput reports whether two results produced identical combined output.
func (r CommandResult) SameOutput(other CommandResult) bool {
	return r.Output == other.Output && r.Status == other.Status
}

// Lines splits the selected stream into lines, dropping the trailing newline.
func (r CommandResult) Lines(mode state.OutputMode) []string {
	out := strings.TrimSuffix(r.OutputFor(mode), "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}
