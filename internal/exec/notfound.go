package exec

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rileyhilliard/rrwatch/internal/errors"
)

// commandNotFoundPatterns match "command not found" messages from common
// shells. They only apply to exit code 127.
var commandNotFoundPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)bash: (?:line \d+: )?(\S+): command not found`),
	regexp.MustCompile(`(?i)zsh: command not found: (\S+)`),
	regexp.MustCompile(`(?i)sh: \d+: (\S+): not found`),
	regexp.MustCompile(`(?i)(\S+): not found`),
	regexp.MustCompile(`(?i)(\S+): command not found`),
}

// IsCommandNotFound checks if a result's stderr indicates a missing command.
// Returns the command name (if extractable) and whether it's a
// command-not-found failure.
func IsCommandNotFound(stderr string, exitCode int) (string, bool) {
	if exitCode != 127 {
		return "", false
	}

	for _, pattern := range commandNotFoundPatterns {
		if matches := pattern.FindStringSubmatch(stderr); len(matches) > 1 {
			return matches[1], true
		}
	}

	return "", true
}

// MissingCommandError describes a run that failed because the executable
// wasn't on PATH. Returns nil for any other result.
func MissingCommandError(r CommandResult) error {
	name, notFound := IsCommandNotFound(r.Stderr, r.ExitCode)
	if !notFound {
		return nil
	}
	if name == "" {
		parts := strings.Fields(r.Command)
		name = "command"
		if len(parts) > 0 {
			name = parts[0]
		}
	}
	return errors.New(errors.ErrExec,
		fmt.Sprintf("'%s' wasn't found in PATH", name),
		fmt.Sprintf("Install '%s' or use its full path; the watch keeps retrying every interval.", name))
}
