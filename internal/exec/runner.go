package exec

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/rileyhilliard/rrwatch/internal/errors"
)

// waitDelay bounds how long Run waits for output pipes after the shell exits
// or is killed.
const waitDelay = time.Second

// Runner executes the watched command through a shell.
type Runner struct {
	// Shell is the argv prefix; the command string is appended as the last argument.
	Shell   []string
	WorkDir string

	now func() time.Time
}

// NewRunner builds a Runner from a shell invocation such as "bash -c".
// An empty value uses $SHELL (falling back to /bin/sh). A bare shell name
// gets "-c" appended.
func NewRunner(shell string) *Runner {
	fields := strings.Fields(shell)
	if len(fields) == 0 {
		sh := os.Getenv("SHELL")
		if sh == "" {
			sh = "/bin/sh"
		}
		fields = []string{sh}
	}
	if len(fields) == 1 {
		fields = append(fields, "-c")
	}
	return &Runner{Shell: fields, now: time.Now}
}

// Run executes command once and captures its output. A non-zero exit is a
// normal result with Status false; an error is returned only when the
// command couldn't be run at all or ctx ended first.
func (r *Runner) Run(ctx context.Context, command string) (CommandResult, error) {
	now := r.now
	if now == nil {
		now = time.Now
	}
	result := CommandResult{
		Command:   command,
		Timestamp: now().Format(TimestampFormat),
	}

	args := append(append([]string{}, r.Shell[1:]...), command)
	cmd := exec.CommandContext(ctx, r.Shell[0], args...)
	if r.WorkDir != "" {
		cmd.Dir = r.WorkDir
	}
	// Children of the shell can keep the pipes open after a kill.
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	combined := &syncBuffer{}
	cmd.Stdout = io.MultiWriter(&stdout, combined)
	cmd.Stderr = io.MultiWriter(&stderr, combined)

	runErr := cmd.Run()
	if runErr == exec.ErrWaitDelay {
		// The shell exited cleanly; a backgrounded child still held the pipes.
		runErr = nil
	}

	result.Stdout = stdout.String()
	result.Stderr = stderr.String()
	result.Output = combined.String()

	if ctx.Err() != nil {
		result.ExitCode = -1
		return result, errors.WrapWithCode(ctx.Err(), errors.ErrExec,
			"The command didn't finish in time",
			"Increase the interval or check the command for hangs.")
	}

	if runErr != nil {
		if exitErr, ok := runErr.(*exec.ExitError); ok {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		result.ExitCode = -1
		return result, errors.WrapWithCode(runErr, errors.ErrExec,
			"Couldn't run the command",
			"Make sure the shell exists and is executable.")
	}

	result.Status = true
	return result, nil
}

// syncBuffer serializes writes from the stdout and stderr copiers so the
// combined stream keeps arrival order.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
