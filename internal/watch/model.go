package watch

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/rrwatch/internal/exec"
	"github.com/rileyhilliard/rrwatch/internal/header"
	"github.com/rileyhilliard/rrwatch/internal/help"
	"github.com/rileyhilliard/rrwatch/internal/logger"
	"github.com/rileyhilliard/rrwatch/internal/state"
)

// MinRunTimeout is the shortest time a single run may take before it's
// cancelled. Longer intervals get ten intervals.
const MinRunTimeout = 10 * time.Second

// Runner executes the watched command once.
type Runner interface {
	Run(ctx context.Context, command string) (exec.CommandResult, error)
}

// Options configure a watch session.
type Options struct {
	Command    string
	Interval   time.Duration
	Color      bool
	LineNumber bool
	Diff       state.DiffMode
	Output     state.OutputMode
	Limit      int // 0 keeps every result
}

// Model is the Bubble Tea model for the watch screen.
type Model struct {
	opts   Options
	runner Runner
	log    logger.Logger
	keys   KeyMap

	// ctx is cancelled on quit so in-flight runs stop with the program.
	ctx    context.Context
	cancel context.CancelFunc

	header  *header.Header
	help    *help.Overlay
	history *History

	watch       viewport.Model
	filterInput textinput.Model

	width  int
	height int

	color      bool
	lineNumber bool
	diff       state.DiffMode
	output     state.OutputMode
	active     state.ActiveArea

	inputMode   state.InputMode
	filterText  string
	filterRegex bool
	matcher     Matcher

	running  bool
	showHelp bool
	quitting bool
}

// tickMsg signals that the next run is due.
type tickMsg time.Time

// resultMsg carries the outcome of one run.
type resultMsg struct {
	result exec.CommandResult
	err    error
}

// NewModel creates a watch model. A nil log discards log output.
func NewModel(runner Runner, opts Options, log logger.Logger) Model {
	if log == nil {
		log = logger.Noop()
	}
	if opts.Interval <= 0 {
		opts.Interval = time.Duration(header.DefaultInterval * float64(time.Second))
	}

	ctx, cancel := context.WithCancel(context.Background())

	input := textinput.New()
	input.Prompt = ""

	m := Model{
		opts:        opts,
		runner:      runner,
		log:         log,
		keys:        DefaultKeyMap(),
		ctx:         ctx,
		cancel:      cancel,
		header:      header.New(),
		help:        help.New(),
		history:     NewHistory(opts.Limit),
		watch:       viewport.New(0, 0),
		filterInput: input,
		color:       opts.Color,
		lineNumber:  opts.LineNumber,
		diff:        opts.Diff,
		output:      opts.Output,
		active:      state.AreaHistory,
	}

	m.header.SetInterval(opts.Interval.Seconds())
	m.header.SetCurrentResult(exec.CommandResult{Command: opts.Command, Status: true})
	m.header.SetAnsiColor(m.color)
	m.header.SetLineNumber(m.lineNumber)
	m.header.SetDiffMode(m.diff)
	m.header.SetOutputMode(m.output)
	m.header.SetActiveArea(m.active)

	return m
}

// Init triggers the first run right away.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg {
		return tickMsg(time.Now())
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case tickMsg:
		if m.quitting {
			return m, nil
		}
		// Skip a beat rather than stack runs behind a slow command
		if m.running {
			return m, m.tickCmd()
		}
		m.running = true
		return m, tea.Batch(m.runCmd(), m.tickCmd())

	case resultMsg:
		m.running = false
		m.handleResult(msg)
	}

	return m, nil
}

// View renders the watch screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.render()
}

// tickCmd returns a command that sends a tick after the interval.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.opts.Interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// runCmd returns a command that runs the watched command once.
func (m Model) runCmd() tea.Cmd {
	ctx, runner, command, timeout := m.ctx, m.runner, m.opts.Command, m.runTimeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		result, err := runner.Run(ctx, command)
		return resultMsg{result: result, err: err}
	}
}

func (m Model) runTimeout() time.Duration {
	return max(m.opts.Interval*10, MinRunTimeout)
}

// handleResult records a finished run and points the header at it.
func (m *Model) handleResult(msg resultMsg) {
	r := msg.result
	if msg.err != nil {
		m.log.Warn("run of %q failed: %v", r.Command, msg.err)
		if r.Output == "" {
			r.Output = msg.err.Error()
			r.Stderr = r.Output
		}
	}
	if err := exec.MissingCommandError(r); err != nil {
		m.log.Warn("%v", err)
	}

	m.header.SetCurrentResult(r)

	if !m.history.Push(r) {
		m.log.Debug("output unchanged at %s", r.Timestamp)
		return
	}
	m.history.Reselect(m.visible())
	m.refreshWatch()
}

// quit stops in-flight runs and exits the program.
func (m *Model) quit() tea.Cmd {
	m.quitting = true
	m.cancel()
	return tea.Quit
}

func (m *Model) setDiff(d state.DiffMode) {
	m.diff = d
	m.header.SetDiffMode(d)
}

func (m *Model) setOutput(o state.OutputMode) {
	m.output = o
	m.header.SetOutputMode(o)
	// The filter matches against the displayed stream
	m.rebuildMatcher()
}

// startFilter begins keyword entry, seeded with the current keyword.
func (m *Model) startFilter(mode state.InputMode) tea.Cmd {
	m.inputMode = mode
	m.filterRegex = mode == state.InputRegexFilter

	// Clearing first lets the prompt glyph follow the new mode
	m.header.SetInputText("")
	m.header.SetInputMode(mode)
	m.header.SetInputText(m.filterText)

	m.filterInput.SetValue(m.filterText)
	m.filterInput.CursorEnd()
	m.rebuildMatcher()
	return m.filterInput.Focus()
}

// clearFilter leaves keyword entry and drops the keyword.
func (m *Model) clearFilter() {
	m.inputMode = state.InputNone
	m.filterInput.Reset()
	m.filterInput.Blur()
	m.header.SetInputMode(m.inputMode)
	m.setFilterText("")
}

func (m *Model) setFilterText(text string) {
	m.filterText = text
	m.header.SetInputText(text)
	m.rebuildMatcher()
}

func (m *Model) rebuildMatcher() {
	match, err := NewMatcher(m.filterText, m.filterRegex, m.output)
	if err != nil {
		m.log.Debug("filter: %v", err)
	}
	m.matcher = match
	m.history.Reselect(m.visible())
	m.refreshWatch()
}

// visible returns the history indices that pass the filter, newest first.
func (m Model) visible() []int {
	return m.history.Visible(m.matcher)
}

// resize lays the panes out for a new window size.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	m.header.SetArea(m.headerRect())
	watch := m.watchRect()
	m.watch.Width = watch.Width
	m.watch.Height = watch.Height
	m.refreshWatch()
}

// refreshWatch loads the selected result into the watch pane.
func (m *Model) refreshWatch() {
	r, ok := m.history.SelectedResult()
	if !ok {
		m.watch.SetContent("")
		return
	}
	m.watch.SetContent(formatOutput(r.Lines(m.output), m.color, m.lineNumber))
}
