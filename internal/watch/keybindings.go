package watch

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/rrwatch/internal/state"
)

// KeyMap lists every binding on the watch screen.
type KeyMap struct {
	Help key.Binding
	Quit key.Binding

	Color      key.Binding
	LineNumber key.Binding

	CycleDiff key.Binding
	DiffNone  key.Binding
	DiffWatch key.Binding
	DiffLine  key.Binding
	DiffWord  key.Binding

	Stdout key.Binding
	Stderr key.Binding
	Output key.Binding

	SwitchArea key.Binding

	Filter      key.Binding
	RegexFilter key.Binding
	Escape      key.Binding
	Submit      key.Binding

	Up   key.Binding
	Down key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Help: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Color: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "color"),
		),
		LineNumber: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "line numbers"),
		),
		CycleDiff: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "cycle diff"),
		),
		DiffNone: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "no diff"),
		),
		DiffWatch: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "watch diff"),
		),
		DiffLine: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "line diff"),
		),
		DiffWord: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "word diff"),
		),
		Stdout: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("F1", "stdout"),
		),
		Stderr: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("F2", "stderr"),
		),
		Output: key.NewBinding(
			key.WithKeys("f3"),
			key.WithHelp("F3", "output"),
		),
		SwitchArea: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "switch pane"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		RegexFilter: key.NewBinding(
			key.WithKeys("*"),
			key.WithHelp("*", "regex filter"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("ESC", "clear filter"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply filter"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
	}
}

// HandleKeyMsg processes keyboard input and returns updated model state and command.
// Returns true if the key was handled, false otherwise.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return true, m.quit()
	}

	// Filter entry swallows everything else
	if m.inputMode.Editing() {
		return true, m.handleFilterKey(msg)
	}

	if key.Matches(msg, m.keys.Quit) {
		return true, m.quit()
	}

	if key.Matches(msg, m.keys.Help) {
		m.showHelp = !m.showHelp
		return true, nil
	}

	// While help is showing only scrolling and closing apply
	if m.showHelp {
		switch {
		case key.Matches(msg, m.keys.Escape):
			m.showHelp = false
		case key.Matches(msg, m.keys.Up):
			m.help.ScrollUp(1)
		case key.Matches(msg, m.keys.Down):
			m.help.ScrollDown(1)
		default:
			return false, nil
		}
		return true, nil
	}

	switch {
	case key.Matches(msg, m.keys.Color):
		m.color = !m.color
		m.header.SetAnsiColor(m.color)
		m.refreshWatch()

	case key.Matches(msg, m.keys.LineNumber):
		m.lineNumber = !m.lineNumber
		m.header.SetLineNumber(m.lineNumber)
		m.refreshWatch()

	case key.Matches(msg, m.keys.CycleDiff):
		m.setDiff(m.diff.Next())
	case key.Matches(msg, m.keys.DiffNone):
		m.setDiff(state.DiffDisable)
	case key.Matches(msg, m.keys.DiffWatch):
		m.setDiff(state.DiffWatch)
	case key.Matches(msg, m.keys.DiffLine):
		m.setDiff(state.DiffLine)
	case key.Matches(msg, m.keys.DiffWord):
		m.setDiff(state.DiffWord)

	case key.Matches(msg, m.keys.Stdout):
		m.setOutput(state.OutputStdout)
	case key.Matches(msg, m.keys.Stderr):
		m.setOutput(state.OutputStderr)
	case key.Matches(msg, m.keys.Output):
		m.setOutput(state.OutputCombined)

	case key.Matches(msg, m.keys.SwitchArea):
		m.active = m.active.Toggle()
		m.header.SetActiveArea(m.active)

	case key.Matches(msg, m.keys.Filter):
		return true, m.startFilter(state.InputFilter)
	case key.Matches(msg, m.keys.RegexFilter):
		return true, m.startFilter(state.InputRegexFilter)

	case key.Matches(msg, m.keys.Escape):
		m.clearFilter()

	case key.Matches(msg, m.keys.Up):
		m.scroll(-1)
	case key.Matches(msg, m.keys.Down):
		m.scroll(1)

	default:
		return false, nil
	}

	return true, nil
}

// handleFilterKey edits the filter keyword. The history is refiltered on
// every keystroke.
func (m *Model) handleFilterKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.inputMode = state.InputNone
		m.filterInput.Blur()
		m.header.SetInputMode(m.inputMode)
		return nil

	case key.Matches(msg, m.keys.Escape):
		m.clearFilter()
		return nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.setFilterText(m.filterInput.Value())
	return cmd
}

// scroll moves the history selection or the watch pane, depending on which
// area is active.
func (m *Model) scroll(delta int) {
	if m.active == state.AreaWatch {
		if delta < 0 {
			m.watch.LineUp(-delta)
		} else {
			m.watch.LineDown(delta)
		}
		return
	}

	m.history.Move(delta, m.visible())
	m.refreshWatch()
}
