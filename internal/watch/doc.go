// Package watch is the interactive rrwatch screen: it re-runs a command on a
// fixed interval and shows the output next to a history of previous runs.
//
// # Architecture
//
// The package uses the Bubble Tea framework (Model-Update-View):
//
//   - Model: session state (options, history, selection, toggles, filter)
//   - Update: processes keystrokes, window resizes, ticks and run results
//   - View: paints header, panes and the help overlay onto a screen.Canvas
//
// # Message Flow
//
//  1. tickMsg fires every interval and starts a run unless one is in flight
//  2. runCmd executes the command through the Runner with a per-run timeout
//  3. resultMsg lands in History and updates the header
//  4. View() re-renders from the current state
//
// # Layout
//
//	rows 0-1     header.Header (status line and toggles line)
//	left         watch pane: output of the selected run (bubbles viewport)
//	right        history pane, 25 columns when the window is wider than 60
//	center       help.Overlay, when visible
//
// # Keyboard Shortcuts
//
// Bindings live in keybindings.go. While a filter is being typed, keys go to
// the filter input; Enter keeps the keyword and Esc drops it.
package watch
