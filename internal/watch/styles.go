package watch

import "github.com/charmbracelet/lipgloss"

// History pane width and the window width it needs before it's shown.
const (
	HistoryWidth    = 25
	HistoryMinWidth = 60
)

const (
	ColorSeparator = lipgloss.Color("7") // Gray
	ColorSelected  = lipgloss.Color("6") // Cyan
	ColorFailed    = lipgloss.Color("1") // Red
	ColorLineNo    = lipgloss.Color("3") // Yellow
)

var (
	SeparatorStyle = lipgloss.NewStyle().
			Foreground(ColorSeparator)

	HistoryItemStyle = lipgloss.NewStyle()

	HistoryFailedStyle = lipgloss.NewStyle().
				Foreground(ColorFailed)

	// Selection is drawn reversed so it stays visible on failed entries too.
	HistorySelectedStyle = lipgloss.NewStyle().
				Foreground(ColorSelected).
				Reverse(true)

	HistoryActiveSelectedStyle = HistorySelectedStyle.
					Bold(true)

	LineNumberStyle = lipgloss.NewStyle().
			Foreground(ColorLineNo)
)

// separator is the vertical rule between the watch and history panes.
const separator = "│"
