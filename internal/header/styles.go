package header

import "github.com/charmbracelet/lipgloss"

// Header palette, ANSI codes so it follows the terminal theme.
const (
	ColorAccent  lipgloss.Color = "6" // Cyan
	ColorSuccess lipgloss.Color = "2" // Green
	ColorFailure lipgloss.Color = "1" // Red
	ColorOutput  lipgloss.Color = "3" // Yellow
	ColorDiff    lipgloss.Color = "5" // Magenta
	ColorMuted   lipgloss.Color = "7" // Gray
)

var (
	IntervalStyle  = lipgloss.NewStyle().Foreground(ColorAccent)
	TimestampStyle = lipgloss.NewStyle().Foreground(ColorAccent)
	HintStyle      = lipgloss.NewStyle().Reverse(true)

	CommandSuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	CommandFailureStyle = lipgloss.NewStyle().Foreground(ColorFailure)

	PromptStyle       = lipgloss.NewStyle().Foreground(ColorMuted)
	KeywordStyle      = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
	KeywordEmptyStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	LabelStyle = lipgloss.NewStyle().Bold(true)

	// Toggle values: green when on, terminal default when off.
	EnabledStyle  = lipgloss.NewStyle().Foreground(ColorSuccess)
	DisabledStyle = lipgloss.NewStyle()

	OutputValueStyle = lipgloss.NewStyle().Foreground(ColorOutput)
	ActiveValueStyle = lipgloss.NewStyle().Foreground(ColorAccent)
	DiffValueStyle   = lipgloss.NewStyle().Foreground(ColorDiff)
)

// toggleStyle picks the style for a boolean indicator.
func toggleStyle(on bool) lipgloss.Style {
	if on {
		return EnabledStyle
	}
	return DisabledStyle
}

// commandStyle colors the command by the outcome of its last run.
func commandStyle(ok bool) lipgloss.Style {
	if ok {
		return CommandSuccessStyle
	}
	return CommandFailureStyle
}
