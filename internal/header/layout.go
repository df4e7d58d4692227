package header

// Column budget of the first header line. The interval chrome covers
// "Every " + the 9-cell interval + "s: " plus one cell of slack; the help
// column is reserved for the hint and the timestamp.
const (
	IntervalChrome = 19
	HelpColumn     = 56
	ChromeBudget   = IntervalChrome + HelpColumn

	// FilterChrome is the space the second line keeps free after the
	// help column when sizing the filter keyword field.
	FilterChrome = 15

	HelpMessage = "Display help with h key!"
)

// Layout holds the variable column widths of the header. All widths are >= 0.
type Layout struct {
	Command   int
	Timestamp int
	Filter    int
}

// ComputeLayout derives the column widths for a header of the given width.
// Every subtraction saturates at zero, so narrow terminals collapse the
// variable fields instead of producing negative widths.
func ComputeLayout(width int) Layout {
	if width < 0 {
		width = 0
	}

	command := 0
	if width > ChromeBudget {
		command = width - ChromeBudget
	}

	return Layout{
		Command:   command,
		Timestamp: saturate(width - (IntervalChrome + command + len(HelpMessage)) + 1),
		Filter:    saturate(width - HelpColumn - FilterChrome),
	}
}

func saturate(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
