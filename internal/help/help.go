// Package help renders the keybinding reference as a centered, scrollable
// modal drawn over the watch screen.
package help

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/rileyhilliard/rrwatch/internal/screen"
)

// Title is drawn into the top border of the panel.
const Title = "help"

// Panel size as a percentage of the screen.
const (
	WidthPercent  = 60
	HeightPercent = 50
)

var (
	ColorText   = lipgloss.Color("10") // Light green
	ColorBorder = lipgloss.Color("7")  // Gray

	TextStyle   = lipgloss.NewStyle().Foreground(ColorText)
	BorderStyle = lipgloss.NewStyle().Foreground(ColorBorder)
)

// Binding is one row of the help text.
type Binding struct {
	Key  string
	Desc string
}

// bindings lists every key the watch screen understands, grouped the way
// they're handled: help, toggles, quit, diff, output, panes, filtering.
var bindings = []Binding{
	{Key: "h", Desc: "show this help message."},
	{Key: "c", Desc: "toggle color mode."},
	{Key: "n", Desc: "toggle line number."},
	{Key: "d", Desc: "switch diff mode at None, Watch, Line, and Word mode."},
	{Key: "q", Desc: "exit rrwatch."},
	{Key: "0", Desc: "disable diff."},
	{Key: "1", Desc: "switch Watch type diff."},
	{Key: "2", Desc: "switch Line type diff."},
	{Key: "3", Desc: "switch Word type diff."},
	{Key: "F1", Desc: "change output mode as stdout."},
	{Key: "F2", Desc: "change output mode as stderr."},
	{Key: "F3", Desc: "change output mode as output (stdout/stderr set)."},
	{Key: "Tab", Desc: "toggle current area at history or watch."},
	{Key: "/", Desc: "filter history by string."},
	{Key: "*", Desc: "filter history by regex."},
	{Key: "ESC", Desc: "unfiltering."},
	{Key: "up/k", Desc: "scroll up (history, watch, or this help)."},
	{Key: "down/j", Desc: "scroll down (history, watch, or this help)."},
}

// Overlay is the help modal. Its content never changes after New; only the
// scroll position moves.
type Overlay struct {
	content  []string
	position int

	// rows is the number of content rows visible in the last render, or 0
	// before the first render.
	rows int
}

// New builds the help text with the scroll position at the top.
func New() *Overlay {
	return &Overlay{content: formatBindings(bindings)}
}

func formatBindings(bs []Binding) []string {
	keyWidth := 0
	for _, b := range bs {
		keyWidth = max(keyWidth, len(b.Key))
	}

	lines := make([]string, len(bs))
	for i, b := range bs {
		key := "[" + b.Key + "] key"
		lines[i] = " - " + key + strings.Repeat(" ", keyWidth-len(b.Key)) + " ... " + b.Desc
	}
	return lines
}

// Lines returns a copy of the help text.
func (o *Overlay) Lines() []string {
	return append([]string(nil), o.content...)
}

// Position returns the index of the first visible line.
func (o *Overlay) Position() int {
	return o.position
}

// ScrollUp moves the view n lines towards the top, stopping at 0.
func (o *Overlay) ScrollUp(n int) {
	o.position = max(0, o.position-n)
}

// ScrollDown moves the view n lines towards the bottom. Once the overlay has
// been rendered the last page stays full, otherwise the limit is the content
// length.
func (o *Overlay) ScrollDown(n int) {
	o.position = max(0, min(o.position+n, o.limit()))
}

func (o *Overlay) limit() int {
	if o.rows <= 0 {
		return len(o.content)
	}
	return max(0, len(o.content)-o.rows)
}

// CenteredRect returns a rect of percentX by percentY of r, centered in r.
// Leftover cells go to the right and bottom margins.
func CenteredRect(percentX, percentY int, r screen.Rect) screen.Rect {
	w := r.Width * percentX / 100
	h := r.Height * percentY / 100
	return screen.NewRect(
		r.X+(r.Width-w)/2,
		r.Y+(r.Height-h)/2,
		w,
		h,
	)
}

// Render clears the centered panel area on s and draws the bordered help
// text into it, starting at the current scroll position.
func (o *Overlay) Render(s screen.Surface) {
	area := CenteredRect(WidthPercent, HeightPercent, s.Size())
	if area.Width < 2 || area.Height < 2 {
		return
	}

	o.rows = max(0, area.Height-2)
	o.position = min(o.position, o.limit())

	s.Clear(area)
	s.Paint(area, o.panel(area.Width, area.Height))
}

// panel draws the border box with the visible slice of content.
func (o *Overlay) panel(width, height int) []screen.Line {
	inner := width - 2

	title := ansi.Truncate(Title, inner, "")
	top := "┌" + title + strings.Repeat("─", inner-ansi.StringWidth(title)) + "┐"
	bottom := "└" + strings.Repeat("─", inner) + "┘"

	lines := make([]screen.Line, 0, height)
	lines = append(lines, screen.Line{screen.Styled(top, BorderStyle)})

	for row := 0; row < height-2; row++ {
		text := ""
		if i := o.position + row; i < len(o.content) {
			text = ansi.Truncate(o.content[i], inner, "")
		}
		pad := strings.Repeat(" ", inner-ansi.StringWidth(text))
		lines = append(lines, screen.Line{
			screen.Styled("│", BorderStyle),
			screen.Styled(text+pad, TextStyle),
			screen.Styled("│", BorderStyle),
		})
	}

	lines = append(lines, screen.Line{screen.Styled(bottom, BorderStyle)})
	return lines
}
