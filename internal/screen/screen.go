// Package screen is the drawing surface shared by the header, the panes and
// the help overlay. Components describe what to draw as styled segments and
// hand them to a Surface, which owns placement and clipping.
package screen

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Rect is a region of the terminal in cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// NewRect builds a Rect, clamping negative sizes to zero.
func NewRect(x, y, width, height int) Rect {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right returns the exclusive right edge.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Empty reports whether the rect covers no cells.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Intersect returns the overlap of r and o, or a zero Rect if they don't overlap.
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.Right(), o.Right()), min(r.Bottom(), o.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Segment is a run of text drawn with a single style.
type Segment struct {
	Text  string
	Style lipgloss.Style
}

// Raw returns an unstyled segment. Text may carry its own ANSI sequences.
func Raw(text string) Segment {
	return Segment{Text: text, Style: lipgloss.NewStyle()}
}

// Styled returns a segment drawn with style.
func Styled(text string, style lipgloss.Style) Segment {
	return Segment{Text: text, Style: style}
}

// Render returns the segment text with its style applied.
func (s Segment) Render() string {
	if s.Text == "" {
		return ""
	}
	return s.Style.Render(s.Text)
}

// Width returns the display width of the segment in cells.
func (s Segment) Width() int {
	return ansi.StringWidth(s.Text)
}

// Line is an ordered sequence of segments drawn left to right on one row.
type Line []Segment

// Render joins the styled segments.
func (l Line) Render() string {
	var b strings.Builder
	for _, s := range l {
		b.WriteString(s.Render())
	}
	return b.String()
}

// Plain joins the segment text without styles.
func (l Line) Plain() string {
	var b strings.Builder
	for _, s := range l {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Width returns the total display width of the line in cells.
func (l Line) Width() int {
	w := 0
	for _, s := range l {
		w += s.Width()
	}
	return w
}

// PlainLines wraps each string in an unstyled Line.
func PlainLines(text []string) []Line {
	lines := make([]Line, len(text))
	for i, t := range text {
		lines[i] = Line{Raw(t)}
	}
	return lines
}

// Surface is a drawing target. Paint draws lines top to bottom starting at
// r's top-left corner, clipped to r. Clear blanks every cell of r.
type Surface interface {
	Size() Rect
	Paint(r Rect, lines []Line)
	Clear(r Rect)
}
