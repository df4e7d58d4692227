package screen

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/cellbuf"
)

// Canvas is an in-memory Surface backed by a cell buffer. A fresh canvas is
// built for every frame and flattened with String.
type Canvas struct {
	buf    *cellbuf.Buffer
	bounds Rect
}

// NewCanvas creates a blank canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	bounds := NewRect(0, 0, width, height)
	c := &Canvas{
		buf:    cellbuf.NewBuffer(bounds.Width, bounds.Height),
		bounds: bounds,
	}
	c.Clear(bounds)
	return c
}

// Size returns the full canvas area.
func (c *Canvas) Size() Rect {
	return c.bounds
}

// Paint draws each line on its own row of r. Lines past r's height are
// dropped and each row is truncated to r's width.
func (c *Canvas) Paint(r Rect, lines []Line) {
	clip := r.Intersect(c.bounds)
	if clip.Empty() {
		return
	}

	for i, line := range lines {
		y := r.Y + i
		if y < clip.Y {
			continue
		}
		if y >= clip.Bottom() {
			break
		}
		row := ansi.Truncate(line.Render(), clip.Width, "")
		cellbuf.SetContentRect(c.buf, row, cellbuf.Rect(clip.X, y, clip.Width, 1))
	}
}

// Clear blanks r.
func (c *Canvas) Clear(r Rect) {
	clip := r.Intersect(c.bounds)
	if clip.Empty() {
		return
	}

	blank := strings.Repeat(" ", clip.Width)
	block := strings.Repeat(blank+"\n", clip.Height-1) + blank
	cellbuf.SetContentRect(c.buf, block, cellbuf.Rect(clip.X, clip.Y, clip.Width, clip.Height))
}

// String flattens the canvas into newline-separated rows.
func (c *Canvas) String() string {
	rows := c.Rows()
	return strings.Join(rows, "\n")
}

// Rows returns the rendered content of every row.
func (c *Canvas) Rows() []string {
	rows := make([]string, c.bounds.Height)
	for y := range rows {
		_, rows[y] = cellbuf.RenderLine(c.buf, y)
	}
	return rows
}
