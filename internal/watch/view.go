package watch

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/rileyhilliard/rrwatch/internal/header"
	"github.com/rileyhilliard/rrwatch/internal/screen"
	"github.com/rileyhilliard/rrwatch/internal/state"
)

// render paints one frame: header, watch pane, history pane, then the help
// overlay on top.
func (m Model) render() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	c := screen.NewCanvas(m.width, m.height)
	m.header.Render(c)
	c.Paint(m.watchRect(), screen.PlainLines(strings.Split(m.watch.View(), "\n")))
	c.Paint(m.historyRect(), m.historyLines(m.historyRect().Height))
	if m.showHelp {
		m.help.Render(c)
	}
	return c.String()
}

func (m Model) headerRect() screen.Rect {
	return screen.NewRect(0, 0, m.width, header.Height)
}

func (m Model) historyWidth() int {
	if m.width > HistoryMinWidth {
		return HistoryWidth
	}
	return 0
}

func (m Model) historyRect() screen.Rect {
	w := m.historyWidth()
	return screen.NewRect(m.width-w, header.Height, w, m.height-header.Height)
}

func (m Model) watchRect() screen.Rect {
	return screen.NewRect(0, header.Height, m.width-m.historyWidth(), m.height-header.Height)
}

// historyLines renders up to rows entries of the filtered history, newest
// first, scrolled so the selection stays on screen.
func (m Model) historyLines(rows int) []screen.Line {
	if rows <= 0 {
		return nil
	}

	visible := m.visible()
	selected := m.history.Selected()
	start := 0
	if pos := indexOf(visible, selected); pos >= rows {
		start = pos - rows + 1
	}

	lines := make([]screen.Line, 0, rows)
	for _, idx := range visible[start:] {
		if len(lines) == rows {
			break
		}
		r := m.history.At(idx)

		style := HistoryItemStyle
		if !r.Status {
			style = HistoryFailedStyle
		}
		if idx == selected {
			style = HistorySelectedStyle
			if m.active == state.AreaHistory {
				style = HistoryActiveSelectedStyle
			}
		}

		lines = append(lines, screen.Line{
			screen.Styled(separator, SeparatorStyle),
			screen.Raw(" "),
			screen.Styled(r.Timestamp, style),
		})
	}

	for len(lines) < rows {
		lines = append(lines, screen.Line{screen.Styled(separator, SeparatorStyle)})
	}
	return lines
}

// formatOutput prepares output lines for the watch pane. Escape sequences
// are stripped unless color is on; line numbers are right-aligned to the
// widest number.
func formatOutput(lines []string, color, numbered bool) string {
	digits := len(strconv.Itoa(len(lines)))

	out := make([]string, len(lines))
	for i, line := range lines {
		if !color {
			line = ansi.Strip(line)
		}
		if numbered {
			line = LineNumberStyle.Render(fmt.Sprintf("%*d ", digits, i+1)) + line
		}
		out[i] = line
	}
	return strings.Join(out, "\n")
}
