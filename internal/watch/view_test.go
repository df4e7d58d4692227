package watch

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/rileyhilliard/rrwatch/internal/help"
	"github.com/rileyhilliard/rrwatch/internal/screen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	// Plain output so frames can be compared as text
	lipgloss.SetColorProfile(termenv.Ascii)
}

func frame(m Model) []string {
	rows := strings.Split(m.View(), "\n")
	for i, row := range rows {
		rows[i] = ansi.Strip(row)
	}
	return rows
}

func TestLayout(t *testing.T) {
	tests := []struct {
		name        string
		width       int
		height      int
		wantWatch   screen.Rect
		wantHistory screen.Rect
	}{
		{"wide", 100, 30, screen.NewRect(0, 2, 75, 28), screen.NewRect(75, 2, 25, 28)},
		{"threshold hides history", 60, 30, screen.NewRect(0, 2, 60, 28), screen.NewRect(60, 2, 0, 28)},
		{"just over threshold", 61, 10, screen.NewRect(0, 2, 36, 8), screen.NewRect(36, 2, 25, 8)},
		{"header only", 80, 2, screen.NewRect(0, 2, 55, 0), screen.NewRect(55, 2, 25, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewModel(&fakeRunner{}, testOptions(), nil)
			m.resize(tt.width, tt.height)

			assert.Equal(t, screen.NewRect(0, 0, tt.width, 2), m.header.Area())
			assert.Equal(t, tt.wantWatch, m.watchRect())
			assert.Equal(t, tt.wantHistory, m.historyRect())
			assert.Equal(t, tt.wantWatch.Width, m.watch.Width)
			assert.Equal(t, tt.wantWatch.Height, m.watch.Height)
		})
	}
}

func TestView_BeforeResize(t *testing.T) {
	m := NewModel(&fakeRunner{}, testOptions(), nil)
	assert.Equal(t, "", m.View())
}

func TestView_Frame(t *testing.T) {
	m, _ := newTestModel(t)
	m = deliver(t, m, "hello\nworld\n")

	rows := frame(m)
	require.Len(t, rows, 20)

	assert.True(t, strings.HasPrefix(rows[0], "Every     1.000s: date"))
	assert.Contains(t, rows[0], "Display help with h key!")
	assert.Contains(t, rows[1], "Diff: None")

	assert.True(t, strings.HasPrefix(rows[2], "hello"))
	assert.True(t, strings.HasPrefix(rows[3], "world"))
	assert.Contains(t, rows[2], "│ 2026-10-19 12:00:00.000")

	sep := strings.Index(rows[2], "│")
	require.GreaterOrEqual(t, sep, 0)
	assert.Equal(t, 75, ansi.StringWidth(rows[2][:sep]), "history pane starts after the watch pane")
}

func TestView_HistoryNewestFirst(t *testing.T) {
	m, _ := newTestModel(t)
	m = deliver(t, m, "a", "b", "c")

	rows := frame(m)
	assert.Contains(t, rows[2], "12:00:02.000")
	assert.Contains(t, rows[3], "12:00:01.000")
	assert.Contains(t, rows[4], "12:00:00.000")
	assert.Contains(t, rows[5], "│")
}

func TestView_HistoryKeepsSelectionOnScreen(t *testing.T) {
	m := NewModel(&fakeRunner{}, testOptions(), nil)
	m.resize(80, 4) // two history rows
	m = deliver(t, m, "a", "b", "c", "d")
	m = press(t, m, "down", "down", "down")
	require.Equal(t, 0, m.history.Selected())

	lines := m.historyLines(2)
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0].Plain(), "12:00:01.000")
	assert.Contains(t, lines[1].Plain(), "12:00:00.000")
}

func TestView_FilteredHistory(t *testing.T) {
	m, _ := newTestModel(t)
	m = deliver(t, m, "keep", "drop", "keep too")
	m = press(t, m, "/", "k", "e", "e", "p", "enter")

	lines := m.historyLines(3)
	assert.Contains(t, lines[0].Plain(), "12:00:02.000")
	assert.Contains(t, lines[1].Plain(), "12:00:00.000")
	assert.Equal(t, "│", lines[2].Plain())
}

func TestView_NarrowHidesHistory(t *testing.T) {
	m := NewModel(&fakeRunner{}, testOptions(), nil)
	m.resize(50, 6)
	m = deliver(t, m, "hello")

	rows := frame(m)
	assert.True(t, strings.HasPrefix(rows[2], "hello"))
	for _, row := range rows {
		assert.NotContains(t, row, "│")
	}
}

func TestView_HelpOverlay(t *testing.T) {
	m, _ := newTestModel(t)
	m = deliver(t, m, "hello")
	m = press(t, m, "h")

	rows := frame(m)
	area := help.CenteredRect(help.WidthPercent, help.HeightPercent, screen.NewRect(0, 0, 100, 20))
	top := rows[area.Y]
	assert.Contains(t, top, "┌help")
	assert.Contains(t, rows[area.Y+1], "[h] key")
	assert.Contains(t, rows[area.Bottom()-1], "└")
}

func TestFormatOutput(t *testing.T) {
	lines := []string{"\x1b[31mred\x1b[0m", "plain"}

	tests := []struct {
		name     string
		color    bool
		numbered bool
		want     string
	}{
		{"stripped", false, false, "red\nplain"},
		{"color kept", true, false, "\x1b[31mred\x1b[0m\nplain"},
		{"numbered", false, true, "1 red\n2 plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatOutput(lines, tt.color, tt.numbered))
		})
	}
}

func TestFormatOutput_NumberWidth(t *testing.T) {
	lines := make([]string, 12)
	for i := range lines {
		lines[i] = "x"
	}
	out := strings.Split(formatOutput(lines, false, true), "\n")
	assert.Equal(t, " 1 x", out[0])
	assert.Equal(t, "12 x", out[11])
}
