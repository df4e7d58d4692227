// Package header composes the two-line status bar at the top of the watch
// screen: poll interval, last command and its outcome, timestamp, the
// filter keyword and the current display toggles.
//
// The host mutates a Header through its setters whenever something upstream
// changes and calls Render once per frame. Recompute is separated from Render
// so layout and styling can be checked without a terminal.
package header

import (
	"fmt"
	"strconv"

	"github.com/mattn/go-runewidth"
	"github.com/rileyhilliard/rrwatch/internal/exec"
	"github.com/rileyhilliard/rrwatch/internal/screen"
	"github.com/rileyhilliard/rrwatch/internal/state"
)

// DefaultInterval is the poll interval in seconds shown before the host sets one.
const DefaultInterval = 2.0

// Height is the number of rows the header occupies.
const Height = 2

// Indicator value columns on the second line.
const (
	widthNumber = 5
	widthColor  = 5
	widthOutput = 6
	widthActive = 7
	widthDiff   = 5

	widthInterval = 9
)

// Filter prompt glyphs.
const (
	PromptFilter = "/"
	PromptRegex  = "*"
)

// Header holds everything the status bar displays.
type Header struct {
	area screen.Rect

	interval   float64
	command    string
	timestamp  string
	execStatus bool

	lineNumber bool
	ansiColor  bool

	activeArea state.ActiveArea
	diffMode   state.DiffMode
	outputMode state.OutputMode
	inputMode  state.InputMode

	inputPrompt string
	inputText   string
}

// RenderModel is one frame of the header.
type RenderModel struct {
	Status  screen.Line // interval, command, help hint, timestamp
	Toggles screen.Line // filter keyword and mode indicators
}

// Lines returns both rows top to bottom.
func (m RenderModel) Lines() []screen.Line {
	return []screen.Line{m.Status, m.Toggles}
}

// New creates a header with session defaults.
func New() *Header {
	return &Header{
		interval:   DefaultInterval,
		execStatus: true,
		activeArea: state.AreaHistory,
		diffMode:   state.DiffDisable,
		outputMode: state.OutputCombined,
		inputMode:  state.InputNone,
	}
}

func (h *Header) SetArea(area screen.Rect)            { h.area = area }
func (h *Header) SetActiveArea(area state.ActiveArea) { h.activeArea = area }
func (h *Header) SetOutputMode(mode state.OutputMode) { h.outputMode = mode }
func (h *Header) SetLineNumber(enabled bool)          { h.lineNumber = enabled }
func (h *Header) SetAnsiColor(enabled bool)           { h.ansiColor = enabled }
func (h *Header) SetInterval(seconds float64)         { h.interval = seconds }
func (h *Header) SetDiffMode(mode state.DiffMode)     { h.diffMode = mode }

// SetCurrentResult replaces the command, timestamp and status together.
func (h *Header) SetCurrentResult(result exec.CommandResult) {
	h.command = result.Command
	h.timestamp = result.Timestamp
	h.execStatus = result.Status
}

// SetInputMode switches filter entry on or off.
func (h *Header) SetInputMode(mode state.InputMode) {
	h.inputMode = mode
	h.refreshPrompt()
}

// SetInputText updates the filter keyword being typed.
func (h *Header) SetInputText(text string) {
	h.inputText = text
	h.refreshPrompt()
}

// refreshPrompt picks the prompt glyph for the current input mode. The glyph
// only follows the mode while no keyword has been typed, so it stays put
// while the user edits the keyword.
func (h *Header) refreshPrompt() {
	if h.inputText != "" {
		return
	}
	switch h.inputMode {
	case state.InputFilter:
		h.inputPrompt = PromptFilter
	case state.InputRegexFilter:
		h.inputPrompt = PromptRegex
	default:
		h.inputPrompt = ""
	}
}

func (h *Header) Area() screen.Rect          { return h.area }
func (h *Header) InputText() string          { return h.inputText }
func (h *Header) InputMode() state.InputMode { return h.inputMode }
func (h *Header) Prompt() string             { return h.inputPrompt }

// Recompute builds the render model from the current state and area width.
// It never fails: every column width is clamped at zero.
func (h *Header) Recompute() RenderModel {
	layout := ComputeLayout(h.area.Width)

	status := screen.Line{
		screen.Raw("Every "),
		screen.Styled(padLeft(fmt.Sprintf("%.3f", h.interval), widthInterval), IntervalStyle),
		screen.Raw("s: "),
		screen.Styled(fitRight(h.command, layout.Command), commandStyle(h.execStatus)),
		screen.Styled(HelpMessage, HintStyle),
		screen.Styled(fitLeft(h.timestamp, layout.Timestamp), TimestampStyle),
	}

	keywordStyle := KeywordEmptyStyle
	if h.inputText != "" {
		keywordStyle = KeywordStyle
	}

	toggles := screen.Line{
		screen.Styled(h.inputPrompt, PromptStyle),
		screen.Styled(fitTail(h.inputText, layout.Filter), keywordStyle),

		screen.Styled("Number: ", LabelStyle),
		screen.Styled(fitRight(strconv.FormatBool(h.lineNumber), widthNumber), toggleStyle(h.lineNumber)),

		screen.Styled("Color: ", LabelStyle),
		screen.Styled(fitRight(strconv.FormatBool(h.ansiColor), widthColor), toggleStyle(h.ansiColor)),
		screen.Raw(" "),

		screen.Styled("Output: ", LabelStyle),
		screen.Styled(fitRight(h.outputMode.String(), widthOutput), OutputValueStyle),
		screen.Raw(" "),

		screen.Styled("Active: ", LabelStyle),
		screen.Styled(fitRight(h.activeArea.String(), widthActive), ActiveValueStyle),
		screen.Raw(" "),

		screen.Styled("Diff: ", LabelStyle),
		screen.Styled(fitRight(h.diffMode.String(), widthDiff), DiffValueStyle),
	}

	return RenderModel{Status: status, Toggles: toggles}
}

// Render paints the header into its area.
func (h *Header) Render(s screen.Surface) {
	s.Paint(h.area, h.Recompute().Lines())
}

// fitRight left-justifies s in exactly width cells, truncating if needed.
func fitRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.FillRight(runewidth.Truncate(s, width, ""), width)
}

// fitLeft right-justifies s in exactly width cells, truncating if needed.
func fitLeft(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.FillLeft(runewidth.Truncate(s, width, ""), width)
}

// fitTail is fitRight that drops leading runes instead of trailing ones, so
// the end of a long keyword (where the user is typing) stays visible.
func fitTail(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	for len(runes) > 0 && runewidth.StringWidth(string(runes)) > width {
		runes = runes[1:]
	}
	return runewidth.FillRight(string(runes), width)
}

// padLeft right-justifies s in at least width cells without truncating.
func padLeft(s string, width int) string {
	return runewidth.FillLeft(s, width)
}
