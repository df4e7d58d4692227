package watch

import "github.com/rileyhilliard/rrwatch/internal/exec"

// History keeps run results oldest first and tracks which one is selected.
// Consecutive runs with identical output are collapsed into one entry.
type History struct {
	results  []exec.CommandResult
	limit    int
	selected int
}

// NewHistory creates a history holding at most limit results. A limit of 0
// or less keeps everything.
func NewHistory(limit int) *History {
	return &History{limit: limit, selected: -1}
}

// Push records a result. It returns false when the result's output matches
// the latest entry and nothing was added. The selection follows new entries
// only if it was already on the latest one.
func (h *History) Push(r exec.CommandResult) bool {
	if n := len(h.results); n > 0 && h.results[n-1].SameOutput(r) {
		return false
	}

	following := h.selected == len(h.results)-1
	h.results = append(h.results, r)
	if following {
		h.selected = len(h.results) - 1
	}

	if h.limit > 0 && len(h.results) > h.limit {
		drop := len(h.results) - h.limit
		h.results = append([]exec.CommandResult(nil), h.results[drop:]...)
		h.selected = max(0, h.selected-drop)
	}
	return true
}

// Len returns the number of stored results.
func (h *History) Len() int {
	return len(h.results)
}

// At returns the result at index i (0 is the oldest).
func (h *History) At(i int) exec.CommandResult {
	return h.results[i]
}

// Latest returns the newest result, if any.
func (h *History) Latest() (exec.CommandResult, bool) {
	if len(h.results) == 0 {
		return exec.CommandResult{}, false
	}
	return h.results[len(h.results)-1], true
}

// Selected returns the index of the selected result, or -1 when empty.
func (h *History) Selected() int {
	return h.selected
}

// SelectedResult returns the selected result, if any.
func (h *History) SelectedResult() (exec.CommandResult, bool) {
	if h.selected < 0 || h.selected >= len(h.results) {
		return exec.CommandResult{}, false
	}
	return h.results[h.selected], true
}

// Visible returns the indices of results accepted by match, newest first.
// A nil match accepts everything.
func (h *History) Visible(match Matcher) []int {
	idx := make([]int, 0, len(h.results))
	for i := len(h.results) - 1; i >= 0; i-- {
		if match == nil || match(h.results[i]) {
			idx = append(idx, i)
		}
	}
	return idx
}

// Move shifts the selection by delta rows within visible, which is ordered
// newest first: a negative delta moves towards newer results. If the current
// selection is hidden, the newest visible result is selected.
func (h *History) Move(delta int, visible []int) {
	if len(visible) == 0 {
		return
	}
	pos := indexOf(visible, h.selected)
	if pos < 0 {
		h.selected = visible[0]
		return
	}
	pos = min(max(pos+delta, 0), len(visible)-1)
	h.selected = visible[pos]
}

// Reselect moves the selection to the newest visible result when the
// current one is filtered out.
func (h *History) Reselect(visible []int) {
	if len(visible) > 0 && indexOf(visible, h.selected) < 0 {
		h.selected = visible[0]
	}
}

func indexOf(xs []int, v int) int {
	for i, x := range xs {
		if x == v {
			return i
		}
	}
	return -1
}
