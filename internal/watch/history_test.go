package watch

import (
	"fmt"
	"testing"

	"github.com/rileyhilliard/rrwatch/internal/exec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func result(output string) exec.CommandResult {
	return exec.CommandResult{
		Command:   "date",
		Timestamp: "2026-10-19 12:00:00.000",
		Status:    true,
		Output:    output,
		Stdout:    output,
	}
}

func TestHistory_Push(t *testing.T) {
	h := NewHistory(0)
	assert.Equal(t, -1, h.Selected())
	_, ok := h.SelectedResult()
	assert.False(t, ok)

	assert.True(t, h.Push(result("a")))
	assert.Equal(t, 1, h.Len())
	assert.Equal(t, 0, h.Selected())

	assert.True(t, h.Push(result("b")))
	assert.Equal(t, 1, h.Selected(), "selection follows the latest entry")

	latest, ok := h.Latest()
	require.True(t, ok)
	assert.Equal(t, "b", latest.Output)
}

func TestHistory_PushCollapsesUnchangedOutput(t *testing.T) {
	h := NewHistory(0)
	h.Push(result("same"))

	assert.False(t, h.Push(result("same")))
	assert.Equal(t, 1, h.Len())

	failed := result("same")
	failed.Status = false
	assert.True(t, h.Push(failed), "a status change is a new entry")
	assert.Equal(t, 2, h.Len())
}

func TestHistory_PushKeepsOlderSelection(t *testing.T) {
	h := NewHistory(0)
	h.Push(result("a"))
	h.Push(result("b"))
	h.Move(1, h.Visible(nil)) // towards older

	require.Equal(t, 0, h.Selected())
	h.Push(result("c"))
	assert.Equal(t, 0, h.Selected())
}

func TestHistory_Limit(t *testing.T) {
	h := NewHistory(3)
	for i := 0; i < 5; i++ {
		h.Push(result(fmt.Sprintf("run %d", i)))
	}

	assert.Equal(t, 3, h.Len())
	assert.Equal(t, "run 2", h.At(0).Output)
	assert.Equal(t, 2, h.Selected())

	sel, ok := h.SelectedResult()
	require.True(t, ok)
	assert.Equal(t, "run 4", sel.Output)
}

func TestHistory_LimitShiftsOlderSelection(t *testing.T) {
	h := NewHistory(2)
	h.Push(result("a"))
	h.Push(result("b"))
	h.Move(1, h.Visible(nil))
	require.Equal(t, 0, h.Selected())

	h.Push(result("c"))
	assert.Equal(t, 0, h.Selected(), "selection clamps when its entry is evicted")
	assert.Equal(t, "b", h.At(0).Output)
}

func TestHistory_Visible(t *testing.T) {
	h := NewHistory(0)
	h.Push(result("apple"))
	h.Push(result("banana"))
	h.Push(result("apricot"))

	assert.Equal(t, []int{2, 1, 0}, h.Visible(nil))

	startsWithA := func(r exec.CommandResult) bool { return r.Output[0] == 'a' }
	assert.Equal(t, []int{2, 0}, h.Visible(startsWithA))
}

func TestHistory_Move(t *testing.T) {
	h := NewHistory(0)
	for _, out := range []string{"a", "b", "c", "d"} {
		h.Push(result(out))
	}
	all := h.Visible(nil)

	tests := []struct {
		name  string
		delta int
		want  int
	}{
		{"older", 1, 2},
		{"older again", 1, 1},
		{"past the oldest", 5, 0},
		{"newer", -1, 1},
		{"past the newest", -10, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h.Move(tt.delta, all)
			assert.Equal(t, tt.want, h.Selected())
		})
	}
}

func TestHistory_MoveFromHiddenSelection(t *testing.T) {
	h := NewHistory(0)
	h.Push(result("a"))
	h.Push(result("b"))
	h.Push(result("c"))

	h.Move(1, []int{1, 0})
	assert.Equal(t, 1, h.Selected())

	h.Move(1, nil)
	assert.Equal(t, 1, h.Selected(), "nothing visible leaves the selection alone")
}

func TestHistory_Reselect(t *testing.T) {
	h := NewHistory(0)
	h.Push(result("a"))
	h.Push(result("b"))

	h.Reselect([]int{1, 0})
	assert.Equal(t, 1, h.Selected())

	h.Reselect([]int{0})
	assert.Equal(t, 0, h.Selected())

	h.Reselect(nil)
	assert.Equal(t, 0, h.Selected())
}
