// Package testing provides test doubles for the screen package.
package testing

import (
	"github.com/rileyhilliard/rrwatch/internal/screen"
)

// PaintCall records a call to Paint.
type PaintCall struct {
	Rect  screen.Rect
	Lines []screen.Line
}

// Op is one recorded surface operation, in call order.
type Op struct {
	Kind string // "paint" or "clear"
	Rect screen.Rect
}

// FakeSurface records drawing calls without rendering anything.
type FakeSurface struct {
	Bounds screen.Rect

	PaintCalls []PaintCall
	ClearCalls []screen.Rect
	Ops        []Op
}

// NewFakeSurface creates a fake surface of the given size.
func NewFakeSurface(width, height int) *FakeSurface {
	return &FakeSurface{Bounds: screen.NewRect(0, 0, width, height)}
}

// Size returns the configured bounds.
func (f *FakeSurface) Size() screen.Rect {
	return f.Bounds
}

// Paint records the call.
func (f *FakeSurface) Paint(r screen.Rect, lines []screen.Line) {
	f.PaintCalls = append(f.PaintCalls, PaintCall{Rect: r, Lines: lines})
	f.Ops = append(f.Ops, Op{Kind: "paint", Rect: r})
}

// Clear records the call.
func (f *FakeSurface) Clear(r screen.Rect) {
	f.ClearCalls = append(f.ClearCalls, r)
	f.Ops = append(f.Ops, Op{Kind: "clear", Rect: r})
}

// LastPaint returns the most recent Paint call, or false if there was none.
func (f *FakeSurface) LastPaint() (PaintCall, bool) {
	if len(f.PaintCalls) == 0 {
		return PaintCall{}, false
	}
	return f.PaintCalls[len(f.PaintCalls)-1], true
}

// Reset forgets all recorded calls.
func (f *FakeSurface) Reset() {
	f.PaintCalls = nil
	f.ClearCalls = nil
	f.Ops = nil
}

var _ screen.Surface = (*FakeSurface)(nil)
