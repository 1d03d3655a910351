package ggchart

import "image/color"

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float64
}

// Entry is one bar.
//
// Position.Y is the raw value to plot. Position.X is kept as supplied but
// does not place the bar: bars occupy slots in the order they were added.
// A nil Color draws in opaque black.
type Entry struct {
	Position Vec2
	Color    color.Color
}

// NewEntry returns an entry for value v in color c. The slot is recorded in
// Position.X.
func NewEntry(slot int, v float64, c color.Color) Entry {
	return Entry{Position: Vec2{X: float64(slot), Y: v}, Color: c}
}

func (e Entry) color() color.Color {
	if e.Color == nil {
		return color.Black
	}
	return e.Color
}
