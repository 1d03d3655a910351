package ggchart

import (
	"image/color"
	"math"
	"strconv"

	"github.com/gogpu/ggchart/internal/scale"
)

// Label indents to the left of the Y axis, in pixels.
const (
	intLabelIndent  = 25
	fracLabelIndent = 35
)

// Point is a position in canvas pixels. Y grows downwards.
type Point struct {
	X, Y float64
}

// Line is a straight segment in canvas pixels.
type Line struct {
	From, To Point
}

// Bar is the geometry of one drawn bar.
type Bar struct {
	Slot  int     // insertion index
	Value float64 // raw entry value

	// Rectangle. Y is the top edge; bars with negative values have a
	// negative Height and extend below the baseline.
	X, Y, Width, Height float64

	Label    string
	LabelPos Point // baseline origin of the value text
	Color    color.Color
}

// Tick is a gridline marker with its label.
type Tick struct {
	Pos      Point
	Label    string
	LabelPos Point
}

// Outline is the geometry of the title, axis labels and axis lines.
type Outline struct {
	TitlePos Point // title is centered horizontally on this point
	XTextPos Point
	YTextPos Point
	XAxis    Line // vertical line, drawn in the X text color
	YAxis    Line // horizontal line along the baseline, drawn in the Y text color
}

// Layout is everything Render draws, in canvas pixels.
type Layout struct {
	Width, Height float64

	// Drawable is the pixel height that the largest entry value maps to.
	Drawable float64

	// MaxValue is the largest entry value, never below 0.
	MaxValue float64

	Bars    []Bar
	Outline Outline
	YTicks  []Tick
	XTicks  []Tick
}

// Layout computes the chart geometry for the current entries on the
// provider's canvas.
func (c *Chart) Layout() Layout {
	w := float64(c.provider.Width())
	h := float64(c.provider.Height())
	cfg := c.cfg

	yStep := h / float64(cfg.SegmentsY)
	xStep := (w - c.xPadding) / float64(cfg.SegmentsX)
	drawable := yStep * float64(cfg.SegmentsY-2)

	values := make([]float64, len(c.entries))
	for i, e := range c.entries {
		values[i] = e.Position.Y
	}
	maxValue := scale.Max(values)

	l := Layout{
		Width:    w,
		Height:   h,
		Drawable: drawable,
		MaxValue: maxValue,
	}

	n := min(cfg.SegmentsX, len(c.entries))
	l.Bars = make([]Bar, 0, n)
	for i := range n {
		e := c.entries[i]
		v := e.Position.Y
		bh := scale.Normalize(v, 0, maxValue) * drawable
		x := c.xPadding + float64(i)*xStep
		top := h - c.yOffset - bh
		l.Bars = append(l.Bars, Bar{
			Slot:     i,
			Value:    v,
			X:        x,
			Y:        top,
			Width:    cfg.BarWidth,
			Height:   bh,
			Label:    formatValue(v),
			LabelPos: Point{X: x + 5, Y: top - 10},
			Color:    e.color(),
		})
	}

	l.Outline = Outline{
		TitlePos: Point{X: w / 2, Y: c.yOffset},
		XTextPos: Point{X: w/2 - 10, Y: h - c.yOffset/2 + 10},
		YTextPos: Point{X: c.xOffset/2 - 8, Y: h / 2},
		XAxis: Line{
			From: Point{X: c.xPadding, Y: h - c.yPadding},
			To:   Point{X: c.xPadding, Y: c.yPadding},
		},
		YAxis: Line{
			From: Point{X: c.xPadding, Y: h - c.yPadding},
			To:   Point{X: w - c.xPadding, Y: h - c.yPadding},
		},
	}

	l.YTicks = make([]Tick, 0, cfg.SegmentsY-1)
	for i := range cfg.SegmentsY - 1 {
		offset := yStep * float64(i)
		y := h - offset - c.yPadding
		v := roundTick(scale.Normalize(offset, 0, drawable) * cfg.YMax)
		indent := float64(fracLabelIndent)
		if v == math.Trunc(v) {
			indent = intLabelIndent
		}
		l.YTicks = append(l.YTicks, Tick{
			Pos:      Point{X: c.xPadding, Y: y},
			Label:    formatTick(v),
			LabelPos: Point{X: c.xPadding - indent, Y: y},
		})
	}

	l.XTicks = make([]Tick, 0, cfg.SegmentsX-1)
	for i := range cfg.SegmentsX - 1 {
		x := c.xPadding + xStep*float64(i)
		l.XTicks = append(l.XTicks, Tick{
			Pos:      Point{X: x, Y: h - c.yPadding},
			Label:    strconv.Itoa(i),
			LabelPos: Point{X: x, Y: h - c.yOffset + 12},
		})
	}

	return l
}

// formatValue prints a raw entry value with the shortest exact
// representation.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// roundTick rounds a gridline value to the two decimals its label shows.
func roundTick(v float64) float64 {
	return math.Round(v*100) / 100
}

// formatTick prints a gridline value already rounded by roundTick.
func formatTick(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
