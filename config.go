package ggchart

import (
	"fmt"
	"image/color"
	"log/slog"
	"math"
)

// Config is the resolved, immutable configuration of a Chart.
//
// Colors are specs understood by ParseColor. A Config is produced by New
// from DefaultConfig and the supplied options; read it back with
// Chart.Config.
type Config struct {
	Width  int // canvas width in pixels
	Height int // canvas height in pixels

	TitleText string
	XAxisText string
	YAxisText string

	// YMax is the value the topmost drawable Y gridline stands for.
	// Unless set with WithYMax it is derived from Height and SegmentsY.
	YMax float64

	XPadding float64
	YPadding float64

	BarWidth   float64
	BarSpacing float64 // kept for configuration files; bars are placed by segment

	SegmentsX int
	SegmentsY int

	TitleColor    string
	XTextColor    string
	YTextColor    string
	XSegmentColor string
	YSegmentColor string

	// Verbose logs the chart's configuration and geometry through Logger.
	Verbose bool
}

const defaultColor = "rgb(255,255,255)"

// DefaultConfig returns the configuration used when no options are given.
func DefaultConfig() Config {
	c := Config{
		Width:         200,
		Height:        200,
		TitleText:     "Title",
		XAxisText:     "X-Axis",
		YAxisText:     "Y-Axis",
		XPadding:      50,
		YPadding:      30,
		BarWidth:      10,
		BarSpacing:    5,
		SegmentsX:     10,
		SegmentsY:     10,
		TitleColor:    defaultColor,
		XTextColor:    defaultColor,
		YTextColor:    defaultColor,
		XSegmentColor: defaultColor,
		YSegmentColor: defaultColor,
	}
	c.YMax = c.drawableRange()
	return c
}

// yStep is the pixel distance between Y gridlines.
func (c Config) yStep() float64 {
	return float64(c.Height) / float64(c.SegmentsY)
}

// drawableRange is the height in pixels available to bars: the canvas
// height minus the two top segments kept for the title.
func (c Config) drawableRange() float64 {
	return c.yStep() * float64(c.SegmentsY-2)
}

// Validate reports the first setting that cannot produce a chart.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidSize, c.Width, c.Height)
	}
	if c.SegmentsX < 2 {
		return fmt.Errorf("%w: x segments = %d", ErrInvalidSegments, c.SegmentsX)
	}
	if c.SegmentsY < 2 {
		return fmt.Errorf("%w: y segments = %d", ErrInvalidSegments, c.SegmentsY)
	}
	if c.XPadding < 0 || c.YPadding < 0 {
		return fmt.Errorf("%w: negative padding (%v, %v)", ErrInvalidConfig, c.XPadding, c.YPadding)
	}
	if c.BarWidth < 0 || c.BarSpacing < 0 {
		return fmt.Errorf("%w: negative bar width or spacing (%v, %v)", ErrInvalidConfig, c.BarWidth, c.BarSpacing)
	}
	if math.IsNaN(c.YMax) || math.IsInf(c.YMax, 0) {
		return fmt.Errorf("%w: y max = %v", ErrInvalidConfig, c.YMax)
	}
	_, err := c.palette()
	return err
}

// palette holds the parsed configuration colors.
type palette struct {
	title    color.NRGBA
	xText    color.NRGBA
	yText    color.NRGBA
	xSegment color.NRGBA
	ySegment color.NRGBA
}

func (c Config) palette() (palette, error) {
	var p palette
	specs := []struct {
		name string
		spec string
		dst  *color.NRGBA
	}{
		{"title", c.TitleColor, &p.title},
		{"x text", c.XTextColor, &p.xText},
		{"y text", c.YTextColor, &p.yText},
		{"x segment", c.XSegmentColor, &p.xSegment},
		{"y segment", c.YSegmentColor, &p.ySegment},
	}
	for _, s := range specs {
		col, err := ParseColor(s.spec)
		if err != nil {
			return palette{}, fmt.Errorf("%s color: %w", s.name, err)
		}
		*s.dst = col
	}
	return p, nil
}

// LogValue implements slog.LogValuer.
func (c Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("width", c.Width),
		slog.Int("height", c.Height),
		slog.String("title", c.TitleText),
		slog.Float64("y_max", c.YMax),
		slog.Float64("x_padding", c.XPadding),
		slog.Float64("y_padding", c.YPadding),
		slog.Float64("bar_width", c.BarWidth),
		slog.Int("segments_x", c.SegmentsX),
		slog.Int("segments_y", c.SegmentsY),
	)
}
