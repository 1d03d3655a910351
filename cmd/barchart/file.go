package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gogpu/ggchart"
	"gopkg.in/yaml.v3"
)

// chartFile is the on-disk chart description. JSON files parse as well,
// since JSON is valid YAML. Absent keys keep their defaults.
type chartFile struct {
	Width         *int     `yaml:"width"`
	Height        *int     `yaml:"height"`
	TitleText     *string  `yaml:"titleText"`
	XAxisText     *string  `yaml:"xAxisText"`
	YAxisText     *string  `yaml:"yAxisText"`
	YMax          *float64 `yaml:"yMax"`
	XPadding      *float64 `yaml:"xPadding"`
	YPadding      *float64 `yaml:"yPadding"`
	BarWidth      *float64 `yaml:"bar_width"`
	BarSpacing    *float64 `yaml:"bar_spacing"`
	SegmentsX     *int     `yaml:"graphSegments_X"`
	SegmentsY     *int     `yaml:"graphSegments_Y"`
	TitleColor    *string  `yaml:"titleColor"`
	XTextColor    *string  `yaml:"xTextColor"`
	YTextColor    *string  `yaml:"yTextColor"`
	XSegmentColor *string  `yaml:"xSegmentColor"`
	YSegmentColor *string  `yaml:"ySegmentColor"`
	Verbose       *bool    `yaml:"verbose"`

	Entries []fileEntry `yaml:"entries"`
}

type fileEntry struct {
	Value float64 `yaml:"value"`
	Color string  `yaml:"color"`
}

func loadChartFile(path string) (chartFile, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return chartFile{}, fmt.Errorf("read chart file: %w", err)
	}
	defer f.Close()

	var cf chartFile
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cf); err != nil && !errors.Is(err, io.EOF) {
		return chartFile{}, fmt.Errorf("parse chart file %s: %w", path, err)
	}
	return cf, nil
}

// apply overlays the keys present in the file onto cfg and reports whether
// yMax was given.
func (cf chartFile) apply(cfg *ggchart.Config) (yMaxSet bool) {
	set(&cfg.Width, cf.Width)
	set(&cfg.Height, cf.Height)
	set(&cfg.TitleText, cf.TitleText)
	set(&cfg.XAxisText, cf.XAxisText)
	set(&cfg.YAxisText, cf.YAxisText)
	set(&cfg.XPadding, cf.XPadding)
	set(&cfg.YPadding, cf.YPadding)
	set(&cfg.BarWidth, cf.BarWidth)
	set(&cfg.BarSpacing, cf.BarSpacing)
	set(&cfg.SegmentsX, cf.SegmentsX)
	set(&cfg.SegmentsY, cf.SegmentsY)
	set(&cfg.TitleColor, cf.TitleColor)
	set(&cfg.XTextColor, cf.XTextColor)
	set(&cfg.YTextColor, cf.YTextColor)
	set(&cfg.XSegmentColor, cf.XSegmentColor)
	set(&cfg.YSegmentColor, cf.YSegmentColor)
	set(&cfg.Verbose, cf.Verbose)
	if cf.YMax != nil {
		cfg.YMax = *cf.YMax
		return true
	}
	return false
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
