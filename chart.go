package ggchart

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/gogpu/ggchart/canvas"
	"github.com/gogpu/ggchart/internal/fonts"
)

// Axis line width in pixels.
const axisLineWidth = 1.5

// Marker dots drawn at each gridline position.
const (
	markerRadius = 2
	markerColor  = "#ECF0F1"
)

// Chart renders a bar chart onto a canvas.Provider.
//
// A Chart is not safe for concurrent use, and neither is a Provider shared
// between charts.
type Chart struct {
	cfg      Config
	colors   palette
	provider *canvas.Provider
	entries  []Entry

	// Fixed at construction.
	xOffset  float64
	yOffset  float64
	xPadding float64
	yPadding float64
}

// New creates a chart drawing onto p.
//
// The configuration starts from DefaultConfig and the options are applied in
// order. If p has no surface yet it is initialized with the configured size;
// an already initialized provider keeps its size and the chart lays itself
// out on that. A nil p gets a fresh provider of its own.
func New(p *canvas.Provider, opts ...Option) (*Chart, error) {
	cfg, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	colors, err := cfg.palette()
	if err != nil {
		return nil, err
	}
	if p == nil {
		p = canvas.New()
	}

	c := &Chart{
		cfg:      cfg,
		colors:   colors,
		provider: p,
		xOffset:  cfg.XPadding - 20,
		yOffset:  cfg.YPadding,
		xPadding: cfg.XPadding,
		yPadding: cfg.YPadding,
	}

	log := c.logger()
	if !p.Ready() {
		if err := p.Initialize(cfg.Width, cfg.Height); err != nil {
			return nil, fmt.Errorf("ggchart: initialize surface: %w", err)
		}
	} else if p.Width() != cfg.Width || p.Height() != cfg.Height {
		log.Warn("ggchart: surface already initialized with a different size",
			"surface_width", p.Width(), "surface_height", p.Height(),
			"width", cfg.Width, "height", cfg.Height)
	}
	log.Info("ggchart: chart created", "config", cfg)
	return c, nil
}

// logger returns the package logger for verbose charts and a silent one
// otherwise.
func (c *Chart) logger() *slog.Logger {
	if c.cfg.Verbose {
		return Logger()
	}
	return newNopLogger()
}

// Config returns the resolved configuration.
func (c *Chart) Config() Config {
	return c.cfg
}

// Provider returns the provider the chart draws onto.
func (c *Chart) Provider() *canvas.Provider {
	return c.provider
}

// Add appends entries in order. Values are not validated: negative values
// draw below the baseline and only the first SegmentsX entries are drawn.
func (c *Chart) Add(entries ...Entry) {
	c.entries = append(c.entries, entries...)
}

// Entries returns a copy of the entries in insertion order.
func (c *Chart) Entries() []Entry {
	return slices.Clone(c.entries)
}

// Render draws the chart: a translucent background, the bars, the title and
// axes, then the gridline markers.
//
// Render draws over whatever the surface already holds. The background is
// translucent, so a second Render does not fully erase the first.
func (c *Chart) Render() error {
	label, err := fonts.Label()
	if err != nil {
		return fmt.Errorf("ggchart: render: %w", err)
	}
	title, err := fonts.Title()
	if err != nil {
		return fmt.Errorf("ggchart: render: %w", err)
	}

	dc := c.provider.Context()
	l := c.Layout()

	steps := []struct {
		name string
		draw func() error
	}{
		{"background", func() error { return c.drawBackground(dc, l) }},
		{"bars", func() error { return c.drawBars(dc, l, label) }},
		{"outline", func() error { return c.drawOutline(dc, l, label, title) }},
		{"gridlines", func() error { return c.drawGridlines(dc, l, label) }},
	}
	for _, s := range steps {
		if err := s.draw(); err != nil {
			return fmt.Errorf("ggchart: render %s: %w", s.name, err)
		}
	}
	return nil
}

// Save writes the surface to path, encoded according to its extension.
// Save does not render: saving a chart that was never rendered writes the
// blank surface.
func (c *Chart) Save(path string) error {
	return c.provider.Save(path)
}

// Encode writes the surface to w in format f. Like Save, it does not render.
func (c *Chart) Encode(w io.Writer, f canvas.Format) error {
	return c.provider.Encode(w, f)
}
