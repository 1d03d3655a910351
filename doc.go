// Package ggchart renders simple bar charts with gg.
//
// # Overview
//
// A Chart lays out a list of entries as bars along the X axis, draws the
// title, axis labels, axis lines and gridline markers, and writes the result
// as an image. Drawing happens on a canvas.Provider, which owns a single
// fixed-size gg context.
//
// # Quick Start
//
//	p := canvas.New()
//	c, err := ggchart.New(p,
//	    ggchart.WithSize(720, 480),
//	    ggchart.WithTitle("Uptime"),
//	    ggchart.WithSegments(18, 10),
//	    ggchart.WithBarWidth(25),
//	)
//	if err != nil {
//	    return err
//	}
//	c.Add(ggchart.NewEntry(0, 5, ggchart.MustParseColor("#345C7D")))
//	c.Add(ggchart.NewEntry(1, 250, ggchart.MustParseColor("#F7B094")))
//	if err := c.Render(); err != nil {
//	    return err
//	}
//	return c.Save("chart.png")
//
// # Layout
//
// The canvas height is split into SegmentsY segments; the top two are left
// for the title and the rest is the drawable range. Every entry value is
// normalized against the largest value, so the largest entry fills the
// drawable range exactly and a chart whose values are all zero (or empty)
// draws flat bars. Bars take slots in insertion order, one per X segment;
// entries past SegmentsX are kept but not drawn.
//
// Y gridline labels map the gridline's height back through YMax, so the
// topmost gridline reads YMax.
//
// # Coordinate System
//
// Canvas pixels with the origin at the top-left and Y growing downwards,
// as in gg.
package ggchart

// Version is the current version of the library.
const Version = "0.1.0"
