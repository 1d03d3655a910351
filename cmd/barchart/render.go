package main

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/canvas"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// defaultColors are cycled for entries without a color.
var defaultColors = []string{"#345C7D", "#F7B094", "#F5717F", "#6C5B7A", "#C06C84"}

type renderOptions struct {
	configPath string
	output     string
	values     []float64
	colors     []string

	// flags holds the flag values; only flags the user set are applied.
	flags ggchart.Config
}

func newRenderCmd() *cobra.Command {
	o := &renderOptions{flags: ggchart.DefaultConfig()}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a chart and save it",
		Long: `Render a bar chart and save it as an image.

Settings come from the defaults, then the --config file, then flags.
The output encoding follows the file extension (png, jpg, bmp, tiff).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.run(cmd)
		},
	}

	f := cmd.Flags()
	d := o.flags
	f.StringVarP(&o.configPath, "config", "c", "", "chart file (YAML or JSON)")
	f.StringVarP(&o.output, "output", "o", "image.png", "output image path")
	f.Float64SliceVar(&o.values, "values", nil, "bar values, in slot order")
	f.StringSliceVar(&o.colors, "colors", nil, "bar colors, cycled over the entries")

	f.IntVar(&o.flags.Width, "width", d.Width, "canvas width in pixels")
	f.IntVar(&o.flags.Height, "height", d.Height, "canvas height in pixels")
	f.StringVar(&o.flags.TitleText, "title", d.TitleText, "chart title")
	f.StringVar(&o.flags.XAxisText, "x-text", d.XAxisText, "X axis label")
	f.StringVar(&o.flags.YAxisText, "y-text", d.YAxisText, "Y axis label")
	f.Float64Var(&o.flags.YMax, "y-max", d.YMax, "value of the topmost gridline (default: derived from height)")
	f.Float64Var(&o.flags.XPadding, "x-padding", d.XPadding, "horizontal padding in pixels")
	f.Float64Var(&o.flags.YPadding, "y-padding", d.YPadding, "vertical padding in pixels")
	f.Float64Var(&o.flags.BarWidth, "bar-width", d.BarWidth, "bar width in pixels")
	f.Float64Var(&o.flags.BarSpacing, "bar-spacing", d.BarSpacing, "bar spacing in pixels")
	f.IntVar(&o.flags.SegmentsX, "segments-x", d.SegmentsX, "X axis segments (also the bar limit)")
	f.IntVar(&o.flags.SegmentsY, "segments-y", d.SegmentsY, "Y axis segments")
	f.StringVar(&o.flags.TitleColor, "title-color", d.TitleColor, "title color")
	f.StringVar(&o.flags.XTextColor, "x-text-color", d.XTextColor, "X axis label color")
	f.StringVar(&o.flags.YTextColor, "y-text-color", d.YTextColor, "Y axis label color")
	f.StringVar(&o.flags.XSegmentColor, "x-segment-color", d.XSegmentColor, "X tick label color")
	f.StringVar(&o.flags.YSegmentColor, "y-segment-color", d.YSegmentColor, "Y tick label color")
	f.BoolVarP(&o.flags.Verbose, "verbose", "v", false, "log chart geometry to stderr")

	return cmd
}

func (o *renderOptions) run(cmd *cobra.Command) error {
	cfg := ggchart.DefaultConfig()
	yMaxSet := false
	var file chartFile

	if o.configPath != "" {
		var err error
		file, err = loadChartFile(o.configPath)
		if err != nil {
			return err
		}
		yMaxSet = file.apply(&cfg)
	}
	if o.applyFlags(cmd.Flags(), &cfg) {
		yMaxSet = true
	}

	if cfg.Verbose {
		ggchart.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	entries, err := o.entries(cmd.Flags(), file)
	if err != nil {
		return err
	}

	c, err := ggchart.New(canvas.New(), chartOptions(cfg, yMaxSet)...)
	if err != nil {
		return err
	}
	c.Add(entries...)
	if err := c.Render(); err != nil {
		return err
	}
	if err := c.Save(o.output); err != nil {
		return err
	}

	p := c.Provider()
	fmt.Fprintf(cmd.OutOrStdout(), "saved %s (%dx%d, %d bars)\n",
		o.output, p.Width(), p.Height(), len(c.Layout().Bars))
	return nil
}

// applyFlags copies the flags the user set into cfg and reports whether
// --y-max was one of them.
func (o *renderOptions) applyFlags(fs *pflag.FlagSet, cfg *ggchart.Config) (yMaxSet bool) {
	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = o.flags.Width
		case "height":
			cfg.Height = o.flags.Height
		case "title":
			cfg.TitleText = o.flags.TitleText
		case "x-text":
			cfg.XAxisText = o.flags.XAxisText
		case "y-text":
			cfg.YAxisText = o.flags.YAxisText
		case "y-max":
			cfg.YMax = o.flags.YMax
			yMaxSet = true
		case "x-padding":
			cfg.XPadding = o.flags.XPadding
		case "y-padding":
			cfg.YPadding = o.flags.YPadding
		case "bar-width":
			cfg.BarWidth = o.flags.BarWidth
		case "bar-spacing":
			cfg.BarSpacing = o.flags.BarSpacing
		case "segments-x":
			cfg.SegmentsX = o.flags.SegmentsX
		case "segments-y":
			cfg.SegmentsY = o.flags.SegmentsY
		case "title-color":
			cfg.TitleColor = o.flags.TitleColor
		case "x-text-color":
			cfg.XTextColor = o.flags.XTextColor
		case "y-text-color":
			cfg.YTextColor = o.flags.YTextColor
		case "x-segment-color":
			cfg.XSegmentColor = o.flags.XSegmentColor
		case "y-segment-color":
			cfg.YSegmentColor = o.flags.YSegmentColor
		case "verbose":
			cfg.Verbose = o.flags.Verbose
		}
	})
	return yMaxSet
}

// entries builds the chart entries from --values, falling back to the
// chart file. --colors, when set, is cycled over the entries from either
// source and replaces any colors in the file.
func (o *renderOptions) entries(fs *pflag.FlagSet, file chartFile) ([]ggchart.Entry, error) {
	var values []float64
	var specs []string
	if fs.Changed("values") {
		values = o.values
		specs = make([]string, len(values))
	} else {
		for _, e := range file.Entries {
			values = append(values, e.Value)
			specs = append(specs, e.Color)
		}
	}
	if fs.Changed("colors") && len(o.colors) > 0 {
		for i := range specs {
			specs[i] = o.colors[i%len(o.colors)]
		}
	}

	entries := make([]ggchart.Entry, len(values))
	for i, v := range values {
		spec := specs[i]
		if spec == "" {
			spec = defaultColors[i%len(defaultColors)]
		}
		c, err := ggchart.ParseColor(spec)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		entries[i] = ggchart.NewEntry(i, v, c)
	}
	return entries, nil
}

// chartOptions turns a fully populated config into chart options.
func chartOptions(cfg ggchart.Config, yMaxSet bool) []ggchart.Option {
	opts := []ggchart.Option{
		ggchart.WithSize(cfg.Width, cfg.Height),
		ggchart.WithTitle(cfg.TitleText),
		ggchart.WithAxisText(cfg.XAxisText, cfg.YAxisText),
		ggchart.WithPadding(cfg.XPadding, cfg.YPadding),
		ggchart.WithBarWidth(cfg.BarWidth),
		ggchart.WithBarSpacing(cfg.BarSpacing),
		ggchart.WithSegments(cfg.SegmentsX, cfg.SegmentsY),
		ggchart.WithTitleColor(cfg.TitleColor),
		ggchart.WithTextColors(cfg.XTextColor, cfg.YTextColor),
		ggchart.WithSegmentColors(cfg.XSegmentColor, cfg.YSegmentColor),
		ggchart.WithVerbose(cfg.Verbose),
	}
	if yMaxSet {
		opts = append(opts, ggchart.WithYMax(cfg.YMax))
	}
	return opts
}
