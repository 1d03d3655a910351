package ggchart

// Option configures a Chart during creation.
//
// Options are applied in order over DefaultConfig, so a later option wins:
//
//	c, err := ggchart.New(p,
//	    ggchart.WithSize(720, 480),
//	    ggchart.WithSegments(18, 10),
//	    ggchart.WithBarWidth(25),
//	)
type Option func(*options)

// options is the mutable state options write into.
type options struct {
	cfg     Config
	yMaxSet bool
}

func defaultOptions() options {
	return options{cfg: DefaultConfig()}
}

// resolve applies opts and derives YMax from the resolved height and
// Y segment count unless it was set explicitly.
func resolve(opts []Option) (Config, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.cfg.Validate(); err != nil {
		return Config{}, err
	}
	if !o.yMaxSet {
		o.cfg.YMax = o.cfg.drawableRange()
	}
	return o.cfg, nil
}

// WithSize sets the canvas size in pixels.
func WithSize(width, height int) Option {
	return func(o *options) {
		o.cfg.Width = width
		o.cfg.Height = height
	}
}

// WithTitle sets the chart title.
func WithTitle(title string) Option {
	return func(o *options) {
		o.cfg.TitleText = title
	}
}

// WithAxisText sets the X and Y axis labels.
func WithAxisText(x, y string) Option {
	return func(o *options) {
		o.cfg.XAxisText = x
		o.cfg.YAxisText = y
	}
}

// WithYMax sets the value shown at the topmost Y gridline.
// Without it, YMax equals the drawable range in pixels.
func WithYMax(v float64) Option {
	return func(o *options) {
		o.cfg.YMax = v
		o.yMaxSet = true
	}
}

// WithPadding sets the horizontal and vertical distance between the canvas
// edge and the axes.
func WithPadding(x, y float64) Option {
	return func(o *options) {
		o.cfg.XPadding = x
		o.cfg.YPadding = y
	}
}

// WithBarWidth sets the width of every bar in pixels.
func WithBarWidth(w float64) Option {
	return func(o *options) {
		o.cfg.BarWidth = w
	}
}

// WithBarSpacing sets the bar spacing recorded in the configuration.
func WithBarSpacing(s float64) Option {
	return func(o *options) {
		o.cfg.BarSpacing = s
	}
}

// WithSegments sets the number of gridline segments on each axis.
// SegmentsX also caps the number of bars drawn.
func WithSegments(x, y int) Option {
	return func(o *options) {
		o.cfg.SegmentsX = x
		o.cfg.SegmentsY = y
	}
}

// WithTitleColor sets the title color spec.
func WithTitleColor(spec string) Option {
	return func(o *options) {
		o.cfg.TitleColor = spec
	}
}

// WithTextColors sets the color specs of the X and Y axis labels and lines.
func WithTextColors(x, y string) Option {
	return func(o *options) {
		o.cfg.XTextColor = x
		o.cfg.YTextColor = y
	}
}

// WithSegmentColors sets the color specs of the X and Y tick labels.
func WithSegmentColors(x, y string) Option {
	return func(o *options) {
		o.cfg.XSegmentColor = x
		o.cfg.YSegmentColor = y
	}
}

// WithVerbose enables diagnostic logging through Logger.
func WithVerbose(v bool) Option {
	return func(o *options) {
		o.cfg.Verbose = v
	}
}
