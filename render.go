package ggchart

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Background fill, drawn first on every Render.
const (
	backgroundGray  = 50.0 / 255
	backgroundAlpha = 0.5
)

func (c *Chart) drawBackground(dc *gg.Context, l Layout) error {
	dc.SetRGBA(backgroundGray, backgroundGray, backgroundGray, backgroundAlpha)
	dc.DrawRectangle(0, 0, l.Width, l.Height)
	return dc.Fill()
}

func (c *Chart) drawBars(dc *gg.Context, l Layout, face text.Face) error {
	log := c.logger()
	dc.SetFont(face)
	for _, b := range l.Bars {
		log.Debug("ggchart: bar",
			"slot", b.Slot, "value", b.Value,
			"x", b.X, "y", b.Y, "height", b.Height)

		dc.SetColor(b.Color)
		dc.DrawRectangle(b.X, b.Y, b.Width, b.Height)
		if err := dc.Fill(); err != nil {
			return err
		}
		dc.DrawString(b.Label, b.LabelPos.X, b.LabelPos.Y)
	}
	return nil
}

func (c *Chart) drawOutline(dc *gg.Context, l Layout, label, title text.Face) error {
	o := l.Outline
	dc.SetLineWidth(axisLineWidth)

	dc.SetColor(c.colors.title)
	dc.SetFont(title)
	dc.DrawStringAnchored(c.cfg.TitleText, o.TitlePos.X, o.TitlePos.Y, 0.5, 0)

	dc.SetFont(label)
	dc.SetColor(c.colors.xText)
	dc.DrawString(c.cfg.XAxisText, o.XTextPos.X, o.XTextPos.Y)
	dc.DrawLine(o.XAxis.From.X, o.XAxis.From.Y, o.XAxis.To.X, o.XAxis.To.Y)
	if err := dc.Stroke(); err != nil {
		return err
	}

	dc.SetColor(c.colors.yText)
	dc.DrawString(c.cfg.YAxisText, o.YTextPos.X, o.YTextPos.Y)
	dc.DrawLine(o.YAxis.From.X, o.YAxis.From.Y, o.YAxis.To.X, o.YAxis.To.Y)
	return dc.Stroke()
}

func (c *Chart) drawGridlines(dc *gg.Context, l Layout, face text.Face) error {
	dc.SetFont(face)
	for _, t := range l.YTicks {
		if err := drawMarker(dc, t.Pos); err != nil {
			return err
		}
		dc.SetColor(c.colors.ySegment)
		dc.DrawString(t.Label, t.LabelPos.X, t.LabelPos.Y)
	}
	for _, t := range l.XTicks {
		if err := drawMarker(dc, t.Pos); err != nil {
			return err
		}
		dc.SetColor(c.colors.xSegment)
		dc.DrawString(t.Label, t.LabelPos.X, t.LabelPos.Y)
	}
	return nil
}

func drawMarker(dc *gg.Context, at Point) error {
	dc.SetHexColor(markerColor)
	dc.DrawCircle(at.X, at.Y, markerRadius)
	return dc.Fill()
}
