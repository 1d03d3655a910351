package ggchart

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColor parses a color spec as accepted in chart configuration:
//
//	#RGB  #RGBA  #RRGGBB  #RRGGBBAA
//	rgb(255, 255, 255)
//	rgba(255, 255, 255, 0.5)
//	steelblue, white, transparent, ...   (SVG 1.1 color keywords)
//
// Channel values in rgb()/rgba() are 0-255 and alpha is 0-1.
func ParseColor(spec string) (color.NRGBA, error) {
	s := strings.ToLower(strings.TrimSpace(spec))
	switch {
	case strings.HasPrefix(s, "#"):
		c, ok := parseHex(s[1:])
		if !ok {
			return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, spec)
		}
		return c, nil
	case strings.HasPrefix(s, "rgba(") || strings.HasPrefix(s, "rgb("):
		c, err := parseFunc(s)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, spec, err)
		}
		return c, nil
	case s == "transparent":
		return color.NRGBA{}, nil
	}
	if c, ok := colornames.Map[s]; ok {
		return toNRGBA(c), nil
	}
	return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, spec)
}

// MustParseColor is like ParseColor but panics on error.
func MustParseColor(spec string) color.NRGBA {
	c, err := ParseColor(spec)
	if err != nil {
		panic(err)
	}
	return c
}

// parseHex decodes RGB, RGBA, RRGGBB or RRGGBBAA hex digits.
func parseHex(h string) (color.NRGBA, bool) {
	switch len(h) {
	case 3, 4:
		// Short forms repeat each digit: "f80" is "ff8800".
		var b strings.Builder
		for _, r := range h {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		h = b.String()
	case 6, 8:
	default:
		return color.NRGBA{}, false
	}
	if len(h) == 6 {
		h += "ff"
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, false
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, true
}

func parseFunc(s string) (color.NRGBA, error) {
	open := strings.IndexByte(s, '(')
	if !strings.HasSuffix(s, ")") {
		return color.NRGBA{}, errors.New("missing closing parenthesis")
	}
	parts := strings.Split(s[open+1:len(s)-1], ",")
	if len(parts) != 3 && len(parts) != 4 {
		return color.NRGBA{}, fmt.Errorf("want 3 or 4 components, got %d", len(parts))
	}

	var ch [3]uint8
	for i := range ch {
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
		if err != nil {
			return color.NRGBA{}, err
		}
		if math.IsNaN(v) || v < 0 || v > 255 {
			return color.NRGBA{}, fmt.Errorf("channel %v out of range 0-255", v)
		}
		ch[i] = uint8(math.Round(v))
	}

	alpha := uint8(255)
	if len(parts) == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil {
			return color.NRGBA{}, err
		}
		if math.IsNaN(a) || a < 0 || a > 1 {
			return color.NRGBA{}, fmt.Errorf("alpha %v out of range 0-1", a)
		}
		alpha = uint8(math.Round(a * 255))
	}
	return color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: alpha}, nil
}

func toNRGBA(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}
