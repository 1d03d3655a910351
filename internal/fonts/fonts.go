// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package fonts provides the faces used for chart labels.
//
// The Go fonts are embedded in golang.org/x/image, so charts render text
// without depending on fonts installed on the host.
package fonts

import (
	"fmt"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Face sizes in points.
const (
	LabelSize = 10.0
	TitleSize = 16.0
)

var (
	loadOnce sync.Once
	regular  *text.FontSource
	bold     *text.FontSource
	loadErr  error
)

func load() {
	regular, loadErr = text.NewFontSource(goregular.TTF)
	if loadErr != nil {
		loadErr = fmt.Errorf("fonts: parse goregular: %w", loadErr)
		return
	}
	bold, loadErr = text.NewFontSource(gobold.TTF)
	if loadErr != nil {
		loadErr = fmt.Errorf("fonts: parse gobold: %w", loadErr)
	}
}

// Label returns the regular face used for axis text, tick labels and bar
// values.
func Label() (text.Face, error) {
	loadOnce.Do(load)
	if loadErr != nil {
		return nil, loadErr
	}
	return regular.Face(LabelSize), nil
}

// Title returns the larger bold face used for the chart title.
func Title() (text.Face, error) {
	loadOnce.Do(load)
	if loadErr != nil {
		return nil, loadErr
	}
	return bold.Face(TitleSize), nil
}
