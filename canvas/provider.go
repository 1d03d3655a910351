// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package canvas

import (
	"errors"
	"fmt"
	"image"
	"sync"

	"github.com/gogpu/gg"
)

// Default surface size used when an accessor runs before Initialize.
const (
	DefaultWidth  = 200
	DefaultHeight = 200
)

// ErrInvalidSize is returned by Initialize for non-positive dimensions.
var ErrInvalidSize = errors.New("canvas: width and height must be positive")

// Provider owns a single lazily created drawing context.
//
// Creation is guarded by a mutex, so Ready and the accessors may be called
// from several goroutines. Drawing through the returned context is not
// synchronized.
type Provider struct {
	mu     sync.Mutex
	dc     *gg.Context
	width  int
	height int
}

// New returns a provider with no surface yet.
func New() *Provider {
	return &Provider{}
}

// Initialize creates the surface with the given size if none exists.
// When a surface already exists the call does nothing, even if the size
// differs: the first size wins.
func (p *Provider) Initialize(width, height int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.dc != nil {
		return nil
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidSize, width, height)
	}
	p.create(width, height)
	return nil
}

func (p *Provider) create(width, height int) {
	p.dc = gg.NewContext(width, height)
	p.width = width
	p.height = height
}

// ensureLocked returns the context, creating a default-sized one if needed.
// The caller holds p.mu.
func (p *Provider) ensureLocked() *gg.Context {
	if p.dc == nil {
		p.create(DefaultWidth, DefaultHeight)
	}
	return p.dc
}

// Ready reports whether the surface has been created.
func (p *Provider) Ready() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.dc != nil
}

// Width returns the surface width in pixels.
func (p *Provider) Width() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ensureLocked()
	return p.width
}

// Height returns the surface height in pixels.
func (p *Provider) Height() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ensureLocked()
	return p.height
}

// Context returns the drawing context.
func (p *Provider) Context() *gg.Context {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ensureLocked()
}

// Image returns a snapshot of the current surface contents.
func (p *Provider) Image() image.Image {
	return p.Context().Image()
}

// Close releases the surface. The provider can be initialized again
// afterwards, with any size.
func (p *Provider) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.dc == nil {
		return nil
	}
	err := p.dc.Close()
	p.dc = nil
	p.width, p.height = 0, 0
	return err
}
