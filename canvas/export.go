// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package canvas

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format is an image encoding supported by Encode and Save.
type Format int

// Supported formats.
const (
	PNG Format = iota
	JPEG
	BMP
	TIFF
)

// JPEGQuality is the quality used for JPEG output.
const JPEGQuality = 90

// ErrUnknownFormat is returned for format names and values Encode does not
// support.
var ErrUnknownFormat = errors.New("canvas: unknown image format")

// String returns the lower-case format name.
func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case JPEG:
		return "jpeg"
	case BMP:
		return "bmp"
	case TIFF:
		return "tiff"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat returns the format for a name such as "png" or "jpg".
// Names are case-insensitive and may carry a leading dot.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPEG, nil
	case "bmp":
		return BMP, nil
	case "tif", "tiff":
		return TIFF, nil
	}
	return PNG, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FormatFromPath picks the format from the extension of path.
// Paths without a recognized extension are written as PNG.
func FormatFromPath(path string) Format {
	f, err := ParseFormat(filepath.Ext(path))
	if err != nil {
		return PNG
	}
	return f
}

// Encode writes the current surface contents to w.
func (p *Provider) Encode(w io.Writer, f Format) error {
	dc := p.Context()
	switch f {
	case PNG:
		return dc.EncodePNG(w)
	case JPEG:
		return dc.EncodeJPEG(w, JPEGQuality)
	case BMP:
		return bmp.Encode(w, dc.Image())
	case TIFF:
		return tiff.Encode(w, dc.Image(), &tiff.Options{Compression: tiff.Deflate})
	}
	return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
}

// Save encodes the surface into the file at path, creating or truncating it.
// The encoding follows the file extension, see FormatFromPath.
func (p *Provider) Save(path string) (err error) {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("canvas: save: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("canvas: save: %w", cerr)
		}
	}()

	if err := p.Encode(f, FormatFromPath(path)); err != nil {
		return fmt.Errorf("canvas: encode %s: %w", path, err)
	}
	return nil
}
