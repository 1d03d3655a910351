// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package canvas provides the drawing surface charts render onto.
//
// A Provider lazily creates exactly one fixed-size gg drawing context and
// keeps it for its lifetime. The first Initialize call decides the size;
// later calls are ignored, and the accessors fall back to a 200x200 surface
// when nothing initialized the provider first.
//
// Providers are plain values owned by the caller. Two charts that share a
// Provider draw into the same pixels, so give each independent chart its own.
//
//	p := canvas.New()
//	_ = p.Initialize(720, 480)
//	dc := p.Context()
//	dc.SetRGB(1, 0, 0)
//	dc.DrawRectangle(10, 10, 100, 50)
//	_ = dc.Fill()
//	_ = p.Save("out.png")
//
// # Export
//
// Save picks the encoding from the file extension: .png (also the fallback
// for unknown extensions), .jpg/.jpeg, .bmp and .tif/.tiff. Encode writes
// the same encodings to an io.Writer.
package canvas
