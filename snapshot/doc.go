// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package snapshot renders a frame's quad batch to PDF with
// github.com/tdewolff/canvas.
//
// It is the offline counterpart of package gpu: rect quads become filled
// paths, and glyph quads become tinted crops of the CPU atlas image. One
// layout unit maps to one millimetre on the page.
package snapshot
