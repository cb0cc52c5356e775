// Package text turns strings into positioned glyph quads.
//
// The package has two halves. OpenTypeRasterizer decodes a TrueType/OpenType
// font and produces coverage bitmaps for the glyph atlas. Flow walks the
// characters of a string, looks each one up in the atlas cache, and appends
// one GlyphQuad per visible glyph to a Batch, wrapping lines against an
// optional box.
//
// # Line Wrapping
//
// Wrapping happens at character boundaries: a character that would cross the
// right edge of the wrap box starts a new line, even in the middle of a word.
// Text that runs past the bottom of the box is dropped.
//
// # Coordinate System
//
// Flow works in the y-up layout space of package layout. Each new line sits
// one line height below the previous one.
package text
