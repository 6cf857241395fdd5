// Package buffer implements the pure, grapheme-accurate edit state of a
// single-line text field.
//
// Columns are 0-based grapheme cluster indexes. Ranges are half-open: [Start, End).
// Offsets exchanged with the formatting engine are UTF-16 code units.
package buffer
