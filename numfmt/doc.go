// Package numfmt implements the pure formatting engine behind a live numeric
// text field.
//
// Text flows one way per keystroke: Sanitize strips the host text down to the
// raw buffer, Group renders the display string, MapCursor moves the caret to
// the same logical digit, and Parse derives the semantic Value. Reconcile
// decides whether an externally supplied Value replaces the raw buffer.
//
// Caret offsets are UTF-16 code units, as reported by host text fields.
package numfmt
