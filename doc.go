// Package numfield carries the module version.
//
// The formatting engine lives in numfmt, the Bubble Tea field in field, and
// the edit buffer backing the field in buffer.
package numfield
