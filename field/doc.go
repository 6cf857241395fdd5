// Package field provides a Bubble Tea numeric text field backed by the numfmt
// engine.
//
// Controller is the host-agnostic state machine: it owns the raw buffer,
// publishes the semantic value on every keystroke, reconciles external value
// changes, and guards the deferred caret restoration with a generation
// counter. Model hosts a Controller inside a single-line buffer and schedules
// the restoration as a tea.Cmd, so it runs after the render pass that shows
// the reformatted text.
package field
