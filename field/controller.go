package field

import "github.com/shinyrainbow/thea5995property-sub000/numfmt"

// State reports whether a caret restoration is pending.
type State uint8

const (
	// StateClean means the raw buffer matches the last published value and no
	// restoration is pending.
	StateClean State = iota
	// StateDirty means a keystroke was formatted and its caret restoration has
	// not run yet.
	StateDirty
)

func (s State) String() string {
	switch s {
	case StateClean:
		return "clean"
	case StateDirty:
		return "dirty"
	default:
		return "unknown"
	}
}

// Edit is the outcome of one keystroke.
type Edit struct {
	Raw     string
	Display string
	// Caret is the UTF-16 offset to restore in Display after the host has
	// rendered it.
	Caret      int
	Value      numfmt.Value
	Generation uint64
}

// Controller owns the raw buffer of one field instance. It is not safe for
// concurrent use; all calls come from the UI loop.
type Controller struct {
	mode     numfmt.Mode
	raw      string
	value    numfmt.Value
	onChange func(numfmt.Value)
	// bound is the last value seen on the external binding: either set from
	// outside or published by a keystroke.
	bound numfmt.Value

	state     State
	gen       uint64
	target    int
	destroyed bool
}

// NewController binds a controller to an initial value. onChange may be nil.
func NewController(value numfmt.Value, mode numfmt.Mode, onChange func(numfmt.Value)) *Controller {
	raw := numfmt.Reconcile(value, "", mode.AllowDecimal)
	return &Controller{
		mode:     mode,
		raw:      raw,
		value:    numfmt.Parse(raw, mode.AllowDecimal),
		onChange: onChange,
		bound:    value,
	}
}

// Input formats the host text after a keystroke. caret is the host caret as a
// UTF-16 offset into text. The new value is published through onChange and a
// restoration is scheduled under a fresh generation, superseding any pending
// one.
func (c *Controller) Input(text string, caret int) Edit {
	if c.destroyed {
		return Edit{Raw: c.raw, Display: c.Display(), Caret: numfmt.UTF16Len(c.Display()), Value: c.value}
	}

	res := numfmt.Format(text, caret, c.mode)
	c.raw = res.Raw
	c.value = res.Value
	c.bound = res.Value
	c.gen++
	c.target = res.Caret
	c.state = StateDirty

	if c.onChange != nil {
		c.onChange(res.Value)
	}
	return Edit{
		Raw:        res.Raw,
		Display:    res.Display,
		Caret:      res.Caret,
		Value:      res.Value,
		Generation: c.gen,
	}
}

// Restore runs the deferred caret restoration for gen. It reports false when
// gen was superseded by a later keystroke, cancelled by an external reset, or
// the controller was destroyed; the caller must then leave the caret alone.
func (c *Controller) Restore(gen uint64) (caret int, ok bool) {
	if c.destroyed || c.state != StateDirty || gen != c.gen {
		return 0, false
	}
	c.state = StateClean
	return c.target, true
}

// SetValue applies the externally bound value. Nothing happens unless v
// differs from the bound value; then the raw buffer is reconciled and is
// replaced only when v differs numerically from it. Replacing cancels any
// pending caret restoration.
func (c *Controller) SetValue(v numfmt.Value) (display string, changed bool) {
	if c.destroyed || v.Equal(c.bound) {
		return c.Display(), false
	}
	return c.Reset(v)
}

// Reset reconciles the raw buffer with v even when v equals the bound value,
// for explicit resets such as clearing a form. A lone decimal point is
// cleared by a null reset.
func (c *Controller) Reset(v numfmt.Value) (display string, changed bool) {
	if c.destroyed {
		return c.Display(), false
	}
	c.bound = v
	next := numfmt.Reconcile(v, c.raw, c.mode.AllowDecimal)
	if next == c.raw {
		return c.Display(), false
	}
	c.raw = next
	c.value = numfmt.Parse(next, c.mode.AllowDecimal)
	c.state = StateClean
	return c.Display(), true
}

// Destroy cancels any pending restoration. The controller ignores all later
// input.
func (c *Controller) Destroy() {
	c.destroyed = true
	c.state = StateClean
}

func (c *Controller) Raw() string { return c.raw }

// Display is always derived from the raw buffer.
func (c *Controller) Display() string { return numfmt.Group(c.raw) }

func (c *Controller) Value() numfmt.Value { return c.value }

func (c *Controller) Mode() numfmt.Mode { return c.mode }

func (c *Controller) State() State { return c.state }

// Generation is the generation of the latest keystroke.
func (c *Controller) Generation() uint64 { return c.gen }

func (c *Controller) Destroyed() bool { return c.destroyed }
