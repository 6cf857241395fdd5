package numfmt

// Result is the outcome of formatting one keystroke.
type Result struct {
	Raw     string
	Display string
	Caret   int
	Value   Value
}

// Format runs the keystroke pipeline on the host text and its caret. Only
// characters that survive Sanitize count toward the caret position, so a
// rejected decimal point leaves the caret where it was.
func Format(input string, caret int, m Mode) Result {
	raw := Sanitize(input, m.AllowDecimal)
	display := Group(raw)
	return Result{
		Raw:     raw,
		Display: display,
		Caret:   mapCursor(input, caret, display, pointRuleFor(m.AllowDecimal)),
		Value:   Parse(raw, m.AllowDecimal),
	}
}
