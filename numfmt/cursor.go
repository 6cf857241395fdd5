package numfmt

import "unicode/utf16"

// MapCursor returns the caret offset in newDisplay that sits after the same
// number of significant characters (digits and the decimal point) that
// preceded oldCaret in oldDisplay. Grouping separators and any other
// characters are ignored by the count, so edits next to a separator do not
// make the caret jump.
//
// Offsets are UTF-16 code units. oldCaret is clamped into oldDisplay.
func MapCursor(oldDisplay string, oldCaret int, newDisplay string) int {
	return mapCursor(oldDisplay, oldCaret, newDisplay, anyPoint)
}

// pointRule selects which decimal points count toward the caret position.
type pointRule int

const (
	anyPoint   pointRule = iota // every '.'
	firstPoint                  // the first '.', the one Sanitize keeps
	noPoint                     // none, as in digit mode
)

func pointRuleFor(allowDecimal bool) pointRule {
	if allowDecimal {
		return firstPoint
	}
	return noPoint
}

// counter counts the characters that survive sanitizing under a pointRule.
type counter struct {
	rule      pointRule
	seenPoint bool
}

func (c *counter) counts(r rune) bool {
	if r >= '0' && r <= '9' {
		return true
	}
	if r != DecimalPoint {
		return false
	}
	switch c.rule {
	case anyPoint:
		return true
	case firstPoint:
		if c.seenPoint {
			return false
		}
		c.seenPoint = true
		return true
	default:
		return false
	}
}

func mapCursor(oldDisplay string, oldCaret int, newDisplay string, rule pointRule) int {
	target := significantBefore(oldDisplay, oldCaret, rule)
	if target == 0 {
		return 0
	}

	c := counter{rule: rule}
	count, off := 0, 0
	for _, r := range newDisplay {
		off += utf16Len(r)
		if !c.counts(r) {
			continue
		}
		count++
		if count == target {
			return off
		}
	}
	return off
}

// significantBefore counts significant characters wholly before caret.
func significantBefore(s string, caret int, rule pointRule) int {
	if caret <= 0 {
		return 0
	}

	c := counter{rule: rule}
	n, off := 0, 0
	for _, r := range s {
		off += utf16Len(r)
		if off > caret {
			break
		}
		if c.counts(r) {
			n++
		}
	}
	return n
}

// UTF16Len returns the length of s in UTF-16 code units.
func UTF16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16Len(r)
	}
	return n
}

func utf16Len(r rune) int {
	if n := utf16.RuneLen(r); n > 0 {
		return n
	}
	// Invalid runes decode as U+FFFD, one code unit.
	return 1
}
