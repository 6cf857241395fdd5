package numfmt

import "strings"

// Separator is the grouping separator inserted by Group.
const Separator = ','

// DecimalPoint separates the integer and fractional parts.
const DecimalPoint = '.'

// Mode selects which characters a field accepts. It is fixed per field.
type Mode struct {
	AllowDecimal bool
}

// Sanitize keeps ASCII digits and, when allowDecimal is set, the first
// decimal point. Every other character is dropped.
func Sanitize(input string, allowDecimal bool) string {
	if input == "" {
		return ""
	}

	var sb strings.Builder
	sb.Grow(len(input))
	seenPoint := false
	for i := 0; i < len(input); i++ {
		c := input[i]
		switch {
		case isDigit(c):
			sb.WriteByte(c)
		case c == DecimalPoint && allowDecimal && !seenPoint:
			seenPoint = true
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// StripSeparators removes every grouping separator from s.
func StripSeparators(s string) string {
	if strings.IndexByte(s, Separator) < 0 {
		return s
	}
	return strings.ReplaceAll(s, string(Separator), "")
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
