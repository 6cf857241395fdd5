package numfmt

import "strings"

// Group inserts a Separator before every run of three integer digits counted
// from the right. The fractional part, including a trailing decimal point, is
// kept as is.
func Group(sanitized string) string {
	intPart, frac, hasPoint := strings.Cut(sanitized, string(DecimalPoint))

	var sb strings.Builder
	sb.Grow(len(sanitized) + len(intPart)/3)

	first := len(intPart) % 3
	if first == 0 {
		first = 3
	}
	if first > len(intPart) {
		first = len(intPart)
	}
	sb.WriteString(intPart[:first])
	for pos := first; pos < len(intPart); pos += 3 {
		sb.WriteByte(Separator)
		sb.WriteString(intPart[pos : pos+3])
	}

	if hasPoint {
		sb.WriteByte(DecimalPoint)
		sb.WriteString(frac)
	}
	return sb.String()
}
