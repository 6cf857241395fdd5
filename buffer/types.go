package buffer

// Range is a half-open column span: [Start, End).
// Start <= End after normalization.
type Range struct {
	Start int
	End   int
}

func NormalizeRange(r Range) Range {
	if r.Start <= r.End {
		return r
	}
	return Range{Start: r.End, End: r.Start}
}

func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

func (r Range) Len() int {
	r = NormalizeRange(r)
	return r.End - r.Start
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampCol clamps col into [0, lineLen].
func ClampCol(col, lineLen int) int {
	if lineLen < 0 {
		lineLen = 0
	}
	return clampInt(col, 0, lineLen)
}

func ClampRange(r Range, lineLen int) Range {
	return Range{
		Start: ClampCol(r.Start, lineLen),
		End:   ClampCol(r.End, lineLen),
	}
}
