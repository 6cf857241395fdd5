package buffer

import "unicode/utf16"

type OffsetClampMode uint8

const (
	OffsetError OffsetClampMode = iota
	OffsetClamp
)

// UTF16Len returns the line length in UTF-16 code units.
func (b *Buffer) UTF16Len() int {
	return b.UTF16OffsetFromCol(len(b.line))
}

// UTF16OffsetFromCol converts a grapheme column to a UTF-16 offset.
// col is clamped into the line.
func (b *Buffer) UTF16OffsetFromCol(col int) int {
	col = b.clampCol(col)
	off := 0
	for _, cluster := range b.line[:col] {
		off += utf16Units(cluster)
	}
	return off
}

// ColFromUTF16Offset converts a UTF-16 offset to a grapheme column.
//
// With OffsetError, offsets outside the line fail. With OffsetClamp they are
// clamped to the nearest end. Offsets inside a grapheme cluster fail in both
// modes.
func (b *Buffer) ColFromUTF16Offset(off int, mode OffsetClampMode) (int, bool) {
	off, ok := clampOffset(off, b.UTF16Len(), mode)
	if !ok {
		return 0, false
	}

	cur := 0
	if off == cur {
		return 0, true
	}
	for col, cluster := range b.line {
		next := cur + utf16Units(cluster)
		if off > cur && off < next {
			return 0, false
		}
		cur = next
		if off == cur {
			return col + 1, true
		}
	}
	return 0, false
}

// CursorUTF16 returns the cursor as a UTF-16 offset.
func (b *Buffer) CursorUTF16() int {
	return b.UTF16OffsetFromCol(b.cursor)
}

// SetCursorUTF16 moves the cursor to a UTF-16 offset, clamped into the line.
// It reports false when the offset splits a grapheme cluster.
func (b *Buffer) SetCursorUTF16(off int) bool {
	col, ok := b.ColFromUTF16Offset(off, OffsetClamp)
	if !ok {
		return false
	}
	b.SetCursor(col)
	return true
}

func clampOffset(off, max int, mode OffsetClampMode) (int, bool) {
	switch mode {
	case OffsetError:
		if off < 0 || off > max {
			return 0, false
		}
		return off, true
	case OffsetClamp:
		return clampInt(off, 0, max), true
	default:
		return 0, false
	}
}

func utf16Units(s string) int {
	n := 0
	for _, r := range s {
		if u := utf16.RuneLen(r); u > 0 {
			n += u
		} else {
			n++
		}
	}
	return n
}
