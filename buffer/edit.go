package buffer

import "github.com/shinyrainbow/thea5995property-sub000/internal/grapheme"

// InsertText inserts text at the cursor, or replaces the active selection.
// Line breaks are dropped.
func (b *Buffer) InsertText(s string) {
	s = singleLine(s)
	if s == "" {
		if _, ok := b.Selection(); ok {
			b.DeleteSelection()
		}
		return
	}

	r, ok := b.Selection()
	if !ok {
		r = Range{Start: b.cursor, End: b.cursor}
	}
	b.edit(r, s)
}

// InsertRune inserts a single rune at the cursor.
func (b *Buffer) InsertRune(r rune) {
	b.InsertText(string(r))
}

// DeleteBackward applies backspace semantics.
func (b *Buffer) DeleteBackward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}
	if b.cursor == 0 {
		return
	}
	b.edit(Range{Start: b.cursor - 1, End: b.cursor}, "")
}

// DeleteForward applies delete-key semantics.
func (b *Buffer) DeleteForward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}
	if b.cursor == len(b.line) {
		return
	}
	b.edit(Range{Start: b.cursor, End: b.cursor + 1}, "")
}

// DeleteSelection deletes the active selection, if any.
func (b *Buffer) DeleteSelection() {
	r, ok := b.Selection()
	if !ok {
		return
	}
	b.edit(r, "")
}

func (b *Buffer) edit(r Range, text string) {
	prev := b.capture()
	nextCursor, changed := b.replaceRange(r, text)
	if !changed {
		return
	}
	b.cursor = nextCursor
	b.sel = selectionState{}
	b.version++
	b.textVersion++
	b.recordUndo(prev)
}

func (b *Buffer) replaceRange(r Range, text string) (nextCursor int, changed bool) {
	r = NormalizeRange(ClampRange(r, len(b.line)))
	if r.IsEmpty() && text == "" {
		return b.cursor, false
	}
	if grapheme.Join(b.line[r.Start:r.End]) == text {
		return b.cursor, false
	}

	ins := grapheme.Split(text)
	out := make([]string, 0, len(b.line)-r.Len()+len(ins))
	out = append(out, b.line[:r.Start]...)
	out = append(out, ins...)
	out = append(out, b.line[r.End:]...)

	b.line = out
	return r.Start + len(ins), true
}
