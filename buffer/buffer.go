package buffer

import (
	"strings"

	"github.com/shinyrainbow/thea5995property-sub000/internal/grapheme"
)

type Options struct {
	HistoryLimit int // default: 1000
}

type selectionState struct {
	active bool
	anchor int
	end    int
}

// Buffer is the pure field state: one line of text, cursor, and selection.
type Buffer struct {
	line        []string
	version     uint64
	textVersion uint64

	cursor int
	sel    selectionState

	opt  Options
	hist historyState
}

// New returns a buffer holding text with the cursor at the start. Line breaks
// are dropped.
func New(text string, opt Options) *Buffer {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 1000
	}
	return &Buffer{
		line: grapheme.Split(singleLine(text)),
		opt:  opt,
	}
}

func (b *Buffer) Text() string { return grapheme.Join(b.line) }

// Len returns the line length in grapheme clusters.
func (b *Buffer) Len() int { return len(b.line) }

// Version changes on every effective mutation, including cursor and
// selection moves.
func (b *Buffer) Version() uint64 { return b.version }

// TextVersion changes only when the text changes.
func (b *Buffer) TextVersion() uint64 { return b.textVersion }

func (b *Buffer) Cursor() int { return b.cursor }

func (b *Buffer) SetCursor(col int) {
	next := b.clampCol(col)
	if next == b.cursor && !b.sel.active {
		return
	}
	b.cursor = next
	b.sel = selectionState{}
	b.version++
}

func (b *Buffer) Selection() (Range, bool) {
	if !b.sel.active {
		return Range{}, false
	}
	r := NormalizeRange(Range{Start: b.sel.anchor, End: b.sel.end})
	if r.IsEmpty() {
		return Range{}, false
	}
	return r, true
}

// SetSelection selects r and moves the cursor to r.End. An empty range
// clears the selection.
func (b *Buffer) SetSelection(r Range) {
	clamped := ClampRange(r, len(b.line))
	next := selectionState{active: true, anchor: clamped.Start, end: clamped.End}
	if clamped.IsEmpty() {
		next = selectionState{}
	}

	prevRange, prevOK := b.Selection()
	nextRange, nextOK := Range{}, false
	if next.active {
		nextRange, nextOK = NormalizeRange(clamped), true
	}

	b.sel = next
	cursor := b.cursor
	if next.active {
		cursor = next.end
	}
	if prevOK == nextOK && (!prevOK || prevRange == nextRange) && cursor == b.cursor {
		return
	}
	b.cursor = cursor
	b.version++
}

func (b *Buffer) ClearSelection() {
	if !b.sel.active {
		return
	}
	if _, ok := b.Selection(); !ok {
		b.sel = selectionState{}
		return
	}
	b.sel = selectionState{}
	b.version++
}

// SelectedText returns the text under the active selection.
func (b *Buffer) SelectedText() string {
	r, ok := b.Selection()
	if !ok {
		return ""
	}
	return grapheme.Join(b.line[r.Start:r.End])
}

// SetText replaces the whole line as one undoable step and moves the cursor
// to the end.
func (b *Buffer) SetText(text string) {
	text = singleLine(text)
	if text == b.Text() && b.cursor == len(b.line) && !b.sel.active {
		return
	}
	prev := b.capture()
	b.setLine(text)
	b.recordUndo(prev)
}

// Reformat replaces the whole line without recording history, so a
// formatting pass merges into the edit that caused it. The cursor moves to
// the end, as a host text field does when its value is rewritten.
func (b *Buffer) Reformat(text string) {
	text = singleLine(text)
	if text == b.Text() && b.cursor == len(b.line) && !b.sel.active {
		return
	}
	b.setLine(text)
}

func (b *Buffer) setLine(text string) {
	before := b.Text()
	b.line = grapheme.Split(text)
	b.cursor = len(b.line)
	b.sel = selectionState{}
	b.version++
	if before != text {
		b.textVersion++
	}
}

func (b *Buffer) clampCol(col int) int {
	return ClampCol(col, len(b.line))
}

func singleLine(text string) string {
	if !strings.ContainsAny(text, "\r\n") {
		return text
	}
	text = strings.ReplaceAll(text, "\r\n", "")
	text = strings.ReplaceAll(text, "\r", "")
	return strings.ReplaceAll(text, "\n", "")
}
