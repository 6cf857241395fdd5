package buffer

import "github.com/shinyrainbow/thea5995property-sub000/internal/grapheme"

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveWord
	MoveLine
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirHome // line start
	DirEnd  // line end
)

type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool // if true, updates selection anchor/end; if false clears selection
}

func (b *Buffer) Move(m Move) {
	prevCursor := b.cursor
	prevSel := b.sel

	nextCursor := b.clampCol(b.moveCursor(prevCursor, m))

	nextSel := selectionState{}
	if m.Extend {
		anchor := prevCursor
		if prevSel.active && prevSel.anchor != prevSel.end {
			anchor = prevSel.anchor
		}
		if anchor != nextCursor {
			nextSel = selectionState{active: true, anchor: anchor, end: nextCursor}
		}
	} else if r, ok := b.Selection(); ok && m.Unit == MoveGrapheme {
		// Collapsing a selection lands on the side of the move.
		switch m.Dir {
		case DirLeft:
			nextCursor = r.Start
		case DirRight:
			nextCursor = r.End
		}
	}

	if prevCursor == nextCursor && prevSel == nextSel {
		return
	}

	b.cursor = nextCursor
	b.sel = nextSel
	b.version++
}

func (b *Buffer) moveCursor(col int, m Move) int {
	switch m.Unit {
	case MoveGrapheme:
		switch m.Dir {
		case DirLeft:
			return col - 1
		case DirRight:
			return col + 1
		}
	case MoveWord:
		switch m.Dir {
		case DirLeft:
			return prevWordBoundary(b.line, col)
		case DirRight:
			return nextWordBoundary(b.line, col)
		}
	}

	switch m.Dir {
	case DirHome:
		return 0
	case DirEnd:
		return len(b.line)
	default:
		return col
	}
}

// Word moves skip word breaks, then the run of non-breaks.
func prevWordBoundary(line []string, col int) int {
	i := ClampCol(col, len(line))
	for i > 0 && grapheme.IsWordBreak(line[i-1]) {
		i--
	}
	for i > 0 && !grapheme.IsWordBreak(line[i-1]) {
		i--
	}
	return i
}

func nextWordBoundary(line []string, col int) int {
	i := ClampCol(col, len(line))
	for i < len(line) && grapheme.IsWordBreak(line[i]) {
		i++
	}
	for i < len(line) && !grapheme.IsWordBreak(line[i]) {
		i++
	}
	return i
}
