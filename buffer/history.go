package buffer

// snapshot is a restorable text, cursor and selection state.
type snapshot struct {
	text   string
	cursor int
	sel    selectionState
}

// stack is a bounded LIFO of snapshots. Pushing past the limit drops the
// oldest entry; a limit <= 0 keeps nothing.
type stack struct {
	items []snapshot
}

// push adds x and returns the entry trimmed to honor limit, if any. It
// reports false when nothing was stored.
func (s *stack) push(x snapshot, limit int) (trimmed *snapshot, ok bool) {
	if limit <= 0 {
		return nil, false
	}
	s.items = append(s.items, x)
	if over := len(s.items) - limit; over > 0 {
		oldest := s.items[0]
		trimmed = &oldest
		s.items = append(s.items[:0], s.items[over:]...)
	}
	return trimmed, true
}

func (s *stack) pop() (snapshot, bool) {
	if len(s.items) == 0 {
		return snapshot{}, false
	}
	last := len(s.items) - 1
	x := s.items[last]
	s.items = s.items[:last]
	return x, true
}

func (s *stack) len() int { return len(s.items) }

func (s *stack) reset() { s.items = nil }

type historyState struct {
	undo stack
	redo stack
	last editRecord
}

// editRecord remembers what the most recent edit did to the history.
type editRecord struct {
	valid   bool
	redo    []snapshot
	trimmed *snapshot
}

func (b *Buffer) capture() snapshot {
	return snapshot{text: b.Text(), cursor: b.cursor, sel: b.sel}
}

func (b *Buffer) restore(s snapshot) {
	b.setLine(s.text)
	b.cursor = b.clampCol(s.cursor)
	b.sel = selectionState{}
	if !s.sel.active {
		return
	}
	if anchor, end := b.clampCol(s.sel.anchor), b.clampCol(s.sel.end); anchor != end {
		b.sel = selectionState{active: true, anchor: anchor, end: end}
	}
}

// recordUndo stores the state before an edit. Any new edit discards the
// redo branch.
func (b *Buffer) recordUndo(prev snapshot) {
	trimmed, ok := b.hist.undo.push(prev, b.opt.HistoryLimit)
	b.hist.last = editRecord{valid: ok, redo: b.hist.redo.items, trimmed: trimmed}
	b.hist.redo.reset()
}

// ForgetEdit takes back the undo step recorded by the most recent edit and
// restores the redo branch that edit discarded. The text is left alone. It
// reports false when the last history change was not an edit, or was
// already forgotten.
func (b *Buffer) ForgetEdit() bool {
	r := b.hist.last
	if !r.valid {
		return false
	}
	b.hist.last = editRecord{}
	b.hist.undo.pop()
	if r.trimmed != nil {
		b.hist.undo.items = append([]snapshot{*r.trimmed}, b.hist.undo.items...)
	}
	b.hist.redo.items = r.redo
	return true
}

func (b *Buffer) CanUndo() bool { return b.hist.undo.len() > 0 }

func (b *Buffer) CanRedo() bool { return b.hist.redo.len() > 0 }

func (b *Buffer) Undo() bool { return b.travel(&b.hist.undo, &b.hist.redo) }

func (b *Buffer) Redo() bool { return b.travel(&b.hist.redo, &b.hist.undo) }

// travel restores the top of from and pushes the current state onto to.
func (b *Buffer) travel(from, to *stack) bool {
	s, ok := from.pop()
	if !ok {
		return false
	}
	b.hist.last = editRecord{}
	to.push(b.capture(), b.opt.HistoryLimit)
	b.restore(s)
	return true
}
