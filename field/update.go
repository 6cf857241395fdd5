package field

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/shinyrainbow/thea5995property-sub000/buffer"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused || m.ctl.Destroyed() {
		return m, nil
	}

	// Bracketed paste inserts literal text and never triggers shortcuts.
	if msg.Paste {
		if msg.Type != tea.KeyRunes || len(msg.Runes) == 0 {
			return m, nil
		}
		return m.mutate(func(b *buffer.Buffer) { b.InsertText(string(msg.Runes)) })
	}

	km := m.cfg.KeyMap
	for _, mv := range km.moves() {
		if key.Matches(msg, mv.binding) {
			m.buf.Move(mv.move)
			return m, nil
		}
	}

	switch {
	case key.Matches(msg, km.Backspace):
		return m.mutate((*buffer.Buffer).DeleteBackward)
	case key.Matches(msg, km.Delete):
		return m.mutate((*buffer.Buffer).DeleteForward)
	case key.Matches(msg, km.Undo):
		return m.mutate(func(b *buffer.Buffer) { b.Undo() })
	case key.Matches(msg, km.Redo):
		return m.mutate(func(b *buffer.Buffer) { b.Redo() })
	case key.Matches(msg, km.Copy):
		m.copySelection()
		return m, nil
	case key.Matches(msg, km.Cut):
		if m.copySelection() {
			return m.mutate((*buffer.Buffer).DeleteSelection)
		}
		return m, nil
	case key.Matches(msg, km.Paste):
		s, ok := m.readClipboard()
		if !ok {
			return m, nil
		}
		return m.mutate(func(b *buffer.Buffer) { b.InsertText(s) })
	case msg.Type == tea.KeySpace:
		// Offered to the formatter like any other character; it is dropped.
		return m.mutate(func(b *buffer.Buffer) { b.InsertRune(' ') })
	case msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt:
		return m.mutate(func(b *buffer.Buffer) { b.InsertText(string(msg.Runes)) })
	}
	return m, nil
}

// mutate applies fn to the buffer and, when the text changed, runs the
// keystroke through the controller. Read-only fields ignore mutations.
//
// A keystroke the formatter rejects leaves the raw buffer as it was; its
// undo step is forgotten so undo never lands on an identical state.
func (m Model) mutate(fn func(b *buffer.Buffer)) (Model, tea.Cmd) {
	if m.cfg.ReadOnly {
		return m, nil
	}
	before := m.buf.TextVersion()
	prevRaw := m.ctl.Raw()
	fn(m.buf)
	if m.buf.TextVersion() == before {
		return m, nil
	}
	cmd := m.commit()
	if m.ctl.Raw() == prevRaw {
		m.buf.ForgetEdit()
	}
	return m, cmd
}

// copySelection writes the selected text to the clipboard and reports
// whether anything was copied.
func (m Model) copySelection() bool {
	s := m.buf.SelectedText()
	if m.cfg.Clipboard == nil || s == "" {
		return false
	}
	return m.cfg.Clipboard.WriteText(s) == nil
}

func (m Model) readClipboard() (string, bool) {
	if m.cfg.Clipboard == nil {
		return "", false
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil || s == "" {
		return "", false
	}
	return s, true
}
