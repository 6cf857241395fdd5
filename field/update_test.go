package field

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/shinyrainbow/thea5995property-sub000/numfmt"
)

type memClipboard struct {
	s   string
	err error
}

func (c *memClipboard) ReadText() (string, error) { return c.s, c.err }
func (c *memClipboard) WriteText(s string) error  { c.s = s; return nil }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// flush delivers every command result back to the model, the way the
// Bubble Tea loop does after rendering.
func flush(m Model, cmd tea.Cmd) Model {
	for cmd != nil {
		msg := cmd()
		m, cmd = m.Update(msg)
	}
	return m
}

func press(m Model, msgs ...tea.KeyMsg) Model {
	for _, msg := range msgs {
		var cmd tea.Cmd
		m, cmd = m.Update(msg)
		m = flush(m, cmd)
	}
	return m
}

func typeText(m Model, s string) Model {
	for _, r := range s {
		m = press(m, runes(string(r)))
	}
	return m
}

func TestUpdate_TypingDigitsGroupsAsYouType(t *testing.T) {
	m := New(Config{})
	want := []string{"1", "12", "123", "1,234"}
	for i, r := range "1234" {
		m = press(m, runes(string(r)))
		if got := m.Display(); got != want[i] {
			t.Fatalf("display after %q: got %q, want %q", string(r), got, want[i])
		}
		if got := m.Cursor(); got != len(want[i]) {
			t.Fatalf("cursor after %q: got %d, want %d", string(r), got, len(want[i]))
		}
	}
	if !m.Value().Equal(numfmt.Number(1234)) {
		t.Fatalf("value: got %v, want 1234", m.Value())
	}
}

func TestUpdate_TypingDecimal(t *testing.T) {
	m := New(Config{AllowDecimal: true})
	m = typeText(m, "1234.")
	if got := m.Display(); got != "1,234." {
		t.Fatalf("display after point: got %q, want %q", got, "1,234.")
	}
	m = typeText(m, "5")
	if got := m.Display(); got != "1,234.5" {
		t.Fatalf("display after 5: got %q, want %q", got, "1,234.5")
	}
	if !m.Value().Equal(numfmt.Number(1234.5)) {
		t.Fatalf("value: got %v, want 1234.5", m.Value())
	}
}

func TestUpdate_DigitModeRejectsPoint(t *testing.T) {
	m := New(Config{})
	m = typeText(m, "12.5")
	if got := m.Display(); got != "125" {
		t.Fatalf("display: got %q, want %q", got, "125")
	}
}

func TestUpdate_SecondPointDropped(t *testing.T) {
	m := New(Config{AllowDecimal: true})
	m = typeText(m, "12..5")
	if got := m.Raw(); got != "12.5" {
		t.Fatalf("raw: got %q, want %q", got, "12.5")
	}
}

func TestUpdate_CaretRestoredAfterRender(t *testing.T) {
	m := New(Config{Value: numfmt.Number(1234)})
	if got := m.Display(); got != "1,234" {
		t.Fatalf("initial display: got %q, want %q", got, "1,234")
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyHome}, tea.KeyMsg{Type: tea.KeyRight})

	m, cmd := m.Update(runes("9"))
	if got := m.Display(); got != "19,234" {
		t.Fatalf("display: got %q, want %q", got, "19,234")
	}
	if got := m.Cursor(); got != 6 {
		t.Fatalf("cursor before restoration: got %d, want %d", got, 6)
	}
	if got := m.State(); got != StateDirty {
		t.Fatalf("state before restoration: got %v, want %v", got, StateDirty)
	}
	if cmd == nil {
		t.Fatalf("expected a restoration command")
	}

	m = flush(m, cmd)
	if got := m.Cursor(); got != 2 {
		t.Fatalf("cursor after restoration: got %d, want %d", got, 2)
	}
	if got := m.State(); got != StateClean {
		t.Fatalf("state after restoration: got %v, want %v", got, StateClean)
	}
	if !m.Value().Equal(numfmt.Number(19234)) {
		t.Fatalf("value: got %v, want 19234", m.Value())
	}
}

func TestUpdate_BackspaceOnSeparatorDeletesNothing(t *testing.T) {
	m := New(Config{Value: numfmt.Number(1234)})
	m = press(m,
		tea.KeyMsg{Type: tea.KeyHome},
		tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeyBackspace},
	)
	if got := m.Display(); got != "1,234" {
		t.Fatalf("display: got %q, want %q", got, "1,234")
	}
	if got := m.Cursor(); got != 1 {
		t.Fatalf("cursor: got %d, want %d", got, 1)
	}
}

func TestUpdate_DeleteOnSeparatorDeletesNothing(t *testing.T) {
	m := New(Config{Value: numfmt.Number(1234)})
	m = press(m,
		tea.KeyMsg{Type: tea.KeyHome},
		tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeyDelete},
	)
	if got := m.Display(); got != "1,234" {
		t.Fatalf("display: got %q, want %q", got, "1,234")
	}
	if got := m.Cursor(); got != 1 {
		t.Fatalf("cursor: got %d, want %d", got, 1)
	}
}

func TestUpdate_BackspaceRegroups(t *testing.T) {
	m := New(Config{Value: numfmt.Number(1234)})
	m = press(m, tea.KeyMsg{Type: tea.KeyBackspace})
	if got := m.Display(); got != "123" {
		t.Fatalf("display: got %q, want %q", got, "123")
	}
	if got := m.Cursor(); got != 3 {
		t.Fatalf("cursor: got %d, want %d", got, 3)
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyBackspace}, tea.KeyMsg{Type: tea.KeyBackspace}, tea.KeyMsg{Type: tea.KeyBackspace})
	if !m.Value().IsNull() {
		t.Fatalf("value of empty field: got %v, want null", m.Value())
	}
}

func TestUpdate_StaleRestorationIgnored(t *testing.T) {
	m := New(Config{Value: numfmt.Number(1234)})
	m = press(m, tea.KeyMsg{Type: tea.KeyHome}, tea.KeyMsg{Type: tea.KeyRight})

	m, first := m.Update(runes("9"))
	m, second := m.Update(runes("8"))

	m, _ = m.Update(first())
	if got := m.State(); got != StateDirty {
		t.Fatalf("superseded restoration must not settle the field, state=%v", got)
	}
	m = flush(m, second)
	if got := m.State(); got != StateClean {
		t.Fatalf("state: got %v, want %v", got, StateClean)
	}
	if got := m.Display(); got != "192,348" {
		t.Fatalf("display: got %q, want %q", got, "192,348")
	}
}

func TestUpdate_RestorationForOtherFieldIgnored(t *testing.T) {
	a := New(Config{})
	b := New(Config{})
	if a.ID() == b.ID() {
		t.Fatalf("field IDs must be unique")
	}

	a, cmd := a.Update(runes("5"))
	msg := cmd().(RestoreCaretMsg)

	b, _ = b.Update(msg)
	if got := a.State(); got != StateDirty {
		t.Fatalf("state of a: got %v, want %v", got, StateDirty)
	}
	a, _ = a.Update(msg)
	if got := a.State(); got != StateClean {
		t.Fatalf("state of a: got %v, want %v", got, StateClean)
	}
}

func TestUpdate_SetValue(t *testing.T) {
	var events []ChangeEvent
	m := New(Config{OnChange: func(ev ChangeEvent) { events = append(events, ev) }})
	m = typeText(m, "1234")
	if len(events) != 4 {
		t.Fatalf("events after typing: got %d, want %d", len(events), 4)
	}

	m = m.SetValue(numfmt.Null())
	if got := m.Display(); got != "" {
		t.Fatalf("display after null reset: got %q, want empty", got)
	}
	if len(events) != 4 {
		t.Fatalf("external reset must not fire OnChange, events=%d", len(events))
	}

	m = typeText(m, "007")
	m = m.SetValue(numfmt.Number(7))
	if got := m.Display(); got != "007" {
		t.Fatalf("display after echo: got %q, want %q", got, "007")
	}

	m = m.SetValue(numfmt.Number(3500000))
	if got := m.Display(); got != "3,500,000" {
		t.Fatalf("display after reset: got %q, want %q", got, "3,500,000")
	}
	if got := m.Cursor(); got != 9 {
		t.Fatalf("cursor after reset: got %d, want %d", got, 9)
	}
}

func TestUpdate_OnChangePayload(t *testing.T) {
	var last ChangeEvent
	m := New(Config{AllowDecimal: true, OnChange: func(ev ChangeEvent) { last = ev }})
	m = typeText(m, "2500.")

	if last.FieldID != m.ID() {
		t.Fatalf("field id: got %d, want %d", last.FieldID, m.ID())
	}
	if !last.Value.Equal(numfmt.Number(2500)) {
		t.Fatalf("value: got %v, want 2500", last.Value)
	}
	if last.Raw != "2500." || last.Display != "2,500." {
		t.Fatalf("text: got raw %q display %q", last.Raw, last.Display)
	}
	if last.Generation != m.Controller().Generation() {
		t.Fatalf("generation: got %d, want %d", last.Generation, m.Controller().Generation())
	}
}

func TestUpdate_ReadOnlyAndBlurIgnoreMutations(t *testing.T) {
	m := New(Config{Value: numfmt.Number(12), ReadOnly: true})
	m = typeText(m, "3")
	if got := m.Display(); got != "12" {
		t.Fatalf("read-only display: got %q, want %q", got, "12")
	}

	m = New(Config{Value: numfmt.Number(12)}).Blur()
	m = typeText(m, "3")
	if got := m.Display(); got != "12" {
		t.Fatalf("blurred display: got %q, want %q", got, "12")
	}
	m = m.Focus()
	m = typeText(m, "3")
	if got := m.Display(); got != "123" {
		t.Fatalf("focused display: got %q, want %q", got, "123")
	}
}

func TestUpdate_UndoRedoRepublish(t *testing.T) {
	var values []numfmt.Value
	m := New(Config{OnChange: func(ev ChangeEvent) { values = append(values, ev.Value) }})
	m = typeText(m, "1234")

	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlZ})
	if got := m.Display(); got != "123" {
		t.Fatalf("display after undo: got %q, want %q", got, "123")
	}
	if got := values[len(values)-1]; !got.Equal(numfmt.Number(123)) {
		t.Fatalf("published after undo: got %v, want 123", got)
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlY})
	if got := m.Display(); got != "1,234" {
		t.Fatalf("display after redo: got %q, want %q", got, "1,234")
	}
	if got := m.Cursor(); got != 5 {
		t.Fatalf("cursor after redo: got %d, want %d", got, 5)
	}
}

func TestUpdate_ClipboardPasteCutCopy(t *testing.T) {
	cb := &memClipboard{s: "฿2,500,000.50 THB"}
	m := New(Config{AllowDecimal: true, Clipboard: cb})

	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlV})
	if got := m.Display(); got != "2,500,000.50" {
		t.Fatalf("display after paste: got %q, want %q", got, "2,500,000.50")
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyShiftHome}, tea.KeyMsg{Type: tea.KeyCtrlC})
	if got := cb.s; got != "2,500,000.50" {
		t.Fatalf("clipboard after copy: got %q, want %q", got, "2,500,000.50")
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlX})
	if got := m.Display(); got != "" {
		t.Fatalf("display after cut: got %q, want empty", got)
	}
	if !m.Value().IsNull() {
		t.Fatalf("value after cut: got %v, want null", m.Value())
	}

	cb.err = errors.New("clipboard unavailable")
	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlV})
	if got := m.Display(); got != "" {
		t.Fatalf("display after failed paste: got %q, want empty", got)
	}
}

func TestUpdate_BracketedPaste(t *testing.T) {
	m := New(Config{})
	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1 000 000"), Paste: true})
	if got := m.Display(); got != "1,000,000" {
		t.Fatalf("display: got %q, want %q", got, "1,000,000")
	}
	if got := m.Cursor(); got != 9 {
		t.Fatalf("cursor: got %d, want %d", got, 9)
	}
}

func TestUpdate_WordMovementStepsOverGroups(t *testing.T) {
	m := New(Config{Value: numfmt.Number(1234567)})
	m = press(m, tea.KeyMsg{Type: tea.KeyLeft, Alt: true})
	if got := m.Cursor(); got != 6 {
		t.Fatalf("cursor after group left: got %d, want %d", got, 6)
	}
	m = typeText(m, "0")
	if got, want := m.Display(), "12,340,567"; got != want {
		t.Fatalf("display: got %q, want %q", got, want)
	}
	if got := m.Cursor(); got != 7 {
		t.Fatalf("cursor: got %d, want %d", got, 7)
	}
}

func TestUpdate_CloseDropsPendingRestoration(t *testing.T) {
	m := New(Config{Value: numfmt.Number(1234)})
	m = press(m, tea.KeyMsg{Type: tea.KeyHome})
	m, cmd := m.Update(runes("9"))
	m = m.Close()

	m = flush(m, cmd)
	if got := m.Cursor(); got != 6 {
		t.Fatalf("cursor after close: got %d, want %d", got, 6)
	}
	m = m.Focus()
	m = typeText(m, "1")
	if got := m.Display(); got != "91,234" {
		t.Fatalf("closed field accepted input: %q", got)
	}
}

func TestUpdate_RejectedPointKeepsCaret(t *testing.T) {
	m := New(Config{Value: numfmt.Number(1234)})
	m = press(m, tea.KeyMsg{Type: tea.KeyHome}, tea.KeyMsg{Type: tea.KeyRight})
	m = typeText(m, ".")
	if got := m.Display(); got != "1,234" {
		t.Fatalf("display: got %q, want %q", got, "1,234")
	}
	if got := m.Cursor(); got != 1 {
		t.Fatalf("cursor: got %d, want %d", got, 1)
	}
}

func TestUpdate_SecondPointKeepsCaret(t *testing.T) {
	m := New(Config{Value: numfmt.Number(1234.56), AllowDecimal: true})
	m = press(m, tea.KeyMsg{Type: tea.KeyLeft})
	m = typeText(m, ".")
	if got := m.Display(); got != "1,234.56" {
		t.Fatalf("display: got %q, want %q", got, "1,234.56")
	}
	if got := m.Cursor(); got != 7 {
		t.Fatalf("cursor: got %d, want %d", got, 7)
	}
}

func TestUpdate_RejectedKeystrokeLeavesNoUndoStep(t *testing.T) {
	m := New(Config{})
	m = typeText(m, "12x")
	if got := m.Display(); got != "12" {
		t.Fatalf("display: got %q, want %q", got, "12")
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlZ})
	if got := m.Display(); got != "1" {
		t.Fatalf("display after undo: got %q, want %q", got, "1")
	}

	m = typeText(m, "x")
	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlY})
	if got := m.Display(); got != "12" {
		t.Fatalf("rejected keystroke must keep redo, display after redo: got %q, want %q", got, "12")
	}
}

func TestUpdate_ResetClearsLonePoint(t *testing.T) {
	m := New(Config{AllowDecimal: true})
	m = typeText(m, ".")

	m = m.SetValue(numfmt.Null())
	if got := m.Display(); got != "." {
		t.Fatalf("null echo: got %q, want %q", got, ".")
	}
	m = m.Reset(numfmt.Null())
	if got := m.Display(); got != "" {
		t.Fatalf("reset: got %q, want empty", got)
	}
}
