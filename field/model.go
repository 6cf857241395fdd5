package field

import (
	"log/slog"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/shinyrainbow/thea5995property-sub000/buffer"
	"github.com/shinyrainbow/thea5995property-sub000/numfmt"
)

var lastID atomic.Int64

func nextID() int {
	return int(lastID.Add(1))
}

// Model is a Bubble Tea numeric text field.
//
// Model is a value type, but copies share the underlying buffer and
// controller, like the state of a mounted text field.
type Model struct {
	cfg Config
	id  int
	buf *buffer.Buffer
	ctl *Controller
	log *slog.Logger

	focused bool
}

func New(cfg Config) Model {
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	id := nextID()
	m := Model{
		cfg:     cfg,
		id:      id,
		log:     logger.With("field", id),
		focused: true,
	}

	onChange := cfg.OnChange
	var ctl *Controller
	ctl = NewController(cfg.Value, cfg.mode(), func(v numfmt.Value) {
		if onChange == nil {
			return
		}
		onChange(ChangeEvent{
			FieldID:    id,
			Value:      v,
			Raw:        ctl.Raw(),
			Display:    ctl.Display(),
			Generation: ctl.Generation(),
		})
	})
	m.ctl = ctl
	m.buf = buffer.New(ctl.Display(), buffer.Options{HistoryLimit: cfg.HistoryLimit})
	m.buf.SetCursor(m.buf.Len())
	return m
}

// ID identifies the field in RestoreCaretMsg and ChangeEvent.
func (m Model) ID() int { return m.id }

func (m Model) Buffer() *buffer.Buffer { return m.buf }

func (m Model) Controller() *Controller { return m.ctl }

// KeyMap returns the active bindings, for help views.
func (m Model) KeyMap() KeyMap { return m.cfg.KeyMap }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Focus() Model {
	m.focused = true
	return m
}

func (m Model) Blur() Model {
	m.focused = false
	return m
}

func (m Model) Focused() bool { return m.focused }

// Value returns the semantic value of the field.
func (m Model) Value() numfmt.Value { return m.ctl.Value() }

// Raw returns the sanitized text without separators.
func (m Model) Raw() string { return m.ctl.Raw() }

// Display returns the text shown in the field.
func (m Model) Display() string { return m.buf.Text() }

// Cursor returns the caret as a UTF-16 offset into Display.
func (m Model) Cursor() int { return m.buf.CursorUTF16() }

func (m Model) State() State { return m.ctl.State() }

// SetValue applies an externally bound value, for example when a form is
// loaded. Text being edited is kept when it already holds v. No caret
// restoration is scheduled and OnChange does not fire.
func (m Model) SetValue(v numfmt.Value) Model {
	display, changed := m.ctl.SetValue(v)
	return m.replaced(v, display, changed)
}

// Reset is SetValue for explicit resets: the text is reconciled with v even
// when v equals the last bound value.
func (m Model) Reset(v numfmt.Value) Model {
	display, changed := m.ctl.Reset(v)
	return m.replaced(v, display, changed)
}

func (m Model) replaced(v numfmt.Value, display string, changed bool) Model {
	if !changed {
		return m
	}
	m.log.Debug("external value replaced text", "value", v.String(), "display", display)
	m.buf.SetText(display)
	return m
}

// Close unmounts the field: pending caret restorations are dropped and
// further input is ignored.
func (m Model) Close() Model {
	m.ctl.Destroy()
	m.focused = false
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RestoreCaretMsg:
		if msg.FieldID != m.id {
			return m, nil
		}
		m.applyRestore(msg.Generation)
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	default:
		return m, nil
	}
}

// commit feeds the buffer text and caret through the controller, rewrites
// the buffer with the display string, and schedules the caret restoration.
func (m *Model) commit() tea.Cmd {
	edit := m.ctl.Input(m.buf.Text(), m.buf.CursorUTF16())
	// The rewrite leaves the caret at the end, as a host text field does when
	// its value is replaced; the restoration puts it back.
	m.buf.Reformat(edit.Display)
	return restoreCaret(m.id, edit.Generation)
}

func (m *Model) applyRestore(gen uint64) {
	caret, ok := m.ctl.Restore(gen)
	if !ok {
		m.log.Debug("stale caret restoration dropped", "generation", gen, "latest", m.ctl.Generation())
		return
	}
	if !m.buf.SetCursorUTF16(caret) {
		m.log.Debug("caret restoration splits a cluster", "caret", caret, "display", m.buf.Text())
	}
}
