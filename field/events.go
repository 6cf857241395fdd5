package field

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/shinyrainbow/thea5995property-sub000/numfmt"
)

// ChangeEvent is delivered to Config.OnChange after every keystroke.
type ChangeEvent struct {
	FieldID    int
	Value      numfmt.Value
	Raw        string
	Display    string
	Generation uint64
}

// RestoreCaretMsg carries a deferred caret restoration. A field ignores
// messages addressed to another field and those of a superseded generation.
type RestoreCaretMsg struct {
	FieldID    int
	Generation uint64
}

func restoreCaret(id int, gen uint64) tea.Cmd {
	return func() tea.Msg {
		return RestoreCaretMsg{FieldID: id, Generation: gen}
	}
}
