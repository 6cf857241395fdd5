package field

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/shinyrainbow/thea5995property-sub000/buffer"
)

// KeyMap defines the field key bindings.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks).
type KeyMap struct {
	Left, Right         key.Binding
	WordLeft, WordRight key.Binding
	Home, End           key.Binding

	ShiftLeft, ShiftRight key.Binding
	ShiftHome, ShiftEnd   key.Binding

	Backspace, Delete key.Binding

	Undo, Redo       key.Binding
	Copy, Cut, Paste key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left", "ctrl+b"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right", "ctrl+f"), key.WithHelp("→", "right")),

		// Portable word movement: terminals vary between alt+arrows and ctrl+arrows.
		WordLeft:  key.NewBinding(key.WithKeys("alt+left", "ctrl+left"), key.WithHelp("alt/ctrl+←", "group left")),
		WordRight: key.NewBinding(key.WithKeys("alt+right", "ctrl+right"), key.WithHelp("alt/ctrl+→", "group right")),

		Home: key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "start")),
		End:  key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "end")),

		ShiftLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "select left")),
		ShiftRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "select right")),
		ShiftHome:  key.NewBinding(key.WithKeys("shift+home"), key.WithHelp("shift+home", "select to start")),
		ShiftEnd:   key.NewBinding(key.WithKeys("shift+end"), key.WithHelp("shift+end", "select to end")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete", "ctrl+d"), key.WithHelp("del", "delete right")),

		Undo: key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Redo: key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "redo")),

		Copy:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "copy")),
		Cut:   key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "cut")),
		Paste: key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.WordLeft, k.WordRight, k.Undo, k.Paste}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.WordLeft, k.WordRight, k.Home, k.End},
		{k.ShiftLeft, k.ShiftRight, k.ShiftHome, k.ShiftEnd},
		{k.Backspace, k.Delete, k.Undo, k.Redo},
		{k.Copy, k.Cut, k.Paste},
	}
}

func (k KeyMap) isZero() bool {
	return len(k.Left.Keys()) == 0 && len(k.Right.Keys()) == 0 && len(k.Backspace.Keys()) == 0
}

type keyMove struct {
	binding key.Binding
	move    buffer.Move
}

// moves pairs the caret and selection bindings with buffer moves.
func (k KeyMap) moves() []keyMove {
	return []keyMove{
		{k.Left, buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirLeft}},
		{k.Right, buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirRight}},
		{k.WordLeft, buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirLeft}},
		{k.WordRight, buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirRight}},
		{k.Home, buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirHome}},
		{k.End, buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd}},
		{k.ShiftLeft, buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirLeft, Extend: true}},
		{k.ShiftRight, buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirRight, Extend: true}},
		{k.ShiftHome, buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirHome, Extend: true}},
		{k.ShiftEnd, buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd, Extend: true}},
	}
}
