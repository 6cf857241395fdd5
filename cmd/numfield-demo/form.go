package main

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/shinyrainbow/thea5995property-sub000/field"
	"github.com/shinyrainbow/thea5995property-sub000/numfmt"
)

const (
	fieldPrice = iota
	fieldArea
	fieldBedrooms
)

type formKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Reload key.Binding
	Clear  key.Binding
	Submit key.Binding
	Quit   key.Binding
}

func defaultFormKeyMap() formKeyMap {
	return formKeyMap{
		Next:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev")),
		Reload: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reload")),
		Clear:  key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear")),
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+q", "esc"), key.WithHelp("ctrl+q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k formKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Reload, k.Clear, k.Submit, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k formKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Prev}, {k.Reload, k.Clear}, {k.Submit, k.Quit}}
}

type form struct {
	fields  []field.Model
	focus   int
	initial listing
	keys    formKeyMap
	help    help.Model
	log     *slog.Logger

	// Edits published by the fields, shared across model copies.
	changes *int

	submitted bool
}

func newForm(l listing, logger *slog.Logger, cb field.Clipboard) form {
	if cb == nil {
		cb = &field.MemoryClipboard{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	changes := new(int)
	onChange := func(name string) func(field.ChangeEvent) {
		return func(ev field.ChangeEvent) {
			*changes++
			logger.Debug("field changed", "name", name, "value", ev.Value.String(), "display", ev.Display)
		}
	}
	base := func(prompt, name string) field.Config {
		return field.Config{
			Prompt:    prompt,
			Width:     32,
			Style:     field.DefaultStyle(),
			OnChange:  onChange(name),
			Logger:    logger.With("name", name),
			Clipboard: cb,
		}
	}

	price := base("Price (THB)  ", "price")
	price.Value = l.Price
	price.Placeholder = "0"

	area := base("Area (sq.m)  ", "area")
	area.Value = l.Area
	area.AllowDecimal = true
	area.Placeholder = "0.00"

	bedrooms := base("Bedrooms     ", "bedrooms")
	bedrooms.Value = l.Bedrooms
	bedrooms.Placeholder = "0"

	f := form{
		fields: []field.Model{
			field.New(price),
			field.New(area),
			field.New(bedrooms),
		},
		initial: l,
		keys:    defaultFormKeyMap(),
		help:    help.New(),
		log:     logger,
		changes: changes,
	}
	f.setFocus(fieldPrice)
	return f
}

func (f form) Init() tea.Cmd { return nil }

func (f form) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case field.RestoreCaretMsg:
		// Each field drops messages addressed to another field.
		for i := range f.fields {
			f.fields[i], _ = f.fields[i].Update(msg)
		}
		return f, nil
	case tea.WindowSizeMsg:
		f.help.Width = msg.Width
		return f, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, f.keys.Quit):
			f.close()
			return f, tea.Quit
		case key.Matches(msg, f.keys.Submit):
			f.submitted = true
			f.close()
			return f, tea.Quit
		case key.Matches(msg, f.keys.Next):
			f.setFocus((f.focus + 1) % len(f.fields))
			return f, nil
		case key.Matches(msg, f.keys.Prev):
			f.setFocus((f.focus + len(f.fields) - 1) % len(f.fields))
			return f, nil
		case key.Matches(msg, f.keys.Reload):
			f.apply(f.initial)
			f.log.Info("listing reloaded", "listing", f.initial.String())
			return f, nil
		case key.Matches(msg, f.keys.Clear):
			f.apply(listing{})
			f.log.Info("listing cleared")
			return f, nil
		}
	}

	var cmd tea.Cmd
	f.fields[f.focus], cmd = f.fields[f.focus].Update(msg)
	return f, cmd
}

func (f *form) setFocus(i int) {
	for j := range f.fields {
		if j == i {
			f.fields[j] = f.fields[j].Focus()
		} else {
			f.fields[j] = f.fields[j].Blur()
		}
	}
	f.focus = i
}

// apply resets every field to the listing, including text the value does
// not capture such as a lone decimal point.
func (f *form) apply(l listing) {
	f.fields[fieldPrice] = f.fields[fieldPrice].Reset(l.Price)
	f.fields[fieldArea] = f.fields[fieldArea].Reset(l.Area)
	f.fields[fieldBedrooms] = f.fields[fieldBedrooms].Reset(l.Bedrooms)
}

func (f *form) close() {
	for i := range f.fields {
		f.fields[i] = f.fields[i].Close()
	}
}

func (f form) current() listing {
	return listing{
		Price:    f.fields[fieldPrice].Value(),
		Area:     f.fields[fieldArea].Value(),
		Bedrooms: f.fields[fieldBedrooms].Value(),
	}
}

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

func (f form) View() string {
	var sb strings.Builder
	sb.WriteString("Listing\n\n")
	for _, fld := range f.fields {
		sb.WriteString(fld.View())
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(f.help.View(f.keys))
	sb.WriteString("\n")
	sb.WriteString(f.help.ShortHelpView(f.fields[f.focus].KeyMap().ShortHelp()))
	sb.WriteString("\n")
	sb.WriteString(statusStyle.Render(statusLine(f.current(), *f.changes)))
	sb.WriteString("\n")
	return sb.String()
}

func statusLine(l listing, changes int) string {
	var sb strings.Builder
	sb.WriteString("edits: ")
	sb.WriteString(numfmt.Group(numfmt.FormatValue(numfmt.Number(float64(changes)), false)))
	sb.WriteString("  ")
	sb.WriteString(l.String())
	return sb.String()
}
