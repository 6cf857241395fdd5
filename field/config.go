package field

import (
	"log/slog"

	"github.com/shinyrainbow/thea5995property-sub000/numfmt"
)

// Config configures the field Model.
type Config struct {
	// Initial externally bound value.
	Value numfmt.Value
	// AllowDecimal permits one decimal point and fractional digits. It is
	// fixed for the lifetime of the field.
	AllowDecimal bool

	// Rendering options.
	Prompt      string
	Placeholder string
	// Width limits the rendered line in cells, prompt included. 0 means
	// unlimited.
	Width int
	Style Style

	ReadOnly bool
	KeyMap   KeyMap
	// Clipboard is optional; copy, cut and paste do nothing without it.
	Clipboard Clipboard

	// OnChange fires on every keystroke-originated edit, never on external
	// resets.
	OnChange func(ChangeEvent)

	// Logger receives debug records. Defaults to a discarding logger.
	Logger *slog.Logger

	// Forwarded to buffer.Options.
	HistoryLimit int
}

func (c Config) mode() numfmt.Mode {
	return numfmt.Mode{AllowDecimal: c.AllowDecimal}
}
