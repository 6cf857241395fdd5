package field

import (
	"io"
	"sync"

	"github.com/muesli/termenv"
)

// Clipboard backs copy, cut and paste. The field ignores its errors.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

// MemoryClipboard is a process-local clipboard, safe for concurrent use.
// The zero value is ready to use.
type MemoryClipboard struct {
	mu   sync.Mutex
	text string
}

func (c *MemoryClipboard) ReadText() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text, nil
}

func (c *MemoryClipboard) WriteText(s string) error {
	c.mu.Lock()
	c.text = s
	c.mu.Unlock()
	return nil
}

// TerminalClipboard copies into the terminal's system clipboard with an
// OSC 52 sequence. Terminals do not answer clipboard reads, so pastes
// return the last text copied through it.
type TerminalClipboard struct {
	out *termenv.Output
	mem MemoryClipboard
}

func NewTerminalClipboard(w io.Writer) *TerminalClipboard {
	return &TerminalClipboard{out: termenv.NewOutput(w)}
}

func (c *TerminalClipboard) ReadText() (string, error) {
	return c.mem.ReadText()
}

func (c *TerminalClipboard) WriteText(s string) error {
	c.out.Copy(s)
	return c.mem.WriteText(s)
}
