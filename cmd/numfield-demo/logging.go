package main

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
)

// openLogger returns a discarding logger unless a log file is configured;
// the terminal belongs to the form.
func openLogger(s logSettings) (*slog.Logger, func(), error) {
	if s.File == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	f, err := tea.LogToFile(s.File, "numfield")
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: s.Level})
	return slog.New(h), func() { _ = f.Close() }, nil
}
