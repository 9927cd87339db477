// Package clipboard reads the selected text from, and writes polished text to,
// the system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrUnsupported is returned when no clipboard utility is available.
var ErrUnsupported = errors.New("clipboard is not available on this system")

// Provider is the clipboard surface used by the CLI.
type Provider interface {
	Read() (string, error)
	Write(text string) error
}

// System uses the OS clipboard.
type System struct{}

// New returns the OS clipboard, or an in-process Memory clipboard when no
// clipboard utility is installed.
func New() Provider {
	if clipboard.Unsupported {
		return &Memory{}
	}
	return System{}
}

// Read returns the current clipboard text.
func (System) Read() (string, error) {
	if clipboard.Unsupported {
		return "", ErrUnsupported
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("failed to read clipboard: %w", err)
	}
	return text, nil
}

// Write replaces the clipboard contents with text.
func (System) Write(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}

// Memory is an in-process clipboard. New falls back to it when the OS
// clipboard is unavailable.
type Memory struct {
	text string
}

// Read returns the stored text.
func (m *Memory) Read() (string, error) {
	return m.text, nil
}

// Write stores text.
func (m *Memory) Write(text string) error {
	m.text = text
	return nil
}
