//go:build !windows

package lineedit

import (
	"os"
	"sync"

	"golang.org/x/term"
)

// degradedModeDefault is false on POSIX: without raw mode the kernel line
// discipline would echo and buffer input behind the editor's back, so a
// failed setup ends the read instead.
const degradedModeDefault = false

// TerminalMode is the ModeController for a POSIX terminal, built on
// golang.org/x/term.
type TerminalMode struct {
	fd int

	mu    sync.Mutex
	saved *term.State
}

// NewTerminalMode creates a TerminalMode for the terminal f. No terminal
// state is changed until Enable is called.
func NewTerminalMode(f *os.File) *TerminalMode {
	return &TerminalMode{fd: int(f.Fd())}
}

// Enable implements ModeController. Calling Enable while raw mode is
// already active is a no-op.
func (m *TerminalMode) Enable() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.saved != nil {
		return nil
	}
	if !term.IsTerminal(m.fd) {
		return newSetupError("enable raw mode", ErrNotTerminal)
	}
	state, err := term.MakeRaw(m.fd)
	if err != nil {
		return newSetupError("enable raw mode", err)
	}
	m.saved = state
	return nil
}

// Disable implements ModeController. The saved state is dropped even when
// restoring fails, so the restore is attempted exactly once.
func (m *TerminalMode) Disable() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.saved == nil {
		return nil
	}
	state := m.saved
	m.saved = nil
	if err := term.Restore(m.fd, state); err != nil {
		return newSetupError("restore terminal mode", err)
	}
	return nil
}

// Active reports whether raw mode is currently enabled.
func (m *TerminalMode) Active() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saved != nil
}
