//go:build windows

package lineedit

import (
	"os"
	"sync"

	"golang.org/x/sys/windows"
)

// degradedModeDefault is true on Windows: _getch reads keys one at a time
// without echo whatever the console mode is, so the editor keeps working
// when the mode cannot be changed.
const degradedModeDefault = true

// rawModeMask is the set of console input flags cleared in raw mode.
const rawModeMask = windows.ENABLE_ECHO_INPUT | windows.ENABLE_LINE_INPUT | windows.ENABLE_PROCESSED_INPUT

// TerminalMode is the ModeController for a Windows console input handle.
type TerminalMode struct {
	handle windows.Handle

	mu     sync.Mutex
	saved  uint32
	active bool
}

// NewTerminalMode creates a TerminalMode for the console f. No console
// state is changed until Enable is called.
func NewTerminalMode(f *os.File) *TerminalMode {
	return &TerminalMode{handle: windows.Handle(f.Fd())}
}

// Enable implements ModeController.
func (m *TerminalMode) Enable() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.active {
		return nil
	}
	var mode uint32
	if err := windows.GetConsoleMode(m.handle, &mode); err != nil {
		return newSetupError("enable raw mode", ErrNotTerminal)
	}
	if err := windows.SetConsoleMode(m.handle, mode&^rawModeMask); err != nil {
		return newSetupError("enable raw mode", err)
	}
	m.saved = mode
	m.active = true
	return nil
}

// Disable implements ModeController.
func (m *TerminalMode) Disable() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.active {
		return nil
	}
	m.active = false
	if err := windows.SetConsoleMode(m.handle, m.saved); err != nil {
		return newSetupError("restore terminal mode", err)
	}
	return nil
}

// Active reports whether raw mode is currently enabled.
func (m *TerminalMode) Active() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active
}
