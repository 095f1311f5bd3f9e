package lineedit

import (
	"errors"
	"fmt"
)

// ErrNotTerminal is returned by a ModeController when its file is not an
// interactive terminal.
var ErrNotTerminal = errors.New("not a terminal")

// SetupError reports a failure to switch the terminal into or out of raw
// mode.
type SetupError struct {
	Op  string // "enable raw mode" or "restore terminal mode"
	Err error
}

func (e *SetupError) Error() string {
	return fmt.Sprintf("terminal setup failed: %s: %v", e.Op, e.Err)
}

func (e *SetupError) Unwrap() error {
	return e.Err
}

func newSetupError(op string, err error) error {
	return &SetupError{Op: op, Err: err}
}
