package lineedit

// ModeController acquires and releases raw access to a terminal.
//
// Enable puts the terminal into raw mode: no line buffering, no local echo
// and no signal-generating control characters. Disable restores the
// settings saved by Enable. Disable is safe to call more than once and
// without a preceding successful Enable; extra calls do nothing.
type ModeController interface {
	Enable() error
	Disable() error
}

type nopModeController struct{}

func (nopModeController) Enable() error  { return nil }
func (nopModeController) Disable() error { return nil }

// NopModeController returns a ModeController that never touches the
// terminal. It is meant for input that is already raw, such as a script of
// key codes.
func NopModeController() ModeController {
	return nopModeController{}
}
