//go:build windows

package lineedit

import (
	"os"

	"github.com/mattn/go-isatty"
)

// NewDecoder returns the Decoder for the terminal f.
//
// A native console is read key by key through _getch and decoded with a
// ConsoleDecoder. Cygwin and MSYS terminals (mintty and friends) are pipes
// that carry the same escape sequences as a POSIX terminal, as does any
// other non-console input, so those get an ANSIDecoder.
func NewDecoder(f *os.File) Decoder {
	if isatty.IsCygwinTerminal(f.Fd()) || !isatty.IsTerminal(f.Fd()) {
		return NewANSIDecoder(f)
	}
	return NewConsoleDecoder(getchReader{})
}
