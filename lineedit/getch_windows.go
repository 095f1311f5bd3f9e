//go:build windows

package lineedit

import (
	"fmt"

	"golang.org/x/sys/windows"
)

var (
	modMSVCRT = windows.NewLazySystemDLL("msvcrt.dll")
	procGetch = modMSVCRT.NewProc("_getch")
)

// getchReader reads console key codes one at a time with _getch, which
// blocks until a key is pressed and does not echo it.
type getchReader struct{}

func (getchReader) ReadByte() (byte, error) {
	if err := procGetch.Find(); err != nil {
		return 0, fmt.Errorf("_getch unavailable: %w", err)
	}
	code, _, _ := procGetch.Call()
	return byte(code), nil
}

func (g getchReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	b, err := g.ReadByte()
	if err != nil {
		return 0, err
	}
	p[0] = b
	return 1, nil
}
