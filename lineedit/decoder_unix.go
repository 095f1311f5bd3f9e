//go:build !windows

package lineedit

import "os"

// NewDecoder returns the Decoder for the terminal f. POSIX terminals in raw
// mode deliver plain bytes, so this is always an ANSIDecoder.
func NewDecoder(f *os.File) Decoder {
	return NewANSIDecoder(f)
}
