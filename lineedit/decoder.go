package lineedit

import (
	"bufio"
	"io"
)

// Decoder produces logical key events from a raw input source.
//
// ReadKey blocks until one complete event is available and never returns
// more than one. When the underlying source fails, ReadKey returns a KeyEOF
// event together with the error (io.EOF for a clean end of input); callers
// treat both the same way and may use the error only for diagnostics.
type Decoder interface {
	ReadKey() (KeyEvent, error)
}

// Control codes shared by both key tables.
const (
	codeCtrlC     = 0x03
	codeCtrlD     = 0x04
	codeBackspace = 0x08
	codeLF        = 0x0a
	codeCR        = 0x0d
	codeCtrlZ     = 0x1a
	codeEscape    = 0x1b
	codeDelete    = 0x7f
)

// asByteReader returns r itself when it already reads single bytes, and a
// buffered wrapper otherwise.
func asByteReader(r io.Reader) io.ByteReader {
	if br, ok := r.(io.ByteReader); ok {
		return br
	}
	return bufio.NewReader(r)
}

// ANSIDecoder decodes the byte stream of a POSIX terminal in raw mode.
//
//	CR, LF             Enter
//	DEL, BS            Backspace
//	ETX (Ctrl-C)       CtrlC
//	EOT (Ctrl-D)       EOF
//	ESC [ A/B/C/D      Up/Down/Right/Left
//	ESC O A/B/C/D      Up/Down/Right/Left (application cursor keys)
//	0x20-0x7e          Printable
//
// An escape sequence is consumed as a whole. A sequence that ends in an
// unknown final byte decodes to KeyIgnored; a sequence cut short by the end
// of input decodes to KeyEOF. When a control byte or another ESC interrupts
// a sequence, the sequence decodes to KeyIgnored and the interrupting byte
// is decoded by the next call. The bytes of a partial sequence are never
// reported as printable characters.
type ANSIDecoder struct {
	in io.ByteReader

	pending    byte
	hasPending bool
}

// NewANSIDecoder creates an ANSIDecoder reading from r.
func NewANSIDecoder(r io.Reader) *ANSIDecoder {
	return &ANSIDecoder{in: asByteReader(r)}
}

func (d *ANSIDecoder) readByte() (byte, error) {
	if d.hasPending {
		d.hasPending = false
		return d.pending, nil
	}
	return d.in.ReadByte()
}

// unreadByte makes b the next byte returned by readByte.
func (d *ANSIDecoder) unreadByte(b byte) {
	d.pending, d.hasPending = b, true
}

// ReadKey implements Decoder.
func (d *ANSIDecoder) ReadKey() (KeyEvent, error) {
	b, err := d.readByte()
	if err != nil {
		return Key(KeyEOF), err
	}

	switch b {
	case codeCR, codeLF:
		return Key(KeyEnter), nil
	case codeDelete, codeBackspace:
		return Key(KeyBackspace), nil
	case codeCtrlC:
		return Key(KeyCtrlC), nil
	case codeCtrlD:
		return Key(KeyEOF), nil
	case codeEscape:
		return d.readEscape()
	}

	if isPrintable(b) {
		return Printable(b), nil
	}
	return Key(KeyIgnored), nil
}

// interrupts reports whether b ends an escape sequence early and must be
// decoded as a key of its own.
func interrupts(b byte) bool {
	return b < 0x20 || b == codeDelete
}

// readEscape decodes what follows an ESC byte.
func (d *ANSIDecoder) readEscape() (KeyEvent, error) {
	b, err := d.readByte()
	if err != nil {
		return Key(KeyEOF), err
	}
	switch {
	case b == '[':
		return d.readCSI()
	case b == 'O':
		return d.readFinal(false)
	case interrupts(b):
		d.unreadByte(b)
	}
	// ESC followed by a printable byte (Alt-x) is dropped as a whole.
	return Key(KeyIgnored), nil
}

// readCSI decodes a control sequence after ESC [. Parameter and
// intermediate bytes (ESC [ 1 ; 5 C) are consumed up to the final byte, so
// a modified key never leaks as printable input.
func (d *ANSIDecoder) readCSI() (KeyEvent, error) {
	params := false
	for {
		b, err := d.readByte()
		if err != nil {
			return Key(KeyEOF), err
		}
		if b >= 0x20 && b <= 0x3f {
			params = true
			continue
		}
		d.unreadByte(b)
		return d.readFinal(params)
	}
}

// readFinal decodes the final byte of a CSI or SS3 sequence.
func (d *ANSIDecoder) readFinal(params bool) (KeyEvent, error) {
	b, err := d.readByte()
	if err != nil {
		return Key(KeyEOF), err
	}
	if interrupts(b) {
		d.unreadByte(b)
		return Key(KeyIgnored), nil
	}
	if params {
		return Key(KeyIgnored), nil
	}
	switch b {
	case 'A':
		return Key(KeyUp), nil
	case 'B':
		return Key(KeyDown), nil
	case 'C':
		return Key(KeyRight), nil
	case 'D':
		return Key(KeyLeft), nil
	default:
		return Key(KeyIgnored), nil
	}
}

// Key codes returned by the Windows console for extended keys. The first
// code of an extended key is one of the two prefixes; the second identifies
// the key.
const (
	consolePrefixNull     = 0x00
	consolePrefixExtended = 0xe0

	consoleUp    = 72
	consoleLeft  = 75
	consoleRight = 77
	consoleDown  = 80
)

// ConsoleDecoder decodes the key codes of the Windows console, as returned
// one key at a time by _getch.
//
//	CR               Enter
//	BS, DEL          Backspace (DEL is Ctrl-Backspace)
//	ETX (Ctrl-C)     CtrlC
//	SUB (Ctrl-Z)     EOF
//	0x00/0xe0 + 72   Up    (80 Down, 75 Left, 77 Right)
//	0x20-0x7e        Printable
//
// Like ANSIDecoder, an extended key is consumed as a whole and an unknown
// second code decodes to KeyIgnored.
type ConsoleDecoder struct {
	in io.ByteReader
}

// NewConsoleDecoder creates a ConsoleDecoder reading key codes from r.
func NewConsoleDecoder(r io.Reader) *ConsoleDecoder {
	return &ConsoleDecoder{in: asByteReader(r)}
}

// ReadKey implements Decoder.
func (d *ConsoleDecoder) ReadKey() (KeyEvent, error) {
	b, err := d.in.ReadByte()
	if err != nil {
		return Key(KeyEOF), err
	}

	switch b {
	case codeCR:
		return Key(KeyEnter), nil
	case codeBackspace, codeDelete:
		return Key(KeyBackspace), nil
	case codeCtrlC:
		return Key(KeyCtrlC), nil
	case codeCtrlZ:
		return Key(KeyEOF), nil
	case consolePrefixNull, consolePrefixExtended:
		return d.readExtended()
	}

	if isPrintable(b) {
		return Printable(b), nil
	}
	return Key(KeyIgnored), nil
}

func (d *ConsoleDecoder) readExtended() (KeyEvent, error) {
	b, err := d.in.ReadByte()
	if err != nil {
		return Key(KeyEOF), err
	}
	switch b {
	case consoleUp:
		return Key(KeyUp), nil
	case consoleDown:
		return Key(KeyDown), nil
	case consoleLeft:
		return Key(KeyLeft), nil
	case consoleRight:
		return Key(KeyRight), nil
	default:
		return Key(KeyIgnored), nil
	}
}
