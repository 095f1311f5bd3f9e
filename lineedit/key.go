package lineedit

import "fmt"

// KeyKind identifies a logical key produced by a Decoder.
type KeyKind int

const (
	// KeyIgnored is input the editor does not act on.
	KeyIgnored KeyKind = iota
	// KeyPrintable is a printable ASCII character, carried in KeyEvent.Char.
	KeyPrintable
	// KeyEnter submits the current line.
	KeyEnter
	// KeyBackspace deletes the character left of the cursor.
	KeyBackspace
	// KeyCtrlC discards the current line.
	KeyCtrlC
	// KeyEOF ends the session.
	KeyEOF
	// KeyUp browses to an older history entry.
	KeyUp
	// KeyDown browses to a newer history entry.
	KeyDown
	// KeyLeft moves the cursor one position left.
	KeyLeft
	// KeyRight moves the cursor one position right.
	KeyRight
)

var keyKindNames = map[KeyKind]string{
	KeyIgnored:   "Ignored",
	KeyPrintable: "Printable",
	KeyEnter:     "Enter",
	KeyBackspace: "Backspace",
	KeyCtrlC:     "CtrlC",
	KeyEOF:       "EOF",
	KeyUp:        "ArrowUp",
	KeyDown:      "ArrowDown",
	KeyLeft:      "ArrowLeft",
	KeyRight:     "ArrowRight",
}

func (k KeyKind) String() string {
	if name, ok := keyKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("KeyKind(%d)", int(k))
}

// KeyEvent is one logical keystroke.
type KeyEvent struct {
	Kind KeyKind
	Char byte // Only meaningful for KeyPrintable
}

// Key returns a KeyEvent of the given kind with no character.
func Key(kind KeyKind) KeyEvent {
	return KeyEvent{Kind: kind}
}

// Printable returns a KeyEvent for the printable character c.
func Printable(c byte) KeyEvent {
	return KeyEvent{Kind: KeyPrintable, Char: c}
}

func (e KeyEvent) String() string {
	if e.Kind == KeyPrintable {
		return fmt.Sprintf("Printable(%q)", rune(e.Char))
	}
	return e.Kind.String()
}

// isPrintable reports whether b is in the printable ASCII range.
func isPrintable(b byte) bool {
	return b >= 0x20 && b <= 0x7e
}
