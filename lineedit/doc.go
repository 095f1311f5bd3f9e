// Package lineedit provides a raw-mode, single-line terminal editor.
//
// The editor reads the terminal one key at a time, decodes the input into
// logical key events, keeps an editable buffer with a cursor and an
// in-memory history of submitted lines, and redraws the prompt line after
// every change.
//
// # Components
//
//   - Decoder turns raw input into KeyEvent values. ANSIDecoder handles the
//     byte encoding used by POSIX terminals (ESC [ A for the Up arrow);
//     ConsoleDecoder handles the key codes returned by the Windows console
//     (an extended-key prefix followed by a direction code). NewDecoder
//     picks the right one for the current platform.
//   - Buffer is the text being edited plus a cursor offset.
//   - History is the list of submitted lines plus a browse index.
//   - Renderer repaints prompt and buffer, blanking characters left over
//     from a longer previous rendering.
//   - ModeController switches the terminal into raw mode and back.
//   - Editor ties them together in ReadLine.
//
// # Basic Usage
//
//	editor := lineedit.New(os.Stdin, os.Stdout)
//	for {
//	    line, ok := editor.ReadLine(">>> ")
//	    if !ok {
//	        break // Ctrl-D or end of input
//	    }
//	    fmt.Println("got", line)
//	}
//
// ReadLine returns ok=false exactly once the input is exhausted, and the
// caller is expected to stop asking for lines after that. Ctrl-C only
// discards the line being edited.
//
// # Thread Safety
//
// An Editor owns the terminal while ReadLine runs and must not be used from
// more than one goroutine at a time.
package lineedit
