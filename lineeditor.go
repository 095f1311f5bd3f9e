// =============================================================================
// lineeditor.go - Line Editor Selection
// =============================================================================
//
// The REPL reads its input through one of three backends:
//
//   - builtin:  the raw-mode line editor in package lineedit (default)
//   - readline: github.com/ergochat/readline, history kept in memory only
//   - basic:    a bufio.Scanner over stdin, used whenever stdin is not a
//     terminal or the process runs inside an Emacs comint buffer
//
// All three are hidden behind LineEditor.GetLine, which returns the line
// and false once input has ended.
//
// =============================================================================

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/MobileGL-Dev/MobileGLCodeManager/lineedit"
	"github.com/ergochat/readline"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// Editor backend names accepted by --editor and the config file.
const (
	editorBuiltin  = "builtin"
	editorReadline = "readline"
	editorBasic    = "basic"
)

// historySize bounds the readline backend's in-memory history.
const historySize = 500

func validEditorKind(kind string) bool {
	switch kind {
	case editorBuiltin, editorReadline, editorBasic:
		return true
	}
	return false
}

// LineEditor provides line input from stdin.
type LineEditor struct {
	kind string

	logger *slog.Logger

	builtin *lineedit.Editor

	rl *readline.Instance

	scanner *bufio.Scanner
}

// NewLineEditor creates a LineEditor using the requested backend. The basic
// backend is used regardless of kind when stdin or stdout is not a terminal.
//
// GO CONCEPT: Graceful Fallback
// -----------------------------
// If readline fails to initialize we do not abort. The constructor warns
// and returns a working basic editor instead, so the caller never has to
// handle a nil editor.
func NewLineEditor(kind string, logger *slog.Logger) *LineEditor {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if !isInteractive(os.Stdin, os.Stdout) || os.Getenv("INSIDE_EMACS") != "" {
		kind = editorBasic
	}

	switch kind {
	case editorBuiltin:
		return &LineEditor{
			kind:    editorBuiltin,
			logger:  logger,
			builtin: lineedit.New(os.Stdin, stdout, lineedit.WithLogger(logger)),
		}

	case editorReadline:
		rl, err := readline.NewFromConfig(&readline.Config{
			HistoryLimit:           historySize,
			DisableAutoSaveHistory: true,
		})
		if err == nil {
			return &LineEditor{kind: editorReadline, logger: logger, rl: rl}
		}
		printWarning(fmt.Sprintf("readline init failed (%v), using basic input", err))
	}

	le := newBasicLineEditor(os.Stdin)
	le.logger = logger
	return le
}

// isInteractive reports whether line editing is possible: keys come from a
// terminal and the redrawn line goes to one. A Cygwin/MSYS pty counts as
// a terminal for output.
func isInteractive(in, out *os.File) bool {
	if !term.IsTerminal(int(in.Fd())) {
		return false
	}
	fd := out.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func newBasicLineEditor(r io.Reader) *LineEditor {
	return &LineEditor{
		kind:    editorBasic,
		logger:  slog.New(slog.DiscardHandler),
		scanner: bufio.NewScanner(r),
	}
}

// GetLine displays prompt and reads one line. It returns false when the
// input has ended and the REPL should stop.
func (le *LineEditor) GetLine(prompt string) (string, bool) {
	switch le.kind {
	case editorBuiltin:
		return le.builtin.ReadLine(prompt)
	case editorReadline:
		return le.getReadlineLine(prompt)
	default:
		return le.getBasicLine(prompt)
	}
}

// getReadlineLine reads through readline. Ctrl-C discards the current line
// and prompts again, matching the builtin editor.
func (le *LineEditor) getReadlineLine(prompt string) (string, bool) {
	le.rl.SetPrompt(prompt)

	for {
		line, err := le.rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if err != nil {
			return "", false
		}
		if line != "" {
			if err := le.rl.SaveToHistory(line); err != nil {
				le.logger.Debug("history not saved", "error", err)
			}
		}
		return line, true
	}
}

func (le *LineEditor) getBasicLine(prompt string) (string, bool) {
	fmt.Fprint(stdout, prompt)

	if !le.scanner.Scan() {
		if err := le.scanner.Err(); err != nil {
			printError(err.Error())
		}
		fmt.Fprintln(stdout)
		return "", false
	}
	return le.scanner.Text(), true
}

// Kind returns the backend in use.
func (le *LineEditor) Kind() string {
	return le.kind
}

// Close releases the backend. The builtin editor leaves raw mode after
// every line, so only readline holds resources.
func (le *LineEditor) Close() {
	if le.rl != nil {
		le.rl.Close()
		le.rl = nil
	}
}
