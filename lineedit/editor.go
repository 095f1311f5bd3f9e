package lineedit

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// DefaultInterruptIndicator is printed when Ctrl-C discards a line.
const DefaultInterruptIndicator = "^C"

// newline ends a line on a terminal whose output post-processing is off, as
// it is in raw mode.
const newline = "\r\n"

// Editor reads lines from a terminal in raw mode.
//
// The History is kept across ReadLine calls; the Buffer and the Renderer
// state are fresh for each call.
type Editor struct {
	decoder Decoder
	mode    ModeController
	out     io.Writer
	history *History
	logger  *slog.Logger

	interrupt     string
	allowDegraded bool

	setupReported bool
	err           error
}

// Option configures an Editor.
type Option func(*Editor)

// WithDecoder replaces the platform Decoder.
func WithDecoder(d Decoder) Option {
	return func(e *Editor) { e.decoder = d }
}

// WithModeController replaces the platform ModeController.
func WithModeController(m ModeController) Option {
	return func(e *Editor) { e.mode = m }
}

// WithHistory makes the Editor record into and browse h.
func WithHistory(h *History) Option {
	return func(e *Editor) { e.history = h }
}

// WithLogger sets the logger used for debug tracing. By default, or when l
// is nil, nothing is logged.
func WithLogger(l *slog.Logger) Option {
	return func(e *Editor) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithInterruptIndicator sets the text printed when Ctrl-C discards a line.
func WithInterruptIndicator(s string) Option {
	return func(e *Editor) { e.interrupt = s }
}

// WithDegradedMode sets whether ReadLine keeps going when raw mode cannot
// be enabled. The default depends on the platform: false on POSIX, true on
// Windows.
func WithDegradedMode(allow bool) Option {
	return func(e *Editor) { e.allowDegraded = allow }
}

// New creates an Editor reading keys from in and drawing on out. The
// Decoder and ModeController for in are chosen for the current platform
// unless replaced with options.
func New(in *os.File, out io.Writer, opts ...Option) *Editor {
	e := &Editor{
		out:           out,
		history:       NewHistory(),
		logger:        slog.New(slog.DiscardHandler),
		interrupt:     DefaultInterruptIndicator,
		allowDegraded: degradedModeDefault,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.decoder == nil {
		e.decoder = NewDecoder(in)
	}
	if e.mode == nil {
		e.mode = NewTerminalMode(in)
	}
	return e
}

// History returns the Editor's history.
func (e *Editor) History() *History {
	return e.history
}

// Err returns the most recent terminal setup or restore error, or nil.
// ReadLine itself only reports whether a line was read.
func (e *Editor) Err() error {
	return e.err
}

// ReadLine shows prompt and lets the user edit one line.
//
// It returns the submitted line and true when the user presses Enter; the
// line may be empty. It returns false when the input ends (Ctrl-D, Ctrl-Z
// on the Windows console, end of stream or a read error), or when the
// terminal cannot be put into raw mode on a platform that requires it.
// Once false has been returned the caller should stop calling ReadLine.
//
// The terminal mode is restored before ReadLine returns, on every path,
// and before the process dies of SIGTERM, SIGHUP or SIGQUIT while ReadLine
// is waiting for input.
func (e *Editor) ReadLine(prompt string) (string, bool) {
	if err := e.mode.Enable(); err != nil {
		e.reportSetupFailure(err)
		if !e.allowDegraded {
			return "", false
		}
	} else {
		e.logger.Debug("raw mode enabled")
	}
	defer e.release()
	defer restoreOnSignal(e.mode, e.logger, terminationSignals...)()

	buf := NewBuffer()
	r := NewRenderer(e.out)
	e.redraw(r, prompt, buf)

	for {
		ev, err := e.decoder.ReadKey()
		if err != nil && !errors.Is(err, io.EOF) {
			e.logger.Warn("read failed", "error", err)
		}
		e.logger.Debug("key", "event", ev.String(), "cursor", buf.Cursor(), "len", buf.Len())

		switch ev.Kind {
		case KeyPrintable:
			buf.Insert(ev.Char)
		case KeyBackspace:
			buf.DeleteBeforeCursor()
		case KeyLeft:
			buf.MoveLeft()
		case KeyRight:
			buf.MoveRight()
		case KeyUp:
			if line, ok := e.history.Previous(); ok {
				buf.ReplaceWith(line)
			}
		case KeyDown:
			if line, ok := e.history.Next(); ok {
				buf.ReplaceWith(line)
			}
		case KeyCtrlC:
			e.write(e.interrupt + newline)
			buf.Clear()
			r.Reset()
		case KeyEnter:
			line := buf.String()
			if line != "" {
				e.history.Append(line)
			} else {
				e.history.ResetBrowse()
			}
			e.write(newline)
			return line, true
		case KeyEOF:
			e.write(newline)
			return "", false
		default:
			continue
		}
		e.redraw(r, prompt, buf)
	}
}

func (e *Editor) redraw(r *Renderer, prompt string, buf *Buffer) {
	if err := r.Redraw(prompt, buf); err != nil {
		e.logger.Warn("redraw failed", "error", err)
	}
}

func (e *Editor) write(s string) {
	if _, err := io.WriteString(e.out, s); err != nil {
		e.logger.Warn("write failed", "error", err)
	}
}

func (e *Editor) release() {
	if err := e.mode.Disable(); err != nil {
		e.err = err
		e.logger.Error("terminal mode not restored", "error", err)
		return
	}
	e.logger.Debug("terminal mode released")
}

// reportSetupFailure reports a failure to enable raw mode once per Editor.
func (e *Editor) reportSetupFailure(err error) {
	e.err = err
	if e.setupReported {
		return
	}
	e.setupReported = true
	e.logger.Warn("raw mode unavailable", "error", err, "degraded", e.allowDegraded)
	if e.allowDegraded {
		e.write(fmt.Sprintf("Warning: %v; line editing is limited%s", err, newline))
		return
	}
	e.write(fmt.Sprintf("Warning: %v%s", err, newline))
}
