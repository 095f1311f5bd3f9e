package lineedit

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Renderer repaints the prompt line.
//
// It never asks the terminal for its size. Instead it remembers how many
// columns the previous repaint used and blanks only the columns a shorter
// line leaves behind. Lines are assumed not to wrap.
type Renderer struct {
	out     io.Writer
	prevLen int
}

// NewRenderer creates a Renderer writing to out.
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// Redraw makes the terminal line show prompt followed by the buffer
// content, with the cursor at the buffer's cursor.
func (r *Renderer) Redraw(prompt string, b *Buffer) error {
	line := prompt + b.String()
	width := runewidth.StringWidth(prompt) + b.Len()

	var sb strings.Builder
	sb.WriteByte('\r')
	sb.WriteString(line)
	if width < r.prevLen {
		sb.WriteString(strings.Repeat(" ", r.prevLen-width))
		sb.WriteByte('\r')
		sb.WriteString(line)
	}
	sb.WriteString(strings.Repeat("\b", b.Len()-b.Cursor()))
	r.prevLen = width

	_, err := io.WriteString(r.out, sb.String())
	return err
}

// Reset forgets the previous rendering, for use after the cursor has moved
// to a fresh line.
func (r *Renderer) Reset() {
	r.prevLen = 0
}

// PreviousLength returns the number of columns painted by the last Redraw.
func (r *Renderer) PreviousLength() int {
	return r.prevLen
}
