package lineedit

// Buffer is the line being edited: its characters and a cursor offset.
//
// The cursor is an insertion position, always within [0, Len()]. No method
// moves it outside that range.
type Buffer struct {
	content []byte
	cursor  int
}

// NewBuffer returns an empty Buffer with the cursor at 0.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Insert puts c at the cursor and advances the cursor past it.
func (b *Buffer) Insert(c byte) {
	b.content = append(b.content, 0)
	copy(b.content[b.cursor+1:], b.content[b.cursor:])
	b.content[b.cursor] = c
	b.cursor++
}

// DeleteBeforeCursor removes the character left of the cursor. It reports
// false, changing nothing, when the cursor is at the start.
func (b *Buffer) DeleteBeforeCursor() bool {
	if b.cursor == 0 {
		return false
	}
	b.content = append(b.content[:b.cursor-1], b.content[b.cursor:]...)
	b.cursor--
	return true
}

// MoveLeft moves the cursor one position left, if possible.
func (b *Buffer) MoveLeft() bool {
	if b.cursor == 0 {
		return false
	}
	b.cursor--
	return true
}

// MoveRight moves the cursor one position right, if possible.
func (b *Buffer) MoveRight() bool {
	if b.cursor == len(b.content) {
		return false
	}
	b.cursor++
	return true
}

// ReplaceWith sets the content to text and puts the cursor at its end.
func (b *Buffer) ReplaceWith(text string) {
	b.content = append(b.content[:0], text...)
	b.cursor = len(b.content)
}

// Clear empties the buffer.
func (b *Buffer) Clear() {
	b.content = b.content[:0]
	b.cursor = 0
}

// String returns the content.
func (b *Buffer) String() string {
	return string(b.content)
}

// Len returns the number of characters in the buffer.
func (b *Buffer) Len() int {
	return len(b.content)
}

// Cursor returns the cursor offset.
func (b *Buffer) Cursor() int {
	return b.cursor
}
