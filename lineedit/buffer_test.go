package lineedit

import "testing"

func insertAll(b *Buffer, s string) {
	for i := 0; i < len(s); i++ {
		b.Insert(s[i])
	}
}

func TestBufferInsertAppends(t *testing.T) {
	b := NewBuffer()
	insertAll(b, "impl")
	if b.String() != "impl" {
		t.Errorf("String() = %q, want %q", b.String(), "impl")
	}
	if b.Cursor() != 4 {
		t.Errorf("Cursor() = %d, want 4", b.Cursor())
	}
}

func TestBufferInsertAtCursor(t *testing.T) {
	b := NewBuffer()
	insertAll(b, "impl")
	b.MoveLeft()
	b.MoveLeft()
	b.Insert('x')
	if b.String() != "imxpl" {
		t.Errorf("String() = %q, want %q", b.String(), "imxpl")
	}
	if b.Cursor() != 3 {
		t.Errorf("Cursor() = %d, want 3", b.Cursor())
	}
}

func TestBufferInsertAtStart(t *testing.T) {
	b := NewBuffer()
	insertAll(b, "bc")
	b.MoveLeft()
	b.MoveLeft()
	b.Insert('a')
	if b.String() != "abc" || b.Cursor() != 1 {
		t.Errorf("got %q cursor %d, want %q cursor 1", b.String(), b.Cursor(), "abc")
	}
}

func TestBufferDeleteBeforeCursor(t *testing.T) {
	b := NewBuffer()
	insertAll(b, "abc")
	b.MoveLeft()
	if !b.DeleteBeforeCursor() {
		t.Fatal("DeleteBeforeCursor() = false, want true")
	}
	if b.String() != "ac" || b.Cursor() != 1 {
		t.Errorf("got %q cursor %d, want %q cursor 1", b.String(), b.Cursor(), "ac")
	}
}

func TestBufferDeleteAtStartIsNoOp(t *testing.T) {
	b := NewBuffer()
	insertAll(b, "abc")
	for b.MoveLeft() {
	}
	if b.DeleteBeforeCursor() {
		t.Error("DeleteBeforeCursor() at 0 = true, want false")
	}
	if b.String() != "abc" || b.Cursor() != 0 {
		t.Errorf("got %q cursor %d, want unchanged %q cursor 0", b.String(), b.Cursor(), "abc")
	}

	empty := NewBuffer()
	if empty.DeleteBeforeCursor() {
		t.Error("DeleteBeforeCursor() on empty buffer = true, want false")
	}
}

func TestBufferMovesAreClamped(t *testing.T) {
	b := NewBuffer()
	insertAll(b, "ab")

	if b.MoveRight() {
		t.Error("MoveRight() at end = true, want false")
	}
	for i := 0; i < 5; i++ {
		b.MoveLeft()
		if b.Cursor() < 0 || b.Cursor() > b.Len() {
			t.Fatalf("cursor %d out of [0, %d]", b.Cursor(), b.Len())
		}
	}
	if b.Cursor() != 0 {
		t.Errorf("Cursor() = %d, want 0", b.Cursor())
	}
	for i := 0; i < 5; i++ {
		b.MoveRight()
		if b.Cursor() < 0 || b.Cursor() > b.Len() {
			t.Fatalf("cursor %d out of [0, %d]", b.Cursor(), b.Len())
		}
	}
	if b.Cursor() != 2 {
		t.Errorf("Cursor() = %d, want 2", b.Cursor())
	}
}

func TestBufferReplaceWithSnapsCursorToEnd(t *testing.T) {
	b := NewBuffer()
	insertAll(b, "something long")
	b.MoveLeft()
	b.ReplaceWith("exit")
	if b.String() != "exit" || b.Cursor() != 4 {
		t.Errorf("got %q cursor %d, want %q cursor 4", b.String(), b.Cursor(), "exit")
	}
}

func TestBufferReplaceDoesNotAlias(t *testing.T) {
	b := NewBuffer()
	b.ReplaceWith("help")
	b.Insert('!')
	b.ReplaceWith("he")
	if b.String() != "he" {
		t.Errorf("String() = %q, want %q", b.String(), "he")
	}
}

func TestBufferClear(t *testing.T) {
	b := NewBuffer()
	insertAll(b, "abc")
	b.MoveLeft()
	b.Clear()
	if b.String() != "" || b.Cursor() != 0 || b.Len() != 0 {
		t.Errorf("got %q cursor %d, want empty buffer", b.String(), b.Cursor())
	}
}
