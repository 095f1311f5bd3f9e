package main

import (
	"fmt"
	"os"
	"strings"
	"testing"
)

// pipeStdin replaces os.Stdin with the read end of a pipe and returns the
// write end.
func pipeStdin(t *testing.T) *os.File {
	t.Helper()
	oldStdin := os.Stdin
	reader, writer, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdin = reader
	t.Cleanup(func() {
		os.Stdin = oldStdin
		reader.Close()
		writer.Close()
	})
	return writer
}

func TestNewLineEditorNonInteractive(t *testing.T) {
	pipeStdin(t)

	for _, kind := range []string{editorBuiltin, editorReadline, editorBasic} {
		editor := NewLineEditor(kind, nil)
		if editor.Kind() != editorBasic {
			t.Errorf("NewLineEditor(%q) on a pipe uses %q, want basic", kind, editor.Kind())
		}
		editor.Close()
	}
}

func TestNewLineEditorAlwaysHasLogger(t *testing.T) {
	pipeStdin(t)

	editor := NewLineEditor(editorReadline, nil)
	defer editor.Close()

	if editor.logger == nil {
		t.Fatal("logger is nil, backend errors would panic instead of being logged")
	}
	editor.logger.Debug("logger usable")
}

func TestGetLineReadsFromPipe(t *testing.T) {
	out, _ := captureOutput(t)
	writer := pipeStdin(t)

	editor := NewLineEditor(editorBuiltin, nil)
	defer editor.Close()

	fmt.Fprint(writer, "first\nsecond\r\nthird\n")
	writer.Close()

	for _, expected := range []string{"first", "second", "third"} {
		line, ok := editor.GetLine("> ")
		if !ok {
			t.Fatalf("GetLine() ended early, want %q", expected)
		}
		if line != expected {
			t.Errorf("GetLine() = %q, want %q", line, expected)
		}
	}

	if _, ok := editor.GetLine("> "); ok {
		t.Error("GetLine() after exhaustion: ok = true, want false")
	}
	if got := strings.Count(out.String(), "> "); got != 4 {
		t.Errorf("prompt printed %d times, want 4", got)
	}
}

func TestValidEditorKind(t *testing.T) {
	for _, kind := range []string{"builtin", "readline", "basic"} {
		if !validEditorKind(kind) {
			t.Errorf("validEditorKind(%q) = false", kind)
		}
	}
	if validEditorKind("emacs") {
		t.Error(`validEditorKind("emacs") = true`)
	}
}
