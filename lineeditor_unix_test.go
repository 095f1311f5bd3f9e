//go:build !windows

package main

import (
	"os"
	"testing"

	"github.com/creack/pty"
)

func TestIsInteractive(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("cannot open pty for testing: %v", err)
	}
	defer ptmx.Close()
	defer tty.Close()

	reader, writer, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	defer reader.Close()
	defer writer.Close()

	tests := []struct {
		name string
		in   *os.File
		out  *os.File
		want bool
	}{
		{"terminal in and out", tty, tty, true},
		{"output redirected", tty, writer, false},
		{"input redirected", reader, tty, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isInteractive(tt.in, tt.out); got != tt.want {
				t.Errorf("isInteractive() = %v, want %v", got, tt.want)
			}
		})
	}
}
