package codegen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ensureFile creates path, and its parent directories, as an empty file if
// it does not exist yet.
func ensureFile(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directories %s: %w", dir, err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", path, err)
	}
	return f.Close()
}

// isRegularFile reports whether path exists and is a regular file.
func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("cannot open file %s: %w", path, err)
	}
	return string(data), nil
}

func writeFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("cannot write to file %s: %w", path, err)
	}
	return nil
}

// splitLines splits content into lines without their terminators. A
// trailing newline does not produce an empty last line.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(content, "\n"), "\n")
}

// insertAfterMarker inserts text on a new line after marker, indented like
// the marker. It reports false if content has no marker.
func insertAfterMarker(content, marker, text string) (string, bool) {
	pos := strings.Index(content, marker)
	if pos < 0 {
		return content, false
	}
	indent := indentationAt(content, pos)
	end := pos + len(marker)
	return content[:end] + "\n" + indent + text + content[end:], true
}

// indentationAt returns the text between the start of the line containing
// pos and pos itself.
func indentationAt(content string, pos int) string {
	lineStart := strings.LastIndexByte(content[:pos], '\n') + 1
	return content[lineStart:pos]
}

// replaceFirstLine replaces the first line of content with line.
func replaceFirstLine(content, line string) string {
	if i := strings.IndexByte(content, '\n'); i >= 0 {
		return line + content[i:]
	}
	return line
}
