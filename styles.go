// =============================================================================
// styles.go - Output Writers and Text Styles
// =============================================================================
//
// All user-facing output goes through the stdout/stderr writers declared
// here. They are wrapped with go-colorable so that ANSI styling produced by
// lipgloss also renders on legacy Windows consoles. Tests replace the
// writers with buffers.
//
// =============================================================================

package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-colorable"
)

// GO CONCEPT: Package-Level Writers
// ---------------------------------
// Declaring the output destinations as io.Writer variables (rather than
// calling fmt.Println directly) lets tests swap in a bytes.Buffer. Any type
// with a Write([]byte) (int, error) method satisfies io.Writer, so a file,
// a buffer and a colorable console wrapper are interchangeable.
var (
	stdout io.Writer = colorable.NewColorableStdout()
	stderr io.Writer = colorable.NewColorableStderr()
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// printError writes "Error: <message>" to stderr.
func printError(message string) {
	fmt.Fprintln(stderr, errorStyle.Render("Error: "+message))
}

// printWarning writes "Warning: <message>" to stderr.
func printWarning(message string) {
	fmt.Fprintln(stderr, warningStyle.Render("Warning: "+message))
}

func printSuccess(message string) {
	fmt.Fprintln(stdout, successStyle.Render(message))
}
