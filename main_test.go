package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// captureOutput redirects stdout and stderr to buffers for the duration of
// the test.
func captureOutput(t *testing.T) (out, errOut *bytes.Buffer) {
	t.Helper()
	oldOut, oldErr := stdout, stderr
	out, errOut = &bytes.Buffer{}, &bytes.Buffer{}
	stdout, stderr = out, errOut
	t.Cleanup(func() { stdout, stderr = oldOut, oldErr })
	return out, errOut
}

func TestFullTitle(t *testing.T) {
	got := fullTitle()
	expected := "MobileGL Code Manager v" + version
	if got != expected {
		t.Errorf("fullTitle() = %q, want %q", got, expected)
	}
}

func TestWelcomeBanner(t *testing.T) {
	banner := welcomeBanner()

	checks := []struct {
		name     string
		contains string
	}{
		{"app name", appName},
		{"help hint", "'help'"},
		{"exit hint", "'exit'"},
	}

	for _, tc := range checks {
		t.Run(tc.name, func(t *testing.T) {
			if !strings.Contains(banner, tc.contains) {
				t.Errorf("welcomeBanner() missing %q:\n%s", tc.contains, banner)
			}
		})
	}

	if !strings.HasSuffix(banner, "\n") {
		t.Error("welcomeBanner() should end with a newline")
	}
}

func TestParseArguments(t *testing.T) {
	tests := []struct {
		name string
		argv []string
		want arguments
	}{
		{"defaults", nil, arguments{}},
		{"editor", []string{"--editor", "readline"}, arguments{editor: "readline"}},
		{"config", []string{"--config", "my.yaml"}, arguments{configPath: "my.yaml"}},
		{"debug log", []string{"--debug-log", "/tmp/mgcm.log"}, arguments{debugLog: "/tmp/mgcm.log"}},
		{"root", []string{"--root", "/src/MobileGL"}, arguments{root: "/src/MobileGL"}},
		{"help long", []string{"--help"}, arguments{showHelp: true}},
		{"help short", []string{"-h"}, arguments{showHelp: true}},
		{"version long", []string{"--version"}, arguments{showVersion: true}},
		{"version short", []string{"-v"}, arguments{showVersion: true}},
		{
			"combined",
			[]string{"--root", "r", "--editor", "basic", "-v"},
			arguments{root: "r", editor: "basic", showVersion: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseArguments(tt.argv)
			if err != nil {
				t.Fatalf("parseArguments(%q) error: %v", tt.argv, err)
			}
			if diff := cmp.Diff(tt.want, got, cmp.AllowUnexported(arguments{})); diff != "" {
				t.Errorf("parseArguments(%q) mismatch (-want +got):\n%s", tt.argv, diff)
			}
		})
	}
}

func TestParseArgumentsErrors(t *testing.T) {
	tests := []struct {
		name    string
		argv    []string
		wantErr string
	}{
		{"unknown flag", []string{"--bogus"}, "unknown argument: --bogus"},
		{"missing value", []string{"--root"}, "--root requires an argument"},
		{"bad editor", []string{"--editor", "vi"}, "unknown editor 'vi'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseArguments(tt.argv)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("parseArguments(%q) error = %v, want containing %q", tt.argv, err, tt.wantErr)
			}
		})
	}
}

func TestRunHelpAndVersion(t *testing.T) {
	out, _ := captureOutput(t)

	if code := run([]string{"--version"}); code != 0 {
		t.Errorf("run(--version) = %d, want 0", code)
	}
	if !strings.Contains(out.String(), fullTitle()) {
		t.Errorf("version output = %q", out.String())
	}

	out.Reset()
	if code := run([]string{"--help"}); code != 0 {
		t.Errorf("run(--help) = %d, want 0", code)
	}
	if !strings.Contains(out.String(), "USAGE: mgcm") {
		t.Errorf("help output = %q", out.String())
	}
}

func TestRunBadArgument(t *testing.T) {
	out, errOut := captureOutput(t)

	if code := run([]string{"--bogus"}); code != 1 {
		t.Errorf("run(--bogus) = %d, want 1", code)
	}
	if !strings.Contains(errOut.String(), "Error: unknown argument: --bogus") {
		t.Errorf("stderr = %q", errOut.String())
	}
	if !strings.Contains(out.String(), "USAGE:") {
		t.Errorf("stdout should contain usage, got %q", out.String())
	}
}
