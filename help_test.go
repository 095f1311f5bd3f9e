package main

import (
	"strings"
	"testing"
)

func TestHelpOverviewListsCommandsSorted(t *testing.T) {
	out, _ := captureOutput(t)
	r, _ := newTestREPL(t, t.TempDir())

	printHelp(r.commands, "")

	got := out.String()
	last := -1
	for _, name := range []string{"exit", "help", "impl", "stub"} {
		i := strings.Index(got, "  "+name)
		if i < 0 {
			t.Fatalf("overview missing %q:\n%s", name, got)
		}
		if i < last {
			t.Errorf("%q listed out of order:\n%s", name, got)
		}
		last = i
	}
}

func TestHelpTopics(t *testing.T) {
	r, _ := newTestREPL(t, t.TempDir())

	for name := range r.commands {
		t.Run(name, func(t *testing.T) {
			out, errOut := captureOutput(t)
			printHelp(r.commands, strings.ToUpper(name))
			if errOut.Len() != 0 {
				t.Errorf("stderr = %q", errOut.String())
			}
			if !strings.Contains(out.String(), name) {
				t.Errorf("help %s = %q", name, out.String())
			}
		})
	}
}

func TestHelpUnknownTopic(t *testing.T) {
	_, errOut := captureOutput(t)
	r, _ := newTestREPL(t, t.TempDir())

	printHelp(r.commands, "frobnicate")

	if !strings.Contains(errOut.String(), "No help for 'frobnicate'") {
		t.Errorf("stderr = %q", errOut.String())
	}
}
