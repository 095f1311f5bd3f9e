// =============================================================================
// help.go - Help System
// =============================================================================
//
//   - "help"           lists every registered command
//   - "help <command>" shows usage and details for one command
//
// =============================================================================

package main

import (
	"fmt"
	"sort"
	"strings"
)

// commandHelp holds detailed help keyed by command name.
var commandHelp = map[string]string{
	"help": `  help [command]
    List the available commands, or show details for one command.`,

	"exit": `  exit
    Leave the code manager. Ctrl-D on an empty prompt does the same.`,

	"impl": `  impl <function> <component>
    Implement a GL function in a component:
      - switch its declaration in the definitions file from the
        STUB macros to the regular macros
      - create GL_<component>.h and GL_<component>.cpp if needed
      - list GL_<component>.cpp in the build file
      - add the declaration to the header and an empty definition
        to the source file
    Example:
      impl glClear Framebuffer`,

	"stub": `  stub <function>
    Switch the declaration of a GL function in the definitions file
    back to the STUB macros. Generated code is left untouched.
    Example:
      stub glClear`,
}

// printHelp lists all commands when topic is empty, otherwise prints the
// detailed help for topic.
func printHelp(commands map[string]command, topic string) {
	if topic == "" {
		printHelpOverview(commands)
		return
	}

	if text, ok := commandHelp[strings.ToLower(topic)]; ok {
		fmt.Fprintln(stdout, text)
		return
	}

	printError(fmt.Sprintf("No help for '%s'. Type help to see available commands.", topic))
}

// GO CONCEPT: Sorted Map Keys
// ---------------------------
// Map iteration order in Go is deliberately randomized. To print a stable
// listing the keys are collected into a slice and sorted first.
func printHelpOverview(commands map[string]command) {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(stdout, "Available commands:")
	for _, name := range names {
		fmt.Fprintf(stdout, "  %-28s %s\n", commands[name].usage, commands[name].summary)
	}
}
