// =============================================================================
// repl.go - Command Loop
// =============================================================================
//
// The REPL reads a line, splits it on whitespace, and dispatches the first
// token through the command table. Unknown names are reported and the loop
// continues. The loop ends when input ends or a command returns errExit.
//
// =============================================================================

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/MobileGL-Dev/MobileGLCodeManager/codegen"
)

// errExit is returned by a command handler to stop the REPL.
var errExit = errors.New("exit requested")

// lineReader is the part of LineEditor the REPL needs.
type lineReader interface {
	GetLine(prompt string) (string, bool)
}

// command is one entry of the command table. args includes the command
// name itself.
type command struct {
	usage   string
	summary string
	run     func(r *repl, args []string) error
}

// repl holds the state shared by command handlers.
type repl struct {
	input     lineReader
	prompt    string
	generator *codegen.Generator
	logger    *slog.Logger
	commands  map[string]command
}

func newREPL(input lineReader, prompt string, gen *codegen.Generator, logger *slog.Logger) *repl {
	r := &repl{
		input:     input,
		prompt:    prompt,
		generator: gen,
		logger:    logger,
	}
	r.commands = map[string]command{
		"help": {"help [command]", "Show help", cmdHelp},
		"exit": {"exit", "Exit the program", cmdExit},
		"impl": {"impl <function> <component>", "Implement a GL function in a component", cmdImplement},
		"stub": {"stub <function>", "Mark a GL function as a stub", cmdStub},
	}
	return r
}

// run executes the command loop until input ends or exit is requested.
func (r *repl) run() {
	for {
		line, ok := r.input.GetLine(r.prompt)
		if !ok {
			r.logger.Debug("input ended")
			return
		}

		if err := r.dispatch(line); errors.Is(err, errExit) {
			return
		}
	}
}

// dispatch executes one input line. Handler errors other than errExit are
// printed and swallowed.
func (r *repl) dispatch(line string) error {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return nil
	}

	name := tokens[0]
	cmd, ok := r.commands[name]
	if !ok {
		fmt.Fprintf(stdout, "Unknown command: %s\n", name)
		return nil
	}

	r.logger.Debug("dispatch", "command", name, "args", tokens[1:])
	err := cmd.run(r, tokens)
	if err != nil && !errors.Is(err, errExit) {
		printError(err.Error())
		return nil
	}
	return err
}

func cmdHelp(r *repl, args []string) error {
	topic := ""
	if len(args) > 1 {
		topic = args[1]
	}
	printHelp(r.commands, topic)
	return nil
}

func cmdExit(r *repl, args []string) error {
	fmt.Fprintln(stdout, "Exiting program...")
	return errExit
}

func cmdImplement(r *repl, args []string) error {
	if len(args) < 3 {
		fmt.Fprintln(stdout, "Usage: impl <function> <component>")
		return nil
	}
	function, component := args[1], args[2]

	fmt.Fprintf(stdout, "Implementing function: %s with component: %s\n", function, component)
	if err := r.generator.Implement(function, component); err != nil {
		return err
	}
	printSuccess(fmt.Sprintf("Successfully implemented function '%s' in component '%s'", function, component))
	return nil
}

func cmdStub(r *repl, args []string) error {
	if len(args) < 2 {
		fmt.Fprintln(stdout, "Usage: stub <function>")
		return nil
	}
	if err := r.generator.SetStub(args[1], true); err != nil {
		return err
	}
	printSuccess(fmt.Sprintf("Marked function '%s' as stub", args[1]))
	return nil
}
