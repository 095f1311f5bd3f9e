// =============================================================================
// main.go - MobileGL Code Manager Entry Point
// =============================================================================
//
// mgcm is an interactive tool for maintaining the MobileGL sources. It
// reads commands through a raw-mode line editor (with history and cursor
// movement) and generates C++ declarations and definitions for GL
// functions.
//
// Usage:
//
//	mgcm                          Start the REPL in the current directory
//	mgcm --root ~/src/MobileGL    Operate on another checkout
//	mgcm --editor readline        Use the readline backend
//	mgcm --help                   Show help
//
// =============================================================================

package main

import (
	"fmt"
	"os"

	"github.com/MobileGL-Dev/MobileGLCodeManager/codegen"
)

const (
	version = "0.1.0"

	appName = "MobileGL Code Manager"
)

func fullTitle() string {
	return fmt.Sprintf("%s v%s", appName, version)
}

func welcomeBanner() string {
	return titleStyle.Render(appName) + "\n" +
		"Type 'help' for available commands.\n" +
		"Type 'exit' or press Ctrl-D to quit.\n"
}

// arguments holds the parsed command-line options.
type arguments struct {
	editor string

	configPath string

	debugLog string

	root string

	showHelp bool

	showVersion bool
}

// parseArguments parses the command-line arguments (without the program
// name).
//
// GO CONCEPT: Manual Argument Parsing
// -----------------------------------
// The standard "flag" package does not accept GNU-style "--long" and "-h"
// aliases side by side without extra wiring. With only a handful of options
// a small loop over the slice is clearer: take the head, consume a value
// when the option needs one, and repeat.
func parseArguments(argv []string) (arguments, error) {
	var args arguments
	remaining := argv

	for len(remaining) > 0 {
		arg := remaining[0]
		remaining = remaining[1:]

		switch arg {
		case "--editor", "--config", "--debug-log", "--root":
			if len(remaining) == 0 {
				return args, fmt.Errorf("%s requires an argument", arg)
			}
			value := remaining[0]
			remaining = remaining[1:]

			switch arg {
			case "--editor":
				if !validEditorKind(value) {
					return args, fmt.Errorf("unknown editor '%s' (expected builtin, readline or basic)", value)
				}
				args.editor = value
			case "--config":
				args.configPath = value
			case "--debug-log":
				args.debugLog = value
			case "--root":
				args.root = value
			}

		case "--help", "-h":
			args.showHelp = true

		case "--version", "-v":
			args.showVersion = true

		default:
			return args, fmt.Errorf("unknown argument: %s", arg)
		}
	}

	return args, nil
}

func printUsage() {
	fmt.Fprint(stdout, `USAGE: mgcm [options]

OPTIONS:
  --editor <kind>     Line editor: builtin (default), readline or basic
  --config <path>     Configuration file (default: <root>/.mgcm.yaml)
  --debug-log <path>  Append debug logs to a file
  --root <dir>        MobileGL source root (default: current directory)
  --help, -h          Show this help
  --version, -v       Show version

EDITING:
  The builtin editor supports Left/Right to move the cursor, Backspace,
  Up/Down to browse the lines entered in this session, Ctrl-C to discard
  the current line and Ctrl-D (Ctrl-Z on Windows) to quit.

COMMANDS:
  help [command]                Show help
  impl <function> <component>   Implement a GL function in a component
  stub <function>               Mark a GL function as a stub
  exit                          Exit the program
`)
}

func printVersion() {
	fmt.Fprintln(stdout, fullTitle())
}

// run is main without the process exit, returning the exit status.
func run(argv []string) int {
	args, err := parseArguments(argv)
	if err != nil {
		printError(err.Error())
		printUsage()
		return 1
	}

	if args.showHelp {
		printUsage()
		return 0
	}
	if args.showVersion {
		printVersion()
		return 0
	}

	cfg, err := resolveSettings(args)
	if err != nil {
		printError(err.Error())
		return 1
	}

	logger, closeLog, err := openLogger(args.debugLog)
	if err != nil {
		printError(err.Error())
		return 1
	}
	defer closeLog()

	editor := NewLineEditor(cfg.editor, logger)
	defer editor.Close()
	logger.Debug("starting", "editor", editor.Kind(), "root", cfg.codegen.Root)

	fmt.Fprint(stdout, welcomeBanner())

	gen := codegen.New(cfg.codegen, stdout)
	newREPL(editor, cfg.prompt, gen, logger).run()
	return 0
}

func main() {
	os.Exit(run(os.Args[1:]))
}
