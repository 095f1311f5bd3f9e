package codegen

import (
	"fmt"
	"io"
	"path"
	"path/filepath"
	"regexp"
	"strings"
)

// Default locations, relative to the project root.
const (
	DefaultImplDir         = "MobileGL/MG_Impl/GLImpl"
	DefaultDefinitionsFile = "MobileGL/MG_Impl/GLImpl/Exporting/Definitions.cpp"
	DefaultBuildFile       = "CMakeLists.txt"
)

// Declaration macro names.
const (
	macroHead     = "DECLARE_GL_FUNCTION_HEAD"
	macroStubHead = "DECLARE_GL_FUNCTION_STUB_HEAD"
	macroEnd      = "DECLARE_GL_FUNCTION_END"
	macroStubEnd  = "DECLARE_GL_FUNCTION_STUB_END"
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Config locates the files the Generator reads and writes. Relative paths
// are resolved against Root. ImplDir is also written into the build file,
// so it should use forward slashes.
type Config struct {
	Root            string
	ImplDir         string
	DefinitionsFile string
	BuildFile       string
}

// DefaultConfig returns the standard MobileGL layout rooted at the current
// directory.
func DefaultConfig() Config {
	return Config{
		Root:            ".",
		ImplDir:         DefaultImplDir,
		DefinitionsFile: DefaultDefinitionsFile,
		BuildFile:       DefaultBuildFile,
	}
}

// Generator implements GL functions in component source files.
type Generator struct {
	cfg Config
	out io.Writer
}

// New creates a Generator. Empty fields of cfg take their defaults.
// Progress and warnings are written to out.
func New(cfg Config, out io.Writer) *Generator {
	def := DefaultConfig()
	if cfg.Root == "" {
		cfg.Root = def.Root
	}
	if cfg.ImplDir == "" {
		cfg.ImplDir = def.ImplDir
	}
	if cfg.DefinitionsFile == "" {
		cfg.DefinitionsFile = def.DefinitionsFile
	}
	if cfg.BuildFile == "" {
		cfg.BuildFile = def.BuildFile
	}
	return &Generator{cfg: cfg, out: out}
}

// Config returns the effective configuration.
func (g *Generator) Config() Config {
	return g.cfg
}

func (g *Generator) path(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(g.cfg.Root, filepath.FromSlash(rel))
}

// Implement marks function as implemented in the definitions file and adds
// its declaration and an empty definition to the files of component.
func (g *Generator) Implement(function, component string) error {
	for _, name := range []string{function, component} {
		if !identifierPattern.MatchString(name) {
			return newInvalidNameError(name)
		}
	}

	defsPath := g.path(g.cfg.DefinitionsFile)
	if !isRegularFile(defsPath) {
		return fmt.Errorf("%w: '%s'", ErrDefinitionsMissing, defsPath)
	}

	if err := g.SetStub(function, false); err != nil {
		return err
	}
	return g.writeSourceAndHeader(function, component)
}

// SetStub switches the declaration macros of function between their stub
// and non-stub forms on every line that declares it. It fails without
// touching the file when no line declares function.
func (g *Generator) SetStub(function string, stub bool) error {
	defsPath := g.path(g.cfg.DefinitionsFile)
	content, err := readFile(defsPath)
	if err != nil {
		return err
	}

	fn := regexp.QuoteMeta(function)
	declaration := regexp.MustCompile(
		`DECLARE_GL_FUNCTION_(?:STUB_)?HEAD\([^)]*\b` + fn +
			`\b[^)]*\)\s*DECLARE_GL_FUNCTION_(?:STUB_)?(?:END|END_NO_RETURN)[^)]*\([^)]*\b` + fn + `\b[^)]*\)`)

	lines := splitLines(content)
	matched := 0
	for i, line := range lines {
		if !declaration.MatchString(line) {
			continue
		}
		matched++
		if stub {
			line = strings.Replace(line, macroHead, macroStubHead, 1)
			line = strings.Replace(line, macroEnd, macroStubEnd, 1)
		} else {
			line = strings.Replace(line, macroStubHead, macroHead, 1)
			line = strings.Replace(line, macroStubEnd, macroEnd, 1)
		}
		lines[i] = line
	}
	if matched == 0 {
		return newFunctionNotFoundError(function)
	}

	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return writeFile(defsPath, sb.String())
}

// componentSource returns the build-file entry of the component's source.
func (g *Generator) componentSource(component string) string {
	return path.Join(filepath.ToSlash(g.cfg.ImplDir), component, "GL_"+component+".cpp")
}

// EnsureSourceListed adds the component's source file to the build file
// unless it is already listed. A missing build file is reported as a
// warning and is not an error.
func (g *Generator) EnsureSourceListed(component string) error {
	buildPath := g.path(g.cfg.BuildFile)
	if !isRegularFile(buildPath) {
		fmt.Fprintf(g.out, "Warning: build file does not exist: %s\n", buildPath)
		return nil
	}

	content, err := readFile(buildPath)
	if err != nil {
		return err
	}

	source := g.componentSource(component)
	if strings.Contains(content, source) {
		return nil
	}

	updated, ok := insertAfterMarker(content, MarkerSourceList, source)
	if !ok {
		return newMarkerNotFoundError(buildPath)
	}
	if err := writeFile(buildPath, updated); err != nil {
		return err
	}

	fmt.Fprintf(g.out, "Added source to %s '%s'\n", filepath.Base(buildPath), source)
	return nil
}

// signature is a parsed DECLARE_GL_FUNCTION_HEAD(ret, name, params...).
type signature struct {
	returnType string
	name       string
	params     []string
}

func (s signature) prototype() string {
	return s.returnType + " " + s.name + "(" + strings.Join(s.params, ", ") + ")"
}

// findSignature returns the arguments of the first non-stub declaration
// macro that names function.
func (g *Generator) findSignature(function string) (signature, error) {
	content, err := readFile(g.path(g.cfg.DefinitionsFile))
	if err != nil {
		return signature{}, err
	}

	head := regexp.MustCompile(macroHead + `\(([^)]*\b` + regexp.QuoteMeta(function) + `\b[^)]*)\)`)
	var raw string
	for _, line := range splitLines(content) {
		if m := head.FindStringSubmatch(line); m != nil {
			raw = m[1]
			break
		}
	}
	if raw == "" {
		return signature{}, newFunctionNotFoundError(function)
	}

	parts := strings.Split(raw, ",")
	if len(parts) < 2 {
		return signature{}, newInvalidSignatureError(raw)
	}
	sig := signature{
		returnType: parts[0],
		name:       strings.TrimPrefix(parts[1], " "),
	}
	for _, p := range parts[2:] {
		sig.params = append(sig.params, strings.TrimPrefix(p, " "))
	}
	return sig, nil
}

func (g *Generator) writeSourceAndHeader(function, component string) error {
	prefix := g.path(path.Join(g.cfg.ImplDir, component, "GL_"+component))
	headerPath := prefix + ".h"
	sourcePath := prefix + ".cpp"

	header, err := g.loadOrInit(headerPath, headerTemplate)
	if err != nil {
		return err
	}
	source, err := g.loadOrInit(sourcePath,
		replaceFirstLine(sourceTemplate, `#include "GL_`+component+`.h"`))
	if err != nil {
		return err
	}

	if err := g.EnsureSourceListed(component); err != nil {
		return err
	}

	sig, err := g.findSignature(function)
	if err != nil {
		return err
	}

	header, ok := insertAfterMarker(header, MarkerDeclaration, sig.prototype()+";")
	if !ok {
		return newMarkerNotFoundError(headerPath)
	}

	indent := ""
	if pos := strings.Index(source, MarkerDefinition); pos >= 0 {
		indent = indentationAt(source, pos)
	}
	definition := strings.ReplaceAll(sig.prototype()+definitionBody, "\n", "\n"+indent)
	source, ok = insertAfterMarker(source, MarkerDefinition, definition)
	if !ok {
		return newMarkerNotFoundError(sourcePath)
	}

	if err := writeFile(headerPath, header); err != nil {
		return err
	}
	return writeFile(sourcePath, source)
}

// loadOrInit returns the content of path, creating the file first if
// needed. An empty file is initialized with initial.
func (g *Generator) loadOrInit(path, initial string) (string, error) {
	if err := ensureFile(path); err != nil {
		return "", err
	}
	content, err := readFile(path)
	if err != nil {
		return "", err
	}
	if content != "" {
		return content, nil
	}
	if err := writeFile(path, initial); err != nil {
		return "", err
	}
	return initial, nil
}
