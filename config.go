// =============================================================================
// config.go - Configuration File
// =============================================================================
//
// The code manager reads an optional YAML file (default: .mgcm.yaml in the
// project root). Every key is optional; command-line flags override the
// file. Example:
//
//	prompt: "mgcm> "
//	editor: readline
//	paths:
//	  impl_dir: MobileGL/MG_Impl/GLImpl
//	  definitions: MobileGL/MG_Impl/GLImpl/Exporting/Definitions.cpp
//	  build_file: CMakeLists.txt
//
// =============================================================================

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MobileGL-Dev/MobileGLCodeManager/codegen"
	"gopkg.in/yaml.v3"
)

const (
	// configFileName is looked up in the project root when --config is not
	// given.
	configFileName = ".mgcm.yaml"

	defaultPrompt = ">>> "
)

// GO CONCEPT: Struct Tags
// -----------------------
// The backtick strings after each field are struct tags. yaml.v3 reads the
// "yaml" tag to map YAML keys onto fields, so the Go field ImplDir is filled
// from the key impl_dir. Fields without a matching key keep their zero
// value, which is how "not set in the file" is represented here.
type fileConfig struct {
	Prompt string      `yaml:"prompt"`
	Editor string      `yaml:"editor"`
	Paths  pathsConfig `yaml:"paths"`
}

type pathsConfig struct {
	ImplDir     string `yaml:"impl_dir"`
	Definitions string `yaml:"definitions"`
	BuildFile   string `yaml:"build_file"`
}

// loadConfig reads the configuration file at path. When explicit is false a
// missing file is not an error and yields an empty configuration.
func loadConfig(path string, explicit bool) (fileConfig, error) {
	var cfg fileConfig

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("cannot read config %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}

	if cfg.Editor != "" && !validEditorKind(cfg.Editor) {
		return cfg, fmt.Errorf("invalid config %s: unknown editor %q", path, cfg.Editor)
	}
	return cfg, nil
}

// settings is the effective configuration after merging flags over the
// configuration file.
type settings struct {
	prompt  string
	editor  string
	codegen codegen.Config
}

// resolveSettings loads the configuration file named by args (or the
// default one in the root directory) and applies the flags on top of it.
func resolveSettings(args arguments) (settings, error) {
	root := args.root
	if root == "" {
		root = "."
	}

	path, explicit := args.configPath, true
	if path == "" {
		path, explicit = filepath.Join(root, configFileName), false
	}

	cfg, err := loadConfig(path, explicit)
	if err != nil {
		return settings{}, err
	}

	s := settings{
		prompt: cfg.Prompt,
		editor: cfg.Editor,
		codegen: codegen.Config{
			Root:            root,
			ImplDir:         cfg.Paths.ImplDir,
			DefinitionsFile: cfg.Paths.Definitions,
			BuildFile:       cfg.Paths.BuildFile,
		},
	}
	if s.prompt == "" {
		s.prompt = defaultPrompt
	}
	if args.editor != "" {
		s.editor = args.editor
	}
	if s.editor == "" {
		s.editor = editorBuiltin
	}
	return s, nil
}
