// Package config loads the optional mermaidlink configuration file.
//
// A config file overrides the rendering endpoint, the report path and the
// list of diagrams. Both TOML and YAML are accepted, chosen by extension:
//
//	# mermaidlink.toml
//	base_url = "https://mermaid.ink/img/"
//	output   = "docs/diagram_urls.txt"
//
//	[[diagrams]]
//	label = "Sequence"
//	path  = "docs/request-flow.mmd"
//
// Fields left empty fall back to their `default` tag. An empty diagram list
// means the built-in sequence and ER diagrams.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/creasty/defaults"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/mermaidlink/pkg/errors"
)

const (
	// DefaultBaseURL is the mermaid.ink image endpoint.
	DefaultBaseURL = "https://mermaid.ink/img/"

	// DefaultOutput is the report file written by generate.
	DefaultOutput = "diagram_urls.txt"
)

// Config is the file-level configuration.
type Config struct {
	BaseURL  string          `toml:"base_url" yaml:"base_url" default:"https://mermaid.ink/img/"`
	Output   string          `toml:"output" yaml:"output" default:"diagram_urls.txt"`
	Diagrams []DiagramSource `toml:"diagrams" yaml:"diagrams"`

	// File is the absolute path the config was loaded from, empty for defaults.
	File string `toml:"-" yaml:"-"`
}

// DiagramSource points at a Mermaid definition on disk.
type DiagramSource struct {
	Label string `toml:"label" yaml:"label"`
	Path  string `toml:"path" yaml:"path"`
}

// Default returns a Config with every default applied.
func Default() *Config {
	c := new(Config)
	// Tags are static; Set can only fail on malformed tags.
	_ = defaults.Set(c)
	return c
}

// Load reads the config at path. The format is chosen by extension:
// .toml, or .yaml / .yml.
func Load(path string) (*Config, error) {
	realpath, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "resolve %s", path)
	}

	c := new(Config)
	c.File = realpath
	if err := defaults.Set(c); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "set default config")
	}

	data, err := os.ReadFile(realpath)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	switch ext := strings.ToLower(filepath.Ext(realpath)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), c); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, c); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unsupported config format %q (want .toml, .yaml or .yml)", ext)
	}

	// Explicit empty strings in the file are zero values; fill them again.
	if err := defaults.Set(c); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "re-set default config")
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	c.resolvePaths()
	return c, nil
}

// Validate checks that every diagram entry is usable.
func (c *Config) Validate() error {
	seen := make(map[string]bool, len(c.Diagrams))
	for i, d := range c.Diagrams {
		if d.Label == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "diagrams[%d]: label is required", i)
		}
		if d.Path == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "diagrams[%d] (%s): path is required", i, d.Label)
		}
		if seen[d.Label] {
			return errors.New(errors.ErrCodeInvalidConfig, "diagrams[%d]: duplicate label %q", i, d.Label)
		}
		seen[d.Label] = true
	}
	return nil
}

// resolvePaths makes relative diagram paths relative to the config file.
func (c *Config) resolvePaths() {
	if c.File == "" {
		return
	}
	dir := filepath.Dir(c.File)
	for i, d := range c.Diagrams {
		if !filepath.IsAbs(d.Path) {
			c.Diagrams[i].Path = filepath.Join(dir, d.Path)
		}
	}
}
