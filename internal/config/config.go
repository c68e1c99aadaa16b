// Package config handles loading and parsing of lookupsep configuration files.
package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/Masterminds/sprig/v3"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/NikitaCOEUR/lookupsep/internal/derrors"
	"github.com/NikitaCOEUR/lookupsep/internal/field"
	"github.com/NikitaCOEUR/lookupsep/internal/pair"
)

//go:embed defaults.yml
var defaultsYAML []byte

// SupportedConfigNames contains supported configuration file names (in order of preference)
var SupportedConfigNames = []string{
	".lookupsep.yml",
	".lookupsep.yaml",
	".lookupsep.toml",
	".lookupsep.json",
}

// APIConfig describes the remote records API
type APIConfig struct {
	BaseURL string        `koanf:"base_url"`
	Token   string        `koanf:"token"`
	Timeout time.Duration `koanf:"timeout"`
}

// Config represents a lookupsep field configuration
type Config struct {
	Separator      string    `koanf:"separator"`
	Side           string    `koanf:"side"`
	Editable       bool      `koanf:"editable"`
	MinQueryLength int       `koanf:"min_query_length"`
	LabelText      string    `koanf:"label_text"`
	ShowLabel      bool      `koanf:"show_label"`
	LabelFormat    string    `koanf:"label_format"`
	Value          string    `koanf:"value"`
	API            APIConfig `koanf:"api"`

	// Path is the file the config was loaded from, empty for defaults only
	Path string `koanf:"-"`
}

// Default returns the built-in configuration
func Default() *Config {
	cfg, err := load("")
	if err != nil {
		// defaults.yml is embedded; failing here is a build problem
		panic(err)
	}
	return cfg
}

// Load reads a configuration file on top of the defaults. An empty path
// returns the defaults.
func Load(path string) (*Config, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, derrors.NewConfigurationError(path, "config file not found", err)
		}
	}
	return load(path)
}

// LoadDir loads the config file found in dir, or the defaults when there is none
func LoadDir(dir string) (*Config, error) {
	return Load(FindConfigFile(dir))
}

func load(path string) (*Config, error) {
	cfg, err := read(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// read merges the file over the defaults without applying fallbacks
func read(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(rawbytes.Provider(defaultsYAML), yaml.Parser()); err != nil {
		return nil, derrors.NewConfigurationError("defaults.yml", "failed to load defaults", err)
	}

	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, derrors.NewConfigurationError(path, "failed to load config", err)
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, derrors.NewConfigurationError(path, "failed to unmarshal config", err)
	}
	cfg.Path = path
	return cfg, nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yml", ".yaml":
		return yaml.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	default:
		return nil, derrors.NewConfigurationError(path, fmt.Sprintf("unsupported config format: %s", ext), nil)
	}
}

// normalize applies the fallbacks for unusable values
func (c *Config) normalize() error {
	if c.Separator == "" {
		c.Separator = pair.DefaultSeparator
	}
	if c.MinQueryLength < 0 {
		c.MinQueryLength = 0
	}
	if c.API.Timeout <= 0 {
		c.API.Timeout = 10 * time.Second
	}
	if strings.TrimSpace(c.Side) == "" {
		c.Side = pair.Left.String()
	}
	side, err := pair.ParseSide(c.Side)
	if err != nil {
		return derrors.NewConfigurationError(c.Path, "invalid side", err)
	}
	c.Side = side.String()
	return nil
}

// ActiveSide returns the half shown by the field
func (c *Config) ActiveSide() pair.Side {
	side, _ := pair.ParseSide(c.Side)
	return side
}

// Label returns the label text for the active side rendered through
// LabelFormat. Label text without a separator is used whole.
func (c *Config) Label() string {
	text := c.LabelText
	if p, ok := pair.Parse(c.LabelText, c.Separator); ok {
		text = p.Get(c.ActiveSide())
	}
	return c.expandTemplate(c.LabelFormat, text)
}

// expandTemplate renders format with sprig functions. The raw text is
// returned if the template is invalid.
func (c *Config) expandTemplate(format, text string) string {
	if format == "" {
		return strings.TrimSpace(text)
	}

	tmpl, err := template.New("label").Funcs(sprig.TxtFuncMap()).Parse(format)
	if err != nil {
		return strings.TrimSpace(text)
	}

	data := map[string]string{
		"Text": text,
		"Full": c.LabelText,
		"Side": c.Side,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return strings.TrimSpace(text)
	}
	return buf.String()
}

// FieldOptions converts the configuration into the options of a field instance
func (c *Config) FieldOptions() field.Options {
	return field.Options{
		Side:           c.ActiveSide(),
		Separator:      c.Separator,
		MinQueryLength: c.MinQueryLength,
		Editable:       c.Editable,
		Label:          c.Label(),
		ShowLabel:      c.ShowLabel,
		Value:          c.Value,
	}
}

// FindConfigFile returns the first supported config file in dir, or "" if none exists
func FindConfigFile(dir string) string {
	for _, name := range SupportedConfigNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// SampleConfig returns a commented YAML configuration for `lookupsep init`
func SampleConfig() string {
	return `# lookupsep configuration
# Separator between the two parts of the stored value
separator: ","
# Half shown and edited by this field: left or right
side: left
editable: true
# Minimum query length before suggestions are requested
min_query_length: 1
label_text: "Company, Suffix"
show_label: true
# Go template with sprig functions, .Text is the active half of label_text
label_format: "({{ .Text | trim }})"
api:
  base_url: https://example.crm.dynamics.com
  # token: ""
  timeout: 10s
`
}
