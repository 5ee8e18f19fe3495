package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/linkaudit/pkg/linkaudit"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// RulesConfig overrides parts of linkaudit.DefaultRules. Empty fields keep the default.
type RulesConfig struct {
	PrimaryField     string                      `yaml:"primary_field,omitempty"`
	SecondaryField   string                      `yaml:"secondary_field,omitempty"`
	ForbiddenDomains []linkaudit.ForbiddenDomain `yaml:"forbidden_domains,omitempty"`
	Separator        string                      `yaml:"separator,omitempty"`
	ClosingBrace     string                      `yaml:"closing_brace,omitempty"`
}

type ProjectConfig struct {
	Path   string      `yaml:"path,omitempty"`
	Mode   string      `yaml:"mode,omitempty"`
	Format string      `yaml:"format,omitempty"`
	Color  string      `yaml:"color,omitempty"`
	Rules  RulesConfig `yaml:"rules,omitempty"`

	// BaseDir is the directory of the loaded file; a relative Path is resolved against it.
	BaseDir string `yaml:"-"`
}

const ConfigFileName = linkaudit.ConfigFileName

// Load reads ConfigFileName from dir.
func Load(dir string) (*ProjectConfig, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads a config file. Unknown keys are rejected so that typos do
// not silently fall back to defaults.
func LoadFile(configPath string) (*ProjectConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: %w: %w", configPath, linkaudit.ErrInvalidConfig, err)
	}
	cfg.BaseDir = filepath.Dir(configPath)
	return &cfg, nil
}

// DataPath returns Path, resolved against BaseDir when relative.
// Returns an empty string when no path is configured.
func (c *ProjectConfig) DataPath() string {
	if c == nil || c.Path == "" {
		return ""
	}
	if filepath.IsAbs(c.Path) || c.BaseDir == "" {
		return c.Path
	}
	return filepath.Join(c.BaseDir, c.Path)
}

// ApplyRules overlays the configured rules onto base.
func (c *ProjectConfig) ApplyRules(base linkaudit.Rules) linkaudit.Rules {
	if c == nil {
		return base
	}
	r := c.Rules
	if r.PrimaryField != "" {
		base.PrimaryField = r.PrimaryField
	}
	if r.SecondaryField != "" {
		base.SecondaryField = r.SecondaryField
	}
	if len(r.ForbiddenDomains) > 0 {
		base.ForbiddenDomains = append([]linkaudit.ForbiddenDomain(nil), r.ForbiddenDomains...)
	}
	if r.Separator != "" {
		base.Separator = r.Separator
	}
	if r.ClosingBrace != "" {
		base.ClosingBrace = r.ClosingBrace
	}
	return base
}
