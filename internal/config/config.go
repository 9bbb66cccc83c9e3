// Package config loads the .bva.yaml configuration file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/bva/internal/model"
)

// DefaultPath is the configuration file looked up when --config is not set.
const DefaultPath = ".bva.yaml"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the content of a .bva.yaml file.
type Config struct {
	Name string `yaml:"name"`
	// Types adds type names per language, e.g. {go: {"time.Duration": int}}.
	Types        map[m.Language]map[string]string `yaml:"types,omitempty"`
	IncludeLoops bool                             `yaml:"include_loops"`
	OnMalformed  string                           `yaml:"on_malformed"`
	Reports      string                           `yaml:"reports"`
	Parallel     int                              `yaml:"parallel"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Name:        "bva",
		OnMalformed: "fail",
		Reports:     ".bva-reports",
		Parallel:    1,
	}
}

// Load decodes the file at path over the defaults. A missing file yields the
// defaults.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultPath
	}

	cfg := Default()

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}

		return cfg, fmt.Errorf("failed to open config %s: %w", path, err)
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)

	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate checks enumerated fields and type aliases.
func (c Config) Validate() error {
	switch c.OnMalformed {
	case "fail", "skip":
	default:
		return fmt.Errorf("%w: on_malformed must be fail or skip, got %q", ErrInvalidConfig, c.OnMalformed)
	}

	if c.Parallel < 0 {
		return fmt.Errorf("%w: parallel must not be negative", ErrInvalidConfig)
	}

	for lang := range c.Types {
		if _, err := c.TypeAliases(lang); err != nil {
			return err
		}
	}

	return nil
}

// TypeAliases returns the configured extra type names for lang.
func (c Config) TypeAliases(lang m.Language) (map[string]m.PrimitiveType, error) {
	raw := c.Types[lang]
	aliases := make(map[string]m.PrimitiveType, len(raw))

	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		pt, ok := m.ParsePrimitiveType(raw[name])
		if !ok {
			return nil, fmt.Errorf("%w: %s type %q maps to unknown primitive %q", ErrInvalidConfig, lang, name, raw[name])
		}

		aliases[name] = pt
	}

	return aliases, nil
}

// AllTypeAliases returns TypeAliases for every configured language.
func (c Config) AllTypeAliases() (map[m.Language]map[string]m.PrimitiveType, error) {
	all := make(map[m.Language]map[string]m.PrimitiveType, len(c.Types))
	for lang := range c.Types {
		aliases, err := c.TypeAliases(lang)
		if err != nil {
			return nil, err
		}

		all[lang] = aliases
	}

	return all, nil
}

// Write stores cfg as YAML at path, creating or truncating the file.
func Write(path string, cfg Config) error {
	if path == "" {
		path = DefaultPath
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(data)

	return err
}
