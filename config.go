package tpf

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ColorMode selects when diagnostics are highlighted.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode parses a color mode name. The empty string is ColorAuto.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(s)); m {
	case "":
		return ColorAuto, nil
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	default:
		return "", fmt.Errorf("%w: color mode %q", ErrInvalidConfig, s)
	}
}

// Config describes a context: which built-in sets to register and which
// named conversions to bind to further specifiers.
//
//	standard: true
//	extended: false
//	specifiers:
//	  - spec: "B"
//	    conversion: binary
//	    flags: "#0-"
//	diagnostics:
//	  color: auto
type Config struct {
	Standard    bool            `yaml:"standard"`
	Extended    bool            `yaml:"extended"`
	Specifiers  []SpecifierSpec `yaml:"specifiers"`
	Diagnostics DiagnosticsSpec `yaml:"diagnostics"`
}

// SpecifierSpec binds a named conversion (see [Conversions]) to a specifier.
type SpecifierSpec struct {
	Spec       string `yaml:"spec"`
	Conversion string `yaml:"conversion"`
	Flags      string `yaml:"flags"`
}

// DiagnosticsSpec configures the reporter.
type DiagnosticsSpec struct {
	Color ColorMode `yaml:"color"`
}

// DefaultConfig returns the configuration used when none is given: the
// standard set only.
func DefaultConfig() Config {
	return Config{Standard: true, Diagnostics: DiagnosticsSpec{Color: ColorAuto}}
}

// LoadConfig decodes a YAML configuration. Fields absent from the document
// keep their [DefaultConfig] values.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile reads a YAML configuration from path.
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()
	return LoadConfig(f)
}

// Validate checks specifier bindings and the color mode.
func (cfg Config) Validate() error {
	if _, err := ParseColorMode(string(cfg.Diagnostics.Color)); err != nil {
		return err
	}
	convs := Conversions()
	for i, s := range cfg.Specifiers {
		if len(s.Spec) != 1 {
			return fmt.Errorf("%w: specifiers[%d]: spec %q must be a single byte", ErrInvalidConfig, i, s.Spec)
		}
		if _, ok := convs[s.Conversion]; !ok {
			return fmt.Errorf("%w: specifiers[%d]: unknown conversion %q", ErrInvalidConfig, i, s.Conversion)
		}
		if len(s.Flags) > MaxFlags {
			return fmt.Errorf("%w: specifiers[%d]: %w", ErrInvalidConfig, i, ErrTooManyFlags)
		}
	}
	return nil
}

// Context builds a context from the configuration.
func (cfg Config) Context() (*Context, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := NewContext()
	if cfg.Standard {
		if err := RegisterStandard(c); err != nil {
			return nil, err
		}
	}
	if cfg.Extended {
		if err := RegisterExtended(c); err != nil {
			return nil, err
		}
	}
	convs := Conversions()
	for i, s := range cfg.Specifiers {
		if err := c.Register(s.Spec[0], s.Flags, convs[s.Conversion]); err != nil {
			return nil, fmt.Errorf("%w: specifiers[%d]: %w", ErrInvalidConfig, i, err)
		}
	}
	return c, nil
}
