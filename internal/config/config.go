// Package config loads generator settings from protofield.yaml, fills in
// defaults and validates the result.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"dario.cat/mergo"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"protofield-generator/internal/attr"
	"protofield-generator/internal/gen"
	"protofield-generator/internal/logger"
	"protofield-generator/internal/plan"
)

// DefaultFile is the configuration file looked up when no path is given.
const DefaultFile = "protofield.yaml"

// Config holds every generator setting.
type Config struct {
	// Packages are the package patterns to generate for.
	Packages []string `yaml:"packages" validate:"dive,required"`
	// TagKey is the struct tag key holding field annotations.
	TagKey string `yaml:"tag_key" validate:"required,tagkey"`
	// Suffix replaces ".go" in source file names to name generated files.
	Suffix string `yaml:"suffix" validate:"required,ne=.go,endswith=.go,excludes=/"`
	// RuntimeImport is the import path of the runtime encoding package.
	RuntimeImport string `yaml:"runtime_import" validate:"required"`
	// Include and Exclude filter message type names by glob pattern.
	Include []string `yaml:"include" validate:"dive,glob"`
	Exclude []string `yaml:"exclude" validate:"dive,glob"`
	// Log configures logging.
	Log LogConfig `yaml:"log"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	JSON  bool   `yaml:"json"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		TagKey:        attr.DefaultKey,
		Suffix:        gen.DefaultSuffix,
		RuntimeImport: gen.DefaultRuntimeImport,
		Log: LogConfig{
			Level: string(logger.InfoLevel),
		},
	}
}

// Load reads the configuration file at path and fills in defaults. An empty
// path reads DefaultFile if it exists and falls back to the defaults
// otherwise.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	f, err := os.Open(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}

		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Decode reads a YAML configuration and fills in defaults. Unknown keys are
// rejected.
func Decode(r io.Reader) (*Config, error) {
	cfg := &Config{}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode YAML config: %w", err)
	}

	if err := mergo.Merge(cfg, Default()); err != nil {
		return nil, fmt.Errorf("failed to apply defaults: %w", err)
	}

	return cfg, nil
}

// Merge overrides c with every non-empty setting of other.
func (c *Config) Merge(other *Config) error {
	return mergo.Merge(c, other, mergo.WithOverride)
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if err := newValidator().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s: failed %q check", fe.Namespace(), fe.Tag()))
			}

			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}

		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Registration only fails for empty tags or nil functions.
	_ = v.RegisterValidation("glob", func(fl validator.FieldLevel) bool {
		return doublestar.ValidatePattern(fl.Field().String())
	})
	_ = v.RegisterValidation("tagkey", func(fl validator.FieldLevel) bool {
		return !strings.ContainsAny(fl.Field().String(), " \t\":`")
	})

	return v
}

// PlanConfig returns the settings of the resolution pipeline.
func (c *Config) PlanConfig() plan.Config {
	return plan.Config{
		TagKey:  c.TagKey,
		Include: c.Include,
		Exclude: c.Exclude,
	}
}

// GeneratorConfig returns the settings of code generation.
func (c *Config) GeneratorConfig() gen.GeneratorConfig {
	cfg := gen.DefaultGeneratorConfig()
	cfg.Suffix = c.Suffix
	cfg.RuntimeImport = c.RuntimeImport

	return cfg
}

// LoggerConfig returns the logger settings.
func (c *Config) LoggerConfig() *logger.Config {
	cfg := logger.DefaultConfig()
	cfg.Level = logger.LogLevel(c.Log.Level)
	cfg.JSON = c.Log.JSON

	return cfg
}
