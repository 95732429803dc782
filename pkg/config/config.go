package config

import (
	"fmt"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"github.com/arthur-debert/wasixfixture/pkg/errors"
	"github.com/arthur-debert/wasixfixture/pkg/fixture"
)

// Config holds harness settings
type Config struct {
	// Program is the CLI run by fixture invocations
	Program string `koanf:"program" validate:"required"`

	// BuildRoot replaces the executable-derived build root when set
	BuildRoot string `koanf:"build_root" validate:"omitempty,abspath"`

	// Verbosity is passed to logging.SetupLogger
	Verbosity int `koanf:"verbosity" validate:"gte=0,lte=3"`
}

var validate = mustValidator()

func newValidator() (*validator.Validate, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	err := v.RegisterValidation("abspath", func(fl validator.FieldLevel) bool {
		return filepath.IsAbs(fl.Field().String())
	})
	if err != nil {
		return nil, fmt.Errorf("registering abspath validation: %w", err)
	}
	return v, nil
}

func mustValidator() *validator.Validate {
	v, err := newValidator()
	if err != nil {
		panic(err)
	}
	return v
}

// Validate checks the settings
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, errors.ErrConfigInvalid, "invalid configuration")
	}
	return nil
}

// FixtureOptions maps the settings onto fixture options
func (c *Config) FixtureOptions() []fixture.Option {
	opts := []fixture.Option{fixture.WithProgram(c.Program)}
	if c.BuildRoot != "" {
		opts = append(opts, fixture.WithBuildRoot(c.BuildRoot))
	}
	return opts
}
