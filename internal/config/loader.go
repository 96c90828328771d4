// Package config loads the command line configuration from the environment.
package config

import (
	"errors"
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// ErrUnknownDriver is returned when RECSTORE_DRIVER names no known driver.
var ErrUnknownDriver = errors.New("unknown driver")

func Init() (*Config, error) {
	cfg := &Config{}

	err := envconfig.Process("", cfg)
	if err != nil {
		return nil, fmt.Errorf("unable to parse configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the values envconfig cannot.
func (c *Config) Validate() error {
	switch c.App.Driver {
	case DriverDummy, DriverEtcd, DriverTarantool:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDriver, c.App.Driver)
	}
}
