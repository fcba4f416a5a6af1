package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

type Config struct {
	Logger     Logger     `envPrefix:"LOGGER_"`
	HTTP       HTTP       `envPrefix:"HTTP_"`
	Components Components `envPrefix:"COMPONENTS_"`
}

func Parse() (*Config, error) {
	return ParseWithEnvironment(nil)
}

// ParseWithEnvironment reads the configuration from environ instead of the
// process environment when environ is not nil.
func ParseWithEnvironment(environ map[string]string) (*Config, error) {
	conf, err := env.ParseAsWithOptions[Config](env.Options{
		Prefix:      "HXUI_",
		Environment: environ,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &conf, nil
}
