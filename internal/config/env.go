package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv overlays cfg with environment variables. A nil environ means the
// process environment. Unset variables leave fields untouched.
func parseEnv(cfg *Config, environ map[string]string) error {
	var err error
	if environ == nil {
		err = env.Parse(cfg)
	} else {
		err = env.ParseWithOptions(cfg, env.Options{Environment: environ})
	}
	if err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
