package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/recruitkit/internal/flagx"
)

// parseJson overlays cfg with the JSON file named by -c/-config, if any.
// Keys missing from the file leave the current values untouched.
func parseJson(cfg *Config, args []string) error {
	path := flagx.JsonConfigFlags(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}
