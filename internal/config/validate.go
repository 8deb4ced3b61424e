package config

import "fmt"

var (
	validLevels  = []string{"trace", "debug", "info", "warn", "error"}
	validFormats = []string{"console", "json"}
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if !contains(validLevels, c.Logging.Level) {
		return fmt.Errorf("logging.level must be one of %v, got %q", validLevels, c.Logging.Level)
	}
	if !contains(validFormats, c.Logging.Format) {
		return fmt.Errorf("logging.format must be one of %v, got %q", validFormats, c.Logging.Format)
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
