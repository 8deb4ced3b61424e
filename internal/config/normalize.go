package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

func (c *Config) normalize() error {
	c.applyEnv()
	c.normalizeLogging()
	var err error
	if c.Logging.Dir, err = expandPath(strings.TrimSpace(c.Logging.Dir)); err != nil {
		return fmt.Errorf("logging.dir: %w", err)
	}
	return nil
}

func (c *Config) applyEnv() {
	if value, ok := os.LookupEnv(envLogLevel); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	if value, ok := os.LookupEnv(envTrace); ok {
		if enabled, err := strconv.ParseBool(strings.TrimSpace(value)); err == nil {
			c.Trace.Enabled = enabled
		}
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	switch c.Logging.Level {
	case "":
		c.Logging.Level = defaultLogLevel
	case "warning":
		c.Logging.Level = "warn"
	}
}
