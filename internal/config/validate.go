package config

import (
	"fmt"
	"slices"
	"strings"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "text"}
)

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("database.dsn is required")
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	if err := c.Analysis.validate(); err != nil {
		return fmt.Errorf("analysis: %w", err)
	}

	return nil
}

func (l LogConfig) validate() error {
	if !slices.Contains(logLevels, strings.ToLower(l.Level)) {
		return fmt.Errorf("unknown level %q", l.Level)
	}
	if !slices.Contains(logFormats, strings.ToLower(l.Format)) {
		return fmt.Errorf("unknown format %q", l.Format)
	}
	return nil
}

func (a AnalysisConfig) validate() error {
	if a.MaxTextLength <= 0 {
		return fmt.Errorf("max_text_length must be > 0 (got %d)", a.MaxTextLength)
	}
	if a.MaxLines <= 0 {
		return fmt.Errorf("max_lines must be > 0 (got %d)", a.MaxLines)
	}
	if a.Workers <= 0 {
		return fmt.Errorf("workers must be > 0 (got %d)", a.Workers)
	}
	if a.RateLimitPerMinute < 0 {
		return fmt.Errorf("rate_limit_per_minute must be >= 0 (got %d)", a.RateLimitPerMinute)
	}
	return nil
}
