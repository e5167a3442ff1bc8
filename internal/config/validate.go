package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateAPI(); err != nil {
		return err
	}
	if err := c.validateWatch(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateAPI() error {
	if c.API.BaseURL == "" {
		return errors.New("api.base_url must be set")
	}
	parsed, err := url.Parse(c.API.BaseURL)
	if err != nil {
		return fmt.Errorf("api.base_url is not a valid URL: %w", err)
	}
	if parsed.Host == "" {
		return fmt.Errorf("api.base_url %q has no host", c.API.BaseURL)
	}
	if c.API.RequestTimeoutSec <= 0 {
		return errors.New("api.request_timeout_sec must be positive")
	}
	return nil
}

func (c *Config) validateWatch() error {
	if c.Watch.IntervalSec <= 0 {
		return errors.New("watch.interval_sec must be positive")
	}
	if c.Watch.TaskLimit < 1 || c.Watch.TaskLimit > 1000 {
		return errors.New("watch.task_limit must be between 1 and 1000")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	return nil
}
