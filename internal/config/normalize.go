package config

import "strings"

func (c *Config) normalize() error {
	c.API.BaseURL = strings.TrimSpace(c.API.BaseURL)
	if c.API.BaseURL != "" && !strings.Contains(c.API.BaseURL, "://") {
		c.API.BaseURL = "http://" + c.API.BaseURL
	}
	c.API.BaseURL = strings.TrimRight(c.API.BaseURL, "/")
	if c.API.RequestTimeoutSec == 0 {
		c.API.RequestTimeoutSec = defaultRequestTimeoutSec
	}

	if c.Watch.IntervalSec == 0 {
		c.Watch.IntervalSec = defaultWatchIntervalSec
	}
	if c.Watch.TaskLimit == 0 {
		c.Watch.TaskLimit = defaultTaskLimit
	}

	c.Links.MailhogURL = strings.TrimSpace(c.Links.MailhogURL)
	c.Links.MinIOConsoleURL = strings.TrimSpace(c.Links.MinIOConsoleURL)

	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
}
