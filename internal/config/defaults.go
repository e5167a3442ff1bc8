package config

const (
	defaultBaseURL           = "http://localhost:8080"
	defaultRequestTimeoutSec = 15
	defaultWatchIntervalSec  = 5
	defaultTaskLimit         = 100
	defaultMailhogURL        = "http://localhost:8025"
	defaultMinIOConsoleURL   = "http://localhost:9001"
	defaultLogLevel          = "info"
	defaultLogFormat         = "console"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		API: API{
			BaseURL:           defaultBaseURL,
			RequestTimeoutSec: defaultRequestTimeoutSec,
		},
		Watch: Watch{
			IntervalSec: defaultWatchIntervalSec,
			TaskLimit:   defaultTaskLimit,
		},
		Links: Links{
			MailhogURL:      defaultMailhogURL,
			MinIOConsoleURL: defaultMinIOConsoleURL,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
