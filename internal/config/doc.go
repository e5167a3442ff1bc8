// Package config loads the client-side configuration: backend location,
// watch-mode timing, operator console links, and logging. Backend behavior
// itself is configured through the Settings API, not here.
package config
