package config

import "time"

// Default values applied before any config file is read.
const (
	DefaultBaseURL        = "http://localhost:3000"
	DefaultTimeout        = 15 * time.Second
	DefaultPageLimit      = 10
	DefaultSearchDebounce = 500 * time.Millisecond
)

// GetDefaultConfig returns the built-in configuration.
func GetDefaultConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL: DefaultBaseURL,
			Timeout: Duration(DefaultTimeout),
		},
		UI: UIConfig{
			PageLimit:      DefaultPageLimit,
			SearchDebounce: Duration(DefaultSearchDebounce),
		},
	}
}
