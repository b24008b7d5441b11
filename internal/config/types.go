package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration structure for custctl.
type Config struct {
	API APIConfig `yaml:"api"`
	UI  UIConfig  `yaml:"ui"`
}

// APIConfig describes how to reach the CRM backend.
type APIConfig struct {
	BaseURL string   `yaml:"baseURL,omitempty"` // e.g. "http://localhost:3000"
	Timeout Duration `yaml:"timeout,omitempty"` // per-request timeout
}

// UIConfig holds tunables for the interactive customer browser.
type UIConfig struct {
	PageLimit      int      `yaml:"pageLimit,omitempty"`      // customers per page
	SearchDebounce Duration `yaml:"searchDebounce,omitempty"` // quiet period before a search commits
}

// Duration wraps time.Duration so YAML values like "5s" or "500ms"
// parse. Plain integers are accepted as nanoseconds.
type Duration time.Duration

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err == nil {
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", s, err)
		}
		*d = Duration(parsed)
		return nil
	}
	var n int64
	if err := value.Decode(&n); err != nil {
		return fmt.Errorf("invalid duration value: %w", err)
	}
	*d = Duration(n)
	return nil
}

func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}
