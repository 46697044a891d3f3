package config

import (
	"fmt"
	"strings"
	"time"
)

// ApiConfig configures a client of the back-office HTTP API.
type ApiConfig struct {
	URL     string        `koanf:"url"`
	Key     string        `koanf:"key"`
	Timeout time.Duration `koanf:"timeout"`
}

// String returns a string representation of the API client configuration.
func (c *ApiConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- API ---\n")
	b.WriteString(fmt.Sprintf("  url: %s\n", c.URL))
	b.WriteString(fmt.Sprintf("  key: %s\n", maskKey(c.Key)))
	b.WriteString(fmt.Sprintf("  timeout: %s\n", c.Timeout))
	return b.String()
}

func (c *ApiConfig) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("ApiConfig: url is not configured")
	}
	if !strings.HasPrefix(c.URL, "http://") && !strings.HasPrefix(c.URL, "https://") {
		return fmt.Errorf("ApiConfig: url must start with http:// or https://")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("ApiConfig: timeout must be greater than zero")
	}
	return nil
}

func maskKey(key string) string {
	if key == "" {
		return "<not configured>"
	}
	return "****"
}
