package config

import (
	"fmt"
	"strings"
)

// AuthConfig holds the static bearer key protecting the API.
// An empty key disables authentication.
type AuthConfig struct {
	ApiKey string `koanf:"apiKey"`
}

// String returns a string representation of the auth configuration.
func (c *AuthConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Auth ---\n")
	b.WriteString(fmt.Sprintf("  apiKey: %s\n", maskKey(c.ApiKey)))
	return b.String()
}

func (c *AuthConfig) Validate() error {
	return nil
}
