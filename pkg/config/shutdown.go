package config

import (
	"fmt"
	"strings"
	"time"
)

// ShutdownConfig bounds how long a process waits for in-flight work
// to drain before exiting.
type ShutdownConfig struct {
	Timeout time.Duration `koanf:"timeout"`
}

// String returns a string representation of the shutdown configuration.
func (c *ShutdownConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Shutdown ---\n")
	b.WriteString(fmt.Sprintf("  timeout: %s\n", c.Timeout))
	return b.String()
}

func (c *ShutdownConfig) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("ShutdownConfig: timeout must be greater than zero")
	}
	return nil
}
