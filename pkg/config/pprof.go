package config

import (
	"fmt"
	"strings"
)

// OpsConfig configures the side listener for pprof and Prometheus metrics.
type OpsConfig struct {
	Enabled bool   `koanf:"enabled"`
	Addr    string `koanf:"addr"`
}

// String returns a string representation of the ops listener configuration.
func (c *OpsConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Ops ---\n")
	b.WriteString(fmt.Sprintf("  enabled: %t\n", c.Enabled))
	b.WriteString(fmt.Sprintf("  address: %s\n", c.Addr))
	return b.String()
}

func (c *OpsConfig) Validate() error {
	if c.Enabled && c.Addr == "" {
		return fmt.Errorf("ops listener is enabled but address is not configured")
	}
	return nil
}
