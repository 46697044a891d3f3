package config

import (
	"fmt"
	"strings"
	"time"
)

// ReportConfig configures how often a sales report is generated.
type ReportConfig struct {
	Interval time.Duration `koanf:"interval"`
}

// String returns a string representation of the report job configuration.
func (c *ReportConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Report ---\n")
	b.WriteString(fmt.Sprintf("  interval: %s\n", c.Interval))
	return b.String()
}

func (c *ReportConfig) Validate() error {
	if c.Interval <= 0 {
		return fmt.Errorf("ReportConfig: interval must be greater than zero")
	}
	return nil
}
