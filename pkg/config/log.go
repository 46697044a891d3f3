package config

import (
	"fmt"
	"strings"
)

// LogConfig selects the minimum level the process logs at.
// The level name is interpreted at startup; unknown values fall
// back to info, so Validate accepts anything.
type LogConfig struct {
	Level string `koanf:"level"`
}

// String returns a string representation of the log configuration.
func (c *LogConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Log ---\n")
	b.WriteString(fmt.Sprintf("  level: %s\n", c.Level))
	return b.String()
}

func (c *LogConfig) Validate() error {
	return nil
}
