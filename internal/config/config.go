// Package config defines the per-binary configuration structs.
package config

import (
	"strings"

	"github.com/andrerobles/backoffice/pkg/config"
	"github.com/andrerobles/backoffice/pkg/config/configloader"
)

var _ configloader.Validator = (*ServerConfig)(nil)
var _ configloader.Validator = (*ReporterConfig)(nil)
var _ configloader.Validator = (*NotifierConfig)(nil)
var _ configloader.Validator = (*AdminConfig)(nil)
var _ configloader.Validator = (*SeederConfig)(nil)

// ServerConfig configures the back-office API server.
type ServerConfig struct {
	HTTPServer config.HTTPConfig     `koanf:"server"`
	Database   config.DatabaseConfig `koanf:"database"`
	Nats       config.NATSConfig     `koanf:"nats"`
	Auth       config.AuthConfig     `koanf:"auth"`
	Log        config.LogConfig      `koanf:"log"`
	Ops        config.OpsConfig      `koanf:"ops"`
	Shutdown   config.ShutdownConfig `koanf:"shutdown"`
}

func (c *ServerConfig) String() string {
	var b strings.Builder
	b.WriteString(c.HTTPServer.String())
	b.WriteString(c.Database.String())
	b.WriteString(c.Nats.String())
	b.WriteString(c.Auth.String())
	b.WriteString(c.Log.String())
	b.WriteString(c.Ops.String())
	b.WriteString(c.Shutdown.String())
	return b.String()
}

// Validate checks if the configuration values are valid
func (c *ServerConfig) Validate() error {
	if err := c.HTTPServer.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Nats.Validate(); err != nil {
		return err
	}
	if err := c.Auth.Validate(); err != nil {
		return err
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}
	if err := c.Ops.Validate(); err != nil {
		return err
	}
	return c.Shutdown.Validate()
}

// ReporterConfig configures the scheduled sales report job.
type ReporterConfig struct {
	Api    config.ApiConfig    `koanf:"api"`
	Report config.ReportConfig `koanf:"report"`
	Log    config.LogConfig    `koanf:"log"`
}

func (c *ReporterConfig) String() string {
	var b strings.Builder
	b.WriteString(c.Api.String())
	b.WriteString(c.Report.String())
	b.WriteString(c.Log.String())
	return b.String()
}

func (c *ReporterConfig) Validate() error {
	if err := c.Api.Validate(); err != nil {
		return err
	}
	if err := c.Report.Validate(); err != nil {
		return err
	}
	return c.Log.Validate()
}

// NotifierConfig configures the order notification relay.
type NotifierConfig struct {
	Nats       config.NATSConfig       `koanf:"nats"`
	Subscriber config.SubscriberConfig `koanf:"subscriber"`
	Log        config.LogConfig        `koanf:"log"`
	Shutdown   config.ShutdownConfig   `koanf:"shutdown"`
}

func (c *NotifierConfig) String() string {
	var b strings.Builder
	b.WriteString(c.Nats.String())
	b.WriteString(c.Subscriber.String())
	b.WriteString(c.Log.String())
	b.WriteString(c.Shutdown.String())
	return b.String()
}

func (c *NotifierConfig) Validate() error {
	if err := c.Nats.Validate(); err != nil {
		return err
	}
	if err := c.Subscriber.Validate(); err != nil {
		return err
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}
	return c.Shutdown.Validate()
}

// AdminConfig configures the terminal admin client.
type AdminConfig struct {
	Api config.ApiConfig `koanf:"api"`
	Log config.LogConfig `koanf:"log"`
}

func (c *AdminConfig) String() string {
	var b strings.Builder
	b.WriteString(c.Api.String())
	b.WriteString(c.Log.String())
	return b.String()
}

func (c *AdminConfig) Validate() error {
	if err := c.Api.Validate(); err != nil {
		return err
	}
	return c.Log.Validate()
}

// SeederConfig configures the demo data seeder.
type SeederConfig struct {
	Database config.DatabaseConfig `koanf:"database"`
	Log      config.LogConfig      `koanf:"log"`
}

func (c *SeederConfig) String() string {
	var b strings.Builder
	b.WriteString(c.Database.String())
	b.WriteString(c.Log.String())
	return b.String()
}

func (c *SeederConfig) Validate() error {
	if err := c.Database.Validate(); err != nil {
		return err
	}
	return c.Log.Validate()
}
