// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/report"
	x509chain "github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/x509/chain"
)

const (
	// EnvPrefix prefixes every environment variable read by the inspector.
	EnvPrefix = "TLSCI"
	// FileName is the configuration file name searched for without --config.
	FileName = "tls-cert-inspector"
	// DefaultPort is the TLS port used when a target names none.
	DefaultPort = 443
	// DefaultTimeout bounds the dial and handshake of one target.
	DefaultTimeout = 10 * time.Second
)

// Config represents the complete inspector configuration.
type Config struct {
	Scan    ScanConfig     `mapstructure:"scan"`
	Log     LogConfig      `mapstructure:"log"`
	Output  OutputConfig   `mapstructure:"output"`
	Metrics MetricsConfig  `mapstructure:"metrics"`
	Targets []TargetConfig `mapstructure:"targets"`
}

// ScanConfig controls how targets are contacted.
type ScanConfig struct {
	Timeout     time.Duration `mapstructure:"timeout"`
	Interval    time.Duration `mapstructure:"interval"` // zero scans once
	Concurrency int           `mapstructure:"concurrency"`
	Port        int           `mapstructure:"port"` // default port for targets without one
}

// LogConfig controls diagnostic logging on stderr.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// OutputConfig controls how results are rendered.
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// MetricsConfig controls the Prometheus endpoint of the scan command.
type MetricsConfig struct {
	Addr string `mapstructure:"addr"` // empty disables the endpoint
}

// TargetConfig is one endpoint to inspect.
type TargetConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// Address returns the host:port string for a target.
func (t TargetConfig) Address() string {
	return net.JoinHostPort(t.Host, strconv.Itoa(t.Port))
}

// NewViper returns a viper instance reading cfgFile, or tls-cert-inspector.yaml from
// the working directory when cfgFile is empty, plus TLSCI_ environment variables.
//
// A missing default file is not an error; a missing explicit file is.
func NewViper(cfgFile string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return v, nil
}

// Load reads configuration from viper
func Load(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	for i := range cfg.Targets {
		if cfg.Targets[i].Port == 0 {
			cfg.Targets[i].Port = cfg.Scan.Port
		}
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("scan.timeout", DefaultTimeout)
	v.SetDefault("scan.interval", "0s")
	v.SetDefault("scan.concurrency", 5)
	v.SetDefault("scan.port", DefaultPort)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("output.format", string(report.Table))

	v.SetDefault("metrics.addr", "")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateScan(); err != nil {
		return fmt.Errorf("scan: %w", err)
	}

	if err := c.validateLog(); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	if _, err := report.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("output: %w", err)
	}

	if c.Metrics.Addr != "" {
		if _, _, err := net.SplitHostPort(c.Metrics.Addr); err != nil {
			return fmt.Errorf("metrics: addr must be host:port: %w", err)
		}
	}

	if err := c.validateTargets(); err != nil {
		return fmt.Errorf("targets: %w", err)
	}

	return nil
}

func (c *Config) validateScan() error {
	if c.Scan.Timeout < time.Second {
		return fmt.Errorf("timeout must be at least 1 second")
	}

	if c.Scan.Interval != 0 && c.Scan.Interval < 10*time.Second {
		return fmt.Errorf("interval must be 0 or at least 10 seconds")
	}

	if c.Scan.Concurrency < 1 || c.Scan.Concurrency > 50 {
		return fmt.Errorf("concurrency must be between 1 and 50")
	}

	if c.Scan.Port < 1 || c.Scan.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}

	return nil
}

func (c *Config) validateLog() error {
	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLogLevels[c.Log.Level] {
		return fmt.Errorf("level must be one of: debug, info, warn, error")
	}

	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("format must be one of: text, json")
	}

	return nil
}

func (c *Config) validateTargets() error {
	if len(c.Targets) > 1000 {
		return fmt.Errorf("maximum 1000 targets allowed")
	}

	seen := make(map[string]bool)
	for i := range c.Targets {
		host, err := x509chain.NormalizeHost(c.Targets[i].Host)
		if err != nil {
			return fmt.Errorf("[%d]: %w", i, err)
		}
		c.Targets[i].Host = host

		if c.Targets[i].Port < 1 || c.Targets[i].Port > 65535 {
			return fmt.Errorf("[%d]: port must be between 1 and 65535", i)
		}

		key := c.Targets[i].Address()
		if seen[key] {
			return fmt.Errorf("[%d]: duplicate host:port '%s'", i, key)
		}
		seen[key] = true
	}

	return nil
}
