// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/tls-cert-inspector/src/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(viper.New())
	require.NoError(t, err, "Load() error")

	assert.Equal(t, 10*time.Second, cfg.Scan.Timeout)
	assert.Zero(t, cfg.Scan.Interval)
	assert.Equal(t, 5, cfg.Scan.Concurrency)
	assert.Equal(t, 443, cfg.Scan.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "table", cfg.Output.Format)
	assert.Empty(t, cfg.Metrics.Addr)
	assert.Empty(t, cfg.Targets)

	assert.NoError(t, cfg.Validate())
}

func TestLoad_CustomValues(t *testing.T) {
	v := viper.New()
	v.Set("scan.timeout", "3s")
	v.Set("scan.interval", "1m")
	v.Set("scan.concurrency", 8)
	v.Set("scan.port", 8443)
	v.Set("output.format", "json")
	v.Set("targets", []map[string]any{
		{"host": "example.com"},
		{"host": "example.org", "port": 443},
	})

	cfg, err := config.Load(v)
	require.NoError(t, err, "Load() error")

	assert.Equal(t, 3*time.Second, cfg.Scan.Timeout)
	assert.Equal(t, time.Minute, cfg.Scan.Interval)
	assert.Equal(t, 8, cfg.Scan.Concurrency)
	assert.Equal(t, "json", cfg.Output.Format)

	require.Len(t, cfg.Targets, 2)
	assert.Equal(t, 8443, cfg.Targets[0].Port, "targets without a port use scan.port")
	assert.Equal(t, 443, cfg.Targets[1].Port)
	assert.Equal(t, "example.com:8443", cfg.Targets[0].Address())
}

func TestNewViper(t *testing.T) {
	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "Explicit File",
			testFunc: func(t *testing.T) {
				path := filepath.Join(t.TempDir(), "inspector.yaml")
				require.NoError(t, os.WriteFile(path, []byte(`
scan:
  timeout: 4s
  concurrency: 2
log:
  level: debug
targets:
  - host: example.com
  - host: example.net
    port: 8443
`), 0o600))

				v, err := config.NewViper(path)
				require.NoError(t, err, "NewViper() error")

				cfg, err := config.Load(v)
				require.NoError(t, err, "Load() error")
				require.NoError(t, cfg.Validate())

				assert.Equal(t, 4*time.Second, cfg.Scan.Timeout)
				assert.Equal(t, 2, cfg.Scan.Concurrency)
				assert.Equal(t, "debug", cfg.Log.Level)
				require.Len(t, cfg.Targets, 2)
				assert.Equal(t, "example.net:8443", cfg.Targets[1].Address())
			},
		},
		{
			name: "Missing Explicit File",
			testFunc: func(t *testing.T) {
				_, err := config.NewViper(filepath.Join(t.TempDir(), "absent.yaml"))
				assert.Error(t, err)
			},
		},
		{
			name: "Missing Default File",
			testFunc: func(t *testing.T) {
				t.Chdir(t.TempDir())

				v, err := config.NewViper("")
				require.NoError(t, err)

				cfg, err := config.Load(v)
				require.NoError(t, err)
				assert.Equal(t, 5, cfg.Scan.Concurrency)
			},
		},
		{
			name: "Environment Overrides",
			testFunc: func(t *testing.T) {
				t.Chdir(t.TempDir())
				t.Setenv("TLSCI_SCAN_CONCURRENCY", "12")
				t.Setenv("TLSCI_OUTPUT_FORMAT", "yaml")

				v, err := config.NewViper("")
				require.NoError(t, err)

				cfg, err := config.Load(v)
				require.NoError(t, err)
				assert.Equal(t, 12, cfg.Scan.Concurrency)
				assert.Equal(t, "yaml", cfg.Output.Format)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.testFunc(t)
		})
	}
}

func TestValidate(t *testing.T) {
	valid := func() *config.Config {
		cfg, err := config.Load(viper.New())
		require.NoError(t, err)
		cfg.Targets = []config.TargetConfig{{Host: "example.com", Port: 443}}
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(c *config.Config)
		wantErr string
	}{
		{"Valid", func(c *config.Config) {}, ""},
		{"Timeout Too Short", func(c *config.Config) { c.Scan.Timeout = 500 * time.Millisecond }, "timeout"},
		{"Interval Too Short", func(c *config.Config) { c.Scan.Interval = time.Second }, "interval"},
		{"Concurrency Zero", func(c *config.Config) { c.Scan.Concurrency = 0 }, "concurrency"},
		{"Concurrency Too High", func(c *config.Config) { c.Scan.Concurrency = 51 }, "concurrency"},
		{"Default Port", func(c *config.Config) { c.Scan.Port = 0 }, "port"},
		{"Log Level", func(c *config.Config) { c.Log.Level = "trace" }, "level"},
		{"Log Format", func(c *config.Config) { c.Log.Format = "xml" }, "format"},
		{"Output Format", func(c *config.Config) { c.Output.Format = "csv" }, "output"},
		{"Metrics Addr", func(c *config.Config) { c.Metrics.Addr = "9090" }, "metrics"},
		{"Empty Host", func(c *config.Config) { c.Targets[0].Host = "" }, "targets: [0]"},
		{"Target Port", func(c *config.Config) { c.Targets[0].Port = 70000 }, "port must be between"},
		{"Duplicate Target", func(c *config.Config) {
			c.Targets = append(c.Targets, config.TargetConfig{Host: "EXAMPLE.com", Port: 443})
		}, "duplicate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
