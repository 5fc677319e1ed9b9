// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/H0llyW00dzZ/tls-cert-inspector/src/config"
	"github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/report"
	"github.com/H0llyW00dzZ/tls-cert-inspector/src/logger"
)

// ErrInspectionFailed is returned when at least one target could not be inspected.
// The failing targets are part of the rendered output.
var ErrInspectionFailed = errors.New("one or more targets could not be inspected")

const programName = "tls-cert-inspector"

// flagBindings maps configuration keys to the flags that override them.
var flagBindings = map[string]string{
	"output.format":    "output",
	"log.level":        "log-level",
	"log.format":       "log-format",
	"scan.timeout":     "timeout",
	"scan.port":        "port",
	"scan.interval":    "interval",
	"scan.concurrency": "concurrency",
	"metrics.addr":     "metrics-addr",
}

// app holds the state shared by the commands of one invocation.
type app struct {
	version string
	log     logger.Logger
	cfgFile string
	cfg     *config.Config
	zap     *zap.Logger
}

// NewRootCommand builds the command tree.
//
// Parameters:
//   - version: Version string reported by the version command
//   - log: Logger for human-readable notices, redirected to stderr at run time
//
// Returns:
//   - *cobra.Command: Root command with all subcommands attached
func NewRootCommand(version string, log logger.Logger) *cobra.Command {
	a := &app{version: version, log: log}

	rootCmd := &cobra.Command{
		Use:   posix.ExecutableName(programName),
		Short: "TLS certificate chain inspector",
		Long: `tls-cert-inspector connects to TLS servers, reads the certificate chain they
present and summarizes the server certificate and its intermediate CA:
subject, issuer, signature algorithm, validity and days to expiration.

Certificates are reported as they are; expired or untrusted chains are not rejected.`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "config file (default: ./"+config.FileName+".yaml)")
	flags.StringP("output", "o", string(report.Table), "output format: "+strings.Join(report.Formats(), ", "))
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.String("log-format", "text", "log format: text, json")
	flags.Duration("timeout", config.DefaultTimeout, "TLS handshake timeout")
	flags.Int("port", config.DefaultPort, "port for targets given without one")

	rootCmd.AddCommand(
		a.newRemoteCommand(),
		a.newFileCommand(),
		a.newScanCommand(),
		a.newMCPCommand(),
		a.newVersionCommand(),
	)

	return rootCmd
}

// Execute runs the root command with the process arguments.
func Execute(ctx context.Context, version string, log logger.Logger) error {
	return NewRootCommand(version, log).ExecuteContext(ctx)
}

// setup loads and validates the configuration with flag overrides applied,
// then builds the diagnostic logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	a.log.SetOutput(cmd.ErrOrStderr())

	v, err := config.NewViper(a.cfgFile)
	if err != nil {
		return err
	}

	for key, name := range flagBindings {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	zl, err := logger.NewZap(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.zap = zl
	return nil
}

// format returns the configured output format. It was validated in setup.
func (a *app) format() report.Format {
	f, _ := report.ParseFormat(a.cfg.Output.Format)
	return f
}

// write renders results to w and reports ErrInspectionFailed when any target failed.
func (a *app) write(w io.Writer, results []report.Result) error {
	if err := report.Write(w, a.format(), results...); err != nil {
		return err
	}

	for _, r := range results {
		if r.Failed() {
			return ErrInspectionFailed
		}
	}
	return nil
}
