// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"errors"
	"sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/H0llyW00dzZ/tls-cert-inspector/src/config"
	"github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/metrics"
	"github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/report"
	"github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/scanner"
)

// ErrNoTargets is returned by scan when neither arguments nor the configuration name a target.
var ErrNoTargets = errors.New("no targets: pass HOST[:PORT] arguments or list targets in the config file")

func (a *app) newScanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [HOST[:PORT]...]",
		Short: "Inspect many targets, once or continuously",
		Long: `Inspect the targets given as arguments, or the targets of the config file.

With --interval the targets are inspected repeatedly until interrupted, and the
results are exported as Prometheus metrics when --metrics-addr is set.`,
		Example: `  tls-cert-inspector scan -c tls-cert-inspector.yaml
  tls-cert-inspector scan example.com example.org --concurrency 10
  tls-cert-inspector scan --interval 5m --metrics-addr 127.0.0.1:9402`,
		RunE: a.runScan,
	}

	flags := cmd.Flags()
	flags.Int("concurrency", 5, "maximum number of concurrent handshakes")
	flags.Duration("interval", 0, "repeat the scan at this interval (0 scans once, minimum 10s)")
	flags.String("metrics-addr", "", "serve Prometheus metrics on this address while watching")

	return cmd
}

func (a *app) runScan(cmd *cobra.Command, args []string) error {
	targets := a.cfg.Targets
	if len(args) > 0 {
		var err error
		if targets, err = parseTargets(args, a.cfg.Scan.Port); err != nil {
			return err
		}
	}
	if len(targets) == 0 {
		return ErrNoTargets
	}

	if a.cfg.Scan.Interval == 0 {
		sc := scanner.New(a.cfg.Scan.Timeout, a.cfg.Scan.Concurrency, a.zap)
		return a.write(cmd.OutOrStdout(), sc.ScanAll(cmd.Context(), targets))
	}

	return a.watch(cmd, targets)
}

// watch scans targets every interval until the context is canceled, serving
// metrics meanwhile when an address is configured.
func (a *app) watch(cmd *cobra.Command, targets []config.TargetConfig) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	m := metrics.New(a.version)
	sc := scanner.New(a.cfg.Scan.Timeout, a.cfg.Scan.Concurrency, a.zap, scanner.WithMetrics(m))

	var (
		wg       sync.WaitGroup
		serveErr error
		writeErr error
	)
	if addr := a.cfg.Metrics.Addr; addr != "" {
		wg.Go(func() {
			if err := m.Serve(ctx, addr, a.zap); err != nil {
				serveErr = err
				cancel()
			}
		})
	}

	a.zap.Info("watching targets",
		zap.Int("targets", len(targets)),
		zap.Duration("interval", a.cfg.Scan.Interval),
		zap.String("metrics_addr", a.cfg.Metrics.Addr),
	)

	sc.Watch(ctx, targets, a.cfg.Scan.Interval, func(results []report.Result) {
		if err := report.Write(cmd.OutOrStdout(), a.format(), results...); err != nil {
			writeErr = err
			cancel()
		}
	})

	cancel()
	wg.Wait()

	return errors.Join(writeErr, serveErr)
}
