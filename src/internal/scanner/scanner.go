// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package scanner

import (
	"context"
	"net"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/H0llyW00dzZ/tls-cert-inspector/src/config"
	"github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/metrics"
	"github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/report"
	x509chain "github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/x509/chain"
	x509inspect "github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/x509/inspect"
)

// FetchFunc retrieves the chain presented by host:port.
type FetchFunc func(ctx context.Context, host string, port int, timeout time.Duration) (*x509chain.RemoteChain, error)

// Scanner handles TLS certificate inspection of many targets.
type Scanner struct {
	logger      *zap.Logger
	inspector   *x509inspect.Inspector
	metrics     *metrics.Metrics
	fetch       FetchFunc
	now         func() time.Time
	timeout     time.Duration
	concurrency int
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithMetrics records every inspection in m.
func WithMetrics(m *metrics.Metrics) Option { return func(s *Scanner) { s.metrics = m } }

// WithInspector replaces the default inspector.
func WithInspector(in *x509inspect.Inspector) Option {
	return func(s *Scanner) { s.inspector = in }
}

// WithFetcher replaces the TLS handshake, mainly for tests.
func WithFetcher(f FetchFunc) Option { return func(s *Scanner) { s.fetch = f } }

// WithClock sets the time source used for validity evaluation.
func WithClock(now func() time.Time) Option { return func(s *Scanner) { s.now = now } }

// New creates a new Scanner. A nil logger is replaced by a no-op logger and
// a concurrency below one by one.
func New(timeout time.Duration, concurrency int, logger *zap.Logger, opts ...Option) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if concurrency < 1 {
		concurrency = 1
	}

	s := &Scanner{
		logger:      logger,
		inspector:   x509inspect.Default,
		fetch:       x509chain.FetchRemoteChain,
		now:         time.Now,
		timeout:     timeout,
		concurrency: concurrency,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan fetches and inspects one target.
//
// Errors are reported in the result rather than returned, so a scan of
// many targets always yields one result per target.
func (s *Scanner) Scan(ctx context.Context, host string, port int) report.Result {
	start := time.Now()
	result := s.scan(ctx, host, port)

	if s.metrics != nil {
		s.metrics.Observe(result, time.Since(start))
	}
	return result
}

func (s *Scanner) scan(ctx context.Context, host string, port int) report.Result {
	result := report.Result{
		Target:      net.JoinHostPort(host, strconv.Itoa(port)),
		InspectedAt: s.now().UTC(),
	}

	rc, err := s.fetch(ctx, host, port, s.timeout)
	if err != nil {
		result.Error = err.Error()
		s.logger.Debug("fetch failed",
			zap.String("target", result.Target),
			zap.Error(err),
		)
		return result
	}

	result.Target = rc.Address()
	result.TLSVersion = rc.TLSVersion
	result.CipherSuite = rc.CipherSuite
	result.Raw = rc.Raw

	summary, err := s.inspector.Extract(rc.Raw, result.InspectedAt)
	if err != nil {
		result.Error = err.Error()
		s.logger.Warn("extraction failed",
			zap.String("target", result.Target),
			zap.Int("certificates", len(rc.Raw)),
			zap.Error(err),
		)
		return result
	}
	result.Summary = summary

	s.logger.Debug("scan successful",
		zap.String("target", result.Target),
		zap.String("tls_version", rc.TLSVersion),
		zap.String("server", summary.Server.CommonName),
		zap.String("intermediate", summary.Intermediate.CommonName),
		zap.Bool("server_valid", summary.Server.IsValid),
	)

	return result
}

// ScanAll scans all targets concurrently, at most concurrency at a time.
// Results are returned in target order.
func (s *Scanner) ScanAll(ctx context.Context, targets []config.TargetConfig) []report.Result {
	results := make([]report.Result, len(targets))
	var wg sync.WaitGroup

	// Use a semaphore channel for concurrency control
	sem := make(chan struct{}, s.concurrency)

	for i, target := range targets {
		wg.Add(1)
		go func(idx int, t config.TargetConfig) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[idx] = report.Result{
					Target:      t.Address(),
					InspectedAt: s.now().UTC(),
					Error:       ctx.Err().Error(),
				}
				return
			}

			results[idx] = s.Scan(ctx, t.Host, t.Port)
		}(i, target)
	}

	wg.Wait()

	if s.metrics != nil {
		s.metrics.TargetsWatched.Set(float64(len(targets)))
	}
	return results
}

// Watch scans targets immediately and then every interval until ctx is done,
// handing each round of results to fn.
func (s *Scanner) Watch(ctx context.Context, targets []config.TargetConfig, interval time.Duration, fn func([]report.Result)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		fn(s.ScanAll(ctx, targets))

		select {
		case <-ctx.Done():
			s.logger.Info("watch stopped", zap.Error(ctx.Err()))
			return
		case <-ticker.C:
		}
	}
}
