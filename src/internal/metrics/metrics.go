// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/report"
	x509inspect "github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/x509/inspect"
)

const (
	namespace = "tls_cert_inspector"

	// RoleServer and RoleIntermediate are the values of the "role" label.
	RoleServer       = "server"
	RoleIntermediate = "intermediate"

	resultSuccess = "success"
	resultFailure = "failure"
)

// Metrics holds the collectors updated by the scanner.
type Metrics struct {
	registry *prometheus.Registry

	// CertificateValid is 1 when the certificate is inside its validity window.
	CertificateValid *prometheus.GaugeVec
	// CertificateExpirySeconds is the Unix timestamp of notAfter.
	CertificateExpirySeconds *prometheus.GaugeVec
	// CertificateDaysUntilExpiry is negative once the certificate has expired.
	CertificateDaysUntilExpiry *prometheus.GaugeVec
	// ScanTotal counts inspections by target and result.
	ScanTotal *prometheus.CounterVec
	// ScanDuration tracks handshake plus extraction time.
	ScanDuration *prometheus.HistogramVec
	// TargetsWatched is the number of targets in the current scan set.
	TargetsWatched prometheus.Gauge
	// BuildInfo carries the version label, always 1.
	BuildInfo *prometheus.GaugeVec
}

// New creates the collectors and registers them, together with the Go and
// process collectors, on a fresh registry.
func New(version string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		CertificateValid: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "certificate_valid",
			Help:      "Whether the certificate is within its validity window (1=valid, 0=not valid)",
		}, []string{"target", "role"}),

		CertificateExpirySeconds: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "certificate_expiry_seconds",
			Help:      "Unix timestamp of certificate expiry",
		}, []string{"target", "role"}),

		CertificateDaysUntilExpiry: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "certificate_days_until_expiry",
			Help:      "Whole days until certificate expires",
		}, []string{"target", "role"}),

		ScanTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scan_total",
			Help:      "Total number of target inspections",
		}, []string{"target", "result"}),

		ScanDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "scan_duration_seconds",
			Help:      "Duration of target inspections in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"target"}),

		TargetsWatched: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "targets_watched",
			Help:      "Number of targets being inspected",
		}),

		BuildInfo: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "build_info",
			Help:      "Build information",
		}, []string{"version"}),
	}

	m.registry.MustRegister(
		m.CertificateValid,
		m.CertificateExpirySeconds,
		m.CertificateDaysUntilExpiry,
		m.ScanTotal,
		m.ScanDuration,
		m.TargetsWatched,
		m.BuildInfo,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m.BuildInfo.WithLabelValues(version).Set(1)

	return m
}

// Registry returns the registry the collectors are registered on.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler returns an HTTP handler serving the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Observe records the outcome of one inspection.
//
// A failed inspection only counts toward scan_total; the certificate gauges
// keep their last known values. A slot that is empty in a successful
// inspection has its gauges removed.
func (m *Metrics) Observe(r report.Result, duration time.Duration) {
	m.ScanDuration.WithLabelValues(r.Target).Observe(duration.Seconds())

	if r.Failed() {
		m.ScanTotal.WithLabelValues(r.Target, resultFailure).Inc()
		return
	}
	m.ScanTotal.WithLabelValues(r.Target, resultSuccess).Inc()

	server := r.Summary.Server
	if server.IsZero() {
		m.forget(r.Target, RoleServer)
	} else {
		m.set(r.Target, RoleServer, server.IsValid, server.NotAfter, r.InspectedAt)
	}

	ca := r.Summary.Intermediate
	if ca.IsZero() {
		m.forget(r.Target, RoleIntermediate)
	} else {
		m.set(r.Target, RoleIntermediate, ca.IsValid, ca.NotAfter, r.InspectedAt)
	}
}

func (m *Metrics) set(target, role string, valid bool, notAfter, now time.Time) {
	v := 0.0
	if valid {
		v = 1
	}
	m.CertificateValid.WithLabelValues(target, role).Set(v)
	m.CertificateExpirySeconds.WithLabelValues(target, role).Set(float64(notAfter.Unix()))
	m.CertificateDaysUntilExpiry.WithLabelValues(target, role).Set(float64(x509inspect.DaysUntil(notAfter, now)))
}

func (m *Metrics) forget(target, role string) {
	m.CertificateValid.DeleteLabelValues(target, role)
	m.CertificateExpirySeconds.DeleteLabelValues(target, role)
	m.CertificateDaysUntilExpiry.DeleteLabelValues(target, role)
}

// Serve exposes /metrics on addr until ctx is canceled.
//
// Parameters:
//   - ctx: Serving stops and the server shuts down when ctx is done
//   - addr: Listen address, host:port
//   - log: Logger for lifecycle events
//
// Returns:
//   - error: Listen error, or nil after a clean shutdown
func (m *Metrics) Serve(ctx context.Context, addr string, log *zap.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("metrics server listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	log.Info("metrics server stopped")
	return nil
}
