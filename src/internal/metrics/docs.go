// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package metrics exposes inspection results as [Prometheus] metrics.
//
// Each [Metrics] value owns its registry, so several scanners (or tests)
// can run side by side without colliding on global registration.
//
// [Prometheus]: https://prometheus.io/docs/introduction/overview/
package metrics
