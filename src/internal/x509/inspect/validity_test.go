// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509inspect_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	x509inspect "github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/x509/inspect"
)

func TestEvaluate(t *testing.T) {
	notBefore := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	notAfter := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		now       time.Time
		wantValid bool
		wantTTE   string
	}{
		{"Before Window", notBefore.Add(-time.Second), false, "365 day(s)"},
		{"At NotBefore", notBefore, true, "365 day(s)"},
		{"Inside Window", time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), true, "30 day(s)"},
		{"Fraction Truncated", notAfter.Add(-47 * time.Hour), true, "1 day(s)"},
		{"Less Than A Day", notAfter.Add(-time.Minute), true, "0 day(s)"},
		{"At NotAfter", notAfter, true, ""},
		{"After Window", notAfter.Add(time.Second), false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, tte := x509inspect.Evaluate(notBefore, notAfter, tt.now)
			assert.Equal(t, tt.wantValid, valid)
			assert.Equal(t, tt.wantTTE, tte)
		})
	}
}

func TestEvaluate_Monotonic(t *testing.T) {
	notBefore := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	notAfter := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	var (
		seenValid   bool
		seenExpired bool
		lastDays    = int64(1 << 62)
	)

	for now := notBefore.Add(-48 * time.Hour); now.Before(notAfter.Add(72 * time.Hour)); now = now.Add(7 * time.Hour) {
		valid, tte := x509inspect.Evaluate(notBefore, notAfter, now)

		if valid {
			assert.False(t, seenExpired, "validity must not return after expiry (now=%s)", now)
			seenValid = true
		} else if seenValid {
			seenExpired = true
		}

		if tte == "" {
			assert.False(t, now.Before(notAfter), "time to expiration missing before notAfter (now=%s)", now)
			continue
		}

		var days int64
		_, err := fmt.Sscanf(tte, "%d day(s)", &days)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, days, int64(0))
		assert.LessOrEqual(t, days, lastDays, "days to expiration must never increase")
		lastDays = days
	}

	assert.True(t, seenValid)
	assert.True(t, seenExpired)
}

func TestEvaluate_NoWellDefinedExpiration(t *testing.T) {
	notBefore := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	notAfter := time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC)
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	valid, tte := x509inspect.Evaluate(notBefore, notAfter, now)
	assert.True(t, valid)
	assert.Equal(t, "2912807 day(s)", tte)
	assert.Equal(t, 2912807, x509inspect.DaysUntil(notAfter, now))
}

func TestDaysUntil(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 10, x509inspect.DaysUntil(now.Add(10*24*time.Hour+time.Hour), now))
	assert.Equal(t, 0, x509inspect.DaysUntil(now.Add(time.Hour), now))
	assert.Equal(t, -2, x509inspect.DaysUntil(now.Add(-50*time.Hour), now))
}
