// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509oid_test

import (
	"encoding/asn1"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	x509oid "github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/x509/oid"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		oid      asn1.ObjectIdentifier
		expected string
	}{
		{"CommonName", asn1.ObjectIdentifier{2, 5, 4, 3}, "CN"},
		{"Country", asn1.ObjectIdentifier{2, 5, 4, 6}, "C"},
		{"State", asn1.ObjectIdentifier{2, 5, 4, 8}, "ST"},
		{"Locality", asn1.ObjectIdentifier{2, 5, 4, 7}, "L"},
		{"Organization", asn1.ObjectIdentifier{2, 5, 4, 10}, "O"},
		{"SHA256 RSA", asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 11}, "sha256WithRSAEncryption"},
		{"ECDSA SHA384", asn1.ObjectIdentifier{1, 2, 840, 10045, 4, 3, 3}, "ecdsa-with-SHA384"},
		{"Ed25519", asn1.ObjectIdentifier{1, 3, 101, 112}, "ED25519"},
		{"EV jurisdiction", asn1.ObjectIdentifier{1, 3, 6, 1, 4, 1, 311, 60, 2, 1, 3}, "jurisdictionC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, err := x509oid.Default.Resolve(tt.oid)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, name)
		})
	}
}

func TestResolve_Unknown(t *testing.T) {
	_, err := x509oid.New().Resolve(asn1.ObjectIdentifier{1, 2, 3, 4})
	require.ErrorIs(t, err, x509oid.ErrUnknownOID)
	assert.Contains(t, err.Error(), "1.2.3.4")
}

func TestRegister(t *testing.T) {
	r := x509oid.New()
	custom := asn1.ObjectIdentifier{1, 2, 3, 4}

	r.Register(custom, "custom")

	name, err := r.Resolve(custom)
	require.NoError(t, err)
	assert.Equal(t, "custom", name)

	_, err = x509oid.Default.Resolve(custom)
	assert.ErrorIs(t, err, x509oid.ErrUnknownOID, "registering on one resolver must not leak into Default")
}
