// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs_test

import (
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	x509certs "github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/x509/certs"
	"github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/x509/testcert"
)

func TestCertificateOperations(t *testing.T) {
	leaf, ca := testcert.ExampleChain(t)

	tests := []struct {
		name     string
		testFunc func(t *testing.T, decoder *x509certs.Certificate)
	}{
		{
			name: "Decode Multiple PEM Certificates",
			testFunc: func(t *testing.T, decoder *x509certs.Certificate) {
				certs, err := decoder.DecodeMultiple(testcert.PEM(leaf.DER, ca.DER))
				require.NoError(t, err, "DecodeMultiple() error")

				require.Len(t, certs, 2, "expected 2 certificates")
				assert.Equal(t, "example.com", certs[0].Subject.CommonName)
				assert.Equal(t, "Example CA", certs[1].Subject.CommonName)
			},
		},
		{
			name: "Decode Concatenated DER",
			testFunc: func(t *testing.T, decoder *x509certs.Certificate) {
				data := append(append([]byte{}, leaf.DER...), ca.DER...)

				certs, err := decoder.DecodeMultiple(data)
				require.NoError(t, err, "DecodeMultiple() error")
				assert.Len(t, certs, 2)
			},
		},
		{
			name: "Decode Bundle Keeps Order",
			testFunc: func(t *testing.T, decoder *x509certs.Certificate) {
				raw, err := decoder.DecodeBundle(testcert.PEM(ca.DER, leaf.DER))
				require.NoError(t, err, "DecodeBundle() error")

				require.Len(t, raw, 2)
				assert.Equal(t, ca.DER, raw[0])
				assert.Equal(t, leaf.DER, raw[1])
			},
		},
		{
			name: "Decode Certificate",
			testFunc: func(t *testing.T, decoder *x509certs.Certificate) {
				cert, err := decoder.Decode(testcert.PEM(leaf.DER))
				require.NoError(t, err, "Decode() error")

				assert.Equal(t, "example.com", cert.Subject.CommonName, "expected CommonName example.com")
			},
		},
		{
			name: "Decode DER",
			testFunc: func(t *testing.T, decoder *x509certs.Certificate) {
				cert, err := decoder.DecodeDER(leaf.DER)
				require.NoError(t, err, "DecodeDER() error")

				assert.True(t, leaf.Cert.Equal(cert), "original and decoded certificates are not equal")
			},
		},
		{
			name: "Encode PEM Round Trip",
			testFunc: func(t *testing.T, decoder *x509certs.Certificate) {
				encoded := decoder.EncodePEM(leaf.Cert)
				assert.NotEmpty(t, encoded, "EncodePEM() returned empty result")

				block, _ := pem.Decode(encoded)
				require.NotNil(t, block, "failed to decode encoded certificate PEM")

				decoded, err := x509.ParseCertificate(block.Bytes)
				require.NoError(t, err, "ParseCertificate() error")

				assert.True(t, leaf.Cert.Equal(decoded), "original and decoded certificates are not equal")
			},
		},
	}

	decoder := x509certs.New()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.testFunc(t, decoder)
		})
	}
}

const (
	invalidPEM = `
-----BEGIN INVALID-----
MIIEmTCCBD+gAwIBAgIRANFjRCmF+Y2bUYHbhxwkEpowCgYIKoZIzj0EAwIwgY8x
-----END INVALID-----
`

	invalidCERT = `
-----BEGIN CERTIFICATE-----
MIIBIjANBgkqhkiG9w0BAQEFAAOCAQ8AMIIBCgKCAQEAz6e5VV5F8rF2sFJ0Q4vA
-----END CERTIFICATE-----
`
)

func TestDecodeCertificate_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected error
	}{
		{
			name:     "Invalid PEM Block",
			input:    invalidPEM,
			expected: x509certs.ErrInvalidBlockType,
		},
		{
			name:     "Invalid Certificate",
			input:    invalidCERT,
			expected: x509certs.ErrParsePKCS7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoder := x509certs.New()
			_, err := decoder.Decode([]byte(tt.input))
			assert.ErrorIs(t, err, tt.expected, "expected specific error")
		})
	}
}

func TestDecodeDER_Invalid(t *testing.T) {
	decoder := x509certs.New()
	leaf := testcert.Issue(t, testcert.Options{Subject: pkix.Name{CommonName: "truncated.example"}}, nil)

	t.Run("Empty", func(t *testing.T) {
		_, err := decoder.DecodeDER(nil)
		assert.ErrorIs(t, err, x509certs.ErrEmptyInput)
	})

	t.Run("Truncated", func(t *testing.T) {
		_, err := decoder.DecodeDER(leaf.DER[:len(leaf.DER)-10])
		require.ErrorIs(t, err, x509certs.ErrParseCertificate)
		assert.Greater(t, len(err.Error()), len(x509certs.ErrParseCertificate.Error()), "parser detail is kept")
	})

	t.Run("PEM Is Not DER", func(t *testing.T) {
		_, err := decoder.DecodeDER(testcert.PEM(leaf.DER))
		assert.ErrorIs(t, err, x509certs.ErrParseCertificate)
	})
}

func TestDecodeMultiple_Invalid(t *testing.T) {
	decoder := x509certs.New()

	_, err := decoder.DecodeMultiple(nil)
	assert.ErrorIs(t, err, x509certs.ErrEmptyInput)

	_, err = decoder.DecodeMultiple([]byte("definitely not a certificate"))
	assert.ErrorIs(t, err, x509certs.ErrParsePKCS7)

	_, err = decoder.DecodeMultiple([]byte(invalidCERT))
	assert.ErrorIs(t, err, x509certs.ErrParseCertificate)
}
