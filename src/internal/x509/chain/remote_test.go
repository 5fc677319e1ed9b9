// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509chain_test

import (
	"context"
	"crypto/x509/pkix"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	x509chain "github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/x509/chain"
	"github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/x509/testcert"
)

func TestFetchRemoteChain(t *testing.T) {
	leaf, ca := testcert.ExampleChain(t)
	port := testcert.Serve(t, testcert.TLSCertificate(leaf, ca))

	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "Server Order Preserved",
			testFunc: func(t *testing.T) {
				rc, err := x509chain.FetchRemoteChain(context.Background(), "127.0.0.1", port, 5*time.Second)
				require.NoError(t, err, "FetchRemoteChain() error")

				require.Len(t, rc.Raw, 2)
				assert.Equal(t, leaf.DER, rc.Raw[0])
				assert.Equal(t, ca.DER, rc.Raw[1])
				require.Len(t, rc.Certs, 2)
				assert.Equal(t, "example.com", rc.Certs[0].Subject.CommonName)
			},
		},
		{
			name: "Negotiated Parameters",
			testFunc: func(t *testing.T) {
				rc, err := x509chain.FetchRemoteChain(context.Background(), "127.0.0.1", port, 5*time.Second)
				require.NoError(t, err, "FetchRemoteChain() error")

				assert.Contains(t, rc.TLSVersion, "TLS 1.")
				assert.NotEmpty(t, rc.CipherSuite)
				assert.Equal(t, net.JoinHostPort("127.0.0.1", strconv.Itoa(port)), rc.Address())
			},
		},
		{
			name: "Expired Chain Is Still Returned",
			testFunc: func(t *testing.T) {
				expired := testcert.Issue(t, testcert.Options{
					Subject:   pkix.Name{CommonName: "expired.example"},
					NotBefore: time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC),
					NotAfter:  time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC),
				}, ca)
				expiredPort := testcert.Serve(t, testcert.TLSCertificate(expired, ca))

				rc, err := x509chain.FetchRemoteChain(context.Background(), "127.0.0.1", expiredPort, 5*time.Second)
				require.NoError(t, err, "an expired chain is observed, not rejected")
				assert.Equal(t, expired.DER, rc.Raw[0])
			},
		},
		{
			name: "Canceled Context",
			testFunc: func(t *testing.T) {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()

				_, err := x509chain.FetchRemoteChain(ctx, "127.0.0.1", port, 5*time.Second)
				assert.ErrorIs(t, err, context.Canceled)
			},
		},
		{
			name: "Connection Refused",
			testFunc: func(t *testing.T) {
				ln, err := net.Listen("tcp", "127.0.0.1:0")
				require.NoError(t, err)
				closedPort := ln.Addr().(*net.TCPAddr).Port
				require.NoError(t, ln.Close())

				_, err = x509chain.FetchRemoteChain(context.Background(), "127.0.0.1", closedPort, time.Second)
				assert.Error(t, err)
			},
		},
		{
			name: "Invalid Port",
			testFunc: func(t *testing.T) {
				_, err := x509chain.FetchRemoteChain(context.Background(), "127.0.0.1", 0, time.Second)
				assert.ErrorIs(t, err, x509chain.ErrInvalidPort)
			},
		},
		{
			name: "Empty Host",
			testFunc: func(t *testing.T) {
				_, err := x509chain.FetchRemoteChain(context.Background(), "  ", 443, time.Second)
				assert.ErrorIs(t, err, x509chain.ErrInvalidHost)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.testFunc(t)
		})
	}
}

func TestNormalizeHost(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"ASCII", "Example.COM", "example.com"},
		{"Trailing Dot", "example.com.", "example.com"},
		{"Unicode", "bücher.example", "xn--bcher-kva.example"},
		{"IPv4", "127.0.0.1", "127.0.0.1"},
		{"Bracketed IPv6", "[2001:DB8::1]", "2001:db8::1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := x509chain.NormalizeHost(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := x509chain.NormalizeHost("")
	assert.ErrorIs(t, err, x509chain.ErrInvalidHost)
}

func TestParseTarget(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		wantHost string
		wantPort int
		wantErr  error
	}{
		{"Host Only", "example.com", "example.com", 443, nil},
		{"Host And Port", "example.com:8443", "example.com", 8443, nil},
		{"Bare IPv6", "2001:db8::1", "2001:db8::1", 443, nil},
		{"Bracketed IPv6 With Port", "[2001:db8::1]:853", "2001:db8::1", 853, nil},
		{"Port Not Numeric", "example.com:https", "", 0, x509chain.ErrInvalidPort},
		{"Port Out Of Range", "example.com:70000", "", 0, x509chain.ErrInvalidPort},
		{"Empty", "", "", 0, x509chain.ErrInvalidHost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host, port, err := x509chain.ParseTarget(tt.target, 443)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHost, host)
			assert.Equal(t, tt.wantPort, port)
		})
	}
}
