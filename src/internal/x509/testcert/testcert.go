// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package testcert issues throwaway certificates for tests.
//
// Like [net/http/httptest], it is a test-only helper package: it takes a
// [testing.TB] and must only be imported from _test.go files. Production
// code never links it.
//
// Certificates are generated on the fly so tests never depend on a live
// host or on a fixture that silently expires.
package testcert

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"net"
	"testing"
	"time"
)

// KeyType selects the key algorithm of an issued certificate.
type KeyType int

const (
	// ECDSA issues P-256 keys, signed as ecdsa-with-SHA256.
	ECDSA KeyType = iota
	// RSA issues 2048-bit keys, signed as sha256WithRSAEncryption.
	RSA
)

// Options describes the certificate to issue.
type Options struct {
	Subject     pkix.Name
	RawSubject  []byte // takes precedence over Subject when set
	DNSNames    []string
	IPAddresses []net.IP
	// ExtraExtensions are copied verbatim; a SAN extension here replaces the generated one.
	ExtraExtensions []pkix.Extension
	NotBefore       time.Time
	NotAfter        time.Time
	IsCA            bool
	// OmitBasicConstraints leaves the basic-constraints extension out entirely.
	OmitBasicConstraints bool
	Key                  KeyType
}

// Issued is a generated certificate together with its key.
type Issued struct {
	Cert *x509.Certificate
	DER  []byte
	Key  crypto.Signer
}

// Issue creates a certificate from opts, signed by parent or self-signed when parent is nil.
func Issue(tb testing.TB, opts Options, parent *Issued) *Issued {
	tb.Helper()

	key := newKey(tb, opts.Key)

	serial, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), 62))
	if err != nil {
		tb.Fatalf("testcert: serial: %v", err)
	}

	notBefore, notAfter := opts.NotBefore, opts.NotAfter
	if notBefore.IsZero() {
		notBefore = time.Now().Add(-time.Hour)
	}
	if notAfter.IsZero() {
		notAfter = time.Now().Add(90 * 24 * time.Hour)
	}

	tmpl := &x509.Certificate{
		SerialNumber:          serial,
		Subject:               opts.Subject,
		RawSubject:            opts.RawSubject,
		DNSNames:              opts.DNSNames,
		IPAddresses:           opts.IPAddresses,
		ExtraExtensions:       opts.ExtraExtensions,
		NotBefore:             notBefore,
		NotAfter:              notAfter,
		BasicConstraintsValid: !opts.OmitBasicConstraints,
		IsCA:                  opts.IsCA && !opts.OmitBasicConstraints,
		KeyUsage:              x509.KeyUsageDigitalSignature,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
	}
	if tmpl.IsCA {
		tmpl.KeyUsage |= x509.KeyUsageCertSign | x509.KeyUsageCRLSign
		tmpl.ExtKeyUsage = nil
	}

	signerCert, signerKey := tmpl, key
	if parent != nil {
		signerCert, signerKey = parent.Cert, parent.Key
	}

	der, err := x509.CreateCertificate(rand.Reader, tmpl, signerCert, key.Public(), signerKey)
	if err != nil {
		tb.Fatalf("testcert: create certificate: %v", err)
	}

	cert, err := x509.ParseCertificate(der)
	if err != nil {
		tb.Fatalf("testcert: parse certificate: %v", err)
	}

	return &Issued{Cert: cert, DER: der, Key: key}
}

func newKey(tb testing.TB, kt KeyType) crypto.Signer {
	tb.Helper()

	var (
		key crypto.Signer
		err error
	)
	switch kt {
	case RSA:
		key, err = rsa.GenerateKey(rand.Reader, 2048)
	default:
		key, err = ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	}
	if err != nil {
		tb.Fatalf("testcert: generate key: %v", err)
	}
	return key
}

// PEM encodes the given DER certificates as a PEM bundle.
func PEM(ders ...[]byte) []byte {
	var out []byte
	for _, der := range ders {
		out = append(out, pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})...)
	}
	return out
}

// TLSCertificate builds a server certificate presenting leaf followed by chain.
func TLSCertificate(leaf *Issued, chain ...*Issued) tls.Certificate {
	raw := [][]byte{leaf.DER}
	for _, c := range chain {
		raw = append(raw, c.DER)
	}
	return tls.Certificate{
		Certificate: raw,
		PrivateKey:  leaf.Key,
		Leaf:        leaf.Cert,
	}
}

// Serve starts a TLS listener on 127.0.0.1 presenting cert and completing
// handshakes until the test ends. It returns the listening port.
func Serve(tb testing.TB, cert tls.Certificate) int {
	tb.Helper()

	ln, err := tls.Listen("tcp", "127.0.0.1:0", &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
	})
	if err != nil {
		tb.Fatalf("testcert: listen: %v", err)
	}
	tb.Cleanup(func() { ln.Close() })

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			go func(c net.Conn) {
				defer c.Close()
				_ = c.SetDeadline(time.Now().Add(5 * time.Second))
				if tc, ok := c.(*tls.Conn); ok {
					_ = tc.Handshake()
				}
			}(conn)
		}
	}()

	return ln.Addr().(*net.TCPAddr).Port
}

// ExampleChain issues the leaf/CA pair used across the inspector tests:
// a CA "Example CA" valid 2020-01-01..2035-01-01 and a leaf "example.com"
// valid 2024-01-01..2030-01-01.
func ExampleChain(tb testing.TB) (leaf, ca *Issued) {
	tb.Helper()

	ca = Issue(tb, Options{
		Subject: pkix.Name{
			CommonName:   "Example CA",
			Organization: []string{"Example Org"},
			Country:      []string{"US"},
		},
		NotBefore: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		NotAfter:  time.Date(2035, 1, 1, 0, 0, 0, 0, time.UTC),
		IsCA:      true,
		Key:       RSA,
	}, nil)

	leaf = Issue(tb, Options{
		Subject: pkix.Name{
			CommonName:   "example.com",
			Organization: []string{"Example Inc"},
			Country:      []string{"US"},
			Province:     []string{"California"},
			Locality:     []string{"San Francisco"},
		},
		DNSNames:  []string{"example.com", "www.example.com"},
		NotBefore: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		NotAfter:  time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
	}, ca)

	return leaf, ca
}
