// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509chain

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/idna"
)

var (
	// ErrInvalidHost is returned when a host name is empty or not a valid IDNA name.
	ErrInvalidHost = errors.New("x509chain: invalid host")
	// ErrInvalidPort is returned when a port is outside 1..65535.
	ErrInvalidPort = errors.New("x509chain: invalid port")
	// ErrNoPeerCertificates is returned when the server completes a handshake without presenting certificates.
	ErrNoPeerCertificates = errors.New("x509chain: no certificates received from server")
)

// RemoteChain is the certificate chain a server presented during one TLS handshake.
type RemoteChain struct {
	Host        string              // Host as dialed, after IDNA normalization
	Port        int                 // Port as dialed
	Raw         [][]byte            // DER encodings in server order
	Certs       []*x509.Certificate // Parsed form of Raw, same order
	TLSVersion  string              // Negotiated protocol version, e.g. "TLS 1.3"
	CipherSuite string              // Negotiated cipher suite name
}

// Address returns the host:port the chain was fetched from.
func (rc *RemoteChain) Address() string {
	return net.JoinHostPort(rc.Host, strconv.Itoa(rc.Port))
}

// FetchRemoteChain establishes a TLS connection to the target host and
// returns the certificates presented during the handshake.
//
// The connection is made only to observe the chain: server certificates are
// not verified against any root pool, so expired or self-signed chains are
// returned as-is. SNI is sent for host names and omitted for IP literals.
//
// Parameters:
//   - ctx: Context for cancellation and timeouts
//   - hostname: Host name or IP literal, Unicode names are converted with IDNA
//   - port: TCP port, 1..65535
//   - timeout: Upper bound for connect plus handshake, zero means no limit beyond ctx
//
// Returns:
//   - *RemoteChain: Presented certificates and negotiated parameters
//   - error: Error if the host is invalid, the dial or handshake fails, or no certificates were presented
//
// Thread Safety: Safe for concurrent use.
func FetchRemoteChain(ctx context.Context, hostname string, port int, timeout time.Duration) (*RemoteChain, error) {
	host, err := NormalizeHost(hostname)
	if err != nil {
		return nil, err
	}
	if port < 1 || port > 65535 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPort, port)
	}

	cfg := &tls.Config{
		// We just want the cert chain, not to verify
		InsecureSkipVerify: true,
	}
	if net.ParseIP(host) == nil {
		cfg.ServerName = host
	}

	dialer := &tls.Dialer{
		NetDialer: &net.Dialer{Timeout: timeout},
		Config:    cfg,
	}

	addr := net.JoinHostPort(host, strconv.Itoa(port))
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", addr, err)
	}
	defer conn.Close()

	state := conn.(*tls.Conn).ConnectionState()
	if len(state.PeerCertificates) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoPeerCertificates, addr)
	}

	rc := &RemoteChain{
		Host:        host,
		Port:        port,
		Raw:         make([][]byte, 0, len(state.PeerCertificates)),
		Certs:       state.PeerCertificates,
		TLSVersion:  tls.VersionName(state.Version),
		CipherSuite: tls.CipherSuiteName(state.CipherSuite),
	}
	for _, cert := range state.PeerCertificates {
		rc.Raw = append(rc.Raw, cert.Raw)
	}

	return rc, nil
}

// NormalizeHost prepares a host for dialing.
//
// Brackets around IPv6 literals are removed, IP literals are returned in
// canonical form and host names are lower-cased and converted to their
// ASCII (punycode) form with a trailing dot removed.
func NormalizeHost(hostname string) (string, error) {
	host := strings.TrimSpace(hostname)
	host = strings.TrimSuffix(strings.TrimPrefix(host, "["), "]")
	if host == "" {
		return "", fmt.Errorf("%w: empty host", ErrInvalidHost)
	}

	if ip := net.ParseIP(host); ip != nil {
		return ip.String(), nil
	}

	ascii, err := idna.Lookup.ToASCII(strings.TrimSuffix(host, "."))
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidHost, hostname, err)
	}
	return ascii, nil
}

// ParseTarget splits a "host[:port]" target, using defaultPort when none is given.
// IPv6 literals with a port must be bracketed, e.g. "[2001:db8::1]:8443".
func ParseTarget(target string, defaultPort int) (string, int, error) {
	target = strings.TrimSpace(target)

	host, portStr, err := net.SplitHostPort(target)
	if err != nil {
		// No port, or a bare IPv6 literal.
		host, portStr = target, ""
	}

	port := defaultPort
	if portStr != "" {
		port, err = strconv.Atoi(portStr)
		if err != nil {
			return "", 0, fmt.Errorf("%w: %q", ErrInvalidPort, portStr)
		}
	}
	if port < 1 || port > 65535 {
		return "", 0, fmt.Errorf("%w: %d", ErrInvalidPort, port)
	}

	host, err = NormalizeHost(host)
	if err != nil {
		return "", 0, err
	}
	return host, port, nil
}
