// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509inspect summarizes the certificate chain presented during a TLS handshake.
// It classifies each certificate as leaf or certificate authority using the
// basic-constraints extension, extracts a fixed set of identity and validity
// fields, and reports whether each certificate is currently valid and how many
// days it has left.
//
// The package performs no I/O and no trust-path validation: expired or
// untrusted certificates are summarized, not rejected.
package x509inspect
