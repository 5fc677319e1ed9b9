// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509chain fetches the [X.509] certificate chain a TLS server presents.
// It provides capabilities to:
//   - Perform a TLS handshake with context-aware cancellation and a dial timeout.
//   - Normalize internationalized host names with [IDNA] before dialing.
//   - Parse "host[:port]" targets with a default port.
//
// The chain is observed, never verified: expired and self-signed chains are
// returned unchanged so they can be inspected.
//
// [X.509]: https://grokipedia.com/page/X.509
// [IDNA]: https://grokipedia.com/page/Internationalized_domain_name
package x509chain
