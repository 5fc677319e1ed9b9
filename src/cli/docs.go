// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for the TLS certificate inspector.
//
// It implements a Cobra-based command tree:
//   - remote: inspect the chain presented by one or more TLS servers
//   - file: inspect PEM, DER or PKCS#7 bundles on disk
//   - scan: inspect configured targets once or on an interval, with Prometheus metrics
//   - mcp: serve the inspection tools to MCP clients over stdio
//   - version: print build information
//
// Configuration comes from a YAML file, TLSCI_ environment variables and flags,
// in increasing order of precedence. Results go to stdout in the selected format;
// notices and diagnostics go to stderr.
package cli
