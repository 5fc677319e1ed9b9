// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package mcpserver exposes TLS certificate chain inspection over the [MCP]
// stdio transport.
//
// Tools:
//   - inspect_remote_certificate: handshake with one host and summarize its chain
//   - inspect_remote_certificates: the same for several hosts, concurrently
//   - inspect_certificate: summarize a PEM, DER or PKCS#7 bundle given as a path or base64
//
// Results are rendered with the report package, so every output format of
// the command line is available to clients too.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
package mcpserver
