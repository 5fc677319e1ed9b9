// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// tls-cert-inspector is a command-line tool that summarizes the certificate
// chain presented by TLS servers.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/tls-cert-inspector/cmd/tls-cert-inspector@latest
//
// # Usage
//
//	tls-cert-inspector remote HOST[:PORT]... [FLAGS]
//	tls-cert-inspector file PATH... [FLAGS]
//	tls-cert-inspector scan [HOST[:PORT]...] [FLAGS]
//	tls-cert-inspector mcp
//	tls-cert-inspector version
//
// # Global Flags
//
//	-c, --config      Config file (default: ./tls-cert-inspector.yaml)
//	-o, --output      Output format: json, yaml, table, markdown, tree (default: table)
//	    --timeout     TLS handshake timeout (default: 10s)
//	    --port        Port for targets given without one (default: 443)
//	    --log-level   debug, info, warn, error (default: info)
//	    --log-format  text, json (default: text)
//
// # Examples
//
// Inspect a server:
//
//	tls-cert-inspector remote example.com
//
// Produce JSON output and keep the presented chain:
//
//	tls-cert-inspector remote example.com -o json --save-chain chain.pem
//
// Watch the configured targets and export Prometheus metrics:
//
//	tls-cert-inspector scan --interval 5m --metrics-addr 127.0.0.1:9402
//
// # Exit Status
//
// 0 when every target was inspected, 1 on any failure and 130 when interrupted.
package main
