// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package config loads and validates the inspector configuration.
//
// Values come from, in increasing priority: built-in defaults, a YAML file
// (tls-cert-inspector.yaml in the working directory or the file named by
// --config), TLSCI_ prefixed environment variables (TLSCI_SCAN_TIMEOUT for
// scan.timeout) and finally command-line flags bound by the CLI.
package config
