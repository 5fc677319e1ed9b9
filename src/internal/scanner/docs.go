// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package scanner inspects many TLS endpoints concurrently.
//
// A Scanner fetches each target's chain, extracts the server and
// intermediate summaries and records the outcome in the optional metrics.
// Failures are reported per target and never abort the other targets.
package scanner
