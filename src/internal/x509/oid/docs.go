// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509oid resolves [X.509] object identifiers to short human-readable names.
// It covers the distinguished-name attribute types and signature algorithms
// found in publicly trusted certificates and fails on anything it does not know.
//
// [X.509]: https://grokipedia.com/page/X.509
package x509oid
