// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix provides [POSIX]-style helpers for process-level details that
// differ between operating systems.
//
// Key functions:
//   - ExecutableName: The name the program was invoked as, for usage strings
//
// [POSIX]: https://grokipedia.com/page/POSIX
package posix
