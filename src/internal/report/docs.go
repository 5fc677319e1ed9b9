// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package report renders certificate chain summaries for people and programs.
//
// Supported formats are JSON, [YAML], a plain text table, a [Markdown] table
// and an ASCII tree. Rendering happens into a pooled buffer, so a writer
// never receives a partially rendered report.
//
// [YAML]: https://yaml.org/spec/1.2.2/
// [Markdown]: https://github.github.com/gfm/#tables-extension-
package report
