// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"strings"
)

// ExecutableName returns the base name the program was invoked as, without a
// ".exe" suffix, or fallback when os.Args carries no name.
//
// Both '/' and '\' are treated as separators, so a Windows path yields the same
// name on every platform:
//   - "/usr/local/bin/tls-cert-inspector" gives "tls-cert-inspector"
//   - `C:\bin\tls-cert-inspector.exe` gives "tls-cert-inspector"
func ExecutableName(fallback string) string {
	if len(os.Args) == 0 {
		return fallback
	}
	return baseName(os.Args[0], fallback)
}

func baseName(arg0, fallback string) string {
	name := strings.TrimRight(arg0, `/\`)
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}

	name = strings.TrimSuffix(name, ".exe")
	if name == "" {
		return fallback
	}
	return name
}
