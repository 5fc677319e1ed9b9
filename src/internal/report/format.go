// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package report

import (
	"errors"
	"fmt"
	"strings"
)

// Format selects how results are rendered.
type Format string

const (
	JSON     Format = "json"
	YAML     Format = "yaml"
	Table    Format = "table"
	Markdown Format = "markdown"
	Tree     Format = "tree"
)

// ErrUnknownFormat is returned for a format name that is not supported.
var ErrUnknownFormat = errors.New("report: unknown output format")

var formats = []Format{JSON, YAML, Table, Markdown, Tree}

// Formats lists the supported format names.
func Formats() []string {
	names := make([]string, 0, len(formats))
	for _, f := range formats {
		names = append(names, string(f))
	}
	return names
}

// ParseFormat returns the Format named by s, case-insensitively.
// "md" is accepted as an alias for markdown and "yml" for yaml.
func ParseFormat(s string) (Format, error) {
	switch name := strings.ToLower(strings.TrimSpace(s)); name {
	case "md":
		return Markdown, nil
	case "yml":
		return YAML, nil
	default:
		for _, f := range formats {
			if string(f) == name {
				return f, nil
			}
		}
	}
	return "", fmt.Errorf("%w: %q (supported: %s)", ErrUnknownFormat, s, strings.Join(Formats(), ", "))
}
