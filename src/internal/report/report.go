// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/helper/gc"
	x509inspect "github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/x509/inspect"
)

// Result is the outcome of inspecting one target.
//
// Exactly one of Summary and Error is set.
type Result struct {
	Target      string                    `json:"target" yaml:"target"`
	TLSVersion  string                    `json:"tls_version,omitempty" yaml:"tls_version,omitempty"`
	CipherSuite string                    `json:"cipher_suite,omitempty" yaml:"cipher_suite,omitempty"`
	InspectedAt time.Time                 `json:"inspected_at" yaml:"inspected_at"`
	Summary     *x509inspect.ChainSummary `json:"summary,omitempty" yaml:"summary,omitempty"`
	Error       string                    `json:"error,omitempty" yaml:"error,omitempty"`

	// Raw holds the DER certificates the summary was extracted from.
	Raw [][]byte `json:"-" yaml:"-"`
}

// Failed reports whether the inspection of the target failed.
func (r Result) Failed() bool { return r.Summary == nil }

// Write renders results to w in the given format.
//
// JSON and YAML emit a single object for one result and a list otherwise.
// The tree format is colored when w is a terminal.
// Nothing is written to w if rendering fails.
//
// Parameters:
//   - w: Destination writer
//   - format: Output format
//   - results: Inspection results in display order
//
// Returns:
//   - error: Error if the format is unknown, rendering fails or w fails
func Write(w io.Writer, format Format, results ...Result) error {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	var err error
	switch format {
	case JSON:
		err = writeJSON(buf, results)
	case YAML:
		err = writeYAML(buf, results)
	case Table:
		err = writeTable(buf, results, false)
	case Markdown:
		err = writeTable(buf, results, true)
	case Tree:
		writeTree(buf, results, newTreeStyles(lipgloss.NewRenderer(w)))
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
	if err != nil {
		return err
	}

	_, err = buf.WriteTo(w)
	return err
}

// payload returns the value serialized for structured formats.
func payload(results []Result) any {
	if len(results) == 1 {
		return results[0]
	}
	if results == nil {
		return []Result{}
	}
	return results
}

func writeJSON(w io.Writer, results []Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload(results)); err != nil {
		return fmt.Errorf("report: encode json: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, results []Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(payload(results)); err != nil {
		return fmt.Errorf("report: encode yaml: %w", err)
	}
	return enc.Close()
}
