// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

const (
	roleServer       = "Server"
	roleIntermediate = "Intermediate CA"
	dateLayout       = "2006-01-02"
	notPresent       = "-"
)

var tableHeaders = []string{"Target", "Role", "Common Name", "Issuer", "Signature Algorithm", "Not After", "Valid", "Expires In", "DNS Names"}

func writeTable(w io.Writer, results []Result, markdown bool) error {
	var opts []tablewriter.Option
	if markdown {
		opts = append(opts, tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})))
	}
	table := tablewriter.NewTable(w, opts...)
	table.Header(tableHeaders)

	if err := table.Bulk(tableRows(results)); err != nil {
		return fmt.Errorf("report: table rows: %w", err)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("report: render table: %w", err)
	}
	return nil
}

// tableRows flattens results into one row per certificate slot, or one row per failed target.
func tableRows(results []Result) [][]string {
	rows := make([][]string, 0, 2*len(results))
	for _, r := range results {
		if r.Failed() {
			rows = append(rows, []string{r.Target, "error", r.Error, notPresent, notPresent, notPresent, notPresent, notPresent, notPresent})
			continue
		}

		s := r.Summary.Server
		if s.IsZero() {
			rows = append(rows, emptyRow(r.Target, roleServer))
		} else {
			rows = append(rows, []string{
				r.Target, roleServer, s.CommonName, s.IssuerCommonName, s.SignatureAlgorithm,
				s.NotAfter.UTC().Format(dateLayout), yesNo(s.IsValid),
				expiresIn(s.TimeToExpiration, s.NotAfter, r.InspectedAt),
				strings.Join(s.SubjectAlternativeNames, ", "),
			})
		}

		ca := r.Summary.Intermediate
		if ca.IsZero() {
			rows = append(rows, emptyRow(r.Target, roleIntermediate))
		} else {
			rows = append(rows, []string{
				r.Target, roleIntermediate, ca.CommonName, ca.IssuerCommonName, ca.SignatureAlgorithm,
				ca.NotAfter.UTC().Format(dateLayout), yesNo(ca.IsValid),
				expiresIn(ca.TimeToExpiration, ca.NotAfter, r.InspectedAt),
				notPresent,
			})
		}
	}
	return rows
}

func emptyRow(target, role string) []string {
	return []string{target, role, "(none in chain)", notPresent, notPresent, notPresent, notPresent, notPresent, notPresent}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// expiresIn prefers the evaluated time to expiration and falls back to "expired".
func expiresIn(tte string, notAfter, inspectedAt time.Time) string {
	if tte != "" {
		return tte
	}
	if !inspectedAt.IsZero() && !notAfter.After(inspectedAt) {
		return "expired"
	}
	return notPresent
}
