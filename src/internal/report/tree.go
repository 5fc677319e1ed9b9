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

	"github.com/charmbracelet/lipgloss"
)

const (
	branch     = "├── "
	lastBranch = "└── "
	pipe       = "│   "
	space      = "    "
)

// treeStyles colors the tree. Styles built from a renderer on a non-terminal
// writer render plain text.
type treeStyles struct {
	header  lipgloss.Style
	valid   lipgloss.Style
	invalid lipgloss.Style
	muted   lipgloss.Style
}

func newTreeStyles(r *lipgloss.Renderer) treeStyles {
	return treeStyles{
		header:  r.NewStyle().Bold(true),
		valid:   r.NewStyle().Foreground(lipgloss.Color("#22C55E")),
		invalid: r.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true),
		muted:   r.NewStyle().Foreground(lipgloss.Color("#6B7280")),
	}
}

// writeTree renders each result as a small ASCII tree:
//
//	example.com:443 (TLS 1.3, TLS_AES_128_GCM_SHA256)
//	├── [✓] example.com (Server) expires 2030-01-01, 1826 day(s)
//	│   └── DNS: example.com, www.example.com
//	└── [✓] Example CA (Intermediate CA) expires 2035-01-01, 3652 day(s)
//	    └── Issuer: Example CA
func writeTree(w io.Writer, results []Result, st treeStyles) {
	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}

		header := r.Target
		if r.TLSVersion != "" {
			header += fmt.Sprintf(" (%s, %s)", r.TLSVersion, r.CipherSuite)
		}
		fmt.Fprintln(w, st.header.Render(header))

		if r.Failed() {
			fmt.Fprintf(w, "%s%s\n", lastBranch, st.invalid.Render("error: "+r.Error))
			continue
		}

		s := r.Summary.Server
		if s.IsZero() {
			fmt.Fprintf(w, "%s%s\n", branch, st.muted.Render("[-] (none in chain) ("+roleServer+")"))
		} else {
			fmt.Fprintf(w, "%s%s\n", branch, st.nodeLine(roleServer, s.CommonName, s.IsValid, s.NotAfter, s.TimeToExpiration, r.InspectedAt))
			if len(s.SubjectAlternativeNames) > 0 {
				fmt.Fprintf(w, "%s%sDNS: %s\n", pipe, lastBranch, strings.Join(s.SubjectAlternativeNames, ", "))
			}
		}

		ca := r.Summary.Intermediate
		if ca.IsZero() {
			fmt.Fprintf(w, "%s%s\n", lastBranch, st.muted.Render("[-] (none in chain) ("+roleIntermediate+")"))
		} else {
			fmt.Fprintf(w, "%s%s\n", lastBranch, st.nodeLine(roleIntermediate, ca.CommonName, ca.IsValid, ca.NotAfter, ca.TimeToExpiration, r.InspectedAt))
			if ca.IssuerCommonName != "" {
				fmt.Fprintf(w, "%s%sIssuer: %s\n", space, lastBranch, ca.IssuerCommonName)
			}
		}
	}
}

func (st treeStyles) nodeLine(role, commonName string, valid bool, notAfter time.Time, tte string, inspectedAt time.Time) string {
	status := st.valid.Render("[✓]")
	if !valid {
		status = st.invalid.Render("[✗]")
	}
	return fmt.Sprintf("%s %s (%s) expires %s, %s", status, commonName, role, notAfter.UTC().Format(dateLayout), expiresIn(tte, notAfter, inspectedAt))
}
