// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/report"
	x509certs "github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/x509/certs"
	x509inspect "github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/x509/inspect"
)

func (a *app) newFileCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "file PATH...",
		Short: "Inspect certificate bundles stored on disk",
		Long: `Inspect certificate bundles stored on disk.

Each file may hold PEM certificates, concatenated DER certificates or a
PKCS#7 container. Certificates are classified the same way as a server chain.`,
		Example: `  tls-cert-inspector file fullchain.pem
  tls-cert-inspector file chain.p7b -o tree`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			decoder := x509certs.New()
			inspector := x509inspect.New(decoder, nil)

			results := make([]report.Result, 0, len(args))
			for _, path := range args {
				results = append(results, a.inspectFile(decoder, inspector, path))
			}

			return a.write(cmd.OutOrStdout(), results)
		},
	}
}

func (a *app) inspectFile(decoder *x509certs.Certificate, inspector *x509inspect.Inspector, path string) report.Result {
	result := report.Result{Target: path, InspectedAt: time.Now().UTC()}

	raw, err := readBundle(decoder, path)
	if err != nil {
		result.Error = err.Error()
		a.zap.Debug("read failed", zap.String("path", path), zap.Error(err))
		return result
	}
	result.Raw = raw

	summary, err := inspector.Extract(raw, result.InspectedAt)
	if err != nil {
		result.Error = err.Error()
		a.zap.Warn("extraction failed", zap.String("path", path), zap.Error(err))
		return result
	}
	result.Summary = summary

	return result
}

// readBundle reads a certificate file through a pooled buffer and decodes it.
func readBundle(decoder *x509certs.Certificate, path string) ([][]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open certificate file: %w", err)
	}
	defer f.Close()

	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	if _, err := buf.ReadFrom(f); err != nil {
		return nil, fmt.Errorf("failed to read certificate file: %w", err)
	}

	// Parsed certificates alias their input, and the buffer goes back to the pool.
	return decoder.DecodeBundle(bytes.Clone(buf.Bytes()))
}
