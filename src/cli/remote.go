// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/tls-cert-inspector/src/config"
	"github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/scanner"
	x509certs "github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/x509/certs"
	x509chain "github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/x509/chain"
)

// ErrSaveChainMultipleTargets is returned when --save-chain is combined with several targets.
var ErrSaveChainMultipleTargets = errors.New("--save-chain requires exactly one target")

func (a *app) newRemoteCommand() *cobra.Command {
	var saveChain string

	cmd := &cobra.Command{
		Use:   "remote HOST[:PORT]...",
		Short: "Inspect the certificate chain presented by TLS servers",
		Example: `  tls-cert-inspector remote example.com
  tls-cert-inspector remote example.com:8443 -o json
  tls-cert-inspector remote example.com --save-chain chain.pem`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if saveChain != "" && len(args) != 1 {
				return ErrSaveChainMultipleTargets
			}

			targets, err := parseTargets(args, a.cfg.Scan.Port)
			if err != nil {
				return err
			}

			sc := scanner.New(a.cfg.Scan.Timeout, a.cfg.Scan.Concurrency, a.zap)
			results := sc.ScanAll(cmd.Context(), targets)

			if saveChain != "" && len(results[0].Raw) > 0 {
				if err := savePEM(saveChain, results[0].Raw); err != nil {
					return err
				}
				a.log.Printf("Saved %d certificate(s) to %s", len(results[0].Raw), saveChain)
			}

			return a.write(cmd.OutOrStdout(), results)
		},
	}

	cmd.Flags().StringVar(&saveChain, "save-chain", "", "write the presented chain as PEM to this file")
	cmd.Flags().Int("concurrency", 5, "maximum number of concurrent handshakes")

	return cmd
}

// parseTargets turns HOST[:PORT] arguments into targets.
func parseTargets(args []string, defaultPort int) ([]config.TargetConfig, error) {
	targets := make([]config.TargetConfig, 0, len(args))
	for _, arg := range args {
		host, port, err := x509chain.ParseTarget(arg, defaultPort)
		if err != nil {
			return nil, fmt.Errorf("invalid target %q: %w", arg, err)
		}
		targets = append(targets, config.TargetConfig{Host: host, Port: port})
	}
	return targets, nil
}

// savePEM writes raw DER certificates as a PEM bundle, in the order the server sent them.
func savePEM(path string, raw [][]byte) error {
	decoder := x509certs.New()

	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	for _, der := range raw {
		cert, err := decoder.DecodeDER(der)
		if err != nil {
			return err
		}
		buf.Write(decoder.EncodePEM(cert))
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to save chain: %w", err)
	}
	return nil
}
