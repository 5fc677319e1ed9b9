// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/tls-cert-inspector/src/logger"
	mcpserver "github.com/H0llyW00dzZ/tls-cert-inspector/src/mcp-server"
)

func (a *app) newMCPCommand() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve certificate inspection tools over MCP on stdin/stdout",
		Long: `Serve certificate inspection tools to MCP clients over stdin/stdout.

Stdout carries the protocol; diagnostics are written to stderr as JSON lines.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sl := logger.NewStructuredLogger(cmd.ErrOrStderr(), quiet)

			err := mcpserver.Run(cmd.Context(), a.version, a.cfg, sl.Zap(), cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			sl.Println("MCP server stopped")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress diagnostics on stderr")

	return cmd
}
