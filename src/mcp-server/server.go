// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"
	"io"

	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/H0llyW00dzZ/tls-cert-inspector/src/config"
	"github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/scanner"
)

const serverName = "TLS Certificate Inspector"

// NewServer builds the MCP server with all tools, resources and prompts registered.
//
// Parameters:
//   - version: Version reported to clients during initialization
//   - cfg: Validated configuration providing scan defaults
//   - log: Logger for handler diagnostics, nil disables logging
//
// Returns:
//   - *server.MCPServer: Server ready to be attached to a transport
//   - error: Error if the instructions template cannot be rendered
func NewServer(version string, cfg *config.Config, log *zap.Logger) (*server.MCPServer, error) {
	if log == nil {
		log = zap.NewNop()
	}

	sc := scanner.New(cfg.Scan.Timeout, cfg.Scan.Concurrency, log.Named("scanner"))
	tools := createTools(newToolHandlers(cfg, sc))

	instructions, err := loadInstructions(tools)
	if err != nil {
		return nil, fmt.Errorf("failed to load instructions: %w", err)
	}

	s := server.NewMCPServer(
		serverName,
		version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithInstructions(instructions),
	)

	s.AddTools(tools...)
	for _, r := range createResources(version) {
		s.AddResource(r.Resource, r.Handler)
	}
	for _, p := range createPrompts(cfg) {
		s.AddPrompt(p.Prompt, p.Handler)
	}

	return s, nil
}

// Run serves MCP over the given reader and writer until ctx is canceled
// or the input is closed.
//
// Stdout belongs to the protocol, so nothing but MCP messages may be written to out;
// log must point elsewhere.
func Run(ctx context.Context, version string, cfg *config.Config, log *zap.Logger, in io.Reader, out io.Writer) error {
	if log == nil {
		log = zap.NewNop()
	}

	s, err := NewServer(version, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to build server: %w", err)
	}

	stdioServer := server.NewStdioServer(s)
	stdioServer.SetErrorLogger(zap.NewStdLog(log))

	log.Info("MCP server started", zap.String("version", version))

	errChan := make(chan error, 1)
	go func() {
		errChan <- stdioServer.Listen(ctx, in, out)
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		return fmt.Errorf("server shutdown: %w", ctx.Err())
	}
}
