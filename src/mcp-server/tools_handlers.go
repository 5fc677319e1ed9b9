// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/H0llyW00dzZ/tls-cert-inspector/src/config"
	"github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/report"
	"github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/scanner"
	x509certs "github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/x509/certs"
	x509chain "github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/x509/chain"
	x509inspect "github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/x509/inspect"
)

// maxBatchTargets bounds the number of targets accepted by one batch call.
const maxBatchTargets = 100

// errUnreadableInput is returned when certificate input is neither a file, base64 nor PEM.
var errUnreadableInput = errors.New("not a valid file path, base64 data or PEM text")

// toolHandlers carries the dependencies shared by the tool handlers.
type toolHandlers struct {
	cfg       *config.Config
	scanner   *scanner.Scanner
	decoder   *x509certs.Certificate
	inspector *x509inspect.Inspector
	now       func() time.Time
}

func newToolHandlers(cfg *config.Config, sc *scanner.Scanner) *toolHandlers {
	decoder := x509certs.New()
	return &toolHandlers{
		cfg:       cfg,
		scanner:   sc,
		decoder:   decoder,
		inspector: x509inspect.New(decoder, nil),
		now:       time.Now,
	}
}

// handleInspectRemote inspects the chain presented by a single host.
//
// A failed handshake or extraction is returned as a tool error so the client
// sees the reason; the output format is only applied to successful results.
func (h *toolHandlers) handleInspectRemote(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	target, err := request.RequireString("hostname")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("hostname parameter required: %v", err)), nil
	}

	format, err := report.ParseFormat(request.GetString("format", string(report.JSON)))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	host, port, err := x509chain.ParseTarget(target, request.GetInt("port", h.cfg.Scan.Port))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := h.scanner.Scan(ctx, host, port)
	if result.Failed() {
		return mcp.NewToolResultError(fmt.Sprintf("failed to inspect %s: %s", result.Target, result.Error)), nil
	}

	return render(format, result)
}

// handleInspectRemoteBatch inspects several hosts concurrently. Per-target
// failures are part of the rendered output rather than a tool error.
func (h *toolHandlers) handleInspectRemoteBatch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := request.RequireString("targets")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("targets parameter required: %v", err)), nil
	}

	format, err := report.ParseFormat(request.GetString("format", string(report.JSON)))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var targets []config.TargetConfig
	for part := range strings.SplitSeq(input, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		host, port, err := x509chain.ParseTarget(part, h.cfg.Scan.Port)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid target %q: %v", strings.TrimSpace(part), err)), nil
		}
		targets = append(targets, config.TargetConfig{Host: host, Port: port})
	}

	switch {
	case len(targets) == 0:
		return mcp.NewToolResultError("no targets given"), nil
	case len(targets) > maxBatchTargets:
		return mcp.NewToolResultError(fmt.Sprintf("too many targets: %d (max %d)", len(targets), maxBatchTargets)), nil
	}

	return render(format, h.scanner.ScanAll(ctx, targets)...)
}

// handleInspectCertificate inspects a certificate bundle given as a file path,
// base64 data or PEM text.
func (h *toolHandlers) handleInspectCertificate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := request.RequireString("certificate")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("certificate parameter required: %v", err)), nil
	}

	format, err := report.ParseFormat(request.GetString("format", string(report.JSON)))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	data, source, err := readCertificateInput(input)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to read certificate: %v", err)), nil
	}

	raw, err := h.decoder.DecodeBundle(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to decode certificate: %v", err)), nil
	}

	result := report.Result{
		Target:      source,
		InspectedAt: h.now().UTC(),
		Raw:         raw,
	}

	summary, err := h.inspector.Extract(raw, result.InspectedAt)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to inspect certificate: %v", err)), nil
	}
	result.Summary = summary

	return render(format, result)
}

// readCertificateInput resolves the certificate argument and returns its bytes
// together with a label describing where they came from.
func readCertificateInput(input string) ([]byte, string, error) {
	input = strings.TrimSpace(input)

	if strings.Contains(input, "-----BEGIN") {
		return []byte(input), "pem", nil
	}

	if fileData, err := os.ReadFile(input); err == nil {
		return fileData, input, nil
	}

	if decoded, err := base64.StdEncoding.DecodeString(input); err == nil && len(decoded) > 0 {
		return decoded, "base64", nil
	}

	return nil, "", errUnreadableInput
}

// render writes results in format and wraps them in a text tool result.
func render(format report.Format, results ...report.Result) (*mcp.CallToolResult, error) {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	if err := report.Write(buf, format, results...); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to render result: %v", err)), nil
	}

	return mcp.NewToolResultText(buf.String()), nil
}
