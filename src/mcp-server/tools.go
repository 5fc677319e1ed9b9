// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/report"
)

// formatDescription lists the output formats accepted by every tool.
var formatDescription = fmt.Sprintf("Output format: %s (default: json)",
	strings.Join(report.Formats(), ", "))

// createTools creates and returns all MCP tool definitions with their handlers.
//
// The function defines the following tools:
//   - inspect_remote_certificate: Inspects the chain presented by one host
//   - inspect_remote_certificates: Inspects the chains of several hosts concurrently
//   - inspect_certificate: Inspects a certificate bundle from a file or base64 data
func createTools(h *toolHandlers) []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: mcp.NewTool("inspect_remote_certificate",
				mcp.WithDescription("Connect to a TLS server and summarize its server and intermediate certificates"),
				mcp.WithString("hostname",
					mcp.Required(),
					mcp.Description("Host name or IP address, optionally with a port (host:port)"),
				),
				mcp.WithNumber("port",
					mcp.Description(fmt.Sprintf("Port used when hostname has none (default: %d)", h.cfg.Scan.Port)),
				),
				mcp.WithString("format",
					mcp.Description(formatDescription),
					mcp.DefaultString(string(report.JSON)),
				),
			),
			Handler: h.handleInspectRemote,
		},
		{
			Tool: mcp.NewTool("inspect_remote_certificates",
				mcp.WithDescription("Summarize the certificates of several TLS servers in one call"),
				mcp.WithString("targets",
					mcp.Required(),
					mcp.Description("Comma-separated list of host or host:port targets"),
				),
				mcp.WithString("format",
					mcp.Description(formatDescription),
					mcp.DefaultString(string(report.JSON)),
				),
			),
			Handler: h.handleInspectRemoteBatch,
		},
		{
			Tool: mcp.NewTool("inspect_certificate",
				mcp.WithDescription("Summarize the server and intermediate certificates of a PEM, DER or PKCS#7 bundle"),
				mcp.WithString("certificate",
					mcp.Required(),
					mcp.Description("Certificate file path, base64-encoded certificate data or PEM text"),
				),
				mcp.WithString("format",
					mcp.Description(formatDescription),
					mcp.DefaultString(string(report.JSON)),
				),
			),
			Handler: h.handleInspectCertificate,
		},
	}
}
