// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/H0llyW00dzZ/tls-cert-inspector/src/mcp-server/templates"
)

// Resource URIs.
const (
	uriConfigTemplate = "config://template"
	uriOutputFormats  = "docs://output-formats"
	uriVersion        = "info://version"
)

// createResources returns the static resources served to clients.
func createResources(version string) []server.ServerResource {
	return []server.ServerResource{
		{
			Resource: mcp.NewResource(uriConfigTemplate, "Configuration Template",
				mcp.WithResourceDescription("Example configuration file with every supported key"),
				mcp.WithMIMEType("application/yaml"),
			),
			Handler: embeddedResource(uriConfigTemplate, "application/yaml", templates.ConfigExample),
		},
		{
			Resource: mcp.NewResource(uriOutputFormats, "Output Formats",
				mcp.WithResourceDescription("Output formats and the meaning of each certificate field"),
				mcp.WithMIMEType("text/markdown"),
			),
			Handler: embeddedResource(uriOutputFormats, "text/markdown", templates.OutputFormats),
		},
		{
			Resource: mcp.NewResource(uriVersion, "Version Information",
				mcp.WithResourceDescription("Server name, version and supported output formats"),
				mcp.WithMIMEType("application/json"),
			),
			Handler: versionResource(version),
		},
	}
}
