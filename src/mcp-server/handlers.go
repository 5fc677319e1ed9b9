// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/mark3labs/mcp-go/server"

	"github.com/H0llyW00dzZ/tls-cert-inspector/src/mcp-server/templates"
)

// instructionData holds the data used to populate the MCP server instructions template.
type instructionData struct {
	Tools []toolInfo
}

// toolInfo represents information about an MCP tool for template rendering.
type toolInfo struct {
	Name        string
	Description string
}

// loadInstructions renders the server instructions with the registered tools,
// so the text never drifts from what the server actually offers.
func loadInstructions(tools []server.ServerTool) (string, error) {
	data := instructionData{Tools: make([]toolInfo, 0, len(tools))}
	for _, tool := range tools {
		data.Tools = append(data.Tools, toolInfo{
			Name:        tool.Tool.Name,
			Description: tool.Tool.Description,
		})
	}

	return renderTemplate(templates.Instructions, data)
}

// renderTemplate executes the embedded template name with data.
func renderTemplate(name string, data any) (string, error) {
	templateBytes, err := templates.MagicEmbed.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("failed to load template %s: %w", name, err)
	}

	tmpl, err := template.New(name).Parse(string(templateBytes))
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}

	return buf.String(), nil
}
