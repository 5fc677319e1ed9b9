// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/H0llyW00dzZ/tls-cert-inspector/src/config"
	"github.com/H0llyW00dzZ/tls-cert-inspector/src/mcp-server/templates"
)

// defaultAlertDays is the expiry warning threshold of the expiry-review prompt.
const defaultAlertDays = 30

// expiryReviewData populates the expiry-review prompt template.
type expiryReviewData struct {
	Hostname  string
	Port      int
	AlertDays int
}

// createPrompts creates and returns all MCP prompt definitions with their handlers
func createPrompts(cfg *config.Config) []server.ServerPrompt {
	return []server.ServerPrompt{
		{
			Prompt: mcp.NewPrompt("expiry-review",
				mcp.WithPromptDescription("Review the validity and remaining lifetime of a server's certificates"),
				mcp.WithArgument("hostname",
					mcp.RequiredArgument(),
					mcp.ArgumentDescription("Target hostname to review"),
				),
				mcp.WithArgument("port",
					mcp.ArgumentDescription(fmt.Sprintf("Port number (default: %d)", cfg.Scan.Port)),
				),
				mcp.WithArgument("alert_days",
					mcp.ArgumentDescription(fmt.Sprintf("Days before expiry to flag (default: %d)", defaultAlertDays)),
				),
			),
			Handler: expiryReviewHandler(cfg.Scan.Port),
		},
	}
}

func expiryReviewHandler(defaultPort int) server.PromptHandlerFunc {
	return func(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		args := request.Params.Arguments

		data := expiryReviewData{
			Hostname:  args["hostname"],
			Port:      defaultPort,
			AlertDays: defaultAlertDays,
		}
		if data.Hostname == "" {
			return nil, fmt.Errorf("hostname argument required")
		}

		var err error
		if v := args["port"]; v != "" {
			if data.Port, err = strconv.Atoi(v); err != nil || data.Port < 1 || data.Port > 65535 {
				return nil, fmt.Errorf("invalid port %q", v)
			}
		}
		if v := args["alert_days"]; v != "" {
			if data.AlertDays, err = strconv.Atoi(v); err != nil || data.AlertDays < 0 {
				return nil, fmt.Errorf("invalid alert_days %q", v)
			}
		}

		text, err := renderTemplate(templates.ExpiryReview, data)
		if err != nil {
			return nil, err
		}

		return mcp.NewGetPromptResult(
			fmt.Sprintf("Certificate expiry review for %s", data.Hostname),
			[]mcp.PromptMessage{
				mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(text)),
			},
		), nil
	}
}
