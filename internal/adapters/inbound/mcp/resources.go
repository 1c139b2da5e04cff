package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// registerResources registers all dartlens MCP resources on the given server.
func registerResources(s *server.MCPServer, projectPath string) {
	// 1. dartlens://issues - full grouped issue collection
	s.AddResource(
		mcplib.NewResource(
			"dartlens://issues",
			"Analyzer Issues",
			mcplib.WithResourceDescription("Normalized analyzer issues for the project, grouped by file"),
			mcplib.WithMIMEType("application/json"),
		),
		handleIssuesResource(projectPath),
	)

	// 2. dartlens://summary - severity counts only
	s.AddResource(
		mcplib.NewResource(
			"dartlens://summary",
			"Issue Summary",
			mcplib.WithResourceDescription("Error/warning/info counts from the latest analysis run"),
			mcplib.WithMIMEType("application/json"),
		),
		handleSummaryResource(projectPath),
	)
}

func handleIssuesResource(projectPath string) server.ResourceHandlerFunc {
	return func(ctx context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		result, err := analyzeProject(ctx, projectPath)
		if err != nil {
			return nil, fmt.Errorf("analysis failed: %w", err)
		}

		data, err := json.MarshalIndent(result.Groups, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling issues: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "dartlens://issues",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

func handleSummaryResource(projectPath string) server.ResourceHandlerFunc {
	return func(ctx context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		result, err := analyzeProject(ctx, projectPath)
		if err != nil {
			return nil, fmt.Errorf("analysis failed: %w", err)
		}

		data, err := json.MarshalIndent(result.Summary, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling summary: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "dartlens://summary",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
