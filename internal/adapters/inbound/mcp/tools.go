package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/dartlens/dartlens/internal/adapters/outbound/config"
	"github.com/dartlens/dartlens/internal/adapters/outbound/diagfile"
	"github.com/dartlens/dartlens/internal/adapters/outbound/history"
	"github.com/dartlens/dartlens/internal/adapters/outbound/invoker"
	"github.com/dartlens/dartlens/internal/adapters/outbound/scanner"
	"github.com/dartlens/dartlens/internal/application"
	"github.com/dartlens/dartlens/internal/domain"
)

// registerTools registers all dartlens MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string) {
	// 1. dartlens_analyze
	s.AddTool(
		mcplib.NewTool("dartlens_analyze",
			mcplib.WithDescription("Run the Dart/Flutter analyzer and return normalized issues grouped by file as JSON"),
			mcplib.WithString("min_severity",
				mcplib.Description("Drop issues below this severity (error, warning, info, hint)"),
			),
		),
		handleAnalyze(projectPath),
	)

	// 2. dartlens_file_issues
	s.AddTool(
		mcplib.NewTool("dartlens_file_issues",
			mcplib.WithDescription("Return analyzer issues for a single file in the project"),
			mcplib.WithString("file",
				mcplib.Required(),
				mcplib.Description("Path to the file, relative to the project root"),
			),
		),
		handleFileIssues(projectPath),
	)

	// 3. dartlens_history
	s.AddTool(
		mcplib.NewTool("dartlens_history",
			mcplib.WithDescription("Return the recorded summary of past analysis runs"),
		),
		handleHistory(projectPath),
	)
}

// analyzeProject wires the standard adapters, runs one analysis pass, and
// returns the result.
func analyzeProject(ctx context.Context, projectPath string) (*domain.Result, error) {
	sc := scanner.New()

	root, err := sc.Root(projectPath)
	if err != nil {
		return nil, err
	}

	cfg, err := config.New().Load(root)
	if err != nil {
		return nil, err
	}

	mode := cfg.Tool
	if mode == "" {
		mode = domain.ToolDart
		if scan, err := sc.Scan(root, cfg.ExcludePaths...); err == nil && scan.IsFlutter {
			mode = domain.ToolFlutter
		}
	}

	svc := application.NewAnalyzeService(invoker.New(nil), diagfile.New(root), zap.NewNop())
	return svc.Analyze(ctx, application.NewSession(root, mode))
}

func handleAnalyze(projectPath string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		result, err := analyzeProject(ctx, projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("analysis failed: %v", err)), nil
		}

		if min, _ := request.GetArguments()["min_severity"].(string); min != "" {
			filtered := domain.FilterMinSeverity(result.Issues, domain.Severity(min))
			result = domain.NewResult(result.Root, result.Strategy, filtered)
		}

		return jsonResult(result)
	}
}

func handleFileIssues(projectPath string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		file, err := request.RequireString("file")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		result, err := analyzeProject(ctx, projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("analysis failed: %v", err)), nil
		}

		type fileIssues struct {
			File   string         `json:"file"`
			Issues []domain.Issue `json:"issues"`
		}

		out := fileIssues{File: file}
		for _, issue := range result.Issues {
			if issue.File == file || strings.HasSuffix(issue.File, "/"+file) {
				out.Issues = append(out.Issues, issue)
			}
		}

		return jsonResult(out)
	}
}

func handleHistory(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		root, err := scanner.New().Root(projectPath)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		entries, err := history.New().Load(root)
		if err != nil {
			return errorResult(fmt.Sprintf("loading history: %v", err)), nil
		}

		return jsonResult(entries)
	}
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v any) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
