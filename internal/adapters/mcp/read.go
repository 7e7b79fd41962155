package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"filegen/internal/application"
	"filegen/internal/application/commands"
	"filegen/internal/domain"
	"filegen/internal/parser"
	"filegen/internal/ports"
)

// Deps holds what the filegen tools run against
type Deps struct {
	Validator *application.StructureValidator
	Writer    ports.StructureWriter
	History   ports.GenerationHistory // nil when history is disabled
}

// RegisterReadTools adds the tools that never touch the output directory.
func RegisterReadTools(s *server.MCPServer, deps Deps) {
	s.AddTool(parseTool(), parseHandler())
	s.AddTool(validateTool(), validateHandler(deps))
	s.AddTool(historyTool(), historyHandler(deps))
}

// --- parse_structure ---

func parseTool() mcp.Tool {
	return mcp.NewTool("parse_structure",
		mcp.WithDescription("Parse a Markdown outline, a chat assistant reply or a tree drawing and show the directory structure it describes."),
		mcp.WithString("content",
			mcp.Description("Text to parse"),
			mcp.Required(),
		),
		mcp.WithString("format",
			mcp.Description("Input format: auto, markdown, chat or tree. Defaults to auto."),
		),
	)
}

func parseHandler() server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := parseRequest(ctx, req)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		sb.WriteString(result.Message)
		sb.WriteString("\n\n")
		renderTree(&sb, domain.BuildTree(result.Entries), "")
		writeList(&sb, "Warnings", result.Warnings)
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- validate_structure ---

func validateTool() mcp.Tool {
	return mcp.NewTool("validate_structure",
		mcp.WithDescription("Parse a structure and check it against an output directory without writing anything."),
		mcp.WithString("content",
			mcp.Description("Text to parse"),
			mcp.Required(),
		),
		mcp.WithString("format",
			mcp.Description("Input format: auto, markdown, chat or tree. Defaults to auto."),
		),
		mcp.WithString("output_dir",
			mcp.Description("Directory the structure would be created in"),
			mcp.Required(),
		),
	)
}

func validateHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		parsed, err := parseRequest(ctx, req)
		if err != nil {
			return toolError(err)
		}

		cmd := commands.NewValidateCommand(deps.Validator, parsed.Entries, req.GetString("output_dir", ""))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		if result.OK {
			sb.WriteString("Structure is valid.\n")
		} else {
			sb.WriteString("Structure is invalid.\n")
		}
		writeList(&sb, "Errors", result.Errors)
		writeList(&sb, "Warnings", append(parsed.Warnings, result.Warnings...))
		writeList(&sb, "Existing files", result.Conflicts)
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- history ---

func historyTool() mcp.Tool {
	return mcp.NewTool("history",
		mcp.WithDescription("List recent generation runs, newest first."),
		mcp.WithNumber("limit",
			mcp.Description(fmt.Sprintf("Maximum number of runs to list. Defaults to %d.", commands.DefaultHistoryLimit)),
		),
	)
}

func historyHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if deps.History == nil {
			return toolError(fmt.Errorf("history is disabled"))
		}

		runs, err := commands.NewListHistoryCommand(deps.History, req.GetInt("limit", 0)).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(runs, formatRun)
	}
}

// --- helpers ---

func parseRequest(ctx context.Context, req mcp.CallToolRequest) (*commands.ParseResult, error) {
	content := req.GetString("content", "")
	if content == "" {
		return nil, fmt.Errorf("content is required")
	}
	format, err := application.ParseFormat(req.GetString("format", ""))
	if err != nil {
		return nil, err
	}
	return commands.NewParseCommand(parser.NewParsers(), content, format).Execute(ctx)
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntities[T any](entities []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(entities) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, e := range entities {
		sb.WriteString(format(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatRun(r domain.GenerationRun) string {
	return fmt.Sprintf("#%d  %s  %s  %s -> %s  (%d dirs, %d files)",
		r.ID, r.CreatedAt.Format("2006-01-02 15:04"), r.Format, r.Source, r.OutputDir,
		r.Stats.DirectoriesCreated, r.Stats.FilesCreated)
}

func writeList(sb *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(sb, "\n%s:\n", title)
	for _, item := range items {
		fmt.Fprintf(sb, "  - %s\n", item)
	}
}

func renderTree(sb *strings.Builder, nodes []*domain.TreeNode, prefix string) {
	for i, node := range nodes {
		connector, next := "├── ", "│   "
		if i == len(nodes)-1 {
			connector, next = "└── ", "    "
		}
		name := domain.BaseName(node.Entry.Path)
		if node.Entry.IsDir() {
			name += "/"
		}
		fmt.Fprintf(sb, "%s%s%s\n", prefix, connector, name)
		renderTree(sb, node.Children, prefix+next)
	}
}
