package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"filegen/internal/application"
	"filegen/internal/application/commands"
)

// RegisterWriteTools adds the tools that create files.
func RegisterWriteTools(s *server.MCPServer, deps Deps) {
	s.AddTool(generateTool(), generateHandler(deps))
}

// --- generate_structure ---

func generateTool() mcp.Tool {
	return mcp.NewTool("generate_structure",
		mcp.WithDescription("Parse a structure and create its directories and files under an output directory. Existing files are skipped unless force is set."),
		mcp.WithString("content",
			mcp.Description("Text to parse"),
			mcp.Required(),
		),
		mcp.WithString("format",
			mcp.Description("Input format: auto, markdown, chat or tree. Defaults to auto."),
		),
		mcp.WithString("output_dir",
			mcp.Description("Directory to create the structure in"),
			mcp.Required(),
		),
		mcp.WithBoolean("force",
			mcp.Description("Overwrite files that already exist"),
		),
		mcp.WithBoolean("dry_run",
			mcp.Description("Report what would be created without writing anything"),
		),
	)
}

func generateHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		parsed, err := parseRequest(ctx, req)
		if err != nil {
			return toolError(err)
		}

		cmd := commands.NewGenerateCommand(deps.Writer, deps.Validator, parsed.Entries, req.GetString("output_dir", ""))
		cmd.Force = req.GetBool("force", false)
		cmd.DryRun = req.GetBool("dry_run", false)
		cmd.Source = "mcp"
		cmd.Format = parsed.Format
		if deps.History != nil {
			cmd.WithHistory(deps.History)
		}

		result, err := cmd.Execute(ctx)
		if err != nil {
			var structErr *application.StructureError
			if errors.As(err, &structErr) {
				return toolError(fmt.Errorf("%w\n  - %s", err, strings.Join(structErr.Errors, "\n  - ")))
			}
			return toolError(err)
		}

		var sb strings.Builder
		sb.WriteString(result.Message)
		sb.WriteByte('\n')
		writeList(&sb, "Warnings", append(parsed.Warnings, result.Validation.Warnings...))
		writeList(&sb, "Errors", result.Stats.Errors)
		if result.HistoryErr != nil {
			fmt.Fprintf(&sb, "\nHistory not recorded: %v\n", result.HistoryErr)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}
