package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"filegen/internal/adapters/filesystem"
	mcpadapter "filegen/internal/adapters/mcp"
	"filegen/internal/adapters/sqlite"
	"filegen/internal/application"
	"filegen/internal/config"
)

func main() {
	historyFlag := flag.String("history-db", config.HistoryPath(), "path to the history database")
	noHistory := flag.Bool("no-history", false, "do not record generation runs")
	flag.Parse()

	deps := mcpadapter.Deps{
		Validator: application.NewStructureValidator(),
		Writer:    filesystem.NewGenerator(),
	}

	if !*noHistory {
		history := sqlite.NewHistory()
		if err := history.Open(*historyFlag); err != nil {
			log.Printf("filegen-mcp: history disabled: %v", err)
		} else {
			defer history.Close()
			deps.History = history
		}
	}

	mcpServer := server.NewMCPServer(
		"filegen-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, deps)
	mcpadapter.RegisterWriteTools(mcpServer, deps)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("filegen-mcp: %v", err)
	}
}
