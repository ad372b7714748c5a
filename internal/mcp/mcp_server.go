// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mbelabs/epiclog/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the epiclog MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"EPIC Log Processing Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
	}

	// --- 1. Tool: list_series ---
	s.AddTool(mcp.NewTool("list_series",
		mcp.WithDescription("Load and classify the EPIC log series for one date folder, reporting row counts before and after resampling."),
		mcp.WithString("date", mcp.Description("Date folder under the data path, e.g. '2024-03-17'. Defaults to the server's configured date.")),
		mcp.WithString("data_path", mcp.Description("Path to the data root folder (defaults to the server's configured path).")),
		mcp.WithString("resample_method", mcp.Description("Resampling method: 'diff' for change-based sampling or 'time' for fixed-period aggregation."), mcp.Enum("diff", "time")),
		mcp.WithString("resampling_period", mcp.Description("Bucket width for time-based aggregation, e.g. '30S', '3T', '2H'.")),
	), h.handleListSeries)

	// --- 2. Tool: detect_growths ---
	s.AddTool(mcp.NewTool("detect_growths",
		mcp.WithDescription("Scan the event log of one date folder for growth events (sample holder movements) and report their boundaries."),
		mcp.WithString("date", mcp.Description("Date folder under the data path.")),
		mcp.WithString("data_path", mcp.Description("Path to the data root folder.")),
	), h.handleDetectGrowths)

	// --- 3. Tool: export_logs ---
	s.AddTool(mcp.NewTool("export_logs",
		mcp.WithDescription("Run the full pipeline for one date folder and export the resampled series to an xlsx workbook."),
		mcp.WithString("date", mcp.Description("Date folder under the data path.")),
		mcp.WithString("data_path", mcp.Description("Path to the data root folder.")),
		mcp.WithString("write_method", mcp.Description("'sheets' writes one sheet per series, 'merged' writes a single time-aligned sheet."), mcp.Enum("sheets", "merged")),
		mcp.WithNumber("percent_cut", mcp.Description("Relative accumulated-change threshold in percent for pressure series.")),
		mcp.WithNumber("value_cut", mcp.Description("Absolute accumulated-change threshold for temperature series.")),
	), h.handleExportLogs)

	return s
}

// StartMCPServer starts the epiclog MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config) error {
	s := NewMCPServer(baseCfg)
	return server.ServeStdio(s)
}
