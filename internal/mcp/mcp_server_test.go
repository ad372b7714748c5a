package mcp_test

import (
	"context"
	"testing"

	"github.com/mbelabs/epiclog/internal/contract"
	mcp_internal "github.com/mbelabs/epiclog/internal/mcp"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMCPServerHandlers_ValidationErrors(t *testing.T) {
	baseCfg := &contract.Config{
		DataPath: t.TempDir(),
		Date:     "2024-03-17",
	}

	s := mcp_internal.NewMCPServer(baseCfg)

	ctx := context.Background()

	t.Run("list_series invalid resampling period", func(t *testing.T) {
		tool := s.GetTool("list_series")
		require.NotNil(t, tool, "Tool list_series should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "list_series",
				Arguments: map[string]any{
					"resampling_period": "not_a_period", // Invalid
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "invalid resampling_period")
	})

	t.Run("export_logs invalid write method", func(t *testing.T) {
		tool := s.GetTool("export_logs")
		require.NotNil(t, tool, "Tool export_logs should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "export_logs",
				Arguments: map[string]any{
					"write_method": "columns", // Invalid
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "invalid write_method")
	})

	t.Run("detect_growths empty date folder", func(t *testing.T) {
		tool := s.GetTool("detect_growths")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name:      "detect_growths",
				Arguments: map[string]any{},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError, "An empty date folder has no log files to scan")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "processing failed")
	})
}
