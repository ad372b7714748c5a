package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mbelabs/epiclog/core"
	"github.com/mbelabs/epiclog/internal/contract"
	"github.com/mbelabs/epiclog/internal/outwriter"
	"github.com/mbelabs/epiclog/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
}

// requestConfig clones the base configuration and applies the overrides
// shared by every tool.
func (h *toolHandler) requestConfig(request mcp.CallToolRequest) *contract.Config {
	cfg := h.baseCfg.Clone()
	if d := request.GetString("date", ""); d != "" {
		cfg.Date = d
	}
	if p := request.GetString("data_path", ""); p != "" {
		cfg.DataPath = p
	}
	return cfg
}

func (h *toolHandler) handleListSeries(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.requestConfig(request)
	if m := request.GetString("resample_method", ""); m != "" {
		cfg.ResampleMethod = m
	}
	if p := request.GetString("resampling_period", ""); p != "" {
		period, err := contract.ParseResamplePeriod(p)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid resampling_period: %v", err)), nil
		}
		cfg.ResamplePeriod = period
	}

	batch, _, err := core.RunBatch(cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("processing failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(batch, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleDetectGrowths(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.requestConfig(request)

	batch, _, err := core.RunBatch(cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("processing failed: %v", err)), nil
	}

	type seriesGrowth struct {
		Series string              `json:"series"`
		Growth schema.GrowthResult `json:"growth"`
	}
	findings := []seriesGrowth{}
	for _, r := range batch.Reports {
		if r.Growth == nil || r.Growth.Status == schema.GrowthNoMessageLog {
			continue
		}
		findings = append(findings, seriesGrowth{Series: r.Name, Growth: *r.Growth})
	}

	jsonData, _ := json.MarshalIndent(findings, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleExportLogs(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.requestConfig(request)
	if m := request.GetString("write_method", ""); m != "" {
		wm := schema.WriteMethod(m)
		if _, ok := schema.ValidWriteMethods[wm]; !ok {
			return mcp.NewToolResultError(fmt.Sprintf("invalid write_method %q: must be sheets or merged", m)), nil
		}
		cfg.WriteMethod = wm
	}
	if v := request.GetFloat("percent_cut", 0); v > 0 {
		cfg.PercentCut = v
	}
	if v := request.GetFloat("value_cut", 0); v > 0 {
		cfg.ValueCut = v
	}

	batch, seriesList, err := core.RunBatch(cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("processing failed: %v", err)), nil
	}

	sheets := seriesList
	if cfg.WriteMethod == schema.MergedWrite {
		sheets = []*schema.Series{core.MergeSeries(seriesList)}
	}
	path, err := outwriter.WriteWorkbook(cfg, sheets)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("export failed: %v", err)), nil
	}
	batch.OutputPath = path

	jsonData, _ := json.MarshalIndent(batch, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
