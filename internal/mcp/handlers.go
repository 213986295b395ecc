package mcp

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/shopspring/decimal"

	"github.com/bobmcallan/investiq/internal/common"
	"github.com/bobmcallan/investiq/internal/models"
	"github.com/bobmcallan/investiq/internal/strategy"
)

// errorResult creates an MCP error result.
func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(message),
		},
		IsError: true,
	}
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.NewTextContent(text)},
	}
}

// BriefingToolHandler returns the latest report as markdown (default) or JSON.
func BriefingToolHandler(source BriefingSource, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		format := r.GetString("format", "markdown")
		if format != "markdown" && format != "json" {
			return errorResult("format must be json or markdown"), nil
		}

		report, err := source.Latest(ctx)
		if err != nil {
			logger.Error().Err(err).Msg("MCP briefing generation failed")
			return errorResult("Failed to generate briefing"), nil
		}

		if format == "markdown" {
			return textResult(report.ToMarkdown()), nil
		}
		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return errorResult("failed to marshal briefing"), nil
		}
		return textResult(string(out)), nil
	}
}

// StrategyToolHandler prices an allocation plan for the requested risk
// tolerance, amount and horizon.
func StrategyToolHandler() server.ToolHandlerFunc {
	return func(ctx context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		req := strategy.Request{
			RiskTolerance: models.RiskTolerance(r.GetString("risk_tolerance", "")),
			Amount:        decimal.NewFromFloat(r.GetFloat("amount", 0)),
			Years:         r.GetInt("years", 10),
		}

		plan, err := strategy.Calculate(req)
		if err != nil {
			if errors.Is(err, strategy.ErrInvalidRequest) || errors.Is(err, strategy.ErrUnknownRisk) {
				return errorResult(err.Error()), nil
			}
			return errorResult("failed to calculate strategy"), nil
		}

		out, err := json.MarshalIndent(plan, "", "  ")
		if err != nil {
			return errorResult("failed to marshal strategy"), nil
		}
		return textResult(string(out)), nil
	}
}
