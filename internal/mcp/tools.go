package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bobmcallan/investiq/internal/common"
)

// BriefingTool describes get_briefing.
func BriefingTool() mcp.Tool {
	return mcp.NewTool("get_briefing",
		mcp.WithDescription("Get the latest weekly AI and crypto investment briefing. Market data is simulated."),
		mcp.WithString("format",
			mcp.Description("Output format: markdown (default) or json"),
			mcp.Enum("markdown", "json"),
		),
	)
}

// StrategyTool describes get_strategy.
func StrategyTool() mcp.Tool {
	return mcp.NewTool("get_strategy",
		mcp.WithDescription("Calculate an investment allocation and projected value range for a risk tolerance."),
		mcp.WithString("risk_tolerance",
			mcp.Required(),
			mcp.Description("Risk tolerance: low, medium or high"),
			mcp.Enum("low", "medium", "high"),
		),
		mcp.WithNumber("amount",
			mcp.Required(),
			mcp.Description("Amount to invest in dollars"),
		),
		mcp.WithNumber("years",
			mcp.Description("Investment horizon in years (default 10)"),
		),
	)
}

// RegisterTools adds every InvestIQ tool to s and returns how many were
// registered.
func RegisterTools(s *server.MCPServer, source BriefingSource, logger *common.Logger) int {
	s.AddTool(BriefingTool(), BriefingToolHandler(source, logger))
	s.AddTool(StrategyTool(), StrategyToolHandler())
	s.AddTool(VersionTool(), VersionToolHandler())
	return 3
}
