package config

// NewDefaultConfig creates a configuration with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "prod",
		Server: ServerConfig{
			Port: 4241,
			Host: "localhost",
		},
		Briefing: BriefingConfig{
			CacheTTL:           "1h",
			StaleTTL:           "2h",
			RefreshSchedule:    "@every 1h",
			TopPerformers:      5,
			MaxRecommendations: 5,
			MinConfidence:      60,
			EventOffsets:       []int{3, 7, 14, 21, 30},
			Risk: RiskConfig{
				AIVolatility:       5,
				CryptoVolatility:   10,
				OvervaluationPE:    45,
				OvervaluationCount: 3,
				BTCLiquidityCap:    500e9,
				MaxCount:           8,
			},
		},
		MCP: MCPConfig{
			Enabled: true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			Format:  "text",
			Outputs: []string{"console"},
		},
	}
}
