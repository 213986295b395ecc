package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration.
type Config struct {
	Environment string         `toml:"environment"`
	Server      ServerConfig   `toml:"server"`
	Briefing    BriefingConfig `toml:"briefing"`
	MCP         MCPConfig      `toml:"mcp"`
	Logging     LoggingConfig  `toml:"logging"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port int    `toml:"port" validate:"gte=1,lte=65535"`
	Host string `toml:"host" validate:"required"`
}

// BriefingConfig controls briefing generation and caching.
type BriefingConfig struct {
	// Seed fixes the mock data random source. Zero draws a random seed.
	Seed               uint64     `toml:"seed"`
	CacheTTL           string     `toml:"cache_ttl"`
	StaleTTL           string     `toml:"stale_ttl"`
	RefreshSchedule    string     `toml:"refresh_schedule"`
	TopPerformers      int        `toml:"top_performers" validate:"gte=1,lte=10"`
	MaxRecommendations int        `toml:"max_recommendations" validate:"gte=1"`
	MinConfidence      float64    `toml:"min_confidence" validate:"gte=0,lte=100"`
	EventOffsets       []int      `toml:"event_offsets" validate:"min=1,dive,gte=1"`
	Risk               RiskConfig `toml:"risk"`
}

// RiskConfig holds the thresholds used when synthesizing risk statements.
type RiskConfig struct {
	AIVolatility       float64 `toml:"ai_volatility" validate:"gt=0"`
	CryptoVolatility   float64 `toml:"crypto_volatility" validate:"gt=0"`
	OvervaluationPE    float64 `toml:"overvaluation_pe" validate:"gt=0"`
	OvervaluationCount int     `toml:"overvaluation_count" validate:"gte=0"`
	BTCLiquidityCap    float64 `toml:"btc_liquidity_cap" validate:"gt=0"`
	MaxCount           int     `toml:"max_count" validate:"gte=2"`
}

// GetCacheTTL parses the fresh window for a cached briefing.
func (c *BriefingConfig) GetCacheTTL() time.Duration {
	return parseDuration(c.CacheTTL, time.Hour)
}

// GetStaleTTL parses the window after CacheTTL during which a stale briefing
// may still be served while a refresh runs.
func (c *BriefingConfig) GetStaleTTL() time.Duration {
	return parseDuration(c.StaleTTL, 2*time.Hour)
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

// MCPConfig contains MCP endpoint settings.
type MCPConfig struct {
	Enabled bool `toml:"enabled"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level      string   `toml:"level" validate:"omitempty,oneof=trace debug info warn error"`
	Format     string   `toml:"format" validate:"omitempty,oneof=text json"`
	Outputs    []string `toml:"outputs" validate:"dive,oneof=console file"`
	FilePath   string   `toml:"file_path"`
	MaxSizeMB  int      `toml:"max_size_mb"`
	MaxBackups int      `toml:"max_backups"`
}

// IsDevMode returns true when the environment is "dev".
func (c *Config) IsDevMode() bool {
	return strings.EqualFold(strings.TrimSpace(c.Environment), "dev")
}

// BaseURL returns the externally reachable base URL of the server.
func (c *Config) BaseURL() string {
	return fmt.Sprintf("http://%s:%d", c.Server.Host, c.Server.Port)
}

// Validate checks the configuration against its validation tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// LoadFromFile loads configuration with priority: defaults -> file -> env.
func LoadFromFile(path string) (*Config, error) {
	if path == "" {
		return LoadFromFiles()
	}
	return LoadFromFiles(path)
}

// LoadFromFiles loads configuration from multiple files with priority:
// defaults -> file1 -> file2 -> ... -> env.
// Later files override earlier files.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		err = toml.Unmarshal(data, config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies INVESTIQ_* environment variable overrides to config.
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("INVESTIQ_ENV"); env != "" {
		config.Environment = env
	}
	if port := os.Getenv("INVESTIQ_SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if host := os.Getenv("INVESTIQ_SERVER_HOST"); host != "" {
		config.Server.Host = host
	}
	if seed := os.Getenv("INVESTIQ_BRIEFING_SEED"); seed != "" {
		if s, err := strconv.ParseUint(seed, 10, 64); err == nil {
			config.Briefing.Seed = s
		}
	}
	if ttl := os.Getenv("INVESTIQ_BRIEFING_CACHE_TTL"); ttl != "" {
		config.Briefing.CacheTTL = ttl
	}
	if schedule := os.Getenv("INVESTIQ_BRIEFING_REFRESH_SCHEDULE"); schedule != "" {
		config.Briefing.RefreshSchedule = schedule
	}
	if enabled := os.Getenv("INVESTIQ_MCP_ENABLED"); enabled != "" {
		if b, err := strconv.ParseBool(enabled); err == nil {
			config.MCP.Enabled = b
		}
	}
	if level := os.Getenv("INVESTIQ_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if format := os.Getenv("INVESTIQ_LOG_FORMAT"); format != "" {
		config.Logging.Format = format
	}
}

// ApplyFlagOverrides applies command-line flag overrides to config.
func ApplyFlagOverrides(config *Config, port int, host string) {
	if port > 0 {
		config.Server.Port = port
	}
	if host != "" {
		config.Server.Host = host
	}
}
