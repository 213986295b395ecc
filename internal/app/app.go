package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bobmcallan/investiq/internal/briefing"
	"github.com/bobmcallan/investiq/internal/common"
	"github.com/bobmcallan/investiq/internal/config"
	"github.com/bobmcallan/investiq/internal/handlers"
	"github.com/bobmcallan/investiq/internal/mcp"
)

// closeTimeout bounds how long Close waits for an in-flight refresh.
const closeTimeout = 5 * time.Second

// App holds all application components and dependencies.
type App struct {
	Config *config.Config
	Logger *common.Logger

	// Briefing pipeline
	Generator *briefing.Generator
	Briefing  *briefing.Service
	Refresher *briefing.Refresher

	// HTTP handlers
	PageHandler     *handlers.PageHandler
	HealthHandler   *handlers.HealthHandler
	VersionHandler  *handlers.VersionHandler
	BriefingHandler *handlers.BriefingHandler
	StrategyHandler *handlers.StrategyHandler
	MCPHandler      *mcp.Handler
}

// New initializes the application with all dependencies. Background work
// does not begin until Start is called.
func New(cfg *config.Config, logger *common.Logger) (*App, error) {
	a := &App{
		Config: cfg,
		Logger: logger,
	}

	// Validate environment setting
	env := strings.ToLower(strings.TrimSpace(cfg.Environment))
	if cfg.IsDevMode() {
		logger.Warn().Msg("RUNNING IN DEV MODE, do not use in production")
	} else if env != "prod" && env != "" {
		logger.Warn().
			Str("environment", cfg.Environment).
			Msg("unrecognized environment value, defaulting to prod behavior")
	}

	if err := a.initBriefing(); err != nil {
		return nil, err
	}
	a.initHandlers()

	logger.Info().Msg("application initialization complete")

	return a, nil
}

// initBriefing wires the generator, its cache and the refresh schedule.
func (a *App) initBriefing() error {
	bc := a.Config.Briefing

	a.Generator = briefing.NewGenerator(bc, briefing.WithLogger(a.Logger))
	a.Briefing = briefing.NewService(a.Generator, bc, a.Logger)

	refresher, err := briefing.NewRefresher(a.Briefing, bc.RefreshSchedule, a.Logger)
	if err != nil {
		return fmt.Errorf("failed to create briefing refresher: %w", err)
	}
	a.Refresher = refresher

	a.Logger.Debug().
		Str("cache_ttl", bc.GetCacheTTL().String()).
		Str("stale_ttl", bc.GetStaleTTL().String()).
		Str("schedule", bc.RefreshSchedule).
		Msg("briefing pipeline initialized")
	return nil
}

// initHandlers initializes all HTTP handlers.
func (a *App) initHandlers() {
	a.PageHandler = handlers.NewPageHandler(a.Logger, a.Config.IsDevMode(), a.Briefing)
	a.HealthHandler = handlers.NewHealthHandler(a.Logger)
	a.VersionHandler = handlers.NewVersionHandler(a.Logger)
	a.BriefingHandler = handlers.NewBriefingHandler(a.Logger, a.Briefing)
	a.StrategyHandler = handlers.NewStrategyHandler(a.Logger)

	if a.Config.MCP.Enabled {
		a.MCPHandler = mcp.NewHandler(a.Briefing, a.Logger)
	}

	a.Logger.Debug().Msg("HTTP handlers initialized")
}

// Start begins the refresh schedule and warms the briefing cache.
func (a *App) Start() {
	a.Refresher.Start()
	a.Refresher.RunNow()
}

// Close stops background refreshes and waits briefly for in-flight work.
func (a *App) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()

	a.Refresher.Stop(ctx)
	a.Briefing.Wait()
	return nil
}
