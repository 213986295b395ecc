// Package briefing assembles the weekly investment briefing from market
// observations and keeps the latest report cached.
package briefing

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/bobmcallan/investiq/internal/analysis"
	"github.com/bobmcallan/investiq/internal/common"
	"github.com/bobmcallan/investiq/internal/config"
	"github.com/bobmcallan/investiq/internal/market"
	"github.com/bobmcallan/investiq/internal/models"
)

// ErrEmptyUniverse is returned when a provider yields no observations.
var ErrEmptyUniverse = errors.New("empty market universe")

// reportNamespace scopes report IDs derived from the generation time.
var reportNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://investiq.local/briefing"))

// Generator builds reports. The output is a pure function of the clock, the
// providers and the configuration.
type Generator struct {
	equities market.EquityProvider
	tokens   market.TokenProvider
	clock    market.Clock
	cfg      config.BriefingConfig
	logger   *common.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock sets the time source.
func WithClock(c market.Clock) Option {
	return func(g *Generator) { g.clock = c }
}

// WithEquityProvider replaces the mock equity provider.
func WithEquityProvider(p market.EquityProvider) Option {
	return func(g *Generator) { g.equities = p }
}

// WithTokenProvider replaces the mock token provider.
func WithTokenProvider(p market.TokenProvider) Option {
	return func(g *Generator) { g.tokens = p }
}

// WithLogger sets the logger.
func WithLogger(l *common.Logger) Option {
	return func(g *Generator) { g.logger = l }
}

// NewGenerator creates a Generator. Unless overridden, the mock providers are
// seeded from cfg.Seed and share the generator's clock. An unset risk section
// falls back to the default thresholds.
func NewGenerator(cfg config.BriefingConfig, opts ...Option) *Generator {
	if cfg.Risk == (config.RiskConfig{}) {
		cfg.Risk = config.NewDefaultConfig().Briefing.Risk
	}
	g := &Generator{cfg: cfg}
	for _, opt := range opts {
		opt(g)
	}
	if g.clock == nil {
		g.clock = market.SystemClock
	}
	if g.logger == nil {
		g.logger = common.NewSilentLogger()
	}
	if g.equities == nil {
		g.equities = market.NewEquityProvider(cfg.Seed, g.clock)
	}
	if g.tokens == nil {
		g.tokens = market.NewTokenProvider(cfg.Seed, g.clock)
	}
	return g
}

// Generate fetches both universes concurrently and assembles a report.
// Any provider failure aborts generation; no partial report is returned.
func (g *Generator) Generate(ctx context.Context) (*models.Report, error) {
	start := time.Now()
	now := g.clock.Now()

	var (
		equities []models.Equity
		tokens   []models.Token
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		equities, err = g.equities.FetchEquities(egCtx)
		if err != nil {
			return fmt.Errorf("failed to fetch equities: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		var err error
		tokens, err = g.tokens.FetchTokens(egCtx)
		if err != nil {
			return fmt.Errorf("failed to fetch tokens: %w", err)
		}
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	if len(equities) == 0 {
		return nil, fmt.Errorf("equities: %w", ErrEmptyUniverse)
	}
	if len(tokens) == 0 {
		return nil, fmt.Errorf("tokens: %w", ErrEmptyUniverse)
	}

	aiTrends := analysis.AITrends(equities)
	cryptoTrends := analysis.CryptoTrends(tokens)

	aiRecs := analysis.Limit(analysis.AIRecommendations(equities, aiTrends), g.cfg.MaxRecommendations, g.cfg.MinConfidence)
	cryptoRecs := analysis.Limit(analysis.CryptoRecommendations(tokens, cryptoTrends), g.cfg.MaxRecommendations, g.cfg.MinConfidence)

	offsets := g.cfg.EventOffsets
	if len(offsets) == 0 {
		offsets = analysis.DefaultEventOffsets
	}

	report := &models.Report{
		ID:            reportID(now),
		Date:          now,
		WeekNumber:    WeekNumber(now),
		Summary:       summarize(equities, tokens, aiTrends, cryptoTrends),
		KeyHighlights: highlights(equities, tokens, aiRecs, cryptoRecs),
		AIMarkets: models.AIMarkets{
			TopPerformers:   equities[:g.topN(len(equities))],
			Trends:          aiTrends,
			Recommendations: aiRecs,
		},
		CryptoMarkets: models.CryptoMarkets{
			TopPerformers:   tokens[:g.topN(len(tokens))],
			Trends:          cryptoTrends,
			Recommendations: cryptoRecs,
		},
		RiskFactors:    analysis.RiskFactors(equities, tokens, analysis.ThresholdsFromConfig(g.cfg.Risk)),
		UpcomingEvents: analysis.UpcomingEvents(now, offsets),
	}

	g.logger.Debug().
		Str("report_id", report.ID).
		Int("week", report.WeekNumber).
		Int("ai_recommendations", len(aiRecs)).
		Int("crypto_recommendations", len(cryptoRecs)).
		Dur("duration", time.Since(start)).
		Msg("Briefing generated")

	return report, nil
}

func (g *Generator) topN(n int) int {
	if g.cfg.TopPerformers <= 0 {
		return min(5, n)
	}
	return min(g.cfg.TopPerformers, n)
}

// reportID derives a stable identifier from the generation instant.
func reportID(now time.Time) string {
	return uuid.NewSHA1(reportNamespace, []byte(strconv.FormatInt(now.UnixNano(), 10))).String()
}
