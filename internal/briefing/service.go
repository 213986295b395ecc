package briefing

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/bobmcallan/investiq/internal/cache"
	"github.com/bobmcallan/investiq/internal/common"
	"github.com/bobmcallan/investiq/internal/config"
	"github.com/bobmcallan/investiq/internal/models"
)

const (
	latestKey      = "latest"
	refreshTimeout = 30 * time.Second
)

// ReportGenerator produces a fresh report.
type ReportGenerator interface {
	Generate(ctx context.Context) (*models.Report, error)
}

// Service serves the latest report from cache. A fresh report is returned
// as is; a stale one is returned while a single background regeneration runs;
// beyond the stale window the report is regenerated synchronously.
type Service struct {
	generator  ReportGenerator
	cache      *cache.Cache[*models.Report]
	logger     *common.Logger
	group      singleflight.Group
	refreshing atomic.Bool
	wg         sync.WaitGroup
}

// NewService creates a Service caching reports for cfg's TTL and stale window.
func NewService(generator ReportGenerator, cfg config.BriefingConfig, logger *common.Logger) *Service {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &Service{
		generator: generator,
		cache:     cache.New[*models.Report](cfg.GetCacheTTL(), cfg.GetStaleTTL(), 1),
		logger:    logger,
	}
}

// WithCache replaces the report cache. Intended for tests that control time.
func (s *Service) WithCache(c *cache.Cache[*models.Report]) *Service {
	s.cache = c
	return s
}

// CacheTTL returns the fresh window, used for HTTP cache headers.
func (s *Service) CacheTTL() time.Duration { return s.cache.TTL() }

// StaleTTL returns the stale-while-revalidate window.
func (s *Service) StaleTTL() time.Duration { return s.cache.StaleTTL() }

// Latest returns the current report, generating one if none is servable.
func (s *Service) Latest(ctx context.Context) (*models.Report, error) {
	report, state := s.cache.Get(latestKey)
	switch state {
	case cache.Fresh:
		return report, nil
	case cache.Stale:
		s.refreshAsync()
		return report, nil
	}
	return s.Refresh(ctx)
}

// Refresh regenerates the report and stores it. Concurrent callers share one
// generation detached from their contexts; a caller whose ctx ends first gets
// ctx.Err() while the generation carries on.
func (s *Service) Refresh(ctx context.Context) (*models.Report, error) {
	ch := s.group.DoChan(latestKey, func() (interface{}, error) {
		gctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), refreshTimeout)
		defer cancel()

		report, err := s.generator.Generate(gctx)
		if err != nil {
			return nil, fmt.Errorf("failed to generate briefing: %w", err)
		}
		s.cache.Set(latestKey, report)
		return report, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*models.Report), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// refreshAsync starts a background regeneration unless one is running.
func (s *Service) refreshAsync() {
	if !s.refreshing.CompareAndSwap(false, true) {
		return
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer s.refreshing.Store(false)

		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()

		if _, err := s.Refresh(ctx); err != nil {
			s.logger.Warn().Err(err).Msg("Background briefing refresh failed; serving stale report")
			return
		}
		s.logger.Debug().Msg("Stale briefing refreshed")
	}()
}

// Wait blocks until any background refresh has finished.
func (s *Service) Wait() {
	s.wg.Wait()
}
