package briefing

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/bobmcallan/investiq/internal/common"
)

// Refresher regenerates the cached briefing on a cron schedule so that
// requests rarely pay for generation.
type Refresher struct {
	service  *Service
	cron     *cron.Cron
	entryID  cron.EntryID
	schedule string
	logger   *common.Logger
}

// NewRefresher parses schedule (standard five-field cron or a descriptor
// such as "@every 1h") and registers the refresh job.
func NewRefresher(service *Service, schedule string, logger *common.Logger) (*Refresher, error) {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	r := &Refresher{
		service:  service,
		cron:     cron.New(),
		schedule: schedule,
		logger:   logger,
	}

	id, err := r.cron.AddFunc(schedule, r.run)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh schedule %q: %w", schedule, err)
	}
	r.entryID = id
	return r, nil
}

// Start begins the schedule.
func (r *Refresher) Start() {
	r.cron.Start()
	r.logger.Info().
		Str("schedule", r.schedule).
		Str("next", r.Next().Format(time.RFC3339)).
		Msg("Briefing refresher started")
}

// Stop halts the schedule and waits for a running refresh to finish or ctx
// to expire.
func (r *Refresher) Stop(ctx context.Context) {
	done := r.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
	}
	r.logger.Info().Msg("Briefing refresher stopped")
}

// Next returns the next scheduled run, or the zero time when not started.
func (r *Refresher) Next() time.Time {
	return r.cron.Entry(r.entryID).Next
}

// RunNow triggers an immediate refresh in the background. Service.Wait
// covers it.
func (r *Refresher) RunNow() {
	r.service.wg.Add(1)
	go func() {
		defer r.service.wg.Done()
		r.run()
	}()
}

func (r *Refresher) run() {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	start := time.Now()
	report, err := r.service.Refresh(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("Scheduled briefing refresh failed")
		return
	}

	r.logger.Info().
		Str("report_id", report.ID).
		Int("week", report.WeekNumber).
		Dur("duration", time.Since(start)).
		Msg("Scheduled briefing refresh completed")
}
