package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/segmentio/ksuid"

	"github.com/Mayaverse-dev/Maya-Dashboard/internal/config"
	"github.com/Mayaverse-dev/Maya-Dashboard/internal/service"
)

// Scheduler periodically recomputes the cached stats snapshots so dashboard
// reads stay warm. It only runs when the snapshot cache is enabled; without
// a cache there is nothing to warm and Start is a no-op.
type Scheduler struct {
	cron    *cron.Cron
	stats   *service.StatsService
	log     zerolog.Logger
	spec    string
	windows []int
}

func NewScheduler(stats *service.StatsService, cfg config.JobsConfig, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		stats:   stats,
		log:     log,
		spec:    cfg.WarmSpec,
		windows: cfg.WarmWindows,
	}
}

func (s *Scheduler) Start() error {
	if s.stats == nil || !s.stats.CacheEnabled() {
		return nil
	}

	if _, err := s.cron.AddFunc(s.spec, s.warmSnapshots); err != nil {
		return err
	}

	s.cron.Start()
	return nil
}

// Stop halts scheduling and returns a cancel func that fires once running
// jobs have drained (or after a 5s grace period).
func (s *Scheduler) Stop() context.CancelFunc {
	_, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	go func() {
		<-s.cron.Stop().Done()
		cancel()
	}()
	return cancel
}

func (s *Scheduler) warmSnapshots() {
	run := ksuid.New().String()
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	for _, days := range s.windows {
		if _, err := s.stats.EbookStats(ctx, days, true); err != nil {
			s.log.Error().Err(err).Str("run", run).Int("days", days).Msg("warm ebook snapshot failed")
		}
	}

	if _, err := s.stats.PledgeManagerStats(ctx, true); err != nil {
		s.log.Error().Err(err).Str("run", run).Msg("warm pledge snapshot failed")
	}

	s.log.Debug().Str("run", run).Ints("windows", s.windows).Msg("stats snapshots warmed")
}
