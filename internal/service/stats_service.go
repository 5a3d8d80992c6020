package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/ksuid"

	"github.com/Mayaverse-dev/Maya-Dashboard/internal/cache"
	"github.com/Mayaverse-dev/Maya-Dashboard/internal/models"
	"github.com/Mayaverse-dev/Maya-Dashboard/internal/repository"
)

// StatsService composes the repository with the optional snapshot cache.
// Database errors pass through untouched; the HTTP boundary maps them to a
// generic 500 so no schema detail reaches the client.
type StatsService struct {
	repo  *repository.StatsRepository
	cache *cache.StatsCache
	log   zerolog.Logger
}

func NewStatsService(repo *repository.StatsRepository, statsCache *cache.StatsCache, log zerolog.Logger) *StatsService {
	return &StatsService{
		repo:  repo,
		cache: statsCache,
		log:   log,
	}
}

// EbookStats builds the ebook snapshot for a window. days is clamped here so
// every caller (HTTP, warmer) shares the guardrails. refresh forces a
// recomputation and refreshes the cache; otherwise a fresh cached snapshot
// is served as-is.
func (s *StatsService) EbookStats(ctx context.Context, days int, refresh bool) (models.EbookStatsPayload, error) {
	days = models.ClampWindow(days)
	key := cache.EbookStatsKey(days)

	if !refresh {
		var cached models.EbookStatsPayload
		hit, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			s.log.Warn().Err(err).Str("key", key).Msg("stats cache read failed")
		}
		if hit {
			return cached, nil
		}
	}

	users, err := s.repo.EbookUserStats(ctx, days)
	if err != nil {
		return models.EbookStatsPayload{}, err
	}
	summary, users := models.SummarizeEbookUsers(users)

	byFormat, err := s.repo.FormatCounts(ctx, days)
	if err != nil {
		return models.EbookStatsPayload{}, err
	}
	byEventType, err := s.repo.EventTypeCounts(ctx, days)
	if err != nil {
		return models.EbookStatsPayload{}, err
	}
	topCountries, err := s.repo.TopCountries(ctx, days)
	if err != nil {
		return models.EbookStatsPayload{}, err
	}

	payload := models.EbookStatsPayload{
		OK:           true,
		SnapshotID:   ksuid.New().String(),
		GeneratedAt:  time.Now().UTC(),
		WindowDays:   days,
		UserSummary:  summary,
		Users:        users,
		ByFormat:     byFormat,
		ByEventType:  byEventType,
		TopCountries: topCountries,
	}

	if err := s.cache.Set(ctx, key, payload); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("stats cache write failed")
	}

	return payload, nil
}

// PledgeManagerStats is window-independent: always all-time.
func (s *StatsService) PledgeManagerStats(ctx context.Context, refresh bool) (models.PledgeManagerPayload, error) {
	key := cache.PledgeStatsKey()

	if !refresh {
		var cached models.PledgeManagerPayload
		hit, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			s.log.Warn().Err(err).Str("key", key).Msg("stats cache read failed")
		}
		if hit {
			return cached, nil
		}
	}

	totalUsers, err := s.repo.TotalUsers(ctx)
	if err != nil {
		return models.PledgeManagerPayload{}, err
	}
	withAddress, err := s.repo.UsersWithShippingAddress(ctx)
	if err != nil {
		return models.PledgeManagerPayload{}, err
	}

	payload := models.PledgeManagerPayload{
		OK:                       true,
		SnapshotID:               ksuid.New().String(),
		GeneratedAt:              time.Now().UTC(),
		TotalUsers:               totalUsers,
		UsersWithShippingAddress: withAddress,
	}

	if err := s.cache.Set(ctx, key, payload); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("stats cache write failed")
	}

	return payload, nil
}

// CacheEnabled reports whether snapshots are being cached; the warmer job is
// inert when they are not.
func (s *StatsService) CacheEnabled() bool {
	return s.cache.Enabled()
}
