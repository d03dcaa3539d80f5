package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"

	"github.com/expertsquad/crm-api/internal/core/domain"
	"github.com/expertsquad/crm-api/internal/core/ports"
)

const (
	statsCacheKey        = "stats:dashboard"
	defaultStatsCacheTTL = 30 * time.Second
)

// StatsService computes dashboard aggregates over the client book with a
// short-TTL cache in front. Cache failures fall back to recomputing.
type StatsService struct {
	clients ports.ClientRepository
	cache   ports.StatsCache
	ttl     time.Duration
	log     zerolog.Logger
	now     func() time.Time
}

func NewStatsService(clients ports.ClientRepository, cache ports.StatsCache, ttl time.Duration, log zerolog.Logger) *StatsService {
	if ttl <= 0 {
		ttl = defaultStatsCacheTTL
	}
	return &StatsService{clients: clients, cache: cache, ttl: ttl, log: log, now: time.Now}
}

func (s *StatsService) Dashboard(ctx context.Context) (*ports.DashboardStats, error) {
	if s.cache != nil {
		if b, err := s.cache.Get(ctx, statsCacheKey); err != nil {
			s.log.Warn().Err(err).Msg("stats cache read failed")
		} else if b != nil {
			var stats ports.DashboardStats
			if err := json.Unmarshal(b, &stats); err != nil {
				s.log.Warn().Err(err).Msg("stats cache entry corrupt, recomputing")
			} else {
				return &stats, nil
			}
		}
	}

	clients, err := s.clients.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := ComputeDashboardStats(clients, s.now().UTC())

	if s.cache != nil {
		if b, err := json.Marshal(stats); err == nil {
			if err := s.cache.Set(ctx, statsCacheKey, b, s.ttl); err != nil {
				s.log.Warn().Err(err).Msg("stats cache write failed")
			}
		}
	}

	return stats, nil
}

// ComputeDashboardStats aggregates the client book. "Meetings this week"
// uses a Saturday-through-Friday week containing now.
func ComputeDashboardStats(clients []domain.Client, now time.Time) *ports.DashboardStats {
	stats := &ports.DashboardStats{
		TotalClients:      len(clients),
		ClientsByStage:    make(map[string]int),
		ClientsByPlatform: make(map[string]int),
		ValueByStage:      make(map[string]float64),
	}

	weekStart, weekEnd := weekBounds(now)

	for _, c := range clients {
		stats.TotalValue += c.ProjectValue
		stats.ClientsByStage[c.Stage]++
		stats.ClientsByPlatform[c.Platform]++
		stats.ValueByStage[c.Stage] += c.ProjectValue

		if !c.MeetingAt.Before(weekStart) && c.MeetingAt.Before(weekEnd) {
			stats.MeetingsThisWeek++
		}
	}

	return stats
}

// weekBounds returns the [start, end) of the Saturday-based week
// containing now: midnight of the most recent Saturday through midnight
// of the following Saturday.
func weekBounds(now time.Time) (time.Time, time.Time) {
	daysBack := int(now.Weekday()) + 1
	if now.Weekday() == time.Saturday {
		daysBack = 0
	}

	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	start := midnight.AddDate(0, 0, -daysBack)
	return start, start.AddDate(0, 0, 7)
}
