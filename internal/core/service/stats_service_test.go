package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/expertsquad/crm-api/internal/core/domain"
)

type stubStatsCache struct {
	data map[string][]byte
}

func newStubStatsCache() *stubStatsCache {
	return &stubStatsCache{data: make(map[string][]byte)}
}

func (c *stubStatsCache) Get(_ context.Context, key string) ([]byte, error) {
	b, ok := c.data[key]
	if !ok {
		return nil, nil
	}
	return b, nil
}

func (c *stubStatsCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.data[key] = value
	return nil
}

func TestComputeDashboardStats_Aggregates(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC) // a Tuesday

	clients := []domain.Client{
		{Stage: domain.StageInProgress, Platform: "LinkedIn", ProjectValue: 15000, MeetingAt: now.Add(24 * time.Hour)},
		{Stage: domain.StageInProgress, Platform: "Upwork", ProjectValue: 22000, MeetingAt: now.Add(30 * 24 * time.Hour)},
		{Stage: domain.StageCompleted, Platform: "LinkedIn", ProjectValue: 12000, MeetingAt: now.Add(-48 * time.Hour)},
	}

	stats := ComputeDashboardStats(clients, now)

	if stats.TotalClients != 3 {
		t.Fatalf("expected 3 clients, got %d", stats.TotalClients)
	}
	if stats.TotalValue != 49000 {
		t.Fatalf("expected total value 49000, got %v", stats.TotalValue)
	}
	if stats.ClientsByStage[domain.StageInProgress] != 2 || stats.ClientsByStage[domain.StageCompleted] != 1 {
		t.Fatalf("unexpected stage counts: %+v", stats.ClientsByStage)
	}
	if stats.ClientsByPlatform["LinkedIn"] != 2 {
		t.Fatalf("unexpected platform counts: %+v", stats.ClientsByPlatform)
	}
	if stats.ValueByStage[domain.StageInProgress] != 37000 {
		t.Fatalf("unexpected value by stage: %+v", stats.ValueByStage)
	}
	// Tomorrow and two days ago fall inside the Saturday-based week,
	// the meeting a month out does not.
	if stats.MeetingsThisWeek != 2 {
		t.Fatalf("expected 2 meetings this week, got %d", stats.MeetingsThisWeek)
	}
}

func TestWeekBounds_SaturdayBasedWeek(t *testing.T) {
	// Tuesday 2025-06-10: the week runs Sat 2025-06-07 through Fri 2025-06-13.
	now := time.Date(2025, 6, 10, 15, 30, 0, 0, time.UTC)
	start, end := weekBounds(now)

	wantStart := time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)
	if !start.Equal(wantStart) || !end.Equal(wantEnd) {
		t.Fatalf("got [%v, %v), want [%v, %v)", start, end, wantStart, wantEnd)
	}

	// A Saturday is the start of its own week.
	sat := time.Date(2025, 6, 7, 9, 0, 0, 0, time.UTC)
	start, end = weekBounds(sat)
	if !start.Equal(wantStart) || !end.Equal(wantEnd) {
		t.Fatalf("saturday: got [%v, %v), want [%v, %v)", start, end, wantStart, wantEnd)
	}
}

func TestStatsService_Dashboard_CacheHitSkipsRepository(t *testing.T) {
	repo := newStubClientRepo()
	_, _ = repo.Insert(context.Background(), &domain.Client{Stage: domain.StageInitialTalk, ProjectValue: 5500})

	cache := newStubStatsCache()
	svc := NewStatsService(repo, cache, 30*time.Second, zerolog.Nop())

	first, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("Dashboard returned error: %v", err)
	}
	if first.TotalClients != 1 {
		t.Fatalf("expected 1 client, got %d", first.TotalClients)
	}
	if repo.listHits != 1 {
		t.Fatalf("expected one repository read, got %d", repo.listHits)
	}

	second, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("Dashboard returned error: %v", err)
	}
	if repo.listHits != 1 {
		t.Fatalf("cache hit must not re-read the repository, got %d reads", repo.listHits)
	}
	if second.TotalClients != first.TotalClients || second.TotalValue != first.TotalValue {
		t.Fatalf("cached stats diverge: %+v vs %+v", second, first)
	}
}

func TestStatsService_Dashboard_CorruptCacheEntryRecomputes(t *testing.T) {
	repo := newStubClientRepo()
	_, _ = repo.Insert(context.Background(), &domain.Client{ProjectValue: 100})

	cache := newStubStatsCache()
	cache.data[statsCacheKey] = []byte("{not json")

	svc := NewStatsService(repo, cache, 30*time.Second, zerolog.Nop())
	stats, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("Dashboard returned error: %v", err)
	}
	if stats.TotalClients != 1 {
		t.Fatalf("expected recomputed stats, got %+v", stats)
	}
}
