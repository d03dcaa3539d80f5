package ports

import (
	"context"
	"time"
)

// DashboardStats aggregates the client book for the dashboard charts.
type DashboardStats struct {
	TotalClients      int                `json:"total_clients"`
	TotalValue        float64            `json:"total_value"`
	MeetingsThisWeek  int                `json:"meetings_this_week"`
	ClientsByStage    map[string]int     `json:"clients_by_stage"`
	ClientsByPlatform map[string]int     `json:"clients_by_platform"`
	ValueByStage      map[string]float64 `json:"value_by_stage"`
}

// StatsCache is a byte-level TTL cache for computed aggregates.
// Get returns (nil, nil) on a miss.
type StatsCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// StatsService computes (and caches) dashboard aggregates.
type StatsService interface {
	Dashboard(ctx context.Context) (*DashboardStats, error)
}
