package ports

import "context"

// SeedResult reports how many fixture documents were inserted.
type SeedResult struct {
	UsersSeeded   int `json:"users_seeded"`
	ClientsSeeded int `json:"clients_seeded"`
}

// SeedService populates empty collections with demo fixtures. Non-empty
// collections are left untouched.
type SeedService interface {
	Seed(ctx context.Context) (*SeedResult, error)
}
