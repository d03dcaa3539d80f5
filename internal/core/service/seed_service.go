package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/expertsquad/crm-api/internal/core/domain"
	"github.com/expertsquad/crm-api/internal/core/ports"
)

// SeedService inserts demo fixtures into empty collections. Collections
// that already hold documents are never touched.
type SeedService struct {
	users   ports.UserRepository
	clients ports.ClientRepository
	log     zerolog.Logger
}

func NewSeedService(users ports.UserRepository, clients ports.ClientRepository, log zerolog.Logger) *SeedService {
	return &SeedService{users: users, clients: clients, log: log}
}

func (s *SeedService) Seed(ctx context.Context) (*ports.SeedResult, error) {
	result := &ports.SeedResult{}
	now := time.Now().UTC()

	userCount, err := s.users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("seed: count users: %w", err)
	}
	clientCount, err := s.clients.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("seed: count clients: %w", err)
	}

	var creatorIDs []string
	if userCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(defaultPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		for _, u := range seedUsers(now, string(hash)) {
			created, err := s.users.Insert(ctx, &u)
			if err != nil {
				return nil, fmt.Errorf("seed: insert user: %w", err)
			}
			creatorIDs = append(creatorIDs, created.ID)
			result.UsersSeeded++
		}
		s.log.Info().Int("count", result.UsersSeeded).Msg("seeded users")
	}

	if clientCount == 0 {
		if creatorIDs == nil {
			existing, err := s.users.List(ctx)
			if err != nil {
				return nil, fmt.Errorf("seed: list users: %w", err)
			}
			for _, u := range existing {
				creatorIDs = append(creatorIDs, u.ID)
			}
		}

		clients := seedClients(now, creatorIDs)
		if err := s.clients.InsertMany(ctx, clients); err != nil {
			return nil, fmt.Errorf("seed: insert clients: %w", err)
		}
		result.ClientsSeeded = len(clients)
		s.log.Info().Int("count", result.ClientsSeeded).Msg("seeded clients")
	}

	return result, nil
}

func seedUsers(now time.Time, passwordHash string) []domain.User {
	return []domain.User{
		{
			Name:         "John Doe",
			Email:        "john@company.com",
			PasswordHash: passwordHash,
			Role:         domain.RoleAdmin,
			Avatar:       "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop&crop=face",
			CreatedAt:    now,
		},
		{
			Name:         "Sarah Smith",
			Email:        "sarah@company.com",
			PasswordHash: passwordHash,
			Role:         domain.RoleUser,
			Avatar:       "https://images.unsplash.com/photo-1494790108755-2616b612b786?w=150&h=150&fit=crop&crop=face",
			CreatedAt:    now,
		},
		{
			Name:         "Mike Johnson",
			Email:        "mike@company.com",
			PasswordHash: passwordHash,
			Role:         domain.RoleUser,
			Avatar:       "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150&h=150&fit=crop&crop=face",
			CreatedAt:    now,
		},
	}
}

func seedClients(now time.Time, creatorIDs []string) []domain.Client {
	creator := func(i int) string {
		if len(creatorIDs) == 0 {
			return ""
		}
		return creatorIDs[i%len(creatorIDs)]
	}

	return []domain.Client{
		{
			Name:         "Sarah Johnson",
			JobTitle:     "Marketing Director",
			Email:        "sarah.johnson@techcorp.com",
			Organization: "TechCorp Solutions",
			Phone:        "+1 (555) 123-4567",
			Platform:     "LinkedIn",
			Stage:        domain.StageInProgress,
			Status:       domain.StatusMeeting,
			ProjectValue: 15000,
			MeetingAt:    now.Add(48 * time.Hour),
			NextAction:   "Send revised proposal with updated timeline and discuss budget adjustments",
			Link:         "https://linkedin.com/in/sarahjohnson",
			CreatedBy:    creator(0),
			CreatedAt:    now,
		},
		{
			Name:         "Michael Chen",
			JobTitle:     "CEO",
			Email:        "michael@startupventure.io",
			Organization: "StartupVenture",
			Phone:        "+1 (555) 987-6543",
			Platform:     "Upwork",
			Stage:        domain.StageProposalSent,
			Status:       domain.StatusFollowUp,
			ProjectValue: 8500,
			MeetingAt:    now.Add(24 * time.Hour),
			NextAction:   "Follow up on proposal status and answer technical questions about implementation",
			Link:         "https://upwork.com/freelancers/~michaelchen",
			CreatedBy:    creator(1),
			CreatedAt:    now,
		},
		{
			Name:         "Emily Rodriguez",
			JobTitle:     "Product Manager",
			Email:        "emily.r@innovatetech.com",
			Organization: "InnovateTech",
			Phone:        "+1 (555) 456-7890",
			Platform:     "Direct Contact",
			Stage:        domain.StageCompleted,
			Status:       domain.StatusClosed,
			ProjectValue: 12000,
			MeetingAt:    now.Add(-48 * time.Hour),
			NextAction:   "Schedule project review and discuss future opportunities for ongoing maintenance",
			Link:         "https://innovatetech.com/team/emily",
			CreatedBy:    creator(0),
			CreatedAt:    now,
		},
		{
			Name:         "David Thompson",
			JobTitle:     "Operations Manager",
			Email:        "david.thompson@logistics.com",
			Organization: "Global Logistics Inc",
			Phone:        "+1 (555) 321-0987",
			Platform:     "Fiverr",
			Stage:        domain.StageInitialTalk,
			Status:       domain.StatusNew,
			ProjectValue: 5500,
			MeetingAt:    now.Add(30 * time.Minute),
			NextAction:   "Prepare initial project scope and cost estimate for logistics optimization system",
			Link:         "https://fiverr.com/davidthompson",
			CreatedBy:    creator(2),
			CreatedAt:    now,
		},
		{
			Name:         "Lisa Wang",
			JobTitle:     "CTO",
			Email:        "lisa.wang@fintech.co",
			Organization: "FinTech Solutions",
			Phone:        "+1 (555) 654-3210",
			Platform:     "Referral",
			Stage:        domain.StageInProgress,
			Status:       domain.StatusNegotiating,
			ProjectValue: 22000,
			MeetingAt:    now.Add(7 * 24 * time.Hour),
			NextAction:   "Present technical architecture and discuss implementation phases for payment gateway integration",
			Link:         "https://fintech.co/team/lisa-wang",
			CreatedBy:    creator(1),
			CreatedAt:    now,
		},
		{
			Name:         "Robert Kim",
			JobTitle:     "Founder",
			Email:        "robert@ecommerce.shop",
			Organization: "E-Commerce Plus",
			Phone:        "+1 (555) 789-0123",
			Platform:     "LinkedIn",
			Stage:        domain.StageProposalSent,
			Status:       domain.StatusFollowUp,
			ProjectValue: 18500,
			MeetingAt:    now.Add(6 * time.Hour),
			NextAction:   "Address concerns about project timeline and deliverables for e-commerce platform redesign",
			Link:         "https://linkedin.com/in/robertkim",
			CreatedBy:    creator(0),
			CreatedAt:    now,
		},
	}
}
