// Package social is the social graph client: follow edges between a caller
// and other owners' baby profiles, and the profile search service.
package social

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/growthbox-backend/internal/config"
	"github.com/heartmarshall/growthbox-backend/internal/dateutil"
	"github.com/heartmarshall/growthbox-backend/internal/domain"
)

// followRepo defines the follow edge persistence needed by the service.
type followRepo interface {
	Insert(ctx context.Context, e domain.FollowEdge) (bool, error)
	Delete(ctx context.Context, followerRef, babyID string) (bool, error)
	Exists(ctx context.Context, followerRef, babyID string) (bool, error)
	ListByFollower(ctx context.Context, followerRef string) ([]domain.FollowEdge, error)
}

// profileRepo defines the baby profile lookups needed by the service.
type profileRepo interface {
	GetByBabyID(ctx context.Context, babyID string) (*domain.BabyProfile, error)
	GetByBabyIDs(ctx context.Context, babyIDs []string) ([]domain.BabyProfile, error)
	Search(ctx context.Context, keyword string, limit int) ([]domain.BabyProfile, error)
}

// txManager runs a function within a database transaction.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements the social graph client.
type Service struct {
	log      *slog.Logger
	follows  followRepo
	profiles profileRepo
	tx       txManager
	clock    dateutil.Clock

	batch       bool
	batchWait   time.Duration
	searchLimit int
}

// NewService creates a new social service instance.
func NewService(
	logger *slog.Logger,
	follows followRepo,
	profiles profileRepo,
	tx txManager,
	clock dateutil.Clock,
	cfg config.SocialConfig,
) *Service {
	return &Service{
		log:         logger.With("service", "social"),
		follows:     follows,
		profiles:    profiles,
		tx:          tx,
		clock:       clock,
		batch:       cfg.BatchProfileLookups,
		batchWait:   cfg.BatchWait,
		searchLimit: cfg.SearchLimit,
	}
}
