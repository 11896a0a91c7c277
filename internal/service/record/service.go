// Package record is the record store client: owner-scoped reads and writes
// of journal records plus the cross-account baby record query.
//
// Unauthenticated sessions and backend failures never escape as errors;
// reads return a domain.Result and writes return a success flag.
package record

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/growthbox-backend/internal/dateutil"
	"github.com/heartmarshall/growthbox-backend/internal/domain"
)

// recordRepo defines the record persistence needed by the service.
type recordRepo interface {
	List(ctx context.Context, scope domain.RecordScope) ([]domain.Record, error)
	ListByDate(ctx context.Context, scope domain.RecordScope, date string) ([]domain.Record, error)
	ListByBaby(ctx context.Context, babyRef string) ([]domain.Record, error)
	Dates(ctx context.Context, scope domain.RecordScope) ([]string, error)
	GetByID(ctx context.Context, id string) (*domain.Record, error)
	Exists(ctx context.Context, id, ownerRef string) (bool, error)
	Insert(ctx context.Context, rec domain.Record) error
	Update(ctx context.Context, rec domain.Record) error
	Delete(ctx context.Context, id, ownerRef string) (bool, error)
}

// idGenerator is the unique-ID collaborator. It may fail.
type idGenerator interface {
	NewRecordID(ctx context.Context) (string, error)
}

// Service implements the record store client.
type Service struct {
	log   *slog.Logger
	repo  recordRepo
	ids   idGenerator
	clock dateutil.Clock
}

// NewService creates a new record service instance.
func NewService(logger *slog.Logger, repo recordRepo, ids idGenerator, clock dateutil.Clock) *Service {
	return &Service{
		log:   logger.With("service", "record"),
		repo:  repo,
		ids:   ids,
		clock: clock,
	}
}
