// Package baby maintains the caller's baby profile.
package baby

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/growthbox-backend/internal/adapter/idgen"
	"github.com/heartmarshall/growthbox-backend/internal/dateutil"
	"github.com/heartmarshall/growthbox-backend/internal/domain"
	"github.com/heartmarshall/growthbox-backend/internal/session"
)

// babyRepo defines the profile persistence needed by the service.
type babyRepo interface {
	GetByOwner(ctx context.Context, ownerRef string) (*domain.BabyProfile, error)
	Upsert(ctx context.Context, p domain.BabyProfile) (*domain.BabyProfile, error)
}

// idGenerator issues public baby ids. It may fail.
type idGenerator interface {
	NewBabyID(ctx context.Context) (string, error)
}

// profileCache receives the saved profile so the live session sees it.
type profileCache interface {
	SetProfile(s *session.Session, p domain.BabyProfile)
}

// Service implements baby profile operations.
type Service struct {
	log      *slog.Logger
	repo     babyRepo
	ids      idGenerator
	sessions profileCache
	clock    dateutil.Clock
}

// NewService creates a new baby service instance.
func NewService(logger *slog.Logger, repo babyRepo, ids idGenerator, sessions profileCache, clock dateutil.Clock) *Service {
	return &Service{
		log:      logger.With("service", "baby"),
		repo:     repo,
		ids:      ids,
		sessions: sessions,
		clock:    clock,
	}
}

// SaveInput holds the editable profile fields.
type SaveInput struct {
	Nickname string
	Birthday *time.Time
	Avatar   string
}

// Get returns the session owner's profile; Empty when none was saved yet.
func (s *Service) Get(ctx context.Context, sess *session.Session) domain.Result[domain.BabyProfile] {
	if !sess.Authenticated() {
		return domain.Empty[domain.BabyProfile]()
	}

	p, err := s.repo.GetByOwner(ctx, sess.Identity())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Empty[domain.BabyProfile]()
		}
		s.log.ErrorContext(ctx, "get baby profile failed",
			slog.String("owner", sess.Identity()),
			slog.String("error", err.Error()))
		return domain.Failed[domain.BabyProfile](fmt.Errorf("baby.Get: %w", err))
	}
	return domain.OK(*p)
}

// Save creates or updates the session owner's profile. The public baby id
// is generated on first save and never changes afterwards.
func (s *Service) Save(ctx context.Context, sess *session.Session, input SaveInput) (*domain.BabyProfile, error) {
	if !sess.Authenticated() {
		return nil, domain.ErrUnauthenticated
	}

	now := s.clock.Now()
	p := domain.BabyProfile{
		OwnerRef: sess.Identity(),
		Nickname: strings.TrimSpace(input.Nickname),
		Birthday: input.Birthday,
		Avatar:   input.Avatar,
	}
	if err := p.Validate(now); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByOwner(ctx, sess.Identity())
	switch {
	case err == nil:
		p.BabyID = existing.BabyID
	case errors.Is(err, domain.ErrNotFound):
	default:
		return nil, fmt.Errorf("baby.Save: %w", err)
	}

	if p.BabyID == "" {
		id, err := s.ids.NewBabyID(ctx)
		if err != nil {
			id = "baby_" + idgen.Fallback(now)
			s.log.WarnContext(ctx, "baby id generator failed, using local id",
				slog.String("baby_id", id),
				slog.String("error", err.Error()))
		}
		p.BabyID = id
	}

	saved, err := s.repo.Upsert(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("baby.Save: %w", err)
	}

	s.sessions.SetProfile(sess, *saved)

	s.log.InfoContext(ctx, "baby profile saved",
		slog.String("owner", sess.Identity()),
		slog.String("baby_id", saved.BabyID),
		slog.Bool("created", existing == nil))

	return saved, nil
}
