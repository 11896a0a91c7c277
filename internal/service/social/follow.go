package social

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/growthbox-backend/internal/domain"
	"github.com/heartmarshall/growthbox-backend/internal/session"
)

// Follow creates a follow edge from the session owner to babyID. Following
// an already followed baby is a no-op success. Following one's own baby is
// rejected with domain.ErrSelfFollow.
func (s *Service) Follow(ctx context.Context, sess *session.Session, babyID, babyName string) error {
	if !sess.Authenticated() {
		return domain.ErrUnauthenticated
	}
	babyID = strings.TrimSpace(babyID)
	if babyID == "" {
		return domain.NewValidationError("baby_id", "required")
	}
	if babyID == sess.BabyID() {
		return domain.ErrSelfFollow
	}

	var created bool
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		target, err := s.profiles.GetByBabyID(ctx, babyID)
		if err != nil {
			return err
		}
		if target.OwnerRef == sess.Identity() {
			return domain.ErrSelfFollow
		}

		exists, err := s.follows.Exists(ctx, sess.Identity(), babyID)
		if err != nil || exists {
			return err
		}

		if strings.TrimSpace(babyName) == "" {
			babyName = target.Nickname
		}

		created, err = s.follows.Insert(ctx, domain.FollowEdge{
			FollowerRef: sess.Identity(),
			BabyID:      babyID,
			BabyName:    babyName,
		})
		return err
	})
	if err != nil {
		return fmt.Errorf("social.Follow: %w", err)
	}

	if created {
		s.log.InfoContext(ctx, "baby followed",
			slog.String("owner", sess.Identity()),
			slog.String("baby_id", babyID))
	}
	return nil
}

// Unfollow removes the session owner's edge to babyID and reports whether
// a row was actually removed.
func (s *Service) Unfollow(ctx context.Context, sess *session.Session, babyID string) (bool, error) {
	if !sess.Authenticated() {
		return false, domain.ErrUnauthenticated
	}
	if strings.TrimSpace(babyID) == "" {
		return false, domain.NewValidationError("baby_id", "required")
	}

	removed, err := s.follows.Delete(ctx, sess.Identity(), babyID)
	if err != nil {
		return false, fmt.Errorf("social.Unfollow: %w", err)
	}

	if removed {
		s.log.InfoContext(ctx, "baby unfollowed",
			slog.String("owner", sess.Identity()),
			slog.String("baby_id", babyID))
	}
	return removed, nil
}

// IsFollowing reports whether the session owner follows babyID. Failures
// read as false.
func (s *Service) IsFollowing(ctx context.Context, sess *session.Session, babyID string) bool {
	if !sess.Authenticated() || babyID == "" {
		return false
	}
	ok, err := s.follows.Exists(ctx, sess.Identity(), babyID)
	if err != nil {
		s.log.WarnContext(ctx, "follow check failed",
			slog.String("baby_id", babyID),
			slog.String("error", err.Error()))
		return false
	}
	return ok
}

// ListFollowed returns the followed babies, most recently followed first.
// Edges whose profile lookup fails or finds nothing are dropped.
func (s *Service) ListFollowed(ctx context.Context, sess *session.Session) domain.Result[[]domain.FollowedBaby] {
	if !sess.Authenticated() {
		return domain.Empty[[]domain.FollowedBaby]()
	}

	edges, err := s.follows.ListByFollower(ctx, sess.Identity())
	if err != nil {
		s.log.ErrorContext(ctx, "list follows failed",
			slog.String("owner", sess.Identity()),
			slog.String("error", err.Error()))
		return domain.Failed[[]domain.FollowedBaby](fmt.Errorf("social.ListFollowed: %w", err))
	}
	if len(edges) == 0 {
		return domain.Empty[[]domain.FollowedBaby]()
	}

	var profiles []*domain.BabyProfile
	if s.batch {
		profiles = s.lookupBatched(ctx, edges)
	} else {
		profiles = s.lookupSequential(ctx, edges)
	}

	now := s.clock.Now()
	out := make([]domain.FollowedBaby, 0, len(edges))
	for i, e := range edges {
		p := profiles[i]
		if p == nil {
			continue
		}
		out = append(out, domain.FollowedBaby{
			Profile:    *p,
			FollowID:   e.ID,
			FollowTime: e.CreatedAt,
			Age:        Age(p.Birthday, now),
		})
	}

	if len(out) == 0 {
		return domain.Empty[[]domain.FollowedBaby]()
	}
	return domain.OK(out)
}

// lookupSequential resolves one profile per edge, one call at a time.
func (s *Service) lookupSequential(ctx context.Context, edges []domain.FollowEdge) []*domain.BabyProfile {
	out := make([]*domain.BabyProfile, len(edges))
	for i, e := range edges {
		p, err := s.profiles.GetByBabyID(ctx, e.BabyID)
		if err != nil {
			if !errors.Is(err, domain.ErrNotFound) {
				s.log.WarnContext(ctx, "followed profile lookup failed",
					slog.String("baby_id", e.BabyID),
					slog.String("error", err.Error()))
			}
			continue
		}
		out[i] = p
	}
	return out
}
