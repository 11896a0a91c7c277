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

// Search finds baby profiles whose nickname contains keyword, ignoring
// case. Results are annotated with the caller's follow state.
func (s *Service) Search(ctx context.Context, sess *session.Session, keyword string) domain.Result[[]domain.SearchResult] {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return domain.Failed[[]domain.SearchResult](domain.NewValidationError("keyword", "required"))
	}

	profiles, err := s.profiles.Search(ctx, keyword, s.searchLimit)
	if err != nil {
		s.log.ErrorContext(ctx, "profile search failed",
			slog.String("keyword", keyword),
			slog.String("error", err.Error()))
		return domain.Failed[[]domain.SearchResult](fmt.Errorf("social.Search: %w", err))
	}
	if len(profiles) == 0 {
		return domain.Empty[[]domain.SearchResult]()
	}

	followed := s.followedSet(ctx, sess)
	now := s.clock.Now()

	out := make([]domain.SearchResult, 0, len(profiles))
	for _, p := range profiles {
		_, following := followed[p.BabyID]
		out = append(out, domain.SearchResult{
			Profile:     p,
			IsFollowing: following,
			IsOwn:       sess.Authenticated() && p.OwnerRef == sess.Identity(),
			Age:         Age(p.Birthday, now),
		})
	}
	return domain.OK(out)
}

// SearchByBabyID looks a single profile up by its public baby id.
func (s *Service) SearchByBabyID(ctx context.Context, sess *session.Session, babyID string) domain.Result[domain.SearchResult] {
	babyID = strings.TrimSpace(babyID)
	if babyID == "" {
		return domain.Failed[domain.SearchResult](domain.NewValidationError("baby_id", "required"))
	}

	p, err := s.profiles.GetByBabyID(ctx, babyID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Empty[domain.SearchResult]()
		}
		return domain.Failed[domain.SearchResult](fmt.Errorf("social.SearchByBabyID: %w", err))
	}

	return domain.OK(domain.SearchResult{
		Profile:     *p,
		IsFollowing: s.IsFollowing(ctx, sess, babyID),
		IsOwn:       sess.Authenticated() && p.OwnerRef == sess.Identity(),
		Age:         Age(p.Birthday, s.clock.Now()),
	})
}

func (s *Service) followedSet(ctx context.Context, sess *session.Session) map[string]struct{} {
	set := make(map[string]struct{})
	if !sess.Authenticated() {
		return set
	}
	edges, err := s.follows.ListByFollower(ctx, sess.Identity())
	if err != nil {
		s.log.WarnContext(ctx, "list follows failed",
			slog.String("error", err.Error()))
		return set
	}
	for _, e := range edges {
		set[e.BabyID] = struct{}{}
	}
	return set
}
