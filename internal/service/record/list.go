package record

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/growthbox-backend/internal/domain"
	"github.com/heartmarshall/growthbox-backend/internal/session"
)

// List returns the session owner's records, newest first. When the session
// has a baby profile the list is narrowed to that baby.
func (s *Service) List(ctx context.Context, sess *session.Session) domain.Result[[]domain.Record] {
	if !sess.Authenticated() {
		return domain.Empty[[]domain.Record]()
	}

	records, err := s.repo.List(ctx, scopeOf(sess))
	return s.listResult(ctx, "record.List", records, err)
}

// ByDate returns the session owner's records of one day, newest first.
func (s *Service) ByDate(ctx context.Context, sess *session.Session, date string) domain.Result[[]domain.Record] {
	if !sess.Authenticated() {
		return domain.Empty[[]domain.Record]()
	}
	if date == "" {
		return domain.Failed[[]domain.Record](domain.NewValidationError("date", "required"))
	}

	records, err := s.repo.ListByDate(ctx, scopeOf(sess), date)
	return s.listResult(ctx, "record.ByDate", records, err)
}

// ByBaby returns the session owner's records attached to babyID.
func (s *Service) ByBaby(ctx context.Context, sess *session.Session, babyID string) domain.Result[[]domain.Record] {
	if !sess.Authenticated() {
		return domain.Empty[[]domain.Record]()
	}
	if babyID == "" {
		return domain.Failed[[]domain.Record](domain.NewValidationError("baby_id", "required"))
	}

	records, err := s.repo.List(ctx, domain.RecordScope{OwnerRef: sess.Identity(), BabyRef: babyID})
	return s.listResult(ctx, "record.ByBaby", records, err)
}

// RecordDates returns the distinct days with at least one record, newest first.
func (s *Service) RecordDates(ctx context.Context, sess *session.Session) domain.Result[[]string] {
	if !sess.Authenticated() {
		return domain.Empty[[]string]()
	}

	dates, err := s.repo.Dates(ctx, scopeOf(sess))
	if err != nil {
		s.log.ErrorContext(ctx, "list record dates failed",
			slog.String("owner", sess.Identity()),
			slog.String("error", err.Error()))
		return domain.Failed[[]string](fmt.Errorf("record.RecordDates: %w", err))
	}
	if len(dates) == 0 {
		return domain.Empty[[]string]()
	}
	return domain.OK(dates)
}

// Get looks a record up by its identity. The lookup is not owner-scoped:
// the detail page is also opened from a followed baby's list.
func (s *Service) Get(ctx context.Context, id string) domain.Result[domain.Record] {
	if id == "" {
		return domain.Failed[domain.Record](domain.NewValidationError("id", "required"))
	}

	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Empty[domain.Record]()
		}
		s.log.ErrorContext(ctx, "get record failed",
			slog.String("record_id", id),
			slog.String("error", err.Error()))
		return domain.Failed[domain.Record](fmt.Errorf("record.Get: %w", err))
	}
	return domain.OK(*rec)
}

func (s *Service) listResult(ctx context.Context, op string, records []domain.Record, err error) domain.Result[[]domain.Record] {
	if err != nil {
		s.log.ErrorContext(ctx, "list records failed",
			slog.String("op", op),
			slog.String("error", err.Error()))
		return domain.Failed[[]domain.Record](fmt.Errorf("%s: %w", op, err))
	}
	if len(records) == 0 {
		return domain.Empty[[]domain.Record]()
	}
	return domain.OK(records)
}

func scopeOf(sess *session.Session) domain.RecordScope {
	return domain.RecordScope{OwnerRef: sess.Identity(), BabyRef: sess.BabyID()}
}
