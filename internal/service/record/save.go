package record

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/growthbox-backend/internal/adapter/idgen"
	"github.com/heartmarshall/growthbox-backend/internal/domain"
	"github.com/heartmarshall/growthbox-backend/internal/session"
)

// Save inserts or updates rec for the session owner and returns the stored
// record. A record without identity gets one from the ID generator, or a
// locally generated one if the generator fails. The bool is false when the
// session is anonymous, the record has no content, or the write failed.
func (s *Service) Save(ctx context.Context, sess *session.Session, rec domain.Record) (domain.Record, bool) {
	if !sess.Authenticated() {
		s.log.WarnContext(ctx, "save record without identity")
		return rec, false
	}
	if !rec.HasContent() {
		s.log.WarnContext(ctx, "save record without content",
			slog.String("owner", sess.Identity()))
		return rec, false
	}

	now := s.clock.Now()

	if rec.ID == "" {
		id, err := s.ids.NewRecordID(ctx)
		if err != nil {
			id = idgen.Fallback(now)
			s.log.WarnContext(ctx, "record id generator failed, using local id",
				slog.String("record_id", id),
				slog.String("error", err.Error()))
		}
		rec.ID = id
		rec.CreateTime = now
	}

	rec.OwnerRef = sess.Identity()
	if rec.BabyRef == "" {
		rec.BabyRef = sess.BabyID()
	}
	rec.UpdateTime = now

	exists, err := s.repo.Exists(ctx, rec.ID, rec.OwnerRef)
	if err != nil {
		s.log.ErrorContext(ctx, "check record existence failed",
			slog.String("record_id", rec.ID),
			slog.String("error", err.Error()))
		return rec, false
	}

	if exists {
		err = s.repo.Update(ctx, rec)
	} else {
		if rec.CreateTime.IsZero() {
			rec.CreateTime = now
		}
		err = s.repo.Insert(ctx, rec)
	}
	if err != nil {
		s.log.ErrorContext(ctx, "save record failed",
			slog.String("record_id", rec.ID),
			slog.Bool("update", exists),
			slog.String("error", err.Error()))
		return rec, false
	}

	s.log.InfoContext(ctx, "record saved",
		slog.String("record_id", rec.ID),
		slog.String("owner", rec.OwnerRef),
		slog.Bool("update", exists))

	return rec, true
}

// DeleteByID removes the session owner's record. Irreversible.
func (s *Service) DeleteByID(ctx context.Context, sess *session.Session, id string) bool {
	if !sess.Authenticated() || id == "" {
		return false
	}

	removed, err := s.repo.Delete(ctx, id, sess.Identity())
	if err != nil {
		s.log.ErrorContext(ctx, "delete record failed",
			slog.String("record_id", id),
			slog.String("error", err.Error()))
		return false
	}
	if removed {
		s.log.InfoContext(ctx, "record deleted",
			slog.String("record_id", id),
			slog.String("owner", sess.Identity()))
	}
	return removed
}
