// Package stats derives journal statistics from a record set.
package stats

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/growthbox-backend/internal/dateutil"
	"github.com/heartmarshall/growthbox-backend/internal/domain"
	"github.com/heartmarshall/growthbox-backend/internal/session"
)

// MaxStreakLookback bounds how far back the streak walk goes.
const MaxStreakLookback = 365

// Compute derives statistics from records and the set of days that have at
// least one record. today is the caller's calendar day (YYYY-MM-DD).
func Compute(records []domain.Record, recordDates []string, today string) domain.Statistics {
	var st domain.Statistics

	days := make(map[string]struct{}, len(recordDates))
	for _, d := range recordDates {
		days[d] = struct{}{}
	}
	for i := range records {
		days[records[i].Date] = struct{}{}
		st.TotalPhotos += len(records[i].Photos)
		if records[i].HasVideo() {
			st.TotalVideos++
		}
	}

	st.TotalRecords = len(records)
	st.TotalDays = len(days)
	st.ConsecutiveDays = consecutiveDays(days, today)
	return st
}

// consecutiveDays counts the run of days with records ending today, or
// ending yesterday when today has none yet.
func consecutiveDays(days map[string]struct{}, today string) int {
	day, err := dateutil.ParseDate(today, time.UTC)
	if err != nil {
		return 0
	}

	streak := 0
	if _, ok := days[today]; ok {
		streak = 1
	}

	for i := 1; i <= MaxStreakLookback; i++ {
		d := dateutil.FormatDate(day.AddDate(0, 0, -i))
		if _, ok := days[d]; !ok {
			break
		}
		streak++
	}
	return streak
}

// recordSource is the record store subset the service reads from.
type recordSource interface {
	List(ctx context.Context, sess *session.Session) domain.Result[[]domain.Record]
	RecordDates(ctx context.Context, sess *session.Session) domain.Result[[]string]
}

// Service computes statistics for a session owner.
type Service struct {
	log     *slog.Logger
	records recordSource
	clock   dateutil.Clock
}

// NewService creates a new statistics service instance.
func NewService(logger *slog.Logger, records recordSource, clock dateutil.Clock) *Service {
	return &Service{
		log:     logger.With("service", "stats"),
		records: records,
		clock:   clock,
	}
}

// Calculate fetches the owner's records and computes statistics. Any fetch
// failure yields the all-zero result.
func (s *Service) Calculate(ctx context.Context, sess *session.Session) domain.Statistics {
	records := s.records.List(ctx, sess)
	if records.IsFailed() {
		s.log.WarnContext(ctx, "statistics unavailable",
			slog.String("owner", sess.Identity()),
			slog.String("error", records.Reason.Error()))
		return domain.Statistics{}
	}

	dates := s.records.RecordDates(ctx, sess)
	if dates.IsFailed() {
		s.log.WarnContext(ctx, "statistics unavailable",
			slog.String("owner", sess.Identity()),
			slog.String("error", dates.Reason.Error()))
		return domain.Statistics{}
	}

	return Compute(records.Value(), dates.Value(), dateutil.Today(s.clock.Now()))
}
