// Package controller produces the view models of the journal pages.
//
// Controllers never render markup and never retry. Every failure that the
// user should see is surfaced as a Notice; page transitions are returned
// as a Navigation value for the caller to follow.
package controller

import (
	"context"

	"github.com/heartmarshall/growthbox-backend/internal/adapter/media"
	"github.com/heartmarshall/growthbox-backend/internal/domain"
	"github.com/heartmarshall/growthbox-backend/internal/service/baby"
	"github.com/heartmarshall/growthbox-backend/internal/service/record"
	"github.com/heartmarshall/growthbox-backend/internal/session"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces
// ---------------------------------------------------------------------------

// recordStore is the record client used by every page.
type recordStore interface {
	List(ctx context.Context, sess *session.Session) domain.Result[[]domain.Record]
	ByDate(ctx context.Context, sess *session.Session, date string) domain.Result[[]domain.Record]
	ByBaby(ctx context.Context, sess *session.Session, babyID string) domain.Result[[]domain.Record]
	RecordDates(ctx context.Context, sess *session.Session) domain.Result[[]string]
	Get(ctx context.Context, id string) domain.Result[domain.Record]
	Save(ctx context.Context, sess *session.Session, rec domain.Record) (domain.Record, bool)
	DeleteByID(ctx context.Context, sess *session.Session, id string) bool
	QueryBabyRecords(ctx context.Context, babyID, category string) record.QueryResponse
}

// statsCalculator summarises the caller's journal.
type statsCalculator interface {
	Calculate(ctx context.Context, sess *session.Session) domain.Statistics
}

// socialGraph is the follow relation client.
type socialGraph interface {
	Search(ctx context.Context, sess *session.Session, keyword string) domain.Result[[]domain.SearchResult]
	Follow(ctx context.Context, sess *session.Session, babyID, babyName string) error
	Unfollow(ctx context.Context, sess *session.Session, babyID string) (bool, error)
	IsFollowing(ctx context.Context, sess *session.Session, babyID string) bool
	ListFollowed(ctx context.Context, sess *session.Session) domain.Result[[]domain.FollowedBaby]
}

// babyProfiles maintains the caller's own baby profile.
type babyProfiles interface {
	Get(ctx context.Context, sess *session.Session) domain.Result[domain.BabyProfile]
	Save(ctx context.Context, sess *session.Session, input baby.SaveInput) (*domain.BabyProfile, error)
}

// mediaStore promotes staged uploads to durable storage.
type mediaStore interface {
	Store(ctx context.Context, kind media.Kind, ownerRef, localRef string) string
	IsDurable(ref string) bool
}
