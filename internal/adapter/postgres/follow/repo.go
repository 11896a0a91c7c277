// Package follow implements the follow edge repository using PostgreSQL.
package follow

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/growthbox-backend/internal/adapter/postgres"
	"github.com/heartmarshall/growthbox-backend/internal/domain"
)

const table = "follows"

var columns = []string{"id", "follower_ref", "baby_id", "baby_name", "created_at"}

// Repo provides follow edge persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new follow repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID          uuid.UUID `db:"id"`
	FollowerRef string    `db:"follower_ref"`
	BabyID      string    `db:"baby_id"`
	BabyName    string    `db:"baby_name"`
	CreatedAt   time.Time `db:"created_at"`
}

// Insert creates the edge unless (follower, baby) already exists.
// created_at is assigned by the database. Reports whether a row was created.
func (r *Repo) Insert(ctx context.Context, e domain.FollowEdge) (bool, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "follower_ref", "baby_id", "baby_name").
		Values(e.ID, e.FollowerRef, e.BabyID, e.BabyName).
		Suffix("ON CONFLICT (follower_ref, baby_id) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build insert follow query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return false, postgres.MapError(err, "follow", e.BabyID)
	}
	return tag.RowsAffected() > 0, nil
}

// Delete removes the edge and reports whether a row was removed.
func (r *Repo) Delete(ctx context.Context, followerRef, babyID string) (bool, error) {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"follower_ref": followerRef, "baby_id": babyID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build delete follow query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return false, postgres.MapError(err, "follow", babyID)
	}
	return tag.RowsAffected() > 0, nil
}

// Exists reports whether followerRef follows babyID.
func (r *Repo) Exists(ctx context.Context, followerRef, babyID string) (bool, error) {
	query, args, err := postgres.Builder().
		Select("count(*)").
		From(table).
		Where(sq.Eq{"follower_ref": followerRef, "baby_id": babyID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build follow exists query: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return false, postgres.MapError(err, "follow", babyID)
	}
	return n > 0, nil
}

// ListByFollower returns the follower's edges, newest first.
func (r *Repo) ListByFollower(ctx context.Context, followerRef string) ([]domain.FollowEdge, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"follower_ref": followerRef}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list follows query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "follows", followerRef)
	}

	out := make([]domain.FollowEdge, 0, len(rows))
	for _, rw := range rows {
		out = append(out, domain.FollowEdge{
			ID:          rw.ID,
			FollowerRef: rw.FollowerRef,
			BabyID:      rw.BabyID,
			BabyName:    rw.BabyName,
			CreatedAt:   rw.CreatedAt,
		})
	}
	return out, nil
}
