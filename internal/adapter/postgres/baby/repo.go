// Package baby implements the baby profile repository using PostgreSQL.
package baby

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/growthbox-backend/internal/adapter/postgres"
	"github.com/heartmarshall/growthbox-backend/internal/domain"
)

const table = "babies"

var columns = []string{
	"id", "baby_id", "owner_ref", "nickname", "birthday", "avatar", "created_at", "updated_at",
}

// Repo provides baby profile persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new baby profile repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID        uuid.UUID  `db:"id"`
	BabyID    string     `db:"baby_id"`
	OwnerRef  string     `db:"owner_ref"`
	Nickname  string     `db:"nickname"`
	Birthday  *time.Time `db:"birthday"`
	Avatar    string     `db:"avatar"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
}

func (r row) toDomain() domain.BabyProfile {
	return domain.BabyProfile{
		ID:        r.ID,
		BabyID:    r.BabyID,
		OwnerRef:  r.OwnerRef,
		Nickname:  r.Nickname,
		Birthday:  r.Birthday,
		Avatar:    r.Avatar,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// GetByOwner returns the profile owned by ownerRef.
func (r *Repo) GetByOwner(ctx context.Context, ownerRef string) (*domain.BabyProfile, error) {
	return r.getOne(ctx, sq.Eq{"owner_ref": ownerRef}, ownerRef)
}

// GetByBabyID returns the profile with the given public baby id.
func (r *Repo) GetByBabyID(ctx context.Context, babyID string) (*domain.BabyProfile, error) {
	return r.getOne(ctx, sq.Eq{"baby_id": babyID}, babyID)
}

// GetByBabyIDs returns the profiles found for ids, in no particular order.
func (r *Repo) GetByBabyIDs(ctx context.Context, ids []string) ([]domain.BabyProfile, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.selectMany(ctx, sq.Eq{"baby_id": ids}, "nickname ASC", 0)
}

// Search returns profiles whose nickname contains keyword, case-insensitively.
func (r *Repo) Search(ctx context.Context, keyword string, limit int) ([]domain.BabyProfile, error) {
	return r.selectMany(ctx, sq.Expr("nickname ~* ?", regexp.QuoteMeta(keyword)), "nickname ASC", limit)
}

func (r *Repo) getOne(ctx context.Context, where sq.Sqlizer, key string) (*domain.BabyProfile, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get baby query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "baby", key)
	}

	p := rw.toDomain()
	return &p, nil
}

func (r *Repo) selectMany(ctx context.Context, where sq.Sqlizer, orderBy string, limit int) ([]domain.BabyProfile, error) {
	b := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		OrderBy(orderBy)
	if limit > 0 {
		b = b.Limit(uint64(limit))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list babies query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "babies", "")
	}

	out := make([]domain.BabyProfile, 0, len(rows))
	for _, rw := range rows {
		out = append(out, rw.toDomain())
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Upsert creates the owner's profile or updates it in place.
// baby_id and created_at are kept from the existing row.
func (r *Repo) Upsert(ctx context.Context, p domain.BabyProfile) (*domain.BabyProfile, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(p.ID, p.BabyID, p.OwnerRef, p.Nickname, p.Birthday, p.Avatar, p.CreatedAt, p.UpdatedAt).
		Suffix(`ON CONFLICT (owner_ref) DO UPDATE SET
			nickname = EXCLUDED.nickname,
			birthday = EXCLUDED.birthday,
			avatar = EXCLUDED.avatar,
			updated_at = EXCLUDED.updated_at
		RETURNING ` + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build upsert baby query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "baby", p.OwnerRef)
	}

	out := rw.toDomain()
	return &out, nil
}
