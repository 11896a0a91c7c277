// Package record implements the journal record repository using PostgreSQL.
package record

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/heartmarshall/growthbox-backend/internal/adapter/postgres"
	"github.com/heartmarshall/growthbox-backend/internal/domain"
)

const table = "records"

var columns = []string{
	"id", "owner_ref", "baby_ref", "date", "time", "photos", "video", "text", "tags", "create_time", "update_time",
}

// Repo provides record persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new record repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID         string    `db:"id"`
	OwnerRef   string    `db:"owner_ref"`
	BabyRef    string    `db:"baby_ref"`
	Date       string    `db:"date"`
	Time       string    `db:"time"`
	Photos     []string  `db:"photos"`
	Video      string    `db:"video"`
	Text       string    `db:"text"`
	Tags       []string  `db:"tags"`
	CreateTime time.Time `db:"create_time"`
	UpdateTime time.Time `db:"update_time"`
}

func (r row) toDomain() domain.Record {
	tags := make([]domain.Tag, 0, len(r.Tags))
	for _, t := range r.Tags {
		tags = append(tags, domain.Tag(t))
	}
	photos := r.Photos
	if photos == nil {
		photos = []string{}
	}
	return domain.Record{
		ID:         r.ID,
		OwnerRef:   r.OwnerRef,
		BabyRef:    r.BabyRef,
		Date:       r.Date,
		Time:       r.Time,
		Photos:     photos,
		Video:      r.Video,
		Text:       r.Text,
		Tags:       tags,
		CreateTime: r.CreateTime,
		UpdateTime: r.UpdateTime,
	}
}

func tagStrings(tags []domain.Tag) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		out = append(out, string(t))
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

func scopeWhere(s domain.RecordScope) sq.Eq {
	eq := sq.Eq{"owner_ref": s.OwnerRef}
	if s.BabyRef != "" {
		eq["baby_ref"] = s.BabyRef
	}
	return eq
}

// List returns the scoped records, newest first.
func (r *Repo) List(ctx context.Context, scope domain.RecordScope) ([]domain.Record, error) {
	return r.selectRecords(ctx, scopeWhere(scope))
}

// ListByDate returns the scoped records of one day, newest first.
func (r *Repo) ListByDate(ctx context.Context, scope domain.RecordScope, date string) ([]domain.Record, error) {
	eq := scopeWhere(scope)
	eq["date"] = date
	return r.selectRecords(ctx, eq)
}

// ListByBaby returns every record of a baby regardless of owner, newest first.
func (r *Repo) ListByBaby(ctx context.Context, babyRef string) ([]domain.Record, error) {
	return r.selectRecords(ctx, sq.Eq{"baby_ref": babyRef})
}

// Dates returns the distinct days that have at least one scoped record, newest first.
func (r *Repo) Dates(ctx context.Context, scope domain.RecordScope) ([]string, error) {
	query, args, err := postgres.Builder().
		Select("DISTINCT date").
		From(table).
		Where(scopeWhere(scope)).
		OrderBy("date DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build record dates query: %w", err)
	}

	var dates []string
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &dates, query, args...); err != nil {
		return nil, postgres.MapError(err, "record dates", scope.OwnerRef)
	}
	return dates, nil
}

// GetByID returns a record by identity.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Record, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get record query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "record", id)
	}

	rec := rw.toDomain()
	return &rec, nil
}

// Exists reports whether ownerRef owns a record with the given identity.
func (r *Repo) Exists(ctx context.Context, id, ownerRef string) (bool, error) {
	query, args, err := postgres.Builder().
		Select("count(*)").
		From(table).
		Where(sq.Eq{"id": id, "owner_ref": ownerRef}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build record exists query: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return false, postgres.MapError(err, "record", id)
	}
	return n > 0, nil
}

func (r *Repo) selectRecords(ctx context.Context, where sq.Eq) ([]domain.Record, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		OrderBy("date DESC", "time DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list records query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "records", "")
	}

	out := make([]domain.Record, 0, len(rows))
	for _, rw := range rows {
		out = append(out, rw.toDomain())
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Insert stores a new record.
func (r *Repo) Insert(ctx context.Context, rec domain.Record) error {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(
			rec.ID, rec.OwnerRef, rec.BabyRef, rec.Date, rec.Time, nonNil(rec.Photos),
			rec.Video, rec.Text, tagStrings(rec.Tags), rec.CreateTime, rec.UpdateTime,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert record query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "record", rec.ID)
	}
	return nil
}

// Update rewrites the mutable fields of an owned record. Identity, owner and
// create time are never touched; baby_ref only when rec carries one.
func (r *Repo) Update(ctx context.Context, rec domain.Record) error {
	b := postgres.Builder().
		Update(table).
		Set("date", rec.Date).
		Set("time", rec.Time).
		Set("photos", nonNil(rec.Photos)).
		Set("video", rec.Video).
		Set("text", rec.Text).
		Set("tags", tagStrings(rec.Tags)).
		Set("update_time", rec.UpdateTime)
	if rec.BabyRef != "" {
		b = b.Set("baby_ref", rec.BabyRef)
	}

	query, args, err := b.Where(sq.Eq{"id": rec.ID, "owner_ref": rec.OwnerRef}).ToSql()
	if err != nil {
		return fmt.Errorf("build update record query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "record", rec.ID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("record %s: %w", rec.ID, domain.ErrNotFound)
	}
	return nil
}

// Delete removes an owned record and reports whether a row was removed.
func (r *Repo) Delete(ctx context.Context, id, ownerRef string) (bool, error) {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"id": id, "owner_ref": ownerRef}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build delete record query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return false, postgres.MapError(err, "record", id)
	}
	return tag.RowsAffected() > 0, nil
}
