// Package user implements the user registry using PostgreSQL.
package user

import (
	"context"
	"fmt"

	"github.com/heartmarshall/growthbox-backend/internal/adapter/postgres"
	"github.com/heartmarshall/growthbox-backend/internal/domain"
)

// Repo records which identities have used the service.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Touch registers ref on first sight and refreshes last_seen otherwise.
// Reports whether the user was created by this call.
func (r *Repo) Touch(ctx context.Context, ref string) (domain.User, bool, error) {
	query, args, err := postgres.Builder().
		Insert("users").
		Columns("ref").
		Values(ref).
		Suffix("ON CONFLICT (ref) DO UPDATE SET last_seen = now() RETURNING ref, created_at, last_seen, (xmax = 0) AS inserted").
		ToSql()
	if err != nil {
		return domain.User{}, false, fmt.Errorf("build touch user query: %w", err)
	}

	var (
		u        domain.User
		inserted bool
	)
	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&u.Ref, &u.CreatedAt, &u.LastSeen, &inserted)
	if err != nil {
		return domain.User{}, false, postgres.MapError(err, "user", ref)
	}
	return u, inserted, nil
}
