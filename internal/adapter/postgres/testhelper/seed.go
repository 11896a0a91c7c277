package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/growthbox-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// UniqueRef returns an owner reference that no other test uses.
func UniqueRef(prefix string) string {
	return prefix + "-" + uniqueSuffix()
}

// SeedBaby inserts a baby profile owned by ownerRef.
func SeedBaby(t *testing.T, pool *pgxpool.Pool, ownerRef, nickname string) domain.BabyProfile {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	birthday := time.Date(now.Year()-1, now.Month(), 1, 0, 0, 0, 0, time.UTC)
	baby := domain.BabyProfile{
		ID:        uuid.New(),
		BabyID:    "baby_" + uniqueSuffix(),
		OwnerRef:  ownerRef,
		Nickname:  nickname,
		Birthday:  &birthday,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO babies (id, baby_id, owner_ref, nickname, birthday, avatar, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		baby.ID, baby.BabyID, baby.OwnerRef, baby.Nickname, baby.Birthday, baby.Avatar, baby.CreatedAt, baby.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedBaby insert: %v", err)
	}

	return baby
}

// SeedRecord inserts a text record for ownerRef/babyRef on date at clock.
func SeedRecord(t *testing.T, pool *pgxpool.Pool, ownerRef, babyRef, date, clock string) domain.Record {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	rec := domain.Record{
		ID:         "record_" + uniqueSuffix(),
		OwnerRef:   ownerRef,
		BabyRef:    babyRef,
		Date:       date,
		Time:       clock,
		Photos:     []string{},
		Text:       "seeded " + date + " " + clock,
		Tags:       []domain.Tag{domain.TagDaily},
		CreateTime: now,
		UpdateTime: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO records (id, owner_ref, baby_ref, date, time, photos, video, text, tags, create_time, update_time)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		rec.ID, rec.OwnerRef, rec.BabyRef, rec.Date, rec.Time, rec.Photos, rec.Video, rec.Text,
		[]string{string(domain.TagDaily)}, rec.CreateTime, rec.UpdateTime,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRecord insert: %v", err)
	}

	return rec
}
