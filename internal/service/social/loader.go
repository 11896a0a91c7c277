package social

import (
	"context"
	"log/slog"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/growthbox-backend/internal/domain"
)

const maxBatch = 100

// newProfileLoader creates a loader that resolves baby ids to profiles in
// batches. Created per call; the loader cache lives as long as the call.
func newProfileLoader(repo profileRepo, wait time.Duration) *dataloader.Loader[string, *domain.BabyProfile] {
	return dataloader.NewBatchedLoader(
		newProfilesBatchFn(repo),
		dataloader.WithWait[string, *domain.BabyProfile](wait),
		dataloader.WithBatchCapacity[string, *domain.BabyProfile](maxBatch),
	)
}

func newProfilesBatchFn(repo profileRepo) dataloader.BatchFunc[string, *domain.BabyProfile] {
	return func(ctx context.Context, keys []string) []*dataloader.Result[*domain.BabyProfile] {
		rows, err := repo.GetByBabyIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.BabyProfile](len(keys), err)
		}

		byBaby := make(map[string]*domain.BabyProfile, len(rows))
		for i := range rows {
			p := rows[i]
			byBaby[p.BabyID] = &p
		}

		results := make([]*dataloader.Result[*domain.BabyProfile], len(keys))
		for i, key := range keys {
			results[i] = &dataloader.Result[*domain.BabyProfile]{Data: byBaby[key]}
		}
		return results
	}
}

// errorResults returns a slice of error results for all keys.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// lookupBatched resolves every edge's profile through one loader.
func (s *Service) lookupBatched(ctx context.Context, edges []domain.FollowEdge) []*domain.BabyProfile {
	keys := make([]string, len(edges))
	for i, e := range edges {
		keys[i] = e.BabyID
	}

	loader := newProfileLoader(s.profiles, s.batchWait)
	profiles, errs := loader.LoadMany(ctx, keys)()

	out := make([]*domain.BabyProfile, len(edges))
	for i := range edges {
		if i < len(errs) && errs[i] != nil {
			s.log.WarnContext(ctx, "followed profile lookup failed",
				slog.String("baby_id", keys[i]),
				slog.String("error", errs[i].Error()))
			continue
		}
		if i < len(profiles) {
			out[i] = profiles[i]
		}
	}
	return out
}
