package controller

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/growthbox-backend/internal/adapter/media"
	"github.com/heartmarshall/growthbox-backend/internal/dateutil"
	"github.com/heartmarshall/growthbox-backend/internal/domain"
	"github.com/heartmarshall/growthbox-backend/internal/session"
)

// ---------------------------------------------------------------------------
// Test helpers
// ---------------------------------------------------------------------------

// testNow is Monday 2024-05-20 09:30 UTC.
var testNow = time.Date(2024, 5, 20, 9, 30, 0, 0, time.UTC)

var errBackend = errors.New("backend down")

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func testClock() dateutil.Clock { return dateutil.FixedClock{T: testNow} }

func ownerSession() *session.Session {
	return session.New("owner-1", &domain.BabyProfile{BabyID: "baby_own", OwnerRef: "owner-1", Nickname: "Doudou"})
}

func ownRecord(id, date, clock string) domain.Record {
	return domain.Record{ID: id, OwnerRef: "owner-1", Date: date, Time: clock, Text: "note " + id}
}

func recordsResult(recs ...domain.Record) domain.Result[[]domain.Record] {
	return domain.OK(recs)
}

// fakeMedia promotes references starting with "tmp/" unless failing.
func fakeMedia(failing bool) *mediaStoreMock {
	return &mediaStoreMock{
		StoreFunc: func(_ context.Context, kind media.Kind, ownerRef, localRef string) string {
			if failing || !strings.HasPrefix(localRef, "tmp/") {
				return localRef
			}
			return "/media/" + string(kind) + "s/" + ownerRef + "/" + strings.TrimPrefix(localRef, "tmp/")
		},
		IsDurableFunc: func(ref string) bool {
			return strings.HasPrefix(ref, "/media/")
		},
	}
}

func groupIDs(groups []domain.DateGroup) [][]string {
	var out [][]string
	for _, g := range groups {
		var row []string
		for _, r := range g.Records {
			row = append(row, r.ID)
		}
		out = append(out, row)
	}
	return out
}
