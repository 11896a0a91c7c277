package record

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/growthbox-backend/internal/domain"
)

// QueryResponse is the cross-account record query contract. Code mirrors
// HTTP status semantics: 200 success, 400 bad input, 500 backend failure.
type QueryResponse struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    []domain.Record `json:"data"`
}

// QueryBabyRecords returns every record of babyID regardless of the caller,
// newest first. category "", "all" or "全部" passes everything; any other
// value keeps records carrying that tag (slug or label).
func (s *Service) QueryBabyRecords(ctx context.Context, babyID, category string) QueryResponse {
	babyID = strings.TrimSpace(babyID)
	if babyID == "" {
		return QueryResponse{Code: http.StatusBadRequest, Message: "babyId is required", Data: []domain.Record{}}
	}

	records, err := s.repo.ListByBaby(ctx, babyID)
	if err != nil {
		s.log.ErrorContext(ctx, "query baby records failed",
			slog.String("baby_id", babyID),
			slog.String("error", err.Error()))
		return QueryResponse{Code: http.StatusInternalServerError, Message: "query failed", Data: []domain.Record{}}
	}

	out := make([]domain.Record, 0, len(records))
	switch filter := domain.FilterKind(category).Normalize(); filter {
	case domain.FilterAll:
		out = append(out, records...)
	default:
		if tag, ok := domain.ParseTag(string(filter)); ok {
			for i := range records {
				if records[i].HasTag(tag) {
					out = append(out, records[i])
				}
			}
		}
	}

	return QueryResponse{Code: http.StatusOK, Message: "success", Data: out}
}
