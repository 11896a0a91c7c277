package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/growthbox-backend/internal/controller"
	"github.com/heartmarshall/growthbox-backend/internal/domain"
	"github.com/heartmarshall/growthbox-backend/internal/service/record"
	"github.com/heartmarshall/growthbox-backend/internal/session"
)

type followPage interface {
	Search(ctx context.Context, sess *session.Session, keyword string) controller.SearchView
	Follow(ctx context.Context, sess *session.Session, babyID, babyName string) *controller.Notice
	Unfollow(ctx context.Context, sess *session.Session, babyID string) *controller.Notice
	Followed(ctx context.Context, sess *session.Session) controller.FollowedView
}

type followedListPage interface {
	Load(ctx context.Context, babyID, babyName string, filter domain.FilterKind) controller.ListView
}

// babyRecordsQuery is the cross-account record query.
type babyRecordsQuery interface {
	QueryBabyRecords(ctx context.Context, babyID, category string) record.QueryResponse
}

// SocialHandler serves search, follows and followed records.
type SocialHandler struct {
	sessions sessionResolver
	follow   followPage
	followed followedListPage
	query    babyRecordsQuery
	log      *slog.Logger
}

// NewSocialHandler creates a SocialHandler.
func NewSocialHandler(
	sessions sessionResolver,
	follow followPage,
	followed followedListPage,
	query babyRecordsQuery,
	logger *slog.Logger,
) *SocialHandler {
	return &SocialHandler{
		sessions: sessions,
		follow:   follow,
		followed: followed,
		query:    query,
		log:      logger.With("handler", "social"),
	}
}

type followRequest struct {
	BabyID   string `json:"babyId"`
	BabyName string `json:"babyName"`
}

// Search handles GET /api/babies/search?keyword=.
func (h *SocialHandler) Search(w http.ResponseWriter, r *http.Request) {
	sess, ok := resolveSession(w, r, h.sessions, h.log)
	if !ok {
		return
	}
	view := h.follow.Search(r.Context(), sess, r.URL.Query().Get("keyword"))
	writeJSON(w, noticeStatus(view.Notice), view)
}

// BabyRecords handles GET /api/babies/{babyId}/records?category=. The body
// is the raw {code, message, data} query contract.
func (h *SocialHandler) BabyRecords(w http.ResponseWriter, r *http.Request) {
	resp := h.query.QueryBabyRecords(r.Context(), r.PathValue("babyId"), r.URL.Query().Get("category"))
	writeJSON(w, resp.Code, resp)
}

// Followed handles GET /api/follows.
func (h *SocialHandler) Followed(w http.ResponseWriter, r *http.Request) {
	sess, ok := resolveSession(w, r, h.sessions, h.log)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.follow.Followed(r.Context(), sess))
}

// Follow handles POST /api/follows.
func (h *SocialHandler) Follow(w http.ResponseWriter, r *http.Request) {
	var req followRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	sess, ok := resolveSession(w, r, h.sessions, h.log)
	if !ok {
		return
	}
	notice := h.follow.Follow(r.Context(), sess, req.BabyID, req.BabyName)
	writeJSON(w, noticeStatus(notice), noticeResponse{Notice: notice})
}

// Unfollow handles DELETE /api/follows/{babyId}.
func (h *SocialHandler) Unfollow(w http.ResponseWriter, r *http.Request) {
	sess, ok := resolveSession(w, r, h.sessions, h.log)
	if !ok {
		return
	}
	notice := h.follow.Unfollow(r.Context(), sess, r.PathValue("babyId"))
	writeJSON(w, noticeStatus(notice), noticeResponse{Notice: notice})
}

// FollowedRecords handles GET /api/follows/{babyId}/records?filter=&babyName=.
func (h *SocialHandler) FollowedRecords(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	view := h.followed.Load(r.Context(), r.PathValue("babyId"), q.Get("babyName"), domain.FilterKind(q.Get("filter")))
	writeJSON(w, http.StatusOK, view)
}
