package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/growthbox-backend/internal/controller"
	"github.com/heartmarshall/growthbox-backend/internal/domain"
	"github.com/heartmarshall/growthbox-backend/internal/session"
)

type profilePage interface {
	Load(ctx context.Context, sess *session.Session) controller.ProfileView
	SaveBaby(ctx context.Context, sess *session.Session, form controller.BabyForm) controller.BabyResult
}

type babyReader interface {
	Get(ctx context.Context, sess *session.Session) domain.Result[domain.BabyProfile]
}

// ProfileHandler serves the profile page and the caller's baby info.
type ProfileHandler struct {
	sessions sessionResolver
	profile  profilePage
	babies   babyReader
	log      *slog.Logger
}

// NewProfileHandler creates a ProfileHandler.
func NewProfileHandler(sessions sessionResolver, profile profilePage, babies babyReader, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		sessions: sessions,
		profile:  profile,
		babies:   babies,
		log:      logger.With("handler", "profile"),
	}
}

// Profile handles GET /api/profile.
func (h *ProfileHandler) Profile(w http.ResponseWriter, r *http.Request) {
	sess, ok := resolveSession(w, r, h.sessions, h.log)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.profile.Load(r.Context(), sess))
}

// GetBaby handles GET /api/baby.
func (h *ProfileHandler) GetBaby(w http.ResponseWriter, r *http.Request) {
	sess, ok := resolveSession(w, r, h.sessions, h.log)
	if !ok {
		return
	}
	if !sess.Authenticated() {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	res := h.babies.Get(r.Context(), sess)
	switch {
	case res.IsOK():
		writeJSON(w, http.StatusOK, res.Data)
	case res.IsEmpty():
		writeError(w, http.StatusNotFound, "baby profile not found")
	default:
		writeError(w, http.StatusServiceUnavailable, "baby profile unavailable")
	}
}

// SaveBaby handles PUT /api/baby.
func (h *ProfileHandler) SaveBaby(w http.ResponseWriter, r *http.Request) {
	var form controller.BabyForm
	if !decodeJSON(w, r, &form) {
		return
	}
	sess, ok := resolveSession(w, r, h.sessions, h.log)
	if !ok {
		return
	}
	res := h.profile.SaveBaby(r.Context(), sess, form)
	if res.Baby == nil {
		writeJSON(w, noticeStatus(res.Notice), res)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
