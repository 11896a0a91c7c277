package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/growthbox-backend/internal/domain"
	"github.com/heartmarshall/growthbox-backend/internal/session"
	"github.com/heartmarshall/growthbox-backend/pkg/ctxutil"
)

// sessionManager starts and ends identity sessions.
type sessionManager interface {
	Start(ctx context.Context, identity string) (*session.Session, error)
	End(ctx context.Context, identity string) bool
}

// tokenIssuer signs identity tokens.
type tokenIssuer interface {
	GenerateAccessToken(ownerRef string) (string, error)
}

// SessionHandler serves session start and end.
type SessionHandler struct {
	sessions    sessionManager
	tokens      tokenIssuer
	newIdentity func() (string, error)
	log         *slog.Logger
}

// NewSessionHandler creates a SessionHandler. newIdentity mints the
// identity of first-time callers.
func NewSessionHandler(sessions sessionManager, tokens tokenIssuer, newIdentity func() (string, error), logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		sessions:    sessions,
		tokens:      tokens,
		newIdentity: newIdentity,
		log:         logger.With("handler", "session"),
	}
}

type sessionResponse struct {
	Token    string              `json:"token"`
	Identity string              `json:"identity"`
	Baby     *domain.BabyProfile `json:"babyInfo,omitempty"`
}

// Start handles POST /api/session. A caller that already carries a valid
// token keeps its identity; anyone else gets a fresh one.
func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	identity, ok := ctxutil.OwnerRefFromCtx(r.Context())
	if !ok {
		var err error
		if identity, err = h.newIdentity(); err != nil {
			h.log.ErrorContext(r.Context(), "mint identity failed", slog.String("error", err.Error()))
			writeError(w, http.StatusInternalServerError, "internal server error")
			return
		}
	}

	sess, err := h.sessions.Start(r.Context(), identity)
	if err != nil {
		h.log.ErrorContext(r.Context(), "start session failed",
			slog.String("owner", identity),
			slog.String("error", err.Error()))
		writeError(w, http.StatusServiceUnavailable, "session unavailable")
		return
	}

	token, err := h.tokens.GenerateAccessToken(identity)
	if err != nil {
		h.log.ErrorContext(r.Context(), "issue token failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := sessionResponse{Token: token, Identity: identity}
	if p, ok := sess.Profile(); ok {
		resp.Baby = &p
	}
	writeJSON(w, http.StatusOK, resp)
}

// End handles DELETE /api/session.
func (h *SessionHandler) End(w http.ResponseWriter, r *http.Request) {
	identity, ok := ctxutil.OwnerRefFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	h.sessions.End(r.Context(), identity)
	w.WriteHeader(http.StatusNoContent)
}
