package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/growthbox-backend/internal/controller"
	"github.com/heartmarshall/growthbox-backend/internal/session"
	"github.com/heartmarshall/growthbox-backend/pkg/ctxutil"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// noticeStatus maps a failed mutation's notice to an HTTP status.
func noticeStatus(n *controller.Notice) int {
	switch {
	case n == nil:
		return http.StatusOK
	case n.Message == controller.MsgLoginRequired:
		return http.StatusUnauthorized
	case n.Kind != controller.NoticeError:
		return http.StatusOK
	}
	switch n.Message {
	case controller.MsgRecordNotFound:
		return http.StatusNotFound
	case controller.MsgEditOwnOnly, controller.MsgDeleteOwnOnly, controller.MsgSelfFollow:
		return http.StatusForbidden
	case controller.MsgSaveFailed, controller.MsgDeleteFailed, controller.MsgFollowFailed,
		controller.MsgUnfollowFailed, controller.MsgOperationFailed, controller.MsgSearchFailed,
		controller.MsgLoadFailed, controller.MsgLoadRecordsFailed:
		return http.StatusServiceUnavailable
	default:
		return http.StatusUnprocessableEntity
	}
}

// noticeResponse is the body of endpoints that only report an outcome.
type noticeResponse struct {
	Notice     *controller.Notice     `json:"notice,omitempty"`
	Navigation *controller.Navigation `json:"navigation,omitempty"`
}

// ---------------------------------------------------------------------------
// Session resolution
// ---------------------------------------------------------------------------

// sessionResolver maps the authenticated identity to its live session.
type sessionResolver interface {
	Resolve(ctx context.Context, identity string) (*session.Session, error)
}

// resolveSession returns the caller's session, anonymous when the request
// carries no identity. It writes a 503 and returns false when the session
// cannot be started.
func resolveSession(w http.ResponseWriter, r *http.Request, sessions sessionResolver, log *slog.Logger) (*session.Session, bool) {
	ref, ok := ctxutil.OwnerRefFromCtx(r.Context())
	if !ok {
		return session.Anonymous(), true
	}
	sess, err := sessions.Resolve(r.Context(), ref)
	if err != nil {
		log.ErrorContext(r.Context(), "resolve session failed",
			slog.String("owner", ref),
			slog.String("error", err.Error()))
		writeError(w, http.StatusServiceUnavailable, "session unavailable")
		return nil, false
	}
	return sess, true
}
