package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/heartmarshall/growthbox-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (string, error)
}

// ownerRecorder is implemented by response writers that report the caller
// identity in the request log.
type ownerRecorder interface {
	SetOwner(ref string)
}

// Auth resolves a bearer token into the caller identity. Requests without
// a token pass through anonymously; invalid tokens are rejected with 401.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			ownerRef, err := validator.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			if rec, ok := w.(ownerRecorder); ok {
				rec.SetOwner(ownerRef)
			}
			ctx := ctxutil.WithOwnerRef(r.Context(), ownerRef)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
