package rest

import (
	"net/http"
	"strings"
)

// Handlers groups the REST handlers mounted by NewRouter.
type Handlers struct {
	Health  *HealthHandler
	Session *SessionHandler
	Journal *JournalHandler
	Social  *SocialHandler
	Profile *ProfileHandler
	Media   *MediaHandler
}

// NewRouter registers every route on a new ServeMux.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("POST /api/session", h.Session.Start)
	mux.HandleFunc("DELETE /api/session", h.Session.End)

	mux.HandleFunc("GET /api/calendar", h.Journal.Calendar)
	mux.HandleFunc("GET /api/calendar/today", h.Journal.Today)
	mux.HandleFunc("GET /api/calendar/day", h.Journal.Day)
	mux.HandleFunc("GET /api/editor", h.Journal.Editor)
	mux.HandleFunc("GET /api/records", h.Journal.List)
	mux.HandleFunc("POST /api/records", h.Journal.Create)
	mux.HandleFunc("GET /api/records/{id}", h.Journal.Get)
	mux.HandleFunc("PUT /api/records/{id}", h.Journal.Update)
	mux.HandleFunc("DELETE /api/records/{id}", h.Journal.Delete)

	mux.HandleFunc("GET /api/profile", h.Profile.Profile)
	mux.HandleFunc("GET /api/baby", h.Profile.GetBaby)
	mux.HandleFunc("PUT /api/baby", h.Profile.SaveBaby)

	mux.HandleFunc("GET /api/babies/search", h.Social.Search)
	mux.HandleFunc("GET /api/babies/{babyId}/records", h.Social.BabyRecords)
	mux.HandleFunc("GET /api/follows", h.Social.Followed)
	mux.HandleFunc("POST /api/follows", h.Social.Follow)
	mux.HandleFunc("DELETE /api/follows/{babyId}", h.Social.Unfollow)
	mux.HandleFunc("GET /api/follows/{babyId}/records", h.Social.FollowedRecords)

	mux.HandleFunc("POST /api/media", h.Media.Upload)
	// Media on an external host is served by that host.
	if strings.HasPrefix(h.Media.baseURL, "/") {
		mux.HandleFunc("GET "+h.Media.baseURL+"/", h.Media.Files)
	}

	return mux
}
