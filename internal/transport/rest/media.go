package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/growthbox-backend/internal/adapter/media"
	"github.com/heartmarshall/growthbox-backend/pkg/ctxutil"
)

// mediaStager accepts uploads into staging.
type mediaStager interface {
	Stage(ctx context.Context, filename string, r io.Reader) (string, error)
}

// MediaHandler serves uploads and durable media files.
type MediaHandler struct {
	stager  mediaStager
	files   http.Handler
	baseURL string
	log     *slog.Logger
}

// NewMediaHandler creates a MediaHandler serving files under root at baseURL.
func NewMediaHandler(stager mediaStager, root, baseURL string, logger *slog.Logger) *MediaHandler {
	baseURL = strings.TrimRight(baseURL, "/")
	return &MediaHandler{
		stager:  stager,
		files:   http.StripPrefix(baseURL, http.FileServer(http.Dir(root))),
		baseURL: baseURL,
		log:     logger.With("handler", "media"),
	}
}

type uploadResponse struct {
	Ref string `json:"ref"`
}

// Upload handles POST /api/media (multipart field "file"). The returned
// reference is promoted to durable storage when a record or profile
// referencing it is saved.
func (h *MediaHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if _, ok := ctxutil.OwnerRefFromCtx(r.Context()); !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file")
		return
	}
	defer file.Close()

	ref, err := h.stager.Stage(r.Context(), header.Filename, file)
	switch {
	case errors.Is(err, media.ErrTooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, "file too large")
		return
	case err != nil:
		h.log.ErrorContext(r.Context(), "stage upload failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "upload failed")
		return
	}

	writeJSON(w, http.StatusCreated, uploadResponse{Ref: ref})
}

// Files handles GET {baseURL}/. Staged uploads are not served.
func (h *MediaHandler) Files(w http.ResponseWriter, r *http.Request) {
	rel := strings.TrimPrefix(r.URL.Path, h.baseURL)
	if strings.HasPrefix(rel, "/tmp/") || strings.HasSuffix(rel, "/") {
		http.NotFound(w, r)
		return
	}
	h.files.ServeHTTP(w, r)
}
