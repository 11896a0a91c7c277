// Package media keeps uploaded photos and videos on the local filesystem.
//
// Uploads land in a staging directory and are referenced by a local
// reference ("tmp/<name>"). Store promotes a staged file into the durable
// tree at {kind}s/{owner}/{millis}_{rand}{ext} and returns its public URL.
package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/growthbox-backend/internal/config"
)

// Kind is the media category; it names the top-level storage folder.
type Kind string

const (
	KindPhoto Kind = "photo"
	KindVideo Kind = "video"
)

const stagedPrefix = "tmp/"

// ErrTooLarge is returned by Stage when the upload exceeds the size limit.
var ErrTooLarge = errors.New("media: upload too large")

// FSStore stores media under a root directory.
type FSStore struct {
	root      string
	uploadDir string
	baseURL   string
	maxBytes  int64
	log       *slog.Logger
	now       func() time.Time
}

// NewFSStore creates the store and its directories.
func NewFSStore(log *slog.Logger, cfg config.MediaConfig) (*FSStore, error) {
	s := &FSStore{
		root:      cfg.Root,
		uploadDir: filepath.Join(cfg.Root, "tmp"),
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		maxBytes:  cfg.MaxUploadBytes,
		log:       log.With("adapter", "media"),
		now:       time.Now,
	}
	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("create media dirs: %w", err)
	}
	return s, nil
}

// BaseURL is the URL prefix durable references start with.
func (s *FSStore) BaseURL() string { return s.baseURL }

// Root is the directory durable files live under.
func (s *FSStore) Root() string { return s.root }

// IsDurable reports whether ref already points into durable storage.
func (s *FSStore) IsDurable(ref string) bool {
	return strings.HasPrefix(ref, s.baseURL+"/")
}

// Stage writes an upload into the staging directory and returns its local reference.
func (s *FSStore) Stage(ctx context.Context, filename string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := uuid.NewString() + strings.ToLower(filepath.Ext(filename))
	dst := filepath.Join(s.uploadDir, name)

	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create staged file: %w", err)
	}

	limit := s.maxBytes
	if limit <= 0 {
		limit = 1 << 62
	}
	n, copyErr := io.Copy(f, io.LimitReader(r, limit+1))
	closeErr := f.Close()
	switch {
	case copyErr != nil:
		_ = os.Remove(dst)
		return "", fmt.Errorf("write staged file: %w", copyErr)
	case n > limit:
		_ = os.Remove(dst)
		return "", ErrTooLarge
	case closeErr != nil:
		_ = os.Remove(dst)
		return "", fmt.Errorf("close staged file: %w", closeErr)
	}

	return stagedPrefix + name, nil
}

// Store promotes a staged file to durable storage and returns its URL.
// Any failure is logged and the local reference is returned unchanged.
func (s *FSStore) Store(ctx context.Context, kind Kind, ownerRef, localRef string) string {
	if s.IsDurable(localRef) {
		return localRef
	}

	durable, err := s.promote(ctx, kind, ownerRef, localRef)
	if err != nil {
		s.log.WarnContext(ctx, "media upload failed, keeping local reference",
			slog.String("kind", string(kind)),
			slog.String("ref", localRef),
			slog.String("error", err.Error()),
		)
		return localRef
	}
	return durable
}

func (s *FSStore) promote(ctx context.Context, kind Kind, ownerRef, localRef string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !strings.HasPrefix(localRef, stagedPrefix) {
		return "", fmt.Errorf("not a staged reference: %q", localRef)
	}
	name := filepath.Base(strings.TrimPrefix(localRef, stagedPrefix))
	src := filepath.Join(s.uploadDir, name)

	rel := path.Join(
		string(kind)+"s",
		sanitize(ownerRef),
		fmt.Sprintf("%d_%d%s", s.now().UnixMilli(), rand.IntN(1_000_000), filepath.Ext(name)),
	)
	dst := filepath.Join(s.root, filepath.FromSlash(rel))

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("create media dir: %w", err)
	}
	if err := os.Rename(src, dst); err != nil {
		return "", fmt.Errorf("move staged file: %w", err)
	}

	return s.baseURL + "/" + rel, nil
}

// SweepStaged removes staged uploads last modified before cutoff. Uploads
// that were never attached to a record or profile accumulate otherwise.
func (s *FSStore) SweepStaged(ctx context.Context, cutoff time.Time) (int, error) {
	entries, err := os.ReadDir(s.uploadDir)
	if err != nil {
		return 0, fmt.Errorf("read staging dir: %w", err)
	}

	removed := 0
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return removed, err
		}
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil || !info.ModTime().Before(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(s.uploadDir, e.Name())); err != nil && !errors.Is(err, os.ErrNotExist) {
			return removed, fmt.Errorf("remove staged file: %w", err)
		}
		removed++
	}
	return removed, nil
}

// Check reports whether the staging directory exists and accepts writes.
func (s *FSStore) Check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f, err := os.CreateTemp(s.uploadDir, ".writecheck-*")
	if err != nil {
		return fmt.Errorf("media.Check: %w", err)
	}
	name := f.Name()
	_ = f.Close()
	return os.Remove(name)
}

func sanitize(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "anonymous"
	}
	return b.String()
}
