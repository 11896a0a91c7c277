// Package ctxutil carries per-request identifiers through a context.
package ctxutil

import (
	"context"
	"log/slog"
)

type (
	ownerRefKey  struct{}
	requestIDKey struct{}
)

// WithOwnerRef stores the caller's owner reference.
func WithOwnerRef(ctx context.Context, ref string) context.Context {
	return context.WithValue(ctx, ownerRefKey{}, ref)
}

// OwnerRefFromCtx reports the caller's owner reference; an empty value
// counts as absent.
func OwnerRefFromCtx(ctx context.Context) (string, bool) {
	ref, _ := ctx.Value(ownerRefKey{}).(string)
	return ref, ref != ""
}

// WithRequestID stores the request ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromCtx returns the request ID or "".
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// LogAttrs returns the identifiers present in ctx as log attributes.
func LogAttrs(ctx context.Context) []slog.Attr {
	attrs := make([]slog.Attr, 0, 2)
	if id := RequestIDFromCtx(ctx); id != "" {
		attrs = append(attrs, slog.String("request_id", id))
	}
	if ref, ok := OwnerRefFromCtx(ctx); ok {
		attrs = append(attrs, slog.String("owner", ref))
	}
	return attrs
}
