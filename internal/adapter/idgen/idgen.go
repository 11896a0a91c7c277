// Package idgen issues public identifiers for records and baby profiles.
package idgen

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Generator issues identifiers of the form {prefix}_{unix-millis}_{9 random chars}.
type Generator struct {
	now func() time.Time
}

// New creates a Generator using the wall clock.
func New() *Generator {
	return &Generator{now: time.Now}
}

// NewRecordID returns a fresh record identifier.
func (g *Generator) NewRecordID(ctx context.Context) (string, error) {
	return g.next(ctx, "record")
}

// NewBabyID returns a fresh baby identifier.
func (g *Generator) NewBabyID(ctx context.Context) (string, error) {
	return g.next(ctx, "baby")
}

func (g *Generator) next(ctx context.Context, prefix string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	u, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate %s id: %w", prefix, err)
	}
	suffix := strings.ReplaceAll(u.String(), "-", "")[:9]
	return fmt.Sprintf("%s_%d_%s", prefix, g.now().UnixMilli(), suffix), nil
}

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// Fallback returns a locally generated identifier {unix-millis}-{9 base36 chars}.
// Used when the generator fails.
func Fallback(now time.Time) string {
	var b strings.Builder
	b.WriteString(strconv.FormatInt(now.UnixMilli(), 10))
	b.WriteByte('-')
	for range 9 {
		b.WriteByte(base36[rand.IntN(len(base36))])
	}
	return b.String()
}
