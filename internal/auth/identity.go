package auth

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const identityPrefix = "gb_"

// NewIdentity returns a fresh opaque owner reference for a caller the
// identity service has not seen before.
func NewIdentity() (string, error) {
	u, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate identity: %w", err)
	}
	return identityPrefix + strings.ReplaceAll(u.String(), "-", ""), nil
}
