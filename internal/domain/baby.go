package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxNicknameLength bounds BabyProfile.Nickname in runes.
const MaxNicknameLength = 50

// BabyProfile is the child profile owned by one user.
// BabyID is the stable public identifier; it never changes once assigned.
type BabyProfile struct {
	ID        uuid.UUID  `json:"-"`
	BabyID    string     `json:"babyId"`
	OwnerRef  string     `json:"ownerRef"`
	Nickname  string     `json:"nickname"`
	Birthday  *time.Time `json:"birthday,omitempty"`
	Avatar    string     `json:"avatar,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// IsZero reports whether the profile is unset.
func (p *BabyProfile) IsZero() bool {
	return p == nil || (p.BabyID == "" && p.OwnerRef == "")
}

// Validate checks nickname and birthday against now.
func (p *BabyProfile) Validate(now time.Time) error {
	var errs []FieldError

	nick := strings.TrimSpace(p.Nickname)
	switch {
	case nick == "":
		errs = append(errs, FieldError{Field: "nickname", Message: "nickname is required"})
	case len([]rune(nick)) > MaxNicknameLength:
		errs = append(errs, FieldError{Field: "nickname", Message: "nickname is too long"})
	}
	if p.Birthday != nil && p.Birthday.After(now) {
		errs = append(errs, FieldError{Field: "birthday", Message: "birthday cannot be in the future"})
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// User is an identity that has started at least one session.
type User struct {
	Ref       string
	CreatedAt time.Time
	LastSeen  time.Time
}
