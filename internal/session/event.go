package session

import (
	"time"

	"github.com/heartmarshall/growthbox-backend/internal/domain"
)

// EventKind identifies a session lifecycle notification.
type EventKind int

const (
	EventStarted EventKind = iota + 1
	EventProfileChanged
	EventEnded
)

func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventProfileChanged:
		return "profile_changed"
	case EventEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Event is delivered to subscribers. Profile is nil when the session has
// no baby profile yet.
type Event struct {
	Kind     EventKind
	Identity string
	Profile  *domain.BabyProfile
	At       time.Time
	// NewUser is set on EventStarted for an identity seen for the first time.
	NewUser bool
	// Expired is set on EventEnded when the session was evicted for idleness.
	Expired bool
}
