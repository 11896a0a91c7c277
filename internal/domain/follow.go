package domain

import (
	"time"

	"github.com/google/uuid"
)

// FollowEdge records that FollowerRef follows the baby identified by BabyID.
// (FollowerRef, BabyID) is unique.
type FollowEdge struct {
	ID          uuid.UUID
	FollowerRef string
	BabyID      string
	BabyName    string
	CreatedAt   time.Time
}

// FollowedBaby is a followed profile joined with its edge.
type FollowedBaby struct {
	Profile    BabyProfile `json:"profile"`
	FollowID   uuid.UUID   `json:"followId"`
	FollowTime time.Time   `json:"followTime"`
	Age        string      `json:"age"`
}

// SearchResult is a profile returned by the profile search service.
type SearchResult struct {
	Profile     BabyProfile `json:"profile"`
	IsFollowing bool        `json:"isFollowing"`
	IsOwn       bool        `json:"isOwn"`
	Age         string      `json:"age"`
}
