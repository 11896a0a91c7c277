package controller

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/heartmarshall/growthbox-backend/internal/domain"
	"github.com/heartmarshall/growthbox-backend/internal/session"
)

// SearchView is the result of a profile search.
type SearchView struct {
	Keyword string                `json:"keyword"`
	Results []domain.SearchResult `json:"results"`
	Notice  *Notice               `json:"notice,omitempty"`
}

// FollowedView lists the followed babies of the follow page.
type FollowedView struct {
	Babies []domain.FollowedBaby `json:"babies"`
	Notice *Notice               `json:"notice,omitempty"`
}

// FollowPage drives the follow page.
type FollowPage struct {
	log    *slog.Logger
	social socialGraph
}

// NewFollowPage creates the follow page controller.
func NewFollowPage(logger *slog.Logger, graph socialGraph) *FollowPage {
	return &FollowPage{
		log:    logger.With("controller", "follow"),
		social: graph,
	}
}

// Search finds profiles whose nickname contains keyword.
func (f *FollowPage) Search(ctx context.Context, sess *session.Session, keyword string) SearchView {
	keyword = strings.TrimSpace(keyword)
	view := SearchView{Keyword: keyword, Results: []domain.SearchResult{}}

	if keyword == "" {
		view.Notice = infoNotice(MsgSearchKeyword)
		return view
	}
	if !sess.Authenticated() {
		view.Notice = infoNotice(MsgLoginRequired)
		return view
	}

	res := f.social.Search(ctx, sess, keyword)
	switch {
	case res.IsFailed():
		view.Notice = errorNotice(MsgSearchFailed)
	case res.IsOK() && len(res.Data) > 0:
		view.Results = res.Data
	default:
		view.Notice = infoNotice(MsgNoSearchResults)
	}
	return view
}

// Follow follows babyID. Following an already followed baby reports it
// without failing.
func (f *FollowPage) Follow(ctx context.Context, sess *session.Session, babyID, babyName string) *Notice {
	if !sess.Authenticated() {
		return infoNotice(MsgLoginRequired)
	}
	if strings.TrimSpace(babyID) == "" {
		return errorNotice(MsgMissingParams)
	}
	if babyID == sess.BabyID() {
		return errorNotice(MsgSelfFollow)
	}
	if f.social.IsFollowing(ctx, sess, babyID) {
		return infoNotice(MsgAlreadyFollowing)
	}

	err := f.social.Follow(ctx, sess, babyID, babyName)
	switch {
	case err == nil:
		return successNotice(MsgFollowSucceeded)
	case errors.Is(err, domain.ErrSelfFollow):
		return errorNotice(MsgSelfFollow)
	case errors.Is(err, domain.ErrUnauthenticated):
		return infoNotice(MsgLoginRequired)
	default:
		f.log.WarnContext(ctx, "follow failed",
			slog.String("baby_id", babyID),
			slog.String("error", err.Error()))
		return errorNotice(MsgFollowFailed)
	}
}

// Unfollow removes the follow edge to babyID.
func (f *FollowPage) Unfollow(ctx context.Context, sess *session.Session, babyID string) *Notice {
	if !sess.Authenticated() {
		return infoNotice(MsgLoginRequired)
	}
	if _, err := f.social.Unfollow(ctx, sess, babyID); err != nil {
		f.log.WarnContext(ctx, "unfollow failed",
			slog.String("baby_id", babyID),
			slog.String("error", err.Error()))
		return errorNotice(MsgUnfollowFailed)
	}
	return successNotice(MsgUnfollowSucceeded)
}

// Followed lists the followed babies with their age.
func (f *FollowPage) Followed(ctx context.Context, sess *session.Session) FollowedView {
	view := FollowedView{Babies: []domain.FollowedBaby{}}

	res := f.social.ListFollowed(ctx, sess)
	switch {
	case res.IsOK():
		view.Babies = res.Data
	case res.IsFailed():
		view.Notice = errorNotice(MsgLoadFailed)
	}
	return view
}

// OpenRecords opens the followed record list of a baby.
func (f *FollowPage) OpenRecords(babyID, babyName string) *Navigation {
	if babyName == "" {
		babyName = MsgDefaultBabyName
	}
	return navigate(PageFollowedRecordList, "babyId", babyID, "babyName", babyName)
}
