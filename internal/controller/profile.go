package controller

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/growthbox-backend/internal/adapter/media"
	"github.com/heartmarshall/growthbox-backend/internal/dateutil"
	"github.com/heartmarshall/growthbox-backend/internal/domain"
	"github.com/heartmarshall/growthbox-backend/internal/service/baby"
	"github.com/heartmarshall/growthbox-backend/internal/service/social"
	"github.com/heartmarshall/growthbox-backend/internal/session"
)

// BabyCard is a followed baby as shown on the profile page.
type BabyCard struct {
	BabyID     string `json:"babyId"`
	Nickname   string `json:"nickname"`
	Avatar     string `json:"avatar,omitempty"`
	Years      int    `json:"age"`
	Months     int    `json:"month"`
	FollowDate string `json:"followTimeFormat"`
}

// ProfileView is the "me" page.
type ProfileView struct {
	Baby       domain.BabyProfile `json:"babyInfo"`
	HasBaby    bool               `json:"hasBaby"`
	Statistics domain.Statistics  `json:"statistics"`
	Followed   []BabyCard         `json:"followedBabies"`
	Notice     *Notice            `json:"notice,omitempty"`
}

// BabyForm is the submitted baby info page. Birthday is YYYY-MM-DD or
// empty; Avatar is a staged reference or a durable URL.
type BabyForm struct {
	Nickname string `json:"nickname"`
	Birthday string `json:"birthday"`
	Avatar   string `json:"avatar"`
}

// BabyResult is the outcome of saving the baby info page.
type BabyResult struct {
	Baby       *domain.BabyProfile `json:"babyInfo,omitempty"`
	Notice     *Notice             `json:"notice,omitempty"`
	Navigation *Navigation         `json:"navigation,omitempty"`
}

// Profile drives the profile and baby info pages.
type Profile struct {
	log    *slog.Logger
	babies babyProfiles
	stats  statsCalculator
	social socialGraph
	media  mediaStore
	clock  dateutil.Clock
	loc    *time.Location
}

// NewProfile creates the profile controller.
func NewProfile(
	logger *slog.Logger,
	babies babyProfiles,
	stats statsCalculator,
	social socialGraph,
	store mediaStore,
	clock dateutil.Clock,
) *Profile {
	return &Profile{
		log:    logger.With("controller", "profile"),
		babies: babies,
		stats:  stats,
		social: social,
		media:  store,
		clock:  clock,
		loc:    clock.Now().Location(),
	}
}

// Load assembles baby info, statistics and the followed list. Each part
// degrades to its default independently.
func (p *Profile) Load(ctx context.Context, sess *session.Session) ProfileView {
	view := ProfileView{
		Baby:     domain.BabyProfile{Nickname: MsgDefaultBabyName},
		Followed: []BabyCard{},
	}

	switch res := p.babies.Get(ctx, sess); {
	case res.IsOK():
		view.Baby = res.Data
		view.HasBaby = true
	case res.IsFailed():
		view.Notice = errorNotice(MsgLoadFailed)
	}

	view.Statistics = p.stats.Calculate(ctx, sess)

	now := p.clock.Now()
	for _, fb := range p.social.ListFollowed(ctx, sess).Value() {
		years, months := social.AgeYearsMonths(fb.Profile.Birthday, now)
		card := BabyCard{
			BabyID:   fb.Profile.BabyID,
			Nickname: fb.Profile.Nickname,
			Avatar:   fb.Profile.Avatar,
			Years:    years,
			Months:   months,
		}
		if !fb.FollowTime.IsZero() {
			card.FollowDate = dateutil.FormatDate(fb.FollowTime.In(now.Location()))
		}
		view.Followed = append(view.Followed, card)
	}

	return view
}

// BabyRecords opens the followed record list of a baby; the owner-scoped
// record list would never match another owner's records.
func (p *Profile) BabyRecords(babyID, babyName string) *Navigation {
	if babyName == "" {
		babyName = MsgDefaultBabyName
	}
	return navigate(PageFollowedRecordList, "babyId", babyID, "babyName", babyName)
}

// SaveBaby validates and stores the baby info page.
func (p *Profile) SaveBaby(ctx context.Context, sess *session.Session, form BabyForm) BabyResult {
	if !sess.Authenticated() {
		return BabyResult{Notice: infoNotice(MsgLoginRequired)}
	}
	if strings.TrimSpace(form.Nickname) == "" {
		return BabyResult{Notice: errorNotice(MsgNicknameRequired)}
	}

	input := baby.SaveInput{Nickname: form.Nickname}
	if b := strings.TrimSpace(form.Birthday); b != "" {
		t, err := dateutil.ParseDate(b, p.loc)
		if err != nil {
			return BabyResult{Notice: errorNotice(MsgInvalidDate)}
		}
		input.Birthday = &t
	}
	if a := strings.TrimSpace(form.Avatar); a != "" {
		input.Avatar = p.media.Store(ctx, media.KindPhoto, sess.Identity(), a)
	}

	saved, err := p.babies.Save(ctx, sess, input)
	if err != nil {
		return BabyResult{Notice: babyErrorNotice(err)}
	}

	return BabyResult{
		Baby:       saved,
		Notice:     successNotice(MsgSaveSucceeded),
		Navigation: NavigateBack(),
	}
}

func babyErrorNotice(err error) *Notice {
	var ve *domain.ValidationError
	if errors.As(err, &ve) && len(ve.Errors) > 0 {
		switch ve.Errors[0].Field {
		case "nickname":
			// Blank nicknames are rejected before saving.
			return errorNotice(MsgNicknameTooLong)
		case "birthday":
			return errorNotice(MsgBirthdayInvalid)
		}
	}
	if errors.Is(err, domain.ErrUnauthenticated) {
		return infoNotice(MsgLoginRequired)
	}
	return errorNotice(MsgSaveFailed)
}
