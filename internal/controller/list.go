package controller

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/growthbox-backend/internal/domain"
	"github.com/heartmarshall/growthbox-backend/internal/pipeline"
	"github.com/heartmarshall/growthbox-backend/internal/session"
)

// FilterOption is a selectable listing filter.
type FilterOption struct {
	Value    domain.FilterKind `json:"value"`
	Label    string            `json:"label"`
	Selected bool              `json:"selected"`
}

var builtinFilters = []FilterOption{
	{Value: domain.FilterAll, Label: "全部"},
	{Value: domain.FilterPhoto, Label: "照片"},
	{Value: domain.FilterVideo, Label: "视频"},
	{Value: domain.FilterText, Label: "文字"},
}

func filterOptions(current domain.FilterKind) []FilterOption {
	out := make([]FilterOption, len(builtinFilters))
	copy(out, builtinFilters)
	for i := range out {
		out[i].Selected = out[i].Value == current
	}
	return out
}

// ListQuery selects the records of the list page. Date and BabyID are
// optional narrowing filters.
type ListQuery struct {
	Filter   domain.FilterKind
	Date     string
	BabyID   string
	BabyName string
}

// ListView is a date-grouped record listing.
type ListView struct {
	Title   string             `json:"title,omitempty"`
	Filter  domain.FilterKind  `json:"filter"`
	Filters []FilterOption     `json:"filters"`
	Groups  []domain.DateGroup `json:"groups"`
	Total   int                `json:"total"`
	Notice  *Notice            `json:"notice,omitempty"`
}

// RecordList drives the caller's own record list.
type RecordList struct {
	log     *slog.Logger
	records recordStore
}

// NewRecordList creates the list controller.
func NewRecordList(logger *slog.Logger, records recordStore) *RecordList {
	return &RecordList{
		log:     logger.With("controller", "record_list"),
		records: records,
	}
}

// Load fetches the records selected by q and groups them by date.
func (l *RecordList) Load(ctx context.Context, sess *session.Session, q ListQuery) ListView {
	filter := q.Filter.Normalize()
	view := ListView{Filter: filter, Filters: filterOptions(filter), Groups: []domain.DateGroup{}}

	var res domain.Result[[]domain.Record]
	switch {
	case q.BabyID != "":
		view.Title = babyTitle(q.BabyName, MsgDefaultBabyName)
		res = l.records.ByBaby(ctx, sess, q.BabyID)
		if res.IsOK() && q.Date != "" {
			res = domain.OK(onDate(res.Data, q.Date))
		}
	case q.Date != "":
		res = l.records.ByDate(ctx, sess, q.Date)
	default:
		res = l.records.List(ctx, sess)
	}

	if res.IsFailed() {
		view.Notice = errorNotice(MsgLoadRecordsFailed)
		return view
	}

	if groups := pipeline.Aggregate(res.Value(), filter); groups != nil {
		view.Groups = groups
	}
	view.Total = pipeline.Count(view.Groups)
	return view
}

// FollowedRecordList drives the record list of a followed baby.
type FollowedRecordList struct {
	log     *slog.Logger
	records recordStore
}

// NewFollowedRecordList creates the followed list controller.
func NewFollowedRecordList(logger *slog.Logger, records recordStore) *FollowedRecordList {
	return &FollowedRecordList{
		log:     logger.With("controller", "followed_record_list"),
		records: records,
	}
}

// Load queries every record of babyID through the cross-account query and
// groups them by date. Tag filters are forwarded to the query as its
// category; content filters are applied locally.
func (l *FollowedRecordList) Load(ctx context.Context, babyID, babyName string, filter domain.FilterKind) ListView {
	filter = filter.Normalize()
	view := ListView{
		Title:   babyTitle(babyName, "关注的宝宝"),
		Filter:  filter,
		Filters: filterOptions(filter),
		Groups:  []domain.DateGroup{},
	}

	if strings.TrimSpace(babyID) == "" {
		view.Notice = errorNotice(MsgMissingParams)
		return view
	}

	category := ""
	if !filter.IsBuiltin() {
		category = string(filter)
	}

	resp := l.records.QueryBabyRecords(ctx, babyID, category)
	if resp.Code != http.StatusOK {
		l.log.WarnContext(ctx, "followed records query failed",
			slog.String("baby_id", babyID),
			slog.Int("code", resp.Code),
			slog.String("message", resp.Message))
		view.Notice = errorNotice(MsgLoadRecordsFailed)
		return view
	}

	if groups := pipeline.Aggregate(resp.Data, filter); groups != nil {
		view.Groups = groups
	}
	view.Total = pipeline.Count(view.Groups)
	return view
}

func onDate(records []domain.Record, date string) []domain.Record {
	out := make([]domain.Record, 0, len(records))
	for _, r := range records {
		if r.Date == date {
			out = append(out, r)
		}
	}
	return out
}

func babyTitle(name, fallback string) string {
	if name = strings.TrimSpace(name); name == "" {
		name = fallback
	}
	return name + "的记录"
}
