package controller

import (
	"context"
	"log/slog"
	"strings"

	"github.com/heartmarshall/growthbox-backend/internal/dateutil"
	"github.com/heartmarshall/growthbox-backend/internal/domain"
	"github.com/heartmarshall/growthbox-backend/internal/session"
)

// DetailView is the record detail page.
type DetailView struct {
	Record       *domain.Record `json:"record,omitempty"`
	DateTimeText string         `json:"dateTimeText,omitempty"`
	TagLabels    []string       `json:"tagLabels,omitempty"`
	Source       Source         `json:"source"`
	CanEdit      bool           `json:"canEdit"`
	ShareTitle   string         `json:"shareTitle,omitempty"`
	Notice       *Notice        `json:"notice,omitempty"`
	Navigation   *Navigation    `json:"navigation,omitempty"`
}

// Detail drives the record detail page.
type Detail struct {
	log     *slog.Logger
	records recordStore
}

// NewDetail creates the detail controller.
func NewDetail(logger *slog.Logger, records recordStore) *Detail {
	return &Detail{
		log:     logger.With("controller", "detail"),
		records: records,
	}
}

// Show loads a record by id. Records opened from the followed list are
// read-only.
func (d *Detail) Show(ctx context.Context, sess *session.Session, id string, source Source) DetailView {
	view := DetailView{Source: source}

	if id = strings.TrimSpace(id); id == "" {
		view.Notice = errorNotice(MsgMissingRecordID)
		view.Navigation = NavigateBack()
		return view
	}

	res := d.records.Get(ctx, id)
	switch {
	case res.IsEmpty():
		view.Notice = errorNotice(MsgRecordNotFound)
		view.Navigation = NavigateBack()
		return view
	case res.IsFailed():
		view.Notice = errorNotice(MsgLoadFailed)
		return view
	}

	rec := res.Data
	view.Record = &rec
	view.DateTimeText = dateutil.FormatDateTime(rec.Date, rec.Time)
	for _, t := range rec.Tags {
		view.TagLabels = append(view.TagLabels, t.Label())
	}
	view.CanEdit = source != SourceFollowedList && sess.Authenticated() && rec.OwnerRef == sess.Identity()
	view.ShareTitle = shareTitle(rec)
	return view
}

// Edit opens the editor for id unless the caller may not edit it.
func (d *Detail) Edit(ctx context.Context, sess *session.Session, id string, source Source) (*Navigation, *Notice) {
	if notice := d.guard(ctx, sess, id, source, MsgEditOwnOnly); notice != nil {
		return nil, notice
	}
	return navigate(PageAddRecord, "id", id), nil
}

// Delete removes the record and returns to the previous page. Records
// opened from the followed list or owned by someone else are refused.
func (d *Detail) Delete(ctx context.Context, sess *session.Session, id string, source Source) (*Navigation, *Notice) {
	if notice := d.guard(ctx, sess, id, source, MsgDeleteOwnOnly); notice != nil {
		return nil, notice
	}
	if !d.records.DeleteByID(ctx, sess, id) {
		return nil, errorNotice(MsgDeleteFailed)
	}
	return NavigateBack(), successNotice(MsgDeleteSucceeded)
}

func (d *Detail) guard(ctx context.Context, sess *session.Session, id string, source Source, refusal string) *Notice {
	if source == SourceFollowedList {
		return errorNotice(refusal)
	}
	if !sess.Authenticated() {
		return infoNotice(MsgLoginRequired)
	}
	if id == "" {
		return errorNotice(MsgMissingRecordID)
	}

	res := d.records.Get(ctx, id)
	switch {
	case res.IsEmpty():
		return errorNotice(MsgRecordNotFound)
	case res.IsFailed():
		return errorNotice(MsgOperationFailed)
	}
	if res.Data.OwnerRef != sess.Identity() {
		return errorNotice(refusal)
	}
	return nil
}

func shareTitle(rec domain.Record) string {
	text := strings.TrimSpace(rec.Text)
	if text == "" {
		text = MsgDefaultRecordTitle
	}
	return "成长时光盒 - " + text
}
