package controller

import (
	"context"
	"log/slog"
	"strings"

	"github.com/heartmarshall/growthbox-backend/internal/adapter/media"
	"github.com/heartmarshall/growthbox-backend/internal/dateutil"
	"github.com/heartmarshall/growthbox-backend/internal/domain"
	"github.com/heartmarshall/growthbox-backend/internal/session"
)

// TagOption is a selectable tag of the editor.
type TagOption struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

// RecordForm is the submitted editor state. Photos and Video hold either
// staged local references or durable URLs of already uploaded media.
type RecordForm struct {
	ID     string   `json:"id"`
	Date   string   `json:"date"`
	Time   string   `json:"time"`
	Photos []string `json:"photos"`
	Video  string   `json:"video"`
	Text   string   `json:"text"`
	Tags   []string `json:"tags"`
}

// EditorView is the add/edit page.
type EditorView struct {
	Record     domain.Record `json:"record"`
	IsEdit     bool          `json:"isEdit"`
	Tags       []TagOption   `json:"tags"`
	Notice     *Notice       `json:"notice,omitempty"`
	Navigation *Navigation   `json:"navigation,omitempty"`
}

// SaveResult is the outcome of submitting the editor.
type SaveResult struct {
	Record *domain.Record `json:"record,omitempty"`
	// LocalMedia counts references that could not be promoted to durable
	// storage and were saved as submitted.
	LocalMedia int         `json:"localMedia"`
	Notice     *Notice     `json:"notice,omitempty"`
	Navigation *Navigation `json:"navigation,omitempty"`
}

// Editor drives the add/edit record page.
type Editor struct {
	log     *slog.Logger
	records recordStore
	media   mediaStore
	clock   dateutil.Clock
}

// NewEditor creates the editor controller.
func NewEditor(logger *slog.Logger, records recordStore, store mediaStore, clock dateutil.Clock) *Editor {
	return &Editor{
		log:     logger.With("controller", "editor"),
		records: records,
		media:   store,
		clock:   clock,
	}
}

// Load prepares the editor. An empty id starts a new record on date
// (today when empty) at the current time; otherwise the record is loaded
// for editing.
func (e *Editor) Load(ctx context.Context, sess *session.Session, id, date string) EditorView {
	now := e.clock.Now()

	if id == "" {
		if !dateutil.IsDate(date) {
			date = dateutil.Today(now)
		}
		return EditorView{
			Record: domain.Record{Date: date, Time: dateutil.FormatTime(now)},
			Tags:   tagOptions(nil),
		}
	}

	res := e.records.Get(ctx, id)
	if !res.IsOK() {
		return EditorView{
			Tags:       tagOptions(nil),
			Notice:     errorNotice(MsgLoadRecordsFailed),
			Navigation: NavigateBack(),
		}
	}
	rec := res.Data
	if rec.OwnerRef != sess.Identity() {
		return EditorView{
			Tags:       tagOptions(nil),
			Notice:     errorNotice(MsgEditOwnOnly),
			Navigation: NavigateBack(),
		}
	}

	return EditorView{Record: rec, IsEdit: true, Tags: tagOptions(rec.Tags)}
}

// Save validates the form, promotes media and stores the record. Editing
// keeps the original creation time.
func (e *Editor) Save(ctx context.Context, sess *session.Session, form RecordForm) SaveResult {
	if !sess.Authenticated() {
		return SaveResult{Notice: infoNotice(MsgLoginRequired)}
	}

	rec, notice := e.formRecord(form)
	if notice != nil {
		return SaveResult{Notice: notice}
	}

	if rec.ID != "" {
		res := e.records.Get(ctx, rec.ID)
		switch {
		case res.IsOK():
			if res.Data.OwnerRef != sess.Identity() {
				return SaveResult{Notice: errorNotice(MsgEditOwnOnly)}
			}
			rec.CreateTime = res.Data.CreateTime
			if rec.BabyRef == "" {
				rec.BabyRef = res.Data.BabyRef
			}
		case res.IsEmpty():
			return SaveResult{Notice: errorNotice(MsgRecordNotFound)}
		default:
			return SaveResult{Notice: errorNotice(MsgSaveFailed)}
		}
	}

	local := 0
	for i, p := range rec.Photos {
		rec.Photos[i] = e.media.Store(ctx, media.KindPhoto, sess.Identity(), p)
		if !e.media.IsDurable(rec.Photos[i]) {
			local++
		}
	}
	if rec.Video != "" {
		rec.Video = e.media.Store(ctx, media.KindVideo, sess.Identity(), rec.Video)
		if !e.media.IsDurable(rec.Video) {
			local++
		}
	}
	if local > 0 {
		e.log.WarnContext(ctx, "record saved with local media references",
			slog.String("owner", sess.Identity()),
			slog.Int("count", local))
	}

	saved, ok := e.records.Save(ctx, sess, rec)
	if !ok {
		return SaveResult{LocalMedia: local, Notice: errorNotice(MsgSaveFailed)}
	}

	return SaveResult{
		Record:     &saved,
		LocalMedia: local,
		Notice:     successNotice(MsgSaveSucceeded),
		Navigation: NavigateBack(),
	}
}

// formRecord checks the form and converts it into a record. Blank date and
// time default to now.
func (e *Editor) formRecord(form RecordForm) (domain.Record, *Notice) {
	now := e.clock.Now()

	rec := domain.Record{
		ID:    strings.TrimSpace(form.ID),
		Date:  strings.TrimSpace(form.Date),
		Time:  strings.TrimSpace(form.Time),
		Video: strings.TrimSpace(form.Video),
		Text:  form.Text,
	}
	for _, p := range form.Photos {
		if p = strings.TrimSpace(p); p != "" {
			rec.Photos = append(rec.Photos, p)
		}
	}

	if len(rec.Photos) > domain.MaxPhotos {
		return rec, errorNotice(MsgTooManyPhotos)
	}
	if !rec.HasContent() {
		return rec, errorNotice(MsgContentRequired)
	}

	if rec.Date == "" {
		rec.Date = dateutil.Today(now)
	} else if !dateutil.IsDate(rec.Date) {
		return rec, errorNotice(MsgInvalidDate)
	}
	if rec.Time == "" {
		rec.Time = dateutil.FormatTime(now)
	} else if _, _, err := dateutil.ParseTime(rec.Time); err != nil {
		return rec, errorNotice(MsgInvalidTime)
	}

	for _, raw := range form.Tags {
		tag, ok := domain.ParseTag(strings.TrimSpace(raw))
		if !ok {
			return rec, errorNotice(MsgUnknownTag)
		}
		if !rec.HasTag(tag) {
			rec.Tags = append(rec.Tags, tag)
		}
	}

	return rec, nil
}

func tagOptions(selected []domain.Tag) []TagOption {
	out := make([]TagOption, 0, len(domain.AllTags))
	for _, t := range domain.AllTags {
		opt := TagOption{Value: string(t), Label: t.Label()}
		for _, s := range selected {
			if s == t {
				opt.Selected = true
				break
			}
		}
		out = append(out, opt)
	}
	return out
}
