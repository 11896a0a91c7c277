package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/growthbox-backend/internal/controller"
	"github.com/heartmarshall/growthbox-backend/internal/domain"
	"github.com/heartmarshall/growthbox-backend/internal/session"
)

type calendarPage interface {
	Month(ctx context.Context, sess *session.Session, year int, month time.Month) controller.CalendarView
	Current(ctx context.Context, sess *session.Session) controller.CalendarView
	Today(ctx context.Context, sess *session.Session) controller.TodayView
	DayTap(ctx context.Context, sess *session.Session, date string) (*controller.Navigation, *controller.Notice)
}

type editorPage interface {
	Load(ctx context.Context, sess *session.Session, id, date string) controller.EditorView
	Save(ctx context.Context, sess *session.Session, form controller.RecordForm) controller.SaveResult
}

type detailPage interface {
	Show(ctx context.Context, sess *session.Session, id string, source controller.Source) controller.DetailView
	Delete(ctx context.Context, sess *session.Session, id string, source controller.Source) (*controller.Navigation, *controller.Notice)
}

type listPage interface {
	Load(ctx context.Context, sess *session.Session, q controller.ListQuery) controller.ListView
}

// JournalHandler serves the calendar and the caller's records.
type JournalHandler struct {
	sessions sessionResolver
	calendar calendarPage
	editor   editorPage
	detail   detailPage
	list     listPage
	log      *slog.Logger
}

// NewJournalHandler creates a JournalHandler.
func NewJournalHandler(
	sessions sessionResolver,
	calendar calendarPage,
	editor editorPage,
	detail detailPage,
	list listPage,
	logger *slog.Logger,
) *JournalHandler {
	return &JournalHandler{
		sessions: sessions,
		calendar: calendar,
		editor:   editor,
		detail:   detail,
		list:     list,
		log:      logger.With("handler", "journal"),
	}
}

// Calendar handles GET /api/calendar?year=&month=. Without both parameters
// the current month is shown.
func (h *JournalHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	sess, ok := resolveSession(w, r, h.sessions, h.log)
	if !ok {
		return
	}

	q := r.URL.Query()
	if q.Get("year") == "" && q.Get("month") == "" {
		writeJSON(w, http.StatusOK, h.calendar.Current(r.Context(), sess))
		return
	}

	year, yerr := strconv.Atoi(q.Get("year"))
	month, merr := strconv.Atoi(q.Get("month"))
	if yerr != nil || merr != nil || year < 1 || month < 1 || month > 12 {
		writeError(w, http.StatusBadRequest, "invalid year or month")
		return
	}
	writeJSON(w, http.StatusOK, h.calendar.Month(r.Context(), sess, year, time.Month(month)))
}

// Today handles GET /api/calendar/today.
func (h *JournalHandler) Today(w http.ResponseWriter, r *http.Request) {
	sess, ok := resolveSession(w, r, h.sessions, h.log)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.calendar.Today(r.Context(), sess))
}

// Day handles GET /api/calendar/day?date=.
func (h *JournalHandler) Day(w http.ResponseWriter, r *http.Request) {
	sess, ok := resolveSession(w, r, h.sessions, h.log)
	if !ok {
		return
	}
	nav, notice := h.calendar.DayTap(r.Context(), sess, r.URL.Query().Get("date"))
	writeJSON(w, noticeStatus(notice), noticeResponse{Notice: notice, Navigation: nav})
}

// Editor handles GET /api/editor?id=&date=.
func (h *JournalHandler) Editor(w http.ResponseWriter, r *http.Request) {
	sess, ok := resolveSession(w, r, h.sessions, h.log)
	if !ok {
		return
	}
	q := r.URL.Query()
	view := h.editor.Load(r.Context(), sess, q.Get("id"), q.Get("date"))
	writeJSON(w, noticeStatus(view.Notice), view)
}

// List handles GET /api/records?filter=&date=&babyId=&babyName=.
func (h *JournalHandler) List(w http.ResponseWriter, r *http.Request) {
	sess, ok := resolveSession(w, r, h.sessions, h.log)
	if !ok {
		return
	}
	q := r.URL.Query()
	writeJSON(w, http.StatusOK, h.list.Load(r.Context(), sess, controller.ListQuery{
		Filter:   domain.FilterKind(q.Get("filter")),
		Date:     q.Get("date"),
		BabyID:   q.Get("babyId"),
		BabyName: q.Get("babyName"),
	}))
}

// Create handles POST /api/records.
func (h *JournalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var form controller.RecordForm
	if !decodeJSON(w, r, &form) {
		return
	}
	form.ID = ""
	h.save(w, r, form, http.StatusCreated)
}

// Update handles PUT /api/records/{id}.
func (h *JournalHandler) Update(w http.ResponseWriter, r *http.Request) {
	var form controller.RecordForm
	if !decodeJSON(w, r, &form) {
		return
	}
	form.ID = r.PathValue("id")
	h.save(w, r, form, http.StatusOK)
}

func (h *JournalHandler) save(w http.ResponseWriter, r *http.Request, form controller.RecordForm, okStatus int) {
	sess, ok := resolveSession(w, r, h.sessions, h.log)
	if !ok {
		return
	}
	res := h.editor.Save(r.Context(), sess, form)
	if res.Record == nil {
		writeJSON(w, noticeStatus(res.Notice), res)
		return
	}
	writeJSON(w, okStatus, res)
}

// Get handles GET /api/records/{id}?source=.
func (h *JournalHandler) Get(w http.ResponseWriter, r *http.Request) {
	sess, ok := resolveSession(w, r, h.sessions, h.log)
	if !ok {
		return
	}
	source := controller.Source(r.URL.Query().Get("source"))
	view := h.detail.Show(r.Context(), sess, r.PathValue("id"), source)
	if view.Record == nil {
		writeJSON(w, noticeStatus(view.Notice), view)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Delete handles DELETE /api/records/{id}?source=.
func (h *JournalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	sess, ok := resolveSession(w, r, h.sessions, h.log)
	if !ok {
		return
	}
	source := controller.Source(r.URL.Query().Get("source"))
	nav, notice := h.detail.Delete(r.Context(), sess, r.PathValue("id"), source)
	writeJSON(w, noticeStatus(notice), noticeResponse{Notice: notice, Navigation: nav})
}
