package rest

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/heartmarshall/growthbox-backend/internal/controller"
	"github.com/heartmarshall/growthbox-backend/internal/domain"
	"github.com/heartmarshall/growthbox-backend/internal/service/record"
	"github.com/heartmarshall/growthbox-backend/internal/session"
	"github.com/heartmarshall/growthbox-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Hand-written fakes
// ---------------------------------------------------------------------------

type fakeSessions struct {
	err     error
	started []string
	ended   []string
}

func (f *fakeSessions) Resolve(_ context.Context, identity string) (*session.Session, error) {
	if f.err != nil {
		return nil, f.err
	}
	return session.New(identity, &domain.BabyProfile{BabyID: "baby_own", OwnerRef: identity}), nil
}

func (f *fakeSessions) Start(ctx context.Context, identity string) (*session.Session, error) {
	f.started = append(f.started, identity)
	return f.Resolve(ctx, identity)
}

func (f *fakeSessions) End(_ context.Context, identity string) bool {
	f.ended = append(f.ended, identity)
	return true
}

type fakeTokens struct{}

func (fakeTokens) GenerateAccessToken(ref string) (string, error) { return "token-for-" + ref, nil }

type fakeCalendar struct {
	gotYear  int
	gotMonth time.Month
}

func (f *fakeCalendar) Month(_ context.Context, _ *session.Session, y int, m time.Month) controller.CalendarView {
	f.gotYear, f.gotMonth = y, m
	return controller.CalendarView{Year: y, Month: int(m)}
}

func (f *fakeCalendar) Current(context.Context, *session.Session) controller.CalendarView {
	return controller.CalendarView{Year: 2024, Month: 5}
}

func (f *fakeCalendar) Today(context.Context, *session.Session) controller.TodayView {
	return controller.TodayView{Date: "2024-05-20"}
}

func (f *fakeCalendar) DayTap(_ context.Context, sess *session.Session, date string) (*controller.Navigation, *controller.Notice) {
	if !sess.Authenticated() {
		return nil, &controller.Notice{Message: controller.MsgLoginRequired, Kind: controller.NoticeInfo}
	}
	return &controller.Navigation{Target: controller.PageAddRecord, Params: map[string]string{"date": date}}, nil
}

type fakeEditor struct {
	forms []controller.RecordForm
	fail  *controller.Notice
}

func (f *fakeEditor) Load(_ context.Context, _ *session.Session, id, date string) controller.EditorView {
	return controller.EditorView{Record: domain.Record{ID: id, Date: date}, IsEdit: id != ""}
}

func (f *fakeEditor) Save(_ context.Context, _ *session.Session, form controller.RecordForm) controller.SaveResult {
	f.forms = append(f.forms, form)
	if f.fail != nil {
		return controller.SaveResult{Notice: f.fail}
	}
	rec := domain.Record{ID: form.ID, Text: form.Text}
	if rec.ID == "" {
		rec.ID = "record_new"
	}
	return controller.SaveResult{Record: &rec}
}

type fakeDetail struct {
	sources []controller.Source
}

func (f *fakeDetail) Show(_ context.Context, _ *session.Session, id string, source controller.Source) controller.DetailView {
	f.sources = append(f.sources, source)
	if id == "missing" {
		return controller.DetailView{Notice: &controller.Notice{Message: controller.MsgRecordNotFound, Kind: controller.NoticeError}}
	}
	return controller.DetailView{Record: &domain.Record{ID: id}, Source: source}
}

func (f *fakeDetail) Delete(_ context.Context, _ *session.Session, id string, source controller.Source) (*controller.Navigation, *controller.Notice) {
	f.sources = append(f.sources, source)
	if source == controller.SourceFollowedList {
		return nil, &controller.Notice{Message: controller.MsgDeleteOwnOnly, Kind: controller.NoticeError}
	}
	return controller.NavigateBack(), &controller.Notice{Message: controller.MsgDeleteSucceeded, Kind: controller.NoticeSuccess}
}

type fakeList struct {
	queries []controller.ListQuery
}

func (f *fakeList) Load(_ context.Context, _ *session.Session, q controller.ListQuery) controller.ListView {
	f.queries = append(f.queries, q)
	return controller.ListView{Filter: q.Filter.Normalize(), Groups: []domain.DateGroup{}}
}

type fakeFollow struct {
	follows []string
}

func (f *fakeFollow) Search(_ context.Context, _ *session.Session, keyword string) controller.SearchView {
	if keyword == "" {
		return controller.SearchView{Notice: &controller.Notice{Message: controller.MsgSearchKeyword, Kind: controller.NoticeInfo}}
	}
	return controller.SearchView{Keyword: keyword, Results: []domain.SearchResult{{Profile: domain.BabyProfile{BabyID: "baby_x"}}}}
}

func (f *fakeFollow) Follow(_ context.Context, _ *session.Session, babyID, _ string) *controller.Notice {
	f.follows = append(f.follows, babyID)
	if babyID == "baby_own" {
		return &controller.Notice{Message: controller.MsgSelfFollow, Kind: controller.NoticeError}
	}
	return &controller.Notice{Message: controller.MsgFollowSucceeded, Kind: controller.NoticeSuccess}
}

func (f *fakeFollow) Unfollow(context.Context, *session.Session, string) *controller.Notice {
	return &controller.Notice{Message: controller.MsgUnfollowSucceeded, Kind: controller.NoticeSuccess}
}

func (f *fakeFollow) Followed(context.Context, *session.Session) controller.FollowedView {
	return controller.FollowedView{Babies: []domain.FollowedBaby{}}
}

type fakeFollowedList struct{}

func (fakeFollowedList) Load(_ context.Context, babyID, babyName string, filter domain.FilterKind) controller.ListView {
	return controller.ListView{Title: babyName + "的记录", Filter: filter.Normalize(), Groups: []domain.DateGroup{}}
}

type fakeQuery struct{}

func (fakeQuery) QueryBabyRecords(_ context.Context, babyID, _ string) record.QueryResponse {
	if babyID == "" {
		return record.QueryResponse{Code: http.StatusBadRequest, Message: "babyId is required", Data: []domain.Record{}}
	}
	return record.QueryResponse{Code: http.StatusOK, Message: "success", Data: []domain.Record{{ID: "r1"}}}
}

type fakeProfile struct{}

func (fakeProfile) Load(context.Context, *session.Session) controller.ProfileView {
	return controller.ProfileView{Followed: []controller.BabyCard{}}
}

func (fakeProfile) SaveBaby(_ context.Context, _ *session.Session, form controller.BabyForm) controller.BabyResult {
	if form.Nickname == "" {
		return controller.BabyResult{Notice: &controller.Notice{Message: controller.MsgNicknameRequired, Kind: controller.NoticeError}}
	}
	return controller.BabyResult{Baby: &domain.BabyProfile{Nickname: form.Nickname}}
}

type fakeBabies struct {
	res domain.Result[domain.BabyProfile]
}

func (f fakeBabies) Get(context.Context, *session.Session) domain.Result[domain.BabyProfile] { return f.res }

type fakeStager struct {
	err error
}

func (f fakeStager) Stage(_ context.Context, filename string, r io.Reader) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	_, _ = io.Copy(io.Discard, r)
	return "tmp/" + filename, nil
}

// ---------------------------------------------------------------------------
// Router harness
// ---------------------------------------------------------------------------

type harness struct {
	sessions *fakeSessions
	calendar *fakeCalendar
	editor   *fakeEditor
	detail   *fakeDetail
	list     *fakeList
	follow   *fakeFollow
	babies   fakeBabies
	stager   fakeStager
	mediaDir string
}

func newHarness(mediaDir string) *harness {
	return &harness{
		sessions: &fakeSessions{},
		calendar: &fakeCalendar{},
		editor:   &fakeEditor{},
		detail:   &fakeDetail{},
		list:     &fakeList{},
		follow:   &fakeFollow{},
		babies:   fakeBabies{res: domain.OK(domain.BabyProfile{BabyID: "baby_own"})},
		mediaDir: mediaDir,
	}
}

func (h *harness) router() http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewRouter(Handlers{
		Health:  NewHealthHandler("test", PingCheck("database", &dbPingerMock{})),
		Session: NewSessionHandler(h.sessions, fakeTokens{}, func() (string, error) { return "gb_new", nil }, logger),
		Journal: NewJournalHandler(h.sessions, h.calendar, h.editor, h.detail, h.list, logger),
		Social:  NewSocialHandler(h.sessions, h.follow, fakeFollowedList{}, fakeQuery{}, logger),
		Profile: NewProfileHandler(h.sessions, fakeProfile{}, h.babies, logger),
		Media:   NewMediaHandler(h.stager, h.mediaDir, "/media", logger),
	})
}

// do sends a request; a non-empty owner authenticates it.
func (h *harness) do(method, target, owner string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if owner != "" {
		req = req.WithContext(ctxutil.WithOwnerRef(req.Context(), owner))
	}
	rec := httptest.NewRecorder()
	h.router().ServeHTTP(rec, req)
	return rec
}

func withOwner(r *http.Request, owner string) context.Context {
	return ctxutil.WithOwnerRef(r.Context(), owner)
}
