package controller

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/growthbox-backend/internal/dateutil"
	"github.com/heartmarshall/growthbox-backend/internal/domain"
	"github.com/heartmarshall/growthbox-backend/internal/session"
)

// GridCells is the fixed number of cells of a month grid (six weeks).
const GridCells = 42

// Weekdays are the grid column headers, Sunday first.
var Weekdays = []string{"日", "一", "二", "三", "四", "五", "六"}

// CalendarDay is one cell of the month grid.
type CalendarDay struct {
	Date           string `json:"date"`
	Day            int    `json:"day"`
	IsCurrentMonth bool   `json:"isCurrentMonth"`
	IsToday        bool   `json:"isToday"`
	HasRecord      bool   `json:"hasRecord"`
}

// CalendarView is the month page.
type CalendarView struct {
	Year     int           `json:"year"`
	Month    int           `json:"month"`
	Title    string        `json:"title"`
	Weekdays []string      `json:"weekdays"`
	Days     []CalendarDay `json:"days"`
	Notice   *Notice       `json:"notice,omitempty"`
}

// TodayView lists the records of the current day.
type TodayView struct {
	Date     string          `json:"date"`
	DateText string          `json:"dateText"`
	Records  []domain.Record `json:"records"`
	Notice   *Notice         `json:"notice,omitempty"`
}

// Calendar drives the home page.
type Calendar struct {
	log     *slog.Logger
	records recordStore
	clock   dateutil.Clock
}

// NewCalendar creates the calendar controller.
func NewCalendar(logger *slog.Logger, records recordStore, clock dateutil.Clock) *Calendar {
	return &Calendar{
		log:     logger.With("controller", "calendar"),
		records: records,
		clock:   clock,
	}
}

// Month builds the 42-cell grid of year/month. Cells of days that carry a
// record are marked; a failed date lookup still yields the grid.
func (c *Calendar) Month(ctx context.Context, sess *session.Session, year int, month time.Month) CalendarView {
	now := c.clock.Now()
	view := CalendarView{
		Year:     year,
		Month:    int(month),
		Title:    MonthTitle(year, month),
		Weekdays: Weekdays,
	}

	marked := make(map[string]struct{})
	dates := c.records.RecordDates(ctx, sess)
	switch {
	case dates.IsOK():
		for _, d := range dates.Data {
			marked[d] = struct{}{}
		}
	case dates.IsFailed():
		view.Notice = errorNotice(MsgLoadFailed)
	}

	view.Days = make([]CalendarDay, 0, GridCells)
	cell := func(y int, m time.Month, day int, current bool) CalendarDay {
		date := fmt.Sprintf("%04d-%02d-%02d", y, int(m), day)
		_, has := marked[date]
		return CalendarDay{
			Date:           date,
			Day:            day,
			IsCurrentMonth: current,
			IsToday:        dateutil.IsToday(date, now),
			HasRecord:      has,
		}
	}

	py, pm := dateutil.AddMonths(year, month, -1)
	prevDays := dateutil.DaysInMonth(py, pm)
	for i := dateutil.FirstWeekday(year, month) - 1; i >= 0; i-- {
		view.Days = append(view.Days, cell(py, pm, prevDays-i, false))
	}
	for day := 1; day <= dateutil.DaysInMonth(year, month); day++ {
		view.Days = append(view.Days, cell(year, month, day, true))
	}
	ny, nm := dateutil.AddMonths(year, month, 1)
	for day := 1; len(view.Days) < GridCells; day++ {
		view.Days = append(view.Days, cell(ny, nm, day, false))
	}

	return view
}

// Current builds the grid of the month containing now.
func (c *Calendar) Current(ctx context.Context, sess *session.Session) CalendarView {
	now := c.clock.Now()
	return c.Month(ctx, sess, now.Year(), now.Month())
}

// Prev returns the month before year/month.
func Prev(year int, month time.Month) (int, time.Month) {
	return dateutil.AddMonths(year, month, -1)
}

// Next returns the month after year/month.
func Next(year int, month time.Month) (int, time.Month) {
	return dateutil.AddMonths(year, month, 1)
}

// MonthTitle renders "2024年5月".
func MonthTitle(year int, month time.Month) string {
	return fmt.Sprintf("%d年%d月", year, int(month))
}

// Today lists the records of the current day.
func (c *Calendar) Today(ctx context.Context, sess *session.Session) TodayView {
	today := dateutil.Today(c.clock.Now())
	view := TodayView{
		Date:     today,
		DateText: dateutil.FormatDateChinese(today),
		Records:  []domain.Record{},
	}

	res := c.records.ByDate(ctx, sess, today)
	switch {
	case res.IsOK():
		view.Records = res.Data
	case res.IsFailed():
		view.Notice = errorNotice(MsgLoadRecordsFailed)
	}
	return view
}

// DayTap decides where tapping a day leads: the editor when the day is
// empty, the detail page for a single record, the filtered list otherwise.
func (c *Calendar) DayTap(ctx context.Context, sess *session.Session, date string) (*Navigation, *Notice) {
	if !sess.Authenticated() {
		return nil, infoNotice(MsgLoginRequired)
	}
	if !dateutil.IsDate(date) {
		return nil, errorNotice(MsgMissingParams)
	}

	res := c.records.ByDate(ctx, sess, date)
	if res.IsFailed() {
		c.log.WarnContext(ctx, "day tap lookup failed",
			slog.String("date", date),
			slog.String("error", res.Reason.Error()))
		return nil, errorNotice(MsgOperationFailed)
	}

	switch records := res.Value(); len(records) {
	case 0:
		return navigate(PageAddRecord, "date", date), nil
	case 1:
		return navigate(PageRecordDetail, "id", records[0].ID), nil
	default:
		return navigate(PageRecordList, "date", date), nil
	}
}
