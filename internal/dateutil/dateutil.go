// Package dateutil holds the calendar helpers shared by the journal.
// All functions are pure; the current instant is always passed in.
package dateutil

import (
	"fmt"
	"time"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// Clock supplies the current instant.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall clock in a fixed location.
type SystemClock struct {
	Loc *time.Location
}

func (c SystemClock) Now() time.Time {
	if c.Loc == nil {
		return time.Now()
	}
	return time.Now().In(c.Loc)
}

// FixedClock always returns T. Used in tests and replays.
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time { return c.T }

// ParseTimezone parses a timezone string, returning UTC as fallback.
func ParseTimezone(tz string) *time.Location {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}

// FormatDate renders t as YYYY-MM-DD in t's location.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// FormatTime renders t as HH:MM in t's location.
func FormatTime(t time.Time) string {
	return t.Format(timeLayout)
}

// Today returns the calendar day of now.
func Today(now time.Time) string {
	return FormatDate(now)
}

// ParseDate parses YYYY-MM-DD as local midnight in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(dateLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// ParseTime parses HH:MM.
func ParseTime(s string) (hour, minute int, err error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return 0, 0, fmt.Errorf("parse time %q: %w", s, err)
	}
	return t.Hour(), t.Minute(), nil
}

// IsDate reports whether s is a valid YYYY-MM-DD day.
func IsDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

// FirstDayOfMonth returns midnight of the first day of the month.
func FirstDayOfMonth(year int, month time.Month, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(year, month, 1, 0, 0, 0, 0, loc)
}

// LastDayOfMonth returns midnight of the last day of the month.
func LastDayOfMonth(year int, month time.Month, loc *time.Location) time.Time {
	return FirstDayOfMonth(year, month, loc).AddDate(0, 1, -1)
}

// DaysInMonth returns the number of days in the month.
func DaysInMonth(year int, month time.Month) int {
	return LastDayOfMonth(year, month, time.UTC).Day()
}

// FirstWeekday returns the weekday of the first of the month (0 = Sunday).
func FirstWeekday(year int, month time.Month) int {
	return int(FirstDayOfMonth(year, month, time.UTC).Weekday())
}

// AddMonths shifts (year, month) by n months.
func AddMonths(year int, month time.Month, n int) (int, time.Month) {
	t := FirstDayOfMonth(year, month, time.UTC).AddDate(0, n, 0)
	return t.Year(), t.Month()
}

// FormatDateChinese renders YYYY-MM-DD as "2024年1月5日".
// Unparseable input is returned unchanged.
func FormatDateChinese(s string) string {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return s
	}
	return fmt.Sprintf("%d年%d月%d日", t.Year(), int(t.Month()), t.Day())
}

// FormatDateTime renders the Chinese date followed by the clock time.
func FormatDateTime(date, clock string) string {
	return FormatDateChinese(date) + " " + clock
}

// IsToday reports whether date is the calendar day of now.
func IsToday(date string, now time.Time) bool {
	return date == Today(now)
}

// DaysDiff returns the whole days from a to b (b - a).
func DaysDiff(a, b string) (int, error) {
	ta, err := time.Parse(dateLayout, a)
	if err != nil {
		return 0, fmt.Errorf("parse date %q: %w", a, err)
	}
	tb, err := time.Parse(dateLayout, b)
	if err != nil {
		return 0, fmt.Errorf("parse date %q: %w", b, err)
	}
	return int(tb.Sub(ta).Hours() / 24), nil
}

// AddDays shifts a YYYY-MM-DD day by n calendar days.
func AddDays(date string, n int) (string, error) {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return "", fmt.Errorf("parse date %q: %w", date, err)
	}
	return FormatDate(t.AddDate(0, 0, n)), nil
}

// DayStart returns the start of now's day in tz, converted to UTC.
func DayStart(now time.Time, tz *time.Location) time.Time {
	local := now.In(tz)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, tz).UTC()
}
