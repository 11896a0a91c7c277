package social

import (
	"math"
	"strconv"
	"time"
)

// AgeUnknown is returned when the birthday is not set.
const AgeUnknown = "unknown"

const yearDuration = 365 * 24 * time.Hour

// Age renders the age in years: one decimal (truncated) under a year,
// whole years otherwise.
func Age(birth *time.Time, now time.Time) string {
	if birth == nil || birth.IsZero() {
		return AgeUnknown
	}

	years := float64(now.Sub(*birth)) / float64(yearDuration)
	if years < 0 {
		years = 0
	}
	if years < 1 {
		return strconv.FormatFloat(math.Floor(years*10)/10, 'f', 1, 64)
	}
	return strconv.Itoa(int(math.Floor(years)))
}

// AgeYearsMonths returns the calendar age in whole years and months.
func AgeYearsMonths(birth *time.Time, now time.Time) (years, months int) {
	if birth == nil || birth.IsZero() || now.Before(*birth) {
		return 0, 0
	}

	b := birth.In(now.Location())
	years = now.Year() - b.Year()
	months = int(now.Month()) - int(b.Month())
	if now.Day() < b.Day() {
		months--
	}
	if months < 0 {
		years--
		months += 12
	}
	return years, months
}
