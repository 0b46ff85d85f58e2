// Package dates produces the rolling booking horizon: calendar dates
// annotated with their weekday name and a formatted date string in the
// Persian calendar. Everything is derived from an injected "now" so the
// window is reproducible in tests.
package dates

import (
	"fmt"
	"time"

	"github.com/hamyar-edu/advising_bot/internal/model"
)

// DefaultWindowDays is the booking horizon shown to students.
const DefaultWindowDays = 30

// Entry is one candidate booking day.
type Entry struct {
	Gregorian   time.Time
	Weekday     string // weekday name, Saturday-first naming
	Persian     string // formatted Persian date, e.g. "1404/01/04"
	DayNumber   int
	MonthNumber int
	IsPast      bool // true only for the window's first day (today)
}

// PersianDate converts a Gregorian date to its Persian representation using
// the same year-621 approximation the rest of the system displays. Month and
// day carry over unchanged.
func PersianDate(t time.Time) string {
	return fmt.Sprintf("%d/%02d/%02d", t.Year()-621, int(t.Month()), t.Day())
}

// WeekdayName maps a date to its name in a Saturday-first weekday list.
// Go weekdays are Sunday-based, hence the +1 rotation.
func WeekdayName(t time.Time, weekdays []string) string {
	return weekdays[(int(t.Weekday())+1)%7]
}

// Window generates the rolling horizon of days entries starting at now
// (inclusive). weekdays is the Saturday-first weekday name catalog.
func Window(now time.Time, days int, weekdays []string) []Entry {
	entries := make([]Entry, 0, days)
	for i := 0; i < days; i++ {
		d := now.AddDate(0, 0, i)
		entries = append(entries, Entry{
			Gregorian:   d,
			Weekday:     WeekdayName(d, weekdays),
			Persian:     PersianDate(d),
			DayNumber:   d.Day(),
			MonthNumber: int(d.Month()),
			IsPast:      i == 0,
		})
	}
	return entries
}

// FilterByAvailability keeps only entries whose weekday has at least one
// open time label in the advisor's availability.
func FilterByAvailability(window []Entry, availability model.Availability) []Entry {
	var filtered []Entry
	for _, e := range window {
		if len(availability[e.Weekday]) > 0 {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
