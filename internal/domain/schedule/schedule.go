// Package schedule derives serving dates from the weekly slot catalog.
// All functions are pure: "today" is always passed in, never read from the
// wall clock, so the calendar rules are directly testable.
package schedule

import (
	"time"

	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"
)

// DateOnly truncates t to a UTC calendar date. Serving dates are compared
// by date, never by time of day.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// IsWeekend reports whether t falls on saturday or sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()

	return wd == time.Saturday || wd == time.Sunday
}

// schoolOrdinal maps time.Weekday to the zero-based school-week position.
// Weekend values are negative.
func schoolOrdinal(wd time.Weekday) int {
	switch wd {
	case time.Monday:
		return 0
	case time.Tuesday:
		return 1
	case time.Wednesday:
		return 2
	case time.Thursday:
		return 3
	case time.Friday:
		return 4
	default:
		return -1
	}
}

// ServingDate resolves the serving date for a school day relative to today.
//
// On a weekend every day maps into next week. On a weekday, each day maps to
// its occurrence in the current week; a day that already passed this week is
// not purchasable and yields ErrPastSlot.
func ServingDate(today time.Time, day entity.DayOfWeek) (time.Time, error) {
	if !day.Valid() {
		return time.Time{}, domainerrors.ErrSlotNotFound.WrapMessage("unknown day of week")
	}

	today = DateOnly(today)
	target := day.Ordinal()

	if IsWeekend(today) {
		return NextMonday(today).AddDate(0, 0, target), nil
	}

	diff := target - schoolOrdinal(today.Weekday())
	if diff < 0 {
		return time.Time{}, domainerrors.ErrPastSlot
	}

	return today.AddDate(0, 0, diff), nil
}

// NextMonday returns the monday strictly after today.
func NextMonday(today time.Time) time.Time {
	today = DateOnly(today)
	days := (8 - int(today.Weekday())) % 7
	if days == 0 {
		days = 7
	}

	return today.AddDate(0, 0, days)
}

// BundleStart resolves the first serving date of a bundle window. The window
// starts today. A weekend start, or a selection whose weekdays have all
// passed in the current week while today is not friday, shifts to next
// monday.
func BundleStart(today time.Time, selection entity.BundleSelection) (start time.Time, shifted bool) {
	today = DateOnly(today)
	if IsWeekend(today) {
		return NextMonday(today), true
	}

	if NeedsShift(today, selection) {
		return NextMonday(today), true
	}

	return today, false
}

// NeedsShift reports whether every selected weekday already passed in the
// current week. Friday is exempt: a friday purchase of past-only days is
// simply invalid rather than silently moved a week out.
func NeedsShift(today time.Time, selection entity.BundleSelection) bool {
	today = DateOnly(today)
	if IsWeekend(today) {
		return true
	}

	current := schoolOrdinal(today.Weekday())
	if current >= 4 {
		return false
	}

	for day, sel := range selection {
		if !sel.Breakfast && !sel.Lunch {
			continue
		}
		if day.Ordinal() >= current {
			return false
		}
	}

	return true
}

// WindowDay is one weekday inside a bundle window.
type WindowDay struct {
	Date time.Time
	Day  entity.DayOfWeek
}

// Window expands daysCount consecutive weekdays starting at start, skipping
// weekends. start is assumed to be a weekday (BundleStart guarantees it).
func Window(start time.Time, daysCount int) []WindowDay {
	days := make([]WindowDay, 0, daysCount)
	current := DateOnly(start)
	for len(days) < daysCount {
		if ord := schoolOrdinal(current.Weekday()); ord >= 0 {
			days = append(days, WindowDay{
				Date: current,
				Day:  entity.SchoolDays[ord],
			})
		}
		current = current.AddDate(0, 0, 1)
	}

	return days
}

// WeekBounds returns the monday and friday of the week containing today.
// On a weekend it returns the week that just ended.
func WeekBounds(today time.Time) (monday, friday time.Time) {
	today = DateOnly(today)
	offset := int(today.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}
	monday = today.AddDate(0, 0, -offset)

	return monday, monday.AddDate(0, 0, 4)
}
