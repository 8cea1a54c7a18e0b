package schedule

import (
	"testing"
	"time"

	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2026-08-26 is a wednesday.
var wednesday = time.Date(2026, 8, 26, 10, 30, 0, 0, time.UTC)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestServingDate_SameDay(t *testing.T) {
	got, err := ServingDate(wednesday, entity.Wednesday)
	require.NoError(t, err)
	assert.Equal(t, date(2026, 8, 26), got)
}

func TestServingDate_LaterThisWeek(t *testing.T) {
	got, err := ServingDate(wednesday, entity.Friday)
	require.NoError(t, err)
	assert.Equal(t, date(2026, 8, 28), got)
}

func TestServingDate_PastWeekdayRejected(t *testing.T) {
	_, err := ServingDate(wednesday, entity.Monday)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPastSlot)
}

func TestServingDate_WeekendMapsToNextWeek(t *testing.T) {
	saturday := date(2026, 8, 29)
	sunday := date(2026, 8, 30)

	got, err := ServingDate(saturday, entity.Monday)
	require.NoError(t, err)
	assert.Equal(t, date(2026, 8, 31), got)

	got, err = ServingDate(sunday, entity.Friday)
	require.NoError(t, err)
	assert.Equal(t, date(2026, 9, 4), got)
}

func TestServingDate_UnknownDay(t *testing.T) {
	_, err := ServingDate(wednesday, entity.DayOfWeek("caturday"))
	assert.Error(t, err)
}

func TestBundleStart_WeekdayNoShift(t *testing.T) {
	sel := entity.BundleSelection{
		entity.Thursday: {Lunch: true},
	}
	start, shifted := BundleStart(wednesday, sel)
	assert.False(t, shifted)
	assert.Equal(t, date(2026, 8, 26), start)
}

func TestBundleStart_AllSelectedDaysPassed(t *testing.T) {
	sel := entity.BundleSelection{
		entity.Monday:  {Breakfast: true},
		entity.Tuesday: {Lunch: true},
	}
	start, shifted := BundleStart(wednesday, sel)
	assert.True(t, shifted)
	assert.Equal(t, date(2026, 8, 31), start)
}

func TestBundleStart_FridayNeverShifts(t *testing.T) {
	friday := date(2026, 8, 28)
	sel := entity.BundleSelection{
		entity.Monday: {Breakfast: true},
	}
	start, shifted := BundleStart(friday, sel)
	assert.False(t, shifted)
	assert.Equal(t, friday, start)
}

func TestBundleStart_WeekendShifts(t *testing.T) {
	sunday := date(2026, 8, 30)
	start, shifted := BundleStart(sunday, entity.BundleSelection{})
	assert.True(t, shifted)
	assert.Equal(t, date(2026, 8, 31), start)
}

func TestWindow_SkipsWeekends(t *testing.T) {
	// Thursday start, 4 weekdays: thu, fri, mon, tue.
	days := Window(date(2026, 8, 27), 4)
	require.Len(t, days, 4)
	assert.Equal(t, entity.Thursday, days[0].Day)
	assert.Equal(t, entity.Friday, days[1].Day)
	assert.Equal(t, entity.Monday, days[2].Day)
	assert.Equal(t, date(2026, 8, 31), days[2].Date)
	assert.Equal(t, entity.Tuesday, days[3].Day)
}

func TestWindow_FullWeeks(t *testing.T) {
	days := Window(date(2026, 8, 31), 10)
	require.Len(t, days, 10)
	assert.Equal(t, date(2026, 8, 31), days[0].Date)
	assert.Equal(t, date(2026, 9, 11), days[9].Date)
	for _, d := range days {
		assert.True(t, d.Day.Valid())
	}
}

func TestWeekBounds(t *testing.T) {
	monday, friday := WeekBounds(wednesday)
	assert.Equal(t, date(2026, 8, 24), monday)
	assert.Equal(t, date(2026, 8, 28), friday)

	// On a weekend the bounds are the week that just ended.
	monday, friday = WeekBounds(date(2026, 8, 30))
	assert.Equal(t, date(2026, 8, 24), monday)
	assert.Equal(t, date(2026, 8, 28), friday)
}
