package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testStart() time.Time {
	return time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC) // a Monday
}

func TestNewWeekSevenZeroDays(t *testing.T) {
	t.Parallel()

	w := NewWeek(testStart(), d("100"))

	assert.Len(t, w.Entries, 7)
	for _, day := range Days {
		e, err := w.Entry(day)
		assert.NoError(t, err)
		assert.True(t, e.Amount.IsZero())
		assert.Equal(t, Unset, e.Destination)
	}
}

func TestNewWeekClampsNegativeCapital(t *testing.T) {
	t.Parallel()

	w := NewWeek(testStart(), d("-50"))
	assert.True(t, w.InitialCapital.IsZero())
}

func TestNewWeekNormalizesStartToMidnightUTC(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("X", -5*3600)
	w := NewWeek(time.Date(2026, 8, 24, 15, 30, 0, 0, loc), d("100"))
	assert.Equal(t, time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC), w.Start)
}

func TestSetDayInvalidKey(t *testing.T) {
	t.Parallel()

	w := NewWeek(testStart(), d("100"))
	err := w.SetDay("funday", d("10"), Unset)
	assert.ErrorIs(t, err, ErrInvalidDay)
	assert.Len(t, w.Entries, 7)
}

func TestSetDayStoresDestinationVerbatim(t *testing.T) {
	t.Parallel()

	w := NewWeek(testStart(), d("100"))

	// A negative amount keeps whatever destination the caller supplies; the
	// model never couples sign to destination.
	assert.NoError(t, w.SetDay(Tuesday, d("-20"), Withdrawal))

	e, err := w.Entry(Tuesday)
	assert.NoError(t, err)
	assert.True(t, e.Amount.Equal(d("-20")))
	assert.Equal(t, Withdrawal, e.Destination)
}

func TestSetInitialCapitalClamps(t *testing.T) {
	t.Parallel()

	w := NewWeek(testStart(), d("100"))
	w.SetInitialCapital(d("-5"))
	assert.True(t, w.InitialCapital.IsZero())

	w.SetInitialCapital(d("250.50"))
	assert.True(t, w.InitialCapital.Equal(d("250.50")))
}

func TestParseDay(t *testing.T) {
	t.Parallel()

	for _, day := range Days {
		got, err := ParseDay(string(day))
		assert.NoError(t, err)
		assert.Equal(t, day, got)
	}

	_, err := ParseDay("Monday")
	assert.ErrorIs(t, err, ErrInvalidDay)
	_, err = ParseDay("")
	assert.ErrorIs(t, err, ErrInvalidDay)
}

func TestMondayOf(t *testing.T) {
	t.Parallel()

	monday := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		assert.Equal(t, monday, MondayOf(monday.AddDate(0, 0, i)), "day offset %d", i)
	}
	assert.Equal(t, monday.AddDate(0, 0, 7), MondayOf(monday.AddDate(0, 0, 7)))
}

func TestCloneIsIndependent(t *testing.T) {
	t.Parallel()

	w := NewWeek(testStart(), d("100"))
	assert.NoError(t, w.SetDay(Monday, d("50"), Reinvestment))

	c := w.Clone()
	assert.NoError(t, c.SetDay(Monday, d("99"), Withdrawal))

	e, _ := w.Entry(Monday)
	assert.True(t, e.Amount.Equal(d("50")))
	assert.Equal(t, Reinvestment, e.Destination)
}
