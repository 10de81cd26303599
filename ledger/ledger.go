// Package ledger holds the weekly trading ledger: seven day entries plus the
// capital committed at the start of the week. All operations here are pure
// in-memory mutations and derivations; persistence lives in store and tracker.
package ledger

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Destination classifies what a day's positive result is earmarked for.
type Destination string

const (
	Unset        Destination = ""
	Withdrawal   Destination = "personal_withdrawal"
	Reinvestment Destination = "reinvestment"
)

// Day is one of the seven fixed day keys, monday through sunday.
type Day string

const (
	Monday    Day = "monday"
	Tuesday   Day = "tuesday"
	Wednesday Day = "wednesday"
	Thursday  Day = "thursday"
	Friday    Day = "friday"
	Saturday  Day = "saturday"
	Sunday    Day = "sunday"
)

// Days is the canonical Monday-first ordering of the week.
var Days = []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// ErrInvalidDay reports a day key outside the fixed seven.
var ErrInvalidDay = errors.New("invalid day key")

// ParseDay validates a day key string.
func ParseDay(s string) (Day, error) {
	d := Day(s)
	for _, k := range Days {
		if d == k {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDay, s)
}

// Entry is one trading day's record. A zero amount means "not operated".
// Destination is stored verbatim regardless of the amount's sign; a stale
// destination on a non-positive amount is accepted, not corrected.
type Entry struct {
	Amount      decimal.Decimal
	Destination Destination
}

// Week is the aggregate for one calendar week. Entries always holds exactly
// the seven canonical day keys.
type Week struct {
	Start          time.Time
	InitialCapital decimal.Decimal
	Entries        map[Day]Entry
}

// DefaultInitialCapital is assumed when a stored record predates the
// initial_capital field.
var DefaultInitialCapital = decimal.NewFromInt(100)

// NewWeek returns a week starting at start with all seven days zeroed.
// A negative initial capital is clamped to zero.
func NewWeek(start time.Time, initialCapital decimal.Decimal) *Week {
	w := &Week{
		Start:          midnightUTC(start),
		InitialCapital: clampCapital(initialCapital),
		Entries:        make(map[Day]Entry, len(Days)),
	}
	for _, d := range Days {
		w.Entries[d] = Entry{}
	}
	return w
}

// SetDay records the amount and destination for one day. The destination is
// supplied by the caller and stored as given; no validation couples it to the
// amount's sign.
func (w *Week) SetDay(day Day, amount decimal.Decimal, dest Destination) error {
	if _, err := ParseDay(string(day)); err != nil {
		return err
	}
	w.Entries[day] = Entry{Amount: amount, Destination: dest}
	return nil
}

// SetInitialCapital sets the week's starting capital, clamping negatives to zero.
func (w *Week) SetInitialCapital(v decimal.Decimal) {
	w.InitialCapital = clampCapital(v)
}

// Entry returns the stored entry for a day.
func (w *Week) Entry(day Day) (Entry, error) {
	if _, err := ParseDay(string(day)); err != nil {
		return Entry{}, err
	}
	return w.Entries[day], nil
}

// Clone returns a deep copy, safe to hand to a reader on another goroutine.
func (w *Week) Clone() *Week {
	c := &Week{
		Start:          w.Start,
		InitialCapital: w.InitialCapital,
		Entries:        make(map[Day]Entry, len(Days)),
	}
	for _, d := range Days {
		c.Entries[d] = w.Entries[d]
	}
	return c
}

// MondayOf returns the Monday of t's week at midnight UTC.
func MondayOf(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	return midnightUTC(t).AddDate(0, 0, -offset)
}

func midnightUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func clampCapital(v decimal.Decimal) decimal.Decimal {
	if v.IsNegative() {
		return decimal.Zero
	}
	return v
}
