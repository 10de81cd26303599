package tracker

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/rvaldes/tradeweek/ledger"
)

// WithdrawalRate is the share of a positive weekly result earmarked for
// withdrawal when the week rolls over. Losses withdraw nothing.
var WithdrawalRate = decimal.RequireFromString("0.30")

// RolloverResult describes the week a rollover produced or found.
type RolloverResult struct {
	Start          time.Time
	InitialCapital decimal.Decimal
	Withdrawal     decimal.Decimal
	AlreadyExists  bool
}

// ComputeNext derives the next week's start date and seed capital from the
// current week. The target is always exactly seven days after the loaded
// week's start, never "this week", so repeated rollovers from a stale week
// advance in fixed increments. Returns (start, capital, withdrawal).
func ComputeNext(w *ledger.Week) (time.Time, decimal.Decimal, decimal.Decimal) {
	nextStart := w.Start.AddDate(0, 0, 7)

	total := w.TotalProfitLoss()
	if total.IsNegative() {
		total = decimal.Zero
	}
	withdrawal := total.Mul(WithdrawalRate)

	capital := w.Balance().Sub(withdrawal)
	if capital.IsNegative() {
		capital = decimal.Zero
	}
	return nextStart, capital, withdrawal
}

// DueToday reports whether the Saturday rollover reminder applies right now.
// The check is against wall-clock time, not the loaded week's own dates; a
// week reviewed on any other real-world day never triggers it.
func DueToday(now time.Time) bool {
	return now.Weekday() == time.Saturday
}

// Rollover creates the next week's ledger seeded from the current one and
// makes it current. Idempotent: if a record for the next start date already
// exists it is adopted as current and reported, never overwritten with a
// second fresh week. The prior week's record is left untouched, and on a
// write failure the current week stays in effect.
func (t *Tracker) Rollover() (*RolloverResult, error) {
	// A week this tracker just rolled into does not roll again; a second
	// request must not chain a week dated fourteen days out.
	if !t.rolledTo.IsZero() && t.rolledTo.Equal(t.week.Start) {
		return &RolloverResult{
			Start:          t.week.Start,
			InitialCapital: t.week.InitialCapital,
			AlreadyExists:  true,
		}, nil
	}

	nextStart, capital, withdrawal := ComputeNext(t.week)
	date := nextStart.Format(ledger.DateFormat)

	existing, err := t.store.LoadByDate(date)
	if err != nil {
		return nil, fmt.Errorf("check week %s: %w", date, err)
	}
	if existing != nil {
		if err := t.adopt(*existing); err != nil {
			return nil, err
		}
		t.rolledTo = t.week.Start
		return &RolloverResult{
			Start:          t.week.Start,
			InitialCapital: t.week.InitialCapital,
			AlreadyExists:  true,
		}, nil
	}

	next := ledger.NewWeek(nextStart, capital)
	if err := t.store.Upsert(next.Record()); err != nil {
		return nil, fmt.Errorf("create week %s: %w", date, err)
	}
	t.week = next
	t.rolledTo = next.Start

	t.log.WithFields(logrus.Fields{
		"week":       date,
		"capital":    capital.String(),
		"withdrawal": withdrawal.String(),
	}).Info("rolled over to new week")

	return &RolloverResult{
		Start:          nextStart,
		InitialCapital: capital,
		Withdrawal:     withdrawal,
	}, nil
}
