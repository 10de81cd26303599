// Package tracker binds the in-memory weekly ledger to its store: every
// mutation persists the full record before it is considered done, and the
// rollover engine seeds the next week from the current one.
package tracker

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/rvaldes/tradeweek/ledger"
)

// Store is the persistence surface the tracker needs. *store.SQLite
// implements it; tests substitute fakes.
type Store interface {
	Upsert(ledger.Record) error
	LoadLatest() (*ledger.Record, error)
	LoadByDate(date string) (*ledger.Record, error)
	ListDates() ([]string, error)
	Close() error
}

// Tracker owns the single mutable current week. One instance per process.
type Tracker struct {
	store Store
	week  *ledger.Week
	log   *logrus.Logger

	// rolledTo marks the week a rollover produced, so repeated rollover
	// requests against it do not chain a further week. Cleared when a
	// different week is loaded.
	rolledTo time.Time
}

// Open loads the latest stored week. A damaged store or an empty one both
// degrade to a fresh week starting this Monday with the default capital:
// startup must produce a usable week, never crash on bad data. The fresh
// week is not persisted until its first mutation.
func Open(st Store, defaultCapital decimal.Decimal, log *logrus.Logger) *Tracker {
	if log == nil {
		log = logrus.StandardLogger()
	}
	t := &Tracker{store: st, log: log}

	rec, err := st.LoadLatest()
	if err != nil {
		log.WithError(err).Warn("ledger store unreadable, starting a fresh week")
	} else if rec != nil {
		w, herr := ledger.HydrateRecord(*rec)
		if herr != nil {
			log.WithError(herr).WithField("week", rec.WeekStartDate).
				Warn("stored week unreadable, starting a fresh week")
		} else {
			t.week = w
			log.WithField("week", rec.WeekStartDate).Debug("loaded latest week")
			return t
		}
	}

	t.week = ledger.NewWeek(ledger.MondayOf(time.Now()), defaultCapital)
	return t
}

// Week returns the current week. Callers wanting a view safe from later
// mutations should Clone it.
func (t *Tracker) Week() *ledger.Week { return t.week }

// SetDay records one day's amount and destination and persists the whole
// week. On a write failure the in-memory entry is restored so model and
// store never disagree, and the error reaches the caller.
func (t *Tracker) SetDay(day ledger.Day, amount decimal.Decimal, dest ledger.Destination) error {
	prev, err := t.week.Entry(day)
	if err != nil {
		return err
	}
	if err := t.week.SetDay(day, amount, dest); err != nil {
		return err
	}
	if err := t.store.Upsert(t.week.Record()); err != nil {
		t.week.Entries[day] = prev
		return fmt.Errorf("persist %s: %w", day, err)
	}
	t.log.WithFields(logrus.Fields{
		"week":   t.week.Start.Format(ledger.DateFormat),
		"day":    day,
		"amount": amount.String(),
	}).Debug("day recorded")
	return nil
}

// SetInitialCapital clamps and persists the week's starting capital.
func (t *Tracker) SetInitialCapital(v decimal.Decimal) error {
	prev := t.week.InitialCapital
	t.week.SetInitialCapital(v)
	if err := t.store.Upsert(t.week.Record()); err != nil {
		t.week.InitialCapital = prev
		return fmt.Errorf("persist initial capital: %w", err)
	}
	return nil
}

// LoadLatest replaces the current week with the most recent stored one.
// False means the store holds nothing; unlike startup, a real store error on
// this explicit path is returned.
func (t *Tracker) LoadLatest() (bool, error) {
	rec, err := t.store.LoadLatest()
	if err != nil {
		return false, err
	}
	if rec == nil {
		return false, nil
	}
	return true, t.adopt(*rec)
}

// LoadByDate replaces the current week with the stored week for an exact
// date. False means no such week.
func (t *Tracker) LoadByDate(date string) (bool, error) {
	rec, err := t.store.LoadByDate(date)
	if err != nil {
		return false, err
	}
	if rec == nil {
		return false, nil
	}
	return true, t.adopt(*rec)
}

// Import adopts a week from outside the store (a snapshot file) as current
// and persists it, so store and file agree. An existing record for the same
// date is overwritten, last write wins.
func (t *Tracker) Import(w *ledger.Week) error {
	if err := t.store.Upsert(w.Record()); err != nil {
		return fmt.Errorf("persist imported week: %w", err)
	}
	t.week = w
	t.rolledTo = time.Time{}
	return nil
}

// ListWeeks returns every stored week date, most recent first.
func (t *Tracker) ListWeeks() ([]string, error) {
	return t.store.ListDates()
}

func (t *Tracker) adopt(rec ledger.Record) error {
	w, err := ledger.HydrateRecord(rec)
	if err != nil {
		return fmt.Errorf("stored week %s: %w", rec.WeekStartDate, err)
	}
	t.week = w
	t.rolledTo = time.Time{}
	return nil
}
