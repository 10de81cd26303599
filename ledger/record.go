package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DateFormat is the ISO-8601 date layout used everywhere a week-start date is
// rendered as a string: store keys, snapshot filenames, CLI arguments.
const DateFormat = "2006-01-02"

// Record is the stored shape of one week, shared by the SQLite store and the
// snapshot file codec. InitialCapital is a pointer so that records written
// before the field existed hydrate with the default instead of zero.
type Record struct {
	WeekStartDate  string                 `json:"week_start_date"`
	InitialCapital *decimal.Decimal       `json:"initial_capital,omitempty"`
	Days           map[string]EntryRecord `json:"days"`
}

// EntryRecord is one day inside a Record.
type EntryRecord struct {
	Amount      decimal.Decimal `json:"amount"`
	Destination string          `json:"destination"`
}

// Record serializes the week into its stored shape.
func (w *Week) Record() Record {
	capital := w.InitialCapital
	rec := Record{
		WeekStartDate:  w.Start.Format(DateFormat),
		InitialCapital: &capital,
		Days:           make(map[string]EntryRecord, len(Days)),
	}
	for _, d := range Days {
		e := w.Entries[d]
		rec.Days[string(d)] = EntryRecord{
			Amount:      e.Amount,
			Destination: string(e.Destination),
		}
	}
	return rec
}

// HydrateRecord rebuilds a week from its stored shape, filling defaults at
// the deserialization boundary: a missing initial_capital becomes 100, absent
// days come back zero/unset, day keys outside the canonical seven are
// dropped. Destination strings pass through verbatim. Only an unparseable
// week_start_date is an error.
func HydrateRecord(rec Record) (*Week, error) {
	start, err := time.ParseInLocation(DateFormat, rec.WeekStartDate, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("week_start_date %q: %w", rec.WeekStartDate, err)
	}

	capital := DefaultInitialCapital
	if rec.InitialCapital != nil {
		capital = *rec.InitialCapital
	}

	w := NewWeek(start, capital)
	for _, d := range Days {
		if e, ok := rec.Days[string(d)]; ok {
			w.Entries[d] = Entry{Amount: e.Amount, Destination: Destination(e.Destination)}
		}
	}
	return w, nil
}
