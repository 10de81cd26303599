package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// Derived analytics over one week. All of these re-derive from Entries and
// InitialCapital on every call; nothing is cached.

var hundred = decimal.NewFromInt(100)

// TotalProfitLoss is the sum of all seven day amounts.
func (w *Week) TotalProfitLoss() decimal.Decimal {
	total := decimal.Zero
	for _, d := range Days {
		total = total.Add(w.Entries[d].Amount)
	}
	return total
}

// Balance is the initial capital plus the week's total profit/loss.
func (w *Week) Balance() decimal.Decimal {
	return w.InitialCapital.Add(w.TotalProfitLoss())
}

// ProfitLossPercentage is the total P/L relative to the initial capital,
// in percent. A zero initial capital yields exactly zero, never an error.
func (w *Week) ProfitLossPercentage() decimal.Decimal {
	if w.InitialCapital.IsZero() {
		return decimal.Zero
	}
	return w.TotalProfitLoss().Mul(hundred).Div(w.InitialCapital)
}

// PositiveDays counts days with a strictly positive amount.
func (w *Week) PositiveDays() int {
	n := 0
	for _, d := range Days {
		if w.Entries[d].Amount.IsPositive() {
			n++
		}
	}
	return n
}

// NegativeDays counts days with a strictly negative amount. Zero days count
// in neither direction.
func (w *Week) NegativeDays() int {
	n := 0
	for _, d := range Days {
		if w.Entries[d].Amount.IsNegative() {
			n++
		}
	}
	return n
}

// DestinationTotals sums day amounts grouped by destination, for the
// withdrawal/reinvestment breakdown.
func (w *Week) DestinationTotals() map[Destination]decimal.Decimal {
	totals := map[Destination]decimal.Decimal{
		Unset:        decimal.Zero,
		Withdrawal:   decimal.Zero,
		Reinvestment: decimal.Zero,
	}
	for _, d := range Days {
		e := w.Entries[d]
		totals[e.Destination] = totals[e.Destination].Add(e.Amount)
	}
	return totals
}

// Summary bundles the derived metrics for the UI, advice and export layers.
type Summary struct {
	Start                time.Time
	InitialCapital       decimal.Decimal
	Balance              decimal.Decimal
	TotalProfitLoss      decimal.Decimal
	ProfitLossPercentage decimal.Decimal
	PositiveDays         int
	NegativeDays         int
	DestinationTotals    map[Destination]decimal.Decimal
}

// Summarize computes every derived metric in one pass-by-convenience call.
func (w *Week) Summarize() Summary {
	return Summary{
		Start:                w.Start,
		InitialCapital:       w.InitialCapital,
		Balance:              w.Balance(),
		TotalProfitLoss:      w.TotalProfitLoss(),
		ProfitLossPercentage: w.ProfitLossPercentage(),
		PositiveDays:         w.PositiveDays(),
		NegativeDays:         w.NegativeDays(),
		DestinationTotals:    w.DestinationTotals(),
	}
}
