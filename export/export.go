// Package export renders one week for use outside the journal: CSV, JSON or
// an Excel workbook. Exporters only read the week handed to them; callers on
// another goroutine should pass a Clone.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strings"

	"github.com/rvaldes/tradeweek/ledger"
)

// WriteCSV writes the day table followed by the summary block.
func WriteCSV(out io.Writer, w *ledger.Week) error {
	cw := csv.NewWriter(out)

	if err := cw.Write([]string{"day", "amount", "destination"}); err != nil {
		return err
	}
	for _, day := range ledger.Days {
		e := w.Entries[day]
		if err := cw.Write([]string{string(day), e.Amount.String(), string(e.Destination)}); err != nil {
			return err
		}
	}

	s := w.Summarize()
	rows := [][]string{
		{"week_start_date", w.Start.Format(ledger.DateFormat), ""},
		{"initial_capital", s.InitialCapital.String(), ""},
		{"total_profit_loss", s.TotalProfitLoss.String(), ""},
		{"current_balance", s.Balance.String(), ""},
		{"profit_loss_percentage", s.ProfitLossPercentage.String(), ""},
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// jsonExport is the record plus the derived summary block.
type jsonExport struct {
	ledger.Record
	CurrentBalance       string `json:"current_balance"`
	TotalProfitLoss      string `json:"total_profit_loss"`
	ProfitLossPercentage string `json:"profit_loss_percentage"`
	PositiveDays         int    `json:"positive_days"`
	NegativeDays         int    `json:"negative_days"`
}

// WriteJSON writes the stored record shape with the derived metrics attached.
func WriteJSON(out io.Writer, w *ledger.Week) error {
	s := w.Summarize()
	doc := jsonExport{
		Record:               w.Record(),
		CurrentBalance:       s.Balance.String(),
		TotalProfitLoss:      s.TotalProfitLoss.String(),
		ProfitLossPercentage: s.ProfitLossPercentage.String(),
		PositiveDays:         s.PositiveDays,
		NegativeDays:         s.NegativeDays,
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// titleCase renders a day key for human-facing output.
func titleCase(day ledger.Day) string {
	s := string(day)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
