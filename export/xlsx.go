package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/rvaldes/tradeweek/ledger"
)

const sheet = "Sheet1"

// WriteXLSX saves the week as an Excel workbook: a styled day table and a
// KPI block underneath.
func WriteXLSX(path string, w *ledger.Week) error {
	f := excelize.NewFile()
	defer f.Close()

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"1F4E79"}, Pattern: 1},
	})
	if err != nil {
		return err
	}
	moneyFmt := "$#,##0.00"
	moneyStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &moneyFmt})
	if err != nil {
		return err
	}

	f.SetCellValue(sheet, "A1", "Day")
	f.SetCellValue(sheet, "B1", "Amount")
	f.SetCellValue(sheet, "C1", "Destination")
	if err := f.SetCellStyle(sheet, "A1", "C1", header); err != nil {
		return err
	}

	for i, day := range ledger.Days {
		row := i + 2
		e := w.Entries[day]
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), titleCase(day))
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), e.Amount.InexactFloat64())
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), string(e.Destination))
	}
	if err := f.SetCellStyle(sheet, "B2", "B8", moneyStyle); err != nil {
		return err
	}

	s := w.Summarize()
	kpis := []struct {
		label string
		value interface{}
	}{
		{"Week of", w.Start.Format(ledger.DateFormat)},
		{"Initial capital", s.InitialCapital.InexactFloat64()},
		{"Total P/L", s.TotalProfitLoss.InexactFloat64()},
		{"Current balance", s.Balance.InexactFloat64()},
		{"P/L %", s.ProfitLossPercentage.InexactFloat64()},
		{"Days in profit", s.PositiveDays},
		{"Days in loss", s.NegativeDays},
	}
	for i, kpi := range kpis {
		row := 10 + i
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), kpi.label)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), kpi.value)
	}

	return f.SaveAs(path)
}
