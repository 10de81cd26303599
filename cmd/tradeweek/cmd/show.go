package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rvaldes/tradeweek/ledger"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the current week and its summary",
	Args:  cobra.NoArgs,
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	tr, st, _, err := openTracker()
	if err != nil {
		return err
	}
	defer st.Close()

	printWeek(tr.Week())
	return nil
}

func printWeek(w *ledger.Week) {
	fmt.Printf("Week of %s\n\n", w.Start.Format(ledger.DateFormat))
	fmt.Printf("%-11s %12s  %s\n", "Day", "Amount", "Destination")
	for _, day := range ledger.Days {
		e := w.Entries[day]
		fmt.Printf("%-11s %12s  %s\n", titleDay(day), "$"+e.Amount.StringFixed(2), e.Destination)
	}

	s := w.Summarize()
	fmt.Println()
	fmt.Printf("Initial capital:  $%s\n", s.InitialCapital.StringFixed(2))
	fmt.Printf("Total P/L:        $%s (%s%%)\n", s.TotalProfitLoss.StringFixed(2), s.ProfitLossPercentage.StringFixed(2))
	fmt.Printf("Current balance:  $%s\n", s.Balance.StringFixed(2))
	fmt.Printf("Days in profit:   %d\n", s.PositiveDays)
	fmt.Printf("Days in loss:     %d\n", s.NegativeDays)
}

func titleDay(day ledger.Day) string {
	s := string(day)
	return strings.ToUpper(s[:1]) + s[1:]
}
