package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rvaldes/tradeweek/ledger"
)

var setCmd = &cobra.Command{
	Use:   "set <day> <amount>",
	Short: "Record a day's profit/loss and destination",
	Long: `Record the signed profit/loss amount for one day of the current week.

The destination classifies what a positive result is earmarked for.

Examples:
  tradeweek set monday 150.50 --dest reinvestment
  tradeweek set tuesday -42.10`,
	Args: cobra.ExactArgs(2),
	RunE: runSet,
}

var setDest string

func init() {
	rootCmd.AddCommand(setCmd)
	setCmd.Flags().StringVarP(&setDest, "dest", "d", "", "destination: withdrawal or reinvestment")
}

func runSet(cmd *cobra.Command, args []string) error {
	day, err := ledger.ParseDay(args[0])
	if err != nil {
		return err
	}
	amount, err := decimal.NewFromString(args[1])
	if err != nil {
		return fmt.Errorf("amount %q: %w", args[1], err)
	}
	dest, err := parseDestination(setDest)
	if err != nil {
		return err
	}

	tr, st, _, err := openTracker()
	if err != nil {
		return err
	}
	defer st.Close()

	if err := tr.SetDay(day, amount, dest); err != nil {
		return err
	}

	fmt.Printf("✓ %s: $%s recorded for week %s\n",
		titleDay(day), amount.StringFixed(2), tr.Week().Start.Format(ledger.DateFormat))
	return nil
}

func parseDestination(s string) (ledger.Destination, error) {
	switch s {
	case "":
		return ledger.Unset, nil
	case "withdrawal", "personal_withdrawal":
		return ledger.Withdrawal, nil
	case "reinvestment", "reinvest":
		return ledger.Reinvestment, nil
	default:
		return ledger.Unset, fmt.Errorf("unknown destination %q (use withdrawal or reinvestment)", s)
	}
}
