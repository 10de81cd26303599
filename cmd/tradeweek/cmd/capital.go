package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var capitalCmd = &cobra.Command{
	Use:   "capital <value>",
	Short: "Set the current week's initial capital",
	Long: `Set the capital committed at the start of the current week.

Negative values clamp to zero.

Example:
  tradeweek capital 500`,
	Args: cobra.ExactArgs(1),
	RunE: runCapital,
}

func init() {
	rootCmd.AddCommand(capitalCmd)
}

func runCapital(cmd *cobra.Command, args []string) error {
	v, err := decimal.NewFromString(args[0])
	if err != nil {
		return fmt.Errorf("capital %q: %w", args[0], err)
	}

	tr, st, _, err := openTracker()
	if err != nil {
		return err
	}
	defer st.Close()

	if err := tr.SetInitialCapital(v); err != nil {
		return err
	}

	fmt.Printf("✓ Initial capital set to $%s\n", tr.Week().InitialCapital.StringFixed(2))
	return nil
}
