package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rvaldes/tradeweek/ledger"
	"github.com/rvaldes/tradeweek/tracker"
)

var rolloverCmd = &cobra.Command{
	Use:   "rollover",
	Short: "Start the next week seeded from the current one",
	Long: `Create the next week's ledger: start date one week after the current
week's, initial capital equal to the current balance minus a 30%
withdrawal of positive results. The current week's record is kept.

By default this runs only on Saturday, the weekly review day. Use
--force to start the new week on any day.`,
	Args: cobra.NoArgs,
	RunE: runRollover,
}

var rolloverForce bool

func init() {
	rootCmd.AddCommand(rolloverCmd)
	rolloverCmd.Flags().BoolVarP(&rolloverForce, "force", "f", false, "roll over even when it is not Saturday")
}

func runRollover(cmd *cobra.Command, args []string) error {
	if !rolloverForce && !tracker.DueToday(time.Now()) {
		fmt.Println("Rollover runs on Saturdays; use --force to start the new week now.")
		return nil
	}

	tr, st, cfg, err := openTracker()
	if err != nil {
		return err
	}
	defer st.Close()

	prev := tr.Week().Clone()

	res, err := tr.Rollover()
	if err != nil {
		return fmt.Errorf("rollover: %w", err)
	}

	date := res.Start.Format(ledger.DateFormat)
	if res.AlreadyExists {
		fmt.Printf("Week %s already exists; it is now the current week.\n", date)
		return nil
	}

	fmt.Printf("✓ Week %s started\n", date)
	fmt.Printf("  Previous balance:     $%s\n", prev.Balance().StringFixed(2))
	fmt.Printf("  Suggested withdrawal: $%s\n", res.Withdrawal.StringFixed(2))
	fmt.Printf("  New initial capital:  $%s\n", res.InitialCapital.StringFixed(2))

	// Archive the closed week as a snapshot file, best effort like the
	// closing save in the desktop flow.
	if err := archiveWeek(prev, cfg.Storage.ArchiveDir); err != nil {
		fmt.Printf("  (archive skipped: %v)\n", err)
	}
	return nil
}
