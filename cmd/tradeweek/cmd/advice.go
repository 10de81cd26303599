package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rvaldes/tradeweek/advice"
)

var adviceCmd = &cobra.Command{
	Use:   "advice",
	Short: "Print today's advice based on the current week",
	Args:  cobra.NoArgs,
	RunE:  runAdvice,
}

func init() {
	rootCmd.AddCommand(adviceCmd)
}

func runAdvice(cmd *cobra.Command, args []string) error {
	tr, st, _, err := openTracker()
	if err != nil {
		return err
	}
	defer st.Close()

	msg := advice.Daily(time.Now(), tr.Week().Summarize())
	fmt.Println(msg.Title)
	fmt.Println()
	fmt.Println(msg.Body)
	return nil
}
