package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var weeksCmd = &cobra.Command{
	Use:   "weeks",
	Short: "List all stored weeks, most recent first",
	Args:  cobra.NoArgs,
	RunE:  runWeeks,
}

var loadCmd = &cobra.Command{
	Use:   "load <YYYY-MM-DD>",
	Short: "Load a stored week as the current week",
	Args:  cobra.ExactArgs(1),
	RunE:  runLoad,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <YYYY-MM-DD>",
	Short: "Delete a stored week",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

var historyCmd = &cobra.Command{
	Use:   "history <YYYY-MM-DD>",
	Short: "Show the write history of a stored week",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(weeksCmd)
	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(historyCmd)
}

func runWeeks(cmd *cobra.Command, args []string) error {
	tr, st, _, err := openTracker()
	if err != nil {
		return err
	}
	defer st.Close()

	dates, err := tr.ListWeeks()
	if err != nil {
		return fmt.Errorf("list weeks: %w", err)
	}
	if len(dates) == 0 {
		fmt.Println("No stored weeks yet.")
		return nil
	}
	for _, d := range dates {
		fmt.Println(d)
	}
	return nil
}

func runLoad(cmd *cobra.Command, args []string) error {
	tr, st, _, err := openTracker()
	if err != nil {
		return err
	}
	defer st.Close()

	ok, err := tr.LoadByDate(args[0])
	if err != nil {
		return fmt.Errorf("load week: %w", err)
	}
	if !ok {
		fmt.Printf("No week stored for %s.\n", args[0])
		return nil
	}

	printWeek(tr.Week())
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	existed, err := st.Delete(args[0])
	if err != nil {
		return fmt.Errorf("delete week: %w", err)
	}
	if !existed {
		fmt.Printf("No week stored for %s.\n", args[0])
		return nil
	}
	fmt.Printf("✓ Deleted week %s\n", args[0])
	return nil
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	revs, err := st.Revisions(args[0])
	if err != nil {
		return fmt.Errorf("history: %w", err)
	}
	if len(revs) == 0 {
		fmt.Printf("No saves recorded for %s.\n", args[0])
		return nil
	}
	for _, r := range revs {
		fmt.Printf("%s  %s\n", r.SavedAt.Format("2006-01-02 15:04:05"), r.ID)
	}
	return nil
}
