package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rvaldes/tradeweek/ledger"
	"github.com/rvaldes/tradeweek/snapshot"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Save, load and list standalone week snapshot files",
	Long: `Snapshots are self-contained JSON files, one week each, named after
the week's start date. They work as manual backup/restore and as the
weekly archive; a later week never overwrites an earlier file.

Examples:
  tradeweek snapshot save
  tradeweek snapshot load Weekend-Saved/weekend_trading_2026-08-24.json
  tradeweek snapshot list`,
}

var snapshotSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save the current week to the archive directory",
	Args:  cobra.NoArgs,
	RunE:  runSnapshotSave,
}

var snapshotLoadCmd = &cobra.Command{
	Use:   "load <path>",
	Short: "Load a snapshot file as the current week",
	Args:  cobra.ExactArgs(1),
	RunE:  runSnapshotLoad,
}

var snapshotListCmd = &cobra.Command{
	Use:   "list",
	Short: "List archived snapshots, most recent first",
	Args:  cobra.NoArgs,
	RunE:  runSnapshotList,
}

var snapshotDir string

func init() {
	rootCmd.AddCommand(snapshotCmd)
	snapshotCmd.AddCommand(snapshotSaveCmd)
	snapshotCmd.AddCommand(snapshotLoadCmd)
	snapshotCmd.AddCommand(snapshotListCmd)

	snapshotCmd.PersistentFlags().StringVar(&snapshotDir, "dir", "", "archive directory (default from config)")
}

func archiveDir(cfgDir string) string {
	if snapshotDir != "" {
		return snapshotDir
	}
	return cfgDir
}

// archiveWeek writes a week's snapshot into the archive directory.
func archiveWeek(w *ledger.Week, dir string) error {
	return snapshot.Save(w, snapshot.ArchivePath(dir, w.Start))
}

func runSnapshotSave(cmd *cobra.Command, args []string) error {
	tr, st, cfg, err := openTracker()
	if err != nil {
		return err
	}
	defer st.Close()

	dir := archiveDir(cfg.Storage.ArchiveDir)
	path := snapshot.ArchivePath(dir, tr.Week().Start)
	if err := snapshot.Save(tr.Week(), path); err != nil {
		return err
	}

	fmt.Printf("✓ Saved %s\n", path)
	return nil
}

func runSnapshotLoad(cmd *cobra.Command, args []string) error {
	w, err := snapshot.Load(args[0])
	if err != nil {
		return err
	}

	tr, st, _, err := openTracker()
	if err != nil {
		return err
	}
	defer st.Close()

	// Importing a snapshot re-persists it so the store and the file agree.
	if err := tr.Import(w); err != nil {
		return err
	}

	fmt.Printf("✓ Loaded week %s from %s\n", w.Start.Format(ledger.DateFormat), args[0])
	printWeek(tr.Week())
	return nil
}

func runSnapshotList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	names, err := snapshot.ListArchive(archiveDir(cfg.Storage.ArchiveDir))
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Println("No snapshots archived yet.")
		return nil
	}
	for _, n := range names {
		fmt.Println(n)
	}
	return nil
}
