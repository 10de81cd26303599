package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rvaldes/tradeweek/export"
)

var exportCmd = &cobra.Command{
	Use:   "export <path>",
	Short: "Export the current week to CSV, JSON or Excel",
	Long: `Export the current week; the format follows the file extension.

Examples:
  tradeweek export week.csv
  tradeweek export week.json
  tradeweek export week.xlsx`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	tr, st, _, err := openTracker()
	if err != nil {
		return err
	}
	defer st.Close()

	path := args[0]
	week := tr.Week().Clone()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create %s: %w", path, err)
		}
		defer f.Close()
		if err := export.WriteCSV(f, week); err != nil {
			return fmt.Errorf("export csv: %w", err)
		}
	case ".json":
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create %s: %w", path, err)
		}
		defer f.Close()
		if err := export.WriteJSON(f, week); err != nil {
			return fmt.Errorf("export json: %w", err)
		}
	case ".xlsx":
		if err := export.WriteXLSX(path, week); err != nil {
			return fmt.Errorf("export xlsx: %w", err)
		}
	default:
		return fmt.Errorf("unsupported export format %q (use .csv, .json or .xlsx)", filepath.Ext(path))
	}

	fmt.Printf("✓ Exported week %s to %s\n", week.Start.Format("2006-01-02"), path)
	return nil
}
