package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rvaldes/tradeweek/config"
	"github.com/rvaldes/tradeweek/store"
	"github.com/rvaldes/tradeweek/tracker"
)

var rootCmd = &cobra.Command{
	Use:   "tradeweek",
	Short: "A weekly trading journal with rollover and withdrawal tracking",
	Long: `Tradeweek is a personal weekly trading journal.

It records a profit/loss amount and a destination (withdrawal or
reinvestment) for each day of a trading week, computes the derived
balance and percentage, and rolls the week over every Saturday with a
30% withdrawal of positive results.

Weeks persist in a local SQLite database; standalone JSON snapshots
serve as manual backup and a per-week archive.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

var cfgFile string

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default built-in settings)")
}

// loadConfig resolves the active configuration: the --config file if given,
// otherwise defaults.
func loadConfig() (*config.Config, error) {
	if cfgFile == "" {
		return config.Default(), nil
	}
	cfg, err := config.LoadFromFile(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// openStore opens the configured ledger database.
func openStore(cfg *config.Config) (*store.SQLite, error) {
	st, err := store.NewSQLite(cfg.Storage.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	return st, nil
}

// openTracker opens the store and tracker the way every journal command
// needs them. The caller owns closing the store.
func openTracker() (*tracker.Tracker, *store.SQLite, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}

	log := logrus.New()
	log.SetLevel(cfg.LogLevel())

	st, err := openStore(cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	tr := tracker.Open(st, decimal.NewFromFloat(cfg.Week.DefaultInitialCapital), log)
	return tr, st, cfg, nil
}
