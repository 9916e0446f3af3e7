package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/pable/go-map-ranks/internal/config"
	"github.com/pable/go-map-ranks/internal/logging"
)

var (
	dbPath     string
	configPath string
	dataSource string
	verbose    bool

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "mapranks",
	Short: "Map leaderboard tool",
	Long: `Load score-sheet snapshots, cache them locally and browse per-map team
rankings by size, difficulty and month.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadSettings,
}

// Execute runs the root command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dbPath, "db", "", "path to SQLite snapshot cache (default from config)")
	pf.StringVar(&configPath, "config", config.DefaultPath(), "path to INI config file")
	pf.StringVar(&dataSource, "data", "", "snapshot file or URL to read directly, bypassing the cache")
	pf.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(dropCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(rankCmd)
	rootCmd.AddCommand(filtersCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(sqlCmd)
	rootCmd.AddCommand(shellCmd)
}

// loadSettings reads the config file and fills every flag the user did not set.
func loadSettings(cmd *cobra.Command, _ []string) error {
	logging.Init(os.Stderr, verbose)

	c, err := config.Load(configPath)
	if err != nil {
		return err
	}
	cfg = c
	if dbPath == "" {
		dbPath = cfg.Storage.DB
	}
	return nil
}
