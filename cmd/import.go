package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-map-ranks/internal/board"
	"github.com/pable/go-map-ranks/internal/report"
	"github.com/pable/go-map-ranks/internal/snapshot"
)

var importID string

var importCmd = &cobra.Command{
	Use:   "import [file|url]",
	Short: "Load a snapshot and store it in the cache",
	Long: `Read a leaderboard snapshot from a JSON file (optionally .gz or .zst
compressed) or an http(s) URL and store it in the local cache. Without an
argument the configured source is used.

Importing with an --id that already exists replaces that snapshot.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&importID, "id", "", "snapshot ID to store under (default: new UUID)")
}

func runImport(cmd *cobra.Command, args []string) error {
	src := cfg.Source.URL
	if len(args) == 1 {
		src = args[0]
	}
	if src == "" {
		return fmt.Errorf("no source given and none configured")
	}

	snap, err := snapshot.Open(cmd.Context(), src)
	if err != nil {
		return fmt.Errorf("load %s: %w", src, err)
	}
	snap.ID = importID

	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	id, err := db.InsertSnapshot(snap)
	if err != nil {
		return fmt.Errorf("store snapshot: %w", err)
	}
	snap.ID = id
	slog.Info("snapshot imported", "id", id, "source", src, "records", len(snap.Records))

	report.PrintSnapshotHeader(os.Stdout, board.New(snap).Summary())
	return nil
}
