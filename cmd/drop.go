package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	dropAll   bool
	dropForce bool
)

// dropCmd deletes one cached snapshot, or the whole cache file with --all.
var dropCmd = &cobra.Command{
	Use:   "drop [id-prefix]",
	Short: "Delete a cached snapshot",
	Long: `Delete the cached snapshot whose ID starts with the given prefix.

With --all the whole SQLite cache file is removed instead; this needs --force.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDrop,
}

func init() {
	dropCmd.Flags().BoolVar(&dropAll, "all", false, "delete the entire cache database")
	dropCmd.Flags().BoolVarP(&dropForce, "force", "f", false, "skip confirmation prompt for --all")
}

func runDrop(cmd *cobra.Command, args []string) error {
	if dropAll {
		return dropDatabase()
	}
	if len(args) != 1 {
		return fmt.Errorf("drop needs an id prefix, or --all")
	}

	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	snap, err := db.GetSnapshotByPrefix(args[0])
	if err != nil {
		return fmt.Errorf("get snapshot: %w", err)
	}
	if snap == nil {
		return fmt.Errorf("no snapshot found with prefix %q", args[0])
	}
	if _, err := db.DeleteSnapshot(snap.ID); err != nil {
		return fmt.Errorf("delete snapshot: %w", err)
	}
	slog.Info("snapshot deleted", "id", snap.ID)
	fmt.Fprintf(os.Stdout, "Deleted snapshot %s (%d records)\n", snap.ID, len(snap.Records))
	return nil
}

func dropDatabase() error {
	if !dropForce {
		fmt.Fprintf(os.Stderr, "This will permanently delete: %s\n", dbPath)
		fmt.Fprintf(os.Stderr, "Re-run with --force to confirm.\n")
		return nil
	}
	if err := os.Remove(dbPath); err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintln(os.Stdout, "Database does not exist, nothing to drop.")
			return nil
		}
		return fmt.Errorf("remove database: %w", err)
	}
	// WAL side files; absent when the database was closed cleanly.
	os.Remove(dbPath + "-wal")
	os.Remove(dbPath + "-shm")
	fmt.Fprintf(os.Stdout, "Deleted: %s\n", dbPath)
	return nil
}
