package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-map-ranks/internal/report"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all cached snapshots",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	list, err := db.ListSnapshots()
	if err != nil {
		return fmt.Errorf("list snapshots: %w", err)
	}
	if len(list) == 0 {
		fmt.Fprintln(os.Stdout, "No snapshots stored yet. Run 'mapranks import <file|url>' to add one.")
		return nil
	}
	report.PrintSnapshots(os.Stdout, list)
	return nil
}
