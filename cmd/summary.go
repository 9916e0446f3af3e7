package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-map-ranks/internal/report"
)

var summarySnapshot string

// summaryCmd is the cobra command for displaying a high-level snapshot overview.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show a high-level overview of a snapshot",
	Long: `Display aggregate statistics about one snapshot: record and team totals,
the month range covered, and a per-map breakdown in size and difficulty order.`,
	Args: cobra.NoArgs,
	RunE: runSummary,
}

func init() {
	summaryCmd.Flags().StringVar(&summarySnapshot, "snapshot", "", "snapshot ID prefix (default: latest)")
}

func runSummary(cmd *cobra.Command, args []string) error {
	b, err := loadBoard(cmd.Context(), summarySnapshot)
	if err != nil {
		return err
	}
	report.PrintSnapshotHeader(os.Stdout, b.Summary())
	report.PrintOverview(os.Stdout, b.Overview())
	return nil
}
