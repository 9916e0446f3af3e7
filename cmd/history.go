package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-map-ranks/internal/report"
)

var historySnapshot string

var historyCmd = &cobra.Command{
	Use:   "history <map> <team>",
	Short: "Show a team's results on one map over time",
	Long: `List every timestamped record of the team on the exact map label, oldest
first, across all months. Records without a valid timestamp are skipped.`,
	Args: cobra.ExactArgs(2),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&historySnapshot, "snapshot", "", "snapshot ID prefix (default: latest)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	b, err := loadBoard(cmd.Context(), historySnapshot)
	if err != nil {
		return err
	}
	mapName, team := args[0], args[1]
	report.PrintHistory(os.Stdout, mapName, team, b.History(mapName, team))
	return nil
}
