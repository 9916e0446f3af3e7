package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pable/go-map-ranks/internal/report"
)

var (
	searchLimit    int
	searchSnapshot string
)

var searchCmd = &cobra.Command{
	Use:   "search <query...>",
	Short: "Find records by team, map, size or difficulty",
	Long: `Case-insensitive substring search over every record of the snapshot,
including maps under development. Filters do not apply.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVar(&searchLimit, "limit", -1, "max hits, 0 for all (default from config)")
	searchCmd.Flags().StringVar(&searchSnapshot, "snapshot", "", "snapshot ID prefix (default: latest)")
}

func runSearch(cmd *cobra.Command, args []string) error {
	b, err := loadBoard(cmd.Context(), searchSnapshot)
	if err != nil {
		return err
	}
	limit := searchLimit
	if limit < 0 {
		limit = cfg.Display.SearchLimit
	}
	query := strings.Join(args, " ")
	report.PrintSearch(os.Stdout, query, b.Search(query, limit))
	return nil
}
