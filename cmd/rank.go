package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-map-ranks/internal/report"
)

var (
	rankSize     string
	rankDiff     string
	rankMonth    string
	rankLimit    int
	rankSnapshot string
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Show the podium and team ranking",
	Long: `Rank teams by their best record under the selected size, difficulty and
month. A team's best record has the highest score; ties go to fewer nat, then
fewer loc, then the most recent record.

Sizes: all, 소형 (small), 중형 (medium), 대형 (large), 기타 (other).
Difficulties accept Korean labels or English names (hard, challenger, ...).
Months use YYYY-MM.`,
	Args: cobra.NoArgs,
	RunE: runRank,
}

func init() {
	f := rankCmd.Flags()
	f.StringVar(&rankSize, "size", "", "map size filter")
	f.StringVar(&rankDiff, "diff", "", "difficulty filter")
	f.StringVar(&rankMonth, "month", "", "month filter (YYYY-MM)")
	f.IntVar(&rankLimit, "limit", -1, "max ranking rows, 0 for all (default from config)")
	f.StringVar(&rankSnapshot, "snapshot", "", "snapshot ID prefix (default: latest)")
}

func runRank(cmd *cobra.Command, args []string) error {
	b, err := loadBoard(cmd.Context(), rankSnapshot)
	if err != nil {
		return err
	}
	if err := applySelection(b, rankSize, rankDiff, rankMonth); err != nil {
		return err
	}
	limit := rankLimit
	if limit < 0 {
		limit = cfg.Display.Rows
	}

	report.PrintSnapshotHeader(os.Stdout, b.Summary())
	report.PrintSelection(os.Stdout, b.Selection())
	report.PrintPodium(os.Stdout, b.Podium())
	report.PrintRanking(os.Stdout, b.Ranking(limit))
	return nil
}
