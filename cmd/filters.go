package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-map-ranks/internal/report"
)

var (
	filtersSize     string
	filtersMonth    string
	filtersSnapshot string
)

var filtersCmd = &cobra.Command{
	Use:   "filters",
	Short: "Show the months, sizes and difficulties available to filter on",
	Long: `List every filter choice. The difficulty list depends on the selected
size and month: only difficulties with at least one ranked record appear.`,
	Args: cobra.NoArgs,
	RunE: runFilters,
}

func init() {
	f := filtersCmd.Flags()
	f.StringVar(&filtersSize, "size", "", "map size filter")
	f.StringVar(&filtersMonth, "month", "", "month filter (YYYY-MM)")
	f.StringVar(&filtersSnapshot, "snapshot", "", "snapshot ID prefix (default: latest)")
}

func runFilters(cmd *cobra.Command, args []string) error {
	b, err := loadBoard(cmd.Context(), filtersSnapshot)
	if err != nil {
		return err
	}
	if err := applySelection(b, filtersSize, "", filtersMonth); err != nil {
		return err
	}
	report.PrintFilters(os.Stdout, b)
	return nil
}
