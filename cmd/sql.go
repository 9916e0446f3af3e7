package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pable/go-map-ranks/internal/report"
)

var sqlCmd = &cobra.Command{
	Use:   "sql <query>",
	Short: "Run a raw SQL query against the snapshot cache",
	Long: `Run an arbitrary SQL query against the snapshot cache and print results as a table.

Schema overview:
  snapshots(id, generated_at, count, source, imported_at)
  records(snapshot_id, seq, ts, team, map, nat, loc, score)

nat, loc and score hold the cell as a JSON literal: strings are quoted, numbers
are bare and null is NULL. Use json_extract to compare numerically:
  SELECT team, json_extract(score, '$') AS s FROM records ORDER BY s DESC`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSQL,
}

func runSQL(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	cols, rows, err := db.QueryRaw(query)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Println("(no rows)")
		return nil
	}

	report.PrintRows(os.Stdout, cols, rows)
	fmt.Fprintf(os.Stdout, "\n(%d rows)\n", len(rows))
	return nil
}
