package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/pable/go-map-ranks/internal/board"
	"github.com/pable/go-map-ranks/internal/model"
)

// rankPlaceholder stands in for a missing value in ranking tables; search
// tables leave the cell blank instead.
const rankPlaceholder = "-"

var medals = [3]string{"1st", "2nd", "3rd"}

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
}

// PrintSnapshotHeader prints a one-line summary of the loaded snapshot.
func PrintSnapshotHeader(w io.Writer, s board.Summary) {
	generated := s.GeneratedAt
	if generated == "" {
		generated = "-"
	}
	id := s.ID
	if len(id) > 12 {
		id = id[:12]
	}
	if id == "" {
		id = "live"
	}
	fmt.Fprintf(w, "\nSnapshot: %s  |  Generated: %s  |  Records: %d\n\n", id, generated, s.Count)
}

// PrintSelection prints the active filter values.
func PrintSelection(w io.Writer, sel model.Selection) {
	fmt.Fprintf(w, "Size: %s  |  Difficulty: %s  |  Month: %s\n", sel.Size, sel.Diff, sel.Month)
}

// PrintPodium prints the top three teams. Empty places are shown as "-".
func PrintPodium(w io.Writer, podium [3]*model.TeamRow) {
	table := newTable(w)
	table.Header("PLACE", "TEAM", "SCORE", "MAP", "TS")
	for i, row := range podium {
		if row == nil {
			table.Append(medals[i], rankPlaceholder, rankPlaceholder, rankPlaceholder, rankPlaceholder)
			continue
		}
		table.Append(medals[i], row.Team, row.Score.Format(rankPlaceholder), row.Map, orPlaceholder(row.TS))
	}
	table.Render()
}

// PrintRanking prints the numbered ranking table.
// Columns: # | TEAM | MAP | SCORE | NAT | LOC | TS
func PrintRanking(w io.Writer, rows []model.TeamRow) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No ranked teams for this selection.")
		return
	}
	table := newTable(w)
	table.Header("#", "TEAM", "MAP", "SCORE", "NAT", "LOC", "TS")
	for _, r := range rows {
		table.Append(
			strconv.Itoa(r.Rank),
			r.Team,
			r.Map,
			r.Score.Format(rankPlaceholder),
			r.Nat.Format(rankPlaceholder),
			r.Loc.Format(rankPlaceholder),
			orPlaceholder(r.TS),
		)
	}
	table.Render()
}

// PrintSearch prints search hits in source order. Missing values are left blank.
func PrintSearch(w io.Writer, query string, hits []model.Record) {
	if len(hits) == 0 {
		fmt.Fprintf(w, "No records match %q.\n", query)
		return
	}
	table := newTable(w)
	table.Header("TS", "TEAM", "MAP", "SIZE", "DIFF", "NAT", "LOC", "SCORE")
	for _, r := range hits {
		diff := string(r.Diff)
		if r.IsDev {
			diff = "dev"
		}
		table.Append(r.TS, r.Team, r.Map, string(r.Size), diff,
			r.Nat.Format(""), r.Loc.Format(""), r.Score.Format(""))
	}
	table.Render()
	fmt.Fprintf(w, "%d record(s)\n", len(hits))
}

// PrintHistory prints a team's results on one map in time order.
// Columns: DATE | TS | NAT | LOC | SCORE
func PrintHistory(w io.Writer, mapName, team string, points []model.HistoryPoint) {
	if len(points) == 0 {
		fmt.Fprintf(w, "No history for %s on %s.\n", team, mapName)
		return
	}
	fmt.Fprintf(w, "%s  |  %s  |  %d point(s)\n", mapName, team, len(points))
	table := newTable(w)
	table.Header("DATE", "TS", "NAT", "LOC", "SCORE")
	for _, p := range points {
		table.Append(p.Label(), p.TS,
			p.Nat.Format(rankPlaceholder), p.Loc.Format(rankPlaceholder), p.Score.Format(rankPlaceholder))
	}
	table.Render()
}

// PrintChoices prints one filter dimension with the active value marked by ">".
func PrintChoices(w io.Writer, label string, choices []string, active string) {
	fmt.Fprintf(w, "%-6s", label)
	for _, c := range choices {
		if c == active {
			fmt.Fprintf(w, " >%s", c)
		} else {
			fmt.Fprintf(w, "  %s", c)
		}
	}
	fmt.Fprintln(w)
}

// PrintFilters prints every filter dimension available to the board's current selection.
func PrintFilters(w io.Writer, b *board.Board) {
	sel := b.Selection()

	sizes := make([]string, len(model.SelectableSizes))
	for i, s := range model.SelectableSizes {
		sizes[i] = string(s)
	}
	diffs := b.Difficulties()
	diffLabels := make([]string, len(diffs))
	for i, d := range diffs {
		diffLabels[i] = string(d)
	}

	PrintChoices(w, "month", b.Months(), sel.Month)
	PrintChoices(w, "size", sizes, string(sel.Size))
	PrintChoices(w, "diff", diffLabels, string(sel.Diff))
}

// PrintOverview prints record totals and the per-map breakdown.
func PrintOverview(w io.Writer, ov board.Overview) {
	fmt.Fprintf(w, "\n=== Snapshot Overview ===\n\n")
	fmt.Fprintf(w, "  Records     : %d (%d on dev maps)\n", ov.Records, ov.DevRecords)
	fmt.Fprintf(w, "  Teams       : %d\n", ov.Teams)
	if ov.FirstMonth != "" {
		fmt.Fprintf(w, "  Month range : %s → %s\n", ov.FirstMonth, ov.LastMonth)
	}
	fmt.Fprintf(w, "  Maps        : %d\n", len(ov.Maps))
	if len(ov.Maps) == 0 {
		return
	}

	fmt.Fprintf(w, "\n--- Maps ---\n\n")
	table := newTable(w)
	table.Header("MAP", "SIZE", "DIFF", "RECORDS", "TEAMS")
	for _, m := range ov.Maps {
		diff := string(m.Diff)
		if m.IsDev {
			diff = "dev"
		}
		table.Append(m.Map, string(m.Size), orPlaceholder(diff), strconv.Itoa(m.Records), strconv.Itoa(m.Teams))
	}
	table.Render()
}

// PrintSnapshots prints the stored snapshot list.
func PrintSnapshots(w io.Writer, list []model.SnapshotSummary) {
	if len(list) == 0 {
		fmt.Fprintln(w, "No snapshots stored.")
		return
	}
	table := newTable(w)
	table.Header("ID", "GENERATED", "COUNT", "RECORDS", "IMPORTED", "SOURCE")
	for _, s := range list {
		id := s.ID
		if len(id) > 12 {
			id = id[:12]
		}
		table.Append(id, orPlaceholder(s.GeneratedAt), strconv.Itoa(s.Count), strconv.Itoa(s.Records),
			s.ImportedAt.Local().Format("2006-01-02 15:04"), s.Source)
	}
	table.Render()
}

// PrintRows prints an untyped result set, one string per cell.
func PrintRows(w io.Writer, cols []string, rows [][]string) {
	table := newTable(w)
	header := make([]any, len(cols))
	for i, c := range cols {
		header[i] = c
	}
	table.Header(header...)
	for _, row := range rows {
		cells := make([]any, len(row))
		for i, v := range row {
			cells[i] = v
		}
		table.Append(cells...)
	}
	table.Render()
}

func orPlaceholder(s string) string {
	if s == "" {
		return rankPlaceholder
	}
	return s
}
