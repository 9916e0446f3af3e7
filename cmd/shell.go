package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pable/go-map-ranks/internal/board"
	"github.com/pable/go-map-ranks/internal/model"
	"github.com/pable/go-map-ranks/internal/report"
)

var (
	cPrompt   = color.New(color.FgCyan, color.Bold)
	cMuted    = color.New(color.Faint)
	cError    = color.New(color.FgRed, color.Bold)
	cWarn     = color.New(color.FgYellow)
	cHeader   = color.New(color.FgCyan, color.Bold)
	cCmd      = color.New(color.FgYellow, color.Bold)
	cGreeting = color.New(color.Bold)
)

var shellSnapshot string

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive leaderboard session",
	Long: `Open a session over one snapshot. Filter changes persist for the session
and every change redraws the ranking. Type 'help' for available commands.`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

func init() {
	shellCmd.Flags().StringVar(&shellSnapshot, "snapshot", "", "snapshot ID prefix (default: latest)")
}

func runShell(cmd *cobra.Command, _ []string) error {
	b, err := loadBoard(cmd.Context(), shellSnapshot)
	if err != nil {
		return err
	}

	cGreeting.Println("mapranks shell")
	report.PrintSnapshotHeader(os.Stdout, b.Summary())
	cMuted.Println("type 'help' or 'exit'")
	fmt.Println()
	shellRank(b)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		cPrompt.Print("mapranks")
		cMuted.Printf(" [%s/%s/%s]", b.Selection().Size, b.Selection().Diff, b.Selection().Month)
		cMuted.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		tokens := strings.Fields(line)
		name, args := tokens[0], tokens[1:]

		switch name {
		case "exit", "quit":
			return nil
		case "help":
			shellHelp()
		case "size", "diff", "month":
			if len(args) == 0 {
				cError.Fprintf(os.Stderr, "usage: %s <value>\n", name)
				continue
			}
			shellSelect(b, name, strings.Join(args, " "))
		case "reset":
			b.SetMonth(model.All)
			b.SetSize(model.SizeAll)
			b.SetDiff(model.DiffAll)
			shellRank(b)
		case "rank", "top":
			limit := cfg.Display.Rows
			if len(args) > 0 {
				if n, err := strconv.Atoi(args[0]); err == nil {
					limit = n
				}
			}
			shellRankN(b, limit)
		case "filters":
			report.PrintFilters(os.Stdout, b)
		case "search":
			if len(args) == 0 {
				cError.Fprintln(os.Stderr, "usage: search <query...>")
				continue
			}
			query := strings.Join(args, " ")
			report.PrintSearch(os.Stdout, query, b.Search(query, cfg.Display.SearchLimit))
		case "history":
			if len(args) < 2 {
				cError.Fprintln(os.Stderr, "usage: history <map> <team...>")
				continue
			}
			mapName, team := args[0], strings.Join(args[1:], " ")
			report.PrintHistory(os.Stdout, mapName, team, b.History(mapName, team))
		case "summary":
			report.PrintOverview(os.Stdout, b.Overview())
		default:
			cWarn.Fprintf(os.Stderr, "unknown command %q, type 'help'\n", name)
		}
	}
	return nil
}

func shellHelp() {
	fmt.Println()
	type entry struct{ cmd, desc string }
	rows := []entry{
		{"size <all|소형|중형|대형|기타>", "select a map size (English names work too)"},
		{"diff <all|label>", "select a difficulty, e.g. 하드 or hard"},
		{"month <all|YYYY-MM>", "select a month"},
		{"reset", "clear every filter"},
		{"rank [n]", "show the podium and the top n teams"},
		{"filters", "show the available filter values"},
		{"search <query...>", "find records by team, map, size or difficulty"},
		{"history <map> <team...>", "a team's results on one map over time"},
		{"summary", "record, team and map totals"},
		{"help", "show this message"},
		{"exit / quit", "close the session"},
	}
	for _, r := range rows {
		fmt.Print("  ")
		cCmd.Printf("%-32s", r.cmd)
		fmt.Println(r.desc)
	}
	fmt.Println()
}

// shellSelect applies one filter change and redraws the ranking.
func shellSelect(b *board.Board, dim, value string) {
	var err error
	switch dim {
	case "size":
		err = applySelection(b, value, "", "")
	case "diff":
		err = applySelection(b, "", value, "")
	case "month":
		err = applySelection(b, "", "", value)
	}
	if err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	shellRank(b)
}

func shellRank(b *board.Board) { shellRankN(b, cfg.Display.Rows) }

func shellRankN(b *board.Board, limit int) {
	cHeader.Fprintln(os.Stdout, "--- Podium ---")
	report.PrintPodium(os.Stdout, b.Podium())
	fmt.Println()
	cHeader.Fprintln(os.Stdout, "--- Ranking ---")
	report.PrintRanking(os.Stdout, b.Ranking(limit))
	fmt.Println()
}
