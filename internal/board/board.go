// Package board holds the state of one leaderboard view: the record set of
// the loaded snapshot and the current filter selection.
//
// The record set is built once per load and never modified. Every change of
// selection goes through a setter that re-validates the dependent fields, so
// derived views are always computed from a consistent selection.
package board

import (
	"github.com/pable/go-map-ranks/internal/aggregator"
	"github.com/pable/go-map-ranks/internal/filter"
	"github.com/pable/go-map-ranks/internal/model"
	"github.com/pable/go-map-ranks/internal/parser"
)

// Board is the view state over one snapshot. It is not safe for concurrent use.
type Board struct {
	id          string
	generatedAt string
	count       int
	records     []model.Record
	sel         model.Selection
}

// New normalizes the snapshot's records and starts with everything selected.
func New(snap *model.Snapshot) *Board {
	b := &Board{
		id:          snap.ID,
		generatedAt: snap.GeneratedAt,
		count:       snap.Count,
		records:     parser.NormalizeAll(snap.Records),
		sel:         model.DefaultSelection(),
	}
	if b.count == 0 {
		b.count = len(b.records)
	}
	return b
}

// Summary describes the loaded snapshot.
type Summary struct {
	ID          string
	GeneratedAt string
	Count       int
	Records     int
}

func (b *Board) Summary() Summary {
	return Summary{ID: b.id, GeneratedAt: b.generatedAt, Count: b.count, Records: len(b.records)}
}

// Records returns the full normalized record set. Callers must not modify it.
func (b *Board) Records() []model.Record { return b.records }

func (b *Board) Selection() model.Selection { return b.sel }

// SetSize selects a size, then resets the difficulty if it no longer exists.
func (b *Board) SetSize(s model.Size) model.Selection {
	b.sel.Size = s
	b.sel = filter.Revalidate(b.records, b.sel)
	return b.sel
}

// SetMonth selects a month ("YYYY-MM" or All), then re-validates. Unknown months reset to All.
func (b *Board) SetMonth(month string) model.Selection {
	b.sel.Month = month
	b.sel = filter.Revalidate(b.records, b.sel)
	return b.sel
}

// SetDiff selects a difficulty. It is not re-validated: a difficulty that is
// absent under the current size and month simply yields an empty ranking.
func (b *Board) SetDiff(d model.Difficulty) model.Selection {
	b.sel.Diff = d
	return b.sel
}

// Months lists the month choices, All first.
func (b *Board) Months() []string { return filter.Months(b.records) }

// Difficulties lists the difficulty choices under the current size and month.
func (b *Board) Difficulties() []model.Difficulty {
	return filter.AvailableDifficulties(b.records, b.sel)
}

// Teams returns every team's best record under the current selection, in
// ranking order and without a row cap.
func (b *Board) Teams() []model.Record {
	return aggregator.BuildTeamRows(filter.ForRanking(b.records, b.sel))
}

// Ranking returns the numbered ranking, capped at limit rows (<= 0: no cap).
func (b *Board) Ranking(limit int) []model.TeamRow {
	return aggregator.Rank(b.Teams(), limit)
}

// Podium returns the top three of the current ranking.
func (b *Board) Podium() [3]*model.TeamRow {
	return aggregator.Podium(b.Ranking(3))
}

// Search matches query against every record, dev maps included.
func (b *Board) Search(query string, limit int) []model.Record {
	return filter.Search(b.records, query, limit)
}

// History returns the time-ordered results of team on mapName across all months.
func (b *Board) History(mapName, team string) []model.HistoryPoint {
	return aggregator.TeamHistory(b.records, mapName, team)
}
