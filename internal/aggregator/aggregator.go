package aggregator

import (
	"sort"

	"github.com/pable/go-map-ranks/internal/collation"
	"github.com/pable/go-map-ranks/internal/model"
)

// DefaultRowLimit caps the ranking table.
const DefaultRowLimit = 200

// BuildTeamRows folds records into one best record per team and returns them
// in ranking order.
//
// Within a team the best record is chosen by:
//
//	score desc → nat asc → loc asc → newer timestamp
//
// Missing scores lose to any real score; missing ranks lose to any real rank.
// The final order uses score, nat and loc, then the collated team name. The
// timestamp only decides between records of the same team.
func BuildTeamRows(records []model.Record) []model.Record {
	best := make(map[string]int) // team → index into out
	var out []model.Record

	for _, r := range records {
		idx, ok := best[r.Team]
		if !ok {
			best[r.Team] = len(out)
			out = append(out, r)
			continue
		}
		if beats(&r, &out[idx]) {
			out[idx] = r
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if c := compareResult(&out[i], &out[j]); c != 0 {
			return c < 0
		}
		return collation.Less(out[i].Team, out[j].Team)
	})
	return out
}

// beats reports whether candidate should replace the current best record of its team.
// The team-name step of the ranking order is omitted: both records share the team.
func beats(candidate, current *model.Record) bool {
	if c := compareResult(candidate, current); c != 0 {
		return c < 0
	}
	// A record without a valid timestamp never wins on recency.
	if !candidate.HasTime() {
		return false
	}
	return !current.HasTime() || candidate.T.After(current.T)
}

// compareResult orders two records by score desc, nat asc, loc asc.
// Negative means a ranks above b.
func compareResult(a, b *model.Record) int {
	as, bs := a.Score.Or(model.MissingScore), b.Score.Or(model.MissingScore)
	if as != bs {
		if as > bs {
			return -1
		}
		return 1
	}
	if c := compareAsc(a.Nat.Or(model.MissingRank), b.Nat.Or(model.MissingRank)); c != 0 {
		return c
	}
	return compareAsc(a.Loc.Or(model.MissingRank), b.Loc.Or(model.MissingRank))
}

func compareAsc(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Rank numbers the ordered team rows from 1 and keeps at most limit of them.
// limit <= 0 keeps every row.
func Rank(rows []model.Record, limit int) []model.TeamRow {
	n := len(rows)
	if limit > 0 && n > limit {
		n = limit
	}
	out := make([]model.TeamRow, n)
	for i := 0; i < n; i++ {
		out[i] = model.TeamRow{Rank: i + 1, Record: rows[i]}
	}
	return out
}

// Podium returns the first three ranked rows. Empty places are nil.
func Podium(rows []model.TeamRow) [3]*model.TeamRow {
	var top [3]*model.TeamRow
	for i := 0; i < len(top) && i < len(rows); i++ {
		top[i] = &rows[i]
	}
	return top
}

// TeamHistory returns every timestamped result of team on mapName, oldest
// first. No month, size or difficulty filter applies.
func TeamHistory(records []model.Record, mapName, team string) []model.HistoryPoint {
	var pts []model.HistoryPoint
	for i := range records {
		r := &records[i]
		if r.Map != mapName || r.Team != team || !r.HasTime() {
			continue
		}
		pts = append(pts, model.HistoryPoint{
			T:     r.T,
			TS:    r.TS,
			Nat:   r.Nat,
			Loc:   r.Loc,
			Score: r.Score,
		})
	}
	sort.SliceStable(pts, func(i, j int) bool {
		return pts[i].T.Before(pts[j].T)
	})
	return pts
}
