// Package filter selects the records that take part in a ranking view and
// derives the filter choices that are valid for the current selection.
package filter

import (
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/pable/go-map-ranks/internal/collation"
	"github.com/pable/go-map-ranks/internal/model"
)

// Months returns All followed by every distinct non-empty month, newest first.
func Months(records []model.Record) []string {
	seen := make(map[string]bool)
	var months []string
	for _, r := range records {
		if r.Month == "" || seen[r.Month] {
			continue
		}
		seen[r.Month] = true
		months = append(months, r.Month)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months)))
	return append([]string{model.All}, months...)
}

// AvailableDifficulties lists the difficulties present under the selected month
// and size: All, then canonical labels in canonical order, then unknown labels
// in collation order. Dev-flagged records never contribute.
func AvailableDifficulties(records []model.Record, sel model.Selection) []model.Difficulty {
	exists := make(map[model.Difficulty]bool)
	for i := range records {
		r := &records[i]
		if r.IsDev || !matchMonth(r, sel) || !matchSize(r, sel) {
			continue
		}
		if r.Diff != "" {
			exists[r.Diff] = true
		}
	}

	out := []model.Difficulty{model.DiffAll}
	for _, d := range model.DifficultyOrder {
		if exists[d] {
			out = append(out, d)
		}
	}

	var others []model.Difficulty
	for d := range exists {
		if d.Order() < 0 {
			others = append(others, d)
		}
	}
	sort.Slice(others, func(i, j int) bool {
		return collation.Less(string(others[i]), string(others[j]))
	})
	return append(out, others...)
}

// ForRanking keeps the records eligible for the ranking under sel.
// The input slice is never modified.
func ForRanking(records []model.Record, sel model.Selection) []model.Record {
	var out []model.Record
	for i := range records {
		r := &records[i]
		if r.IsDev || r.Team == "" {
			continue
		}
		if !matchMonth(r, sel) || !matchSize(r, sel) {
			continue
		}
		if !sel.Diff.IsAll() && r.Diff != sel.Diff {
			continue
		}
		out = append(out, *r)
	}
	return out
}

// Revalidate resets selection fields that no longer name an available choice.
// The month is checked first because it narrows the difficulty list.
func Revalidate(records []model.Record, sel model.Selection) model.Selection {
	if sel.Month == "" || !containsString(Months(records), sel.Month) {
		sel.Month = model.All
	}
	if sel.Size == "" {
		sel.Size = model.SizeAll
	}
	if !containsDiff(AvailableDifficulties(records, sel), sel.Diff) {
		sel.Diff = model.DiffAll
	}
	return sel
}

// Search returns records whose team, map, difficulty or size contains query,
// ignoring case. Dev-flagged records are included. An empty query matches
// nothing; limit <= 0 means no cap. Both sides are compared in NFC, so
// decomposed Hangul input still matches.
func Search(records []model.Record, query string, limit int) []model.Record {
	q := foldText(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var hits []model.Record
	for i := range records {
		r := &records[i]
		if contains(r.Team, q) || contains(r.Map, q) || contains(string(r.Diff), q) || contains(string(r.Size), q) {
			hits = append(hits, *r)
			if limit > 0 && len(hits) == limit {
				break
			}
		}
	}
	return hits
}

func contains(hay, foldedQuery string) bool {
	return strings.Contains(foldText(hay), foldedQuery)
}

func foldText(s string) string {
	return strings.ToLower(norm.NFC.String(s))
}

func matchMonth(r *model.Record, sel model.Selection) bool {
	return sel.Month == model.All || r.Month == sel.Month
}

func matchSize(r *model.Record, sel model.Selection) bool {
	return sel.Size.IsAll() || r.Size == sel.Size
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func containsDiff(list []model.Difficulty, v model.Difficulty) bool {
	for _, d := range list {
		if d == v {
			return true
		}
	}
	return false
}
