package board

import (
	"sort"

	"github.com/pable/go-map-ranks/internal/collation"
	"github.com/pable/go-map-ranks/internal/model"
)

// Overview is a high-level breakdown of the whole record set, independent of
// the current selection.
type Overview struct {
	Records    int
	DevRecords int
	Teams      int
	FirstMonth string
	LastMonth  string
	Maps       []MapCount
}

// MapCount is the per-map-label share of the record set.
type MapCount struct {
	Map     string
	Size    model.Size
	Diff    model.Difficulty
	IsDev   bool
	Records int
	Teams   int
}

// Overview counts records, teams and maps. Maps are ordered by size, then
// difficulty in canonical order, then label.
func (b *Board) Overview() Overview {
	ov := Overview{Records: len(b.records)}
	teams := make(map[string]bool)
	byMap := make(map[string]*MapCount)
	mapTeams := make(map[string]map[string]bool)

	for i := range b.records {
		r := &b.records[i]
		if r.IsDev {
			ov.DevRecords++
		}
		if r.Team != "" {
			teams[r.Team] = true
		}
		if r.Month != "" {
			if ov.FirstMonth == "" || r.Month < ov.FirstMonth {
				ov.FirstMonth = r.Month
			}
			if r.Month > ov.LastMonth {
				ov.LastMonth = r.Month
			}
		}
		mc, ok := byMap[r.Map]
		if !ok {
			mc = &MapCount{Map: r.Map, Size: r.Size, Diff: r.Diff, IsDev: r.IsDev}
			byMap[r.Map] = mc
			mapTeams[r.Map] = make(map[string]bool)
		}
		mc.Records++
		if r.Team != "" {
			mapTeams[r.Map][r.Team] = true
		}
	}
	ov.Teams = len(teams)

	for name, mc := range byMap {
		mc.Teams = len(mapTeams[name])
		ov.Maps = append(ov.Maps, *mc)
	}
	sort.Slice(ov.Maps, func(i, j int) bool {
		a, c := ov.Maps[i], ov.Maps[j]
		if sa, sc := sizeRank(a.Size), sizeRank(c.Size); sa != sc {
			return sa < sc
		}
		if da, dc := diffRank(a.Diff), diffRank(c.Diff); da != dc {
			return da < dc
		}
		return collation.Less(a.Map, c.Map)
	})
	return ov
}

func sizeRank(s model.Size) int {
	for i, k := range model.KnownSizes {
		if k == s {
			return i
		}
	}
	return len(model.KnownSizes)
}

func diffRank(d model.Difficulty) int {
	if o := d.Order(); o >= 0 {
		return o
	}
	return len(model.DifficultyOrder)
}
