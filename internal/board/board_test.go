package board

import (
	"reflect"
	"testing"

	"github.com/pable/go-map-ranks/internal/model"
)

func rec(ts, team, mapName, nat, loc, score string) model.RawRecord {
	return model.RawRecord{
		TS: ts, Team: team, Map: mapName,
		Nat: model.TextField(nat), Loc: model.TextField(loc), Score: model.TextField(score),
	}
}

func newTestBoard() *Board {
	return New(&model.Snapshot{
		ID:          "snap-1",
		GeneratedAt: "2024-06-01 09:00",
		Records: []model.RawRecord{
			rec("2024-05-01 10:00", "토끼", "소형-하드", "1", "2", "1500"),
			rec("2024-05-03 10:00", "거북", "소형-하드", "0", "0", "1800"),
			rec("2024-04-10 10:00", "토끼", "소형-하드", "0", "0", "2000"),
			rec("2024-04-11 10:00", "여우", "중형-노말", "0", "1", "900"),
			rec("2024-04-12 10:00", "너구리", "대형-개발중", "0", "0", "9999"),
			rec("2024-04-12 11:00", "", "소형-하드", "0", "0", "5000"),
		},
	})
}

func TestSummary_CountFallsBack(t *testing.T) {
	b := newTestBoard()
	s := b.Summary()
	if s.ID != "snap-1" || s.GeneratedAt != "2024-06-01 09:00" {
		t.Errorf("unexpected summary header: %+v", s)
	}
	if s.Count != 6 || s.Records != 6 {
		t.Errorf("count must fall back to the record total: %+v", s)
	}
}

func TestDefaults(t *testing.T) {
	b := newTestBoard()
	if got := b.Selection(); got != model.DefaultSelection() {
		t.Errorf("expected default selection, got %+v", got)
	}
	want := []string{model.All, "2024-05", "2024-04"}
	if got := b.Months(); !reflect.DeepEqual(got, want) {
		t.Errorf("Months: want %v, got %v", want, got)
	}
}

func TestRanking_AllMonths(t *testing.T) {
	b := newTestBoard()
	rows := b.Ranking(0)
	if len(rows) != 3 {
		t.Fatalf("expected 3 teams (dev and unnamed excluded), got %d", len(rows))
	}
	wantTeams := []string{"토끼", "거북", "여우"}
	for i, w := range wantTeams {
		if rows[i].Team != w || rows[i].Rank != i+1 {
			t.Errorf("row %d: want %s rank %d, got %s rank %d", i, w, i+1, rows[i].Team, rows[i].Rank)
		}
	}
}

func TestSetMonth_NarrowsRanking(t *testing.T) {
	b := newTestBoard()
	sel := b.SetMonth("2024-05")
	if sel.Month != "2024-05" {
		t.Fatalf("month not applied: %+v", sel)
	}
	rows := b.Ranking(0)
	if len(rows) != 2 || rows[0].Team != "거북" || rows[1].Team != "토끼" {
		t.Errorf("unexpected May ranking: %+v", rows)
	}

	if sel := b.SetMonth("1999-01"); sel.Month != model.All {
		t.Errorf("unknown month must reset to All, got %q", sel.Month)
	}
}

func TestSetSize_ResetsUnavailableDiff(t *testing.T) {
	b := newTestBoard()
	b.SetDiff(model.DiffNormal)
	if rows := b.Ranking(0); len(rows) != 1 || rows[0].Team != "여우" {
		t.Fatalf("unexpected 노말 ranking: %+v", rows)
	}

	sel := b.SetSize(model.SizeSmall)
	if sel.Diff != model.DiffAll {
		t.Errorf("노말 is absent under 소형, diff must reset to All; got %q", sel.Diff)
	}
	want := []model.Difficulty{model.DiffAll, model.DiffHard}
	if got := b.Difficulties(); !reflect.DeepEqual(got, want) {
		t.Errorf("Difficulties: want %v, got %v", want, got)
	}
}

func TestPodium(t *testing.T) {
	b := newTestBoard()
	b.SetMonth("2024-05")
	p := b.Podium()
	if p[0] == nil || p[0].Team != "거북" || p[1] == nil || p[1].Team != "토끼" {
		t.Errorf("unexpected podium: %+v %+v", p[0], p[1])
	}
	if p[2] != nil {
		t.Errorf("third place must be empty, got %+v", p[2])
	}
}

func TestSearchIncludesDev(t *testing.T) {
	b := newTestBoard()
	hits := b.Search("개발", 0)
	if len(hits) != 1 || hits[0].Team != "너구리" || !hits[0].IsDev {
		t.Errorf("expected the dev record, got %+v", hits)
	}
}

func TestHistoryIgnoresSelection(t *testing.T) {
	b := newTestBoard()
	b.SetMonth("2024-05")
	pts := b.History("소형-하드", "토끼")
	if len(pts) != 2 {
		t.Fatalf("history must span all months, got %d points", len(pts))
	}
	if pts[0].Label() != "04-10" || pts[1].Label() != "05-01" {
		t.Errorf("unexpected order: %s, %s", pts[0].Label(), pts[1].Label())
	}
}

func TestRecordsUntouched(t *testing.T) {
	b := newTestBoard()
	before := make([]model.Record, len(b.Records()))
	copy(before, b.Records())

	b.SetSize(model.SizeSmall)
	b.SetMonth("2024-05")
	b.Ranking(0)
	b.Search("토끼", 0)

	if !reflect.DeepEqual(before, b.Records()) {
		t.Error("views must not modify the record set")
	}
}

func TestOverview(t *testing.T) {
	b := newTestBoard()
	ov := b.Overview()
	if ov.Records != 6 || ov.DevRecords != 1 {
		t.Errorf("record counts: %+v", ov)
	}
	if ov.Teams != 4 {
		t.Errorf("expected 4 named teams, got %d", ov.Teams)
	}
	if ov.FirstMonth != "2024-04" || ov.LastMonth != "2024-05" {
		t.Errorf("month span: %s → %s", ov.FirstMonth, ov.LastMonth)
	}
	if len(ov.Maps) != 3 {
		t.Fatalf("expected 3 maps, got %+v", ov.Maps)
	}
	if ov.Maps[0].Map != "소형-하드" || ov.Maps[0].Records != 4 || ov.Maps[0].Teams != 2 {
		t.Errorf("first map: %+v", ov.Maps[0])
	}
	if ov.Maps[1].Map != "중형-노말" || ov.Maps[2].Map != "대형-개발중" {
		t.Errorf("map order: %+v", ov.Maps)
	}
}
