package parser

import (
	"testing"
	"time"

	"github.com/pable/go-map-ranks/internal/model"
)

func TestParseTimestamp(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
		ok   bool
	}{
		{"2024-01-02 10:30", time.Date(2024, 1, 2, 10, 30, 0, 0, time.UTC), true},
		{"2024-01-02 10:30:15", time.Date(2024, 1, 2, 10, 30, 15, 0, time.UTC), true},
		{"2024-01-02T10:30", time.Date(2024, 1, 2, 10, 30, 0, 0, time.UTC), true},
		{" 2024-12-31 23:59 ", time.Date(2024, 12, 31, 23, 59, 0, 0, time.UTC), true},
		{"2024-01-02", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), true},
		{"", time.Time{}, false},
		{"yesterday", time.Time{}, false},
		{"2024-13-40 99:99", time.Time{}, false},
	}
	for _, c := range cases {
		got := ParseTimestamp(c.in)
		if got.IsZero() == c.ok {
			t.Errorf("ParseTimestamp(%q) validity: want %v, got %v", c.in, c.ok, !got.IsZero())
			continue
		}
		if c.ok && !got.Equal(c.want) {
			t.Errorf("ParseTimestamp(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestMonthKey(t *testing.T) {
	if got := MonthKey("2024-03-05 12:00"); got != "2024-03" {
		t.Errorf("want 2024-03, got %q", got)
	}
	if got := MonthKey("2024-0"); got != "" {
		t.Errorf("short ts: want empty, got %q", got)
	}
	if got := MonthKey("garbage!"); got != "garbage" {
		t.Errorf("month key is a plain prefix: got %q", got)
	}
}

func TestParseNumber(t *testing.T) {
	cases := []struct {
		in    model.Field
		want  float64
		valid bool
	}{
		{model.NullField, 0, false},
		{model.TextField(""), 0, false},
		{model.TextField("  "), 0, false},
		{model.TextField("12"), 12, true},
		{model.TextField(" 7 "), 7, true},
		{model.TextField("0"), 0, true},
		{model.TextField("-3.5"), -3.5, true},
		{model.TextField("abc"), 0, false},
		{model.TextField("NaN"), 0, false},
		{model.TextField("Infinity"), 0, false},
		{model.TextField("1e400"), 0, false},
	}
	for _, c := range cases {
		got := ParseNumber(c.in)
		if got.Valid != c.valid || got.Value != c.want {
			t.Errorf("ParseNumber(%+v) = %+v, want {%v %v}", c.in, got, c.want, c.valid)
		}
	}
}

func TestNormalize(t *testing.T) {
	raw := model.RawRecord{
		TS:    "2024-05-06 07:08",
		Team:  "토끼팀",
		Map:   "중형-Normal",
		Nat:   model.TextField("15"),
		Loc:   model.NullField,
		Score: model.TextField("9876"),
	}
	r := Normalize(3, raw)

	if r.Seq != 3 || r.Team != "토끼팀" || r.Map != "중형-Normal" || r.TS != raw.TS {
		t.Errorf("identity fields not preserved: %+v", r)
	}
	if r.Month != "2024-05" {
		t.Errorf("month: want 2024-05, got %q", r.Month)
	}
	if !r.HasTime() {
		t.Error("expected valid timestamp")
	}
	if r.Size != model.SizeMedium || r.Diff != model.DiffNormal || r.IsDev {
		t.Errorf("map attributes: got size=%q diff=%q dev=%v", r.Size, r.Diff, r.IsDev)
	}
	if !r.Nat.Valid || r.Nat.Value != 15 {
		t.Errorf("nat: got %+v", r.Nat)
	}
	if r.Loc.Valid {
		t.Errorf("loc: expected missing, got %+v", r.Loc)
	}
	if !r.Score.Valid || r.Score.Value != 9876 {
		t.Errorf("score: got %+v", r.Score)
	}
}

func TestNormalize_DevHasNoDifficulty(t *testing.T) {
	r := Normalize(0, model.RawRecord{TS: "bad", Team: "A", Map: "대형-개발중"})
	if !r.IsDev {
		t.Fatal("expected dev flag")
	}
	if _, ok := r.Difficulty(); ok {
		t.Error("dev record must not expose a difficulty")
	}
	if r.HasTime() {
		t.Error("expected invalid timestamp for 'bad'")
	}
}

func TestNormalizeAll_PreservesOrder(t *testing.T) {
	raws := []model.RawRecord{{Team: "a"}, {Team: "b"}, {Team: "c"}}
	got := NormalizeAll(raws)
	for i, r := range got {
		if r.Seq != i || r.Team != raws[i].Team {
			t.Errorf("record %d: got seq=%d team=%q", i, r.Seq, r.Team)
		}
	}
}
