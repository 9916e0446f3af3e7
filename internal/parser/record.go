package parser

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/pable/go-map-ranks/internal/model"
)

// Accepted timestamp layouts once the date/time separator has been normalized to "T".
var tsLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999999",
	time.RFC3339Nano,
	"2006-01-02",
}

// Normalize converts one raw snapshot row into a Record. It never fails:
// bad timestamps yield a zero time, bad numbers yield missing values.
func Normalize(seq int, raw model.RawRecord) model.Record {
	info := ParseMapName(raw.Map)
	return model.Record{
		Seq:   seq,
		TS:    raw.TS,
		T:     ParseTimestamp(raw.TS),
		Month: MonthKey(raw.TS),
		Team:  raw.Team,
		Map:   raw.Map,
		Size:  info.Size,
		Diff:  info.Diff,
		IsDev: info.IsDev,
		Nat:   ParseNumber(raw.Nat),
		Loc:   ParseNumber(raw.Loc),
		Score: ParseNumber(raw.Score),
	}
}

// NormalizeAll normalizes a whole snapshot, preserving input order.
func NormalizeAll(raws []model.RawRecord) []model.Record {
	out := make([]model.Record, len(raws))
	for i, r := range raws {
		out[i] = Normalize(i, r)
	}
	return out
}

// ParseTimestamp parses "YYYY-MM-DD HH:MM" with optional seconds.
// The zero time is returned for anything unparsable.
func ParseTimestamp(ts string) time.Time {
	t := strings.Replace(strings.TrimSpace(ts), " ", "T", 1)
	if len(t) == 16 {
		t += ":00"
	}
	for _, layout := range tsLayouts {
		if parsed, err := time.Parse(layout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// MonthKey returns the "YYYY-MM" prefix of a timestamp string.
func MonthKey(ts string) string {
	if len(ts) < 7 {
		return ""
	}
	return ts[:7]
}

// ParseNumber coerces a snapshot cell to a Number. Empty and null cells are
// missing; so are cells that are not numeric or not finite, which keeps a
// single representation of absent data.
func ParseNumber(f model.Field) model.Number {
	if f.Null {
		return model.Number{}
	}
	s := strings.TrimSpace(f.Text)
	if s == "" {
		return model.Number{}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return model.Number{}
	}
	return model.Num(v)
}
