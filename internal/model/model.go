package model

import (
	"math"
	"strconv"
	"time"
)

// All is the wildcard value shared by every filter dimension.
const All = "전체"

// Size is the coarse map-scale category parsed from a map label.
// Any literal token is a valid Size; the constants below are the known ones.
type Size string

const (
	SizeAll    Size = All
	SizeSmall  Size = "소형"
	SizeMedium Size = "중형"
	SizeLarge  Size = "대형"
	SizeOther  Size = "기타"
)

// KnownSizes are the size prefixes recognised in "<size>-<difficulty>" labels, in match order.
var KnownSizes = []Size{SizeSmall, SizeMedium, SizeLarge}

// SelectableSizes is the fixed list offered as a size filter.
var SelectableSizes = []Size{SizeAll, SizeSmall, SizeMedium, SizeLarge}

func (s Size) IsAll() bool { return s == SizeAll }

func (s Size) String() string { return string(s) }

// Difficulty is a normalized difficulty tier.
type Difficulty string

const (
	DiffAll        Difficulty = All
	DiffKids       Difficulty = "키즈"
	DiffBasic      Difficulty = "베이직"
	DiffSummer     Difficulty = "여름"
	DiffEasy       Difficulty = "이지"
	DiffUniverse   Difficulty = "우주"
	DiffNormal     Difficulty = "노말"
	DiffSanta      Difficulty = "산타"
	DiffHard       Difficulty = "하드"
	DiffChallenger Difficulty = "챌린저"
)

// DifficultyOrder is the canonical display order. Labels outside it sort after.
var DifficultyOrder = []Difficulty{
	DiffKids, DiffBasic, DiffSummer, DiffEasy, DiffUniverse,
	DiffNormal, DiffSanta, DiffHard, DiffChallenger,
}

// Order returns the position of d in DifficultyOrder, or -1 for unknown labels.
func (d Difficulty) Order() int {
	for i, c := range DifficultyOrder {
		if c == d {
			return i
		}
	}
	return -1
}

func (d Difficulty) IsAll() bool { return d == DiffAll }

func (d Difficulty) String() string { return string(d) }

// ---- Raw snapshot input ----

// Field is one score-sheet cell as it appeared in the snapshot.
// Null covers both JSON null and a missing key; Text holds a JSON string,
// or the literal of a JSON number when Number is set.
type Field struct {
	Text   string
	Null   bool
	Number bool
}

// NullField is the absent cell.
var NullField = Field{Null: true}

// TextField wraps a string cell.
func TextField(s string) Field { return Field{Text: s} }

// NumberField wraps the literal of a numeric cell.
func NumberField(lit string) Field { return Field{Text: lit, Number: true} }

type RawRecord struct {
	TS    string
	Team  string
	Map   string
	Nat   Field
	Loc   Field
	Score Field
}

// Snapshot is one loaded data document.
type Snapshot struct {
	ID          string
	GeneratedAt string
	Count       int
	Source      string
	ImportedAt  time.Time
	Records     []RawRecord
}

// SnapshotSummary is a lightweight row for list commands.
type SnapshotSummary struct {
	ID          string
	GeneratedAt string
	Count       int
	Records     int
	Source      string
	ImportedAt  time.Time
}

// ---- Normalized records ----

// Number is a nullable rank or score value.
type Number struct {
	Value float64
	Valid bool
}

// Num returns a valid Number.
func Num(v float64) Number { return Number{Value: v, Valid: true} }

// Or returns the value, or missing when the number is absent.
func (n Number) Or(missing float64) float64 {
	if !n.Valid {
		return missing
	}
	return n.Value
}

// Format renders the value, or placeholder when absent.
func (n Number) Format(placeholder string) string {
	if !n.Valid {
		return placeholder
	}
	return strconv.FormatFloat(n.Value, 'f', -1, 64)
}

// Sentinels used for missing values in comparisons: a missing score loses to
// every real score, a missing rank loses to every real rank.
var (
	MissingScore = math.Inf(-1)
	MissingRank  = math.Inf(1)
)

// Record is a normalized score submission. Records are never mutated after creation.
type Record struct {
	Seq   int // position in the source snapshot
	TS    string
	T     time.Time // zero when TS could not be parsed
	Month string    // "YYYY-MM", empty when TS is too short
	Team  string
	Map   string
	Size  Size
	Diff  Difficulty
	IsDev bool
	Nat   Number
	Loc   Number
	Score Number
}

// HasTime reports whether the record carries a usable timestamp.
func (r *Record) HasTime() bool { return !r.T.IsZero() }

// Difficulty returns the parsed difficulty. ok is false for maps still in
// development, which carry no difficulty at all.
func (r *Record) Difficulty() (d Difficulty, ok bool) {
	if r.IsDev {
		return "", false
	}
	return r.Diff, true
}

// Selection is the current filter choice. Each field is either All or a concrete value.
type Selection struct {
	Size  Size
	Diff  Difficulty
	Month string
}

// DefaultSelection selects everything.
func DefaultSelection() Selection {
	return Selection{Size: SizeAll, Diff: DiffAll, Month: All}
}

// TeamRow is one line of the ranking table.
type TeamRow struct {
	Rank int
	Record
}

// HistoryPoint is one sample of a team's rank history on a map.
type HistoryPoint struct {
	T     time.Time
	TS    string
	Nat   Number
	Loc   Number
	Score Number
}

// Label is the short axis label, "MM-DD".
func (p HistoryPoint) Label() string {
	return p.T.Format("01-02")
}
