package parser

import (
	"strings"
	"unicode"

	"github.com/pable/go-map-ranks/internal/model"
)

// MapInfo holds the attributes parsed from a raw map label such as "소형-하드".
type MapInfo struct {
	Size  model.Size
	Diff  model.Difficulty
	IsDev bool
}

// devMarkers flag maps that have not been released yet.
var devMarkers = []string{"개발중", "개발"}

// diffAlias pairs a canonical difficulty with its English spelling.
// exact: the English token must equal the whole label; otherwise containment.
type diffAlias struct {
	diff    model.Difficulty
	english string
	exact   bool
}

// Checked in order, first match wins. Santa goes first because the token
// shows up embedded in longer labels ("산타맵", "santa-special").
var diffAliases = []diffAlias{
	{model.DiffSanta, "santa", false},
	{model.DiffKids, "kids", true},
	{model.DiffBasic, "basic", true},
	{model.DiffSummer, "summer", true},
	{model.DiffEasy, "easy", true},
	{model.DiffUniverse, "universe", true},
	{model.DiffNormal, "normal", true},
	{model.DiffHard, "hard", true},
	{model.DiffChallenger, "challenger", false},
}

// ParseMapName splits a raw map identifier into size, difficulty and the
// in-development flag.
func ParseMapName(raw string) MapInfo {
	m := strings.TrimSpace(raw)

	for _, s := range model.KnownSizes {
		prefix := string(s) + "-"
		if strings.HasPrefix(m, prefix) {
			return withDifficulty(s, m[len(prefix):])
		}
	}

	// A separator at position 0 has no size in front of it; treat as none.
	if idx := strings.Index(m, "-"); idx > 0 {
		size := model.Size(m[:idx])
		// "개발중-xxx": the dev marker sits where the size would be.
		if isDevLabel(m[:idx]) {
			return MapInfo{Size: size, IsDev: true}
		}
		return withDifficulty(size, m[idx+1:])
	}

	// No separator: the whole label is the difficulty candidate.
	return withDifficulty(model.SizeOther, m)
}

func withDifficulty(size model.Size, rest string) MapInfo {
	d, dev := NormalizeDifficulty(rest)
	return MapInfo{Size: size, Diff: d, IsDev: dev}
}

// NormalizeDifficulty maps a free-form difficulty label onto the canonical
// vocabulary. Unknown labels come back whitespace-stripped but otherwise
// verbatim. Dev-flagged labels return an empty difficulty and isDev=true.
func NormalizeDifficulty(text string) (diff model.Difficulty, isDev bool) {
	s := strings.TrimSpace(text)
	if s == "" {
		return "", false
	}

	if isDevLabel(s) {
		return "", true
	}

	s = stripSpace(s)
	k := strings.ToLower(s)

	for _, a := range diffAliases {
		if strings.Contains(s, string(a.diff)) {
			return a.diff, false
		}
		if a.exact && k == a.english || !a.exact && strings.Contains(k, a.english) {
			return a.diff, false
		}
	}
	return model.Difficulty(s), false
}

func isDevLabel(s string) bool {
	for _, marker := range devMarkers {
		if strings.Contains(s, marker) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(s), "dev")
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
