package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pable/go-map-ranks/internal/board"
	"github.com/pable/go-map-ranks/internal/config"
	"github.com/pable/go-map-ranks/internal/model"
)

func testBoard() *board.Board {
	return board.New(&model.Snapshot{Records: []model.RawRecord{
		{TS: "2024-05-01 10:00", Team: "토끼", Map: "소형-하드", Score: model.TextField("1500")},
		{TS: "2024-04-11 10:00", Team: "여우", Map: "중형-노말", Score: model.TextField("900")},
	}})
}

func TestParseSize(t *testing.T) {
	cases := map[string]model.Size{
		"small": model.SizeSmall,
		"LARGE": model.SizeLarge,
		"all":   model.SizeAll,
		"중형":    model.SizeMedium,
		" 기타 ":  model.SizeOther,
	}
	for in, want := range cases {
		if got := parseSize(in); got != want {
			t.Errorf("parseSize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseDiff(t *testing.T) {
	cases := map[string]model.Difficulty{
		"all":          model.DiffAll,
		model.All:      model.DiffAll,
		"hard":         model.DiffHard,
		"Challenger 2": model.DiffChallenger,
		"하드":           model.DiffHard,
	}
	for in, want := range cases {
		got, err := parseDiff(in)
		if err != nil || got != want {
			t.Errorf("parseDiff(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := parseDiff("개발중"); err == nil {
		t.Error("a dev marker must be rejected")
	}
}

func TestApplySelection(t *testing.T) {
	b := testBoard()
	if err := applySelection(b, "", "normal", ""); err != nil {
		t.Fatalf("select 노말: %v", err)
	}
	if err := applySelection(b, "small", "", ""); err != nil {
		t.Fatalf("select small: %v", err)
	}
	if sel := b.Selection(); sel.Size != model.SizeSmall || sel.Diff != model.DiffAll {
		t.Errorf("size change must reset the unavailable difficulty: %+v", sel)
	}
	if err := applySelection(b, "", "normal", ""); err == nil {
		t.Error("노말 is not available under 소형")
	}
	if err := applySelection(b, "", "", "1999-01"); err != nil {
		t.Fatalf("unknown month: %v", err)
	}
	if got := b.Selection().Month; got != model.All {
		t.Errorf("unknown month must fall back to All, got %q", got)
	}
}

func TestLoadSnapshot_ImportsConfiguredSourceOnce(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "data.json")
	doc := `{"generated_at":"2024-06-01","records":[{"ts":"2024-05-01 10:00","team":"토끼","map":"소형-하드","score":1}]}`
	if err := os.WriteFile(src, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	prevDB, prevCfg, prevData := dbPath, cfg, dataSource
	t.Cleanup(func() { dbPath, cfg, dataSource = prevDB, prevCfg, prevData })
	dbPath = filepath.Join(dir, "cache", "mapranks.db")
	dataSource = ""
	cfg = &config.Config{}
	cfg.Source.URL = src

	first, err := loadSnapshot(context.Background(), "")
	if err != nil {
		t.Fatalf("first load: %v", err)
	}
	if first.ID == "" {
		t.Fatal("configured source must be imported into the cache")
	}

	// Served from the cache even once the source disappears.
	os.Remove(src)
	second, err := loadSnapshot(context.Background(), "")
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if second.ID != first.ID || len(second.Records) != 1 {
		t.Errorf("expected cached snapshot %s, got %+v", first.ID, second)
	}

	if _, err := loadSnapshot(context.Background(), "nope"); err == nil {
		t.Error("expected error for unknown prefix")
	}
}
