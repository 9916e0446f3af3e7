package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pable/go-map-ranks/internal/board"
	"github.com/pable/go-map-ranks/internal/model"
	"github.com/pable/go-map-ranks/internal/parser"
	"github.com/pable/go-map-ranks/internal/snapshot"
	"github.com/pable/go-map-ranks/internal/storage"
)

// openStore opens the snapshot cache, creating its directory on first use.
func openStore() (*storage.DB, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}
	db, err := storage.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	return db, nil
}

// loadSnapshot resolves the snapshot a view command works on:
//   - --data reads the file or URL directly and never touches the cache;
//   - a non-empty prefix selects a cached snapshot by ID;
//   - otherwise the latest cached snapshot, or the configured source when the
//     cache is empty (which is then imported).
func loadSnapshot(ctx context.Context, prefix string) (*model.Snapshot, error) {
	if dataSource != "" {
		snap, err := snapshot.Open(ctx, dataSource)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", dataSource, err)
		}
		slog.Debug("snapshot read directly", "source", dataSource, "records", len(snap.Records))
		return snap, nil
	}

	db, err := openStore()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if prefix != "" {
		snap, err := db.GetSnapshotByPrefix(prefix)
		if err != nil {
			return nil, fmt.Errorf("get snapshot: %w", err)
		}
		if snap == nil {
			return nil, fmt.Errorf("no snapshot found with prefix %q", prefix)
		}
		return snap, nil
	}

	snap, err := db.LatestSnapshot()
	if err != nil {
		return nil, fmt.Errorf("get latest snapshot: %w", err)
	}
	if snap != nil {
		slog.Debug("using cached snapshot", "id", snap.ID, "records", len(snap.Records))
		return snap, nil
	}

	src := cfg.Source.URL
	if src == "" {
		return nil, fmt.Errorf("no snapshots cached and no source configured; run 'mapranks import <file|url>'")
	}
	slog.Info("cache empty, loading configured source", "source", src)
	snap, err = snapshot.Open(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", src, err)
	}
	if snap.ID, err = db.InsertSnapshot(snap); err != nil {
		return nil, fmt.Errorf("store snapshot: %w", err)
	}
	return snap, nil
}

func loadBoard(ctx context.Context, prefix string) (*board.Board, error) {
	snap, err := loadSnapshot(ctx, prefix)
	if err != nil {
		return nil, err
	}
	return board.New(snap), nil
}

var sizeAliases = map[string]model.Size{
	"all":    model.SizeAll,
	"small":  model.SizeSmall,
	"medium": model.SizeMedium,
	"large":  model.SizeLarge,
	"other":  model.SizeOther,
}

// parseSize accepts a Korean size label or its English alias.
func parseSize(s string) model.Size {
	s = strings.TrimSpace(s)
	if v, ok := sizeAliases[strings.ToLower(s)]; ok {
		return v
	}
	return model.Size(s)
}

// parseDiff accepts "all", the All label, or any difficulty text the map-name
// parser understands ("hard", "하드", "Challenger 2", ...).
func parseDiff(s string) (model.Difficulty, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "all") || s == model.All {
		return model.DiffAll, nil
	}
	d, isDev := parser.NormalizeDifficulty(s)
	if isDev {
		return "", fmt.Errorf("%q names a map under development, which is never ranked", s)
	}
	return d, nil
}

// applySelection updates b in month, size, difficulty order so each step is
// validated against the narrower choice lists. Empty arguments are left alone.
func applySelection(b *board.Board, size, diff, month string) error {
	if month != "" {
		if month == "all" {
			month = model.All
		}
		if sel := b.SetMonth(month); sel.Month != month {
			slog.Warn("month not in snapshot, showing all months", "month", month)
		}
	}
	if size != "" {
		want := parseSize(size)
		prev := b.Selection().Diff
		if sel := b.SetSize(want); sel.Diff != prev {
			slog.Info("difficulty reset", "from", prev, "to", sel.Diff)
		}
	}
	if diff != "" {
		d, err := parseDiff(diff)
		if err != nil {
			return err
		}
		if !containsDiff(b.Difficulties(), d) {
			return fmt.Errorf("difficulty %q is not available for size %s in month %s", d, b.Selection().Size, b.Selection().Month)
		}
		b.SetDiff(d)
	}
	return nil
}

func containsDiff(list []model.Difficulty, d model.Difficulty) bool {
	for _, v := range list {
		if v == d {
			return true
		}
	}
	return false
}
