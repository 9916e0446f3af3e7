package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pable/go-map-ranks/internal/model"
	"github.com/pable/go-map-ranks/internal/snapshot"
)

// Fixed-width so imported_at sorts chronologically as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// InsertSnapshot stores a snapshot and all of its raw records in one
// transaction. An empty ID is assigned a new UUID; ImportedAt defaults to now.
// The stored ID is returned.
func (db *DB) InsertSnapshot(snap *model.Snapshot) (string, error) {
	id := snap.ID
	if id == "" {
		id = uuid.NewString()
	}
	importedAt := snap.ImportedAt
	if importedAt.IsZero() {
		importedAt = time.Now().UTC()
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	// Re-importing an ID replaces its records.
	if _, err := tx.Exec(`DELETE FROM records WHERE snapshot_id = ?`, id); err != nil {
		return "", fmt.Errorf("clear records: %w", err)
	}

	_, err = tx.Exec(`
		INSERT INTO snapshots(id, generated_at, count, source, imported_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			generated_at = excluded.generated_at,
			count        = excluded.count,
			source       = excluded.source,
			imported_at  = excluded.imported_at`,
		id, snap.GeneratedAt, snap.Count, snap.Source, importedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return "", fmt.Errorf("insert snapshot: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO records(snapshot_id, seq, ts, team, map, nat, loc, score)
		VALUES (?,?,?,?,?,?,?,?)`)
	if err != nil {
		return "", err
	}
	defer stmt.Close()

	for i, r := range snap.Records {
		_, err = stmt.Exec(id, i, r.TS, r.Team, r.Map,
			cellValue(r.Nat), cellValue(r.Loc), cellValue(r.Score))
		if err != nil {
			return "", fmt.Errorf("insert record %d: %w", i, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return "", err
	}
	return id, nil
}

// ListSnapshots returns all stored snapshots, most recently imported first.
func (db *DB) ListSnapshots() ([]model.SnapshotSummary, error) {
	rows, err := db.conn.Query(`
		SELECT s.id, s.generated_at, s.count, s.source, s.imported_at,
		       (SELECT COUNT(1) FROM records r WHERE r.snapshot_id = s.id)
		FROM snapshots s ORDER BY s.imported_at DESC, s.rowid DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.SnapshotSummary
	for rows.Next() {
		var s model.SnapshotSummary
		var importedAt string
		if err := rows.Scan(&s.ID, &s.GeneratedAt, &s.Count, &s.Source, &importedAt, &s.Records); err != nil {
			return nil, err
		}
		s.ImportedAt, _ = time.Parse(timeLayout, importedAt)
		out = append(out, s)
	}
	return out, rows.Err()
}

// LatestSnapshot loads the most recently imported snapshot, or nil when the cache is empty.
func (db *DB) LatestSnapshot() (*model.Snapshot, error) {
	var id string
	err := db.conn.QueryRow(`SELECT id FROM snapshots ORDER BY imported_at DESC, rowid DESC LIMIT 1`).Scan(&id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return db.GetSnapshot(id)
}

// GetSnapshotByPrefix loads the first snapshot whose ID starts with prefix, or nil.
func (db *DB) GetSnapshotByPrefix(prefix string) (*model.Snapshot, error) {
	var id string
	err := db.conn.QueryRow(`SELECT id FROM snapshots WHERE id LIKE ? ORDER BY imported_at DESC LIMIT 1`, prefix+"%").Scan(&id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return db.GetSnapshot(id)
}

// GetSnapshot loads a snapshot and its records in source order, or nil when absent.
func (db *DB) GetSnapshot(id string) (*model.Snapshot, error) {
	snap := &model.Snapshot{ID: id}
	var importedAt string
	err := db.conn.QueryRow(`
		SELECT generated_at, count, source, imported_at FROM snapshots WHERE id = ?`, id).
		Scan(&snap.GeneratedAt, &snap.Count, &snap.Source, &importedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	snap.ImportedAt, _ = time.Parse(timeLayout, importedAt)

	rows, err := db.conn.Query(`
		SELECT ts, team, map, nat, loc, score
		FROM records WHERE snapshot_id = ? ORDER BY seq`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var r model.RawRecord
		var nat, loc, score sql.NullString
		if err := rows.Scan(&r.TS, &r.Team, &r.Map, &nat, &loc, &score); err != nil {
			return nil, err
		}
		r.Nat, r.Loc, r.Score = cellField(nat), cellField(loc), cellField(score)
		snap.Records = append(snap.Records, r)
	}
	return snap, rows.Err()
}

// DeleteSnapshot removes a snapshot and its records. It reports whether anything was deleted.
func (db *DB) DeleteSnapshot(id string) (bool, error) {
	tx, err := db.conn.Begin()
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM records WHERE snapshot_id = ?`, id); err != nil {
		return false, fmt.Errorf("delete records: %w", err)
	}
	res, err := tx.Exec(`DELETE FROM snapshots WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete snapshot: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, tx.Commit()
}

// cellValue maps a cell to its column value: NULL for null, else the JSON literal.
func cellValue(f model.Field) any {
	if f.Null {
		return nil
	}
	return snapshot.CellJSON(f)
}

func cellField(s sql.NullString) model.Field {
	if !s.Valid {
		return model.NullField
	}
	return snapshot.ParseCell(s.String)
}

// QueryRaw runs an arbitrary query and returns the column names and every row
// rendered as text. NULL cells come back as "NULL".
func (db *DB) QueryRaw(query string, args ...any) ([]string, [][]string, error) {
	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}
	var out [][]string
	for rows.Next() {
		vals := make([]sql.NullString, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, nil, err
		}
		row := make([]string, len(cols))
		for i, v := range vals {
			if v.Valid {
				row[i] = v.String
			} else {
				row[i] = "NULL"
			}
		}
		out = append(out, row)
	}
	return cols, out, rows.Err()
}
