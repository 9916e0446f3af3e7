package storage

import (
	"reflect"
	"testing"
	"time"

	"github.com/pable/go-map-ranks/internal/model"
)

func openMemDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open in-memory db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func sampleSnapshot(generatedAt string, importedAt time.Time) *model.Snapshot {
	return &model.Snapshot{
		GeneratedAt: generatedAt,
		Count:       3,
		Source:      "data.json",
		ImportedAt:  importedAt,
		Records: []model.RawRecord{
			{TS: "2024-05-01 10:00", Team: "토끼", Map: "소형-하드",
				Nat: model.NumberField("12"), Loc: model.TextField("3"), Score: model.TextField("1500")},
			{TS: "2024-05-02 11:00", Team: "거북", Map: "중형-노말",
				Nat: model.NullField, Loc: model.TextField(""), Score: model.NumberField("900.5")},
			{TS: "bad", Team: "", Map: "대형-개발중",
				Nat: model.NullField, Loc: model.NullField, Score: model.NullField},
		},
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	db := openMemDB(t)

	in := sampleSnapshot("2024-06-01 09:00", time.Date(2024, 6, 1, 9, 5, 0, 0, time.UTC))
	id, err := db.InsertSnapshot(in)
	if err != nil {
		t.Fatalf("InsertSnapshot: %v", err)
	}
	if id == "" {
		t.Fatal("expected an assigned snapshot id")
	}

	got, err := db.GetSnapshot(id)
	if err != nil {
		t.Fatalf("GetSnapshot: %v", err)
	}
	if got == nil {
		t.Fatal("snapshot not found after insert")
	}
	if got.GeneratedAt != in.GeneratedAt || got.Count != in.Count || got.Source != in.Source {
		t.Errorf("header mismatch: %+v", got)
	}
	if !got.ImportedAt.Equal(in.ImportedAt) {
		t.Errorf("imported_at: want %v, got %v", in.ImportedAt, got.ImportedAt)
	}
	if !reflect.DeepEqual(got.Records, in.Records) {
		t.Errorf("records mismatch:\n got %+v\nwant %+v", got.Records, in.Records)
	}
}

func TestListAndLatest(t *testing.T) {
	db := openMemDB(t)

	if latest, err := db.LatestSnapshot(); err != nil || latest != nil {
		t.Fatalf("empty cache: expected nil, nil; got %v, %v", latest, err)
	}

	older := sampleSnapshot("2024-05-01", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
	newer := sampleSnapshot("2024-06-01", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	newer.Records = newer.Records[:1]
	if _, err := db.InsertSnapshot(older); err != nil {
		t.Fatalf("insert older: %v", err)
	}
	newID, err := db.InsertSnapshot(newer)
	if err != nil {
		t.Fatalf("insert newer: %v", err)
	}

	list, err := db.ListSnapshots()
	if err != nil {
		t.Fatalf("ListSnapshots: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 snapshots, got %d", len(list))
	}
	// Ordered by imported_at DESC — newer first.
	if list[0].ID != newID || list[0].Records != 1 || list[1].Records != 3 {
		t.Errorf("unexpected list: %+v", list)
	}

	latest, err := db.LatestSnapshot()
	if err != nil {
		t.Fatalf("LatestSnapshot: %v", err)
	}
	if latest == nil || latest.ID != newID {
		t.Errorf("expected latest %s, got %+v", newID, latest)
	}
}

func TestGetSnapshotByPrefix(t *testing.T) {
	db := openMemDB(t)

	s := sampleSnapshot("2024-06-01", time.Time{})
	s.ID = "deadbeef-0000"
	if _, err := db.InsertSnapshot(s); err != nil {
		t.Fatalf("InsertSnapshot: %v", err)
	}

	got, err := db.GetSnapshotByPrefix("deadb")
	if err != nil {
		t.Fatalf("GetSnapshotByPrefix: %v", err)
	}
	if got == nil || got.ID != "deadbeef-0000" {
		t.Fatalf("expected match for prefix 'deadb', got %+v", got)
	}
	if len(got.Records) != 3 {
		t.Errorf("expected 3 records, got %d", len(got.Records))
	}

	none, err := db.GetSnapshotByPrefix("ffffffff")
	if err != nil {
		t.Fatalf("GetSnapshotByPrefix no-match: %v", err)
	}
	if none != nil {
		t.Error("expected nil for unknown prefix")
	}
}

func TestInsertIdempotency(t *testing.T) {
	db := openMemDB(t)

	s := sampleSnapshot("2024-06-01", time.Time{})
	s.ID = "fixed"
	db.InsertSnapshot(s)
	// Second insert replaces the first instead of duplicating records.
	if _, err := db.InsertSnapshot(s); err != nil {
		t.Fatalf("second InsertSnapshot should succeed: %v", err)
	}
	got, _ := db.GetSnapshot("fixed")
	if got == nil || len(got.Records) != 3 {
		t.Errorf("expected 3 records after re-import, got %+v", got)
	}
}

func TestDeleteSnapshot(t *testing.T) {
	db := openMemDB(t)

	id, err := db.InsertSnapshot(sampleSnapshot("2024-06-01", time.Time{}))
	if err != nil {
		t.Fatalf("InsertSnapshot: %v", err)
	}
	deleted, err := db.DeleteSnapshot(id)
	if err != nil || !deleted {
		t.Fatalf("DeleteSnapshot: deleted=%v err=%v", deleted, err)
	}
	if got, _ := db.GetSnapshot(id); got != nil {
		t.Error("snapshot still present after delete")
	}
	if deleted, _ := db.DeleteSnapshot(id); deleted {
		t.Error("second delete must report nothing deleted")
	}
}

func TestQueryRaw(t *testing.T) {
	db := openMemDB(t)

	id, err := db.InsertSnapshot(sampleSnapshot("2024-06-01", time.Time{}))
	if err != nil {
		t.Fatalf("InsertSnapshot: %v", err)
	}
	cols, rows, err := db.QueryRaw(`SELECT team, nat FROM records WHERE snapshot_id = ? ORDER BY seq`, id)
	if err != nil {
		t.Fatalf("QueryRaw: %v", err)
	}
	if !reflect.DeepEqual(cols, []string{"team", "nat"}) {
		t.Errorf("columns: got %v", cols)
	}
	want := [][]string{{"토끼", "12"}, {"거북", "NULL"}, {"", "NULL"}}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("rows: want %v, got %v", want, rows)
	}

	if _, _, err := db.QueryRaw(`SELECT nope FROM nowhere`); err == nil {
		t.Error("expected error for invalid query")
	}
}
