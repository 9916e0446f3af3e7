// Package snapshot reads leaderboard data documents of the form
//
//	{"generated_at": "...", "count": 123, "records": [{"ts", "team", "map", "nat", "loc", "score"}, ...]}
//
// from files or over HTTP.
package snapshot

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/pable/go-map-ranks/internal/model"
)

// ErrInvalidDocument is returned when the data is not a JSON document.
var ErrInvalidDocument = errors.New("invalid snapshot document")

// Decode parses a snapshot document. Individual records are taken as they
// come: string and number cells are kept literally, null and missing keys
// become null fields. Only a malformed document is an error.
func Decode(data []byte) (*model.Snapshot, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidDocument
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return nil, fmt.Errorf("%w: top level is not an object", ErrInvalidDocument)
	}

	snap := &model.Snapshot{
		GeneratedAt: doc.Get("generated_at").String(),
	}

	recs := doc.Get("records")
	if recs.Exists() && recs.Type != gjson.Null && !recs.IsArray() {
		return nil, fmt.Errorf("%w: records is not an array", ErrInvalidDocument)
	}
	recs.ForEach(func(_, r gjson.Result) bool {
		snap.Records = append(snap.Records, model.RawRecord{
			TS:    text(r.Get("ts")),
			Team:  text(r.Get("team")),
			Map:   text(r.Get("map")),
			Nat:   field(r.Get("nat")),
			Loc:   field(r.Get("loc")),
			Score: field(r.Get("score")),
		})
		return true
	})

	// A missing or zero count falls back to the number of records.
	snap.Count = int(doc.Get("count").Int())
	if snap.Count == 0 {
		snap.Count = len(snap.Records)
	}
	return snap, nil
}

// text returns a string cell; null and missing keys read as empty.
func text(v gjson.Result) string {
	if !v.Exists() || v.Type == gjson.Null {
		return ""
	}
	return v.String()
}

func field(v gjson.Result) model.Field {
	switch v.Type {
	case gjson.Null:
		return model.NullField
	case gjson.String:
		return model.TextField(v.Str)
	case gjson.Number:
		return model.NumberField(v.Raw)
	default:
		// Booleans, objects and arrays are not numbers.
		return model.TextField(v.Raw)
	}
}

// LoadFile reads a snapshot from disk. Files ending in .zst or .gz are
// decompressed first.
func LoadFile(path string) (*model.Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()

	data, err := readAll(f, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("read snapshot %s: %w", path, err)
	}
	snap, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", path, err)
	}
	snap.Source = path
	return snap, nil
}

func readAll(r io.Reader, ext string) ([]byte, error) {
	switch strings.ToLower(ext) {
	case ".zst":
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		return io.ReadAll(dec)
	case ".gz":
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		return io.ReadAll(gz)
	}
	return io.ReadAll(r)
}

// IsURL reports whether source names an HTTP(S) resource rather than a file.
func IsURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// Open loads a snapshot from a URL or a file path.
func Open(ctx context.Context, source string) (*model.Snapshot, error) {
	if IsURL(source) {
		return NewFetcher(nil).Fetch(ctx, source)
	}
	return LoadFile(source)
}

// Encode writes snap back as a snapshot document.
func Encode(snap *model.Snapshot) ([]byte, error) {
	doc := []byte(`{"records":[]}`)
	doc, err := sjson.SetBytes(doc, "generated_at", snap.GeneratedAt)
	if err != nil {
		return nil, err
	}
	if doc, err = sjson.SetBytes(doc, "count", snap.Count); err != nil {
		return nil, err
	}
	for i, r := range snap.Records {
		rec, err := encodeRecord(r)
		if err != nil {
			return nil, fmt.Errorf("encode record %d: %w", i, err)
		}
		if doc, err = sjson.SetRawBytes(doc, "records.-1", rec); err != nil {
			return nil, fmt.Errorf("append record %d: %w", i, err)
		}
	}
	return doc, nil
}

func encodeRecord(r model.RawRecord) ([]byte, error) {
	rec := []byte(`{}`)
	var err error
	for _, kv := range []struct{ key, val string }{{"ts", r.TS}, {"team", r.Team}, {"map", r.Map}} {
		if rec, err = sjson.SetBytes(rec, kv.key, kv.val); err != nil {
			return nil, err
		}
	}
	for _, kv := range []struct {
		key string
		f   model.Field
	}{{"nat", r.Nat}, {"loc", r.Loc}, {"score", r.Score}} {
		if rec, err = sjson.SetRawBytes(rec, kv.key, []byte(CellJSON(kv.f))); err != nil {
			return nil, err
		}
	}
	return rec, nil
}

// CellJSON renders a cell as a JSON literal.
func CellJSON(f model.Field) string {
	switch {
	case f.Null:
		return "null"
	case f.Number && gjson.Valid(f.Text):
		return f.Text
	}
	b, _ := json.Marshal(f.Text)
	return string(b)
}

// ParseCell is the inverse of CellJSON. Anything that is not valid JSON is
// kept as a string cell.
func ParseCell(lit string) model.Field {
	if !gjson.Valid(lit) {
		return model.TextField(lit)
	}
	return field(gjson.Parse(lit))
}
