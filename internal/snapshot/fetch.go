package snapshot

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pable/go-map-ranks/internal/model"
)

// Fetcher downloads snapshot documents. Every request bypasses caches; there
// are no retries and no client-side timeout beyond the caller's context.
type Fetcher struct {
	http *http.Client
	now  func() time.Time
}

// NewFetcher returns a Fetcher using client, or a plain http.Client when nil.
func NewFetcher(client *http.Client) *Fetcher {
	if client == nil {
		client = &http.Client{}
	}
	return &Fetcher{http: client, now: time.Now}
}

// Fetch performs one GET of rawURL and decodes the body.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*model.Snapshot, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse url: %w", err)
	}
	q := u.Query()
	q.Set("v", strconv.FormatInt(f.now().UnixMilli(), 10))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Cache-Control", "no-store")
	req.Header.Set("Pragma", "no-cache")
	req.Header.Set("Accept", "application/json")

	resp, err := f.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: HTTP %d", rawURL, resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", rawURL, err)
	}
	snap, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", rawURL, err)
	}
	snap.Source = rawURL
	return snap, nil
}
