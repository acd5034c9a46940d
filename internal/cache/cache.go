// Package cache stores scraped release records in a local SQLite database
// so repeated runs against the same release do not hammer the source APIs.
// Entries expire after a TTL; an expired hit is treated as a miss.
package cache

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/llehouerou/coho/internal/meta"
)

// Cache is a (source, url)-keyed store of scraped releases.
type Cache struct {
	db *sql.DB
}

// Open opens (creating if needed) the cache database at path.
func Open(path string) (*Cache, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Cache{db: db}, nil
}

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS scrapes (
			source TEXT NOT NULL,
			url TEXT NOT NULL,
			payload TEXT NOT NULL,
			fetched_at INTEGER NOT NULL,
			PRIMARY KEY (source, url)
		);
	`)
	return err
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Get returns the cached release for (source, url) if it exists and is
// younger than ttl.
func (c *Cache) Get(source, url string, ttl time.Duration) (*meta.Release, bool, error) {
	var payload string
	var fetchedAt int64
	err := c.db.QueryRow(`
		SELECT payload, fetched_at FROM scrapes WHERE source = ? AND url = ?
	`, source, url).Scan(&payload, &fetchedAt)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if ttl > 0 && time.Since(time.Unix(fetchedAt, 0)) > ttl {
		return nil, false, nil
	}

	release := meta.NewRelease()
	if err := json.Unmarshal([]byte(payload), release); err != nil {
		return nil, false, fmt.Errorf("decode cached release: %w", err)
	}
	return release, true, nil
}

// Put stores or refreshes the cached release for (source, url).
func (c *Cache) Put(source, url string, release *meta.Release) error {
	payload, err := json.Marshal(release)
	if err != nil {
		return fmt.Errorf("encode release: %w", err)
	}
	_, err = c.db.Exec(`
		INSERT INTO scrapes (source, url, payload, fetched_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(source, url) DO UPDATE SET
			payload = excluded.payload,
			fetched_at = excluded.fetched_at
	`, source, url, string(payload), time.Now().Unix())
	return err
}

// Prune deletes entries older than ttl and returns how many were removed.
func (c *Cache) Prune(ttl time.Duration) (int64, error) {
	cutoff := time.Now().Add(-ttl).Unix()
	res, err := c.db.Exec(`DELETE FROM scrapes WHERE fetched_at < ?`, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
