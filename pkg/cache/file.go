package cache

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"
)

// FileCache persists stage outputs between CLI runs. Compiled patterns,
// rendered artifacts, and instruction steps are stored as JSON entry files
// under a single directory, each carrying its own expiration.
type FileCache struct {
	dir string
}

// NewFileCache creates a file-backed cache rooted at dir, creating the
// directory if it does not exist.
func NewFileCache(dir string) (Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

// fileEntry wraps one cached stage output with its expiration.
type fileEntry struct {
	Data      []byte    `json:"data"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Get retrieves a stage output. Absent, corrupt, and expired entries all
// report as a plain miss.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	entry, err := c.readEntry(key)
	if errors.Is(err, ErrCacheMiss) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return entry.Data, true, nil
}

// readEntry loads and validates one entry file. It reports ErrCacheMiss for
// entries that are absent, not decodable, or past their TTL, removing the
// stale file in the latter two cases.
func (c *FileCache) readEntry(key string) (fileEntry, error) {
	path := c.path(key)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return fileEntry{}, ErrCacheMiss
	}
	if err != nil {
		return fileEntry{}, err
	}

	var entry fileEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		_ = os.Remove(path)
		return fileEntry{}, ErrCacheMiss
	}
	if !entry.ExpiresAt.IsZero() && time.Now().After(entry.ExpiresAt) {
		_ = os.Remove(path)
		return fileEntry{}, ErrCacheMiss
	}
	return entry, nil
}

// Set stores a stage output. A zero ttl means the entry never expires.
func (c *FileCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	entry := fileEntry{Data: data}
	if ttl > 0 {
		entry.ExpiresAt = time.Now().Add(ttl)
	}

	encoded, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	path := c.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, encoded, 0644)
}

// Delete removes a stage output. Deleting a missing key is not an error.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	err := os.Remove(c.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close is a no-op; entry files hold no open handles between calls.
func (c *FileCache) Close() error {
	return nil
}

// path maps a cache key onto its entry file. Keys are hashed and fanned out
// into two-character subdirectories so a long-lived cache does not pile
// thousands of entries into one directory.
func (c *FileCache) path(key string) string {
	sum := Hash([]byte(key))
	return filepath.Join(c.dir, sum[:2], sum[2:]+".json")
}

// Ensure FileCache implements Cache.
var _ Cache = (*FileCache)(nil)
