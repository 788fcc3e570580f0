// Package contract holds the validated configuration and the interfaces
// shared between the fetch, analytics and persistence layers.
package contract

import (
	"context"

	"github.com/huangsam/devpulse/schema"
)

// CacheStore is durable key/value storage for upstream API responses.
// Implementations must be safe for concurrent use.
type CacheStore interface {
	// Get returns the stored value, its schema version and its unix
	// timestamp. A miss surfaces as an error.
	Get(key string) ([]byte, int, int64, error)
	// Set inserts or replaces a key/value pair.
	Set(key string, value []byte, version int, timestamp int64) error
	// GetStatus reports summary statistics about the store.
	GetStatus() (schema.CacheStatus, error)
	// Close releases the underlying connection.
	Close() error
}

// ChangedFile is one file touched by a commit, as reported by the commit
// detail endpoint.
type ChangedFile struct {
	Filename  string
	Additions uint64
	Deletions uint64
	Changes   *uint64 // explicit changed-line count; nil when upstream omits it
}

// CommitFileFetcher fetches the changed-file list of a single commit.
type CommitFileFetcher interface {
	CommitFiles(ctx context.Context, repo, sha string) ([]ChangedFile, error)
}
