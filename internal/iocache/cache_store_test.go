package iocache

import (
	"path/filepath"
	"testing"

	"github.com/huangsam/devpulse/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteStore(t *testing.T) *CacheStoreImpl {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "cache.db")
	store, err := NewCacheStore(responseTable, schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store.(*CacheStoreImpl)
}

func TestSQLiteRoundTrip(t *testing.T) {
	store := newSQLiteStore(t)

	require.NoError(t, store.Set("/users/octocat", []byte(`{"login":"octocat"}`), 1, 1700000000))

	value, version, ts, err := store.Get("/users/octocat")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"login":"octocat"}`), value)
	assert.Equal(t, 1, version)
	assert.Equal(t, int64(1700000000), ts)
}

func TestSQLiteUpsertReplaces(t *testing.T) {
	store := newSQLiteStore(t)

	require.NoError(t, store.Set("key", []byte("old"), 1, 100))
	require.NoError(t, store.Set("key", []byte("new"), 2, 200))

	value, version, ts, err := store.Get("key")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), value)
	assert.Equal(t, 2, version)
	assert.Equal(t, int64(200), ts)
}

func TestSQLiteMissReturnsError(t *testing.T) {
	store := newSQLiteStore(t)

	_, _, _, err := store.Get("never-stored")
	assert.Error(t, err)
}

func TestSQLiteStatus(t *testing.T) {
	store := newSQLiteStore(t)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.True(t, status.Connected)
	assert.Equal(t, int64(0), status.TotalEntries)

	require.NoError(t, store.Set("a", []byte("1"), 1, 100))
	require.NoError(t, store.Set("b", []byte("2"), 1, 300))

	status, err = store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, int64(2), status.TotalEntries)
	assert.Equal(t, int64(300), status.LastEntryTime.Unix())
	assert.Equal(t, int64(100), status.OldestEntryTime.Unix())
}

func TestNoneBackendIsNoop(t *testing.T) {
	store, err := NewCacheStore(responseTable, schema.NoneBackend, "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Set("key", []byte("value"), 1, 100))
	_, _, _, err = store.Get("key")
	assert.Error(t, err, "none backend always misses")

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.False(t, status.Connected)
}

func TestNewCacheStoreRejectsBadInput(t *testing.T) {
	_, err := NewCacheStore("drop table; --", schema.SQLiteBackend, "")
	assert.Error(t, err)

	_, err = NewCacheStore(responseTable, "redis", "")
	assert.Error(t, err)
}

func TestValidateTableName(t *testing.T) {
	assert.NoError(t, validateTableName("response_cache"))
	assert.NoError(t, validateTableName("_private"))
	assert.Error(t, validateTableName(""))
	assert.Error(t, validateTableName("1table"))
	assert.Error(t, validateTableName("bad-name"))
	assert.Error(t, validateTableName("bad name"))
}

func TestQuoteTableName(t *testing.T) {
	assert.Equal(t, `"response_cache"`, quoteTableName("response_cache", schema.SQLiteBackend))
	assert.Equal(t, `"response_cache"`, quoteTableName("response_cache", schema.PostgreSQLBackend))
	assert.Equal(t, "`response_cache`", quoteTableName("response_cache", schema.MySQLBackend))
}
