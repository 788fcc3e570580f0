package iocache

import (
	"database/sql"
	"fmt"
	"os"
	"sync"

	"github.com/huangsam/devpulse/internal/contract"
	"github.com/huangsam/devpulse/schema"
)

// Global store for main logic.
var (
	manager   = &storeManager{}
	initOnce  sync.Once
	closeOnce sync.Once
)

// storeManager guards the global store pointer during initialization.
type storeManager struct {
	sync.RWMutex
	store contract.CacheStore
}

// InitCaching opens the global response cache. An empty backend leaves
// caching disabled. Safe to call more than once; only the first call wins.
func InitCaching(backend schema.DatabaseBackend, connStr string) error {
	var initErr error
	initOnce.Do(func() {
		if backend == "" {
			return
		}
		store, err := NewCacheStore(responseTable, backend, connStr)
		if err != nil {
			initErr = fmt.Errorf("failed to initialize response caching: %w", err)
			return
		}
		manager.Lock()
		manager.store = store
		manager.Unlock()
	})
	return initErr
}

// Store returns the global response cache, or nil when caching is disabled.
func Store() contract.CacheStore {
	manager.RLock()
	defer manager.RUnlock()
	return manager.store
}

// CloseCaching should be called on application shutdown.
func CloseCaching() { // called in main defer
	closeOnce.Do(func() {
		manager.Lock()
		defer manager.Unlock()
		if manager.store != nil {
			_ = manager.store.Close()
		}
	})
}

// ClearCache drops the cached responses for the given backend. For SQLite
// that means deleting the database file; for MySQL and PostgreSQL the table
// is dropped; for none there is nothing to clear.
func ClearCache(backend schema.DatabaseBackend, dbFilePath, connStr string) error {
	switch backend {
	case schema.SQLiteBackend:
		if dbFilePath == "" {
			return fmt.Errorf("dbFilePath cannot be empty for SQLite backend")
		}
		if err := os.Remove(dbFilePath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove SQLite database file %s: %w", dbFilePath, err)
		}
		return nil

	case schema.MySQLBackend:
		return clearSQLTable("mysql", connStr, responseTable)

	case schema.PostgreSQLBackend:
		return clearSQLTable("pgx", connStr, responseTable)

	case schema.NoneBackend:
		return nil

	default:
		return fmt.Errorf("unsupported cache backend for clearing: %s", backend)
	}
}

// clearSQLTable connects to the SQL database and drops the table if it exists.
func clearSQLTable(driverName, connStr, tableName string) error {
	db, err := sql.Open(driverName, connStr)
	if err != nil {
		return fmt.Errorf("failed to connect to %s database: %w", driverName, err)
	}
	defer func() { _ = db.Close() }()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping %s database: %w", driverName, err)
	}

	query := fmt.Sprintf("DROP TABLE IF EXISTS %s", tableName)
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to drop table %s: %w", tableName, err)
	}
	return nil
}
