package app

import (
	"fmt"

	"github.com/yungbote/agencyhub-backend/internal/data/db"
	"github.com/yungbote/agencyhub-backend/internal/data/memstore"
	"github.com/yungbote/agencyhub-backend/internal/data/store"
	"github.com/yungbote/agencyhub-backend/internal/platform/logger"
)

// OpenStore builds the store named by cfg.StoreDriver, migrating relational schemas first.
func OpenStore(cfg Config, log *logger.Logger) (store.Store, error) {
	switch cfg.StoreDriver {
	case StoreMemory:
		log.Warn("Using in-memory store; data is lost on exit")
		return memstore.New(log), nil
	case StoreSQLite:
		gdb, err := db.OpenSQLite(cfg.SQLitePath, log)
		if err != nil {
			return nil, err
		}
		if err := db.AutoMigrateAll(gdb); err != nil {
			return nil, fmt.Errorf("sqlite automigrate: %w", err)
		}
		if err := db.EnsureIndexes(gdb); err != nil {
			return nil, fmt.Errorf("sqlite indexes: %w", err)
		}
		return db.NewStore(gdb, log), nil
	case StorePostgres:
		gdb, err := db.OpenPostgres(cfg.Postgres, log)
		if err != nil {
			return nil, err
		}
		if err := db.AutoMigrateAll(gdb); err != nil {
			return nil, fmt.Errorf("postgres automigrate: %w", err)
		}
		if err := db.EnsureIndexes(gdb); err != nil {
			return nil, fmt.Errorf("postgres indexes: %w", err)
		}
		return db.NewStore(gdb, log), nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}
