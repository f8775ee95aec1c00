package database

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open connects to the storage described by dsn. Postgres URLs and
// keyword/value DSNs select the postgres driver; anything else is treated
// as a SQLite file path, optionally prefixed with "sqlite://".
func Open(dsn string) (*gorm.DB, error) {
	dsn = strings.TrimSpace(dsn)
	if dsn == "" {
		return nil, fmt.Errorf("database dsn must not be empty")
	}

	// References owned by sibling services live in other databases, and
	// deletes never cascade, so no foreign key constraints are created.
	gormConfig := &gorm.Config{DisableForeignKeyConstraintWhenMigrating: true}

	if isPostgresDSN(dsn) {
		db, err := gorm.Open(postgres.Open(dsn), gormConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		return db, nil
	}

	db, err := gorm.Open(sqlite.Open(sqlitePath(dsn)), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	return db, nil
}

func isPostgresDSN(dsn string) bool {
	lower := strings.ToLower(dsn)
	return strings.HasPrefix(lower, "postgres://") ||
		strings.HasPrefix(lower, "postgresql://") ||
		strings.Contains(lower, "host=")
}

func sqlitePath(dsn string) string {
	for _, prefix := range []string{"sqlite:///", "sqlite://"} {
		if strings.HasPrefix(dsn, prefix) {
			return strings.TrimPrefix(dsn, prefix)
		}
	}
	return dsn
}
