package store

import (
	"database/sql"

	"github.com/omebuild/externalconfig/internal/logger"
	"github.com/omebuild/externalconfig/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
