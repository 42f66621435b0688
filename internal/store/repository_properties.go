// SPDX-License-Identifier: Apache-2.0

// Package store persists the merged configuration in a sqlite key-value
// database located under the base directory. The on-disk location mirrors
// the server layout: <basedir>/etc/grid/config.db.
//
// No cross-process locking is performed; concurrent external writers race
// with last-write-wins semantics.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/omebuild/externalconfig/internal/logger"
)

type propertyRepository struct {
	db     *DB
	logger *logger.Logger
}

// Path returns the config database location for a base directory.
func Path(baseDir string) string {
	return filepath.Join(baseDir, "etc", "grid", "config.db")
}

// Open connects to the config store under baseDir, applying schema
// migrations, and returns it ready for use. The caller owns the handle and
// must Close it on every exit path.
func Open(ctx context.Context, baseDir string, log *logger.Logger) (ConfigStore, error) {
	db, err := NewConnectSQLite(ctx, Path(baseDir), log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		log.Err(err).Str("func", "store.Open").Msg("failed to migrate config store")
		return nil, fmt.Errorf("failed to migrate config store: %w", err)
	}

	return &propertyRepository{db: db, logger: log}, nil
}

func (r *propertyRepository) Get(ctx context.Context, key string) (string, bool, error) {
	log := logger.FromContext(ctx)

	var value string
	err := r.db.QueryRowContext(ctx, selectProperty, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "propertyRepository.Get").
			Str("key", key).
			Msg("failed to query config property")
		return "", false, fmt.Errorf("failed to query config property %q: %w", key, err)
	}

	return value, true, nil
}

func (r *propertyRepository) Set(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, upsertProperty, key, value); err != nil {
		log.Err(err).
			Str("func", "propertyRepository.Set").
			Str("key", key).
			Msg("failed to execute upsert for config property")
		return fmt.Errorf("failed to save config property %q: %w", key, err)
	}

	return nil
}

func (r *propertyRepository) Keys(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, selectAllKeys)
	if err != nil {
		log.Err(err).
			Str("func", "propertyRepository.Keys").
			Msg("failed to query config property keys")
		return nil, fmt.Errorf("failed to query config property keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err = rows.Scan(&key); err != nil {
			log.Err(err).
				Str("func", "propertyRepository.Keys").
				Msg("failed to scan config property key")
			return nil, fmt.Errorf("failed to scan config property key: %w", err)
		}
		keys = append(keys, key)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate config property keys: %w", err)
	}

	return keys, nil
}

func (r *propertyRepository) RemoveAll(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteAllProperties); err != nil {
		log.Err(err).
			Str("func", "propertyRepository.RemoveAll").
			Msg("failed to delete config properties")
		return fmt.Errorf("failed to delete config properties: %w", err)
	}

	return nil
}

func (r *propertyRepository) Close() error {
	return r.db.Close()
}
