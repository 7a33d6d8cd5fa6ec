// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-plant-keeper/internal/logger"
	"github.com/MKhiriev/go-plant-keeper/models"
)

const (
	metaPlantsSavedAt = "plants_saved_at"
	metaSessionToken  = "session_token"
)

// localCache is the SQLite implementation of [LocalCache]. Plants are stored
// as JSON documents in list order.
type localCache struct {
	db     *DB
	logger *logger.Logger
}

// NewLocalCache constructs a [LocalCache] backed by db.
func NewLocalCache(db *DB, logger *logger.Logger) LocalCache {
	return &localCache{db: db, logger: logger}
}

// SavePlants replaces the cached list with plants.
func (c *localCache) SavePlants(ctx context.Context, plants []models.Plant, at time.Time) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return c.db.queryError(ctx, "*localCache.SavePlants", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err = tx.ExecContext(ctx, "DELETE FROM cached_plants"); err != nil {
		return c.db.queryError(ctx, "*localCache.SavePlants", ErrExecutingStatement, err)
	}

	if len(plants) > 0 {
		insert := sq.Insert("cached_plants").Columns("id", "position", "payload")
		for i, p := range plants {
			payload, marshalErr := json.Marshal(p)
			if marshalErr != nil {
				return fmt.Errorf("encode cached plant %s: %w", p.ID, marshalErr)
			}
			insert = insert.Values(p.ID, i, string(payload))
		}

		query, args, buildErr := insert.ToSql()
		if buildErr != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return c.db.queryError(ctx, "*localCache.SavePlants", ErrExecutingStatement, err)
		}
	}

	if err = setMeta(ctx, tx, metaPlantsSavedAt, at.UTC().Format(time.RFC3339Nano)); err != nil {
		return c.db.queryError(ctx, "*localCache.SavePlants", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		return c.db.queryError(ctx, "*localCache.SavePlants", ErrCommitingTransaction, err)
	}

	return nil
}

// LoadPlants returns the cached list and the time it was saved. An empty
// cache yields an empty slice and the zero time.
func (c *localCache) LoadPlants(ctx context.Context) ([]models.Plant, time.Time, error) {
	rows, err := c.db.QueryContext(ctx, "SELECT payload FROM cached_plants ORDER BY position ASC")
	if err != nil {
		return nil, time.Time{}, c.db.queryError(ctx, "*localCache.LoadPlants", ErrExecutingQuery, err)
	}
	defer rows.Close()

	plants := make([]models.Plant, 0)
	for rows.Next() {
		var payload string
		if err = rows.Scan(&payload); err != nil {
			return nil, time.Time{}, c.db.queryError(ctx, "*localCache.LoadPlants", ErrScanningRow, err)
		}

		var p models.Plant
		if err = json.Unmarshal([]byte(payload), &p); err != nil {
			return nil, time.Time{}, fmt.Errorf("decode cached plant: %w", err)
		}
		plants = append(plants, p)
	}
	if err = rows.Err(); err != nil {
		return nil, time.Time{}, c.db.queryError(ctx, "*localCache.LoadPlants", ErrScanningRows, err)
	}

	raw, err := c.getMeta(ctx, metaPlantsSavedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return plants, time.Time{}, nil
	}
	if err != nil {
		return nil, time.Time{}, c.db.queryError(ctx, "*localCache.LoadPlants", ErrScanningRow, err)
	}

	savedAt, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("decode cache timestamp: %w", err)
	}

	return plants, savedAt, nil
}

func (c *localCache) SaveToken(ctx context.Context, token string) error {
	if err := setMeta(ctx, c.db, metaSessionToken, token); err != nil {
		return c.db.queryError(ctx, "*localCache.SaveToken", ErrExecutingStatement, err)
	}
	return nil
}

// LoadToken returns [ErrLocalSessionNotFound] when no token was saved.
func (c *localCache) LoadToken(ctx context.Context) (string, error) {
	token, err := c.getMeta(ctx, metaSessionToken)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrLocalSessionNotFound
	}
	if err != nil {
		return "", c.db.queryError(ctx, "*localCache.LoadToken", ErrScanningRow, err)
	}
	return token, nil
}

func (c *localCache) ClearToken(ctx context.Context) error {
	query, args, err := sq.Delete("cache_meta").Where(sq.Eq{"key": metaSessionToken}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = c.db.ExecContext(ctx, query, args...); err != nil {
		return c.db.queryError(ctx, "*localCache.ClearToken", ErrExecutingStatement, err)
	}
	return nil
}

func (c *localCache) getMeta(ctx context.Context, key string) (string, error) {
	var value string
	err := c.db.QueryRowContext(ctx, "SELECT value FROM cache_meta WHERE key = ?", key).Scan(&value)
	return value, err
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func setMeta(ctx context.Context, ex execer, key, value string) error {
	_, err := ex.ExecContext(ctx,
		"INSERT INTO cache_meta (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value)
	return err
}
