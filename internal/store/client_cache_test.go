// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-plant-keeper/internal/logger"
	"github.com/MKhiriev/go-plant-keeper/models"
)

func newTestLocalCache(t *testing.T) (*localCache, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	l := logger.Nop()
	return &localCache{db: &DB{DB: db, logger: l}, logger: l}, mock, db
}

func TestLocalCache_SavePlants(t *testing.T) {
	cache, mock, db := newTestLocalCache(t)
	defer db.Close()

	at := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	plants := []models.Plant{{ID: "p1", Species: "Basil"}, {ID: "p2", Species: "Mint"}}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM cached_plants").WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("INSERT INTO cached_plants").
		WithArgs("p1", 0, sqlmock.AnyArg(), "p2", 1, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("INSERT INTO cache_meta").
		WithArgs(metaPlantsSavedAt, "2026-03-02T08:00:00Z").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, cache.SavePlants(context.Background(), plants, at))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLocalCache_SavePlants_RollsBackOnError(t *testing.T) {
	cache, mock, db := newTestLocalCache(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM cached_plants").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := cache.SavePlants(context.Background(), nil, time.Now())
	require.ErrorIs(t, err, ErrExecutingStatement)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLocalCache_LoadPlants(t *testing.T) {
	cache, mock, db := newTestLocalCache(t)
	defer db.Close()

	payload, err := json.Marshal(models.Plant{ID: "p1", Species: "Basil", WateringFrequency: 3})
	require.NoError(t, err)

	mock.ExpectQuery("SELECT payload FROM cached_plants").
		WillReturnRows(sqlmock.NewRows([]string{"payload"}).AddRow(string(payload)))
	mock.ExpectQuery("SELECT value FROM cache_meta").
		WithArgs(metaPlantsSavedAt).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("2026-03-02T08:00:00Z"))

	plants, savedAt, err := cache.LoadPlants(context.Background())
	require.NoError(t, err)
	require.Len(t, plants, 1)
	assert.Equal(t, "Basil", plants[0].Species)
	assert.Equal(t, 3, plants[0].WateringFrequency)
	assert.True(t, savedAt.Equal(time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)))
}

func TestLocalCache_LoadPlants_Empty(t *testing.T) {
	cache, mock, db := newTestLocalCache(t)
	defer db.Close()

	mock.ExpectQuery("SELECT payload FROM cached_plants").WillReturnRows(sqlmock.NewRows([]string{"payload"}))
	mock.ExpectQuery("SELECT value FROM cache_meta").WillReturnRows(sqlmock.NewRows([]string{"value"}))

	plants, savedAt, err := cache.LoadPlants(context.Background())
	require.NoError(t, err)
	assert.Empty(t, plants)
	assert.True(t, savedAt.IsZero())
}

func TestLocalCache_Token(t *testing.T) {
	cache, mock, db := newTestLocalCache(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT value FROM cache_meta").
		WithArgs(metaSessionToken).
		WillReturnRows(sqlmock.NewRows([]string{"value"}))
	_, err := cache.LoadToken(ctx)
	require.ErrorIs(t, err, ErrLocalSessionNotFound)

	mock.ExpectExec("INSERT INTO cache_meta").
		WithArgs(metaSessionToken, "tok").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, cache.SaveToken(ctx, "tok"))

	mock.ExpectQuery("SELECT value FROM cache_meta").
		WithArgs(metaSessionToken).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("tok"))
	token, err := cache.LoadToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok", token)

	mock.ExpectExec("DELETE FROM cache_meta WHERE key = ?").
		WithArgs(metaSessionToken).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, cache.ClearToken(ctx))

	require.NoError(t, mock.ExpectationsWereMet())
}

func Test_localDBPath(t *testing.T) {
	tests := map[string]string{
		"":                                      "",
		":memory:":                              "",
		"file:test.db?mode=memory":              "",
		"file:plant-keeper.db?_foreign_keys=on": "plant-keeper.db",
		"data/cache.db":                         "data/cache.db",
	}

	for dsn, want := range tests {
		assert.Equal(t, want, localDBPath(dsn), dsn)
	}
}
