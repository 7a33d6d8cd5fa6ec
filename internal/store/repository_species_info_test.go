// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-plant-keeper/internal/logger"
	"github.com/MKhiriev/go-plant-keeper/models"
)

func newTestSpeciesInfoRepo(t *testing.T) (*speciesInfoRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &speciesInfoRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func speciesInfoRows() *sqlmock.Rows {
	return sqlmock.NewRows(speciesInfoColumns)
}

func TestFindBySpecies_Found(t *testing.T) {
	repo, mock, db := newTestSpeciesInfoRepo(t)
	defer db.Close()

	mock.ExpectQuery("FROM all_plants WHERE owner_id = \\$1 AND species = \\$2").
		WithArgs(testOwner, "Basil").
		WillReturnRows(speciesInfoRows().AddRow("s1", testOwner, "Basil", `{"light":"full sun"}`, testCreated, nil))

	info, err := repo.FindBySpecies(context.Background(), testOwner, "Basil")
	require.NoError(t, err)
	assert.Equal(t, "s1", info.ID)
	assert.JSONEq(t, `{"light":"full sun"}`, string(info.Info))
	assert.Nil(t, info.UpdatedAt)
}

func TestFindBySpecies_NotFound(t *testing.T) {
	repo, mock, db := newTestSpeciesInfoRepo(t)
	defer db.Close()

	mock.ExpectQuery("FROM all_plants").WillReturnRows(speciesInfoRows())

	_, err := repo.FindBySpecies(context.Background(), testOwner, "Basil")
	require.ErrorIs(t, err, ErrSpeciesInfoNotFound)
}

func TestCreateSpeciesInfo(t *testing.T) {
	info := models.SpeciesInfo{
		ID:        "s1",
		OwnerID:   testOwner,
		Species:   "Basil",
		Info:      json.RawMessage(`"water daily"`),
		CreatedAt: testCreated,
	}

	tests := []struct {
		name     string
		affected int64
		want     bool
	}{
		{name: "inserted", affected: 1, want: true},
		{name: "already cached", affected: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, db := newTestSpeciesInfoRepo(t)
			defer db.Close()

			mock.ExpectExec(`INSERT INTO all_plants .+ ON CONFLICT \(owner_id, species\) DO NOTHING`).
				WithArgs("s1", testOwner, "Basil", `"water daily"`, testCreated).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			created, err := repo.CreateSpeciesInfo(context.Background(), info)
			require.NoError(t, err)
			assert.Equal(t, tt.want, created)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestReplaceSpeciesInfo(t *testing.T) {
	repo, mock, db := newTestSpeciesInfoRepo(t)
	defer db.Close()

	info := models.SpeciesInfo{
		ID:        "s2",
		OwnerID:   testOwner,
		Species:   "Basil",
		Info:      json.RawMessage(`{"soil":"loam"}`),
		CreatedAt: testCreated,
	}

	mock.ExpectQuery(`ON CONFLICT \(owner_id, species\) DO UPDATE SET info = EXCLUDED.info`).
		WithArgs("s2", testOwner, "Basil", `{"soil":"loam"}`, testCreated).
		WillReturnRows(speciesInfoRows().AddRow("s1", testOwner, "Basil", []byte(`{"soil":"loam"}`), testPlanted, testCreated))

	stored, err := repo.ReplaceSpeciesInfo(context.Background(), info)
	require.NoError(t, err)
	assert.Equal(t, "s1", stored.ID)
	require.NotNil(t, stored.UpdatedAt)
	assert.True(t, stored.UpdatedAt.Equal(testCreated))
}

func TestDeleteSpeciesInfo(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		repo, mock, db := newTestSpeciesInfoRepo(t)
		defer db.Close()

		mock.ExpectExec("DELETE FROM all_plants").
			WithArgs("s1", testOwner).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.DeleteSpeciesInfo(context.Background(), testOwner, "s1"))
	})

	t.Run("missing", func(t *testing.T) {
		repo, mock, db := newTestSpeciesInfoRepo(t)
		defer db.Close()

		mock.ExpectExec("DELETE FROM all_plants").WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.DeleteSpeciesInfo(context.Background(), testOwner, "s1")
		require.ErrorIs(t, err, ErrSpeciesInfoNotFound)
	})
}
