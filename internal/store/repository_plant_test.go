// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-plant-keeper/internal/logger"
	"github.com/MKhiriev/go-plant-keeper/models"
)

const (
	testOwner = "owner-1"
	testPlant = "plant-1"
)

var (
	testPlanted = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	testCreated = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
)

func newTestPlantRepo(t *testing.T) (*plantRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &plantRepository{
		db:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func plantRows() *sqlmock.Rows {
	return sqlmock.NewRows(plantColumns)
}

func addPlantRow(rows *sqlmock.Rows, id string, lastWatered any) *sqlmock.Rows {
	return rows.AddRow(id, testOwner, "Basil", testPlanted, lastWatered, 5, 10, 3, nil, false, testCreated, nil)
}

func noteRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "plant_id", "content", "auto_tip", "tip_day", "created_at"})
}

func photoRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "plant_id", "url", "caption", "created_at"})
}

func TestListPlants_GroupsChildren(t *testing.T) {
	repo, mock, db := newTestPlantRepo(t)
	defer db.Close()

	mock.ExpectQuery("FROM plants WHERE owner_id").
		WithArgs(testOwner, false).
		WillReturnRows(addPlantRow(addPlantRow(plantRows(), "p1", nil), "p2", testCreated))
	mock.ExpectQuery("FROM plant_notes n JOIN plants p").
		WithArgs(testOwner).
		WillReturnRows(noteRows().
			AddRow("n1", "p2", "first", false, nil, testCreated).
			AddRow("n2", "p2", "second", true, testPlanted, testCreated.Add(time.Hour)))
	mock.ExpectQuery("FROM plant_photos ph JOIN plants p").
		WithArgs(testOwner).
		WillReturnRows(photoRows().AddRow("ph1", "p1", "https://img/1.jpg", "leaf", testCreated))

	plants, err := repo.ListPlants(context.Background(), testOwner, models.PlantFilter{Archived: models.ArchivedExclude})
	require.NoError(t, err)
	require.Len(t, plants, 2)

	assert.Nil(t, plants[0].LastWateredDate)
	assert.Empty(t, plants[0].Notes)
	assert.NotNil(t, plants[0].Notes)
	require.Len(t, plants[0].Photos, 1)
	assert.Equal(t, "https://img/1.jpg", plants[0].Photos[0].URL)

	require.NotNil(t, plants[1].LastWateredDate)
	require.Len(t, plants[1].Notes, 2)
	assert.Equal(t, "first", plants[1].Notes[0].Content)
	assert.True(t, plants[1].Notes[1].AutoTip)
	assert.NotNil(t, plants[1].Photos)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListPlants_EmptySkipsChildren(t *testing.T) {
	repo, mock, db := newTestPlantRepo(t)
	defer db.Close()

	mock.ExpectQuery("FROM plants WHERE owner_id").
		WithArgs(testOwner).
		WillReturnRows(plantRows())

	plants, err := repo.ListPlants(context.Background(), testOwner, models.PlantFilter{})
	require.NoError(t, err)
	assert.NotNil(t, plants)
	assert.Empty(t, plants)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListPlants_QueryError(t *testing.T) {
	repo, mock, db := newTestPlantRepo(t)
	defer db.Close()

	mock.ExpectQuery("FROM plants").WillReturnError(pgError(pgerrcode.ConnectionFailure))

	_, err := repo.ListPlants(context.Background(), testOwner, models.PlantFilter{})
	require.ErrorIs(t, err, ErrExecutingQuery)
}

func TestCreatePlant_Success(t *testing.T) {
	repo, mock, db := newTestPlantRepo(t)
	defer db.Close()

	plant := models.Plant{
		ID:                testPlant,
		OwnerID:           testOwner,
		Species:           "Basil",
		PlantedDate:       testPlanted,
		MinGermination:    5,
		MaxGermination:    10,
		WateringFrequency: 7,
		CreatedAt:         testCreated,
	}

	mock.ExpectExec("INSERT INTO plants").
		WithArgs(testPlant, testOwner, "Basil", testPlanted, nil, 5, 10, 7, nil, false, testCreated, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.CreatePlant(context.Background(), plant)
	require.NoError(t, err)
	assert.Equal(t, testPlant, created.ID)
	assert.NotNil(t, created.Notes)
	assert.NotNil(t, created.Photos)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePlant_CheckViolation(t *testing.T) {
	repo, mock, db := newTestPlantRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO plants").WillReturnError(pgError(pgerrcode.CheckViolation))

	_, err := repo.CreatePlant(context.Background(), models.Plant{ID: testPlant, OwnerID: testOwner})
	require.ErrorIs(t, err, ErrInvalidPlant)
}

func TestCreatePlant_UnexpectedError(t *testing.T) {
	repo, mock, db := newTestPlantRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO plants").WillReturnError(errors.New("boom"))

	_, err := repo.CreatePlant(context.Background(), models.Plant{ID: testPlant, OwnerID: testOwner})
	require.ErrorIs(t, err, ErrExecutingStatement)
}

func TestGetPlant_Success(t *testing.T) {
	repo, mock, db := newTestPlantRepo(t)
	defer db.Close()

	mock.ExpectQuery("FROM plants WHERE id").
		WithArgs(testPlant, testOwner).
		WillReturnRows(addPlantRow(plantRows(), testPlant, nil))
	mock.ExpectQuery("FROM plant_notes n").
		WithArgs(testOwner, testPlant).
		WillReturnRows(noteRows().AddRow("n1", testPlant, "sprouted", false, nil, testCreated))
	mock.ExpectQuery("FROM plant_photos ph").
		WithArgs(testOwner, testPlant).
		WillReturnRows(photoRows())

	plant, err := repo.GetPlant(context.Background(), testOwner, testPlant)
	require.NoError(t, err)
	assert.Equal(t, "Basil", plant.Species)
	require.Len(t, plant.Notes, 1)
	assert.Nil(t, plant.Notes[0].TipDay)
	assert.Empty(t, plant.Photos)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPlant_NotFound(t *testing.T) {
	repo, mock, db := newTestPlantRepo(t)
	defer db.Close()

	mock.ExpectQuery("FROM plants WHERE id").
		WithArgs(testPlant, testOwner).
		WillReturnRows(plantRows())

	_, err := repo.GetPlant(context.Background(), testOwner, testPlant)
	require.ErrorIs(t, err, ErrPlantNotFound)
}

func TestArchivePlant(t *testing.T) {
	at := testCreated.Add(24 * time.Hour)

	tests := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{name: "archived", affected: 1},
		{name: "missing plant", affected: 0, wantErr: ErrPlantNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, db := newTestPlantRepo(t)
			defer db.Close()

			mock.ExpectExec("UPDATE plants SET archived").
				WithArgs(true, at, testPlant, testOwner).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			err := repo.ArchivePlant(context.Background(), testOwner, testPlant, at)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestWaterPlant_Success(t *testing.T) {
	repo, mock, db := newTestPlantRepo(t)
	defer db.Close()

	at := testCreated.Add(48 * time.Hour)

	mock.ExpectQuery("UPDATE plants SET last_watered_date").
		WithArgs(at, at, testPlant, testOwner).
		WillReturnRows(addPlantRow(plantRows(), testPlant, at))
	mock.ExpectQuery("FROM plant_notes n").WillReturnRows(noteRows())
	mock.ExpectQuery("FROM plant_photos ph").WillReturnRows(photoRows())

	plant, err := repo.WaterPlant(context.Background(), testOwner, testPlant, at)
	require.NoError(t, err)
	require.NotNil(t, plant.LastWateredDate)
	assert.True(t, plant.LastWateredDate.Equal(at))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWaterPlant_NotFound(t *testing.T) {
	repo, mock, db := newTestPlantRepo(t)
	defer db.Close()

	mock.ExpectQuery("UPDATE plants SET last_watered_date").WillReturnRows(plantRows())

	_, err := repo.WaterPlant(context.Background(), testOwner, testPlant, testCreated)
	require.ErrorIs(t, err, ErrPlantNotFound)
}

func TestAddNote_Success(t *testing.T) {
	repo, mock, db := newTestPlantRepo(t)
	defer db.Close()

	note := models.Note{ID: "n1", PlantID: testPlant, Content: "first leaves", CreatedAt: testCreated}

	mock.ExpectQuery("SELECT 1 FROM plants").
		WithArgs(testPlant, testOwner).
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))
	mock.ExpectExec("INSERT INTO plant_notes").
		WithArgs("n1", testPlant, "first leaves", false, nil, testCreated).
		WillReturnResult(sqlmock.NewResult(0, 1))

	saved, err := repo.AddNote(context.Background(), testOwner, note)
	require.NoError(t, err)
	assert.Equal(t, note, saved)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAddNote_PlantNotOwned(t *testing.T) {
	repo, mock, db := newTestPlantRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT 1 FROM plants").
		WithArgs(testPlant, testOwner).
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}))

	_, err := repo.AddNote(context.Background(), testOwner, models.Note{ID: "n1", PlantID: testPlant})
	require.ErrorIs(t, err, ErrPlantNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAddTipNote_Conflict(t *testing.T) {
	repo, mock, db := newTestPlantRepo(t)
	defer db.Close()

	day := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	note := models.Note{ID: "n1", PlantID: testPlant, Content: "tip", AutoTip: true, TipDay: &day, CreatedAt: testCreated}

	mock.ExpectQuery("SELECT 1 FROM plants").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))
	mock.ExpectExec(`INSERT INTO plant_notes .+ ON CONFLICT \(plant_id, tip_day\) DO NOTHING`).
		WithArgs("n1", testPlant, "tip", true, "2026-03-05", testCreated).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.AddTipNote(context.Background(), testOwner, note)
	require.ErrorIs(t, err, ErrTipAlreadyExists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAddTipNote_RequiresDay(t *testing.T) {
	repo, _, db := newTestPlantRepo(t)
	defer db.Close()

	_, err := repo.AddTipNote(context.Background(), testOwner, models.Note{ID: "n1", PlantID: testPlant})
	require.ErrorIs(t, err, ErrBuildingSQLQuery)
}

func TestFindTipNote(t *testing.T) {
	day := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		repo, mock, db := newTestPlantRepo(t)
		defer db.Close()

		mock.ExpectQuery("FROM plant_notes n JOIN plants p").
			WithArgs(testPlant, "2026-03-05", testOwner).
			WillReturnRows(noteRows().AddRow("n1", testPlant, "tip", true, day, testCreated))

		note, err := repo.FindTipNote(context.Background(), testOwner, testPlant, day)
		require.NoError(t, err)
		require.NotNil(t, note.TipDay)
		assert.Equal(t, "tip", note.Content)
	})

	t.Run("missing", func(t *testing.T) {
		repo, mock, db := newTestPlantRepo(t)
		defer db.Close()

		mock.ExpectQuery("FROM plant_notes n JOIN plants p").WillReturnRows(noteRows())

		_, err := repo.FindTipNote(context.Background(), testOwner, testPlant, day)
		require.ErrorIs(t, err, ErrNoteNotFound)
	})
}

func TestListNotes_PlantMissing(t *testing.T) {
	repo, mock, db := newTestPlantRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT 1 FROM plants").WillReturnRows(sqlmock.NewRows([]string{"?column?"}))

	_, err := repo.ListNotes(context.Background(), testOwner, testPlant)
	require.ErrorIs(t, err, ErrPlantNotFound)
}

func TestDeleteNote(t *testing.T) {
	tests := []struct {
		name       string
		affected   int64
		plantFound bool
		wantErr    error
	}{
		{name: "deleted", affected: 1},
		{name: "note missing", affected: 0, plantFound: true, wantErr: ErrNoteNotFound},
		{name: "plant missing", affected: 0, plantFound: false, wantErr: ErrPlantNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, db := newTestPlantRepo(t)
			defer db.Close()

			mock.ExpectExec(`DELETE FROM plant_notes WHERE id = \$1 AND plant_id = \$2 AND plant_id IN \(SELECT id FROM plants WHERE owner_id = \$3\)`).
				WithArgs("n1", testPlant, testOwner).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			if tt.affected == 0 {
				rows := sqlmock.NewRows([]string{"?column?"})
				if tt.plantFound {
					rows.AddRow(1)
				}
				mock.ExpectQuery("SELECT 1 FROM plants").WillReturnRows(rows)
			}

			err := repo.DeleteNote(context.Background(), testOwner, testPlant, "n1")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAddPhoto_Success(t *testing.T) {
	repo, mock, db := newTestPlantRepo(t)
	defer db.Close()

	photo := models.Photo{ID: "ph1", PlantID: testPlant, URL: "https://img/1.jpg", Caption: "day 3", CreatedAt: testCreated}

	mock.ExpectQuery("SELECT 1 FROM plants").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))
	mock.ExpectExec("INSERT INTO plant_photos").
		WithArgs("ph1", testPlant, "https://img/1.jpg", "day 3", testCreated).
		WillReturnResult(sqlmock.NewResult(0, 1))

	saved, err := repo.AddPhoto(context.Background(), testOwner, photo)
	require.NoError(t, err)
	assert.Equal(t, photo, saved)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeletePhoto_NotFound(t *testing.T) {
	repo, mock, db := newTestPlantRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM plant_photos").
		WithArgs("ph1", testPlant, testOwner).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT 1 FROM plants").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

	err := repo.DeletePhoto(context.Background(), testOwner, testPlant, "ph1")
	require.ErrorIs(t, err, ErrPhotoNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
