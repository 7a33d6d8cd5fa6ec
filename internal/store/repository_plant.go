// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-plant-keeper/internal/logger"
	"github.com/MKhiriev/go-plant-keeper/models"
	"github.com/jackc/pgerrcode"
)

// plantRepository is the PostgreSQL implementation of [PlantRepository]
// over the plants, plant_notes and plant_photos tables.
type plantRepository struct {
	db     *DB
	logger *logger.Logger
}

type rowScanner interface {
	Scan(dest ...any) error
}

// NewPlantRepository constructs a [PlantRepository] backed by db.
func NewPlantRepository(db *DB, logger *logger.Logger) PlantRepository {
	logger.Debug().Msg("creating plant repository")
	return &plantRepository{
		db:     db,
		logger: logger,
	}
}

// ListPlants returns the owner's plants in creation order with their notes
// and photos attached. Child collections are loaded with one query each.
func (r *plantRepository) ListPlants(ctx context.Context, ownerID string, filter models.PlantFilter) ([]models.Plant, error) {
	query, args, err := buildListPlantsQuery(ownerID, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, r.db.queryError(ctx, "*plantRepository.ListPlants", ErrExecutingQuery, err)
	}
	defer rows.Close()

	plants := make([]models.Plant, 0)
	for rows.Next() {
		plant, scanErr := scanPlant(rows)
		if scanErr != nil {
			return nil, r.db.queryError(ctx, "*plantRepository.ListPlants", ErrScanningRow, scanErr)
		}
		plants = append(plants, plant)
	}
	if err = rows.Err(); err != nil {
		return nil, r.db.queryError(ctx, "*plantRepository.ListPlants", ErrScanningRows, err)
	}

	if len(plants) == 0 {
		return plants, nil
	}

	notes, err := r.selectNotes(ctx, ownerID, "")
	if err != nil {
		return nil, err
	}
	photos, err := r.selectPhotos(ctx, ownerID, "")
	if err != nil {
		return nil, err
	}

	notesByPlant := make(map[string][]models.Note, len(plants))
	for _, n := range notes {
		notesByPlant[n.PlantID] = append(notesByPlant[n.PlantID], n)
	}
	photosByPlant := make(map[string][]models.Photo, len(plants))
	for _, ph := range photos {
		photosByPlant[ph.PlantID] = append(photosByPlant[ph.PlantID], ph)
	}

	for i := range plants {
		plants[i].Notes = append(make([]models.Note, 0), notesByPlant[plants[i].ID]...)
		plants[i].Photos = append(make([]models.Photo, 0), photosByPlant[plants[i].ID]...)
	}

	return plants, nil
}

// CreatePlant inserts plant as given. ID, OwnerID and CreatedAt must be set
// by the caller.
func (r *plantRepository) CreatePlant(ctx context.Context, plant models.Plant) (models.Plant, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertPlantQuery(plant)
	if err != nil {
		return models.Plant{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if postgresError(err) == pgerrcode.CheckViolation {
			log.Err(err).Str("func", "*plantRepository.CreatePlant").Msg("plant values rejected by check constraint")
			return models.Plant{}, fmt.Errorf("%w: %w", ErrInvalidPlant, err)
		}
		return models.Plant{}, r.db.queryError(ctx, "*plantRepository.CreatePlant", ErrExecutingStatement, err)
	}

	plant.Notes = make([]models.Note, 0)
	plant.Photos = make([]models.Photo, 0)

	log.Debug().Str("func", "*plantRepository.CreatePlant").Str("plant_id", plant.ID).Msg("plant created")
	return plant, nil
}

// GetPlant returns one plant with notes and photos ordered by creation time.
func (r *plantRepository) GetPlant(ctx context.Context, ownerID, plantID string) (models.Plant, error) {
	query, args, err := buildGetPlantQuery(ownerID, plantID)
	if err != nil {
		return models.Plant{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	plant, err := scanPlant(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Plant{}, ErrPlantNotFound
	}
	if err != nil {
		return models.Plant{}, r.db.queryError(ctx, "*plantRepository.GetPlant", ErrScanningRow, err)
	}

	return r.withChildren(ctx, plant)
}

// ArchivePlant sets the archived flag. Archiving twice is not an error.
func (r *plantRepository) ArchivePlant(ctx context.Context, ownerID, plantID string, at time.Time) error {
	query, args, err := buildArchivePlantQuery(ownerID, plantID, at)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return r.db.queryError(ctx, "*plantRepository.ArchivePlant", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return r.db.queryError(ctx, "*plantRepository.ArchivePlant", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrPlantNotFound
	}

	return nil
}

// WaterPlant sets last_watered_date to at and returns the updated plant.
func (r *plantRepository) WaterPlant(ctx context.Context, ownerID, plantID string, at time.Time) (models.Plant, error) {
	query, args, err := buildWaterPlantQuery(ownerID, plantID, at)
	if err != nil {
		return models.Plant{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	plant, err := scanPlant(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Plant{}, ErrPlantNotFound
	}
	if err != nil {
		return models.Plant{}, r.db.queryError(ctx, "*plantRepository.WaterPlant", ErrExecutingStatement, err)
	}

	return r.withChildren(ctx, plant)
}

// AddNote appends a note to an owned plant.
func (r *plantRepository) AddNote(ctx context.Context, ownerID string, note models.Note) (models.Note, error) {
	note.TipDay = nil
	return r.insertNote(ctx, "*plantRepository.AddNote", ownerID, note)
}

// AddTipNote stores an automatic tip. note.TipDay must be set; a second tip
// for the same plant and day yields [ErrTipAlreadyExists].
func (r *plantRepository) AddTipNote(ctx context.Context, ownerID string, note models.Note) (models.Note, error) {
	if note.TipDay == nil {
		return models.Note{}, fmt.Errorf("%w: tip day is not set", ErrBuildingSQLQuery)
	}
	return r.insertNote(ctx, "*plantRepository.AddTipNote", ownerID, note)
}

func (r *plantRepository) insertNote(ctx context.Context, funcName, ownerID string, note models.Note) (models.Note, error) {
	if err := r.ensurePlant(ctx, ownerID, note.PlantID); err != nil {
		return models.Note{}, err
	}

	query, args, err := buildInsertNoteQuery(note)
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Note{}, ErrPlantNotFound
		}
		return models.Note{}, r.db.queryError(ctx, funcName, ErrExecutingStatement, err)
	}

	if note.TipDay != nil {
		affected, affErr := res.RowsAffected()
		if affErr != nil {
			return models.Note{}, r.db.queryError(ctx, funcName, ErrExecutingStatement, affErr)
		}
		if affected == 0 {
			return models.Note{}, ErrTipAlreadyExists
		}
	}

	return note, nil
}

// FindTipNote returns the automatic tip stored for day.
func (r *plantRepository) FindTipNote(ctx context.Context, ownerID, plantID string, day time.Time) (models.Note, error) {
	query, args, err := buildFindTipNoteQuery(ownerID, plantID, day)
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	note, err := scanNote(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Note{}, ErrNoteNotFound
	}
	if err != nil {
		return models.Note{}, r.db.queryError(ctx, "*plantRepository.FindTipNote", ErrScanningRow, err)
	}

	return note, nil
}

// ListNotes returns the notes of an owned plant, oldest first.
func (r *plantRepository) ListNotes(ctx context.Context, ownerID, plantID string) ([]models.Note, error) {
	if err := r.ensurePlant(ctx, ownerID, plantID); err != nil {
		return nil, err
	}
	return r.selectNotes(ctx, ownerID, plantID)
}

// DeleteNote removes one note. A missing plant wins over a missing note.
func (r *plantRepository) DeleteNote(ctx context.Context, ownerID, plantID, noteID string) error {
	query, args, err := buildDeleteNoteQuery(ownerID, plantID, noteID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return r.deleteChild(ctx, "*plantRepository.DeleteNote", ownerID, plantID, ErrNoteNotFound, query, args)
}

// AddPhoto appends a photo to an owned plant's timeline.
func (r *plantRepository) AddPhoto(ctx context.Context, ownerID string, photo models.Photo) (models.Photo, error) {
	if err := r.ensurePlant(ctx, ownerID, photo.PlantID); err != nil {
		return models.Photo{}, err
	}

	query, args, err := buildInsertPhotoQuery(photo)
	if err != nil {
		return models.Photo{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Photo{}, ErrPlantNotFound
		}
		return models.Photo{}, r.db.queryError(ctx, "*plantRepository.AddPhoto", ErrExecutingStatement, err)
	}

	return photo, nil
}

// DeletePhoto removes one timeline photo.
func (r *plantRepository) DeletePhoto(ctx context.Context, ownerID, plantID, photoID string) error {
	query, args, err := buildDeletePhotoQuery(ownerID, plantID, photoID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return r.deleteChild(ctx, "*plantRepository.DeletePhoto", ownerID, plantID, ErrPhotoNotFound, query, args)
}

func (r *plantRepository) deleteChild(ctx context.Context, funcName, ownerID, plantID string, notFound error, query string, args []any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return r.db.queryError(ctx, funcName, ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return r.db.queryError(ctx, funcName, ErrExecutingStatement, err)
	}
	if affected > 0 {
		return nil
	}

	if err = r.ensurePlant(ctx, ownerID, plantID); err != nil {
		return err
	}
	return notFound
}

// ensurePlant returns [ErrPlantNotFound] unless ownerID owns plantID.
func (r *plantRepository) ensurePlant(ctx context.Context, ownerID, plantID string) error {
	query, args, err := buildPlantExistsQuery(ownerID, plantID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var one int
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrPlantNotFound
	}
	if err != nil {
		return r.db.queryError(ctx, "*plantRepository.ensurePlant", ErrExecutingQuery, err)
	}

	return nil
}

func (r *plantRepository) withChildren(ctx context.Context, plant models.Plant) (models.Plant, error) {
	notes, err := r.selectNotes(ctx, plant.OwnerID, plant.ID)
	if err != nil {
		return models.Plant{}, err
	}
	photos, err := r.selectPhotos(ctx, plant.OwnerID, plant.ID)
	if err != nil {
		return models.Plant{}, err
	}

	plant.Notes = notes
	plant.Photos = photos
	return plant, nil
}

func (r *plantRepository) selectNotes(ctx context.Context, ownerID, plantID string) ([]models.Note, error) {
	query, args, err := buildSelectNotesQuery(ownerID, plantID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, r.db.queryError(ctx, "*plantRepository.selectNotes", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		note, scanErr := scanNote(rows)
		if scanErr != nil {
			return nil, r.db.queryError(ctx, "*plantRepository.selectNotes", ErrScanningRow, scanErr)
		}
		notes = append(notes, note)
	}
	if err = rows.Err(); err != nil {
		return nil, r.db.queryError(ctx, "*plantRepository.selectNotes", ErrScanningRows, err)
	}

	return notes, nil
}

func (r *plantRepository) selectPhotos(ctx context.Context, ownerID, plantID string) ([]models.Photo, error) {
	query, args, err := buildSelectPhotosQuery(ownerID, plantID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, r.db.queryError(ctx, "*plantRepository.selectPhotos", ErrExecutingQuery, err)
	}
	defer rows.Close()

	photos := make([]models.Photo, 0)
	for rows.Next() {
		var ph models.Photo
		if scanErr := rows.Scan(&ph.ID, &ph.PlantID, &ph.URL, &ph.Caption, &ph.CreatedAt); scanErr != nil {
			return nil, r.db.queryError(ctx, "*plantRepository.selectPhotos", ErrScanningRow, scanErr)
		}
		photos = append(photos, ph)
	}
	if err = rows.Err(); err != nil {
		return nil, r.db.queryError(ctx, "*plantRepository.selectPhotos", ErrScanningRows, err)
	}

	return photos, nil
}

func scanPlant(row rowScanner) (models.Plant, error) {
	var p models.Plant
	err := row.Scan(
		&p.ID,
		&p.OwnerID,
		&p.Species,
		&p.PlantedDate,
		&p.LastWateredDate,
		&p.MinGermination,
		&p.MaxGermination,
		&p.WateringFrequency,
		&p.Photo,
		&p.Archived,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

func scanNote(row rowScanner) (models.Note, error) {
	var n models.Note
	err := row.Scan(&n.ID, &n.PlantID, &n.Content, &n.AutoTip, &n.TipDay, &n.CreatedAt)
	return n, err
}
