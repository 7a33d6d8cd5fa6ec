// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-plant-keeper/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var plantColumns = []string{
	"id",
	"owner_id",
	"species",
	"planted_date",
	"last_watered_date",
	"min_germination",
	"max_germination",
	"watering_frequency",
	"photo",
	"archived",
	"created_at",
	"updated_at",
}

var noteColumns = []string{
	"n.id",
	"n.plant_id",
	"n.content",
	"n.auto_tip",
	"n.tip_day",
	"n.created_at",
}

var photoColumns = []string{
	"ph.id",
	"ph.plant_id",
	"ph.url",
	"ph.caption",
	"ph.created_at",
}

var speciesInfoColumns = []string{
	"id",
	"owner_id",
	"species",
	"info",
	"created_at",
	"updated_at",
}

const ownedPlantsSubquery = "plant_id IN (SELECT id FROM plants WHERE owner_id = ?)"

func buildListPlantsQuery(ownerID string, filter models.PlantFilter) (string, []any, error) {
	q := psql.Select(plantColumns...).
		From("plants").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at ASC")

	switch filter.Archived {
	case models.ArchivedExclude:
		q = q.Where(sq.Eq{"archived": false})
	case models.ArchivedOnly:
		q = q.Where(sq.Eq{"archived": true})
	}

	return q.ToSql()
}

func buildGetPlantQuery(ownerID, plantID string) (string, []any, error) {
	return psql.Select(plantColumns...).
		From("plants").
		Where(sq.Eq{"id": plantID, "owner_id": ownerID}).
		ToSql()
}

func buildPlantExistsQuery(ownerID, plantID string) (string, []any, error) {
	return psql.Select("1").
		From("plants").
		Where(sq.Eq{"id": plantID, "owner_id": ownerID}).
		ToSql()
}

func buildInsertPlantQuery(p models.Plant) (string, []any, error) {
	return psql.Insert("plants").
		Columns(plantColumns...).
		Values(
			p.ID,
			p.OwnerID,
			p.Species,
			p.PlantedDate,
			p.LastWateredDate,
			p.MinGermination,
			p.MaxGermination,
			p.WateringFrequency,
			p.Photo,
			p.Archived,
			p.CreatedAt,
			p.UpdatedAt,
		).
		ToSql()
}

func buildArchivePlantQuery(ownerID, plantID string, at time.Time) (string, []any, error) {
	return psql.Update("plants").
		Set("archived", true).
		Set("updated_at", at).
		Where(sq.Eq{"id": plantID, "owner_id": ownerID}).
		ToSql()
}

func buildWaterPlantQuery(ownerID, plantID string, at time.Time) (string, []any, error) {
	return psql.Update("plants").
		Set("last_watered_date", at).
		Set("updated_at", at).
		Where(sq.Eq{"id": plantID, "owner_id": ownerID}).
		Suffix("RETURNING " + strings.Join(plantColumns, ", ")).
		ToSql()
}

// buildSelectNotesQuery lists notes of every plant of ownerID, or of plantID
// only when it is not empty.
func buildSelectNotesQuery(ownerID, plantID string) (string, []any, error) {
	q := psql.Select(noteColumns...).
		From("plant_notes n").
		Join("plants p ON p.id = n.plant_id").
		Where(sq.Eq{"p.owner_id": ownerID}).
		OrderBy("n.created_at ASC")

	if plantID != "" {
		q = q.Where(sq.Eq{"n.plant_id": plantID})
	}

	return q.ToSql()
}

func buildFindTipNoteQuery(ownerID, plantID string, day time.Time) (string, []any, error) {
	return psql.Select(noteColumns...).
		From("plant_notes n").
		Join("plants p ON p.id = n.plant_id").
		Where(sq.Eq{"p.owner_id": ownerID, "n.plant_id": plantID, "n.tip_day": day.Format(models.DateLayout)}).
		Limit(1).
		ToSql()
}

func buildInsertNoteQuery(n models.Note) (string, []any, error) {
	var tipDay any
	if n.TipDay != nil {
		tipDay = n.TipDay.Format(models.DateLayout)
	}

	q := psql.Insert("plant_notes").
		Columns("id", "plant_id", "content", "auto_tip", "tip_day", "created_at").
		Values(n.ID, n.PlantID, n.Content, n.AutoTip, tipDay, n.CreatedAt)

	if n.TipDay != nil {
		q = q.Suffix("ON CONFLICT (plant_id, tip_day) DO NOTHING")
	}

	return q.ToSql()
}

func buildDeleteNoteQuery(ownerID, plantID, noteID string) (string, []any, error) {
	return psql.Delete("plant_notes").
		Where(sq.Eq{"id": noteID, "plant_id": plantID}).
		Where(ownedPlantsSubquery, ownerID).
		ToSql()
}

func buildSelectPhotosQuery(ownerID, plantID string) (string, []any, error) {
	q := psql.Select(photoColumns...).
		From("plant_photos ph").
		Join("plants p ON p.id = ph.plant_id").
		Where(sq.Eq{"p.owner_id": ownerID}).
		OrderBy("ph.created_at ASC")

	if plantID != "" {
		q = q.Where(sq.Eq{"ph.plant_id": plantID})
	}

	return q.ToSql()
}

func buildInsertPhotoQuery(ph models.Photo) (string, []any, error) {
	return psql.Insert("plant_photos").
		Columns("id", "plant_id", "url", "caption", "created_at").
		Values(ph.ID, ph.PlantID, ph.URL, ph.Caption, ph.CreatedAt).
		ToSql()
}

func buildDeletePhotoQuery(ownerID, plantID, photoID string) (string, []any, error) {
	return psql.Delete("plant_photos").
		Where(sq.Eq{"id": photoID, "plant_id": plantID}).
		Where(ownedPlantsSubquery, ownerID).
		ToSql()
}

func buildFindSpeciesInfoQuery(ownerID, species string) (string, []any, error) {
	return psql.Select(speciesInfoColumns...).
		From("all_plants").
		Where(sq.Eq{"owner_id": ownerID, "species": species}).
		ToSql()
}

func buildInsertSpeciesInfoQuery(info models.SpeciesInfo) sq.InsertBuilder {
	return psql.Insert("all_plants").
		Columns("id", "owner_id", "species", "info", "created_at").
		Values(info.ID, info.OwnerID, info.Species, string(info.Info), info.CreatedAt)
}

func buildCreateSpeciesInfoQuery(info models.SpeciesInfo) (string, []any, error) {
	return buildInsertSpeciesInfoQuery(info).
		Suffix("ON CONFLICT (owner_id, species) DO NOTHING").
		ToSql()
}

func buildReplaceSpeciesInfoQuery(info models.SpeciesInfo) (string, []any, error) {
	return buildInsertSpeciesInfoQuery(info).
		Suffix("ON CONFLICT (owner_id, species) DO UPDATE SET info = EXCLUDED.info, updated_at = EXCLUDED.created_at RETURNING " +
			strings.Join(speciesInfoColumns, ", ")).
		ToSql()
}

func buildDeleteSpeciesInfoQuery(ownerID, id string) (string, []any, error) {
	return psql.Delete("all_plants").
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		ToSql()
}
