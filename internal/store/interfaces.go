// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-plant-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// PlantRepository persists plants and their notes and photos. Every method
// is scoped to ownerID; plants of other owners behave as missing.
type PlantRepository interface {
	ListPlants(ctx context.Context, ownerID string, filter models.PlantFilter) ([]models.Plant, error)
	CreatePlant(ctx context.Context, plant models.Plant) (models.Plant, error)
	GetPlant(ctx context.Context, ownerID, plantID string) (models.Plant, error)
	ArchivePlant(ctx context.Context, ownerID, plantID string, at time.Time) error
	WaterPlant(ctx context.Context, ownerID, plantID string, at time.Time) (models.Plant, error)

	AddNote(ctx context.Context, ownerID string, note models.Note) (models.Note, error)
	AddTipNote(ctx context.Context, ownerID string, note models.Note) (models.Note, error)
	FindTipNote(ctx context.Context, ownerID, plantID string, day time.Time) (models.Note, error)
	ListNotes(ctx context.Context, ownerID, plantID string) ([]models.Note, error)
	DeleteNote(ctx context.Context, ownerID, plantID, noteID string) error

	AddPhoto(ctx context.Context, ownerID string, photo models.Photo) (models.Photo, error)
	DeletePhoto(ctx context.Context, ownerID, plantID, photoID string) error
}

// SpeciesInfoRepository persists the per-owner species info cache.
type SpeciesInfoRepository interface {
	FindBySpecies(ctx context.Context, ownerID, species string) (models.SpeciesInfo, error)
	// CreateSpeciesInfo inserts info unless an entry for the same owner and
	// species exists. created reports whether a row was written.
	CreateSpeciesInfo(ctx context.Context, info models.SpeciesInfo) (created bool, err error)
	// ReplaceSpeciesInfo inserts or overwrites the entry and returns the
	// stored row.
	ReplaceSpeciesInfo(ctx context.Context, info models.SpeciesInfo) (models.SpeciesInfo, error)
	DeleteSpeciesInfo(ctx context.Context, ownerID, id string) error
}

// LocalCache is the terminal client's offline copy of the plant list and
// its session token.
type LocalCache interface {
	SavePlants(ctx context.Context, plants []models.Plant, at time.Time) error
	LoadPlants(ctx context.Context) (plants []models.Plant, savedAt time.Time, err error)
	SaveToken(ctx context.Context, token string) error
	LoadToken(ctx context.Context) (string, error)
	ClearToken(ctx context.Context) error
}
