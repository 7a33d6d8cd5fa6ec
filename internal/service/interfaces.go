// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-plant-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// PlantService manages the plants of the owner attached to ctx. Every method
// returns [ErrUnauthorized] when ctx carries no identity; plants of other
// owners behave as missing.
type PlantService interface {
	List(ctx context.Context, filter models.PlantFilter) ([]models.Plant, error)
	Create(ctx context.Context, in models.PlantInput) (models.Plant, error)
	Get(ctx context.Context, plantID string) (models.Plant, error)
	Archive(ctx context.Context, plantID string) error
	Water(ctx context.Context, plantID string) (models.Plant, error)

	AddNote(ctx context.Context, plantID string, in models.NoteInput) (models.Note, error)
	Notes(ctx context.Context, plantID string) ([]models.Note, error)
	// NotesOn returns the most recent note created on the calendar day of
	// day, or store.ErrNoteNotFound.
	NotesOn(ctx context.Context, plantID string, day time.Time) (models.Note, error)
	DeleteNote(ctx context.Context, plantID, noteID string) error

	AddPhoto(ctx context.Context, plantID string, in models.PhotoInput) (models.Photo, error)
	DeletePhoto(ctx context.Context, plantID, photoID string) error
}

// TipService produces short daily care tips and stores them as notes.
type TipService interface {
	// Daily returns today's automatic tip, generating it on the first call of
	// the day. At most one automatic tip exists per plant and day.
	Daily(ctx context.Context, plantID string) (models.TipResponse, error)
	// Regenerate always asks the language model and appends a regular note.
	Regenerate(ctx context.Context, plantID string) (models.TipResponse, error)
}

// FertilizerService builds fertilizer recommendations. Results are not
// stored.
type FertilizerService interface {
	Recommend(ctx context.Context, species string) (models.FertilizerResult, error)
}

// SpeciesInfoService manages the owner's species info cache.
type SpeciesInfoService interface {
	// Save inserts the entry unless one exists for the species already.
	Save(ctx context.Context, req models.SpeciesInfoRequest) (models.SpeciesInfoSaveResponse, error)
	// Replace inserts or overwrites the entry.
	Replace(ctx context.Context, req models.SpeciesInfoRequest) (models.SpeciesInfo, error)
	Get(ctx context.Context, species string) (models.SpeciesInfo, error)
	Delete(ctx context.Context, id string) error
	// Generate returns the cached entry or asks the language model and
	// caches its answer.
	Generate(ctx context.Context, species string) (models.SpeciesInfoResult, error)
}

// ChatService forwards free-form questions to the language model.
type ChatService interface {
	Ask(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error)
}

// IdentityService resolves access tokens to owner identities.
type IdentityService interface {
	Resolve(ctx context.Context, token string) (models.Identity, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// ClientPlantService is the terminal client's view of the plant keeper. Plant
// lists fall back to the local cache when the server is unreachable.
type ClientPlantService interface {
	// Restore loads a saved session token; ok is false when there is none.
	Restore(ctx context.Context) (ok bool, err error)
	SignIn(ctx context.Context, email, password string) error
	SignOut(ctx context.Context) error

	// Plants returns the plant list. offline is true when it comes from the
	// local cache.
	Plants(ctx context.Context) (plants []models.Plant, offline bool, err error)
	// Refresh reloads the plant list from the server into the local cache.
	Refresh(ctx context.Context) ([]models.Plant, error)
	Plant(ctx context.Context, plantID string) (models.Plant, error)
	Create(ctx context.Context, in models.PlantInput) (models.Plant, error)
	Archive(ctx context.Context, plantID string) error
	Water(ctx context.Context, plantID string) (models.Plant, error)

	AddNote(ctx context.Context, plantID, content string) (models.Note, error)
	DeleteNote(ctx context.Context, plantID, noteID string) error
	// AddPhoto reads, compresses and uploads the image at path.
	AddPhoto(ctx context.Context, plantID, path, caption string) (models.Photo, error)
	DeletePhoto(ctx context.Context, plantID, photoID string) error

	DailyTip(ctx context.Context, plantID string) (models.TipResponse, error)
	RegenerateTip(ctx context.Context, plantID string) (models.TipResponse, error)
	Fertilizer(ctx context.Context, species string) (models.FertilizerResult, error)
	SpeciesInfo(ctx context.Context, species string) (models.SpeciesInfoResult, error)

	ServerVersion(ctx context.Context) (string, error)
}
