// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-plant-keeper/internal/store"
	"github.com/MKhiriev/go-plant-keeper/internal/validators"
	"github.com/MKhiriev/go-plant-keeper/models"
)

// PlantServiceWrapper decorates a PlantService, e.g. with input validation.
type PlantServiceWrapper interface {
	Wrap(PlantService) PlantService
}

// PlantValidationService checks request bodies and ids before delegating to
// the wrapped PlantService. Malformed ids cannot match any row, so they are
// reported as not found.
type PlantValidationService struct {
	inner     PlantService
	validator validators.Validator
}

func NewPlantValidationService() PlantServiceWrapper {
	return &PlantValidationService{
		validator: validators.NewPlantValidator(),
	}
}

func (v *PlantValidationService) Wrap(inner PlantService) PlantService {
	v.inner = inner
	return v
}

func (v *PlantValidationService) List(ctx context.Context, filter models.PlantFilter) ([]models.Plant, error) {
	if !filter.Archived.Valid() {
		return nil, fmt.Errorf("%w: archived must be true or false", ErrInvalidDataProvided)
	}
	return v.inner.List(ctx, filter)
}

func (v *PlantValidationService) Create(ctx context.Context, in models.PlantInput) (models.Plant, error) {
	if err := v.validator.Validate(ctx, in); err != nil {
		return models.Plant{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Create(ctx, in)
}

func (v *PlantValidationService) Get(ctx context.Context, plantID string) (models.Plant, error) {
	if err := validators.ValidateIDs(plantID); err != nil {
		return models.Plant{}, store.ErrPlantNotFound
	}
	return v.inner.Get(ctx, plantID)
}

func (v *PlantValidationService) Archive(ctx context.Context, plantID string) error {
	if err := validators.ValidateIDs(plantID); err != nil {
		return store.ErrPlantNotFound
	}
	return v.inner.Archive(ctx, plantID)
}

func (v *PlantValidationService) Water(ctx context.Context, plantID string) (models.Plant, error) {
	if err := validators.ValidateIDs(plantID); err != nil {
		return models.Plant{}, store.ErrPlantNotFound
	}
	return v.inner.Water(ctx, plantID)
}

func (v *PlantValidationService) AddNote(ctx context.Context, plantID string, in models.NoteInput) (models.Note, error) {
	if err := validators.ValidateIDs(plantID); err != nil {
		return models.Note{}, store.ErrPlantNotFound
	}
	if err := v.validator.Validate(ctx, in); err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.AddNote(ctx, plantID, in)
}

func (v *PlantValidationService) Notes(ctx context.Context, plantID string) ([]models.Note, error) {
	if err := validators.ValidateIDs(plantID); err != nil {
		return nil, store.ErrPlantNotFound
	}
	return v.inner.Notes(ctx, plantID)
}

func (v *PlantValidationService) NotesOn(ctx context.Context, plantID string, day time.Time) (models.Note, error) {
	if err := validators.ValidateIDs(plantID); err != nil {
		return models.Note{}, store.ErrPlantNotFound
	}
	return v.inner.NotesOn(ctx, plantID, day)
}

func (v *PlantValidationService) DeleteNote(ctx context.Context, plantID, noteID string) error {
	if err := validators.ValidateIDs(plantID); err != nil {
		return store.ErrPlantNotFound
	}
	if err := validators.ValidateIDs(noteID); err != nil {
		return store.ErrNoteNotFound
	}
	return v.inner.DeleteNote(ctx, plantID, noteID)
}

func (v *PlantValidationService) AddPhoto(ctx context.Context, plantID string, in models.PhotoInput) (models.Photo, error) {
	if err := validators.ValidateIDs(plantID); err != nil {
		return models.Photo{}, store.ErrPlantNotFound
	}
	if err := v.validator.Validate(ctx, in); err != nil {
		return models.Photo{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.AddPhoto(ctx, plantID, in)
}

func (v *PlantValidationService) DeletePhoto(ctx context.Context, plantID, photoID string) error {
	if err := validators.ValidateIDs(plantID); err != nil {
		return store.ErrPlantNotFound
	}
	if err := validators.ValidateIDs(photoID); err != nil {
		return store.ErrPhotoNotFound
	}
	return v.inner.DeletePhoto(ctx, plantID, photoID)
}
