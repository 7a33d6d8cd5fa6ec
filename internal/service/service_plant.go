// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-plant-keeper/internal/adapter"
	"github.com/MKhiriev/go-plant-keeper/internal/care"
	"github.com/MKhiriev/go-plant-keeper/internal/config"
	"github.com/MKhiriev/go-plant-keeper/internal/imaging"
	"github.com/MKhiriev/go-plant-keeper/internal/logger"
	"github.com/MKhiriev/go-plant-keeper/internal/store"
	"github.com/MKhiriev/go-plant-keeper/internal/utils"
	"github.com/MKhiriev/go-plant-keeper/models"
)

// plantService is the concrete implementation of PlantService. It expects
// validated input; see PlantValidationService.
type plantService struct {
	plantRepository store.PlantRepository
	imageHost       adapter.ImageHost
	idGenerator     *utils.UUIDGenerator

	// location defines calendar days for note date filters.
	location *time.Location

	// maxWidth and quality are applied to timeline photos before upload.
	maxWidth int
	quality  float64

	now    func() time.Time
	logger *logger.Logger
}

// NewPlantService constructs a PlantService backed by plantRepository. Photos
// are stored through imageHost.
func NewPlantService(
	plantRepository store.PlantRepository,
	imageHost adapter.ImageHost,
	appCfg config.App,
	imageCfg config.ImageHost,
	logger *logger.Logger,
) PlantService {
	return &plantService{
		plantRepository: plantRepository,
		imageHost:       imageHost,
		idGenerator:     utils.NewUUIDGenerator(),
		location:        appCfg.Location(),
		maxWidth:        imageCfg.MaxWidth,
		quality:         imageCfg.Quality,
		now:             time.Now,
		logger:          logger,
	}
}

func (p *plantService) List(ctx context.Context, filter models.PlantFilter) ([]models.Plant, error) {
	ownerID, err := ownerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	plants, err := p.plantRepository.ListPlants(ctx, ownerID, filter)
	if err != nil {
		return nil, err
	}

	care.Attach(plants, p.now())
	return plants, nil
}

// Create stores a new plant. A missing watering frequency defaults to
// models.DefaultWateringFrequency; a cover photo is uploaded first and its
// URL stored on the plant.
func (p *plantService) Create(ctx context.Context, in models.PlantInput) (models.Plant, error) {
	ownerID, err := ownerFromContext(ctx)
	if err != nil {
		return models.Plant{}, err
	}
	log := logger.FromContext(ctx)

	plant := models.Plant{
		ID:                p.idGenerator.Generate(),
		OwnerID:           ownerID,
		Species:           strings.TrimSpace(in.Species),
		PlantedDate:       in.PlantedDate.Time,
		MinGermination:    in.MinGermination.Value,
		MaxGermination:    in.MaxGermination.Value,
		WateringFrequency: models.DefaultWateringFrequency,
		CreatedAt:         p.now(),
	}
	if in.WateringFrequency.Set {
		plant.WateringFrequency = in.WateringFrequency.Value
	}
	if in.LastWateredDate.Set {
		watered := in.LastWateredDate.Time
		plant.LastWateredDate = &watered
	}

	if in.Photo != "" {
		contentType, data, err := imaging.ParseDataURL(in.Photo)
		if err != nil {
			return models.Plant{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
		if err = imaging.CheckSize(data); errors.Is(err, imaging.ErrImageTooLarge) {
			return models.Plant{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}

		url, err := p.imageHost.Upload(ctx, data, contentType)
		if err != nil {
			log.Err(err).Str("func", "*plantService.Create").Msg("cover photo upload failed")
			return models.Plant{}, fmt.Errorf("%w: %w", ErrUpstreamFailure, err)
		}
		plant.Photo = &url
	}

	created, err := p.plantRepository.CreatePlant(ctx, plant)
	if err != nil {
		return models.Plant{}, err
	}

	return withCare(created, p.now()), nil
}

func (p *plantService) Get(ctx context.Context, plantID string) (models.Plant, error) {
	ownerID, err := ownerFromContext(ctx)
	if err != nil {
		return models.Plant{}, err
	}

	plant, err := p.plantRepository.GetPlant(ctx, ownerID, plantID)
	if err != nil {
		return models.Plant{}, err
	}

	return withCare(plant, p.now()), nil
}

// Archive soft-deletes the plant. Archived plants keep their notes and
// photos.
func (p *plantService) Archive(ctx context.Context, plantID string) error {
	ownerID, err := ownerFromContext(ctx)
	if err != nil {
		return err
	}

	return p.plantRepository.ArchivePlant(ctx, ownerID, plantID, p.now())
}

// Water stamps the plant as watered now and returns it with fresh care state.
func (p *plantService) Water(ctx context.Context, plantID string) (models.Plant, error) {
	ownerID, err := ownerFromContext(ctx)
	if err != nil {
		return models.Plant{}, err
	}

	now := p.now()
	plant, err := p.plantRepository.WaterPlant(ctx, ownerID, plantID, now)
	if err != nil {
		return models.Plant{}, err
	}

	return withCare(plant, now), nil
}

func (p *plantService) AddNote(ctx context.Context, plantID string, in models.NoteInput) (models.Note, error) {
	ownerID, err := ownerFromContext(ctx)
	if err != nil {
		return models.Note{}, err
	}

	return p.plantRepository.AddNote(ctx, ownerID, models.Note{
		ID:        p.idGenerator.Generate(),
		PlantID:   plantID,
		Content:   in.Content,
		CreatedAt: p.now(),
	})
}

func (p *plantService) Notes(ctx context.Context, plantID string) ([]models.Note, error) {
	ownerID, err := ownerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	return p.plantRepository.ListNotes(ctx, ownerID, plantID)
}

// NotesOn interprets the year, month and day of day in the configured
// location.
func (p *plantService) NotesOn(ctx context.Context, plantID string, day time.Time) (models.Note, error) {
	ownerID, err := ownerFromContext(ctx)
	if err != nil {
		return models.Note{}, err
	}

	notes, err := p.plantRepository.ListNotes(ctx, ownerID, plantID)
	if err != nil {
		return models.Note{}, err
	}

	y, m, d := day.Date()
	target := time.Date(y, m, d, 0, 0, 0, 0, p.location)

	var (
		latest models.Note
		found  bool
	)
	for _, note := range notes {
		if !care.SameDay(note.CreatedAt, target, p.location) {
			continue
		}
		if !found || !note.CreatedAt.Before(latest.CreatedAt) {
			latest, found = note, true
		}
	}

	if !found {
		return models.Note{}, store.ErrNoteNotFound
	}
	return latest, nil
}

func (p *plantService) DeleteNote(ctx context.Context, plantID, noteID string) error {
	ownerID, err := ownerFromContext(ctx)
	if err != nil {
		return err
	}

	return p.plantRepository.DeleteNote(ctx, ownerID, plantID, noteID)
}

// AddPhoto compresses the image and uploads it. When compression fails the
// original image is uploaded, unless the image is over imaging.MaxPixels.
// Nothing is uploaded for a plant the owner cannot see.
func (p *plantService) AddPhoto(ctx context.Context, plantID string, in models.PhotoInput) (models.Photo, error) {
	ownerID, err := ownerFromContext(ctx)
	if err != nil {
		return models.Photo{}, err
	}
	log := logger.FromContext(ctx)

	contentType, data, err := imaging.ParseDataURL(in.Photo)
	if err != nil {
		return models.Photo{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if _, err = p.plantRepository.GetPlant(ctx, ownerID, plantID); err != nil {
		return models.Photo{}, err
	}

	compressed, err := imaging.Compress(data, p.maxWidth, p.quality)
	switch {
	case errors.Is(err, imaging.ErrImageTooLarge):
		return models.Photo{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	case err != nil:
		log.Warn().Err(err).Str("func", "*plantService.AddPhoto").Msg("photo compression failed, uploading original")
	default:
		data, contentType = compressed, imaging.ContentTypeJPEG
	}

	url, err := p.imageHost.Upload(ctx, data, contentType)
	if err != nil {
		log.Err(err).Str("func", "*plantService.AddPhoto").Msg("photo upload failed")
		return models.Photo{}, fmt.Errorf("%w: %w", ErrUpstreamFailure, err)
	}

	return p.plantRepository.AddPhoto(ctx, ownerID, models.Photo{
		ID:        p.idGenerator.Generate(),
		PlantID:   plantID,
		URL:       url,
		Caption:   in.Caption,
		CreatedAt: p.now(),
	})
}

func (p *plantService) DeletePhoto(ctx context.Context, plantID, photoID string) error {
	ownerID, err := ownerFromContext(ctx)
	if err != nil {
		return err
	}

	return p.plantRepository.DeletePhoto(ctx, ownerID, plantID, photoID)
}

func ownerFromContext(ctx context.Context) (string, error) {
	ownerID, ok := utils.GetOwnerIDFromContext(ctx)
	if !ok {
		return "", ErrUnauthorized
	}
	return ownerID, nil
}

func withCare(plant models.Plant, now time.Time) models.Plant {
	state := care.State(plant, now)
	plant.Care = &state
	return plant
}
