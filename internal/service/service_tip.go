// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-plant-keeper/internal/adapter"
	"github.com/MKhiriev/go-plant-keeper/internal/care"
	"github.com/MKhiriev/go-plant-keeper/internal/config"
	"github.com/MKhiriev/go-plant-keeper/internal/logger"
	"github.com/MKhiriev/go-plant-keeper/internal/store"
	"github.com/MKhiriev/go-plant-keeper/internal/utils"
	"github.com/MKhiriev/go-plant-keeper/internal/validators"
	"github.com/MKhiriev/go-plant-keeper/models"
)

type tipService struct {
	plantRepository store.PlantRepository
	llm             adapter.LLMClient
	idGenerator     *utils.UUIDGenerator

	// location defines the calendar day a tip belongs to.
	location *time.Location

	now    func() time.Time
	logger *logger.Logger
}

func NewTipService(plantRepository store.PlantRepository, llm adapter.LLMClient, cfg config.App, logger *logger.Logger) TipService {
	return &tipService{
		plantRepository: plantRepository,
		llm:             llm,
		idGenerator:     utils.NewUUIDGenerator(),
		location:        cfg.Location(),
		now:             time.Now,
		logger:          logger,
	}
}

// Daily looks up today's automatic tip first and calls the language model
// only on a miss. Manual notes and regenerated tips written today do not
// count as a hit. A failed lookup counts as a miss. Two concurrent misses are
// settled by the unique (plant, day) index: the loser returns the stored tip.
func (t *tipService) Daily(ctx context.Context, plantID string) (models.TipResponse, error) {
	log := logger.FromContext(ctx)

	plant, ownerID, err := t.plant(ctx, plantID)
	if err != nil {
		return models.TipResponse{}, err
	}

	now := t.now()
	today := care.Day(now, t.location)

	stored, err := t.plantRepository.FindTipNote(ctx, ownerID, plantID, today)
	switch {
	case err == nil:
		return models.TipResponse{Note: stored}, nil
	case !errors.Is(err, store.ErrNoteNotFound):
		log.Warn().Err(err).Str("func", "*tipService.Daily").Str("plant_id", plantID).Msg("tip lookup failed, generating a new one")
	}

	content, err := t.complete(ctx, plant, now)
	if err != nil {
		return models.TipResponse{}, err
	}

	note, err := t.plantRepository.AddTipNote(ctx, ownerID, models.Note{
		ID:        t.idGenerator.Generate(),
		PlantID:   plantID,
		Content:   content,
		CreatedAt: now,
		AutoTip:   true,
		TipDay:    &today,
	})
	if errors.Is(err, store.ErrTipAlreadyExists) {
		log.Debug().Str("func", "*tipService.Daily").Str("plant_id", plantID).Msg("tip was stored concurrently")
		stored, err = t.plantRepository.FindTipNote(ctx, ownerID, plantID, today)
		if err != nil {
			return models.TipResponse{}, err
		}
		return models.TipResponse{Note: stored}, nil
	}
	if err != nil {
		return models.TipResponse{}, err
	}

	return models.TipResponse{Note: note, Generated: true}, nil
}

// Regenerate skips the daily lookup and stores the answer as a regular note,
// so several tips may exist for the same day.
func (t *tipService) Regenerate(ctx context.Context, plantID string) (models.TipResponse, error) {
	plant, ownerID, err := t.plant(ctx, plantID)
	if err != nil {
		return models.TipResponse{}, err
	}

	now := t.now()
	content, err := t.complete(ctx, plant, now)
	if err != nil {
		return models.TipResponse{}, err
	}

	note, err := t.plantRepository.AddNote(ctx, ownerID, models.Note{
		ID:        t.idGenerator.Generate(),
		PlantID:   plantID,
		Content:   content,
		CreatedAt: now,
	})
	if err != nil {
		return models.TipResponse{}, err
	}

	return models.TipResponse{Note: note, Generated: true}, nil
}

func (t *tipService) plant(ctx context.Context, plantID string) (models.Plant, string, error) {
	ownerID, err := ownerFromContext(ctx)
	if err != nil {
		return models.Plant{}, "", err
	}
	if err = validators.ValidateIDs(plantID); err != nil {
		return models.Plant{}, "", store.ErrPlantNotFound
	}

	plant, err := t.plantRepository.GetPlant(ctx, ownerID, plantID)
	if err != nil {
		return models.Plant{}, "", err
	}
	return plant, ownerID, nil
}

func (t *tipService) complete(ctx context.Context, plant models.Plant, now time.Time) (string, error) {
	prompt := tipPrompt(plant.Species, care.DaysSince(plant.PlantedDate, now))

	content, err := t.llm.Complete(ctx, prompt)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*tipService.complete").Str("plant_id", plant.ID).Msg("tip generation failed")
		return "", fmt.Errorf("%w: %w", ErrUpstreamFailure, err)
	}
	return content, nil
}
