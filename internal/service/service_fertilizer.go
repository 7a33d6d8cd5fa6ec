// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-plant-keeper/internal/adapter"
	"github.com/MKhiriev/go-plant-keeper/internal/logger"
	"github.com/MKhiriev/go-plant-keeper/internal/validators"
	"github.com/MKhiriev/go-plant-keeper/models"
)

type fertilizerService struct {
	llm       adapter.LLMClient
	validator validators.Validator
	logger    *logger.Logger
}

func NewFertilizerService(llm adapter.LLMClient, logger *logger.Logger) FertilizerService {
	return &fertilizerService{
		llm:       llm,
		validator: validators.NewPlantValidator(),
		logger:    logger,
	}
}

// Recommend asks the language model for a recommendation. A model failure
// is not an error: the built-in default recommendation is returned with
// kind "fallback".
func (f *fertilizerService) Recommend(ctx context.Context, species string) (models.FertilizerResult, error) {
	log := logger.FromContext(ctx)

	if err := f.validator.Validate(ctx, models.FertilizerRequest{Species: species}); err != nil {
		return models.FertilizerResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	answer, err := f.llm.Complete(ctx, fertilizerPrompt(species))
	if err != nil {
		log.Err(err).Str("func", "*fertilizerService.Recommend").Str("species", species).Msg("fertilizer generation failed, serving defaults")
		rec := defaultFertilizer(species)
		return models.FertilizerResult{Kind: models.LLMResultFallback, Recommendation: &rec}, nil
	}

	result := parseFertilizer(species, answer)
	log.Debug().Str("func", "*fertilizerService.Recommend").Str("kind", string(result.Kind)).Msg("fertilizer generated")

	return result, nil
}
